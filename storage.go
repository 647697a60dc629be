// SPDX-License-Identifier: Apache-2.0
// Source: github.com/IlyaGrebnov/esa-matchfinder

package esamf

import "unsafe"

// Session storage is a single allocation of 3 x maxBlockSize 32-bit words,
// owned as a []uint64 and borrowed through three fixed views:
//
//	tree: maxBlockSize 64-bit words; first the widened suffix array, then
//	       the interval nodes built over it in place
//	leaf: maxBlockSize 32-bit words; first the PLCP scratch, then the
//	       leaf-link table indexed by text position
//	sa32: the 32-bit aliasing of tree the suffix sorter writes into before
//	       the widening pass
type sessionStorage struct {
	buf  []uint64
	tree []uint64
	leaf []uint32
	sa32 []int32
}

func newSessionStorage(maxBlockSize int) sessionStorage {
	if maxBlockSize == 0 {
		return sessionStorage{}
	}
	buf := make([]uint64, maxBlockSize+(maxBlockSize+1)/2)
	return sessionStorage{
		buf:  buf,
		tree: buf[:maxBlockSize],
		leaf: unsafe.Slice((*uint32)(unsafe.Pointer(&buf[maxBlockSize])), maxBlockSize),
		sa32: unsafe.Slice((*int32)(unsafe.Pointer(&buf[0])), 2*maxBlockSize),
	}
}
