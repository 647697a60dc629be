// SPDX-License-Identifier: Apache-2.0
// Source: github.com/IlyaGrebnov/esa-matchfinder

package esamf

import "github.com/ulikunitz/lz/suffix"

// buildSuffixArray runs the external suffix sorter over the block, leaving
// SA[0..n) in the 32-bit view of the node array.
func (f *MatchFinder) buildSuffixArray(block []byte) {
	suffix.Sort(block, f.st.sa32[:len(block)])
}

// computePLCP fills the leaf-link buffer with the permuted LCP array: for
// each text position p, the length of the common prefix between p's suffix
// and the suffix preceding it in suffix-array order. Linear time by the Φ
// method, with the buffer holding Φ itself until each entry is finalized.
func (f *MatchFinder) computePLCP(block []byte) {
	n := len(block)
	sa := f.st.sa32[:n]
	plcp := f.st.leaf[:n]

	const noPredecessor = ^uint32(0)
	plcp[uint32(sa[0])] = noPredecessor
	for i := 1; i < n; i++ {
		plcp[uint32(sa[i])] = uint32(sa[i-1])
	}

	l := 0
	for p := 0; p < n; p++ {
		phi := plcp[p]
		if phi == noPredecessor {
			plcp[p] = 0
			l = 0
			continue
		}
		q := int(phi)
		for p+l < n && q+l < n && block[p+l] == block[q+l] {
			l++
		}
		plcp[p] = uint32(l) //nolint:gosec // G115: l < n <= MaxBlockSize
		if l > 0 {
			l--
		}
	}
}

// widenSuffixArray converts SA in place from 32-bit to 64-bit entries
// occupying the same storage. Destination words in the upper half overlap no
// unread 32-bit entry and may be converted in any order, so large blocks
// fan that half out across workers; the lower half must be walked right to
// left so every destination word clobbers only entries already consumed.
func (f *MatchFinder) widenSuffixArray(n int) {
	tree := f.st.tree
	sa32 := f.st.sa32
	half := (n + 1) / 2
	if f.workers > 1 && n >= parallelMinBlockSize {
		f.fanOut(half, n, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				tree[i] = uint64(uint32(sa32[i]))
			}
		})
	} else {
		for i := n - 1; i >= half; i-- {
			tree[i] = uint64(uint32(sa32[i]))
		}
	}
	for i := half - 1; i >= 0; i-- {
		tree[i] = uint64(uint32(sa32[i]))
	}
}
