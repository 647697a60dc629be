// SPDX-License-Identifier: Apache-2.0
// Source: github.com/IlyaGrebnov/esa-matchfinder

package esamf

// Accessors for the packed interval node word. Each one is a single shift or
// mask; keeping the three fields in one word is what holds the session at
// twelve bytes per position.

// packNode assembles a closed interval with an untouched offset field.
func packNode(lcp, parent uint64) uint64 {
	return lcp<<lcpShift | parent
}

// nodeLCP extracts the pruned lcp field.
func nodeLCP(w uint64) uint64 {
	return w >> lcpShift
}

// nodeParent extracts the parent index.
func nodeParent(w uint64) uint64 {
	return w & parentMask
}

// nodeStampBits extracts the offset field still shifted into place. Stamps
// compare correctly in shifted form, so the walk never unshifts them.
func nodeStampBits(w uint64) uint64 {
	return w & offsetMask
}

// nodeWithStamp replaces the offset field, preserving lcp and parent. The
// stamp must already be shifted into the offset field.
func nodeWithStamp(w, stamp uint64) uint64 {
	return w&^offsetMask | stamp
}

// stampBits converts a text position to its shifted one-based visit stamp.
func stampBits(pos int) uint64 {
	return uint64(pos+1) << offsetShift //nolint:gosec // G115: pos bounded by MaxBlockSize
}

// stampPosition recovers the text position from a non-zero offset field.
func stampPosition(bits uint64) int {
	return int(bits>>offsetShift) - 1 //nolint:gosec // G115: field is 29 bits
}

// rootSentinel is the permanent node word at index 0: lcp 0, parent 0 and an
// all-ones offset field, so the root can never masquerade as an untouched
// interval.
const rootSentinel = offsetMask
