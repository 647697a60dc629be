// SPDX-License-Identifier: Apache-2.0
// Source: github.com/IlyaGrebnov/esa-matchfinder

package esamf

// treeSpan is a node-array range one builder sweep allocated from; rewind
// clears exactly these spans.
type treeSpan struct {
	start, end int
}

type intervalStackEntry struct {
	lcp uint64
	idx uint64
}

// buildTreeRange sweeps SA slots [lo, hi) right to left and builds the
// pruned LCP-interval tree over them, rewriting the PLCP scratch into leaf
// links as it goes. The monotone stack holds the open intervals, strictly
// increasing in lcp, so its depth never exceeds the pruned range plus the
// root. The slot at hi must be a breakpoint (or hi the block end) so the
// sweep starts from an empty stack.
//
// Node slots are allocated downward from hi-1. A pushed interval always
// receives a slot at or above the current sweep index, so node writes never
// clobber unread suffix-array entries sharing the storage.
func (f *MatchFinder) buildTreeRange(lo, hi int) treeSpan {
	tree := f.st.tree
	leaf := f.st.leaf
	sub := uint32(f.minMatch - 1)                //nolint:gosec // G115: minMatch validated
	clipHi := uint64(f.maxMatch - f.minMatch + 1) //nolint:gosec // G115: range validated

	var stack [MaxMatchLength + 1]intervalStackEntry
	top := 0
	nextFree := hi - 1

	for i := hi - 1; i >= lo; i-- {
		sa := tree[i]
		var v uint64
		if p := leaf[sa]; p > sub {
			v = uint64(p - sub)
			if v > clipHi {
				v = clipHi
			}
		}
		if v > stack[top].lcp {
			top++
			stack[top] = intervalStackEntry{lcp: v, idx: uint64(nextFree)} //nolint:gosec // G115: nextFree >= i >= 0 here
			nextFree--
		}
		// The deepest currently open interval contains this suffix; it is
		// the entry point of the position's bottom-up walk.
		leaf[sa] = uint32(stack[top].idx) //nolint:gosec // G115: node index < MaxBlockSize
		for stack[top].lcp > v {
			closed := stack[top]
			top--
			if v > stack[top].lcp {
				top++
				stack[top] = intervalStackEntry{lcp: v, idx: uint64(nextFree)} //nolint:gosec // G115: as above
				nextFree--
			}
			tree[closed.idx] = packNode(closed.lcp, stack[top].idx)
		}
		if v == 0 {
			// The stack collapsed to the root: slots the allocator skipped
			// to the right of i can never become nodes. Zero them and
			// restart allocation just left of i, so the node array comes
			// out bit-identical for every worker split of the sweep.
			for j := i; j <= nextFree; j++ {
				tree[j] = 0
			}
			nextFree = i - 1
		}
	}
	for top > 0 {
		closed := stack[top]
		top--
		tree[closed.idx] = packNode(closed.lcp, stack[top].idx)
	}

	start := lo
	if start == 0 {
		start = 1 // the root sentinel is never part of a rewind span
	}
	return treeSpan{start: start, end: hi}
}
