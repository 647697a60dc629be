// SPDX-License-Identifier: Apache-2.0
// Source: github.com/IlyaGrebnov/esa-matchfinder

package esamf

import "sync"

// fanOut splits [lo, hi) into one contiguous chunk per worker and runs fn on
// every chunk concurrently, returning after all chunks finish.
func (f *MatchFinder) fanOut(lo, hi int, fn func(lo, hi int)) {
	w := f.workers
	if span := hi - lo; span < w {
		w = span
	}
	if w <= 1 {
		if lo < hi {
			fn(lo, hi)
		}
		return
	}
	chunk := (hi - lo + w - 1) / w
	var wg sync.WaitGroup
	for k := 0; k < w; k++ {
		clo := lo + k*chunk
		chi := min(clo+chunk, hi)
		if clo >= chi {
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(clo, chi)
		}()
	}
	wg.Wait()
}

// buildTree transforms (widened SA, PLCP) into the interval tree and leaf
// links. Small blocks and single-worker sessions run one sweep inline; large
// blocks are cut at breakpoints (slots whose pruned lcp is zero, where the
// sweep stack collapses to the root) and the per-range sweeps run in
// parallel. The ranges double as the rewind spans.
func (f *MatchFinder) buildTree(n int) {
	f.spans = f.spans[:0]
	if f.workers <= 1 || n < parallelMinBlockSize {
		f.spans = append(f.spans, f.buildTreeRange(0, n))
		f.st.tree[0] = rootSentinel
		return
	}

	// Phase one: every worker scans its 16-aligned partition right to left
	// for the rightmost breakpoint it contains.
	w := f.workers
	part := (n/w + 15) &^ 15
	tree := f.st.tree
	leaf := f.st.leaf
	sub := uint32(f.minMatch - 1) //nolint:gosec // G115: minMatch validated
	var wg sync.WaitGroup
	for k := 0; k < w; k++ {
		lo := k * part
		hi := min(lo+part, n)
		if k == w-1 {
			hi = n
		}
		if lo >= hi {
			f.breaks[k] = -1
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			bp := -1
			for i := hi - 1; i >= lo; i-- {
				if leaf[tree[i]] <= sub {
					bp = i
					break
				}
			}
			f.breaks[k] = bp
		}()
	}
	wg.Wait()

	// A worker's effective range runs from the previous worker's breakpoint
	// to its own; workers without a breakpoint contribute nothing and their
	// neighbor's range grows. The last range always ends at the block size.
	prev := 0
	for k := 0; k < w-1; k++ {
		if bp := f.breaks[k]; bp > prev {
			f.spans = append(f.spans, treeSpan{start: prev, end: bp})
			prev = bp
		}
	}
	f.spans = append(f.spans, treeSpan{start: prev, end: n})

	// Phase two: per-range sweeps. Ranges are disjoint in the node array and
	// write disjoint leaf links (SA is a permutation), so no coordination is
	// needed beyond the final barrier.
	for k := range f.spans {
		s := f.spans[k]
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.spans[k] = f.buildTreeRange(s.start, s.end)
		}()
	}
	wg.Wait()
	f.st.tree[0] = rootSentinel
}
