// SPDX-License-Identifier: Apache-2.0
// Source: github.com/IlyaGrebnov/esa-matchfinder

package esamf

// MatchFinder is one match-finding session. Storage for the node array and
// the leaf-link table is allocated once at creation and reused for every
// parsed block. A session may be used by one goroutine at a time; distinct
// sessions are fully independent.
type MatchFinder struct {
	st sessionStorage

	maxBlockSize int
	minMatch     int
	maxMatch     int
	workers      int

	blockSize int
	pos       int

	spans  []treeSpan // node ranges written by the last build, cleared on rewind
	breaks []int      // per-worker breakpoint scratch
}

// New creates a session able to parse blocks up to maxBlockSize bytes.
// opts may be nil (defaults: match lengths 2..64, one worker).
func New(maxBlockSize int, opts *Options) (*MatchFinder, error) {
	if maxBlockSize < 0 || maxBlockSize > MaxBlockSize {
		return nil, ErrBlockSize
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.MinMatchLength < MinMatchLength ||
		opts.MinMatchLength > opts.MaxMatchLength ||
		opts.MaxMatchLength > MaxMatchLength {
		return nil, ErrMatchLengthRange
	}
	workers := opts.Workers
	if workers < 0 || workers > MaxWorkers {
		return nil, ErrWorkerCount
	}
	if workers == 0 {
		workers = 1
	}
	return &MatchFinder{
		st:           newSessionStorage(maxBlockSize),
		maxBlockSize: maxBlockSize,
		minMatch:     opts.MinMatchLength,
		maxMatch:     opts.MaxMatchLength,
		workers:      workers,
		spans:        make([]treeSpan, 0, workers),
		breaks:       make([]int, workers),
	}, nil
}

// Parse derives the suffix array, PLCP, interval tree and leaf links for
// block, replacing all state from any previous block, and positions the
// session at 0.
func (f *MatchFinder) Parse(block []byte) error {
	if len(block) > f.maxBlockSize {
		return ErrBlockTooLarge
	}
	f.blockSize = len(block)
	f.pos = 0
	f.spans = f.spans[:0]
	if len(block) == 0 {
		return nil
	}
	f.buildSuffixArray(block)
	f.computePLCP(block)
	f.widenSuffixArray(len(block))
	f.buildTree(len(block))
	return nil
}

// Position returns the next position the factorization will consume.
func (f *MatchFinder) Position() int {
	return f.pos
}

// BlockSize returns the size of the currently parsed block.
func (f *MatchFinder) BlockSize() int {
	return f.blockSize
}

// Rewind restores the session to target as if positions 0..target-1 had just
// been consumed in order: the offset stamps written by the current pass are
// cleared span by span, then the positions below target are replayed without
// emitting matches. The lcp and parent fields are untouched.
func (f *MatchFinder) Rewind(target int) error {
	if target < 0 || target >= f.blockSize {
		return ErrPosition
	}
	if f.pos == target {
		return nil
	}
	tree := f.st.tree
	for _, s := range f.spans {
		for i := s.start; i < s.end; i++ {
			tree[i] &^= offsetMask
		}
	}
	f.pos = 0
	f.Advance(target)
	return nil
}
