// SPDX-License-Identifier: Apache-2.0
// Source: github.com/IlyaGrebnov/esa-matchfinder

package esamf

// Match is one back-reference: the Length bytes at the emitting position
// equal the Length bytes starting Offset bytes earlier in the block. The
// zero Match means "no match". Callers must treat it as a plain value; the
// two-field assignment compiles to a single 8-byte store on little-endian
// targets.
type Match struct {
	Length int32
	Offset int32
}

// FindAllMatches consumes the current position and writes its distance-
// optimal matches into matches, returning the count. matches must hold at
// least MaxMatchLength entries. The output staircase is strictly decreasing
// in Length and strictly decreasing in Offset: after the longest match,
// every further entry trades length for a closer source.
//
// The walk runs from the position's leaf interval to the root, stamping the
// position into every visited node. A match is emitted at a node whenever
// the stamp already stored there is newer than any stamp seen deeper in the
// walk; an older stamp can only repeat a source at a shorter length.
// Position 0 stores the first stamps and can emit nothing.
func (f *MatchFinder) FindAllMatches(matches []Match) int {
	p := f.pos
	f.pos++
	r := uint64(f.st.leaf[p])
	if r == 0 {
		return 0
	}
	tree := f.st.tree
	stamp := stampBits(p)
	base := int32(f.minMatch - 1) //nolint:gosec // G115: minMatch validated
	best := uint64(0)
	n := 0
	for {
		w := tree[r]
		tree[r] = nodeWithStamp(w, stamp)
		if prev := nodeStampBits(w); prev > best {
			best = prev
			matches[n] = Match{
				Length: base + int32(nodeLCP(w)),           //nolint:gosec // G115: lcp is 6 bits
				Offset: int32(p - stampPosition(prev)),     //nolint:gosec // G115: bounded by block size
			}
			n++
		}
		r = nodeParent(w)
		if r == 0 {
			return n
		}
	}
}

// FindAllMatchesInWindow behaves like FindAllMatches but drops matches whose
// offset exceeds window. It is a pure filter over the same walk: the stamps
// written are identical, so mixing windowed and unwindowed calls in one pass
// is safe.
func (f *MatchFinder) FindAllMatchesInWindow(window int, matches []Match) int {
	p := f.pos
	f.pos++
	r := uint64(f.st.leaf[p])
	if r == 0 {
		return 0
	}
	tree := f.st.tree
	stamp := stampBits(p)
	base := int32(f.minMatch - 1) //nolint:gosec // G115: minMatch validated
	best := uint64(0)
	n := 0
	for {
		w := tree[r]
		tree[r] = nodeWithStamp(w, stamp)
		if prev := nodeStampBits(w); prev > best {
			best = prev
			if offset := p - stampPosition(prev); offset <= window {
				matches[n] = Match{
					Length: base + int32(nodeLCP(w)), //nolint:gosec // G115: lcp is 6 bits
					Offset: int32(offset),            //nolint:gosec // G115: bounded by window
				}
				n++
			}
		}
		r = nodeParent(w)
		if r == 0 {
			return n
		}
	}
}

// FindBestMatch consumes the current position and returns only its longest
// match, the deepest stamped interval on the walk, or the zero Match when
// the position has none. The walk still stamps every interval on the path,
// so later positions observe the same state as with FindAllMatches.
func (f *MatchFinder) FindBestMatch() Match {
	p := f.pos
	f.pos++
	r := uint64(f.st.leaf[p])
	var m Match
	if r == 0 {
		return m
	}
	tree := f.st.tree
	stamp := stampBits(p)
	for {
		w := tree[r]
		tree[r] = nodeWithStamp(w, stamp)
		if prev := nodeStampBits(w); prev != 0 && m.Length == 0 {
			m.Length = int32(f.minMatch-1) + int32(nodeLCP(w)) //nolint:gosec // G115: lcp is 6 bits
			m.Offset = int32(p - stampPosition(prev))          //nolint:gosec // G115: bounded by block size
		}
		r = nodeParent(w)
		if r == 0 {
			return m
		}
	}
}

// Advance consumes n consecutive positions, stamping their walks without
// emitting matches. Equivalent to n discarded FindAllMatches calls; used to
// skip regions cheaply and by Rewind to replay a prefix. The caller must not
// advance past the block end.
func (f *MatchFinder) Advance(n int) {
	tree := f.st.tree
	for ; n > 0; n-- {
		p := f.pos
		f.pos++
		r := uint64(f.st.leaf[p])
		if r == 0 {
			continue
		}
		stamp := stampBits(p)
		for {
			w := tree[r]
			tree[r] = nodeWithStamp(w, stamp)
			r = nodeParent(w)
			if r == 0 {
				break
			}
		}
	}
}
