// SPDX-License-Identifier: Apache-2.0
// Source: github.com/IlyaGrebnov/esa-matchfinder

package esamf

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Validate checks the structural invariants of the parsed block's interval
// tree: the root sentinel is intact, every leaf link reaches the root within
// the pruned depth bound, every reachable node's lcp lies in the pruned
// range, and lcp strictly decreases toward the root. Intended for tests and
// diagnostics; a successful Parse always yields a valid tree.
func (f *MatchFinder) Validate() error {
	if f.blockSize == 0 {
		return nil
	}
	if f.st.tree[0] != rootSentinel {
		return fmt.Errorf("esamf: root sentinel corrupted: %#016x", f.st.tree[0])
	}
	clipHi := uint64(f.maxMatch - f.minMatch + 1) //nolint:gosec // G115: range validated

	verified := bitset.New(uint(f.blockSize)) //nolint:gosec // G115: blockSize >= 0
	for p := 0; p < f.blockSize; p++ {
		r := uint64(f.st.leaf[p])
		if r >= uint64(f.blockSize) {
			return fmt.Errorf("esamf: position %d: leaf link %d out of range", p, r)
		}
		prevLCP := clipHi + 1
		for steps := uint64(0); r != 0; steps++ {
			if steps >= clipHi {
				return fmt.Errorf("esamf: position %d: no root within %d steps", p, clipHi)
			}
			w := f.st.tree[r]
			lcp := nodeLCP(w)
			if lcp == 0 || lcp > clipHi {
				return fmt.Errorf("esamf: node %d: lcp %d outside (0, %d]", r, lcp, clipHi)
			}
			if lcp >= prevLCP {
				return fmt.Errorf("esamf: node %d: lcp %d not below child lcp %d", r, lcp, prevLCP)
			}
			if verified.Test(uint(r)) {
				break // chain above already checked from another leaf
			}
			verified.Set(uint(r))
			prevLCP = lcp
			r = nodeParent(w)
			if r >= uint64(f.blockSize) {
				return fmt.Errorf("esamf: parent link %d out of range", r)
			}
		}
	}
	return nil
}
