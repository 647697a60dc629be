// SPDX-License-Identifier: Apache-2.0
// Source: github.com/IlyaGrebnov/esa-matchfinder

package esamf

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"sort"
	"testing"
)

func bruteSAandPLCP(data []byte) (sa []int, plcp []int) {
	n := len(data)
	sa = make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(a, b int) bool {
		return bytes.Compare(data[sa[a]:], data[sa[b]:]) < 0
	})
	plcp = make([]int, n)
	for i := 1; i < n; i++ {
		l := 0
		a, b := sa[i-1], sa[i]
		for a+l < n && b+l < n && data[a+l] == data[b+l] {
			l++
		}
		plcp[sa[i]] = l
	}
	return sa, plcp
}

func TestOracle_SuffixArrayAndPLCP(t *testing.T) {
	prng := rand.New(rand.NewPCG(5, 5))
	inputs := map[string][]byte{
		"single-byte": {0x41},
		"two-equal":   []byte("aa"),
		"run":         repeatByte('a', 64),
		"text":        []byte("the quick brown fox jumps over the lazy dog the quick fox"),
		"alpha-2":     randomInput(prng, 300, 2),
		"alpha-26":    randomInput(prng, 300, 26),
		"binary":      {0, 0, 1, 0, 0, 1, 0, 0, 0, 255, 254, 0},
	}
	for name, data := range inputs {
		t.Run(name, func(t *testing.T) {
			mf, err := New(len(data), nil)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			mf.buildSuffixArray(data)
			wantSA, wantPLCP := bruteSAandPLCP(data)
			for i := range data {
				if int(mf.st.sa32[i]) != wantSA[i] {
					t.Fatalf("SA[%d]: got %d, want %d", i, mf.st.sa32[i], wantSA[i])
				}
			}
			mf.computePLCP(data)
			for p := range data {
				if int(mf.st.leaf[p]) != wantPLCP[p] {
					t.Fatalf("PLCP[%d]: got %d, want %d", p, mf.st.leaf[p], wantPLCP[p])
				}
			}
		})
	}
}

func TestOracle_WidenSuffixArrayInPlace(t *testing.T) {
	for _, tc := range []struct {
		n       int
		workers int
	}{
		{n: 1, workers: 1},
		{n: 2, workers: 1},
		{n: 1023, workers: 1},
		{n: 65536, workers: 4}, // exercises the data-parallel upper half
		{n: 65537, workers: 4},
	} {
		t.Run(fmt.Sprintf("n-%d-workers-%d", tc.n, tc.workers), func(t *testing.T) {
			mf, err := New(tc.n, &Options{MinMatchLength: 2, MaxMatchLength: 64, Workers: tc.workers})
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			prng := rand.New(rand.NewPCG(uint64(tc.n), 9)) //nolint:gosec // G115: test sizes
			want := make([]uint64, tc.n)
			for i := 0; i < tc.n; i++ {
				v := uint32(prng.IntN(tc.n)) //nolint:gosec // G115: bounded by n
				mf.st.sa32[i] = int32(v)     //nolint:gosec // G115: bounded by n
				want[i] = uint64(v)
			}
			mf.widenSuffixArray(tc.n)
			for i := 0; i < tc.n; i++ {
				if mf.st.tree[i] != want[i] {
					t.Fatalf("widened entry %d: got %d, want %d", i, mf.st.tree[i], want[i])
				}
			}
		})
	}
}
