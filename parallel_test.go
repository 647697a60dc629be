// SPDX-License-Identifier: Apache-2.0
// Source: github.com/IlyaGrebnov/esa-matchfinder

package esamf

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

func parallelTestInputs() map[string][]byte {
	prng := rand.New(rand.NewPCG(42, 42))
	dense := repeatByte('a', 100_000) // almost no breakpoints
	sparse := randomInput(prng, 200_000, 26)
	mixed := randomInput(prng, 100_000, 2)
	mixed = append(mixed, repeatByte('b', 50_000)...)
	mixed = append(mixed, randomInput(prng, 50_000, 26)...)
	return map[string][]byte{
		"dense-run": dense,
		"sparse":    sparse,
		"mixed":     mixed,
	}
}

func TestParallelBuild_BitIdenticalToSingleWorker(t *testing.T) {
	for inputName, data := range parallelTestInputs() {
		serial, err := New(len(data), &Options{MinMatchLength: 2, MaxMatchLength: 64, Workers: 1})
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if err := serial.Parse(data); err != nil {
			t.Fatalf("Parse failed: %v", err)
		}

		for _, workers := range []int{2, 3, 4, 8, 16} {
			t.Run(fmt.Sprintf("%s/workers-%d", inputName, workers), func(t *testing.T) {
				parallel, err := New(len(data), &Options{
					MinMatchLength: 2,
					MaxMatchLength: 64,
					Workers:        workers,
				})
				if err != nil {
					t.Fatalf("New failed: %v", err)
				}
				if err := parallel.Parse(data); err != nil {
					t.Fatalf("Parse failed: %v", err)
				}
				for i := range data {
					if serial.st.tree[i] != parallel.st.tree[i] {
						t.Fatalf("node %d differs: %#x vs %#x",
							i, serial.st.tree[i], parallel.st.tree[i])
					}
					if serial.st.leaf[i] != parallel.st.leaf[i] {
						t.Fatalf("leaf link %d differs: %d vs %d",
							i, serial.st.leaf[i], parallel.st.leaf[i])
					}
				}
				if err := parallel.Validate(); err != nil {
					t.Errorf("Validate failed: %v", err)
				}
			})
		}
	}
}

func TestParallelBuild_SameMatches(t *testing.T) {
	data := parallelTestInputs()["mixed"]
	serial, err := New(len(data), &Options{MinMatchLength: 2, MaxMatchLength: 64, Workers: 1})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	parallel, err := New(len(data), &Options{MinMatchLength: 2, MaxMatchLength: 64, Workers: 8})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	want := runFullScan(t, serial, data)
	got := runFullScan(t, parallel, data)
	for p := range data {
		if !matchListsEqual(got[p], want[p]) {
			t.Fatalf("position %d: parallel build diverged: %v vs %v", p, got[p], want[p])
		}
	}
}

func TestParallelBuild_RewindSpansCoverAllStamps(t *testing.T) {
	data := parallelTestInputs()["sparse"]
	mf, err := New(len(data), &Options{MinMatchLength: 2, MaxMatchLength: 64, Workers: 8})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := mf.Parse(data); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	fresh := append([]uint64(nil), mf.st.tree[:len(data)]...)

	mf.Advance(len(data))
	if err := mf.Rewind(0); err != nil {
		t.Fatalf("Rewind failed: %v", err)
	}
	for i := range data {
		if mf.st.tree[i] != fresh[i] {
			t.Fatalf("node %d not restored by rewind: %#x vs %#x", i, mf.st.tree[i], fresh[i])
		}
	}
}
