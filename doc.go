// SPDX-License-Identifier: Apache-2.0
// Source: github.com/IlyaGrebnov/esa-matchfinder

/*
Package esamf finds all distance-optimal Lempel–Ziv matches in a block of
bytes using an enhanced suffix array.

A session parses one block at a time: the suffix array and permuted-LCP
array are built, then condensed into a pruned LCP-interval tree walked
bottom-up during a left-to-right factorization. For every position the
finder reports the complete staircase of distance-optimal back-references:
for each usable length, the closest earlier occurrence.

# Usage

	mf, err := esamf.New(1<<20, nil) // match lengths 2..64, one worker
	if err != nil {
		...
	}
	if err := mf.Parse(block); err != nil {
		...
	}
	matches := make([]esamf.Match, esamf.MaxMatchLength)
	for pos := 0; pos < len(block); pos++ {
		n := mf.FindAllMatches(matches)
		// matches[:n], longest first
	}

FindBestMatch returns only the longest match per position, Advance skips
positions while keeping the interval state consistent, and Rewind restarts
a pass from an arbitrary position. Parsing can fan out across workers
(Options.Workers); the factorization side of a session is single-threaded
by contract.
*/
package esamf
