// SPDX-License-Identifier: Apache-2.0
// Source: github.com/IlyaGrebnov/esa-matchfinder

package esamf

// Options configures a session created with New.
type Options struct {
	// MinMatchLength is the shortest match reported (>= MinMatchLength).
	MinMatchLength int
	// MaxMatchLength is the longest match reported (<= MaxMatchLength).
	// Longer shared prefixes are clamped to this length.
	MaxMatchLength int
	// Workers is the number of workers the parse phase may fan out to
	// (0 = default, single worker). Factorization is always single-threaded.
	Workers int
}

// DefaultOptions returns the full match-length range and a single worker.
func DefaultOptions() *Options {
	return &Options{
		MinMatchLength: MinMatchLength,
		MaxMatchLength: MaxMatchLength,
	}
}
