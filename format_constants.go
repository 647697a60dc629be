// SPDX-License-Identifier: Apache-2.0
// Source: github.com/IlyaGrebnov/esa-matchfinder

package esamf

// Interval node layout: one 64-bit word per suffix-array index, most
// significant field first:
//
//	| lcp : matchBits | offset : offsetBits | parent : offsetBits |
//
// lcp holds the pruned common-prefix length (actual lcp minus (min match
// length - 1), clamped), offset the one-based text position that most
// recently visited the interval (zero = untouched in the current pass),
// parent the node-array index of the parent interval (zero = root).

const (
	matchBits  = 6
	offsetBits = (64 - matchBits) / 2 // 29

	offsetShift = offsetBits
	lcpShift    = 2 * offsetBits

	parentMask = uint64(1)<<offsetBits - 1
	offsetMask = (uint64(1)<<offsetBits - 1) << offsetShift
)

// Size and configuration limits.
const (
	// MinMatchLength is the smallest configurable minimum match length.
	MinMatchLength = 2

	// MaxMatchLength is the longest match the finder can report, and the
	// minimum length for the output buffer passed to FindAllMatches.
	MaxMatchLength = 1 << matchBits // 64

	// MaxBlockSize is the largest block a session can be created for. Two
	// values of the offset field are reserved (zero marks an untouched
	// interval, the all-ones value the root sentinel), so usable one-based
	// visit stamps cover exactly this many positions.
	MaxBlockSize = 1<<offsetBits - 2

	// MaxWorkers bounds the worker count of a parallel session.
	MaxWorkers = 256
)

// Blocks below this size are widened and built sequentially regardless of
// the configured worker count; fan-out overhead dominates under it.
const parallelMinBlockSize = 65536
