// SPDX-License-Identifier: Apache-2.0
// Source: github.com/IlyaGrebnov/esa-matchfinder

package esamf

import "errors"

// Sentinel errors for session creation and block handling.
var (
	// ErrBlockSize is returned by New when maxBlockSize is negative or
	// exceeds MaxBlockSize.
	ErrBlockSize = errors.New("invalid maximum block size")
	// ErrMatchLengthRange is returned by New when the configured match
	// lengths violate MinMatchLength <= min <= max <= MaxMatchLength.
	ErrMatchLengthRange = errors.New("invalid match length range")
	// ErrWorkerCount is returned by New when Workers is negative or exceeds
	// MaxWorkers.
	ErrWorkerCount = errors.New("invalid worker count")
	// ErrBlockTooLarge is returned by Parse when the block exceeds the
	// session's configured maximum.
	ErrBlockTooLarge = errors.New("block exceeds configured maximum size")
	// ErrPosition is returned by Rewind when the target lies outside the
	// parsed block.
	ErrPosition = errors.New("position out of range")
)
