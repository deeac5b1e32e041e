// SPDX-License-Identifier: MIT
// Package: graphwalk/builder
//
// errors.go - sentinel errors for the builder package.
// Callers branch with errors.Is; constructors attach method context via %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that construction could not proceed, e.g. a
// nil constructor or a core mutation failure.
var ErrConstructFailed = errors.New("builder: construction failed")
