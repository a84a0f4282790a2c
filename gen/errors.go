// SPDX-License-Identifier: MIT
// Package: symbolic/gen
//
// errors.go: sentinel errors. Generators wrap them with the method name;
// match with errors.Is.

package gen

import "errors"

// ErrTooSmall indicates a size parameter below the generator's minimum.
var ErrTooSmall = errors.New("gen: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("gen: probability out of range")

// ErrNeedRandSource indicates a stochastic generator called without an RNG.
var ErrNeedRandSource = errors.New("gen: rng is required")
