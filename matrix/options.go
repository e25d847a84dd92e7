// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and factorization.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies them over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no time-based randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Each flag impacts behavior and is covered by tests.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFill is the value New writes into every cell when WithFill is absent.
	DefaultFill = 0.0

	// DefaultSeed seeds Random when WithSeed is absent or given 0.
	DefaultSeed int64 = 1

	// DefaultTolerance is the LUP pivot threshold: a pivot column whose largest
	// magnitude is below it marks the matrix as degenerate.
	DefaultTolerance = 1e-7

	// MaxStringElems caps the number of elements String renders before eliding.
	MaxStringElems = 200
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid = "matrix: WithTolerance: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	fill float64 // New: initial cell value
	seed int64   // Random: RNG seed (0 ⇒ DefaultSeed)
	eps  float64 // LUP: pivot tolerance
}

// WithFill sets the value New writes into every cell.
// Any float64 is accepted, NaN and ±Inf included, like Set and Fill.
func WithFill(v float64) Option {
	return func(o *Options) { o.fill = v }
}

// WithSeed fixes the seed of the generator used by Random.
// Same seed ⇒ identical matrices across runs and platforms; 0 selects DefaultSeed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithTolerance sets the LUP degeneracy threshold eps.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Notes:
//   - eps==0 only rejects exactly-zero pivot columns.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// defaultOptions returns the zero-config Options.
func defaultOptions() Options {
	return Options{
		fill: DefaultFill,
		seed: DefaultSeed,
		eps:  DefaultTolerance,
	}
}

// gatherOptions applies opts over the defaults in order (last writer wins).
// nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.seed == 0 {
		o.seed = DefaultSeed
	}

	return o
}
