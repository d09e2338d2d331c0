// SPDX-License-Identifier: MIT

// Package corr: functional configuration for the pipeline.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Numeric precision is an explicit per-call parameter, never a
//     process-wide override.
//   - Options fields are unexported; public entry points consume ...Option.

package corr

import (
	"math"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance for the "correlation equals 1"
	// collinearity test: encoded columns with r ≥ 1−eps are considered
	// perfectly collinear.
	DefaultEpsilon = 1e-12

	// MinStratumRows is the minimum observation count an evaluated
	// (sub)dataset must hold for the pipeline to proceed.
	MinStratumRows = 15

	// MaxStrata caps the number of distinct stratification values; more is
	// a configuration error.
	MaxStrata = 10
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "corr: WithEpsilon: eps must be finite, non-negative"
	panicLoggerNil      = "corr: WithLogger: logger must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps    float64     // >= 0; DefaultEpsilon
	logger *zap.Logger // never nil; zap.NewNop() by default
}

// WithEpsilon sets the collinearity tolerance eps. The tolerance exists
// because encoded duplicate columns reach r == 1 only up to rank-arithmetic
// noise; eps is a per-call parameter, never process-wide state.
//
// Panics with a stable message when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithLogger routes diagnostic warnings through the given zap logger.
// The default is zap.NewNop(): diagnostics are still collected on the
// Result, just not logged.
//
// Panics with a stable message when logger is nil.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = logger }
}

// gatherOptions applies user-provided setters on top of defaults.
// Last-writer-wins; stable for a given sequence of setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:    DefaultEpsilon,
		logger: zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
