// SPDX-License-Identifier: MIT
// Package corr: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors. All pipeline stages
// MUST return these sentinels and tests MUST check them via errors.Is.
// Configuration errors abort the call with no partial output; data-quality
// findings are NOT errors — they travel as Result.Diagnostics.

package corr

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "corr: ..." for consistency and to allow
// easy grepping across logs. When context is essential (model label,
// variable name), wrap with fmt.Errorf("ctx: %w", ErrX) at the boundary —
// callers still match with errors.Is.

var (
	// ErrNilModel indicates a nil ModelDataset or a ModelDataset without data.
	ErrNilModel = errors.New("corr: nil model dataset")

	// ErrNoVariables indicates an empty outcome or exposure set.
	ErrNoVariables = errors.New("corr: outcome and exposure sets must be non-empty")

	// ErrTooFewRows is returned when an unstratified dataset holds fewer
	// than MinStratumRows observations. With stratification configured the
	// check is deferred per stratum and surfaces as diagnostics instead.
	ErrTooFewRows = errors.New("corr: dataset below minimum row count")

	// ErrAdjOverlap is returned when an adjustment variable is also listed
	// as an outcome or exposure.
	ErrAdjOverlap = errors.New("corr: adjustment variable overlaps outcomes or exposures")

	// ErrTooManyStrata is returned when the stratification variable carries
	// more than MaxStrata distinct values.
	ErrTooManyStrata = errors.New("corr: too many distinct stratification values")

	// ErrUnknownVariable indicates a model variable absent from the dataset.
	ErrUnknownVariable = errors.New("corr: unknown variable name")

	// ErrNotCategorical signals that the stratification variable is not a
	// categorical column.
	ErrNotCategorical = errors.New("corr: stratification variable is not categorical")
)
