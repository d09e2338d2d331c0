// SPDX-License-Identifier: MIT

package corr

import "time"

// NoAdjustment is written into Record.AdjVars when the final adjustment
// set is empty (unadjusted mode or a fully repaired-away adjustment set).
const NoAdjustment = "None"

// Record is one fully annotated (outcome, exposure) pair within exactly
// one stratum (or the unstratified whole).
type Record struct {
	// Cohort names the data source.
	Cohort string

	// Spec is the model configuration mode ("Interactive" or "Batch").
	Spec string

	// Model is the free-text model label.
	Model string

	// OutcomeSpec and ExposureSpec are the raw variable names as evaluated
	// against the dataset (Batch mode recovers the cohort name here).
	OutcomeSpec  string
	ExposureSpec string

	// Outcome and Exposure are display labels; they fall back to the raw
	// spec when no metadata matches.
	Outcome  string
	Exposure string

	// OutcomeUID and ExposureUID are canonical cross-cohort identifiers;
	// they fall back to the raw spec when no metadata matches.
	OutcomeUID  string
	ExposureUID string

	// Corr is the (partial) Spearman correlation in [-1, 1]; NaN when the
	// pair had too few jointly observed rows.
	Corr float64

	// N is the jointly non-missing observation count for the pair.
	N int

	// PValue is the two-sided t-approximation significance in [0, 1];
	// NaN when degrees of freedom are exhausted.
	PValue float64

	// AdjVars joins the adjustment variable names that survived
	// preprocessing, or NoAdjustment.
	AdjVars string

	// StratVar and Stratum tag the record's subgroup; both are empty for
	// unstratified runs.
	StratVar string
	Stratum  string
}

// Result is the outcome of one Run call. It is freshly allocated per call
// and immutable thereafter by convention.
type Result struct {
	// Records holds one entry per (outcome, exposure) pair per stratum,
	// in outcome-major pair order within stratum-enumeration order.
	Records []Record

	// Diagnostics lists data-quality findings recovered during the run
	// (dropped columns, skipped strata). Never fatal.
	Diagnostics []Diagnostic

	// Elapsed is the total processing time.
	Elapsed time.Duration

	// Annotation is a free-text processing-time / empty-result note,
	// for diagnostics only — never used for control flow.
	Annotation string
}
