// SPDX-License-Identifier: MIT

package corr

import "go.uber.org/zap"

// DiagnosticKind classifies a recovered data-quality finding.
type DiagnosticKind int

const (
	// ConstantAdjustment — an adjustment variable with ≤1 distinct
	// non-missing value was dropped before encoding.
	ConstantAdjustment DiagnosticKind = iota

	// CollinearDropped — encoded adjustment columns perfectly correlated
	// with an earlier column were removed.
	CollinearDropped

	// MissingCategorical — a categorical adjustment variable carries
	// missing values; they propagate as NaN through its indicators.
	MissingCategorical

	// StratumSkipped — a stratum below MinStratumRows contributed zero
	// records.
	StratumSkipped
)

// String returns the stable kind name used in logs.
func (k DiagnosticKind) String() string {
	switch k {
	case ConstantAdjustment:
		return "constant_adjustment_dropped"
	case CollinearDropped:
		return "collinear_columns_dropped"
	case MissingCategorical:
		return "missing_categorical_values"
	case StratumSkipped:
		return "stratum_skipped"
	}

	return "unknown"
}

// Diagnostic is one structured data-quality finding. Diagnostics replace
// free-text warnings as the reporting channel: they ride on the Result and
// are additionally emitted through the configured logger.
type Diagnostic struct {
	// Kind classifies the finding.
	Kind DiagnosticKind

	// Model is the model label the finding belongs to.
	Model string

	// Detail names the affected variables, columns or stratum value.
	Detail string
}

// emit appends d and mirrors it to the logger at Warn level.
func emit(diags []Diagnostic, logger *zap.Logger, d Diagnostic) []Diagnostic {
	logger.Warn(d.Kind.String(),
		zap.String("model", d.Model),
		zap.String("detail", d.Detail))

	return append(diags, d)
}
