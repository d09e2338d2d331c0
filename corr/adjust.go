// SPDX-License-Identifier: MIT
// Package corr: adjustment preprocessing.
//
// Purpose:
//   - Validate the adjustment set: covariates with ≤1 distinct non-missing
//     value carry no information and are dropped with a diagnostic.
//   - Encode categorical covariates as k−1 binary indicator columns
//     (reference = first level); missing source values propagate as NaN
//     through every indicator of that row.
//   - Repair collinearity: encoded columns perfectly correlated with an
//     earlier column are removed in a deterministic upper-triangle scan.
//
// The engine downstream assumes no zero-variance and no perfectly
// collinear adjustment columns remain; this file owns that guarantee.

package corr

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/metacorr/dataset"
)

// adjusted is the transient outcome of adjustment preprocessing for one
// stratum: the final encoded column set fed into the correlation engine.
// It is discarded after the engine runs.
type adjusted struct {
	// names are the final encoded column names, in encode order.
	names []string

	// cols are the encoded column values aligned with names; NaN = missing.
	cols [][]float64

	// vars lists the original adjustment variables with at least one
	// surviving encoded column, in model order. Joined into Record.AdjVars.
	vars []string

	// produced maps each original variable to the encoded column names it
	// generated (before collinearity repair).
	produced map[string][]string
}

// empty reports whether preprocessing left no usable adjustment columns,
// in which case the engine falls back to unadjusted mode.
func (a *adjusted) empty() bool { return len(a.names) == 0 }

// prepareAdjustment runs validate → encode → resolveCollinearity over the
// model's adjustment set. Diagnostics for dropped variables and columns are
// appended to diags; configuration problems (unknown variables) error out.
func prepareAdjustment(ds *dataset.Dataset, acovs []string, label string, o Options, diags []Diagnostic) (*adjusted, []Diagnostic, error) {
	adj := &adjusted{produced: make(map[string][]string)}
	if len(acovs) == 0 {
		return adj, diags, nil
	}

	// Stage 1 (Validate): drop constant covariates.
	kept, diags, err := validateAdjust(ds, acovs, label, o, diags)
	if err != nil {
		return nil, diags, err
	}

	// Stage 2 (Encode): dummy-encode categoricals, pass continuous through.
	diags, err = encodeAdjust(ds, kept, label, o, adj, diags)
	if err != nil {
		return nil, diags, err
	}

	// Stage 3 (Repair): remove perfectly collinear encoded columns.
	diags = resolveCollinearity(adj, label, o, diags)

	// Stage 4 (Trace): original variables with surviving columns, model order.
	surviving := make(map[string]bool, len(adj.names))
	for _, name := range adj.names {
		surviving[name] = true
	}
	for _, v := range kept {
		for _, name := range adj.produced[v] {
			if surviving[name] {
				adj.vars = append(adj.vars, v)
				break
			}
		}
	}

	return adj, diags, nil
}

// validateAdjust drops adjustment variables with ≤1 distinct non-missing
// value, emitting one diagnostic per dropped variable.
func validateAdjust(ds *dataset.Dataset, acovs []string, label string, o Options, diags []Diagnostic) ([]string, []Diagnostic, error) {
	var kept []string
	for _, name := range acovs {
		values, err := ds.Values(name)
		if err != nil {
			return nil, diags, fmt.Errorf("adjustment %q: %w", name, ErrUnknownVariable)
		}

		distinct := make(map[float64]bool)
		for _, v := range values {
			if !math.IsNaN(v) {
				distinct[v] = true
			}
		}
		if len(distinct) <= 1 {
			diags = emit(diags, o.logger, Diagnostic{
				Kind:   ConstantAdjustment,
				Model:  label,
				Detail: name,
			})
			continue
		}
		kept = append(kept, name)
	}

	return kept, diags, nil
}

// encodeAdjust materializes the encoded adjustment columns.
//
// Categorical with k levels → k−1 indicators named "<var>.<level>", one
// per non-reference level (reference = first level). A missing source
// value is NaN in every indicator derived from that row; the variable gets
// one MissingCategorical diagnostic. Continuous variables pass through as
// owned copies.
func encodeAdjust(ds *dataset.Dataset, kept []string, label string, o Options, adj *adjusted, diags []Diagnostic) ([]Diagnostic, error) {
	for _, name := range kept {
		col, err := ds.Column(name)
		if err != nil {
			return diags, fmt.Errorf("adjustment %q: %w", name, ErrUnknownVariable)
		}

		if col.Kind != dataset.Categorical {
			values := make([]float64, len(col.Values))
			copy(values, col.Values)
			adj.names = append(adj.names, name)
			adj.cols = append(adj.cols, values)
			adj.produced[name] = []string{name}
			continue
		}

		missing := false
		for _, level := range col.Levels[1:] { // reference = first level
			indicator := make([]float64, len(col.Values))
			target := float64(indexOf(col.Levels, level))
			for row, v := range col.Values {
				switch {
				case math.IsNaN(v):
					indicator[row] = math.NaN()
					missing = true
				case v == target:
					indicator[row] = 1
				default:
					indicator[row] = 0
				}
			}
			encoded := name + "." + level
			adj.names = append(adj.names, encoded)
			adj.cols = append(adj.cols, indicator)
			adj.produced[name] = append(adj.produced[name], encoded)
		}
		if missing {
			diags = emit(diags, o.logger, Diagnostic{
				Kind:   MissingCategorical,
				Model:  label,
				Detail: name,
			})
		}
	}

	return diags, nil
}

// resolveCollinearity scans the upper triangle of the pairwise Pearson
// correlation among encoded columns in column order; whenever a pair's
// correlation reaches 1 within eps, the second-encountered column is
// dropped. One diagnostic lists every dropped column.
//
// The scan runs over the full precomputed triangle: a column already
// marked dropped still disqualifies its later perfect partners, so of any
// group of identical columns exactly the first survives.
func resolveCollinearity(adj *adjusted, label string, o Options, diags []Diagnostic) []Diagnostic {
	n := len(adj.names)
	if n < 2 {
		return diags
	}

	dropped := make([]bool, n)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			if dropped[j] {
				continue
			}
			r, pairs := pairwisePearson(adj.cols[i], adj.cols[j])
			if pairs >= 2 && r >= 1-o.eps {
				dropped[j] = true
			}
		}
	}

	var removed []string
	var names []string
	var cols [][]float64
	for i := 0; i < n; i++ {
		if dropped[i] {
			removed = append(removed, adj.names[i])
			continue
		}
		names = append(names, adj.names[i])
		cols = append(cols, adj.cols[i])
	}
	adj.names, adj.cols = names, cols

	if len(removed) > 0 {
		diags = emit(diags, o.logger, Diagnostic{
			Kind:   CollinearDropped,
			Model:  label,
			Detail: strings.Join(removed, ", "),
		})
	}

	return diags
}

// pairwisePearson correlates the jointly non-missing entries of x and y.
func pairwisePearson(x, y []float64) (r float64, pairs int) {
	xs := make([]float64, 0, len(x))
	ys := make([]float64, 0, len(y))
	for i := range x {
		if !math.IsNaN(x[i]) && !math.IsNaN(y[i]) {
			xs = append(xs, x[i])
			ys = append(ys, y[i])
		}
	}
	if len(xs) < 2 {
		return math.NaN(), len(xs)
	}

	return stat.Correlation(xs, ys, nil), len(xs)
}

// indexOf returns the position of label in levels; levels always contain
// the label by construction.
func indexOf(levels []string, label string) int {
	for i, l := range levels {
		if l == label {
			return i
		}
	}

	return -1
}
