// SPDX-License-Identifier: MIT
// Package corr: the stratification driver and caller-facing entry point.
//
// Run is a state machine over three terminal states:
//
//   - No-rows: a zero-row dataset returns an empty Result immediately.
//   - Unstratified: no stratification variable configured — the
//     single-stratum pipeline runs once on the whole dataset; fewer than
//     MinStratumRows observations is a configuration error here.
//   - Stratified: distinct stratum values enumerate in first-encountered
//     order (at most MaxStrata). Per value: typed-predicate row filter,
//     stratification column dropped, unused categorical levels dropped,
//     single-stratum pipeline. Sub-minimum strata contribute zero records
//     plus a StratumSkipped diagnostic; other strata are unaffected.
//
// Strata are mutually independent and evaluated sequentially; results are
// merged in enumeration order, so identical inputs produce identical
// output records.

package corr

import (
	"fmt"
	"time"

	"github.com/katalvlaran/metacorr/dataset"
	"github.com/katalvlaran/metacorr/metadata"
)

// Run computes the annotated correlation records of one model.
//
// The model dataset is consumed read-only: all per-stratum views and
// encodings are owned copies discarded before Run returns. The returned
// Result is freshly allocated per call.
//
// Errors (configuration, no partial output): ErrNilModel, ErrNoVariables,
// ErrUnknownVariable, ErrAdjOverlap, ErrTooFewRows, ErrNotCategorical,
// ErrTooManyStrata. Data-quality findings never error; they are returned
// as Result.Diagnostics.
func Run(model *dataset.ModelDataset, meta *metadata.MetaData, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	start := time.Now()

	if err := validateModel(model); err != nil {
		return nil, err
	}

	// No-rows state: terminal, non-exceptional.
	if model.Data.NRows() == 0 {
		return finish(&Result{}, start, "no observations: nothing to compute"), nil
	}

	// Unstratified state: one pipeline pass over the whole dataset.
	if model.StratVar == "" {
		if model.Data.NRows() < MinStratumRows {
			return nil, fmt.Errorf("model %q: %d rows: %w", model.Label, model.Data.NRows(), ErrTooFewRows)
		}
		res := &Result{}
		records, diags, err := runStratum(model.Data, model, meta, o, nil)
		if err != nil {
			return nil, err
		}
		res.Records, res.Diagnostics = records, diags

		return finish(res, start, fmt.Sprintf("processed %d pairs", len(records))), nil
	}

	// Stratified state.
	return runStratified(model, meta, o, start)
}

// runStratified enumerates strata and merges per-stratum pipeline output.
func runStratified(model *dataset.ModelDataset, meta *metadata.MetaData, o Options, start time.Time) (*Result, error) {
	col, err := model.Data.Column(model.StratVar)
	if err != nil {
		return nil, fmt.Errorf("stratification %q: %w", model.StratVar, ErrUnknownVariable)
	}
	if col.Kind != dataset.Categorical {
		return nil, fmt.Errorf("stratification %q: %w", model.StratVar, ErrNotCategorical)
	}

	values, err := model.Data.DistinctLabels(model.StratVar)
	if err != nil {
		return nil, err
	}
	if len(values) > MaxStrata {
		return nil, fmt.Errorf("stratification %q: %d values: %w", model.StratVar, len(values), ErrTooManyStrata)
	}

	res := &Result{}
	computed := 0
	for _, value := range values {
		sub, err := model.Data.Where(dataset.Predicate{Var: model.StratVar, Value: value})
		if err != nil {
			return nil, err
		}
		if err = sub.DropColumn(model.StratVar); err != nil {
			return nil, err
		}
		sub.DropUnusedLevels()

		if sub.NRows() < MinStratumRows {
			res.Diagnostics = emit(res.Diagnostics, o.logger, Diagnostic{
				Kind:   StratumSkipped,
				Model:  model.Label,
				Detail: fmt.Sprintf("%s=%s: %d rows below minimum %d", model.StratVar, value, sub.NRows(), MinStratumRows),
			})
			continue
		}

		records, diags, err := runStratum(sub, model, meta, o, res.Diagnostics)
		if err != nil {
			return nil, err
		}
		for i := range records {
			records[i].StratVar = model.StratVar
			records[i].Stratum = value
		}
		res.Records = append(res.Records, records...)
		res.Diagnostics = diags
		computed++
	}

	note := fmt.Sprintf("processed %d of %d strata of %s", computed, len(values), model.StratVar)

	return finish(res, start, note), nil
}

// runStratum is the single-stratum pipeline: adjustment preprocessing →
// correlation engine → annotation.
func runStratum(ds *dataset.Dataset, model *dataset.ModelDataset, meta *metadata.MetaData, o Options, diags []Diagnostic) ([]Record, []Diagnostic, error) {
	adj, diags, err := prepareAdjustment(ds, model.ACovs, model.Label, o, diags)
	if err != nil {
		return nil, diags, err
	}

	ps, err := computePairs(ds, model.RCovs, model.CCovs, adj)
	if err != nil {
		return nil, diags, err
	}

	return annotate(ps, model, meta, adj.vars), diags, nil
}

// validateModel enforces the caller-facing boundary preconditions.
func validateModel(model *dataset.ModelDataset) error {
	if model == nil || model.Data == nil {
		return ErrNilModel
	}
	if len(model.RCovs) == 0 || len(model.CCovs) == 0 {
		return fmt.Errorf("model %q: %w", model.Label, ErrNoVariables)
	}

	for _, group := range [][]string{model.RCovs, model.CCovs} {
		for _, name := range group {
			if !model.Data.Has(name) {
				return fmt.Errorf("model %q: %q: %w", model.Label, name, ErrUnknownVariable)
			}
		}
	}

	listed := make(map[string]bool, len(model.RCovs)+len(model.CCovs))
	for _, name := range model.RCovs {
		listed[name] = true
	}
	for _, name := range model.CCovs {
		listed[name] = true
	}
	for _, name := range model.ACovs {
		if listed[name] {
			return fmt.Errorf("model %q: %q: %w", model.Label, name, ErrAdjOverlap)
		}
	}

	return nil
}

// finish stamps elapsed time and the free-text annotation.
func finish(res *Result, start time.Time, note string) *Result {
	res.Elapsed = time.Since(start)
	res.Annotation = fmt.Sprintf("%s in %s", note, res.Elapsed)

	return res
}
