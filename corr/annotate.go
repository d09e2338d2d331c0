// SPDX-License-Identifier: MIT
// Package corr: result annotation.
//
// Purpose:
//   - Reshape the per-pair corr/n/p matrices into long form: one Record per
//     (outcome, exposure) pair, outcome-major, carrying cohort, spec mode,
//     model label and the joined adjustment names.
//   - Join display labels and cross-cohort identifiers from metadata.
//
// Join sequence per variable (outcome and exposure independently):
//
//  1. Default: display label = uid = raw spec.
//  2. Metabolite table, keyed by metabolite id (case-insensitive):
//     match → label = display name, uid = universal id.
//  3. Cohort variable map, key depending on the model spec:
//     - Interactive: key = cohort variable name; match → label =
//       definition, uid = reference id.
//     - Batch: key = reference id (batch tables reference variables by
//       canonical id, not raw cohort name); match → the record's spec is
//       replaced by the recovered cohort variable name and the label by
//       the definition; the uid keeps its step-2 value (the raw spec —
//       already canonical — when the metabolite table did not match).
//
// Unmatched names pass through unchanged at every step.

package corr

import (
	"strings"

	"github.com/katalvlaran/metacorr/dataset"
	"github.com/katalvlaran/metacorr/metadata"
)

// annotate reshapes ps into fully annotated records. adjVars lists the
// original adjustment variables that survived preprocessing (possibly
// empty → NoAdjustment).
func annotate(ps *pairStats, model *dataset.ModelDataset, meta *metadata.MetaData, adjVars []string) []Record {
	adjoined := NoAdjustment
	if len(adjVars) > 0 {
		adjoined = strings.Join(adjVars, ", ")
	}

	records := make([]Record, 0, len(ps.rcovs)*len(ps.ccovs))
	for i, rname := range ps.rcovs {
		outSpec, outLabel, outUID := annotateVariable(rname, model.Spec, meta)
		for j, cname := range ps.ccovs {
			expSpec, expLabel, expUID := annotateVariable(cname, model.Spec, meta)
			records = append(records, Record{
				Cohort:       model.Cohort,
				Spec:         model.Spec.String(),
				Model:        model.Label,
				OutcomeSpec:  outSpec,
				ExposureSpec: expSpec,
				Outcome:      outLabel,
				Exposure:     expLabel,
				OutcomeUID:   outUID,
				ExposureUID:  expUID,
				Corr:         ps.corr[i][j],
				N:            ps.n[i][j],
				PValue:       ps.pval[i][j],
				AdjVars:      adjoined,
			})
		}
	}

	return records
}

// annotateVariable resolves one raw variable spec into (spec, label, uid)
// following the documented join sequence.
func annotateVariable(raw string, mode dataset.ModelSpec, meta *metadata.MetaData) (spec, label, uid string) {
	spec, label, uid = raw, raw, raw

	if mb, ok := meta.Metabolite(raw); ok {
		label, uid = mb.Name, mb.UID
	}

	switch mode {
	case dataset.Interactive:
		if v, ok := meta.VariableByName(raw); ok {
			label, uid = v.Definition, v.RefID
		}
	case dataset.Batch:
		if v, ok := meta.VariableByRef(raw); ok {
			spec, label = v.CohortName, v.Definition
		}
	}

	return spec, label, uid
}
