// SPDX-License-Identifier: MIT

// Package corr is the correlation pipeline: adjustment preprocessing,
// the (partial) Spearman correlation engine, result annotation, and the
// stratification driver that repeats the pipeline per subgroup.
//
// 🚀 What does corr compute?
//
//	For every (outcome, exposure) pair of a dataset.ModelDataset:
//	  • the pairwise-complete Spearman rank correlation — or, when
//	    adjustment covariates are configured, the Spearman partial
//	    correlation controlling for the full encoded adjustment set,
//	  • the jointly non-missing sample count n,
//	  • a two-sided p-value from the exact Student's-t approximation,
//	    computed through the t survival function so values far below
//	    double rounding thresholds stay meaningful for downstream
//	    multiple-testing correction.
//
// The single public entry point is Run:
//
//	res, err := corr.Run(model, meta)            // defaults
//	res, err := corr.Run(model, meta,
//	    corr.WithEpsilon(1e-12),                 // collinearity tolerance
//	    corr.WithLogger(logger))                 // zap warning channel
//
// Pipeline stages (one stratum):
//
//  1. AdjustmentPreprocessor — drop constant covariates, dummy-encode
//     categorical covariates (k levels → k−1 indicators, NaN propagates),
//     drop perfectly collinear encoded columns (upper-triangle scan,
//     first column wins).
//  2. CorrelationEngine — outcomes are always rows, exposures always
//     columns; n and p are per-pair.
//  3. ResultAnnotator — long-form records with metabolite display names,
//     universal ids, and cohort variable-map labels (Interactive joins by
//     cohort name, Batch by reference id).
//
// Stratification: distinct stratum values in first-encountered order,
// at most MaxStrata; strata with fewer than MinStratumRows observations
// contribute zero records plus a StratumSkipped diagnostic.
//
// Error model:
//   - configuration errors (sentinels below) abort with no partial output;
//   - data-quality findings are returned as Result.Diagnostics and logged
//     at Warn level — the call still succeeds;
//   - an empty-but-valid computation yields a zero-record Result with an
//     explanatory Annotation; callers branch on len(Records), not on error.
//
// Determinism: fixed traversal orders everywhere, no global numeric state
// (precision is an explicit option), strata evaluated and merged in
// enumeration order. Identical inputs produce identical results.
package corr
