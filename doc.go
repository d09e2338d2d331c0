// Package metacorr computes covariate-adjusted Spearman rank correlations
// between outcome and exposure variables of a tabular cohort dataset, with
// per-pair sample counts, high-precision two-sided p-values, and
// metadata-driven annotation — optionally repeated across strata.
//
// 🚀 What is metacorr?
//
//	A deterministic, synchronous analysis core for cross-cohort
//	metabolomics-style correlation models:
//	  • Pairwise-complete Spearman correlation matrices
//	  • Partial (covariate-adjusted) rank correlation
//	  • Dummy encoding of categorical covariates with collinearity repair
//	  • Student's-t two-sided p-values with far-tail precision
//	  • Long-form records annotated with display labels and cross-cohort uids
//	  • Independent per-stratum analysis with structured diagnostics
//
// ✨ Why choose metacorr?
//
//   - Deterministic — fixed traversal orders, no global state, no randomness
//   - Honest errors — sentinel error set, errors.Is-friendly, no panics on data
//   - Read-only inputs — caller datasets are never mutated, only owned copies
//   - Structured diagnostics — dropped columns and skipped strata are reported
//     on the result, not buried in log output
//
// Everything is organized under three subpackages:
//
//	dataset/  — typed row-observation table, model specification, stratum filters
//	metadata/ — metabolite table and cohort variable map lookups
//	corr/     — adjustment preprocessing, correlation engine, annotation,
//	            stratification driver (the caller-facing corr.Run)
//
// Quick sketch:
//
//	model := &dataset.ModelDataset{Data: ds, Cohort: "alpha",
//	    RCovs: []string{"lactose"}, CCovs: []string{"age"}, Label: "age model"}
//	res, err := corr.Run(model, meta)
//
// Dive into each package's doc.go for full examples and edge-case policies.
//
//	go get github.com/katalvlaran/metacorr
package metacorr
