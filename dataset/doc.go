// Package dataset provides the typed row-observation table consumed by the
// correlation pipeline, plus the model specification that names which
// columns act as outcomes, exposures, adjustments and strata.
//
// Design principles:
//
//   - Named columns, never positional indexing. Every column carries an
//     explicit VarKind (Continuous | Categorical) fixed at ingestion and
//     trusted downstream — there is no implicit type dispatch.
//   - Missing values are math.NaN for every column. Categorical columns
//     store the level index as a float64 and keep their level labels in
//     first-encountered order.
//   - Filtering is a typed predicate (variable name + target label), not a
//     dynamically built expression. Where returns an owned copy; the source
//     dataset is never mutated.
//
// Typical construction:
//
//	ds := dataset.New(20)
//	_ = ds.AddContinuous("age", ages)
//	_ = ds.AddCategorical("sex", sexes) // "" marks a missing label
//
// All user-triggered failures return package sentinel errors matched via
// errors.Is; the package never panics on data.
package dataset
