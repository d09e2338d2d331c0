package dataset

// VarKind tags a column's statistical role, fixed at ingestion.
//
//   - Continuous  — real-valued; participates in correlation as-is.
//   - Categorical — finite level set; dummy-encoded when used as an
//     adjustment, label-matched when used as a stratification variable.
type VarKind int

const (
	// Continuous marks a real-valued column (NaN = missing).
	Continuous VarKind = iota

	// Categorical marks a level-coded column. Values hold the level index
	// as float64 (NaN = missing); Levels lists labels in first-encountered
	// order.
	Categorical
)

// String returns the human-readable kind name.
func (k VarKind) String() string {
	if k == Categorical {
		return "categorical"
	}

	return "continuous"
}

// Column is one named variable of a Dataset.
//
// Values always has exactly NRows entries. For Categorical columns the
// entry is the index into Levels (or NaN when missing); Levels is nil for
// Continuous columns.
type Column struct {
	Name   string
	Kind   VarKind
	Values []float64
	Levels []string
}

// ModelSpec selects how a model was configured, which in turn selects the
// variable-map join key used during annotation.
//
//   - Interactive — variable lists supplied directly at call time; raw
//     cohort variable names are the join key.
//   - Batch — configuration driven by a predefined table that references
//     variables by canonical reference id.
type ModelSpec int

const (
	// Interactive mode: specs are raw cohort variable names.
	Interactive ModelSpec = iota

	// Batch mode: specs are canonical reference ids.
	Batch
)

// String returns the mode name as written into result records.
func (s ModelSpec) String() string {
	if s == Batch {
		return "Batch"
	}

	return "Interactive"
}

// ModelDataset bundles a dataset with the variable sets of one correlation
// model. It is produced upstream (file parsing and model resolution are
// external collaborators) and consumed read-only by the pipeline.
type ModelDataset struct {
	// Data is the row-observation table. Never mutated by the pipeline.
	Data *Dataset

	// Cohort names the data source; copied verbatim into every record.
	Cohort string

	// RCovs are outcome (row) variable names: ordered, unique.
	RCovs []string

	// CCovs are exposure (column) variable names: ordered, unique.
	CCovs []string

	// ACovs are adjustment variable names; empty means unadjusted.
	ACovs []string

	// Spec selects Interactive or Batch annotation semantics.
	Spec ModelSpec

	// Label is the free-text model label used in records and diagnostics.
	Label string

	// StratVar optionally names a single categorical stratification
	// variable; empty means the whole dataset is analyzed once.
	StratVar string
}

// Predicate is a typed stratum filter: rows match when the categorical
// column Var carries the level label Value.
type Predicate struct {
	Var   string
	Value string
}
