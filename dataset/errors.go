// Package dataset: sentinel error set.
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on user-triggered error conditions.

package dataset

import "errors"

var (
	// ErrRowMismatch is returned when a column's length differs from the
	// dataset's declared row count.
	ErrRowMismatch = errors.New("dataset: column length does not match row count")

	// ErrDuplicateColumn is returned when a column name is added twice.
	ErrDuplicateColumn = errors.New("dataset: duplicate column name")

	// ErrUnknownColumn indicates that a referenced column name is not present.
	ErrUnknownColumn = errors.New("dataset: unknown column")

	// ErrNotCategorical signals that a categorical column was required
	// (level filtering, stratification) but the column is continuous.
	ErrNotCategorical = errors.New("dataset: column is not categorical")

	// ErrBadRowCount is returned when a dataset is created with a negative
	// row count.
	ErrBadRowCount = errors.New("dataset: row count must be non-negative")
)
