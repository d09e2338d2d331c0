package dataset

import (
	"fmt"
	"math"
)

// Dataset is an ordered collection of equally sized named columns.
//
// Column order is insertion order and is preserved by every derived copy;
// all traversals are deterministic.
type Dataset struct {
	cols  []Column
	index map[string]int
	nrows int
}

// New creates an empty dataset with a fixed row count.
//
// Returns ErrBadRowCount for negative rows.
func New(rows int) (*Dataset, error) {
	if rows < 0 {
		return nil, ErrBadRowCount
	}

	return &Dataset{index: make(map[string]int), nrows: rows}, nil
}

// NRows reports the number of observations.
func (d *Dataset) NRows() int { return d.nrows }

// NCols reports the number of columns.
func (d *Dataset) NCols() int { return len(d.cols) }

// Names returns column names in insertion order.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.cols))
	for i := range d.cols {
		names[i] = d.cols[i].Name
	}

	return names
}

// Has reports whether a column with the given name exists.
func (d *Dataset) Has(name string) bool {
	_, ok := d.index[name]

	return ok
}

// Column returns the named column. The returned pointer aliases internal
// storage and must be treated as read-only.
func (d *Dataset) Column(name string) (*Column, error) {
	i, ok := d.index[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
	}

	return &d.cols[i], nil
}

// Values returns the named column's numeric values (level indexes for
// categorical columns, NaN = missing). The slice aliases internal storage
// and must be treated as read-only.
func (d *Dataset) Values(name string) ([]float64, error) {
	c, err := d.Column(name)
	if err != nil {
		return nil, err
	}

	return c.Values, nil
}

// AddContinuous appends a real-valued column. NaN marks missing entries.
//
// Errors: ErrRowMismatch, ErrDuplicateColumn.
func (d *Dataset) AddContinuous(name string, values []float64) error {
	if err := d.admit(name, len(values)); err != nil {
		return err
	}

	v := make([]float64, len(values))
	copy(v, values)
	d.index[name] = len(d.cols)
	d.cols = append(d.cols, Column{Name: name, Kind: Continuous, Values: v})

	return nil
}

// AddCategorical appends a level-coded column from row labels. The empty
// string marks a missing entry; levels are assigned in first-encountered
// order.
//
// Errors: ErrRowMismatch, ErrDuplicateColumn.
func (d *Dataset) AddCategorical(name string, labels []string) error {
	if err := d.admit(name, len(labels)); err != nil {
		return err
	}

	var (
		levels []string
		lookup = make(map[string]int)
		values = make([]float64, len(labels))
	)
	for i, lab := range labels {
		if lab == "" {
			values[i] = math.NaN()
			continue
		}
		code, seen := lookup[lab]
		if !seen {
			code = len(levels)
			lookup[lab] = code
			levels = append(levels, lab)
		}
		values[i] = float64(code)
	}

	d.index[name] = len(d.cols)
	d.cols = append(d.cols, Column{Name: name, Kind: Categorical, Values: values, Levels: levels})

	return nil
}

// admit validates a pending column against dataset invariants.
func (d *Dataset) admit(name string, length int) error {
	if length != d.nrows {
		return fmt.Errorf("%q: %w", name, ErrRowMismatch)
	}
	if _, dup := d.index[name]; dup {
		return fmt.Errorf("%q: %w", name, ErrDuplicateColumn)
	}

	return nil
}

// Label decodes the categorical entry at row. ok is false when the value
// is missing.
//
// Errors: ErrUnknownColumn, ErrNotCategorical.
func (d *Dataset) Label(name string, row int) (label string, ok bool, err error) {
	c, err := d.Column(name)
	if err != nil {
		return "", false, err
	}
	if c.Kind != Categorical {
		return "", false, fmt.Errorf("%q: %w", name, ErrNotCategorical)
	}
	v := c.Values[row]
	if math.IsNaN(v) {
		return "", false, nil
	}

	return c.Levels[int(v)], true, nil
}

// DistinctLabels enumerates the non-missing labels of a categorical column
// in first-encountered row order. This is the stratum enumeration order.
//
// Errors: ErrUnknownColumn, ErrNotCategorical.
func (d *Dataset) DistinctLabels(name string) ([]string, error) {
	c, err := d.Column(name)
	if err != nil {
		return nil, err
	}
	if c.Kind != Categorical {
		return nil, fmt.Errorf("%q: %w", name, ErrNotCategorical)
	}

	var (
		out  []string
		seen = make(map[int]bool)
	)
	for _, v := range c.Values {
		if math.IsNaN(v) {
			continue
		}
		code := int(v)
		if !seen[code] {
			seen[code] = true
			out = append(out, c.Levels[code])
		}
	}

	return out, nil
}

// Where returns an owned copy restricted to rows matching the predicate
// (categorical column p.Var carries level label p.Value). The receiver is
// never mutated.
//
// Errors: ErrUnknownColumn, ErrNotCategorical.
func (d *Dataset) Where(p Predicate) (*Dataset, error) {
	c, err := d.Column(p.Var)
	if err != nil {
		return nil, err
	}
	if c.Kind != Categorical {
		return nil, fmt.Errorf("%q: %w", p.Var, ErrNotCategorical)
	}

	// Resolve the target level; an unknown label simply matches zero rows.
	target := -1
	for code, lab := range c.Levels {
		if lab == p.Value {
			target = code
			break
		}
	}

	var keep []int
	for row, v := range c.Values {
		if !math.IsNaN(v) && int(v) == target && target >= 0 {
			keep = append(keep, row)
		}
	}

	sub := &Dataset{index: make(map[string]int, len(d.cols)), nrows: len(keep)}
	for _, col := range d.cols {
		values := make([]float64, len(keep))
		for i, row := range keep {
			values[i] = col.Values[row]
		}
		levels := append([]string(nil), col.Levels...)
		sub.index[col.Name] = len(sub.cols)
		sub.cols = append(sub.cols, Column{Name: col.Name, Kind: col.Kind, Values: values, Levels: levels})
	}

	return sub, nil
}

// DropColumn removes a column in place. Intended for owned copies only
// (e.g., removing the stratification column after Where).
//
// Errors: ErrUnknownColumn.
func (d *Dataset) DropColumn(name string) error {
	i, ok := d.index[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrUnknownColumn)
	}

	d.cols = append(d.cols[:i], d.cols[i+1:]...)
	delete(d.index, name)
	for j := i; j < len(d.cols); j++ {
		d.index[d.cols[j].Name] = j
	}

	return nil
}

// DropUnusedLevels recompacts every categorical column so that Levels
// lists only levels actually present, preserving the original level
// order. Intended for owned copies after row filtering; values are
// remapped in place.
func (d *Dataset) DropUnusedLevels() {
	for i := range d.cols {
		c := &d.cols[i]
		if c.Kind != Categorical || len(c.Levels) == 0 {
			continue
		}

		used := make([]bool, len(c.Levels))
		for _, v := range c.Values {
			if !math.IsNaN(v) {
				used[int(v)] = true
			}
		}

		remap := make([]int, len(c.Levels))
		var levels []string
		for code, u := range used {
			if u {
				remap[code] = len(levels)
				levels = append(levels, c.Levels[code])
			}
		}
		if len(levels) == len(c.Levels) {
			continue // nothing unused
		}

		for row, v := range c.Values {
			if !math.IsNaN(v) {
				c.Values[row] = float64(remap[int(v)])
			}
		}
		c.Levels = levels
	}
}
