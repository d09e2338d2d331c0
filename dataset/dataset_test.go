package dataset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metacorr/dataset"
)

// TestNew_BadRowCount verifies that a negative row count errors.
func TestNew_BadRowCount(t *testing.T) {
	_, err := dataset.New(-1)
	assert.ErrorIs(t, err, dataset.ErrBadRowCount, "negative rows must error")
}

// TestAdd_Invariants verifies length and duplicate checks on ingestion.
func TestAdd_Invariants(t *testing.T) {
	ds, err := dataset.New(3)
	require.NoError(t, err)

	assert.ErrorIs(t, ds.AddContinuous("age", []float64{1, 2}), dataset.ErrRowMismatch,
		"short column must error")
	require.NoError(t, ds.AddContinuous("age", []float64{1, 2, 3}))
	assert.ErrorIs(t, ds.AddContinuous("age", []float64{4, 5, 6}), dataset.ErrDuplicateColumn,
		"duplicate name must error")
	assert.ErrorIs(t, ds.AddCategorical("age", []string{"a", "b", "c"}), dataset.ErrDuplicateColumn,
		"duplicate across kinds must error")
}

// TestAddCategorical_LevelOrderAndMissing checks first-encountered level
// order and the empty-string missing marker.
func TestAddCategorical_LevelOrderAndMissing(t *testing.T) {
	ds, err := dataset.New(5)
	require.NoError(t, err)
	require.NoError(t, ds.AddCategorical("sex", []string{"F", "M", "", "F", "M"}))

	col, err := ds.Column("sex")
	require.NoError(t, err)
	assert.Equal(t, dataset.Categorical, col.Kind)
	assert.Equal(t, []string{"F", "M"}, col.Levels, "levels follow first-encountered order")
	assert.True(t, math.IsNaN(col.Values[2]), "empty label encodes as NaN")
	assert.Equal(t, 0.0, col.Values[0], "first level encodes as 0")
	assert.Equal(t, 1.0, col.Values[1], "second level encodes as 1")
}

// TestLabel_DecodesAndReportsMissing verifies label decoding.
func TestLabel_DecodesAndReportsMissing(t *testing.T) {
	ds, err := dataset.New(2)
	require.NoError(t, err)
	require.NoError(t, ds.AddCategorical("sex", []string{"M", ""}))
	require.NoError(t, ds.AddContinuous("age", []float64{30, 40}))

	lab, ok, err := ds.Label("sex", 0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "M", lab)

	_, ok, err = ds.Label("sex", 1)
	require.NoError(t, err)
	assert.False(t, ok, "missing entry reports ok=false")

	_, _, err = ds.Label("age", 0)
	assert.ErrorIs(t, err, dataset.ErrNotCategorical)
	_, _, err = ds.Label("nope", 0)
	assert.ErrorIs(t, err, dataset.ErrUnknownColumn)
}

// TestDistinctLabels_FirstEncounteredOrder checks stratum enumeration
// order: row order of first appearance, missing skipped.
func TestDistinctLabels_FirstEncounteredOrder(t *testing.T) {
	ds, err := dataset.New(6)
	require.NoError(t, err)
	require.NoError(t, ds.AddCategorical("site", []string{"c", "", "a", "c", "b", "a"}))

	labels, err := ds.DistinctLabels("site")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, labels)
}

// TestWhere_FiltersAndOwnsCopy verifies predicate filtering and that the
// returned dataset is an owned copy.
func TestWhere_FiltersAndOwnsCopy(t *testing.T) {
	ds, err := dataset.New(4)
	require.NoError(t, err)
	require.NoError(t, ds.AddCategorical("sex", []string{"M", "F", "M", "F"}))
	require.NoError(t, ds.AddContinuous("age", []float64{30, 40, 50, 60}))

	sub, err := ds.Where(dataset.Predicate{Var: "sex", Value: "F"})
	require.NoError(t, err)
	assert.Equal(t, 2, sub.NRows())

	vals, err := sub.Values("age")
	require.NoError(t, err)
	assert.Equal(t, []float64{40, 60}, vals)

	// Mutating the copy must not leak into the source.
	require.NoError(t, sub.DropColumn("sex"))
	assert.True(t, ds.Has("sex"), "source dataset must stay intact")
	assert.Equal(t, 4, ds.NRows())

	// Unknown label matches zero rows, not an error.
	empty, err := ds.Where(dataset.Predicate{Var: "sex", Value: "X"})
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NRows())

	// Predicate over a continuous column is a caller error.
	_, err = ds.Where(dataset.Predicate{Var: "age", Value: "30"})
	assert.ErrorIs(t, err, dataset.ErrNotCategorical)
}

// TestDropUnusedLevels_RemapsCodes verifies level compaction after
// filtering: unused levels vanish, order is preserved, codes remap.
func TestDropUnusedLevels_RemapsCodes(t *testing.T) {
	ds, err := dataset.New(6)
	require.NoError(t, err)
	require.NoError(t, ds.AddCategorical("site", []string{"a", "b", "c", "a", "b", "c"}))
	require.NoError(t, ds.AddCategorical("sex", []string{"M", "M", "M", "F", "F", "F"}))

	sub, err := ds.Where(dataset.Predicate{Var: "sex", Value: "F"})
	require.NoError(t, err)
	sub.DropUnusedLevels()

	site, err := sub.Column("site")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, site.Levels, "all site levels still used")

	sex, err := sub.Column("sex")
	require.NoError(t, err)
	assert.Equal(t, []string{"F"}, sex.Levels, "unused level M dropped")
	assert.Equal(t, []float64{0, 0, 0}, sex.Values, "codes remapped to the compacted level set")
}

// TestDropColumn_ReindexesRemaining verifies in-place column removal.
func TestDropColumn_ReindexesRemaining(t *testing.T) {
	ds, err := dataset.New(2)
	require.NoError(t, err)
	require.NoError(t, ds.AddContinuous("a", []float64{1, 2}))
	require.NoError(t, ds.AddContinuous("b", []float64{3, 4}))
	require.NoError(t, ds.AddContinuous("c", []float64{5, 6}))

	require.NoError(t, ds.DropColumn("b"))
	assert.Equal(t, []string{"a", "c"}, ds.Names())

	vals, err := ds.Values("c")
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6}, vals, "index stays consistent after removal")

	assert.ErrorIs(t, ds.DropColumn("b"), dataset.ErrUnknownColumn)
}
