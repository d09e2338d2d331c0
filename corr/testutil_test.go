package corr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metacorr/corr"
	"github.com/katalvlaran/metacorr/dataset"
	"github.com/katalvlaran/metacorr/metadata"
)

// newDataset builds an empty dataset or fails the test.
func newDataset(t *testing.T, rows int) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(rows)
	require.NoError(t, err)

	return ds
}

// addCont appends a continuous column or fails the test.
func addCont(t *testing.T, ds *dataset.Dataset, name string, values []float64) {
	t.Helper()
	require.NoError(t, ds.AddContinuous(name, values))
}

// addCat appends a categorical column or fails the test.
func addCat(t *testing.T, ds *dataset.Dataset, name string, labels []string) {
	t.Helper()
	require.NoError(t, ds.AddCategorical(name, labels))
}

// seq returns 1..n as float64.
func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}

	return out
}

// repeatBlocks returns n labels cycling through blocks of the given size:
// block 0 gets labels[0], block 1 labels[1], and so on.
func repeatBlocks(n, block int, labels ...string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = labels[(i/block)%len(labels)]
	}

	return out
}

// emptyMeta is a valid no-op metadata table.
func emptyMeta() *metadata.MetaData {
	return metadata.New(nil, nil)
}

// run wires a ModelDataset with fixed cohort and label and calls corr.Run
// against an empty metadata table.
func run(t *testing.T, ds *dataset.Dataset, rcovs, ccovs, acovs []string, stratVar string, opts ...corr.Option) (*corr.Result, error) {
	t.Helper()
	model := &dataset.ModelDataset{
		Data:     ds,
		Cohort:   "alpha",
		RCovs:    rcovs,
		CCovs:    ccovs,
		ACovs:    acovs,
		Label:    "test model",
		StratVar: stratVar,
	}

	return corr.Run(model, emptyMeta(), opts...)
}
