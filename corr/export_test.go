// SPDX-License-Identifier: MIT
// White-box access for tests: re-export selected private kernels so the
// black-box test package can exercise them directly.

package corr

import "github.com/katalvlaran/metacorr/dataset"

// Exported aliases of private kernels.
var (
	AverageRanks        = averageRanks
	TTwoSided           = tTwoSided
	SpearmanPair        = spearmanPair
	PartialSpearmanPair = partialSpearmanPair
)

// PrepareAdjustment exposes the preprocessing stage (validate → encode →
// collinearity repair) with options resolved from opts.
func PrepareAdjustment(ds *dataset.Dataset, acovs []string, label string, opts ...Option) (names []string, cols [][]float64, vars []string, diags []Diagnostic, err error) {
	o := gatherOptions(opts...)
	adj, diags, err := prepareAdjustment(ds, acovs, label, o, nil)
	if err != nil {
		return nil, nil, nil, diags, err
	}

	return adj.names, adj.cols, adj.vars, diags, nil
}
