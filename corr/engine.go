// SPDX-License-Identifier: MIT
// Package corr: the correlation engine.
//
// Purpose:
//   - Compute, per (outcome, exposure) pair, the pairwise-complete Spearman
//     correlation — or the Spearman partial correlation controlling for the
//     final encoded adjustment set — together with the jointly non-missing
//     sample count and a two-sided t-approximation p-value.
//
// Orientation is structural: outcomes are ALWAYS rows and exposures are
// ALWAYS columns of every matrix this file produces, for any shape
// including single-outcome/multi-exposure. There is no conditional
// transpose.
//
// Determinism & precision:
//   - Fixed outcome-major i→j traversal.
//   - Correlations are clamped into [-1, 1] against rank-arithmetic noise.
//   - p-values go through the Student's-t survival function (see pvalue.go).
//
// Preconditions owned by adjust.go: no zero-variance and no perfectly
// collinear adjustment columns remain in the final set.

package corr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/metacorr/dataset"
)

// pairStats holds the per-pair matrices of one stratum: |rcovs| rows ×
// |ccovs| columns, outcome-major. Discarded after annotation.
type pairStats struct {
	rcovs []string
	ccovs []string
	corr  [][]float64
	n     [][]int
	pval  [][]float64
}

// computePairs evaluates every outcome×exposure pair of the dataset.
//
// Unadjusted mode (adj.empty()): Spearman correlation of the jointly
// non-missing rows of the pair; df = n−2.
//
// Adjusted mode: Spearman partial correlation controlling for the entire
// final adjustment column set, via the inverse of the rank-correlation
// structure of (outcome, exposure, adjustments) — equivalent to
// rank-transformed residualization; df = n−2−|adjustments|. Rows must be
// jointly non-missing across the pair AND every adjustment column.
func computePairs(ds *dataset.Dataset, rcovs, ccovs []string, adj *adjusted) (*pairStats, error) {
	ps := &pairStats{
		rcovs: rcovs,
		ccovs: ccovs,
		corr:  make([][]float64, len(rcovs)),
		n:     make([][]int, len(rcovs)),
		pval:  make([][]float64, len(rcovs)),
	}

	for i, rname := range rcovs {
		y, err := ds.Values(rname)
		if err != nil {
			return nil, fmt.Errorf("outcome %q: %w", rname, ErrUnknownVariable)
		}

		ps.corr[i] = make([]float64, len(ccovs))
		ps.n[i] = make([]int, len(ccovs))
		ps.pval[i] = make([]float64, len(ccovs))

		for j, cname := range ccovs {
			x, err := ds.Values(cname)
			if err != nil {
				return nil, fmt.Errorf("exposure %q: %w", cname, ErrUnknownVariable)
			}

			var r float64
			var pairs int
			if adj.empty() {
				r, pairs = spearmanPair(y, x)
				ps.pval[i][j] = tTwoSided(r, pairs-2)
			} else {
				r, pairs = partialSpearmanPair(y, x, adj.cols)
				ps.pval[i][j] = tTwoSided(r, pairs-2-len(adj.cols))
			}
			ps.corr[i][j] = r
			ps.n[i][j] = pairs
		}
	}

	return ps, nil
}

// spearmanPair computes the Spearman correlation over the jointly
// non-missing rows of y and x: average-rank both sides, then Pearson
// correlation of the ranks. Returns NaN when fewer than two joint rows
// remain.
func spearmanPair(y, x []float64) (r float64, pairs int) {
	ys := make([]float64, 0, len(y))
	xs := make([]float64, 0, len(x))
	for row := range y {
		if !math.IsNaN(y[row]) && !math.IsNaN(x[row]) {
			ys = append(ys, y[row])
			xs = append(xs, x[row])
		}
	}
	pairs = len(ys)
	if pairs < 2 {
		return math.NaN(), pairs
	}

	r = stat.Correlation(averageRanks(ys), averageRanks(xs), nil)

	return clampCorr(r), pairs
}

// partialSpearmanPair computes the Spearman partial correlation of y and x
// controlling for the adjustment columns zs.
//
// Stage 1 (Complete cases): keep rows jointly non-missing across y, x and
// every z.
// Stage 2 (Rank): average-rank each involved column over the kept rows.
// Stage 3 (Structure): build the Pearson correlation matrix R of the
// ranked block [y, x, z…]. Adjustment columns degenerate within the kept
// rows (zero variance after subsetting) are excluded from the structure;
// the reported n still reflects the full joint filter.
// Stage 4 (Invert): with P = R⁻¹ the partial correlation is
// −P₀₁ / √(P₀₀·P₁₁). A singular structure yields NaN.
func partialSpearmanPair(y, x []float64, zs [][]float64) (r float64, pairs int) {
	// Stage 1: complete cases across the pair and all adjustment columns.
	keep := make([]int, 0, len(y))
	for row := range y {
		if math.IsNaN(y[row]) || math.IsNaN(x[row]) {
			continue
		}
		ok := true
		for _, z := range zs {
			if math.IsNaN(z[row]) {
				ok = false
				break
			}
		}
		if ok {
			keep = append(keep, row)
		}
	}
	pairs = len(keep)
	if pairs < 3 {
		return math.NaN(), pairs
	}

	// Stage 2: rank the involved columns over the kept rows.
	block := [][]float64{subset(y, keep), subset(x, keep)}
	for _, z := range zs {
		zk := subset(z, keep)
		if variance(zk) > 0 { // degenerate within this subset: no signal to remove
			block = append(block, zk)
		}
	}
	for b := range block {
		block[b] = averageRanks(block[b])
	}

	// Stage 3: correlation structure of the ranked block.
	dim := len(block)
	structure := mat.NewDense(dim, dim, nil)
	for a := 0; a < dim; a++ {
		structure.Set(a, a, 1)
		for b := a + 1; b < dim; b++ {
			c := stat.Correlation(block[a], block[b], nil)
			structure.Set(a, b, c)
			structure.Set(b, a, c)
		}
	}

	// Stage 4: invert and read off the partial correlation.
	var inv mat.Dense
	if err := inv.Inverse(structure); err != nil {
		if _, illConditioned := err.(mat.Condition); !illConditioned {
			return math.NaN(), pairs
		}
	}
	den := inv.At(0, 0) * inv.At(1, 1)
	if den <= 0 || math.IsNaN(den) {
		return math.NaN(), pairs
	}
	r = -inv.At(0, 1) / math.Sqrt(den)

	return clampCorr(r), pairs
}

// subset gathers xs at the given row indexes.
func subset(xs []float64, rows []int) []float64 {
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = xs[row]
	}

	return out
}

// variance is the sample variance of xs (all finite).
func variance(xs []float64) float64 {
	return stat.Variance(xs, nil)
}

// clampCorr pins rank-arithmetic noise back into [-1, 1].
func clampCorr(r float64) float64 {
	switch {
	case r > 1:
		return 1
	case r < -1:
		return -1
	}

	return r
}
