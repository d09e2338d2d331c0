// SPDX-License-Identifier: MIT

package corr

import "sort"

// averageRanks returns the fractional (average) ranks of xs, 1-based.
// Tied values share the mean of the ranks they occupy, which is the rank
// transform Spearman correlation is defined over.
//
// All entries of xs must be finite: callers restrict to jointly
// non-missing rows before ranking.
//
// Determinism: sorting is by value with index as tie-breaker, and tie
// groups are resolved in a single left-to-right pass.
//
// Complexity: O(n log n) time, O(n) space.
func averageRanks(xs []float64) []float64 {
	n := len(xs)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		if xs[idx[a]] != xs[idx[b]] {
			return xs[idx[a]] < xs[idx[b]]
		}

		return idx[a] < idx[b]
	})

	ranks := make([]float64, n)
	for lo := 0; lo < n; {
		hi := lo + 1
		for hi < n && xs[idx[hi]] == xs[idx[lo]] {
			hi++
		}
		// Average of 1-based ranks lo+1 .. hi.
		mean := float64(lo+hi+1) / 2.0
		for k := lo; k < hi; k++ {
			ranks[idx[k]] = mean
		}
		lo = hi
	}

	return ranks
}
