// SPDX-License-Identifier: MIT

package corr

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// tTwoSided derives the two-sided significance of a correlation r with the
// given residual degrees of freedom:
//
//	t = r·√(df / (1−r²)),  p = 2 · S_t(|t|; df)
//
// where S_t is the Student's-t survival function. Using the survival
// function (rather than 1−CDF in floating point) preserves precision for
// p-values far below double rounding thresholds — downstream
// multiple-testing correction needs accurate small values.
//
// Edge policy:
//   - df ≤ 0 or NaN r → NaN (degrees of freedom exhausted),
//   - |r| ≥ 1 → 0 (the t statistic diverges),
//   - the result is clamped into [0, 1].
func tTwoSided(r float64, df int) float64 {
	if df <= 0 || math.IsNaN(r) {
		return math.NaN()
	}
	if r >= 1 || r <= -1 {
		return 0
	}

	t := r * math.Sqrt(float64(df)/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}
	p := 2 * dist.Survival(math.Abs(t))
	if p > 1 {
		p = 1
	}

	return p
}
