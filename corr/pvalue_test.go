package corr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/metacorr/corr"
)

// TestTTwoSided_EdgePolicy pins the documented edge behavior: exhausted
// degrees of freedom yield NaN, |r| = 1 yields exactly zero.
func TestTTwoSided_EdgePolicy(t *testing.T) {
	assert.True(t, math.IsNaN(corr.TTwoSided(0.5, 0)), "df=0 must be NaN")
	assert.True(t, math.IsNaN(corr.TTwoSided(0.5, -3)), "negative df must be NaN")
	assert.True(t, math.IsNaN(corr.TTwoSided(math.NaN(), 10)), "NaN r must be NaN")
	assert.Equal(t, 0.0, corr.TTwoSided(1, 10), "r=1 must be exactly 0")
	assert.Equal(t, 0.0, corr.TTwoSided(-1, 10), "r=-1 must be exactly 0")
}

// TestTTwoSided_BoundsAndSymmetry verifies p ∈ [0,1], sign symmetry, and
// p(0) = 1 (a zero correlation carries no evidence).
func TestTTwoSided_BoundsAndSymmetry(t *testing.T) {
	assert.InDelta(t, 1.0, corr.TTwoSided(0, 18), 1e-12)

	for _, r := range []float64{0.1, 0.3, 0.5, 0.7, 0.9, 0.99} {
		p := corr.TTwoSided(r, 18)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
		assert.InDelta(t, p, corr.TTwoSided(-r, 18), 1e-15, "two-sided p is sign-symmetric")
	}
}

// TestTTwoSided_MonotoneInEvidence verifies p decreases as |r| grows and
// as df grows at fixed r.
func TestTTwoSided_MonotoneInEvidence(t *testing.T) {
	prev := 1.1
	for _, r := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		p := corr.TTwoSided(r, 18)
		assert.Less(t, p, prev, "stronger correlation must be more significant")
		prev = p
	}

	assert.Less(t, corr.TTwoSided(0.5, 100), corr.TTwoSided(0.5, 10),
		"more degrees of freedom must be more significant at fixed r")
}

// TestTTwoSided_FarTailPrecision verifies the survival-function path keeps
// far-tail p-values meaningful instead of rounding them to zero or one.
func TestTTwoSided_FarTailPrecision(t *testing.T) {
	p := corr.TTwoSided(0.99, 100)
	assert.Greater(t, p, 0.0, "far-tail p must stay positive")
	assert.Less(t, p, 1e-20, "far-tail p must stay tiny")
}
