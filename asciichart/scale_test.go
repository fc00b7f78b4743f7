package asciichart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveScale_FoldsDataRange_When_NoOverridesGiven(t *testing.T) {
	t.Parallel()

	sc, err := resolveScale([][]float64{{3, 1, 2}}, newConfig(nil))
	require.NoError(t, err)
	assert.Equal(t, 1.0, sc.minimum)
	assert.Equal(t, 3.0, sc.maximum)
	assert.Equal(t, 2.0, sc.interval)
	assert.Equal(t, 1.0, sc.ratio)
	assert.Equal(t, 2, sc.rows)
}

func TestResolveScale_SkipsGaps_When_SeriesMixNaN(t *testing.T) {
	t.Parallel()

	sc, err := resolveScale([][]float64{{math.NaN(), 4}, {2, math.NaN()}}, newConfig(nil))
	require.NoError(t, err)
	assert.Equal(t, 2.0, sc.minimum)
	assert.Equal(t, 4.0, sc.maximum)
}

func TestResolveScale_FallsBackToZeroRange_When_NothingNumeric(t *testing.T) {
	t.Parallel()

	sc, err := resolveScale([][]float64{{math.NaN()}, {}}, newConfig(nil))
	require.NoError(t, err)
	assert.Zero(t, sc.minimum)
	assert.Zero(t, sc.maximum)
	assert.Zero(t, sc.rows)
}

func TestResolveScale_AppliesOverrides_When_MinAndMaxSet(t *testing.T) {
	t.Parallel()

	sc, err := resolveScale([][]float64{{1, 2, 3, 4}}, newConfig([]Option{Min(2), Max(3)}))
	require.NoError(t, err)
	assert.Equal(t, 2.0, sc.minimum)
	assert.Equal(t, 3.0, sc.maximum)
	assert.Equal(t, 1, sc.rows)
}

func TestResolveScale_ReturnsErrInvalidRange_When_BoundsCross(t *testing.T) {
	t.Parallel()

	_, err := resolveScale([][]float64{{1}}, newConfig([]Option{Min(9), Max(2)}))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestResolveScale_ScalesRows_When_HeightOverridden(t *testing.T) {
	t.Parallel()

	sc, err := resolveScale([][]float64{{1, 4}}, newConfig([]Option{Height(6)}))
	require.NoError(t, err)
	assert.Equal(t, 2.0, sc.ratio)
	assert.Equal(t, 2, sc.min2)
	assert.Equal(t, 8, sc.max2)
	assert.Equal(t, 6, sc.rows)
}

func TestResolveScale_UsesUnitRatio_When_IntervalZero(t *testing.T) {
	t.Parallel()

	sc, err := resolveScale([][]float64{{7, 7, 7}}, newConfig(nil))
	require.NoError(t, err)
	assert.Equal(t, 1.0, sc.ratio)
	assert.Zero(t, sc.rows)
}

func TestScale_ClampsSamples_When_OutsideResolvedRange(t *testing.T) {
	t.Parallel()

	sc, err := resolveScale([][]float64{{2, 3}}, newConfig(nil))
	require.NoError(t, err)

	for v := -10.0; v <= 10; v++ {
		got := sc.scaled(v)
		assert.GreaterOrEqual(t, got, 0, "value %v fell below the grid", v)
		assert.LessOrEqual(t, got, sc.rows, "value %v left the grid", v)
	}
}
