package piecewisego

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(x float64) float64 { return x }

func constant(v float64) Func[float64, float64] {
	return func(float64) float64 { return v }
}

func TestPartialFunctionEval(t *testing.T) {
	t.Run("Single", func(t *testing.T) {
		pf := Dual[float64, float64]().
			With(0.0, 1.0, identity).
			MustBuild()

		v, ok := pf.Eval(0.5)
		require.True(t, ok)
		assert.Equal(t, 0.5, v)
	})

	t.Run("SingleStart", func(t *testing.T) {
		pf := Dual[float64, float64]().
			With(0.0, 1.0, identity).
			MustBuild()

		v, ok := pf.Eval(0.0)
		require.True(t, ok)
		assert.Equal(t, 0.0, v)
	})

	t.Run("SingleEnding", func(t *testing.T) {
		// The very end of the whole range is closed.
		pf := Dual[float64, float64]().
			With(0.0, 1.0, identity).
			MustBuild()

		v, ok := pf.Eval(1.0)
		require.True(t, ok)
		assert.Equal(t, 1.0, v)
	})

	t.Run("OutsideRange", func(t *testing.T) {
		pf := Dual[float64, float64]().
			With(0.0, 1.0, identity).
			MustBuild()

		_, ok := pf.Eval(999.0)
		assert.False(t, ok)

		_, ok = pf.Eval(-0.001)
		assert.False(t, ok)
	})

	t.Run("BoundaryLaterSegmentWins", func(t *testing.T) {
		// Insertion order must not matter for boundary precedence.
		inserted := Dual[float64, float64]().
			With(0.0, 1.0, identity).
			With(1.0, 2.0, constant(5.0)).
			MustBuild()

		reversed := Dual[float64, float64]().
			With(1.0, 2.0, constant(5.0)).
			With(0.0, 1.0, identity).
			MustBuild()

		for _, pf := range []*PartialFunction[float64, float64]{inserted, reversed} {
			v, ok := pf.Eval(1.0)
			require.True(t, ok)
			assert.Equal(t, 5.0, v)
		}
	})

	t.Run("Scenario", func(t *testing.T) {
		// [0,1): x -> x and [1,2): x -> 5
		pf := Dual[float64, float64]().
			With(0.0, 1.0, identity).
			With(1.0, 2.0, constant(5.0)).
			MustBuild()

		v, ok := pf.Eval(0.5)
		require.True(t, ok)
		assert.Equal(t, 0.5, v)

		v, ok = pf.Eval(1.0)
		require.True(t, ok)
		assert.Equal(t, 5.0, v)

		v, ok = pf.Eval(1.999)
		require.True(t, ok)
		assert.Equal(t, 5.0, v)

		// Closed end of the final segment.
		v, ok = pf.Eval(2.0)
		require.True(t, ok)
		assert.Equal(t, 5.0, v)

		_, ok = pf.Eval(2.1)
		assert.False(t, ok)
	})

	t.Run("GapClaimedByPrecedingSegment", func(t *testing.T) {
		pf := Dual[float64, float64]().
			With(0.0, 1.0, constant(1.0)).
			With(2.0, 3.0, constant(2.0)).
			MustBuild()

		// A segment with no contiguous successor claims its own higher
		// bound and the gap, up to where the next segment takes over.
		v, ok := pf.Eval(1.0)
		require.True(t, ok)
		assert.Equal(t, 1.0, v)

		v, ok = pf.Eval(1.5)
		require.True(t, ok)
		assert.Equal(t, 1.0, v)

		v, ok = pf.Eval(2.0)
		require.True(t, ok)
		assert.Equal(t, 2.0, v)

		// Beyond the last segment's closed end stays undefined.
		_, ok = pf.Eval(3.5)
		assert.False(t, ok)
	})

	t.Run("NaNInput", func(t *testing.T) {
		pf := Dual[float64, float64]().
			With(0.0, 1.0, identity).
			MustBuild()

		_, ok := pf.Eval(math.NaN())
		assert.False(t, ok)
	})

	t.Run("Empty", func(t *testing.T) {
		pf := Dual[float64, float64]().MustBuild()

		assert.Equal(t, 0, pf.Len())

		_, ok := pf.Eval(0.0)
		assert.False(t, ok)
	})

	t.Run("Idempotent", func(t *testing.T) {
		pf := Dual[float64, float64]().
			With(0.0, 1.0, identity).
			MustBuild()

		v1, ok1 := pf.Eval(0.25)
		v2, ok2 := pf.Eval(0.25)
		assert.Equal(t, ok1, ok2)
		assert.Equal(t, v1, v2)
	})

	t.Run("EvalOr", func(t *testing.T) {
		pf := Dual[float64, float64]().
			With(0.0, 1.0, identity).
			MustBuild()

		assert.Equal(t, 0.5, pf.EvalOr(0.5, -1.0))
		assert.Equal(t, -1.0, pf.EvalOr(10.0, -1.0))
	})

	t.Run("StringDomain", func(t *testing.T) {
		pf := Dual[string, int]().
			With("a", "m", func(string) int { return 1 }).
			With("m", "z", func(string) int { return 2 }).
			MustBuild()

		v, ok := pf.Eval("hello")
		require.True(t, ok)
		assert.Equal(t, 1, v)

		v, ok = pf.Eval("m")
		require.True(t, ok)
		assert.Equal(t, 2, v)
	})
}

func TestLowerPartialFunctionEval(t *testing.T) {
	t.Run("Normal", func(t *testing.T) {
		pf := Lower[float64, int]().
			With(0.0, func(float64) int { return 1 }).
			With(1.0, func(float64) int { return 2 }).
			MustBuild()

		_, ok := pf.Eval(-1.0)
		assert.False(t, ok)

		v, ok := pf.Eval(0.0)
		require.True(t, ok)
		assert.Equal(t, 1, v)

		v, ok = pf.Eval(0.5)
		require.True(t, ok)
		assert.Equal(t, 1, v)

		v, ok = pf.Eval(1.0)
		require.True(t, ok)
		assert.Equal(t, 2, v)

		v, ok = pf.Eval(1000.0)
		require.True(t, ok)
		assert.Equal(t, 2, v)
	})

	t.Run("InverseInsert", func(t *testing.T) {
		pf := Lower[float64, int]().
			With(1.0, func(float64) int { return 2 }).
			With(0.0, func(float64) int { return 1 }).
			MustBuild()

		_, ok := pf.Eval(-1.0)
		assert.False(t, ok)

		v, ok := pf.Eval(0.0)
		require.True(t, ok)
		assert.Equal(t, 1, v)

		v, ok = pf.Eval(0.5)
		require.True(t, ok)
		assert.Equal(t, 1, v)

		v, ok = pf.Eval(1.0)
		require.True(t, ok)
		assert.Equal(t, 2, v)

		v, ok = pf.Eval(1000.0)
		require.True(t, ok)
		assert.Equal(t, 2, v)
	})

	t.Run("NaNInput", func(t *testing.T) {
		pf := Lower[float64, int]().
			With(0.0, func(float64) int { return 1 }).
			MustBuild()

		_, ok := pf.Eval(math.NaN())
		assert.False(t, ok)
	})

	t.Run("Empty", func(t *testing.T) {
		pf := Lower[float64, int]().MustBuild()

		_, ok := pf.Eval(0.0)
		assert.False(t, ok)
	})

	t.Run("EvalOr", func(t *testing.T) {
		pf := Lower[float64, int]().
			With(0.0, func(float64) int { return 1 }).
			MustBuild()

		assert.Equal(t, 1, pf.EvalOr(5.0, -1))
		assert.Equal(t, -1, pf.EvalOr(-5.0, -1))
	})
}

func TestEvalMetrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}

	pf := Dual[float64, float64](WithMetricsCollector(metrics)).
		With(0.0, 1.0, identity).
		MustBuild()

	_, _ = pf.Eval(0.5)
	_, _ = pf.Eval(10.0)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.InsertCount)
	assert.Equal(t, int64(1), stats.BuildCount)
	assert.Equal(t, int64(2), stats.EvalCount)
	assert.Equal(t, int64(1), stats.EvalUndefined)
}
