package vesting_test

import (
	"testing"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesting-project/vesting-actors/actors/builtin/vesting"
)

func point(x int64, y int64) vesting.CurvePoint {
	return vesting.CurvePoint{X: abi.ChainEpoch(x), Y: big.NewInt(y)}
}

func TestSaturatingLinearCurve(t *testing.T) {
	total := big.NewInt(100)
	schedule := vesting.Schedule{Kind: vesting.ScheduleSaturatingLinear}

	curve, err := schedule.IntoCurve(total, 10)
	require.NoError(t, err)
	require.NotNil(t, curve.Linear)

	// Saturates below and above the domain.
	assert.Equal(t, big.Zero(), curve.Value(-5))
	assert.Equal(t, big.Zero(), curve.Value(0))
	assert.Equal(t, total, curve.Value(10))
	assert.Equal(t, total, curve.Value(1000))

	// Interpolates in between.
	assert.Equal(t, big.NewInt(10), curve.Value(1))
	assert.Equal(t, big.NewInt(50), curve.Value(5))
	assert.Equal(t, big.NewInt(90), curve.Value(9))

	min, max := curve.Range()
	assert.Equal(t, big.Zero(), min)
	assert.Equal(t, total, max)

	start, end, ok := curve.Domain()
	require.True(t, ok)
	assert.Equal(t, abi.ChainEpoch(0), start)
	assert.Equal(t, abi.ChainEpoch(10), end)
}

func TestLinearInterpolationRoundsDown(t *testing.T) {
	schedule := vesting.Schedule{Kind: vesting.ScheduleSaturatingLinear}
	curve, err := schedule.IntoCurve(big.NewInt(100), 3)
	require.NoError(t, err)

	// 100/3 and 200/3 floor rather than round.
	assert.Equal(t, big.NewInt(33), curve.Value(1))
	assert.Equal(t, big.NewInt(66), curve.Value(2))
	assert.Equal(t, big.NewInt(100), curve.Value(3))
}

func TestPiecewiseCurveValues(t *testing.T) {
	schedule := vesting.Schedule{
		Kind:  vesting.SchedulePiecewiseLinear,
		Steps: []vesting.CurvePoint{point(1, 0), point(3, 4), point(5, 8)},
	}
	curve, err := schedule.IntoCurve(big.NewInt(8), 5)
	require.NoError(t, err)
	require.NotNil(t, curve.Piecewise)

	expected := []int64{0, 0, 2, 4, 6, 8, 8}
	for x, y := range expected {
		assert.Equal(t, big.NewInt(y), curve.Value(abi.ChainEpoch(x)), "at elapsed %d", x)
	}

	start, end, ok := curve.Domain()
	require.True(t, ok)
	assert.Equal(t, abi.ChainEpoch(1), start)
	assert.Equal(t, abi.ChainEpoch(5), end)
}

func TestPiecewiseCurveFlatSegments(t *testing.T) {
	// A segment may hold flat, pausing the vest between cliffs.
	schedule := vesting.Schedule{
		Kind:  vesting.SchedulePiecewiseLinear,
		Steps: []vesting.CurvePoint{point(1, 0), point(2, 50), point(10, 50), point(12, 100)},
	}
	curve, err := schedule.IntoCurve(big.NewInt(100), 12)
	require.NoError(t, err)

	assert.Equal(t, big.NewInt(50), curve.Value(2))
	assert.Equal(t, big.NewInt(50), curve.Value(6))
	assert.Equal(t, big.NewInt(50), curve.Value(10))
	assert.Equal(t, big.NewInt(75), curve.Value(11))
	assert.Equal(t, big.NewInt(100), curve.Value(12))
}

func TestScheduleValidation(t *testing.T) {
	total := big.NewInt(100)

	t.Run("piecewise with fewer than two points", func(t *testing.T) {
		schedule := vesting.Schedule{
			Kind:  vesting.SchedulePiecewiseLinear,
			Steps: []vesting.CurvePoint{point(1, 100)},
		}
		_, err := schedule.IntoCurve(total, 10)
		assert.Equal(t, vesting.ErrConstantVest, err)
	})

	t.Run("first coordinate below one", func(t *testing.T) {
		schedule := vesting.Schedule{
			Kind:  vesting.SchedulePiecewiseLinear,
			Steps: []vesting.CurvePoint{point(0, 0), point(10, 100)},
		}
		_, err := schedule.IntoCurve(total, 10)
		var orderErr *vesting.CurveOrderError
		require.ErrorAs(t, err, &orderErr)
		assert.Equal(t, 0, orderErr.Index)
	})

	t.Run("time coordinates must strictly increase", func(t *testing.T) {
		schedule := vesting.Schedule{
			Kind:  vesting.SchedulePiecewiseLinear,
			Steps: []vesting.CurvePoint{point(1, 0), point(5, 50), point(5, 100)},
		}
		_, err := schedule.IntoCurve(total, 10)
		var orderErr *vesting.CurveOrderError
		require.ErrorAs(t, err, &orderErr)
		assert.Equal(t, 2, orderErr.Index)
	})

	t.Run("amounts must not decrease", func(t *testing.T) {
		schedule := vesting.Schedule{
			Kind:  vesting.SchedulePiecewiseLinear,
			Steps: []vesting.CurvePoint{point(1, 0), point(2, 2), point(3, 1), point(4, 100)},
		}
		_, err := schedule.IntoCurve(total, 10)
		var orderErr *vesting.CurveOrderError
		require.ErrorAs(t, err, &orderErr)
		assert.Equal(t, 3, orderErr.Index)
	})

	t.Run("range must start at zero", func(t *testing.T) {
		schedule := vesting.Schedule{
			Kind:  vesting.SchedulePiecewiseLinear,
			Steps: []vesting.CurvePoint{point(1, 10), point(10, 100)},
		}
		_, err := schedule.IntoCurve(total, 10)
		var rangeErr *vesting.VestRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, big.NewInt(10), rangeErr.Min)
	})

	t.Run("range must end at the vest total", func(t *testing.T) {
		schedule := vesting.Schedule{
			Kind:  vesting.SchedulePiecewiseLinear,
			Steps: []vesting.CurvePoint{point(1, 0), point(10, 50)},
		}
		_, err := schedule.IntoCurve(total, 10)
		var rangeErr *vesting.VestRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, big.NewInt(50), rangeErr.Max)
	})
}

func TestConstantCurveHasNoDomain(t *testing.T) {
	curve := vesting.Curve{Constant: &vesting.ConstantCurve{Y: big.NewInt(42)}}

	assert.Equal(t, big.NewInt(42), curve.Value(0))
	assert.Equal(t, big.NewInt(42), curve.Value(1000))

	min, max := curve.Range()
	assert.Equal(t, big.NewInt(42), min)
	assert.Equal(t, big.NewInt(42), max)

	_, _, ok := curve.Domain()
	assert.False(t, ok)
}
