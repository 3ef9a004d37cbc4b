package vesting

import (
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
)

type ScheduleKind uint64

const (
	// Vests linearly from zero to the vest total over the vesting duration.
	ScheduleSaturatingLinear ScheduleKind = iota
	// Vests by linearly interpolating between the provided points.
	SchedulePiecewiseLinear
)

// A point on a piecewise release curve: the cumulative amount vested once
// X epochs have elapsed since the vest start.
type CurvePoint struct {
	X abi.ChainEpoch
	Y abi.TokenAmount
}

// Schedule specifies how a vest total unlocks over time. It is consumed at
// construction and not persisted; only the curve built from it is.
//
// For piecewise schedules the first point's amount must be zero, the last
// point's amount must equal the vest total, and points must strictly
// increase in time and never decrease in amount. The first time coordinate
// must be at least 1, since elapsed time 0 always evaluates to the implicit
// pre-start value of zero. Callers needing true start-epoch precision set
// the start epoch one earlier and use 1 as the first coordinate.
type Schedule struct {
	Kind  ScheduleKind
	Steps []CurvePoint
}

// Curve is vested(x) for x epochs elapsed since the vest start: a pure,
// non-decreasing function from elapsed time to cumulative unlocked amount.
// Exactly one variant is set. The Constant variant exists only as the
// frozen form a curve takes when its agreement is canceled.
type Curve struct {
	Constant  *ConstantCurve
	Linear    *SaturatingLinearCurve
	Piecewise *PiecewiseLinearCurve
}

type ConstantCurve struct {
	Y abi.TokenAmount
}

// A line from (MinX, MinY) to (MaxX, MaxY), saturating outside that domain.
type SaturatingLinearCurve struct {
	MinX abi.ChainEpoch
	MinY abi.TokenAmount
	MaxX abi.ChainEpoch
	MaxY abi.TokenAmount
}

type PiecewiseLinearCurve struct {
	Steps []CurvePoint
}

// IntoCurve builds and validates the release curve for a schedule.
// A valid curve starts at 0, ends at total, and never decreases. A zero
// total is permitted here (the curve pays nothing); rejecting it is the
// vest constructor's responsibility.
func (s Schedule) IntoCurve(total abi.TokenAmount, durationEpochs abi.ChainEpoch) (Curve, error) {
	var c Curve
	switch s.Kind {
	case ScheduleSaturatingLinear:
		c = Curve{Linear: &SaturatingLinearCurve{
			MinX: 0,
			MinY: big.Zero(),
			MaxX: durationEpochs,
			MaxY: total,
		}}
	case SchedulePiecewiseLinear:
		if len(s.Steps) < 2 {
			return Curve{}, ErrConstantVest
		}
		c = Curve{Piecewise: &PiecewiseLinearCurve{Steps: s.Steps}}
	default:
		return Curve{}, ErrConstantVest
	}

	if err := c.validateMonotonic(); err != nil {
		return Curve{}, err
	}
	min, max := c.Range()
	if !min.IsZero() || !max.Equals(total) {
		return Curve{}, &VestRangeError{Min: min, Max: max}
	}
	return c, nil
}

// Value evaluates the curve at x epochs elapsed, saturating outside its
// domain. All arithmetic is exact integer math with floor division, so
// evaluation is deterministic across implementations.
func (c *Curve) Value(x abi.ChainEpoch) abi.TokenAmount {
	switch {
	case c.Constant != nil:
		return c.Constant.Y
	case c.Linear != nil:
		l := c.Linear
		if x <= l.MinX {
			return l.MinY
		}
		if x >= l.MaxX {
			return l.MaxY
		}
		return interpolate(CurvePoint{l.MinX, l.MinY}, CurvePoint{l.MaxX, l.MaxY}, x)
	case c.Piecewise != nil:
		steps := c.Piecewise.Steps
		if x <= steps[0].X {
			return steps[0].Y
		}
		last := steps[len(steps)-1]
		if x >= last.X {
			return last.Y
		}
		for i := 1; i < len(steps); i++ {
			if x == steps[i].X {
				return steps[i].Y
			}
			if x < steps[i].X {
				return interpolate(steps[i-1], steps[i], x)
			}
		}
		return last.Y
	}
	return big.Zero()
}

// Range returns the curve's minimum and maximum values.
func (c *Curve) Range() (min, max abi.TokenAmount) {
	switch {
	case c.Constant != nil:
		return c.Constant.Y, c.Constant.Y
	case c.Linear != nil:
		return c.Linear.MinY, c.Linear.MaxY
	case c.Piecewise != nil:
		steps := c.Piecewise.Steps
		return steps[0].Y, steps[len(steps)-1].Y
	}
	return big.Zero(), big.Zero()
}

// Domain returns the curve's minimum and maximum x-coordinates. A frozen
// constant curve has no meaningful domain, signalled by ok being false.
func (c *Curve) Domain() (start, end abi.ChainEpoch, ok bool) {
	switch {
	case c.Linear != nil:
		return c.Linear.MinX, c.Linear.MaxX, true
	case c.Piecewise != nil:
		steps := c.Piecewise.Steps
		return steps[0].X, steps[len(steps)-1].X, true
	}
	return 0, 0, false
}

func (c *Curve) validateMonotonic() error {
	switch {
	case c.Constant != nil:
		return nil
	case c.Linear != nil:
		l := c.Linear
		if l.MaxX <= l.MinX || l.MaxY.LessThan(l.MinY) {
			return &CurveOrderError{Index: 1, Point: CurvePoint{l.MaxX, l.MaxY}}
		}
		return nil
	case c.Piecewise != nil:
		steps := c.Piecewise.Steps
		for i, p := range steps {
			if p.X < 1 || p.Y.LessThan(big.Zero()) {
				return &CurveOrderError{Index: i, Point: p}
			}
			if i == 0 {
				continue
			}
			if p.X <= steps[i-1].X || p.Y.LessThan(steps[i-1].Y) {
				return &CurveOrderError{Index: i, Point: p}
			}
		}
		return nil
	}
	return ErrConstantVest
}

// Linear interpolation between two points at a.X < x < b.X:
// y = a.Y + (b.Y - a.Y) * (x - a.X) / (b.X - a.X), with floor division.
// Monotonic for non-decreasing point amounts.
func interpolate(a, b CurvePoint, x abi.ChainEpoch) abi.TokenAmount {
	rise := big.Sub(b.Y, a.Y)
	run := big.NewInt(int64(b.X - a.X))
	elapsed := big.NewInt(int64(x - a.X))
	return big.Add(a.Y, big.Div(big.Mul(rise, elapsed), run))
}
