package vesting

import (
	"fmt"

	"github.com/filecoin-project/go-state-types/abi"
	"github.com/pkg/errors"
)

// Errors surfaced by vest construction and the payment operations. All are
// conditions the caller can correct and resubmit; none indicates an internal
// fault, and no operation leaves partial state behind when returning one.
var (
	// A vest of zero tokens would never pay anything out.
	ErrZeroVest = errors.New("zero vest: total must be non-zero")

	// A zero-length schedule is indistinguishable from an immediate transfer.
	ErrInstantVest = errors.New("instant vest: vesting duration must be non-zero")

	// A piecewise schedule with fewer than two points cannot vest anything.
	ErrConstantVest = errors.New("constant vest: piecewise schedule requires at least two points")

	ErrAlreadyFunded   = errors.New("vesting agreement already funded")
	ErrAlreadyCanceled = errors.New("vesting agreement already canceled")
)

// CurveOrderError indicates a piecewise schedule point that regresses in
// amount, repeats or reorders a time coordinate, or starts before epoch 1.
type CurveOrderError struct {
	Index int
	Point CurvePoint
}

func (e *CurveOrderError) Error() string {
	return fmt.Sprintf("curve point %d (%d, %v) out of order", e.Index, e.Point.X, e.Point.Y)
}

// VestRangeError indicates a curve whose overall range does not span exactly
// zero to the declared total.
type VestRangeError struct {
	Min abi.TokenAmount
	Max abi.TokenAmount
}

func (e *VestRangeError) Error() string {
	return fmt.Sprintf("curve range [%v, %v] must start at 0 and end at the vest total", e.Min, e.Max)
}

// InvalidWithdrawalError indicates a distribution request for zero tokens or
// for more than is currently distributable.
type InvalidWithdrawalError struct {
	Request   abi.TokenAmount
	Claimable abi.TokenAmount
}

func (e *InvalidWithdrawalError) Error() string {
	return fmt.Sprintf("invalid withdrawal: requested %v with %v claimable", e.Request, e.Claimable)
}

// WrongFundAmountError indicates a funding attempt while the agreement
// balance does not cover the vest total.
type WrongFundAmountError struct {
	Sent     abi.TokenAmount
	Expected abi.TokenAmount
}

func (e *WrongFundAmountError) Error() string {
	return fmt.Sprintf("wrong fund amount: holding %v, expected %v", e.Sent, e.Expected)
}
