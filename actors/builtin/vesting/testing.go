package vesting

import (
	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"

	"github.com/vesting-project/vesting-actors/actors/builtin"
)

type StateSummary struct {
	Status  Status
	Claimed abi.TokenAmount
	Total   abi.TokenAmount
}

// Checks internal invariants of vesting state.
func CheckStateInvariants(st *State, balance abi.TokenAmount) (*StateSummary, *builtin.MessageAccumulator) {
	acc := &builtin.MessageAccumulator{}

	acc.Require(st.Owner.Protocol() == address.ID, "owner is not ID address %v", st.Owner)
	acc.Require(st.Recipient.Protocol() == address.ID, "recipient is not ID address %v", st.Recipient)
	acc.Require(st.Status <= StatusCanceled, "invalid status %d", st.Status)

	variants := 0
	for _, set := range []bool{st.VestingCurve.Constant != nil, st.VestingCurve.Linear != nil, st.VestingCurve.Piecewise != nil} {
		if set {
			variants++
		}
	}
	acc.Require(variants == 1, "curve must hold exactly one variant, holds %d", variants)
	acc.Require((st.Status == StatusCanceled) == (st.VestingCurve.Constant != nil),
		"curve is frozen (constant) if and only if the agreement is canceled")
	acc.Require(st.VestingCurve.validateMonotonic() == nil, "curve is not monotonic non-decreasing")

	min, max := st.VestingCurve.Range()
	acc.Require(st.Status == StatusCanceled || min.IsZero(), "open curve range starts at %v, not zero", min)
	acc.Require(st.Claimed.GreaterThanEqual(big.Zero()), "claimed %v is negative", st.Claimed)
	acc.Require(st.Claimed.LessThanEqual(max), "claimed %v exceeds vest total %v", st.Claimed, max)

	if st.Status == StatusFunded {
		unpaid := big.Sub(max, st.Claimed)
		acc.Require(balance.GreaterThanEqual(unpaid), "balance %v does not cover unpaid vest %v", balance, unpaid)
	}

	return &StateSummary{
		Status:  st.Status,
		Claimed: st.Claimed,
		Total:   max,
	}, acc
}
