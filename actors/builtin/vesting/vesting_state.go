package vesting

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
)

type Status uint64

const (
	StatusUnfunded Status = iota
	StatusFunded
	StatusCanceled
)

// State is the single persisted record for one vesting agreement. Status and
// Claimed are the only fields mutated after construction, except that the
// curve is replaced with a constant curve exactly once, at cancellation.
type State struct {
	// VestingCurve is vested(x) for x epochs elapsed since StartEpoch.
	VestingCurve Curve
	StartEpoch   abi.ChainEpoch

	Status Status

	// Owner is the administrator entitled to cancel the agreement.
	// Ownership is a one-way trip: set at construction, never updated.
	Owner     addr.Address
	Recipient addr.Address

	// Denom records the denomination of the vested asset. The chain moves
	// only its native token; this is agreement metadata.
	Denom string

	// Claimed is the cumulative amount ever paid to the recipient.
	// Never decreases, and never exceeds the amount vested at the epoch of
	// the most recent successful distribution.
	Claimed abi.TokenAmount

	Title       string
	Description string
}

// IntentKind tags the destination class of a transfer intent.
type IntentKind uint64

const (
	// Pay vested tokens to the agreement recipient.
	TransferToRecipient IntentKind = iota
	// Return unvested tokens to the admin pool.
	RecoverToAdminPool
)

// TransferIntent describes a single asset movement for the host environment
// to execute. State operations only ever compute intents; they perform no
// transfers themselves.
type TransferIntent struct {
	Kind   IntentKind
	Amount abi.TokenAmount
}

type VestInit struct {
	Total          abi.TokenAmount
	Schedule       Schedule
	StartEpoch     abi.ChainEpoch
	UnlockDuration abi.ChainEpoch
	Owner          addr.Address
	Recipient      addr.Address
	Denom          string
	Title          string
	Description    string
}

// ConstructState validates its arguments and builds the initial vest record.
func ConstructState(init VestInit) (*State, error) {
	if init.Total.IsZero() {
		return nil, ErrZeroVest
	}
	if init.UnlockDuration == 0 {
		return nil, ErrInstantVest
	}
	curve, err := init.Schedule.IntoCurve(init.Total, init.UnlockDuration)
	if err != nil {
		return nil, err
	}
	return &State{
		VestingCurve: curve,
		StartEpoch:   init.StartEpoch,
		Status:       StatusUnfunded,
		Owner:        init.Owner,
		Recipient:    init.Recipient,
		Denom:        init.Denom,
		Claimed:      big.Zero(),
		Title:        init.Title,
		Description:  init.Description,
	}, nil
}

// Total returns the total number of tokens that will ever vest as part of
// this payment. Not constant over the record's lifetime: cancellation at
// epoch c drops it to vested(c). Callers must not cache it across messages.
func (st *State) Total() abi.TokenAmount {
	_, max := st.VestingCurve.Range()
	return max
}

// Vested returns the number of tokens vested at epoch e. Epochs before the
// start evaluate at zero elapsed time, never negative.
func (st *State) Vested(e abi.ChainEpoch) abi.TokenAmount {
	elapsed := e - st.StartEpoch
	if elapsed < 0 {
		elapsed = 0
	}
	return st.VestingCurve.Value(elapsed)
}

// Duration returns the length of the vesting schedule (not the remaining
// time). ok is false once the agreement has been canceled, since a frozen
// curve has no meaningful duration.
func (st *State) Duration() (abi.ChainEpoch, bool) {
	start, end, ok := st.VestingCurve.Domain()
	if !ok {
		return 0, false
	}
	return end - start, true
}

// SetFunded transitions Unfunded to Funded. Any other starting status is a
// checked error in all builds; funding twice would corrupt the distribution
// accounting irreversibly.
func (st *State) SetFunded() error {
	switch st.Status {
	case StatusFunded:
		return ErrAlreadyFunded
	case StatusCanceled:
		return ErrAlreadyCanceled
	}
	st.Status = StatusFunded
	return nil
}

// Cancel freezes the vest at epoch e. No additional tokens vest after e:
// the curve is replaced with a constant holding its pre-cancellation value,
// so vested(anything) equals vested(e) from here on. Already-vested tokens
// are unaffected.
func (st *State) Cancel(e abi.ChainEpoch) error {
	if st.Status == StatusCanceled {
		return ErrAlreadyCanceled
	}
	frozen := st.Vested(e)
	st.Status = StatusCanceled
	st.VestingCurve = Curve{Constant: &ConstantCurve{Y: frozen}}
	return nil
}

// Liquid is the number of tokens on hand and not yet paid out: the ceiling
// imposed by actual balance state, independent of the schedule.
func (st *State) Liquid() abi.TokenAmount {
	if st.Status != StatusFunded {
		return big.Zero()
	}
	return big.Sub(st.Total(), st.Claimed)
}

// Distributable is the number of tokens that may be distributed to the
// recipient at epoch e: the lesser of the tokens on hand and the tokens the
// schedule has unlocked but not yet paid.
func (st *State) Distributable(e abi.ChainEpoch) abi.TokenAmount {
	claimable := big.Sub(st.Vested(e), st.Claimed)
	return big.Min(st.Liquid(), claimable)
}

// Distribute pays vested tokens at epoch e. A nil request distributes
// everything currently distributable; an explicit request must be positive
// and within the distributable amount. Validation completes before any
// mutation, so an error leaves the record untouched regardless of whether
// the host rolls back failed transactions.
func (st *State) Distribute(e abi.ChainEpoch, request *abi.TokenAmount) (TransferIntent, error) {
	distributable := st.Distributable(e)
	amount := distributable
	if request != nil {
		amount = *request
	}
	if amount.Sign() <= 0 || amount.GreaterThan(distributable) {
		return TransferIntent{}, &InvalidWithdrawalError{Request: amount, Claimable: distributable}
	}

	st.Claimed = big.Add(st.Claimed, amount)
	return TransferIntent{Kind: TransferToRecipient, Amount: amount}, nil
}

// CancelSettlement cancels the vest at epoch e and settles the balance held
// by the agreement: the schedule entitlement not yet paid goes to the
// recipient, everything else returns to the admin pool. Zero-amount intents
// are never emitted, so the result holds zero, one, or two entries.
func (st *State) CancelSettlement(e abi.ChainEpoch, totalBalance abi.TokenAmount) ([]TransferIntent, error) {
	if st.Status == StatusCanceled {
		return nil, ErrAlreadyCanceled
	}

	toRecipient := big.Sub(st.Vested(e), st.Claimed)
	toAdmin := big.Sub(totalBalance, toRecipient)

	var intents []TransferIntent
	if toRecipient.GreaterThan(big.Zero()) {
		intents = append(intents, TransferIntent{Kind: TransferToRecipient, Amount: toRecipient})
	}
	if toAdmin.GreaterThan(big.Zero()) {
		intents = append(intents, TransferIntent{Kind: RecoverToAdminPool, Amount: toAdmin})
	}

	if err := st.Cancel(e); err != nil {
		return nil, err
	}
	return intents, nil
}
