package vesting

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/exitcode"

	"github.com/vesting-project/vesting-actors/actors/builtin"
	vmr "github.com/vesting-project/vesting-actors/actors/runtime"
	"github.com/vesting-project/vesting-actors/actors/util/adt"
)

// The vesting actor holds tokens for a single vesting agreement and releases
// them to the recipient according to a release curve. The owner may cancel
// the agreement early, freezing the curve and returning unvested tokens to
// the admin pool. The expected lifecycle is: construct with the vesting
// details, transfer the vest total to the actor, have anyone call Fund to
// activate the schedule, then distribute over time.
type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2: a.Fund,
		3: a.Distribute,
		4: a.Cancel,
		5: a.Info,
		6: a.Vested,
		7: a.Distributable,
		8: a.TotalToVest,
		9: a.VestDuration,
	}
}

type ConstructorParams struct {
	// Owner is the administrator able to cancel the agreement, typically
	// the governance module. Ownership is immutable: there is no method to
	// transfer or renounce it.
	Owner     addr.Address
	Recipient addr.Address

	Title       string
	Description string

	// Total amount of tokens to be vested.
	Total abi.TokenAmount
	Denom string

	Schedule Schedule

	// StartEpoch may be in the past; a negative value means vesting starts
	// at the current epoch. The schedule must not already have completed:
	// StartEpoch + UnlockDuration must exceed the current epoch, otherwise
	// the agreement would amount to a plain transfer.
	StartEpoch abi.ChainEpoch

	// UnlockDuration must be non-zero, though a single epoch is allowed.
	// Combined with a future StartEpoch this creates an agreement that
	// vests all at once at a future time.
	UnlockDuration abi.ChainEpoch
}

func (a Actor) Constructor(rt vmr.Runtime, params *ConstructorParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.InitActorAddr)

	startEpoch := params.StartEpoch
	if startEpoch < 0 {
		startEpoch = rt.CurrEpoch()
	}
	if startEpoch+params.UnlockDuration <= rt.CurrEpoch() {
		rt.Abortf(exitcode.ErrIllegalArgument,
			"%v: schedule from %d completes at or before current epoch %d",
			ErrInstantVest, startEpoch, rt.CurrEpoch())
	}

	st, err := ConstructState(VestInit{
		Total:          params.Total,
		Schedule:       params.Schedule,
		StartEpoch:     startEpoch,
		UnlockDuration: params.UnlockDuration,
		Owner:          params.Owner,
		Recipient:      params.Recipient,
		Denom:          params.Denom,
		Title:          params.Title,
		Description:    params.Description,
	})
	if err != nil {
		rt.Abortf(errExitCode(err), "invalid vesting agreement: %v", err)
	}

	rt.State().Create(st)
	return &adt.EmptyValue{}
}

// Fund marks the agreement funded once the actor holds at least the vest
// total. Anyone may call it: the tokens themselves arrive via a plain
// transfer (e.g. a governance spend), which cannot carry a method call.
func (a Actor) Fund(rt vmr.Runtime, _ *adt.EmptyValue) *adt.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.State().Readonly(&st)
	switch st.Status {
	case StatusFunded:
		rt.Abortf(exitcode.ErrForbidden, "%v", ErrAlreadyFunded)
	case StatusCanceled:
		rt.Abortf(exitcode.ErrForbidden, "%v", ErrAlreadyCanceled)
	}

	balance := rt.CurrentBalance()
	if balance.LessThan(st.Total()) {
		rt.Abortf(exitcode.ErrInsufficientFunds, "%v",
			&WrongFundAmountError{Sent: balance, Expected: st.Total()})
	}

	rt.State().Transaction(&st, func() interface{} {
		if err := st.SetFunded(); err != nil {
			rt.Abortf(errExitCode(err), "%v", err)
		}
		return nil
	})
	return &adt.EmptyValue{}
}

type DistributeParams struct {
	// Amount of tokens to distribute. A nil amount distributes everything
	// currently claimable.
	Amount *abi.TokenAmount
}

// Distribute pays vested tokens to the recipient. Anyone may call it; the
// destination is fixed by the agreement.
func (a Actor) Distribute(rt vmr.Runtime, params *DistributeParams) *adt.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	var intent TransferIntent
	rt.State().Transaction(&st, func() interface{} {
		var err error
		intent, err = st.Distribute(rt.CurrEpoch(), params.Amount)
		if err != nil {
			rt.Abortf(errExitCode(err), "%v", err)
		}
		return nil
	})

	_, code := rt.Send(st.Recipient, builtin.MethodSend, nil, intent.Amount)
	builtin.RequireSuccess(rt, code, "failed to distribute to recipient %v", st.Recipient)
	return &adt.EmptyValue{}
}

// Cancel terminates the agreement early. The amount vested so far becomes
// the total that will ever vest; the recipient is paid any outstanding
// entitlement and the remaining balance returns to the admin pool.
func (a Actor) Cancel(rt vmr.Runtime, _ *adt.EmptyValue) *adt.EmptyValue {
	var st State
	rt.State().Readonly(&st)
	rt.ValidateImmediateCallerIs(st.Owner)

	balance := rt.CurrentBalance()

	var intents []TransferIntent
	rt.State().Transaction(&st, func() interface{} {
		var err error
		intents, err = st.CancelSettlement(rt.CurrEpoch(), balance)
		if err != nil {
			rt.Abortf(errExitCode(err), "%v", err)
		}
		return nil
	})

	for _, intent := range intents {
		to := st.Recipient
		if intent.Kind == RecoverToAdminPool {
			to = builtin.AdminPoolAddr
		}
		_, code := rt.Send(to, builtin.MethodSend, nil, intent.Amount)
		builtin.RequireSuccess(rt, code, "failed settlement transfer to %v", to)
	}
	return &adt.EmptyValue{}
}

type EpochParams struct {
	// Epoch at which to evaluate; a negative value means the current epoch.
	At abi.ChainEpoch
}

// Info returns a snapshot of the vesting agreement record.
func (a Actor) Info(rt vmr.Runtime, _ *adt.EmptyValue) *State {
	rt.ValidateImmediateCallerAcceptAny()
	var st State
	rt.State().Readonly(&st)
	return &st
}

// Vested returns the number of tokens vested at the given epoch.
func (a Actor) Vested(rt vmr.Runtime, params *EpochParams) *abi.TokenAmount {
	rt.ValidateImmediateCallerAcceptAny()
	var st State
	rt.State().Readonly(&st)
	amount := st.Vested(resolveEpoch(rt, params.At))
	return &amount
}

// Distributable returns the number of tokens claimable by the recipient at
// the given epoch: the minimum of the tokens held by the actor and the
// tokens the schedule has unlocked but not yet paid.
func (a Actor) Distributable(rt vmr.Runtime, params *EpochParams) *abi.TokenAmount {
	rt.ValidateImmediateCallerAcceptAny()
	var st State
	rt.State().Readonly(&st)
	amount := st.Distributable(resolveEpoch(rt, params.At))
	return &amount
}

// TotalToVest returns the total amount that will ever vest. If the agreement
// is canceled at epoch c this drops to vested(c), so it cannot be assumed
// constant over the agreement's lifetime.
func (a Actor) TotalToVest(rt vmr.Runtime, _ *adt.EmptyValue) *abi.TokenAmount {
	rt.ValidateImmediateCallerAcceptAny()
	var st State
	rt.State().Readonly(&st)
	amount := st.Total()
	return &amount
}

type VestDurationReturn struct {
	// Canceled reports whether the agreement has been canceled, in which
	// case Duration carries no meaning.
	Canceled bool
	Duration abi.ChainEpoch
}

// VestDuration returns the length of the vesting schedule, from start to
// completion.
func (a Actor) VestDuration(rt vmr.Runtime, _ *adt.EmptyValue) *VestDurationReturn {
	rt.ValidateImmediateCallerAcceptAny()
	var st State
	rt.State().Readonly(&st)
	duration, ok := st.Duration()
	return &VestDurationReturn{Canceled: !ok, Duration: duration}
}

func resolveEpoch(rt vmr.Runtime, e abi.ChainEpoch) abi.ChainEpoch {
	if e < 0 {
		return rt.CurrEpoch()
	}
	return e
}

// Maps state-level payment errors to exit codes.
func errExitCode(err error) exitcode.ExitCode {
	switch err.(type) {
	case *WrongFundAmountError:
		return exitcode.ErrInsufficientFunds
	case *InvalidWithdrawalError, *CurveOrderError, *VestRangeError:
		return exitcode.ErrIllegalArgument
	}
	switch err {
	case ErrAlreadyFunded, ErrAlreadyCanceled:
		return exitcode.ErrForbidden
	}
	return exitcode.ErrIllegalArgument
}
