package vesting_test

import (
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vesting-project/vesting-actors/actors/builtin/vesting"
)

const defaultDuration = abi.ChainEpoch(100)

var defaultTotal = big.NewInt(100_000_000)

func defaultInit(t *testing.T) vesting.VestInit {
	t.Helper()
	owner, err := addr.NewIDAddress(100)
	require.NoError(t, err)
	recipient, err := addr.NewIDAddress(101)
	require.NoError(t, err)
	return vesting.VestInit{
		Total:          defaultTotal,
		Schedule:       vesting.Schedule{Kind: vesting.ScheduleSaturatingLinear},
		StartEpoch:     0,
		UnlockDuration: defaultDuration,
		Owner:          owner,
		Recipient:      recipient,
		Denom:          "utoken",
		Title:          "vest",
		Description:    "a vesting agreement",
	}
}

func mustConstruct(t *testing.T, init vesting.VestInit) *vesting.State {
	t.Helper()
	st, err := vesting.ConstructState(init)
	require.NoError(t, err)
	return st
}

func fundedState(t *testing.T) *vesting.State {
	t.Helper()
	st := mustConstruct(t, defaultInit(t))
	require.NoError(t, st.SetFunded())
	return st
}

func amountP(i int64) *abi.TokenAmount {
	a := big.NewInt(i)
	return &a
}

func assertClean(t *testing.T, st *vesting.State, balance abi.TokenAmount) {
	t.Helper()
	_, acc := vesting.CheckStateInvariants(st, balance)
	assert.True(t, acc.IsEmpty(), acc.Messages())
}

func TestConstructState(t *testing.T) {
	t.Run("valid linear vest", func(t *testing.T) {
		st := mustConstruct(t, defaultInit(t))
		assert.Equal(t, vesting.StatusUnfunded, st.Status)
		assert.Equal(t, defaultTotal, st.Total())
		assert.Equal(t, big.Zero(), st.Claimed)

		duration, ok := st.Duration()
		require.True(t, ok)
		assert.Equal(t, defaultDuration, duration)
		assertClean(t, st, big.Zero())
	})

	t.Run("rejects zero total", func(t *testing.T) {
		init := defaultInit(t)
		init.Total = big.Zero()
		_, err := vesting.ConstructState(init)
		assert.Equal(t, vesting.ErrZeroVest, err)
	})

	t.Run("rejects zero duration", func(t *testing.T) {
		init := defaultInit(t)
		init.UnlockDuration = 0
		_, err := vesting.ConstructState(init)
		assert.Equal(t, vesting.ErrInstantVest, err)
	})

	t.Run("rejects malformed piecewise schedule", func(t *testing.T) {
		init := defaultInit(t)
		init.Schedule = vesting.Schedule{
			Kind:  vesting.SchedulePiecewiseLinear,
			Steps: []vesting.CurvePoint{point(1, 0), point(2, 2), point(3, 1), point(4, 100_000_000)},
		}
		_, err := vesting.ConstructState(init)
		var orderErr *vesting.CurveOrderError
		require.ErrorAs(t, err, &orderErr)
		assert.Equal(t, 3, orderErr.Index)
	})
}

func TestVested(t *testing.T) {
	st := mustConstruct(t, defaultInit(t))

	assert.Equal(t, big.Zero(), st.Vested(0))
	assert.Equal(t, big.NewInt(10_000_000), st.Vested(10))
	assert.Equal(t, big.NewInt(50_000_000), st.Vested(50))
	assert.Equal(t, defaultTotal, st.Vested(100))
	assert.Equal(t, defaultTotal, st.Vested(100_000))
}

func TestVestedBeforeStart(t *testing.T) {
	init := defaultInit(t)
	init.StartEpoch = 1000
	st := mustConstruct(t, init)

	// Epochs before the start clamp to zero elapsed time.
	assert.Equal(t, big.Zero(), st.Vested(0))
	assert.Equal(t, big.Zero(), st.Vested(999))
	assert.Equal(t, big.Zero(), st.Vested(1000))
	assert.Equal(t, big.NewInt(10_000_000), st.Vested(1010))
}

func TestSetFunded(t *testing.T) {
	st := mustConstruct(t, defaultInit(t))
	require.NoError(t, st.SetFunded())
	assert.Equal(t, vesting.StatusFunded, st.Status)

	assert.Equal(t, vesting.ErrAlreadyFunded, st.SetFunded())

	require.NoError(t, st.Cancel(10))
	assert.Equal(t, vesting.ErrAlreadyCanceled, st.SetFunded())
}

func TestDistribute(t *testing.T) {
	t.Run("pays the vested amount", func(t *testing.T) {
		st := fundedState(t)
		intent, err := st.Distribute(10, nil)
		require.NoError(t, err)
		assert.Equal(t, vesting.TransferToRecipient, intent.Kind)
		assert.Equal(t, big.NewInt(10_000_000), intent.Amount)
		assert.Equal(t, big.NewInt(10_000_000), st.Claimed)
		assertClean(t, st, big.NewInt(90_000_000))
	})

	t.Run("nothing vested while unfunded", func(t *testing.T) {
		st := mustConstruct(t, defaultInit(t))
		_, err := st.Distribute(10, nil)
		var invalidErr *vesting.InvalidWithdrawalError
		require.ErrorAs(t, err, &invalidErr)
		assert.Equal(t, big.Zero(), invalidErr.Request)
		assert.Equal(t, big.Zero(), invalidErr.Claimable)
		// Failed distribution leaves the record untouched.
		assert.Equal(t, big.Zero(), st.Claimed)
	})

	t.Run("nothing left to claim", func(t *testing.T) {
		st := fundedState(t)
		_, err := st.Distribute(10, nil)
		require.NoError(t, err)
		_, err = st.Distribute(10, nil)
		var invalidErr *vesting.InvalidWithdrawalError
		require.ErrorAs(t, err, &invalidErr)
	})

	t.Run("rejects requests beyond the vested amount", func(t *testing.T) {
		st := fundedState(t)
		_, err := st.Distribute(50, amountP(50_000_001))
		var invalidErr *vesting.InvalidWithdrawalError
		require.ErrorAs(t, err, &invalidErr)
		assert.Equal(t, big.NewInt(50_000_001), invalidErr.Request)
		assert.Equal(t, big.NewInt(50_000_000), invalidErr.Claimable)
		assert.Equal(t, big.Zero(), st.Claimed)
	})

	t.Run("rejects explicit zero requests", func(t *testing.T) {
		st := fundedState(t)
		_, err := st.Distribute(50, amountP(0))
		var invalidErr *vesting.InvalidWithdrawalError
		require.ErrorAs(t, err, &invalidErr)
	})

	t.Run("partial requests accumulate", func(t *testing.T) {
		st := fundedState(t)
		intent, err := st.Distribute(50, amountP(3))
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(3), intent.Amount)
		assert.Equal(t, big.NewInt(3), st.Claimed)

		intent, err = st.Distribute(50, nil)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(49_999_997), intent.Amount)
		assert.Equal(t, big.NewInt(50_000_000), st.Claimed)
		assertClean(t, st, big.NewInt(50_000_000))
	})

	t.Run("vest completes after the duration", func(t *testing.T) {
		st := fundedState(t)
		intent, err := st.Distribute(1000, nil)
		require.NoError(t, err)
		assert.Equal(t, defaultTotal, intent.Amount)
		assert.Equal(t, defaultTotal, st.Claimed)
		assertClean(t, st, big.Zero())
	})
}

func TestDistributable(t *testing.T) {
	init := defaultInit(t)
	init.Total = big.NewInt(8)
	init.Schedule = vesting.Schedule{
		Kind:  vesting.SchedulePiecewiseLinear,
		Steps: []vesting.CurvePoint{point(1, 0), point(3, 4), point(5, 8)},
	}
	st := mustConstruct(t, init)

	// Nothing is distributable before funding, whatever the schedule says.
	assert.Equal(t, big.Zero(), st.Distributable(4))

	require.NoError(t, st.SetFunded())
	expected := []int64{0, 0, 2, 4, 6, 8, 8}
	for e, want := range expected {
		assert.Equal(t, big.NewInt(want), st.Distributable(abi.ChainEpoch(e)), "at epoch %d", e)
	}

	// Distribution lowers the claimable remainder.
	_, err := st.Distribute(4, amountP(5))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1), st.Distributable(4))
	assert.Equal(t, big.NewInt(3), st.Distributable(5))
}

func TestCancel(t *testing.T) {
	t.Run("freezes the curve", func(t *testing.T) {
		st := fundedState(t)
		require.NoError(t, st.Cancel(50))

		assert.Equal(t, vesting.StatusCanceled, st.Status)
		require.NotNil(t, st.VestingCurve.Constant)
		assert.Equal(t, big.NewInt(50_000_000), st.Total())

		// No further vesting at any epoch.
		assert.Equal(t, big.NewInt(50_000_000), st.Vested(0))
		assert.Equal(t, big.NewInt(50_000_000), st.Vested(100))
		assert.Equal(t, big.NewInt(50_000_000), st.Vested(100_000))

		_, ok := st.Duration()
		assert.False(t, ok)
		assertClean(t, st, big.NewInt(100_000_000))
	})

	t.Run("cannot cancel twice", func(t *testing.T) {
		st := fundedState(t)
		require.NoError(t, st.Cancel(50))
		assert.Equal(t, vesting.ErrAlreadyCanceled, st.Cancel(60))
	})
}

func TestCancelSettlement(t *testing.T) {
	t.Run("splits balance between recipient and admin pool", func(t *testing.T) {
		init := defaultInit(t)
		init.Total = big.NewInt(100)
		st := mustConstruct(t, init)
		require.NoError(t, st.SetFunded())

		// Half way through with nothing claimed and a padded balance.
		intents, err := st.CancelSettlement(50, big.NewInt(1000))
		require.NoError(t, err)
		require.Len(t, intents, 2)
		assert.Equal(t, vesting.TransferToRecipient, intents[0].Kind)
		assert.Equal(t, big.NewInt(50), intents[0].Amount)
		assert.Equal(t, vesting.RecoverToAdminPool, intents[1].Kind)
		assert.Equal(t, big.NewInt(950), intents[1].Amount)

		assert.Equal(t, vesting.StatusCanceled, st.Status)
		assertClean(t, st, big.Zero())
	})

	t.Run("no intents when fully claimed and drained", func(t *testing.T) {
		st := fundedState(t)
		_, err := st.Distribute(1000, nil)
		require.NoError(t, err)

		intents, err := st.CancelSettlement(1000, big.Zero())
		require.NoError(t, err)
		assert.Empty(t, intents)
	})

	t.Run("residual balance returns to the admin pool alone", func(t *testing.T) {
		st := fundedState(t)
		_, err := st.Distribute(1000, nil)
		require.NoError(t, err)

		intents, err := st.CancelSettlement(1000, big.NewInt(10))
		require.NoError(t, err)
		require.Len(t, intents, 1)
		assert.Equal(t, vesting.RecoverToAdminPool, intents[0].Kind)
		assert.Equal(t, big.NewInt(10), intents[0].Amount)
	})

	t.Run("cannot settle twice", func(t *testing.T) {
		st := fundedState(t)
		_, err := st.CancelSettlement(50, defaultTotal)
		require.NoError(t, err)
		_, err = st.CancelSettlement(60, defaultTotal)
		assert.Equal(t, vesting.ErrAlreadyCanceled, err)
	})
}
