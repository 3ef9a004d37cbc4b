package account_test

import (
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"

	"github.com/vesting-project/vesting-actors/actors/builtin"
	"github.com/vesting-project/vesting-actors/actors/builtin/account"
	"github.com/vesting-project/vesting-actors/actors/util/adt"
	"github.com/vesting-project/vesting-actors/support/mock"
	tutil "github.com/vesting-project/vesting-actors/support/testing"
)

func TestExports(t *testing.T) {
	mock.CheckActorExports(t, account.Actor{})
}

func TestAccountActor(t *testing.T) {
	actor := account.Actor{}

	receiver := tutil.NewIDAddr(t, 100)
	builder := mock.NewBuilder(receiver).
		WithCaller(builtin.SystemActorAddr, builtin.SystemActorCodeID)

	t.Run("construct with pubkey address", func(t *testing.T) {
		rt := builder.Build(t)
		pubkey := tutil.NewSECP256K1Addr(t, "secpaddress")

		rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
		ret := rt.Call(actor.Constructor, &pubkey)
		assert.Equal(t, &adt.EmptyValue{}, ret)
		rt.Verify()

		var st account.State
		rt.GetState(&st)
		assert.Equal(t, pubkey, st.Address)

		rt.ExpectValidateCallerAny()
		pkRet := rt.Call(actor.PubkeyAddress, nil).(*addr.Address)
		assert.Equal(t, pubkey, *pkRet)
		rt.Verify()

		_, acc := account.CheckStateInvariants(&st, receiver)
		assert.True(t, acc.IsEmpty(), acc.Messages())
	})

	t.Run("rejects ID address", func(t *testing.T) {
		rt := builder.Build(t)
		idAddr := tutil.NewIDAddr(t, 1000)

		rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
		rt.ExpectAbort(exitcode.ErrIllegalArgument, func() {
			rt.Call(actor.Constructor, &idAddr)
		})
		rt.Verify()
	})

	t.Run("rejects non-system caller", func(t *testing.T) {
		rt := builder.Build(t)
		pubkey := tutil.NewSECP256K1Addr(t, "secpaddress")

		rt.SetCaller(tutil.NewIDAddr(t, 1000), builtin.AccountActorCodeID)
		rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
		rt.ExpectAbort(exitcode.SysErrForbidden, func() {
			rt.Call(actor.Constructor, &pubkey)
		})
		rt.Verify()
	})
}
