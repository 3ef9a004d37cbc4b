package system_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vesting-project/vesting-actors/actors/builtin"
	"github.com/vesting-project/vesting-actors/actors/builtin/system"
	"github.com/vesting-project/vesting-actors/actors/util/adt"
	"github.com/vesting-project/vesting-actors/support/mock"
	tutil "github.com/vesting-project/vesting-actors/support/testing"
)

func TestExports(t *testing.T) {
	mock.CheckActorExports(t, system.Actor{})
}

func TestConstructor(t *testing.T) {
	actor := system.Actor{}

	receiver := tutil.NewIDAddr(t, 100)
	builder := mock.NewBuilder(receiver).
		WithCaller(builtin.SystemActorAddr, builtin.SystemActorCodeID)
	rt := builder.Build(t)

	rt.ExpectValidateCallerAddr(builtin.SystemActorAddr)
	ret := rt.Call(actor.Constructor, nil)
	assert.Equal(t, &adt.EmptyValue{}, ret)
	rt.Verify()
}
