package system

import (
	"github.com/vesting-project/vesting-actors/actors/builtin"
	vmr "github.com/vesting-project/vesting-actors/actors/runtime"
	"github.com/vesting-project/vesting-actors/actors/util/adt"
)

type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
	}
}

var _ vmr.Invokee = Actor{}

type State struct{}

func (a Actor) Constructor(rt vmr.Runtime, _ *adt.EmptyValue) *adt.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)

	rt.State().Create(&State{})
	return &adt.EmptyValue{}
}
