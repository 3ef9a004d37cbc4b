package exported

import (
	cid "github.com/ipfs/go-cid"

	"github.com/vesting-project/vesting-actors/actors/builtin"
	"github.com/vesting-project/vesting-actors/actors/builtin/account"
	"github.com/vesting-project/vesting-actors/actors/builtin/system"
	"github.com/vesting-project/vesting-actors/actors/builtin/vesting"
	vmr "github.com/vesting-project/vesting-actors/actors/runtime"
)

var _ vmr.Invokee = BuiltinActor{}

type BuiltinActor struct {
	actor vmr.Invokee
	code  cid.Cid
}

// Code is the CodeID (cid) of the actor.
func (b BuiltinActor) Code() cid.Cid {
	return b.code
}

// Exports returns a slice of callable Actor methods.
func (b BuiltinActor) Exports() []interface{} {
	return b.actor.Exports()
}

// BuiltinActors lists the actors this module implements. The init actor is
// deliberately absent: actor creation belongs to the host chain.
func BuiltinActors() []BuiltinActor {
	return []BuiltinActor{
		{
			actor: account.Actor{},
			code:  builtin.AccountActorCodeID,
		},
		{
			actor: system.Actor{},
			code:  builtin.SystemActorCodeID,
		},
		{
			actor: vesting.Actor{},
			code:  builtin.VestingActorCodeID,
		},
	}
}
