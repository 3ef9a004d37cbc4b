package main

import (
	gen "github.com/whyrusleeping/cbor-gen"

	"github.com/vesting-project/vesting-actors/actors/builtin/account"
	"github.com/vesting-project/vesting-actors/actors/builtin/system"
	"github.com/vesting-project/vesting-actors/actors/builtin/vesting"
)

func main() {
	if err := gen.WriteTupleEncodersToFile("./actors/builtin/account/cbor_gen.go", "account",
		account.State{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/system/cbor_gen.go", "system",
		system.State{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/vesting/cbor_gen.go", "vesting",
		// actor state
		vesting.State{},
		vesting.Curve{},
		vesting.ConstantCurve{},
		vesting.SaturatingLinearCurve{},
		vesting.PiecewiseLinearCurve{},
		vesting.CurvePoint{},
		vesting.Schedule{},
		// method params and returns
		vesting.ConstructorParams{},
		vesting.DistributeParams{},
		vesting.EpochParams{},
		vesting.VestDurationReturn{},
	); err != nil {
		panic(err)
	}
}
