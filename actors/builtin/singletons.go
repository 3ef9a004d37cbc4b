package builtin

import (
	addr "github.com/filecoin-project/go-address"
)

// Addresses for singleton system actors.
var (
	SystemActorAddr = mustMakeAddress(0)
	InitActorAddr   = mustMakeAddress(1)
	// AdminPoolAddr holds funds recovered from canceled vesting agreements,
	// pending redistribution by governance.
	AdminPoolAddr = mustMakeAddress(2)
)

// Actor IDs below this one are reserved for singletons.
const FirstNonSingletonActorId = 100

func mustMakeAddress(id uint64) addr.Address {
	address, err := addr.NewIDAddress(id)
	if err != nil {
		panic(err)
	}
	return address
}
