package mock

import (
	"context"
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/abi"
	"github.com/filecoin-project/go-state-types/big"
	cid "github.com/ipfs/go-cid"
)

// Build for fluent initialization of a mock runtime.
type RuntimeBuilder struct {
	ctx           context.Context
	epoch         abi.ChainEpoch
	receiver      addr.Address
	caller        addr.Address
	callerType    cid.Cid
	valueReceived abi.TokenAmount
	actorCodeCIDs map[addr.Address]cid.Cid
	balance       abi.TokenAmount
}

// Initializes a new builder with a receiving actor address.
func NewBuilder(receiver addr.Address) RuntimeBuilder {
	m := RuntimeBuilder{
		ctx:           context.Background(),
		epoch:         0,
		receiver:      receiver,
		caller:        addr.Undef,
		callerType:    cid.Undef,
		valueReceived: big.Zero(),
		actorCodeCIDs: make(map[addr.Address]cid.Cid),
		balance:       big.Zero(),
	}
	return m
}

// Builds a new runtime object with the configured values.
func (b RuntimeBuilder) Build(t testing.TB) *Runtime {
	m := Runtime{
		ctx:           b.ctx,
		epoch:         b.epoch,
		receiver:      b.receiver,
		caller:        b.caller,
		callerType:    b.callerType,
		valueReceived: b.valueReceived,
		actorCodeCIDs: make(map[addr.Address]cid.Cid),
		balance:       b.balance,

		t:     t,
		store: make(map[cid.Cid][]byte),
	}
	for a, code := range b.actorCodeCIDs {
		m.actorCodeCIDs[a] = code
	}
	return &m
}

func (b RuntimeBuilder) WithEpoch(epoch abi.ChainEpoch) RuntimeBuilder {
	b.epoch = epoch
	return b
}

func (b RuntimeBuilder) WithCaller(address addr.Address, code cid.Cid) RuntimeBuilder {
	b.caller = address
	b.callerType = code
	b.actorCodeCIDs[address] = code
	return b
}

func (b RuntimeBuilder) WithBalance(balance, received abi.TokenAmount) RuntimeBuilder {
	b.balance = balance
	b.valueReceived = received
	return b
}

func (b RuntimeBuilder) WithActorType(addr addr.Address, code cid.Cid) RuntimeBuilder {
	b.actorCodeCIDs[addr] = code
	return b
}
