package builtin

import (
	"github.com/filecoin-project/go-state-types/abi"
)

const (
	MethodSend        = abi.MethodNum(0)
	MethodConstructor = abi.MethodNum(1)
)

type accountMethods struct {
	Constructor   abi.MethodNum
	PubkeyAddress abi.MethodNum
}

var MethodsAccount = accountMethods{MethodConstructor, 2}

type vestingMethods struct {
	Constructor   abi.MethodNum
	Fund          abi.MethodNum
	Distribute    abi.MethodNum
	Cancel        abi.MethodNum
	Info          abi.MethodNum
	Vested        abi.MethodNum
	Distributable abi.MethodNum
	TotalToVest   abi.MethodNum
	VestDuration  abi.MethodNum
}

var MethodsVesting = vestingMethods{MethodConstructor, 2, 3, 4, 5, 6, 7, 8, 9}
