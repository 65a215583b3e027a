package systemSmartContracts

import (
	"math/big"

	"github.com/eosnetworkfoundation/vaulta-system-contract/vm"
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
)

var zero = big.NewInt(0)

// CheckIfNil verifies if the contract call input and its mandatory fields are not nil
func CheckIfNil(args *vmcommon.ContractCallInput) error {
	if args == nil {
		return vm.ErrInputArgsIsNil
	}
	if args.CallValue == nil {
		return vm.ErrInputCallValueIsNil
	}
	if args.Function == "" {
		return vm.ErrInputFunctionIsNil
	}
	if args.CallerAddr == nil {
		return vm.ErrInputCallerAddrIsNil
	}
	if args.RecipientAddr == nil {
		return vm.ErrInputRecipientAddrIsNil
	}

	return nil
}

func isArgumentUint64(arg []byte) bool {
	return big.NewInt(0).SetBytes(arg).IsUint64()
}

func bigIntFromArg(arg []byte) *big.Int {
	return big.NewInt(0).SetBytes(arg)
}
