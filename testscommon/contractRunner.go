package testscommon

import (
	"github.com/eosnetworkfoundation/vaulta-system-contract/vm"
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
)

// ContractRunner drives a system contract through the same lifecycle the
// invoking layer uses: clean the write cache, provide gas, execute and commit
// storage only on success. A failed call leaves no trace in storage. Host
// contracts mutated during the call are expected to be transacted with it:
// where a handler credits proceeds reported by a host (sellram, refund,
// bidrefund, powerup), the host has already moved value when the credit runs,
// and the invoking layer must revert the host together with the discarded
// cache on failure.
type ContractRunner struct {
	Eei      vm.ContextHandler
	Contract vm.SystemSmartContract
}

// NewContractRunner -
func NewContractRunner(eei vm.ContextHandler, contract vm.SystemSmartContract) *ContractRunner {
	return &ContractRunner{
		Eei:      eei,
		Contract: contract,
	}
}

// Run executes one contract call atomically
func (r *ContractRunner) Run(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	r.Eei.CleanCache()
	r.Eei.SetGasProvided(args.GasProvided)

	returnCode := r.Contract.Execute(args)
	if returnCode == vmcommon.Ok {
		r.Eei.CommitCache()
	}

	return returnCode
}
