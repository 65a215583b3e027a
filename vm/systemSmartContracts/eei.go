package systemSmartContracts

import (
	"github.com/eosnetworkfoundation/vaulta-system-contract/vm"
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
)

type vmContext struct {
	scAddress     []byte
	storage       map[string][]byte
	storageUpdate map[string][]byte
	output        [][]byte
	logs          []*vmcommon.LogEntry
	returnMessage string
	gasRemaining  uint64
}

// NewVMContext creates an in-memory system environment interface. Writes are
// buffered per execution and become visible only after CommitCache.
func NewVMContext() *vmContext {
	return &vmContext{
		storage:       make(map[string][]byte),
		storageUpdate: make(map[string][]byte),
		output:        make([][]byte, 0),
	}
}

// SetSCAddress sets the smart contract address the storage is bound to
func (host *vmContext) SetSCAddress(addr []byte) {
	host.scAddress = addr
}

// AddReturnMessage appends to the return message of the current execution
func (host *vmContext) AddReturnMessage(message string) {
	if message == "" {
		return
	}

	if host.returnMessage == "" {
		host.returnMessage = message
		return
	}

	host.returnMessage += "@" + message
}

// GetReturnMessage returns the return message of the current execution
func (host *vmContext) GetReturnMessage() string {
	return host.returnMessage
}

// Finish appends the given value to the output of the current execution
func (host *vmContext) Finish(value []byte) {
	host.output = append(host.output, value)
}

// AddLogEntry adds a log entry to the current execution
func (host *vmContext) AddLogEntry(entry *vmcommon.LogEntry) {
	host.logs = append(host.logs, entry)
}

// SetGasProvided sets the gas budget of the next execution
func (host *vmContext) SetGasProvided(gas uint64) {
	host.gasRemaining = gas
}

// UseGas consumes gas from the execution budget
func (host *vmContext) UseGas(gasToConsume uint64) error {
	if host.gasRemaining < gasToConsume {
		return vm.ErrNotEnoughGas
	}
	host.gasRemaining -= gasToConsume

	return nil
}

// GetStorage reads a key, uncommitted writes first
func (host *vmContext) GetStorage(key []byte) []byte {
	if value, isInCache := host.storageUpdate[string(key)]; isInCache {
		return value
	}

	return host.storage[string(key)]
}

// SetStorage buffers a write for the current execution
func (host *vmContext) SetStorage(key []byte, value []byte) {
	host.storageUpdate[string(key)] = value
}

// CleanCache drops all buffered state of the current execution
func (host *vmContext) CleanCache() {
	host.storageUpdate = make(map[string][]byte)
	host.output = make([][]byte, 0)
	host.logs = nil
	host.returnMessage = ""
}

// CommitCache applies the buffered writes to the backing storage
func (host *vmContext) CommitCache() {
	for key, value := range host.storageUpdate {
		if len(value) == 0 {
			delete(host.storage, key)
			continue
		}
		host.storage[key] = value
	}
	host.storageUpdate = make(map[string][]byte)
}

// CreateVMOutput adapts the executed state to the vm output format
func (host *vmContext) CreateVMOutput() *vmcommon.VMOutput {
	vmOutput := &vmcommon.VMOutput{
		ReturnData:    host.output,
		ReturnMessage: host.returnMessage,
		GasRemaining:  host.gasRemaining,
		Logs:          host.logs,
	}

	if len(host.storageUpdate) > 0 {
		outAcc := &vmcommon.OutputAccount{
			Address:        host.scAddress,
			StorageUpdates: make(map[string]*vmcommon.StorageUpdate),
		}
		for key, value := range host.storageUpdate {
			outAcc.StorageUpdates[key] = &vmcommon.StorageUpdate{
				Offset: []byte(key),
				Data:   value,
			}
		}
		vmOutput.OutputAccounts = map[string]*vmcommon.OutputAccount{
			string(host.scAddress): outAcc,
		}
	}

	return vmOutput
}

// IsInterfaceNil returns true if underlying object is nil
func (host *vmContext) IsInterfaceNil() bool {
	return host == nil
}
