package systemSmartContracts

import (
	"testing"

	"github.com/eosnetworkfoundation/vaulta-system-contract/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVmContext_NilChecks(t *testing.T) {
	t.Parallel()

	var host *vmContext
	assert.True(t, host.IsInterfaceNil())
	assert.False(t, NewVMContext().IsInterfaceNil())
}

func TestVmContext_StorageReadsUncommittedWritesFirst(t *testing.T) {
	t.Parallel()

	host := NewVMContext()
	host.SetStorage([]byte("key"), []byte("pending"))
	assert.Equal(t, []byte("pending"), host.GetStorage([]byte("key")))

	host.CommitCache()
	assert.Equal(t, []byte("pending"), host.GetStorage([]byte("key")))

	host.SetStorage([]byte("key"), []byte("newer"))
	assert.Equal(t, []byte("newer"), host.GetStorage([]byte("key")))

	host.CleanCache()
	assert.Equal(t, []byte("pending"), host.GetStorage([]byte("key")))
}

func TestVmContext_CommitDeletesEmptyValues(t *testing.T) {
	t.Parallel()

	host := NewVMContext()
	host.SetStorage([]byte("key"), []byte("value"))
	host.CommitCache()

	host.SetStorage([]byte("key"), nil)
	host.CommitCache()
	assert.Nil(t, host.GetStorage([]byte("key")))
}

func TestVmContext_CleanCacheDropsExecutionState(t *testing.T) {
	t.Parallel()

	host := NewVMContext()
	host.SetStorage([]byte("key"), []byte("value"))
	host.Finish([]byte("out"))
	host.AddReturnMessage("something failed")

	host.CleanCache()
	assert.Nil(t, host.GetStorage([]byte("key")))
	assert.Equal(t, "", host.GetReturnMessage())
	assert.Empty(t, host.CreateVMOutput().ReturnData)
}

func TestVmContext_UseGas(t *testing.T) {
	t.Parallel()

	host := NewVMContext()
	host.SetGasProvided(10)

	require.NoError(t, host.UseGas(7))
	err := host.UseGas(4)
	assert.Equal(t, vm.ErrNotEnoughGas, err)
	require.NoError(t, host.UseGas(3))
}

func TestVmContext_ReturnMessagesAreJoined(t *testing.T) {
	t.Parallel()

	host := NewVMContext()
	host.AddReturnMessage("")
	host.AddReturnMessage("first")
	host.AddReturnMessage("second")
	assert.Equal(t, "first@second", host.GetReturnMessage())
}

func TestVmContext_CreateVMOutput(t *testing.T) {
	t.Parallel()

	host := NewVMContext()
	host.SetSCAddress([]byte("contract"))
	host.SetGasProvided(100)
	require.NoError(t, host.UseGas(40))
	host.Finish([]byte("result"))
	host.SetStorage([]byte("key"), []byte("value"))

	vmOutput := host.CreateVMOutput()
	assert.Equal(t, uint64(60), vmOutput.GasRemaining)
	require.Len(t, vmOutput.ReturnData, 1)
	assert.Equal(t, []byte("result"), vmOutput.ReturnData[0])

	outAcc, found := vmOutput.OutputAccounts["contract"]
	require.True(t, found)
	update, found := outAcc.StorageUpdates["key"]
	require.True(t, found)
	assert.Equal(t, []byte("value"), update.Data)
}
