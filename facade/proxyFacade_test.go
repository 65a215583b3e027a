package facade

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/eosnetworkfoundation/vaulta-system-contract/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type proxyContractStub struct {
	BalanceOfCalled     func(owner []byte) *big.Int
	PayerStateCalled    func(owner []byte) string
	IsBlockedCalled     func(account []byte) bool
	ProxyRAMBytesCalled func() *big.Int
}

func (p *proxyContractStub) BalanceOf(owner []byte) *big.Int {
	if p.BalanceOfCalled != nil {
		return p.BalanceOfCalled(owner)
	}
	return big.NewInt(0)
}

func (p *proxyContractStub) PayerState(owner []byte) string {
	if p.PayerStateCalled != nil {
		return p.PayerStateCalled(owner)
	}
	return ""
}

func (p *proxyContractStub) IsBlocked(account []byte) bool {
	if p.IsBlockedCalled != nil {
		return p.IsBlockedCalled(account)
	}
	return false
}

func (p *proxyContractStub) ProxyRAMBytes() *big.Int {
	if p.ProxyRAMBytesCalled != nil {
		return p.ProxyRAMBytesCalled()
	}
	return big.NewInt(0)
}

func (p *proxyContractStub) IsInterfaceNil() bool {
	return p == nil
}

func TestNewProxyFacade_NilContract(t *testing.T) {
	t.Parallel()

	pf, err := NewProxyFacade(nil)
	assert.Nil(t, pf)
	assert.Equal(t, vm.ErrNilProxyContract, err)
}

func TestProxyFacade_GetBalance(t *testing.T) {
	t.Parallel()

	pf, err := NewProxyFacade(&proxyContractStub{
		BalanceOfCalled: func(owner []byte) *big.Int {
			assert.Equal(t, []byte("alice"), owner)
			return big.NewInt(77)
		},
	})
	require.NoError(t, err)

	balance, err := pf.GetBalance(hex.EncodeToString([]byte("alice")))
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(77), balance)
}

func TestProxyFacade_GetBalanceInvalidHex(t *testing.T) {
	t.Parallel()

	pf, _ := NewProxyFacade(&proxyContractStub{})

	balance, err := pf.GetBalance("not a hex string")
	assert.Nil(t, balance)
	assert.Error(t, err)
}

func TestProxyFacade_GetPayerState(t *testing.T) {
	t.Parallel()

	pf, _ := NewProxyFacade(&proxyContractStub{
		PayerStateCalled: func(_ []byte) string {
			return "owner-paid"
		},
	})

	state, err := pf.GetPayerState(hex.EncodeToString([]byte("alice")))
	require.NoError(t, err)
	assert.Equal(t, "owner-paid", state)

	_, err = pf.GetPayerState("zz")
	assert.Error(t, err)
}

func TestProxyFacade_IsBlocked(t *testing.T) {
	t.Parallel()

	pf, _ := NewProxyFacade(&proxyContractStub{
		IsBlockedCalled: func(_ []byte) bool {
			return true
		},
	})

	blocked, err := pf.IsBlocked(hex.EncodeToString([]byte("mallory")))
	require.NoError(t, err)
	assert.True(t, blocked)

	_, err = pf.IsBlocked("zz")
	assert.Error(t, err)
}

func TestProxyFacade_GetProxyRAMBytes(t *testing.T) {
	t.Parallel()

	pf, _ := NewProxyFacade(&proxyContractStub{
		ProxyRAMBytesCalled: func() *big.Int {
			return big.NewInt(240)
		},
	})

	ramBytes, err := pf.GetProxyRAMBytes()
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(240), ramBytes)
}
