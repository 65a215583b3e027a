package facade

import (
	"encoding/hex"
	"math/big"

	"github.com/eosnetworkfoundation/vaulta-system-contract/vm"
	"github.com/multiversx/mx-chain-core-go/core/check"
)

// ProxyContractHandler exposes the read side of the wrapped-token contract
type ProxyContractHandler interface {
	BalanceOf(owner []byte) *big.Int
	PayerState(owner []byte) string
	IsBlocked(account []byte) bool
	ProxyRAMBytes() *big.Int
	IsInterfaceNil() bool
}

type proxyFacade struct {
	contract ProxyContractHandler
}

// NewProxyFacade creates the query facade over the proxy contract
func NewProxyFacade(contract ProxyContractHandler) (*proxyFacade, error) {
	if check.IfNil(contract) {
		return nil, vm.ErrNilProxyContract
	}

	return &proxyFacade{
		contract: contract,
	}, nil
}

// GetBalance returns the wrapped balance for a hex-encoded address
func (pf *proxyFacade) GetBalance(address string) (*big.Int, error) {
	addrBytes, err := hex.DecodeString(address)
	if err != nil {
		return nil, err
	}

	return pf.contract.BalanceOf(addrBytes), nil
}

// GetPayerState returns the storage-payer state for a hex-encoded address
func (pf *proxyFacade) GetPayerState(address string) (string, error) {
	addrBytes, err := hex.DecodeString(address)
	if err != nil {
		return "", err
	}

	return pf.contract.PayerState(addrBytes), nil
}

// IsBlocked returns whether the hex-encoded address refuses incoming swaps
func (pf *proxyFacade) IsBlocked(address string) (bool, error) {
	addrBytes, err := hex.DecodeString(address)
	if err != nil {
		return false, err
	}

	return pf.contract.IsBlocked(addrBytes), nil
}

// GetProxyRAMBytes returns the storage bytes currently paid by the proxy
func (pf *proxyFacade) GetProxyRAMBytes() (*big.Int, error) {
	return pf.contract.ProxyRAMBytes(), nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (pf *proxyFacade) IsInterfaceNil() bool {
	return pf == nil
}
