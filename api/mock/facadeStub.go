package mock

import (
	"math/big"
)

// FacadeStub -
type FacadeStub struct {
	GetBalanceCalled       func(address string) (*big.Int, error)
	GetPayerStateCalled    func(address string) (string, error)
	IsBlockedCalled        func(address string) (bool, error)
	GetProxyRAMBytesCalled func() (*big.Int, error)
}

// GetBalance -
func (f *FacadeStub) GetBalance(address string) (*big.Int, error) {
	if f.GetBalanceCalled != nil {
		return f.GetBalanceCalled(address)
	}
	return big.NewInt(0), nil
}

// GetPayerState -
func (f *FacadeStub) GetPayerState(address string) (string, error) {
	if f.GetPayerStateCalled != nil {
		return f.GetPayerStateCalled(address)
	}
	return "", nil
}

// IsBlocked -
func (f *FacadeStub) IsBlocked(address string) (bool, error) {
	if f.IsBlockedCalled != nil {
		return f.IsBlockedCalled(address)
	}
	return false, nil
}

// GetProxyRAMBytes -
func (f *FacadeStub) GetProxyRAMBytes() (*big.Int, error) {
	if f.GetProxyRAMBytesCalled != nil {
		return f.GetProxyRAMBytesCalled()
	}
	return big.NewInt(0), nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (f *FacadeStub) IsInterfaceNil() bool {
	return f == nil
}
