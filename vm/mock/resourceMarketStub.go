package mock

import (
	"math/big"
)

// ResourceMarketStub -
type ResourceMarketStub struct {
	BuyRAMCalled              func(receiver []byte, payment *big.Int) error
	BuyRAMBurnCalled          func(payer []byte, payment *big.Int) error
	BuyRAMBytesCalled         func(receiver []byte, numBytes uint32) error
	RAMCostWithFeeCalled      func(numBytes uint32) (*big.Int, error)
	SellRAMCalled             func(account []byte, numBytes int64) (*big.Int, error)
	BurnRAMCalled             func(owner []byte, numBytes int64) error
	TransferRAMCalled         func(from []byte, to []byte, numBytes int64) error
	DelegateBandwidthCalled   func(from []byte, receiver []byte, netAmount *big.Int, cpuAmount *big.Int, transfer bool) error
	UndelegateBandwidthCalled func(from []byte, receiver []byte, netAmount *big.Int, cpuAmount *big.Int) error
	ClaimRefundCalled         func(owner []byte) (*big.Int, error)
	PowerUpCalled             func(payer []byte, receiver []byte, numDays uint32, netFrac uint64, cpuFrac uint64, maxPayment *big.Int) (*big.Int, error)
}

// BuyRAM -
func (r *ResourceMarketStub) BuyRAM(receiver []byte, payment *big.Int) error {
	if r.BuyRAMCalled != nil {
		return r.BuyRAMCalled(receiver, payment)
	}
	return nil
}

// BuyRAMBurn -
func (r *ResourceMarketStub) BuyRAMBurn(payer []byte, payment *big.Int) error {
	if r.BuyRAMBurnCalled != nil {
		return r.BuyRAMBurnCalled(payer, payment)
	}
	return nil
}

// BuyRAMBytes -
func (r *ResourceMarketStub) BuyRAMBytes(receiver []byte, numBytes uint32) error {
	if r.BuyRAMBytesCalled != nil {
		return r.BuyRAMBytesCalled(receiver, numBytes)
	}
	return nil
}

// RAMCostWithFee -
func (r *ResourceMarketStub) RAMCostWithFee(numBytes uint32) (*big.Int, error) {
	if r.RAMCostWithFeeCalled != nil {
		return r.RAMCostWithFeeCalled(numBytes)
	}
	return big.NewInt(int64(numBytes)), nil
}

// SellRAM -
func (r *ResourceMarketStub) SellRAM(account []byte, numBytes int64) (*big.Int, error) {
	if r.SellRAMCalled != nil {
		return r.SellRAMCalled(account, numBytes)
	}
	return big.NewInt(numBytes), nil
}

// BurnRAM -
func (r *ResourceMarketStub) BurnRAM(owner []byte, numBytes int64) error {
	if r.BurnRAMCalled != nil {
		return r.BurnRAMCalled(owner, numBytes)
	}
	return nil
}

// TransferRAM -
func (r *ResourceMarketStub) TransferRAM(from []byte, to []byte, numBytes int64) error {
	if r.TransferRAMCalled != nil {
		return r.TransferRAMCalled(from, to, numBytes)
	}
	return nil
}

// DelegateBandwidth -
func (r *ResourceMarketStub) DelegateBandwidth(from []byte, receiver []byte, netAmount *big.Int, cpuAmount *big.Int, transfer bool) error {
	if r.DelegateBandwidthCalled != nil {
		return r.DelegateBandwidthCalled(from, receiver, netAmount, cpuAmount, transfer)
	}
	return nil
}

// UndelegateBandwidth -
func (r *ResourceMarketStub) UndelegateBandwidth(from []byte, receiver []byte, netAmount *big.Int, cpuAmount *big.Int) error {
	if r.UndelegateBandwidthCalled != nil {
		return r.UndelegateBandwidthCalled(from, receiver, netAmount, cpuAmount)
	}
	return nil
}

// ClaimRefund -
func (r *ResourceMarketStub) ClaimRefund(owner []byte) (*big.Int, error) {
	if r.ClaimRefundCalled != nil {
		return r.ClaimRefundCalled(owner)
	}
	return big.NewInt(0), nil
}

// PowerUp -
func (r *ResourceMarketStub) PowerUp(payer []byte, receiver []byte, numDays uint32, netFrac uint64, cpuFrac uint64, maxPayment *big.Int) (*big.Int, error) {
	if r.PowerUpCalled != nil {
		return r.PowerUpCalled(payer, receiver, numDays, netFrac, cpuFrac, maxPayment)
	}
	return maxPayment, nil
}

// IsInterfaceNil -
func (r *ResourceMarketStub) IsInterfaceNil() bool {
	return r == nil
}
