package mock

import (
	"math/big"
)

// ResourceExchangeStub -
type ResourceExchangeStub struct {
	DepositCalled         func(owner []byte, amount *big.Int) error
	WithdrawCalled        func(owner []byte, amount *big.Int) error
	BuySharesCalled       func(from []byte, amount *big.Int) error
	SellSharesCalled      func(from []byte, shares *big.Int) error
	MoveToSavingsCalled   func(owner []byte, shares *big.Int) error
	MoveFromSavingsCalled func(owner []byte, shares *big.Int) error
	RentCPUCalled         func(from []byte, receiver []byte, payment *big.Int, fund *big.Int) error
	RentNetCalled         func(from []byte, receiver []byte, payment *big.Int, fund *big.Int) error
	FundCPULoanCalled     func(from []byte, loanNum uint64, payment *big.Int) error
	FundNetLoanCalled     func(from []byte, loanNum uint64, payment *big.Int) error
	DefundCPULoanCalled   func(from []byte, loanNum uint64, amount *big.Int) error
	DefundNetLoanCalled   func(from []byte, loanNum uint64, amount *big.Int) error
	UpdatePositionCalled  func(owner []byte) error
	DonateCalled          func(payer []byte, amount *big.Int, memo string) error
}

// Deposit -
func (r *ResourceExchangeStub) Deposit(owner []byte, amount *big.Int) error {
	if r.DepositCalled != nil {
		return r.DepositCalled(owner, amount)
	}
	return nil
}

// Withdraw -
func (r *ResourceExchangeStub) Withdraw(owner []byte, amount *big.Int) error {
	if r.WithdrawCalled != nil {
		return r.WithdrawCalled(owner, amount)
	}
	return nil
}

// BuyShares -
func (r *ResourceExchangeStub) BuyShares(from []byte, amount *big.Int) error {
	if r.BuySharesCalled != nil {
		return r.BuySharesCalled(from, amount)
	}
	return nil
}

// SellShares -
func (r *ResourceExchangeStub) SellShares(from []byte, shares *big.Int) error {
	if r.SellSharesCalled != nil {
		return r.SellSharesCalled(from, shares)
	}
	return nil
}

// MoveToSavings -
func (r *ResourceExchangeStub) MoveToSavings(owner []byte, shares *big.Int) error {
	if r.MoveToSavingsCalled != nil {
		return r.MoveToSavingsCalled(owner, shares)
	}
	return nil
}

// MoveFromSavings -
func (r *ResourceExchangeStub) MoveFromSavings(owner []byte, shares *big.Int) error {
	if r.MoveFromSavingsCalled != nil {
		return r.MoveFromSavingsCalled(owner, shares)
	}
	return nil
}

// RentCPU -
func (r *ResourceExchangeStub) RentCPU(from []byte, receiver []byte, payment *big.Int, fund *big.Int) error {
	if r.RentCPUCalled != nil {
		return r.RentCPUCalled(from, receiver, payment, fund)
	}
	return nil
}

// RentNet -
func (r *ResourceExchangeStub) RentNet(from []byte, receiver []byte, payment *big.Int, fund *big.Int) error {
	if r.RentNetCalled != nil {
		return r.RentNetCalled(from, receiver, payment, fund)
	}
	return nil
}

// FundCPULoan -
func (r *ResourceExchangeStub) FundCPULoan(from []byte, loanNum uint64, payment *big.Int) error {
	if r.FundCPULoanCalled != nil {
		return r.FundCPULoanCalled(from, loanNum, payment)
	}
	return nil
}

// FundNetLoan -
func (r *ResourceExchangeStub) FundNetLoan(from []byte, loanNum uint64, payment *big.Int) error {
	if r.FundNetLoanCalled != nil {
		return r.FundNetLoanCalled(from, loanNum, payment)
	}
	return nil
}

// DefundCPULoan -
func (r *ResourceExchangeStub) DefundCPULoan(from []byte, loanNum uint64, amount *big.Int) error {
	if r.DefundCPULoanCalled != nil {
		return r.DefundCPULoanCalled(from, loanNum, amount)
	}
	return nil
}

// DefundNetLoan -
func (r *ResourceExchangeStub) DefundNetLoan(from []byte, loanNum uint64, amount *big.Int) error {
	if r.DefundNetLoanCalled != nil {
		return r.DefundNetLoanCalled(from, loanNum, amount)
	}
	return nil
}

// UpdatePosition -
func (r *ResourceExchangeStub) UpdatePosition(owner []byte) error {
	if r.UpdatePositionCalled != nil {
		return r.UpdatePositionCalled(owner)
	}
	return nil
}

// Donate -
func (r *ResourceExchangeStub) Donate(payer []byte, amount *big.Int, memo string) error {
	if r.DonateCalled != nil {
		return r.DonateCalled(payer, amount, memo)
	}
	return nil
}

// IsInterfaceNil -
func (r *ResourceExchangeStub) IsInterfaceNil() bool {
	return r == nil
}
