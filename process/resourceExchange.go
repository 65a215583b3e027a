package process

import (
	"errors"
	"math/big"
	"sync"
)

type exchangePosition struct {
	fund    *big.Int
	shares  *big.Int
	savings *big.Int
}

// InMemoryResourceExchange is an in-memory staking pool with per-account
// deposit funds, shares and a savings bucket. Shares convert 1:1 for
// simplicity, loans only track their funded balance.
type InMemoryResourceExchange struct {
	mut       sync.Mutex
	positions map[string]*exchangePosition
	loans     map[uint64]*big.Int
	donations *big.Int
}

// NewInMemoryResourceExchange -
func NewInMemoryResourceExchange() *InMemoryResourceExchange {
	return &InMemoryResourceExchange{
		positions: make(map[string]*exchangePosition),
		loans:     make(map[uint64]*big.Int),
		donations: big.NewInt(0),
	}
}

func (r *InMemoryResourceExchange) position(owner []byte) *exchangePosition {
	pos, found := r.positions[string(owner)]
	if !found {
		pos = &exchangePosition{
			fund:    big.NewInt(0),
			shares:  big.NewInt(0),
			savings: big.NewInt(0),
		}
		r.positions[string(owner)] = pos
	}
	return pos
}

// FundOf -
func (r *InMemoryResourceExchange) FundOf(owner []byte) *big.Int {
	r.mut.Lock()
	defer r.mut.Unlock()
	return big.NewInt(0).Set(r.position(owner).fund)
}

// SharesOf -
func (r *InMemoryResourceExchange) SharesOf(owner []byte) *big.Int {
	r.mut.Lock()
	defer r.mut.Unlock()
	return big.NewInt(0).Set(r.position(owner).shares)
}

// SavingsOf -
func (r *InMemoryResourceExchange) SavingsOf(owner []byte) *big.Int {
	r.mut.Lock()
	defer r.mut.Unlock()
	return big.NewInt(0).Set(r.position(owner).savings)
}

// Donations -
func (r *InMemoryResourceExchange) Donations() *big.Int {
	r.mut.Lock()
	defer r.mut.Unlock()
	return big.NewInt(0).Set(r.donations)
}

// Deposit -
func (r *InMemoryResourceExchange) Deposit(owner []byte, amount *big.Int) error {
	r.mut.Lock()
	defer r.mut.Unlock()

	pos := r.position(owner)
	pos.fund.Add(pos.fund, amount)

	return nil
}

// Withdraw -
func (r *InMemoryResourceExchange) Withdraw(owner []byte, amount *big.Int) error {
	r.mut.Lock()
	defer r.mut.Unlock()

	pos := r.position(owner)
	if pos.fund.Cmp(amount) < 0 {
		return errors.New("insufficient funds")
	}
	pos.fund.Sub(pos.fund, amount)

	return nil
}

// BuyShares -
func (r *InMemoryResourceExchange) BuyShares(from []byte, amount *big.Int) error {
	r.mut.Lock()
	defer r.mut.Unlock()

	pos := r.position(from)
	if pos.fund.Cmp(amount) < 0 {
		return errors.New("insufficient funds")
	}
	pos.fund.Sub(pos.fund, amount)
	pos.shares.Add(pos.shares, amount)

	return nil
}

// SellShares -
func (r *InMemoryResourceExchange) SellShares(from []byte, shares *big.Int) error {
	r.mut.Lock()
	defer r.mut.Unlock()

	pos := r.position(from)
	if pos.shares.Cmp(shares) < 0 {
		return errors.New("insufficient shares")
	}
	pos.shares.Sub(pos.shares, shares)
	pos.fund.Add(pos.fund, shares)

	return nil
}

// MoveToSavings -
func (r *InMemoryResourceExchange) MoveToSavings(owner []byte, shares *big.Int) error {
	r.mut.Lock()
	defer r.mut.Unlock()

	pos := r.position(owner)
	if pos.shares.Cmp(shares) < 0 {
		return errors.New("insufficient shares")
	}
	pos.shares.Sub(pos.shares, shares)
	pos.savings.Add(pos.savings, shares)

	return nil
}

// MoveFromSavings -
func (r *InMemoryResourceExchange) MoveFromSavings(owner []byte, shares *big.Int) error {
	r.mut.Lock()
	defer r.mut.Unlock()

	pos := r.position(owner)
	if pos.savings.Cmp(shares) < 0 {
		return errors.New("insufficient shares in savings")
	}
	pos.savings.Sub(pos.savings, shares)
	pos.shares.Add(pos.shares, shares)

	return nil
}

// RentCPU -
func (r *InMemoryResourceExchange) RentCPU(from []byte, _ []byte, payment *big.Int, fund *big.Int) error {
	return r.rent(from, payment, fund)
}

// RentNet -
func (r *InMemoryResourceExchange) RentNet(from []byte, _ []byte, payment *big.Int, fund *big.Int) error {
	return r.rent(from, payment, fund)
}

func (r *InMemoryResourceExchange) rent(from []byte, payment *big.Int, fund *big.Int) error {
	r.mut.Lock()
	defer r.mut.Unlock()

	total := big.NewInt(0).Add(payment, fund)
	pos := r.position(from)
	if pos.fund.Cmp(total) < 0 {
		return errors.New("insufficient funds")
	}
	pos.fund.Sub(pos.fund, total)

	loanNum := uint64(len(r.loans) + 1)
	r.loans[loanNum] = big.NewInt(0).Set(fund)

	return nil
}

// FundCPULoan -
func (r *InMemoryResourceExchange) FundCPULoan(from []byte, loanNum uint64, payment *big.Int) error {
	return r.fundLoan(from, loanNum, payment)
}

// FundNetLoan -
func (r *InMemoryResourceExchange) FundNetLoan(from []byte, loanNum uint64, payment *big.Int) error {
	return r.fundLoan(from, loanNum, payment)
}

func (r *InMemoryResourceExchange) fundLoan(from []byte, loanNum uint64, payment *big.Int) error {
	r.mut.Lock()
	defer r.mut.Unlock()

	loan, found := r.loans[loanNum]
	if !found {
		return errors.New("loan not found")
	}
	pos := r.position(from)
	if pos.fund.Cmp(payment) < 0 {
		return errors.New("insufficient funds")
	}
	pos.fund.Sub(pos.fund, payment)
	loan.Add(loan, payment)

	return nil
}

// DefundCPULoan -
func (r *InMemoryResourceExchange) DefundCPULoan(from []byte, loanNum uint64, amount *big.Int) error {
	return r.defundLoan(from, loanNum, amount)
}

// DefundNetLoan -
func (r *InMemoryResourceExchange) DefundNetLoan(from []byte, loanNum uint64, amount *big.Int) error {
	return r.defundLoan(from, loanNum, amount)
}

func (r *InMemoryResourceExchange) defundLoan(from []byte, loanNum uint64, amount *big.Int) error {
	r.mut.Lock()
	defer r.mut.Unlock()

	loan, found := r.loans[loanNum]
	if !found {
		return errors.New("loan not found")
	}
	if loan.Cmp(amount) < 0 {
		return errors.New("insufficient loan balance")
	}
	loan.Sub(loan, amount)
	pos := r.position(from)
	pos.fund.Add(pos.fund, amount)

	return nil
}

// UpdatePosition -
func (r *InMemoryResourceExchange) UpdatePosition(owner []byte) error {
	r.mut.Lock()
	defer r.mut.Unlock()

	_, found := r.positions[string(owner)]
	if !found {
		return errors.New("position not found")
	}

	return nil
}

// Donate -
func (r *InMemoryResourceExchange) Donate(_ []byte, amount *big.Int, _ string) error {
	r.mut.Lock()
	defer r.mut.Unlock()

	r.donations.Add(r.donations, amount)

	return nil
}

// IsInterfaceNil -
func (r *InMemoryResourceExchange) IsInterfaceNil() bool {
	return r == nil
}
