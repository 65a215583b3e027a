package process

import (
	"errors"
	"math/big"
	"sync"
)

// InMemoryTokenLedger is an in-memory primary token ledger. It enforces
// the same funding rules a real ledger would.
type InMemoryTokenLedger struct {
	mut      sync.RWMutex
	balances map[string]*big.Int
}

// NewInMemoryTokenLedger -
func NewInMemoryTokenLedger() *InMemoryTokenLedger {
	return &InMemoryTokenLedger{
		balances: make(map[string]*big.Int),
	}
}

// SetBalance seeds an account with primary token
func (t *InMemoryTokenLedger) SetBalance(account []byte, amount *big.Int) {
	t.mut.Lock()
	t.balances[string(account)] = big.NewInt(0).Set(amount)
	t.mut.Unlock()
}

// Transfer moves primary token between accounts
func (t *InMemoryTokenLedger) Transfer(from []byte, to []byte, amount *big.Int, _ string) error {
	t.mut.Lock()
	defer t.mut.Unlock()

	fromBalance, found := t.balances[string(from)]
	if !found {
		return errors.New("no balance object found")
	}
	if fromBalance.Cmp(amount) < 0 {
		return errors.New("overdrawn balance")
	}

	fromBalance.Sub(fromBalance, amount)
	toBalance, found := t.balances[string(to)]
	if !found {
		toBalance = big.NewInt(0)
		t.balances[string(to)] = toBalance
	}
	toBalance.Add(toBalance, amount)

	return nil
}

// BalanceOf -
func (t *InMemoryTokenLedger) BalanceOf(account []byte) *big.Int {
	t.mut.RLock()
	defer t.mut.RUnlock()

	balance, found := t.balances[string(account)]
	if !found {
		return big.NewInt(0)
	}
	return big.NewInt(0).Set(balance)
}

// IsInterfaceNil -
func (t *InMemoryTokenLedger) IsInterfaceNil() bool {
	return t == nil
}
