package mock

import (
	"math/big"
)

// TokenLedgerStub -
type TokenLedgerStub struct {
	TransferCalled  func(from []byte, to []byte, amount *big.Int, memo string) error
	BalanceOfCalled func(account []byte) *big.Int
}

// Transfer -
func (t *TokenLedgerStub) Transfer(from []byte, to []byte, amount *big.Int, memo string) error {
	if t.TransferCalled != nil {
		return t.TransferCalled(from, to, amount, memo)
	}
	return nil
}

// BalanceOf -
func (t *TokenLedgerStub) BalanceOf(account []byte) *big.Int {
	if t.BalanceOfCalled != nil {
		return t.BalanceOfCalled(account)
	}
	return big.NewInt(0)
}

// IsInterfaceNil -
func (t *TokenLedgerStub) IsInterfaceNil() bool {
	return t == nil
}
