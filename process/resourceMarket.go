package process

import (
	"errors"
	"math/big"
	"sync"
)

// InMemoryResourceMarket is an in-memory resource market with a flat RAM
// price, per-account byte holdings, bandwidth stakes and an unstake refund
// queue that matures instantly.
type InMemoryResourceMarket struct {
	mut          sync.Mutex
	pricePerByte *big.Int
	ramBytes     map[string]int64
	stakes       map[string]*big.Int
	refunds      map[string]*big.Int
}

// NewInMemoryResourceMarket -
func NewInMemoryResourceMarket(pricePerByte int64) *InMemoryResourceMarket {
	return &InMemoryResourceMarket{
		pricePerByte: big.NewInt(pricePerByte),
		ramBytes:     make(map[string]int64),
		stakes:       make(map[string]*big.Int),
		refunds:      make(map[string]*big.Int),
	}
}

// RAMBytesOf -
func (r *InMemoryResourceMarket) RAMBytesOf(account []byte) int64 {
	r.mut.Lock()
	defer r.mut.Unlock()
	return r.ramBytes[string(account)]
}

// StakeOf -
func (r *InMemoryResourceMarket) StakeOf(account []byte) *big.Int {
	r.mut.Lock()
	defer r.mut.Unlock()

	stake, found := r.stakes[string(account)]
	if !found {
		return big.NewInt(0)
	}
	return big.NewInt(0).Set(stake)
}

// BuyRAM -
func (r *InMemoryResourceMarket) BuyRAM(receiver []byte, payment *big.Int) error {
	r.mut.Lock()
	defer r.mut.Unlock()

	boughtBytes := big.NewInt(0).Div(payment, r.pricePerByte).Int64()
	if boughtBytes <= 0 {
		return errors.New("insufficient payment for one byte")
	}
	r.ramBytes[string(receiver)] += boughtBytes

	return nil
}

// BuyRAMBurn buys and immediately burns, no holdings change hands
func (r *InMemoryResourceMarket) BuyRAMBurn(_ []byte, payment *big.Int) error {
	r.mut.Lock()
	defer r.mut.Unlock()

	boughtBytes := big.NewInt(0).Div(payment, r.pricePerByte).Int64()
	if boughtBytes <= 0 {
		return errors.New("insufficient payment for one byte")
	}

	return nil
}

// BuyRAMBytes -
func (r *InMemoryResourceMarket) BuyRAMBytes(receiver []byte, numBytes uint32) error {
	r.mut.Lock()
	defer r.mut.Unlock()

	r.ramBytes[string(receiver)] += int64(numBytes)

	return nil
}

// RAMCostWithFee -
func (r *InMemoryResourceMarket) RAMCostWithFee(numBytes uint32) (*big.Int, error) {
	r.mut.Lock()
	defer r.mut.Unlock()

	return big.NewInt(0).Mul(big.NewInt(int64(numBytes)), r.pricePerByte), nil
}

// SellRAM -
func (r *InMemoryResourceMarket) SellRAM(account []byte, numBytes int64) (*big.Int, error) {
	r.mut.Lock()
	defer r.mut.Unlock()

	if numBytes <= 0 {
		return nil, errors.New("cannot reduce negative byte")
	}
	held := r.ramBytes[string(account)]
	if held < numBytes {
		return nil, errors.New("insufficient quota")
	}
	r.ramBytes[string(account)] = held - numBytes

	return big.NewInt(0).Mul(big.NewInt(numBytes), r.pricePerByte), nil
}

// BurnRAM -
func (r *InMemoryResourceMarket) BurnRAM(owner []byte, numBytes int64) error {
	r.mut.Lock()
	defer r.mut.Unlock()

	if numBytes <= 0 {
		return errors.New("cannot reduce negative byte")
	}
	held := r.ramBytes[string(owner)]
	if held < numBytes {
		return errors.New("insufficient quota")
	}
	r.ramBytes[string(owner)] = held - numBytes

	return nil
}

// TransferRAM -
func (r *InMemoryResourceMarket) TransferRAM(from []byte, to []byte, numBytes int64) error {
	r.mut.Lock()
	defer r.mut.Unlock()

	if numBytes <= 0 {
		return errors.New("cannot reduce negative byte")
	}
	held := r.ramBytes[string(from)]
	if held < numBytes {
		return errors.New("insufficient quota")
	}
	r.ramBytes[string(from)] = held - numBytes
	r.ramBytes[string(to)] += numBytes

	return nil
}

// DelegateBandwidth -
func (r *InMemoryResourceMarket) DelegateBandwidth(from []byte, _ []byte, netAmount *big.Int, cpuAmount *big.Int, _ bool) error {
	r.mut.Lock()
	defer r.mut.Unlock()

	total := big.NewInt(0).Add(netAmount, cpuAmount)
	stake, found := r.stakes[string(from)]
	if !found {
		stake = big.NewInt(0)
		r.stakes[string(from)] = stake
	}
	stake.Add(stake, total)

	return nil
}

// UndelegateBandwidth queues the unstaked amount as a pending refund
func (r *InMemoryResourceMarket) UndelegateBandwidth(from []byte, _ []byte, netAmount *big.Int, cpuAmount *big.Int) error {
	r.mut.Lock()
	defer r.mut.Unlock()

	total := big.NewInt(0).Add(netAmount, cpuAmount)
	stake, found := r.stakes[string(from)]
	if !found || stake.Cmp(total) < 0 {
		return errors.New("insufficient staked resources")
	}
	stake.Sub(stake, total)

	refund, found := r.refunds[string(from)]
	if !found {
		refund = big.NewInt(0)
		r.refunds[string(from)] = refund
	}
	refund.Add(refund, total)

	return nil
}

// ClaimRefund -
func (r *InMemoryResourceMarket) ClaimRefund(owner []byte) (*big.Int, error) {
	r.mut.Lock()
	defer r.mut.Unlock()

	refund, found := r.refunds[string(owner)]
	if !found || refund.Sign() == 0 {
		return nil, errors.New("refund not found")
	}
	delete(r.refunds, string(owner))

	return refund, nil
}

// PowerUp charges half of the allowed payment as fee
func (r *InMemoryResourceMarket) PowerUp(_ []byte, _ []byte, numDays uint32, _ uint64, _ uint64, maxPayment *big.Int) (*big.Int, error) {
	if numDays == 0 {
		return nil, errors.New("invalid number of days")
	}

	return big.NewInt(0).Div(maxPayment, big.NewInt(2)), nil
}

// IsInterfaceNil -
func (r *InMemoryResourceMarket) IsInterfaceNil() bool {
	return r == nil
}
