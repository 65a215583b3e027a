package process

import (
	"errors"
	"math/big"
	"sync"
)

type nameBid struct {
	bidder []byte
	amount *big.Int
}

// InMemoryNameAuction is an in-memory premium name auction. An outbid
// bidder's stake becomes a claimable refund, as on the real auction.
type InMemoryNameAuction struct {
	mut     sync.Mutex
	bids    map[string]*nameBid
	refunds map[string]*big.Int
}

// NewInMemoryNameAuction -
func NewInMemoryNameAuction() *InMemoryNameAuction {
	return &InMemoryNameAuction{
		bids:    make(map[string]*nameBid),
		refunds: make(map[string]*big.Int),
	}
}

// HighBidOn -
func (n *InMemoryNameAuction) HighBidOn(name string) *big.Int {
	n.mut.Lock()
	defer n.mut.Unlock()

	bid, found := n.bids[name]
	if !found {
		return big.NewInt(0)
	}
	return big.NewInt(0).Set(bid.amount)
}

// Bid places or raises a bid; a new high bid must exceed the previous by 10%
func (n *InMemoryNameAuction) Bid(bidder []byte, newName string, bid *big.Int) error {
	n.mut.Lock()
	defer n.mut.Unlock()

	current, found := n.bids[newName]
	if !found {
		n.bids[newName] = &nameBid{bidder: bidder, amount: big.NewInt(0).Set(bid)}
		return nil
	}

	minRaise := big.NewInt(0).Mul(current.amount, big.NewInt(11))
	minRaise.Div(minRaise, big.NewInt(10))
	if bid.Cmp(minRaise) < 0 {
		return errors.New("must increase bid by 10%")
	}

	refundKey := string(current.bidder) + "/" + newName
	refund, foundRefund := n.refunds[refundKey]
	if !foundRefund {
		refund = big.NewInt(0)
		n.refunds[refundKey] = refund
	}
	refund.Add(refund, current.amount)

	n.bids[newName] = &nameBid{bidder: bidder, amount: big.NewInt(0).Set(bid)}

	return nil
}

// ClaimRefund -
func (n *InMemoryNameAuction) ClaimRefund(bidder []byte, newName string) (*big.Int, error) {
	n.mut.Lock()
	defer n.mut.Unlock()

	refundKey := string(bidder) + "/" + newName
	refund, found := n.refunds[refundKey]
	if !found || refund.Sign() == 0 {
		return nil, errors.New("refund not found")
	}
	delete(n.refunds, refundKey)

	return refund, nil
}

// IsInterfaceNil -
func (n *InMemoryNameAuction) IsInterfaceNil() bool {
	return n == nil
}
