package mock

import (
	"math/big"
)

// NameAuctionStub -
type NameAuctionStub struct {
	BidCalled         func(bidder []byte, newName string, bid *big.Int) error
	ClaimRefundCalled func(bidder []byte, newName string) (*big.Int, error)
}

// Bid -
func (n *NameAuctionStub) Bid(bidder []byte, newName string, bid *big.Int) error {
	if n.BidCalled != nil {
		return n.BidCalled(bidder, newName, bid)
	}
	return nil
}

// ClaimRefund -
func (n *NameAuctionStub) ClaimRefund(bidder []byte, newName string) (*big.Int, error) {
	if n.ClaimRefundCalled != nil {
		return n.ClaimRefundCalled(bidder, newName)
	}
	return big.NewInt(0), nil
}

// IsInterfaceNil -
func (n *NameAuctionStub) IsInterfaceNil() bool {
	return n == nil
}
