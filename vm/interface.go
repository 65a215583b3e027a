package vm

import (
	"math/big"

	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
)

// SystemSmartContract interface defines the function a system smart contract should have
type SystemSmartContract interface {
	Execute(args *vmcommon.ContractCallInput) vmcommon.ReturnCode
	CanUseContract() bool
	IsInterfaceNil() bool
}

// SystemEI defines the environment interface a system smart contract can use
type SystemEI interface {
	AddReturnMessage(msg string)
	GetReturnMessage() string
	Finish(value []byte)
	UseGas(gasToConsume uint64) error
	SetStorage(key []byte, value []byte)
	GetStorage(key []byte) []byte
	AddLogEntry(entry *vmcommon.LogEntry)
	CleanCache()
	CreateVMOutput() *vmcommon.VMOutput
	SetSCAddress(addr []byte)
	IsInterfaceNil() bool
}

// ContextHandler is the complete environment interface, including the
// execution lifecycle hooks used by the invoking layer
type ContextHandler interface {
	SystemEI

	SetGasProvided(gas uint64)
	CommitCache()
}

// TokenLedger is the primary-token ledger collaborator. The proxy holds its
// conversion reserve there and moves primary value through it on every swap.
type TokenLedger interface {
	Transfer(from []byte, to []byte, amount *big.Int, memo string) error
	BalanceOf(account []byte) *big.Int
	IsInterfaceNil() bool
}

// ResourceMarket is the resource-market collaborator: RAM bonding-curve
// market, staked-bandwidth delegation and power-up leasing. All calls are
// authenticated as the proxy account; amounts are primary-token quantities.
type ResourceMarket interface {
	BuyRAM(receiver []byte, payment *big.Int) error
	BuyRAMBurn(payer []byte, payment *big.Int) error
	BuyRAMBytes(receiver []byte, numBytes uint32) error
	RAMCostWithFee(numBytes uint32) (*big.Int, error)
	SellRAM(account []byte, numBytes int64) (*big.Int, error)
	BurnRAM(owner []byte, numBytes int64) error
	TransferRAM(from []byte, to []byte, numBytes int64) error
	DelegateBandwidth(from []byte, receiver []byte, netAmount *big.Int, cpuAmount *big.Int, transfer bool) error
	UndelegateBandwidth(from []byte, receiver []byte, netAmount *big.Int, cpuAmount *big.Int) error
	ClaimRefund(owner []byte) (*big.Int, error)
	PowerUp(payer []byte, receiver []byte, numDays uint32, netFrac uint64, cpuFrac uint64, maxPayment *big.Int) (*big.Int, error)
	IsInterfaceNil() bool
}

// ResourceExchange is the staking-pool collaborator. Positions, loans and
// maturities are owned and lifecycled externally; the proxy only forwards.
type ResourceExchange interface {
	Deposit(owner []byte, amount *big.Int) error
	Withdraw(owner []byte, amount *big.Int) error
	BuyShares(from []byte, amount *big.Int) error
	SellShares(from []byte, shares *big.Int) error
	MoveToSavings(owner []byte, shares *big.Int) error
	MoveFromSavings(owner []byte, shares *big.Int) error
	RentCPU(from []byte, receiver []byte, payment *big.Int, fund *big.Int) error
	RentNet(from []byte, receiver []byte, payment *big.Int, fund *big.Int) error
	FundCPULoan(from []byte, loanNum uint64, payment *big.Int) error
	FundNetLoan(from []byte, loanNum uint64, payment *big.Int) error
	DefundCPULoan(from []byte, loanNum uint64, amount *big.Int) error
	DefundNetLoan(from []byte, loanNum uint64, amount *big.Int) error
	UpdatePosition(owner []byte) error
	Donate(payer []byte, amount *big.Int, memo string) error
	IsInterfaceNil() bool
}

// NameAuction is the premium-name auction collaborator. Bids are expressed in
// primary token on the external side; refunds surface when a bid is outdone.
type NameAuction interface {
	Bid(bidder []byte, newName string, bid *big.Int) error
	ClaimRefund(bidder []byte, newName string) (*big.Int, error)
	IsInterfaceNil() bool
}
