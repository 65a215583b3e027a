package vm

import "errors"

// ErrNilSystemEnvironmentInterface signals that a nil system environment interface was provided
var ErrNilSystemEnvironmentInterface = errors.New("system environment interface is nil")

// ErrNilMarshalizer signals that an operation has been attempted to or with a nil Marshalizer implementation
var ErrNilMarshalizer = errors.New("nil Marshalizer")

// ErrNilTokenLedger signals that a nil primary token ledger was provided
var ErrNilTokenLedger = errors.New("nil primary token ledger")

// ErrNilResourceMarket signals that a nil resource market collaborator was provided
var ErrNilResourceMarket = errors.New("nil resource market")

// ErrNilResourceExchange signals that a nil resource exchange collaborator was provided
var ErrNilResourceExchange = errors.New("nil resource exchange")

// ErrNilNameAuction signals that a nil name auction collaborator was provided
var ErrNilNameAuction = errors.New("nil name auction")

// ErrNilAdminAddress signals that the admin address is empty
var ErrNilAdminAddress = errors.New("nil admin address")

// ErrNilPrimaryLedgerAddress signals that the primary ledger address is empty
var ErrNilPrimaryLedgerAddress = errors.New("nil primary ledger address")

// ErrInvalidMaxSupply signals that the configured maximum supply cannot be parsed or is not positive
var ErrInvalidMaxSupply = errors.New("invalid maximum supply")

// ErrInvalidTicker signals that a configured token ticker is empty or malformed
var ErrInvalidTicker = errors.New("invalid token ticker")

// ErrInvalidBalanceRowBytes signals that the configured storage cost of a balance row is not positive
var ErrInvalidBalanceRowBytes = errors.New("invalid balance row bytes")

// ErrInputArgsIsNil signals that input arguments are nil for system smart contract
var ErrInputArgsIsNil = errors.New("input system smart contract arguments are nil")

// ErrInputCallValueIsNil signals that input call value is nil for system smart contract
var ErrInputCallValueIsNil = errors.New("input value for system smart contract is nil")

// ErrInputFunctionIsNil signals that input function is nil for system smart contract
var ErrInputFunctionIsNil = errors.New("input function for system smart contract is nil")

// ErrInputCallerAddrIsNil signals that input caller address is nil for system smart contract
var ErrInputCallerAddrIsNil = errors.New("input caller address for system smart contract is nil")

// ErrInputRecipientAddrIsNil signals that input recipient address for system smart contract is nil
var ErrInputRecipientAddrIsNil = errors.New("input recipient address for system smart contract is nil")

// ErrNotEnoughGas signals that there is not enough gas for execution
var ErrNotEnoughGas = errors.New("not enough gas")

// ErrWrongToken signals that a value argument was supplied in the non-expected denomination
var ErrWrongToken = errors.New("wrong token used")

// ErrNonPositiveAmount signals that a swap was attempted with a zero amount
var ErrNonPositiveAmount = errors.New("swap amount must be greater than 0")

// ErrNoBalance signals that no balance row exists for the given owner
var ErrNoBalance = errors.New("no balance object found")

// ErrOverdrawnBalance signals that the balance row holds less than the requested quantity
var ErrOverdrawnBalance = errors.New("overdrawn balance")

// ErrMissingAuthority signals that the caller does not match the paying party named in the request
var ErrMissingAuthority = errors.New("missing authority")

// ErrRecipientBlocked signals that the destination account refused cross-denomination transfers
var ErrRecipientBlocked = errors.New("recipient is blocked")

// ErrBalanceNotZero signals that a balance row cannot be closed while it still holds value
var ErrBalanceNotZero = errors.New("cannot close because the balance is not zero")

// ErrMemoTooLong signals that the memo exceeds the maximum accepted length
var ErrMemoTooLong = errors.New("memo has more than 256 bytes")

// ErrAlreadyInitialized signals that init was called on an already initialized contract
var ErrAlreadyInitialized = errors.New("contract already initialized")

// ErrNotInitialized signals that the contract was used before init
var ErrNotInitialized = errors.New("contract not initialized")

// ErrNilProxyContract signals that a nil proxy contract was provided
var ErrNilProxyContract = errors.New("nil proxy contract")
