package errors

import (
	"errors"
)

// ErrNilFacadeHandler signals that a nil facade handler has been provided
var ErrNilFacadeHandler = errors.New("nil facade handler")

// ErrEmptyAddress signals an empty address was provided
var ErrEmptyAddress = errors.New("address is empty")

// ErrGetBalance signals an error in getting the address balance
var ErrGetBalance = errors.New("get balance error")

// ErrGetPayerState signals an error in getting the storage payer state
var ErrGetPayerState = errors.New("get payer state error")

// ErrGetBlocked signals an error in getting the blocked flag
var ErrGetBlocked = errors.New("get blocked flag error")

// ErrGetProxyRAMBytes signals an error in getting the proxy ram counter
var ErrGetProxyRAMBytes = errors.New("get proxy ram bytes error")
