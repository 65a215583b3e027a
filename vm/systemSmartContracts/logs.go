package systemSmartContracts

import (
	"math/big"

	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
)

const (
	swapInIdentifier      = "swapIn"
	swapOutIdentifier     = "swapOut"
	forwardIdentifier     = "forward"
	rowClaimedIdentifier  = "rowClaimed"
	rowReleasedIdentifier = "rowReleased"
)

func createLogEntryForSwap(
	identifier string,
	owner []byte,
	amount *big.Int,
	poolAfter *big.Int,
) *vmcommon.LogEntry {
	return &vmcommon.LogEntry{
		Identifier: []byte(identifier),
		Address:    owner,
		Topics: [][]byte{
			amount.Bytes(), poolAfter.Bytes(),
		},
	}
}

func createLogEntryForForward(
	function string,
	actor []byte,
	amount *big.Int,
) *vmcommon.LogEntry {
	return &vmcommon.LogEntry{
		Identifier: []byte(forwardIdentifier),
		Address:    actor,
		Topics: [][]byte{
			[]byte(function), amount.Bytes(),
		},
	}
}

func createLogEntryForRowPayer(
	identifier string,
	owner []byte,
	rowBytes int64,
	proxyRAMBytesAfter *big.Int,
) *vmcommon.LogEntry {
	return &vmcommon.LogEntry{
		Identifier: []byte(identifier),
		Address:    owner,
		Topics: [][]byte{
			big.NewInt(rowBytes).Bytes(), proxyRAMBytesAfter.Bytes(),
		},
	}
}
