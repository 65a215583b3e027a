package systemSmartContracts

import (
	"math/big"

	"github.com/eosnetworkfoundation/vaulta-system-contract/vm"
)

const balanceKeyPrefix = "balance"
const blockedKeyPrefix = "blocked"
const proxyRAMBytesKey = "proxyRamBytes"

// RowPayer identifies which party currently pays for a balance row's storage
type RowPayer int32

const (
	// RowPayerProxy - the proxy absorbs the row's storage cost
	RowPayerProxy RowPayer = iota
	// RowPayerOwner - the owner pays; terminal state, never reverts
	RowPayerOwner
)

// Payer state names reported by the query surface
const (
	PayerStateNotCreated = "not-created"
	PayerStateProxyPaid  = "proxy-paid"
	PayerStateOwnerPaid  = "owner-paid"
)

// BalanceRow is the wrapped-token ledger entry of one owner
type BalanceRow struct {
	Quantity *big.Int `json:"quantity"`
	Payer    RowPayer `json:"payer"`
}

func (p *proxySC) balanceKey(owner []byte) []byte {
	return append([]byte(balanceKeyPrefix), owner...)
}

func (p *proxySC) blockedKey(account []byte) []byte {
	return append([]byte(blockedKeyPrefix), account...)
}

func (p *proxySC) getBalanceRow(owner []byte) (*BalanceRow, error) {
	marshaledData := p.eei.GetStorage(p.balanceKey(owner))
	if len(marshaledData) == 0 {
		return nil, vm.ErrNoBalance
	}

	row := &BalanceRow{}
	err := p.marshalizer.Unmarshal(row, marshaledData)
	if err != nil {
		return nil, err
	}

	return row, nil
}

func (p *proxySC) saveBalanceRow(owner []byte, row *BalanceRow) error {
	marshaledData, err := p.marshalizer.Marshal(row)
	if err != nil {
		return err
	}

	p.eei.SetStorage(p.balanceKey(owner), marshaledData)
	return nil
}

func (p *proxySC) deleteBalanceRow(owner []byte) {
	p.eei.SetStorage(p.balanceKey(owner), nil)
}

// creditRow adds quantity to the owner's row, creating it if absent. The
// payer of a freshly created row is decided here and only here: rows created
// by the owner's own doing start owner-paid ("pre-released"), rows created by
// third-party receipts start proxy-paid and charge the proxy's RAM counter.
func (p *proxySC) creditRow(owner []byte, amount *big.Int, payerOnCreate RowPayer) error {
	row, err := p.getBalanceRow(owner)
	if err == nil {
		row.Quantity.Add(row.Quantity, amount)
		return p.saveBalanceRow(owner, row)
	}

	row = &BalanceRow{
		Quantity: big.NewInt(0).Set(amount),
		Payer:    payerOnCreate,
	}
	if payerOnCreate == RowPayerProxy {
		ramBytes := p.addProxyRAMBytes(p.balanceRowBytes)
		p.eei.AddLogEntry(createLogEntryForRowPayer(rowClaimedIdentifier, owner, p.balanceRowBytes, ramBytes))
	}

	return p.saveBalanceRow(owner, row)
}

// debitRow removes quantity from the owner's row. The owner's first outbound
// action on a proxy-paid row releases the proxy's storage claim, exactly once.
func (p *proxySC) debitRow(owner []byte, amount *big.Int) error {
	row, err := p.getBalanceRow(owner)
	if err != nil {
		return err
	}
	if row.Quantity.Cmp(amount) < 0 {
		return vm.ErrOverdrawnBalance
	}

	row.Quantity.Sub(row.Quantity, amount)
	if row.Payer == RowPayerProxy {
		row.Payer = RowPayerOwner
		ramBytes := p.addProxyRAMBytes(-p.balanceRowBytes)
		p.eei.AddLogEntry(createLogEntryForRowPayer(rowReleasedIdentifier, owner, p.balanceRowBytes, ramBytes))
	}

	return p.saveBalanceRow(owner, row)
}

func (p *proxySC) getProxyRAMBytes() *big.Int {
	return big.NewInt(0).SetBytes(p.eei.GetStorage([]byte(proxyRAMBytesKey)))
}

func (p *proxySC) addProxyRAMBytes(delta int64) *big.Int {
	ramBytes := p.getProxyRAMBytes()
	ramBytes.Add(ramBytes, big.NewInt(delta))
	if ramBytes.Cmp(zero) < 0 {
		ramBytes.SetInt64(0)
	}
	p.eei.SetStorage([]byte(proxyRAMBytesKey), ramBytes.Bytes())

	return ramBytes
}

func (p *proxySC) isBlocked(account []byte) bool {
	return len(p.eei.GetStorage(p.blockedKey(account))) > 0
}

func (p *proxySC) setBlocked(account []byte, blocked bool) {
	if blocked {
		p.eei.SetStorage(p.blockedKey(account), []byte{1})
		return
	}

	p.eei.SetStorage(p.blockedKey(account), nil)
}
