package systemSmartContracts

import (
	"bytes"
	"math/big"

	"github.com/eosnetworkfoundation/vaulta-system-contract/vm"
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
)

// payment is a value argument as received on the wire: an unsigned quantity
// in 1e-4 units plus the ticker it is denominated in.
type payment struct {
	amount *big.Int
	ticker string
}

func parsePayment(amountArg []byte, tickerArg []byte) payment {
	return payment{
		amount: big.NewInt(0).SetBytes(amountArg),
		ticker: string(tickerArg),
	}
}

// checkPayment rejects wrong-denomination input before anything else, then
// zero amounts. Runs before any balance lookup on every value-carrying entry.
func checkPayment(pay payment, wantTicker string) error {
	if pay.ticker != wantTicker {
		return vm.ErrWrongToken
	}
	if pay.amount.Cmp(zero) <= 0 {
		return vm.ErrNonPositiveAmount
	}

	return nil
}

// checkStakePayments validates a net/cpu pair: both legs must be wrapped
// denominated, neither can be negative and at least one must be positive.
func checkStakePayments(netPay payment, cpuPay payment, wantTicker string) error {
	if netPay.ticker != wantTicker || cpuPay.ticker != wantTicker {
		return vm.ErrWrongToken
	}
	total := big.NewInt(0).Add(netPay.amount, cpuPay.amount)
	if total.Cmp(zero) <= 0 {
		return vm.ErrNonPositiveAmount
	}

	return nil
}

// convertIn credits the owner with wrapped token out of the reserve pool row,
// against primary value the proxy already holds. selfInitiated decides the
// storage payer of a freshly created row.
func (p *proxySC) convertIn(owner []byte, amount *big.Int, selfInitiated bool) error {
	err := p.debitRow(p.proxySCAddress, amount)
	if err != nil {
		return err
	}

	payerOnCreate := RowPayerProxy
	if selfInitiated {
		payerOnCreate = RowPayerOwner
	}
	err = p.creditRow(owner, amount, payerOnCreate)
	if err != nil {
		return err
	}

	poolRow, err := p.getBalanceRow(p.proxySCAddress)
	if err != nil {
		return err
	}
	p.eei.AddLogEntry(createLogEntryForSwap(swapInIdentifier, owner, amount, poolRow.Quantity))

	return nil
}

// convertOut debits the owner's wrapped balance back into the reserve pool
// and pays the equal primary amount from the proxy's reserve to the recipient.
func (p *proxySC) convertOut(owner []byte, amount *big.Int, recipient []byte, memo string) error {
	err := p.debitRow(owner, amount)
	if err != nil {
		return err
	}
	err = p.creditRow(p.proxySCAddress, amount, RowPayerOwner)
	if err != nil {
		return err
	}

	err = p.tokenLedger.Transfer(p.proxySCAddress, recipient, amount, memo)
	if err != nil {
		return err
	}

	poolRow, err := p.getBalanceRow(p.proxySCAddress)
	if err != nil {
		return err
	}
	p.eei.AddLogEntry(createLogEntryForSwap(swapOutIdentifier, owner, amount, poolRow.Quantity))

	return nil
}

// convertForForward burns the payer's wrapped amount into the pool without a
// primary transfer: the matching primary value is spent by the external
// contract directly against the proxy's reserve.
func (p *proxySC) convertForForward(payer []byte, amount *big.Int) error {
	err := p.debitRow(payer, amount)
	if err != nil {
		return err
	}

	return p.creditRow(p.proxySCAddress, amount, RowPayerOwner)
}

// transfer is the wrapped-token transfer action. Sending to the proxy itself
// swaps back into primary token; anything else is a plain ledger move.
func (p *proxySC) transfer(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 5, p.gasCost.ProxyOpsCost.Transfer)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	from := args.Arguments[0]
	to := args.Arguments[1]
	pay := parsePayment(args.Arguments[2], args.Arguments[3])
	memo := string(args.Arguments[4])

	err := p.requireAuth(args, from)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	err = checkMemo(args.Arguments[4])
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	err = checkPayment(pay, p.wrappedTicker)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	if bytes.Equal(to, p.proxySCAddress) {
		err = p.convertOut(from, pay.amount, from, memo)
		if err != nil {
			p.eei.AddReturnMessage(err.Error())
			return vmcommon.UserError
		}
		return vmcommon.Ok
	}

	if bytes.Equal(from, to) {
		p.eei.AddReturnMessage("cannot transfer to self")
		return vmcommon.UserError
	}

	err = p.debitRow(from, pay.amount)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	// third-party receipt: a freshly created recipient row is proxy-paid
	err = p.creditRow(to, pay.amount, RowPayerProxy)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}

// swapTo converts and delivers to a destination different from the payer.
// The destination block list gates every beneficial-owner change; same-owner
// swaps bypass it.
func (p *proxySC) swapTo(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 5, p.gasCost.ProxyOpsCost.Swap)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	from := args.Arguments[0]
	to := args.Arguments[1]
	pay := parsePayment(args.Arguments[2], args.Arguments[3])
	memo := string(args.Arguments[4])

	err := p.requireAuth(args, from)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	err = checkMemo(args.Arguments[4])
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	if pay.ticker != p.wrappedTicker && pay.ticker != p.primaryTicker {
		p.eei.AddReturnMessage(vm.ErrWrongToken.Error())
		return vmcommon.UserError
	}
	if pay.amount.Cmp(zero) <= 0 {
		p.eei.AddReturnMessage(vm.ErrNonPositiveAmount.Error())
		return vmcommon.UserError
	}

	sameOwner := bytes.Equal(from, to)
	if !sameOwner && p.isBlocked(to) {
		p.eei.AddReturnMessage(vm.ErrRecipientBlocked.Error())
		return vmcommon.UserError
	}

	if pay.ticker == p.wrappedTicker {
		// wrapped -> primary, delivered externally to the destination
		err = p.convertOut(from, pay.amount, to, memo)
		if err != nil {
			p.eei.AddReturnMessage(err.Error())
			return vmcommon.UserError
		}
		return vmcommon.Ok
	}

	// primary -> wrapped: credit the destination out of the pool first, so a
	// full pool aborts before the payer's primary is pulled. The pool debit
	// stays in the write cache until the caller commits.
	err = p.convertIn(to, pay.amount, sameOwner)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	err = p.tokenLedger.Transfer(from, p.proxySCAddress, pay.amount, memo)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}

// onPrimaryTransfer handles the primary ledger's transfer notification and
// performs the inbound leg of the peg: primary received by the proxy mints
// the payer an equal wrapped credit.
func (p *proxySC) onPrimaryTransfer(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 5, p.gasCost.ProxyOpsCost.Swap)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	if !bytes.Equal(args.CallerAddr, p.primaryLedgerAddress) {
		p.eei.AddReturnMessage(vm.ErrMissingAuthority.Error())
		return vmcommon.UserError
	}

	from := args.Arguments[0]
	to := args.Arguments[1]
	pay := parsePayment(args.Arguments[2], args.Arguments[3])

	if pay.ticker != p.primaryTicker {
		p.eei.AddReturnMessage(vm.ErrWrongToken.Error())
		return vmcommon.UserError
	}

	notForProxy := !bytes.Equal(to, p.proxySCAddress)
	selfNotification := bytes.Equal(from, p.proxySCAddress) || bytes.Equal(from, p.primaryLedgerAddress)
	if notForProxy || selfNotification {
		return vmcommon.Ok
	}

	if pay.amount.Cmp(zero) <= 0 {
		p.eei.AddReturnMessage(vm.ErrNonPositiveAmount.Error())
		return vmcommon.UserError
	}

	// the sender acted on their own behalf: their row is created pre-released
	err := p.convertIn(from, pay.amount, true)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}
