package systemSmartContracts

import (
	"math/big"

	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
)

func (p *proxySC) delegateBandwidth(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 7, p.gasCost.ProxyOpsCost.Forward)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	from := args.Arguments[0]
	receiver := args.Arguments[1]
	netPay := parsePayment(args.Arguments[2], args.Arguments[3])
	cpuPay := parsePayment(args.Arguments[4], args.Arguments[5])
	transferFlag := bigIntFromArg(args.Arguments[6]).Sign() != 0

	err := p.requireAuth(args, from)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	err = checkStakePayments(netPay, cpuPay, p.wrappedTicker)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	total := big.NewInt(0).Add(netPay.amount, cpuPay.amount)
	err = p.convertForForward(from, total)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	err = p.market.DelegateBandwidth(from, receiver, netPay.amount, cpuPay.amount, transferFlag)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	p.eei.AddLogEntry(createLogEntryForForward(args.Function, from, total))

	return vmcommon.Ok
}

func (p *proxySC) undelegateBandwidth(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 6, p.gasCost.ProxyOpsCost.Forward)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	from := args.Arguments[0]
	receiver := args.Arguments[1]
	netPay := parsePayment(args.Arguments[2], args.Arguments[3])
	cpuPay := parsePayment(args.Arguments[4], args.Arguments[5])

	err := p.requireAuth(args, from)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	err = checkStakePayments(netPay, cpuPay, p.wrappedTicker)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	err = p.market.UndelegateBandwidth(from, receiver, netPay.amount, cpuPay.amount)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}

// refund claims the matured unstake refund for owner and converts the primary
// proceeds into wrapped balance.
func (p *proxySC) refund(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 1, p.gasCost.ProxyOpsCost.Forward)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	owner := args.Arguments[0]
	err := p.requireAuth(args, owner)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	proceeds, err := p.market.ClaimRefund(owner)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	err = p.convertIn(owner, proceeds, true)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	p.eei.AddLogEntry(createLogEntryForForward(args.Function, owner, proceeds))

	return vmcommon.Ok
}

// powerUp swaps the maximum payment up front, forwards the purchase and
// credits back whatever the market did not charge.
func (p *proxySC) powerUp(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 7, p.gasCost.ProxyOpsCost.Forward)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	payer := args.Arguments[0]
	receiver := args.Arguments[1]
	maxPay := parsePayment(args.Arguments[5], args.Arguments[6])

	err := p.requireAuth(args, payer)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	if !isArgumentUint64(args.Arguments[2]) || !isArgumentUint64(args.Arguments[3]) || !isArgumentUint64(args.Arguments[4]) {
		p.eei.AddReturnMessage("invalid powerup parameters")
		return vmcommon.UserError
	}
	err = checkPayment(maxPay, p.wrappedTicker)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	numDays := uint32(bigIntFromArg(args.Arguments[2]).Uint64())
	netFrac := bigIntFromArg(args.Arguments[3]).Uint64()
	cpuFrac := bigIntFromArg(args.Arguments[4]).Uint64()

	err = p.convertForForward(payer, maxPay.amount)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	fee, err := p.market.PowerUp(payer, receiver, numDays, netFrac, cpuFrac, maxPay.amount)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	unspent := big.NewInt(0).Sub(maxPay.amount, fee)
	if unspent.Cmp(zero) > 0 {
		err = p.convertIn(payer, unspent, true)
		if err != nil {
			p.eei.AddReturnMessage(err.Error())
			return vmcommon.UserError
		}
	}
	p.eei.AddLogEntry(createLogEntryForForward(args.Function, payer, fee))

	return vmcommon.Ok
}
