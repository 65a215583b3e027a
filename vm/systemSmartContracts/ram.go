package systemSmartContracts

import (
	"github.com/eosnetworkfoundation/vaulta-system-contract/vm"
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
)

// buyRAM forwards a RAM purchase: the payer's wrapped amount is swapped into
// the reserve and the market buys RAM for the receiver on the proxy's tab.
func (p *proxySC) buyRAM(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 4, p.gasCost.ProxyOpsCost.Forward)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	payer := args.Arguments[0]
	receiver := args.Arguments[1]
	pay := parsePayment(args.Arguments[2], args.Arguments[3])

	err := p.requireAuth(args, payer)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	err = checkPayment(pay, p.wrappedTicker)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	err = p.convertForForward(payer, pay.amount)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	err = p.market.BuyRAM(receiver, pay.amount)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	p.eei.AddLogEntry(createLogEntryForForward(args.Function, payer, pay.amount))

	return vmcommon.Ok
}

func (p *proxySC) buyRAMSelf(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 3, p.gasCost.ProxyOpsCost.Forward)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	payer := args.Arguments[0]
	pay := parsePayment(args.Arguments[1], args.Arguments[2])

	err := p.requireAuth(args, payer)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	err = checkPayment(pay, p.wrappedTicker)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	err = p.convertForForward(payer, pay.amount)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	err = p.market.BuyRAM(payer, pay.amount)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	p.eei.AddLogEntry(createLogEntryForForward(args.Function, payer, pay.amount))

	return vmcommon.Ok
}

func (p *proxySC) buyRAMBurn(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 4, p.gasCost.ProxyOpsCost.Forward)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	payer := args.Arguments[0]
	pay := parsePayment(args.Arguments[1], args.Arguments[2])

	err := p.requireAuth(args, payer)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	err = checkMemo(args.Arguments[3])
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	err = checkPayment(pay, p.wrappedTicker)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	err = p.convertForForward(payer, pay.amount)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	err = p.market.BuyRAMBurn(payer, pay.amount)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	p.eei.AddLogEntry(createLogEntryForForward(args.Function, payer, pay.amount))

	return vmcommon.Ok
}

// buyRAMBytes buys an exact byte amount: the cost is quoted by the market
// first, then swapped and forwarded like any other purchase.
func (p *proxySC) buyRAMBytes(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 3, p.gasCost.ProxyOpsCost.Forward)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	payer := args.Arguments[0]
	receiver := args.Arguments[1]

	err := p.requireAuth(args, payer)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	if !isArgumentUint64(args.Arguments[2]) {
		p.eei.AddReturnMessage("invalid byte count")
		return vmcommon.UserError
	}
	numBytes := uint32(bigIntFromArg(args.Arguments[2]).Uint64())

	cost, err := p.market.RAMCostWithFee(numBytes)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	if cost.Cmp(zero) <= 0 {
		p.eei.AddReturnMessage(vm.ErrNonPositiveAmount.Error())
		return vmcommon.UserError
	}

	err = p.convertForForward(payer, cost)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	err = p.market.BuyRAMBytes(receiver, numBytes)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	p.eei.AddLogEntry(createLogEntryForForward(args.Function, payer, cost))

	return vmcommon.Ok
}

// sellRAM forwards a RAM sale; the primary proceeds land in the reserve and
// come back to the seller as wrapped token.
func (p *proxySC) sellRAM(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 2, p.gasCost.ProxyOpsCost.Forward)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	account := args.Arguments[0]
	err := p.requireAuth(args, account)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	if !isArgumentUint64(args.Arguments[1]) {
		p.eei.AddReturnMessage("invalid byte count")
		return vmcommon.UserError
	}
	numBytes := int64(bigIntFromArg(args.Arguments[1]).Uint64())

	proceeds, err := p.market.SellRAM(account, numBytes)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	err = p.convertIn(account, proceeds, true)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	p.eei.AddLogEntry(createLogEntryForForward(args.Function, account, proceeds))

	return vmcommon.Ok
}

// ramBurn and ramTransfer are byte-denominated: no conversion is involved,
// the calls are only re-issued under the proxy's authority.
func (p *proxySC) ramBurn(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 3, p.gasCost.ProxyOpsCost.Forward)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	owner := args.Arguments[0]
	err := p.requireAuth(args, owner)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	err = checkMemo(args.Arguments[2])
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	if !isArgumentUint64(args.Arguments[1]) {
		p.eei.AddReturnMessage("invalid byte count")
		return vmcommon.UserError
	}
	numBytes := int64(bigIntFromArg(args.Arguments[1]).Uint64())
	err = p.market.BurnRAM(owner, numBytes)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}

func (p *proxySC) ramTransfer(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 4, p.gasCost.ProxyOpsCost.Forward)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	from := args.Arguments[0]
	to := args.Arguments[1]
	err := p.requireAuth(args, from)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	err = checkMemo(args.Arguments[3])
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	if !isArgumentUint64(args.Arguments[2]) {
		p.eei.AddReturnMessage("invalid byte count")
		return vmcommon.UserError
	}
	numBytes := int64(bigIntFromArg(args.Arguments[2]).Uint64())
	err = p.market.TransferRAM(from, to, numBytes)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}
