package systemSmartContracts

import (
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
)

// bidName swaps the bid amount out of the peg and places it on the premium
// name auction under the proxy's authority.
func (p *proxySC) bidName(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 4, p.gasCost.ProxyOpsCost.Forward)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	bidder := args.Arguments[0]
	newName := string(args.Arguments[1])
	pay := parsePayment(args.Arguments[2], args.Arguments[3])

	err := p.requireAuth(args, bidder)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	if len(newName) == 0 {
		p.eei.AddReturnMessage("empty name")
		return vmcommon.UserError
	}
	err = checkPayment(pay, p.wrappedTicker)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	err = p.convertForForward(bidder, pay.amount)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	err = p.auction.Bid(bidder, newName, pay.amount)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	p.eei.AddLogEntry(createLogEntryForForward(args.Function, bidder, pay.amount))

	return vmcommon.Ok
}

// bidRefund claims an outbid bidder's refund and converts it back into
// wrapped balance.
func (p *proxySC) bidRefund(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 2, p.gasCost.ProxyOpsCost.Forward)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	bidder := args.Arguments[0]
	newName := string(args.Arguments[1])

	err := p.requireAuth(args, bidder)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	refund, err := p.auction.ClaimRefund(bidder, newName)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	err = p.convertIn(bidder, refund, true)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	p.eei.AddLogEntry(createLogEntryForForward(args.Function, bidder, refund))

	return vmcommon.Ok
}
