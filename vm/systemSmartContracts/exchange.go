package systemSmartContracts

import (
	"math/big"

	"github.com/eosnetworkfoundation/vaulta-system-contract/vm"
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
)

// Exchange actions split in two groups. Fund-entry actions (deposit,
// donatetorex) and fund-exit actions (withdraw) carry value across the peg
// boundary and convert. Everything else moves value already inside the
// exchange fund and only needs its arguments re-denominated, no balance-row
// movement happens here.

func (p *proxySC) exchangeDeposit(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 3, p.gasCost.ProxyOpsCost.Forward)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	owner := args.Arguments[0]
	pay := parsePayment(args.Arguments[1], args.Arguments[2])

	err := p.requireAuth(args, owner)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	err = checkPayment(pay, p.wrappedTicker)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	err = p.convertForForward(owner, pay.amount)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	err = p.exchange.Deposit(owner, pay.amount)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	p.eei.AddLogEntry(createLogEntryForForward(args.Function, owner, pay.amount))

	return vmcommon.Ok
}

func (p *proxySC) exchangeWithdraw(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 3, p.gasCost.ProxyOpsCost.Forward)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	owner := args.Arguments[0]
	pay := parsePayment(args.Arguments[1], args.Arguments[2])

	err := p.requireAuth(args, owner)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	err = checkPayment(pay, p.wrappedTicker)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	err = p.exchange.Withdraw(owner, pay.amount)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	err = p.convertIn(owner, pay.amount, true)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	p.eei.AddLogEntry(createLogEntryForForward(args.Function, owner, pay.amount))

	return vmcommon.Ok
}

func (p *proxySC) exchangeBuy(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 3, p.gasCost.ProxyOpsCost.Forward)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	owner := args.Arguments[0]
	pay := parsePayment(args.Arguments[1], args.Arguments[2])

	err := p.requireAuth(args, owner)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	err = checkPayment(pay, p.wrappedTicker)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	err = p.exchange.BuyShares(owner, pay.amount)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}

func (p *proxySC) exchangeSell(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 3, p.gasCost.ProxyOpsCost.Forward)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	owner := args.Arguments[0]
	pay := parsePayment(args.Arguments[1], args.Arguments[2])

	err := p.requireAuth(args, owner)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	err = checkPayment(pay, p.exchangeTicker)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	err = p.exchange.SellShares(owner, pay.amount)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}

func (p *proxySC) exchangeMoveToSavings(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	return p.forwardShareMove(args, p.exchange.MoveToSavings)
}

func (p *proxySC) exchangeMoveFromSavings(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	return p.forwardShareMove(args, p.exchange.MoveFromSavings)
}

func (p *proxySC) forwardShareMove(args *vmcommon.ContractCallInput, move func([]byte, *big.Int) error) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 3, p.gasCost.ProxyOpsCost.Forward)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	owner := args.Arguments[0]
	pay := parsePayment(args.Arguments[1], args.Arguments[2])

	err := p.requireAuth(args, owner)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	err = checkPayment(pay, p.exchangeTicker)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	err = move(owner, pay.amount)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}

func (p *proxySC) exchangeRentCPU(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	return p.forwardRent(args, p.exchange.RentCPU)
}

func (p *proxySC) exchangeRentNet(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	return p.forwardRent(args, p.exchange.RentNet)
}

// forwardRent handles the rentcpu/rentnet pair: a rental payment plus an
// optional loan-fund top-up, both drawn from the renter's deposited fund.
func (p *proxySC) forwardRent(args *vmcommon.ContractCallInput, rent func([]byte, []byte, *big.Int, *big.Int) error) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 6, p.gasCost.ProxyOpsCost.Forward)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	from := args.Arguments[0]
	receiver := args.Arguments[1]
	pay := parsePayment(args.Arguments[2], args.Arguments[3])
	fund := parsePayment(args.Arguments[4], args.Arguments[5])

	err := p.requireAuth(args, from)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	err = checkPayment(pay, p.wrappedTicker)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	if fund.ticker != p.wrappedTicker {
		p.eei.AddReturnMessage(vm.ErrWrongToken.Error())
		return vmcommon.UserError
	}

	err = rent(from, receiver, pay.amount, fund.amount)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}

func (p *proxySC) exchangeFundCPULoan(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	return p.forwardLoanOp(args, p.exchange.FundCPULoan)
}

func (p *proxySC) exchangeFundNetLoan(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	return p.forwardLoanOp(args, p.exchange.FundNetLoan)
}

func (p *proxySC) exchangeDefundCPULoan(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	return p.forwardLoanOp(args, p.exchange.DefundCPULoan)
}

func (p *proxySC) exchangeDefundNetLoan(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	return p.forwardLoanOp(args, p.exchange.DefundNetLoan)
}

func (p *proxySC) forwardLoanOp(args *vmcommon.ContractCallInput, op func([]byte, uint64, *big.Int) error) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 4, p.gasCost.ProxyOpsCost.Forward)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	from := args.Arguments[0]
	if !isArgumentUint64(args.Arguments[1]) {
		p.eei.AddReturnMessage("invalid loan number")
		return vmcommon.UserError
	}
	loanNum := bigIntFromArg(args.Arguments[1]).Uint64()
	pay := parsePayment(args.Arguments[2], args.Arguments[3])

	err := p.requireAuth(args, from)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	err = checkPayment(pay, p.wrappedTicker)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	err = op(from, loanNum, pay.amount)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}

func (p *proxySC) exchangeUpdate(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
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

	err = p.exchange.UpdatePosition(owner)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}

// exchangeDonate gifts wrapped value into the exchange return pool. The
// donation leaves the peg like any purchase, never to come back.
func (p *proxySC) exchangeDonate(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 4, p.gasCost.ProxyOpsCost.Forward)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	payer := args.Arguments[0]
	pay := parsePayment(args.Arguments[1], args.Arguments[2])
	memo := string(args.Arguments[3])

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

	err = p.exchange.Donate(payer, pay.amount, memo)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	p.eei.AddLogEntry(createLogEntryForForward(args.Function, payer, pay.amount))

	return vmcommon.Ok
}
