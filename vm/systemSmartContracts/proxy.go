package systemSmartContracts

import (
	"bytes"
	"math/big"
	"sync"

	"github.com/eosnetworkfoundation/vaulta-system-contract/config"
	"github.com/eosnetworkfoundation/vaulta-system-contract/vm"
	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/marshal"
	logger "github.com/multiversx/mx-chain-logger-go"
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
)

var log = logger.GetOrCreate("vm/systemsmartcontracts")

const proxyConfigKey = "proxyConfig"
const maxMemoLength = 256
const conversionBase = 10

type proxySC struct {
	eei                  vm.SystemEI
	tokenLedger          vm.TokenLedger
	market               vm.ResourceMarket
	exchange             vm.ResourceExchange
	auction              vm.NameAuction
	gasCost              vm.GasCost
	marshalizer          marshal.Marshalizer
	proxySCAddress       []byte
	adminAddress         []byte
	primaryLedgerAddress []byte
	wrappedTicker        string
	primaryTicker        string
	exchangeTicker       string
	maxSupply            *big.Int
	balanceRowBytes      int64
	mutExecution         sync.RWMutex
}

// ProxyConfig is the stored contract configuration, written once at init
type ProxyConfig struct {
	MaxSupply       *big.Int `json:"maxSupply"`
	AdminAddress    []byte   `json:"adminAddress"`
	BalanceRowBytes int64    `json:"balanceRowBytes"`
}

// ArgsNewProxySmartContract defines the arguments needed for the proxy contract
type ArgsNewProxySmartContract struct {
	Eei              vm.SystemEI
	TokenLedger      vm.TokenLedger
	ResourceMarket   vm.ResourceMarket
	ResourceExchange vm.ResourceExchange
	NameAuction      vm.NameAuction
	GasCost          vm.GasCost
	Marshalizer      marshal.Marshalizer
	ProxySCConfig    config.ProxySCConfig
	ProxySCAddress   []byte
}

// NewProxySmartContract creates the wrapped-token proxy contract, which keeps
// the peg ledger and forwards resource-economy actions to the host contracts
func NewProxySmartContract(args ArgsNewProxySmartContract) (*proxySC, error) {
	if check.IfNil(args.Eei) {
		return nil, vm.ErrNilSystemEnvironmentInterface
	}
	if check.IfNil(args.TokenLedger) {
		return nil, vm.ErrNilTokenLedger
	}
	if check.IfNil(args.ResourceMarket) {
		return nil, vm.ErrNilResourceMarket
	}
	if check.IfNil(args.ResourceExchange) {
		return nil, vm.ErrNilResourceExchange
	}
	if check.IfNil(args.NameAuction) {
		return nil, vm.ErrNilNameAuction
	}
	if check.IfNil(args.Marshalizer) {
		return nil, vm.ErrNilMarshalizer
	}
	if len(args.ProxySCConfig.AdminAddress) == 0 {
		return nil, vm.ErrNilAdminAddress
	}
	if len(args.ProxySCConfig.PrimaryLedgerAddress) == 0 {
		return nil, vm.ErrNilPrimaryLedgerAddress
	}
	if args.ProxySCConfig.BalanceRowBytes <= 0 {
		return nil, vm.ErrInvalidBalanceRowBytes
	}
	if len(args.ProxySCConfig.WrappedTicker) == 0 ||
		len(args.ProxySCConfig.PrimaryTicker) == 0 ||
		len(args.ProxySCConfig.ExchangeTicker) == 0 {
		return nil, vm.ErrInvalidTicker
	}
	if args.ProxySCConfig.WrappedTicker == args.ProxySCConfig.PrimaryTicker {
		return nil, vm.ErrInvalidTicker
	}

	maxSupply, okConvert := big.NewInt(0).SetString(args.ProxySCConfig.MaxSupply, conversionBase)
	if !okConvert || maxSupply.Cmp(zero) <= 0 {
		return nil, vm.ErrInvalidMaxSupply
	}

	p := &proxySC{
		eei:                  args.Eei,
		tokenLedger:          args.TokenLedger,
		market:               args.ResourceMarket,
		exchange:             args.ResourceExchange,
		auction:              args.NameAuction,
		gasCost:              args.GasCost,
		marshalizer:          args.Marshalizer,
		proxySCAddress:       args.ProxySCAddress,
		adminAddress:         []byte(args.ProxySCConfig.AdminAddress),
		primaryLedgerAddress: []byte(args.ProxySCConfig.PrimaryLedgerAddress),
		wrappedTicker:        args.ProxySCConfig.WrappedTicker,
		primaryTicker:        args.ProxySCConfig.PrimaryTicker,
		exchangeTicker:       args.ProxySCConfig.ExchangeTicker,
		maxSupply:            maxSupply,
		balanceRowBytes:      args.ProxySCConfig.BalanceRowBytes,
	}
	log.Debug("proxy: created wrapped token contract",
		"wrapped", p.wrappedTicker, "primary", p.primaryTicker, "maxSupply", maxSupply.String())

	return p, nil
}

// Execute calls one of the functions from the proxy contract and runs the code according to the input
func (p *proxySC) Execute(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	p.mutExecution.RLock()
	defer p.mutExecution.RUnlock()

	err := CheckIfNil(args)
	if err != nil {
		return vmcommon.UserError
	}

	if args.Function == core.SCDeployInitFunctionName {
		return p.init(args)
	}

	if !p.isInitialized() {
		p.eei.AddReturnMessage(vm.ErrNotInitialized.Error())
		return vmcommon.UserError
	}

	switch args.Function {
	case "transfer":
		return p.transfer(args)
	case "swapto":
		return p.swapTo(args)
	case "onPrimaryTransfer":
		return p.onPrimaryTransfer(args)
	case "open":
		return p.open(args)
	case "close":
		return p.close(args)
	case "setblocked":
		return p.setBlockedAction(args)
	case "bidname":
		return p.bidName(args)
	case "bidrefund":
		return p.bidRefund(args)
	case "buyram":
		return p.buyRAM(args)
	case "buyramself":
		return p.buyRAMSelf(args)
	case "buyramburn":
		return p.buyRAMBurn(args)
	case "buyrambytes":
		return p.buyRAMBytes(args)
	case "ramburn":
		return p.ramBurn(args)
	case "ramtransfer":
		return p.ramTransfer(args)
	case "sellram":
		return p.sellRAM(args)
	case "delegatebw":
		return p.delegateBandwidth(args)
	case "undelegatebw":
		return p.undelegateBandwidth(args)
	case "refund":
		return p.refund(args)
	case "powerup":
		return p.powerUp(args)
	case "deposit":
		return p.exchangeDeposit(args)
	case "withdraw":
		return p.exchangeWithdraw(args)
	case "buyrex":
		return p.exchangeBuy(args)
	case "sellrex":
		return p.exchangeSell(args)
	case "mvtosavings":
		return p.exchangeMoveToSavings(args)
	case "mvfrsavings":
		return p.exchangeMoveFromSavings(args)
	case "rentcpu":
		return p.exchangeRentCPU(args)
	case "rentnet":
		return p.exchangeRentNet(args)
	case "fundcpuloan":
		return p.exchangeFundCPULoan(args)
	case "fundnetloan":
		return p.exchangeFundNetLoan(args)
	case "defcpuloan":
		return p.exchangeDefundCPULoan(args)
	case "defnetloan":
		return p.exchangeDefundNetLoan(args)
	case "updaterex":
		return p.exchangeUpdate(args)
	case "donatetorex":
		return p.exchangeDonate(args)
	case "getBalance":
		return p.getBalance(args)
	case "getPayerState":
		return p.getPayerState(args)
	case "getBlocked":
		return p.getBlocked(args)
	case "getProxyRamBytes":
		return p.getProxyRamBytes(args)
	case "getContractConfig":
		return p.getContractConfig(args)
	}

	p.eei.AddReturnMessage("invalid method to call")
	return vmcommon.FunctionNotFound
}

// init stores the contract config and opens the reserve pool row holding the
// entire maximum supply. Everything in circulation is swapped out of this row.
func (p *proxySC) init(_ *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	if p.isInitialized() {
		p.eei.AddReturnMessage(vm.ErrAlreadyInitialized.Error())
		return vmcommon.UserError
	}

	scConfig := &ProxyConfig{
		MaxSupply:       p.maxSupply,
		AdminAddress:    p.adminAddress,
		BalanceRowBytes: p.balanceRowBytes,
	}
	err := p.saveProxyConfig(scConfig)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	poolRow := &BalanceRow{
		Quantity: big.NewInt(0).Set(p.maxSupply),
		Payer:    RowPayerOwner,
	}
	err = p.saveBalanceRow(p.proxySCAddress, poolRow)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}

func (p *proxySC) isInitialized() bool {
	return len(p.eei.GetStorage([]byte(proxyConfigKey))) > 0
}

func (p *proxySC) saveProxyConfig(scConfig *ProxyConfig) error {
	marshaledData, err := p.marshalizer.Marshal(scConfig)
	if err != nil {
		return err
	}

	p.eei.SetStorage([]byte(proxyConfigKey), marshaledData)
	return nil
}

func (p *proxySC) getProxyConfig() (*ProxyConfig, error) {
	marshaledData := p.eei.GetStorage([]byte(proxyConfigKey))
	if len(marshaledData) == 0 {
		return nil, vm.ErrNotInitialized
	}

	scConfig := &ProxyConfig{}
	err := p.marshalizer.Unmarshal(scConfig, marshaledData)
	return scConfig, err
}

// checkBasicInput runs the validations common to all externally callable
// functions: zero call value, exact argument count, gas charge.
func (p *proxySC) checkBasicInput(args *vmcommon.ContractCallInput, numArgs int, gasToUse uint64) vmcommon.ReturnCode {
	if args.CallValue.Cmp(zero) != 0 {
		p.eei.AddReturnMessage("callValue must be 0")
		return vmcommon.OutOfFunds
	}
	if len(args.Arguments) != numArgs {
		p.eei.AddReturnMessage("invalid number of arguments")
		return vmcommon.FunctionWrongSignature
	}
	err := p.eei.UseGas(gasToUse)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.OutOfGas
	}

	return vmcommon.Ok
}

// requireAuth enforces signer-equals-principal: the transaction caller must
// be the paying party named inside the request. Checked before anything else.
func (p *proxySC) requireAuth(args *vmcommon.ContractCallInput, account []byte) error {
	if !bytes.Equal(args.CallerAddr, account) {
		return vm.ErrMissingAuthority
	}

	return nil
}

func checkMemo(memoArg []byte) error {
	if len(memoArg) > maxMemoLength {
		return vm.ErrMemoTooLong
	}

	return nil
}

func (p *proxySC) open(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 1, p.gasCost.ProxyOpsCost.RowOp)
	if returnCode != vmcommon.Ok {
		return returnCode
	}
	owner := args.Arguments[0]
	err := p.requireAuth(args, owner)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	_, err = p.getBalanceRow(owner)
	if err == nil {
		return vmcommon.Ok
	}

	// opened by the owner directly: pre-released, never passes through proxy-paid
	row := &BalanceRow{
		Quantity: big.NewInt(0),
		Payer:    RowPayerOwner,
	}
	err = p.saveBalanceRow(owner, row)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	return vmcommon.Ok
}

func (p *proxySC) close(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 1, p.gasCost.ProxyOpsCost.RowOp)
	if returnCode != vmcommon.Ok {
		return returnCode
	}
	owner := args.Arguments[0]
	err := p.requireAuth(args, owner)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	row, err := p.getBalanceRow(owner)
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}
	if row.Quantity.Cmp(zero) != 0 {
		p.eei.AddReturnMessage(vm.ErrBalanceNotZero.Error())
		return vmcommon.UserError
	}

	if row.Payer == RowPayerProxy {
		ramBytes := p.addProxyRAMBytes(-p.balanceRowBytes)
		p.eei.AddLogEntry(createLogEntryForRowPayer(rowReleasedIdentifier, owner, p.balanceRowBytes, ramBytes))
	}
	p.deleteBalanceRow(owner)

	return vmcommon.Ok
}

// setBlockedAction toggles the swap-to block list. Only the listed account
// itself or the proxy's administrative account may flip the entry.
func (p *proxySC) setBlockedAction(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 2, p.gasCost.ProxyOpsCost.RowOp)
	if returnCode != vmcommon.Ok {
		return returnCode
	}
	account := args.Arguments[0]

	isSelf := bytes.Equal(args.CallerAddr, account)
	isAdmin := bytes.Equal(args.CallerAddr, p.adminAddress)
	if !isSelf && !isAdmin {
		p.eei.AddReturnMessage(vm.ErrMissingAuthority.Error())
		return vmcommon.UserError
	}

	blocked := big.NewInt(0).SetBytes(args.Arguments[1]).Cmp(zero) != 0
	p.setBlocked(account, blocked)
	log.Trace("proxy: block list changed", "account", string(account), "blocked", blocked)

	return vmcommon.Ok
}

func (p *proxySC) getBalance(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 1, p.gasCost.ProxyOpsCost.Query)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	row, err := p.getBalanceRow(args.Arguments[0])
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	p.eei.Finish(row.Quantity.Bytes())
	return vmcommon.Ok
}

// getPayerState reports the tri-state storage-payer signal for any account.
// A missing row is a valid answer, not an error.
func (p *proxySC) getPayerState(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 1, p.gasCost.ProxyOpsCost.Query)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	p.eei.Finish([]byte(p.payerStateOf(args.Arguments[0])))
	return vmcommon.Ok
}

func (p *proxySC) payerStateOf(owner []byte) string {
	row, err := p.getBalanceRow(owner)
	if err != nil {
		return PayerStateNotCreated
	}
	if row.Payer == RowPayerProxy {
		return PayerStateProxyPaid
	}

	return PayerStateOwnerPaid
}

func (p *proxySC) getBlocked(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 1, p.gasCost.ProxyOpsCost.Query)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	if p.isBlocked(args.Arguments[0]) {
		p.eei.Finish([]byte("true"))
	} else {
		p.eei.Finish([]byte("false"))
	}

	return vmcommon.Ok
}

func (p *proxySC) getProxyRamBytes(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 0, p.gasCost.ProxyOpsCost.Query)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	p.eei.Finish(p.getProxyRAMBytes().Bytes())
	return vmcommon.Ok
}

func (p *proxySC) getContractConfig(args *vmcommon.ContractCallInput) vmcommon.ReturnCode {
	returnCode := p.checkBasicInput(args, 0, p.gasCost.ProxyOpsCost.Query)
	if returnCode != vmcommon.Ok {
		return returnCode
	}

	scConfig, err := p.getProxyConfig()
	if err != nil {
		p.eei.AddReturnMessage(err.Error())
		return vmcommon.UserError
	}

	p.eei.Finish([]byte(p.wrappedTicker))
	p.eei.Finish([]byte(p.primaryTicker))
	p.eei.Finish(scConfig.MaxSupply.Bytes())
	p.eei.Finish(scConfig.AdminAddress)
	p.eei.Finish(big.NewInt(scConfig.BalanceRowBytes).Bytes())

	return vmcommon.Ok
}

// BalanceOf returns the wrapped-token quantity held by the owner, zero if no row exists
func (p *proxySC) BalanceOf(owner []byte) *big.Int {
	p.mutExecution.RLock()
	defer p.mutExecution.RUnlock()

	row, err := p.getBalanceRow(owner)
	if err != nil {
		return big.NewInt(0)
	}

	return big.NewInt(0).Set(row.Quantity)
}

// PayerState returns the tri-state storage-payer signal for the owner
func (p *proxySC) PayerState(owner []byte) string {
	p.mutExecution.RLock()
	defer p.mutExecution.RUnlock()

	return p.payerStateOf(owner)
}

// IsBlocked returns true if the account refuses cross-denomination transfers
func (p *proxySC) IsBlocked(account []byte) bool {
	p.mutExecution.RLock()
	defer p.mutExecution.RUnlock()

	return p.isBlocked(account)
}

// ProxyRAMBytes returns the total storage bytes the proxy currently pays for
func (p *proxySC) ProxyRAMBytes() *big.Int {
	p.mutExecution.RLock()
	defer p.mutExecution.RUnlock()

	return p.getProxyRAMBytes()
}

// SetNewGasCost is called whenever a gas cost was changed
func (p *proxySC) SetNewGasCost(gasCost vm.GasCost) {
	p.mutExecution.Lock()
	p.gasCost = gasCost
	p.mutExecution.Unlock()
}

// CanUseContract returns true if contract can be used
func (p *proxySC) CanUseContract() bool {
	return true
}

// IsInterfaceNil returns true if underlying object is nil
func (p *proxySC) IsInterfaceNil() bool {
	return p == nil
}
