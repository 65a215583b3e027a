package integrationTests

import (
	"math/big"
	"testing"

	"github.com/eosnetworkfoundation/vaulta-system-contract/config"
	"github.com/eosnetworkfoundation/vaulta-system-contract/process"
	"github.com/eosnetworkfoundation/vaulta-system-contract/testscommon"
	"github.com/eosnetworkfoundation/vaulta-system-contract/vm"
	"github.com/eosnetworkfoundation/vaulta-system-contract/vm/systemSmartContracts"
	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/marshal"
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maxSupplyString = "21000000000000"

type proxyContract interface {
	vm.SystemSmartContract
	BalanceOf(owner []byte) *big.Int
	PayerState(owner []byte) string
	IsBlocked(account []byte) bool
	ProxyRAMBytes() *big.Int
}

type proxyTestEnv struct {
	contract proxyContract
	runner   *testscommon.ContractRunner
	ledger   *process.InMemoryTokenLedger
	market   *process.InMemoryResourceMarket
	exchange *process.InMemoryResourceExchange
	auction  *process.InMemoryNameAuction
}

var primaryLedgerAddress = []byte("eosio.token")
var adminAddress = []byte("admin")

func newProxyTestEnv(t *testing.T) *proxyTestEnv {
	eei := systemSmartContracts.NewVMContext()
	eei.SetSCAddress(vm.ProxySCAddress)

	ledger := process.NewInMemoryTokenLedger()
	ledger.SetBalance(vm.ProxySCAddress, big.NewInt(0))
	market := process.NewInMemoryResourceMarket(1)
	exchange := process.NewInMemoryResourceExchange()
	auction := process.NewInMemoryNameAuction()

	contract, err := systemSmartContracts.NewProxySmartContract(systemSmartContracts.ArgsNewProxySmartContract{
		Eei:              eei,
		TokenLedger:      ledger,
		ResourceMarket:   market,
		ResourceExchange: exchange,
		NameAuction:      auction,
		GasCost: vm.GasCost{
			ProxyOpsCost: vm.ProxyOpsCost{
				Transfer: 1,
				Swap:     1,
				Forward:  1,
				RowOp:    1,
				Query:    1,
			},
		},
		Marshalizer: &marshal.JsonMarshalizer{},
		ProxySCConfig: config.ProxySCConfig{
			WrappedTicker:        "A",
			PrimaryTicker:        "EOS",
			ExchangeTicker:       "REX",
			MaxSupply:            maxSupplyString,
			AdminAddress:         string(adminAddress),
			PrimaryLedgerAddress: string(primaryLedgerAddress),
			BalanceRowBytes:      240,
		},
		ProxySCAddress: vm.ProxySCAddress,
	})
	require.NoError(t, err)

	runner := testscommon.NewContractRunner(eei, contract)
	retCode := runner.Run(scenarioCallInput(adminAddress, core.SCDeployInitFunctionName))
	require.Equal(t, vmcommon.Ok, retCode)

	return &proxyTestEnv{
		contract: contract,
		runner:   runner,
		ledger:   ledger,
		market:   market,
		exchange: exchange,
		auction:  auction,
	}
}

func scenarioCallInput(caller []byte, function string, arguments ...[]byte) *vmcommon.ContractCallInput {
	return &vmcommon.ContractCallInput{
		VMInput: vmcommon.VMInput{
			CallerAddr:  caller,
			CallValue:   big.NewInt(0),
			Arguments:   arguments,
			GasProvided: 100000,
		},
		RecipientAddr: vm.ProxySCAddress,
		Function:      function,
	}
}

// depositPrimary moves primary token into the reserve and delivers the
// ledger notification that mints the matching wrapped credit.
func (env *proxyTestEnv) depositPrimary(t *testing.T, account string, amount int64) {
	err := env.ledger.Transfer([]byte(account), vm.ProxySCAddress, big.NewInt(amount), "")
	require.NoError(t, err)

	retCode := env.runner.Run(scenarioCallInput(primaryLedgerAddress, "onPrimaryTransfer",
		[]byte(account), vm.ProxySCAddress, big.NewInt(amount).Bytes(), []byte("EOS"), []byte("")))
	require.Equal(t, vmcommon.Ok, retCode)
}

func (env *proxyTestEnv) poolBalance() *big.Int {
	return env.contract.BalanceOf(vm.ProxySCAddress)
}

// assertSupplyInvariant checks that the pool row plus every circulating row
// still sums to the fixed supply, no matter which actions ran in between.
func (env *proxyTestEnv) assertSupplyInvariant(t *testing.T, accounts ...string) {
	maxSupply, _ := big.NewInt(0).SetString(maxSupplyString, 10)
	total := big.NewInt(0).Set(env.poolBalance())
	for _, account := range accounts {
		total.Add(total, env.contract.BalanceOf([]byte(account)))
	}
	assert.Equal(t, maxSupply, total)
}

func TestProxyScenario_RoundTripPeg(t *testing.T) {
	t.Parallel()

	env := newProxyTestEnv(t)
	env.ledger.SetBalance([]byte("alice"), big.NewInt(1000))

	env.depositPrimary(t, "alice", 400)
	assert.Equal(t, big.NewInt(400), env.contract.BalanceOf([]byte("alice")))
	assert.Equal(t, big.NewInt(600), env.ledger.BalanceOf([]byte("alice")))

	// pool plus circulating always equals the fixed supply
	env.assertSupplyInvariant(t, "alice")

	// wrapped back to primary, delivered to bob
	retCode := env.runner.Run(scenarioCallInput([]byte("alice"), "swapto",
		[]byte("alice"), []byte("bob"), big.NewInt(150).Bytes(), []byte("A"), []byte("")))
	require.Equal(t, vmcommon.Ok, retCode)

	assert.Equal(t, big.NewInt(250), env.contract.BalanceOf([]byte("alice")))
	assert.Equal(t, big.NewInt(150), env.ledger.BalanceOf([]byte("bob")))
	assert.Equal(t, big.NewInt(250), env.ledger.BalanceOf(vm.ProxySCAddress))
	// the reserve backs exactly the circulating wrapped amount
	assert.Equal(t, env.contract.BalanceOf([]byte("alice")), env.ledger.BalanceOf(vm.ProxySCAddress))
	env.assertSupplyInvariant(t, "alice", "bob")
}

func TestProxyScenario_OverdraftIsRejectedUntilFunded(t *testing.T) {
	t.Parallel()

	env := newProxyTestEnv(t)
	env.ledger.SetBalance([]byte("alice"), big.NewInt(100))

	retCode := env.runner.Run(scenarioCallInput([]byte("alice"), "swapto",
		[]byte("alice"), []byte("alice"), big.NewInt(10).Bytes(), []byte("A"), []byte("")))
	assert.Equal(t, vmcommon.UserError, retCode)

	env.depositPrimary(t, "alice", 50)
	retCode = env.runner.Run(scenarioCallInput([]byte("alice"), "swapto",
		[]byte("alice"), []byte("alice"), big.NewInt(10).Bytes(), []byte("A"), []byte("")))
	require.Equal(t, vmcommon.Ok, retCode)

	assert.Equal(t, big.NewInt(40), env.contract.BalanceOf([]byte("alice")))
	assert.Equal(t, big.NewInt(60), env.ledger.BalanceOf([]byte("alice")))
	env.assertSupplyInvariant(t, "alice")
}

func TestProxyScenario_PayerLifecycle(t *testing.T) {
	t.Parallel()

	env := newProxyTestEnv(t)
	env.ledger.SetBalance([]byte("alice"), big.NewInt(500))
	env.depositPrimary(t, "alice", 500)
	assert.Equal(t, "owner-paid", env.contract.PayerState([]byte("alice")))

	// a third-party transfer creates the recipient row on the proxy's storage
	retCode := env.runner.Run(scenarioCallInput([]byte("alice"), "transfer",
		[]byte("alice"), []byte("bob"), big.NewInt(200).Bytes(), []byte("A"), []byte("gift")))
	require.Equal(t, vmcommon.Ok, retCode)
	assert.Equal(t, "proxy-paid", env.contract.PayerState([]byte("bob")))
	assert.Equal(t, big.NewInt(240), env.contract.ProxyRAMBytes())

	// the first self-initiated action releases the row to its owner
	retCode = env.runner.Run(scenarioCallInput([]byte("bob"), "transfer",
		[]byte("bob"), []byte("alice"), big.NewInt(50).Bytes(), []byte("A"), []byte("")))
	require.Equal(t, vmcommon.Ok, retCode)
	assert.Equal(t, "owner-paid", env.contract.PayerState([]byte("bob")))
	assert.Equal(t, big.NewInt(0), env.contract.ProxyRAMBytes())

	// empty the row, then close it
	retCode = env.runner.Run(scenarioCallInput([]byte("bob"), "transfer",
		[]byte("bob"), []byte("alice"), big.NewInt(150).Bytes(), []byte("A"), []byte("")))
	require.Equal(t, vmcommon.Ok, retCode)
	retCode = env.runner.Run(scenarioCallInput([]byte("bob"), "close", []byte("bob")))
	require.Equal(t, vmcommon.Ok, retCode)
	assert.Equal(t, "not-created", env.contract.PayerState([]byte("bob")))
	env.assertSupplyInvariant(t, "alice", "bob")
}

func TestProxyScenario_NameAuctionOutbidAndRefund(t *testing.T) {
	t.Parallel()

	env := newProxyTestEnv(t)
	env.ledger.SetBalance([]byte("alice"), big.NewInt(500))
	env.ledger.SetBalance([]byte("bob"), big.NewInt(500))
	env.depositPrimary(t, "alice", 300)
	env.depositPrimary(t, "bob", 300)

	retCode := env.runner.Run(scenarioCallInput([]byte("alice"), "bidname",
		[]byte("alice"), []byte("prime"), big.NewInt(100).Bytes(), []byte("A")))
	require.Equal(t, vmcommon.Ok, retCode)
	assert.Equal(t, big.NewInt(200), env.contract.BalanceOf([]byte("alice")))

	// a raise below 10% is rejected and the bid debit rolls back
	retCode = env.runner.Run(scenarioCallInput([]byte("bob"), "bidname",
		[]byte("bob"), []byte("prime"), big.NewInt(105).Bytes(), []byte("A")))
	assert.Equal(t, vmcommon.UserError, retCode)
	assert.Equal(t, big.NewInt(300), env.contract.BalanceOf([]byte("bob")))

	retCode = env.runner.Run(scenarioCallInput([]byte("bob"), "bidname",
		[]byte("bob"), []byte("prime"), big.NewInt(120).Bytes(), []byte("A")))
	require.Equal(t, vmcommon.Ok, retCode)
	assert.Equal(t, big.NewInt(120), env.auction.HighBidOn("prime"))

	// the outbid stake comes back as wrapped balance
	retCode = env.runner.Run(scenarioCallInput([]byte("alice"), "bidrefund",
		[]byte("alice"), []byte("prime")))
	require.Equal(t, vmcommon.Ok, retCode)
	assert.Equal(t, big.NewInt(300), env.contract.BalanceOf([]byte("alice")))

	retCode = env.runner.Run(scenarioCallInput([]byte("alice"), "bidrefund",
		[]byte("alice"), []byte("prime")))
	assert.Equal(t, vmcommon.UserError, retCode)
	env.assertSupplyInvariant(t, "alice", "bob")
}

func TestProxyScenario_StakeUnstakeRefund(t *testing.T) {
	t.Parallel()

	env := newProxyTestEnv(t)
	env.ledger.SetBalance([]byte("alice"), big.NewInt(500))
	env.depositPrimary(t, "alice", 300)

	retCode := env.runner.Run(scenarioCallInput([]byte("alice"), "delegatebw",
		[]byte("alice"), []byte("alice"),
		big.NewInt(60).Bytes(), []byte("A"),
		big.NewInt(40).Bytes(), []byte("A"),
		[]byte{0}))
	require.Equal(t, vmcommon.Ok, retCode)
	assert.Equal(t, big.NewInt(200), env.contract.BalanceOf([]byte("alice")))
	assert.Equal(t, big.NewInt(100), env.market.StakeOf([]byte("alice")))

	retCode = env.runner.Run(scenarioCallInput([]byte("alice"), "undelegatebw",
		[]byte("alice"), []byte("alice"),
		big.NewInt(60).Bytes(), []byte("A"),
		big.NewInt(40).Bytes(), []byte("A")))
	require.Equal(t, vmcommon.Ok, retCode)
	// nothing is credited until the refund matures and is claimed
	assert.Equal(t, big.NewInt(200), env.contract.BalanceOf([]byte("alice")))

	retCode = env.runner.Run(scenarioCallInput([]byte("alice"), "refund", []byte("alice")))
	require.Equal(t, vmcommon.Ok, retCode)
	assert.Equal(t, big.NewInt(300), env.contract.BalanceOf([]byte("alice")))
	assert.Equal(t, big.NewInt(0), env.market.StakeOf([]byte("alice")))
	env.assertSupplyInvariant(t, "alice")
}

func TestProxyScenario_RAMBuySell(t *testing.T) {
	t.Parallel()

	env := newProxyTestEnv(t)
	env.ledger.SetBalance([]byte("alice"), big.NewInt(500))
	env.depositPrimary(t, "alice", 300)

	retCode := env.runner.Run(scenarioCallInput([]byte("alice"), "buyrambytes",
		[]byte("alice"), []byte("alice"), big.NewInt(120).Bytes()))
	require.Equal(t, vmcommon.Ok, retCode)
	assert.Equal(t, big.NewInt(180), env.contract.BalanceOf([]byte("alice")))
	assert.Equal(t, int64(120), env.market.RAMBytesOf([]byte("alice")))

	retCode = env.runner.Run(scenarioCallInput([]byte("alice"), "sellram",
		[]byte("alice"), big.NewInt(50).Bytes()))
	require.Equal(t, vmcommon.Ok, retCode)
	assert.Equal(t, big.NewInt(230), env.contract.BalanceOf([]byte("alice")))
	assert.Equal(t, int64(70), env.market.RAMBytesOf([]byte("alice")))

	// selling more than held fails and the peg is untouched
	retCode = env.runner.Run(scenarioCallInput([]byte("alice"), "sellram",
		[]byte("alice"), big.NewInt(500).Bytes()))
	assert.Equal(t, vmcommon.UserError, retCode)
	assert.Equal(t, big.NewInt(230), env.contract.BalanceOf([]byte("alice")))
	env.assertSupplyInvariant(t, "alice")
}

func TestProxyScenario_RexFundLifecycle(t *testing.T) {
	t.Parallel()

	env := newProxyTestEnv(t)
	env.ledger.SetBalance([]byte("alice"), big.NewInt(500))
	env.depositPrimary(t, "alice", 300)

	retCode := env.runner.Run(scenarioCallInput([]byte("alice"), "deposit",
		[]byte("alice"), big.NewInt(200).Bytes(), []byte("A")))
	require.Equal(t, vmcommon.Ok, retCode)
	assert.Equal(t, big.NewInt(100), env.contract.BalanceOf([]byte("alice")))
	assert.Equal(t, big.NewInt(200), env.exchange.FundOf([]byte("alice")))

	retCode = env.runner.Run(scenarioCallInput([]byte("alice"), "buyrex",
		[]byte("alice"), big.NewInt(150).Bytes(), []byte("A")))
	require.Equal(t, vmcommon.Ok, retCode)
	assert.Equal(t, big.NewInt(50), env.exchange.FundOf([]byte("alice")))
	assert.Equal(t, big.NewInt(150), env.exchange.SharesOf([]byte("alice")))
	// buying shares moves value inside the exchange, not on the peg
	assert.Equal(t, big.NewInt(100), env.contract.BalanceOf([]byte("alice")))

	retCode = env.runner.Run(scenarioCallInput([]byte("alice"), "mvtosavings",
		[]byte("alice"), big.NewInt(100).Bytes(), []byte("REX")))
	require.Equal(t, vmcommon.Ok, retCode)
	assert.Equal(t, big.NewInt(100), env.exchange.SavingsOf([]byte("alice")))

	retCode = env.runner.Run(scenarioCallInput([]byte("alice"), "mvfrsavings",
		[]byte("alice"), big.NewInt(100).Bytes(), []byte("REX")))
	require.Equal(t, vmcommon.Ok, retCode)

	retCode = env.runner.Run(scenarioCallInput([]byte("alice"), "sellrex",
		[]byte("alice"), big.NewInt(150).Bytes(), []byte("REX")))
	require.Equal(t, vmcommon.Ok, retCode)
	assert.Equal(t, big.NewInt(200), env.exchange.FundOf([]byte("alice")))

	retCode = env.runner.Run(scenarioCallInput([]byte("alice"), "withdraw",
		[]byte("alice"), big.NewInt(200).Bytes(), []byte("A")))
	require.Equal(t, vmcommon.Ok, retCode)
	assert.Equal(t, big.NewInt(300), env.contract.BalanceOf([]byte("alice")))
	assert.Equal(t, big.NewInt(0), env.exchange.FundOf([]byte("alice")))
	env.assertSupplyInvariant(t, "alice")
}

func TestProxyScenario_PowerUpRefundsUnspent(t *testing.T) {
	t.Parallel()

	env := newProxyTestEnv(t)
	env.ledger.SetBalance([]byte("alice"), big.NewInt(500))
	env.depositPrimary(t, "alice", 300)

	// the market keeps half of the allowed payment as fee
	retCode := env.runner.Run(scenarioCallInput([]byte("alice"), "powerup",
		[]byte("alice"), []byte("alice"),
		big.NewInt(30).Bytes(), big.NewInt(1000).Bytes(), big.NewInt(1000).Bytes(),
		big.NewInt(100).Bytes(), []byte("A")))
	require.Equal(t, vmcommon.Ok, retCode)
	assert.Equal(t, big.NewInt(250), env.contract.BalanceOf([]byte("alice")))
	env.assertSupplyInvariant(t, "alice")
}

func TestProxyScenario_BlockedAccountCannotReceiveSwaps(t *testing.T) {
	t.Parallel()

	env := newProxyTestEnv(t)
	env.ledger.SetBalance([]byte("alice"), big.NewInt(500))
	env.depositPrimary(t, "alice", 300)

	retCode := env.runner.Run(scenarioCallInput(adminAddress, "setblocked",
		[]byte("mallory"), []byte{1}))
	require.Equal(t, vmcommon.Ok, retCode)
	assert.True(t, env.contract.IsBlocked([]byte("mallory")))

	retCode = env.runner.Run(scenarioCallInput([]byte("alice"), "swapto",
		[]byte("alice"), []byte("mallory"), big.NewInt(50).Bytes(), []byte("A"), []byte("")))
	assert.Equal(t, vmcommon.UserError, retCode)
	assert.Equal(t, big.NewInt(300), env.contract.BalanceOf([]byte("alice")))

	retCode = env.runner.Run(scenarioCallInput(adminAddress, "setblocked",
		[]byte("mallory"), []byte{0}))
	require.Equal(t, vmcommon.Ok, retCode)

	retCode = env.runner.Run(scenarioCallInput([]byte("alice"), "swapto",
		[]byte("alice"), []byte("mallory"), big.NewInt(50).Bytes(), []byte("A"), []byte("")))
	assert.Equal(t, vmcommon.Ok, retCode)
	assert.Equal(t, big.NewInt(50), env.ledger.BalanceOf([]byte("mallory")))
	env.assertSupplyInvariant(t, "alice", "mallory")
}
