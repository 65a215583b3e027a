package main

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"runtime"

	apiGin "github.com/eosnetworkfoundation/vaulta-system-contract/api/gin"
	"github.com/eosnetworkfoundation/vaulta-system-contract/config"
	"github.com/eosnetworkfoundation/vaulta-system-contract/facade"
	"github.com/eosnetworkfoundation/vaulta-system-contract/process"
	"github.com/eosnetworkfoundation/vaulta-system-contract/vm"
	"github.com/eosnetworkfoundation/vaulta-system-contract/vm/systemSmartContracts"
	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/marshal"
	logger "github.com/multiversx/mx-chain-logger-go"
	vmcommon "github.com/multiversx/mx-chain-vm-common-go"
	"github.com/urfave/cli"
)

const (
	defaultListenAddress = ":8080"
	defaultRAMPriceBytes = 1
	initGasBudget        = 1000000
)

// proxyContractHandler is what the node needs from the deployed contract:
// the execution entry point plus the read side served over the api
type proxyContractHandler interface {
	vm.SystemSmartContract
	facade.ProxyContractHandler
}

var proxyNodeHelpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}
   {{if len .Authors}}
AUTHOR:
   {{range .Authors}}{{ . }}{{end}}
   {{end}}{{if .Commands}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
VERSION:
   {{.Version}}
   {{end}}
`

func main() {
	log := logger.GetOrCreate("main")

	app := cli.NewApp()
	cli.AppHelpTemplate = proxyNodeHelpTemplate
	app.Name = "Wrapped Token Proxy Node CLI App"
	app.Version = fmt.Sprintf("%s/%s-%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	app.Usage = "This is the entry point for starting a wrapped-token proxy node with its query api"
	app.Flags = getFlags()

	app.Action = func(c *cli.Context) error {
		return startProxyNode(c, log)
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func startProxyNode(c *cli.Context, log logger.Logger) error {
	logLevelValue := c.GlobalString(logLevel.Name)
	err := logger.SetLogLevel(logLevelValue)
	if err != nil {
		return err
	}

	configurationPath := c.GlobalString(configurationFile.Name)
	cfg, err := config.LoadConfig(configurationPath)
	if err != nil {
		return err
	}
	log.Info("loaded configuration", "path", configurationPath)

	proxyContract, eei, err := createProxyContract(cfg)
	if err != nil {
		return err
	}

	err = deployProxyContract(proxyContract, eei, cfg)
	if err != nil {
		return err
	}
	log.Info("proxy contract deployed",
		"wrapped", cfg.ProxySC.WrappedTicker,
		"primary", cfg.ProxySC.PrimaryTicker,
		"maxSupply", cfg.ProxySC.MaxSupply)

	listenAddress := cfg.WebServer.ListenAddress
	restApiValue := c.GlobalString(restApiInterface.Name)
	if restApiValue != "" {
		listenAddress = restApiValue
	}
	if listenAddress == "" {
		listenAddress = defaultListenAddress
	}

	return apiGin.Start(listenAddress, proxyContract)
}

func createProxyContract(cfg *config.Config) (proxyContractHandler, vm.ContextHandler, error) {
	eei := systemSmartContracts.NewVMContext()
	eei.SetSCAddress(vm.ProxySCAddress)

	ledger := process.NewInMemoryTokenLedger()
	ledger.SetBalance(vm.ProxySCAddress, big.NewInt(0))

	args := systemSmartContracts.ArgsNewProxySmartContract{
		Eei:              eei,
		TokenLedger:      ledger,
		ResourceMarket:   process.NewInMemoryResourceMarket(defaultRAMPriceBytes),
		ResourceExchange: process.NewInMemoryResourceExchange(),
		NameAuction:      process.NewInMemoryNameAuction(),
		GasCost: vm.GasCost{
			ProxyOpsCost: vm.ProxyOpsCost{
				Transfer: cfg.GasCosts.Transfer,
				Swap:     cfg.GasCosts.Swap,
				Forward:  cfg.GasCosts.Forward,
				RowOp:    cfg.GasCosts.RowOp,
				Query:    cfg.GasCosts.Query,
			},
		},
		Marshalizer:    &marshal.JsonMarshalizer{},
		ProxySCConfig:  cfg.ProxySC,
		ProxySCAddress: vm.ProxySCAddress,
	}

	proxyContract, err := systemSmartContracts.NewProxySmartContract(args)
	if err != nil {
		return nil, nil, err
	}

	return proxyContract, eei, nil
}

func deployProxyContract(contract proxyContractHandler, eei vm.ContextHandler, cfg *config.Config) error {
	eei.CleanCache()
	eei.SetGasProvided(initGasBudget)

	returnCode := contract.Execute(&vmcommon.ContractCallInput{
		VMInput: vmcommon.VMInput{
			CallerAddr: []byte(cfg.ProxySC.AdminAddress),
			CallValue:  big.NewInt(0),
		},
		RecipientAddr: vm.ProxySCAddress,
		Function:      core.SCDeployInitFunctionName,
	})
	if returnCode != vmcommon.Ok {
		return errors.New(eei.GetReturnMessage())
	}
	eei.CommitCache()

	return nil
}
