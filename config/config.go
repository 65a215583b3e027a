package config

// Config defines the configuration of the wrapped-token proxy node
type Config struct {
	ProxySC   ProxySCConfig
	GasCosts  GasCostsConfig
	WebServer WebServerConfig
}

// WebServerConfig defines the query api settings
type WebServerConfig struct {
	ListenAddress string
}

// ProxySCConfig defines the set of constants needed to initialize the proxy system smart contract
type ProxySCConfig struct {
	WrappedTicker        string
	PrimaryTicker        string
	ExchangeTicker       string
	MaxSupply            string
	AdminAddress         string
	PrimaryLedgerAddress string
	BalanceRowBytes      int64
}

// GasCostsConfig defines the gas charged per proxy operation class
type GasCostsConfig struct {
	Transfer uint64
	Swap     uint64
	Forward  uint64
	RowOp    uint64
	Query    uint64
}
