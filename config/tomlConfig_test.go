package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	testString := `
[ProxySC]
    WrappedTicker = "A"
    PrimaryTicker = "EOS"
    ExchangeTicker = "REX"
    MaxSupply = "21000000000000"
    AdminAddress = "admin"
    PrimaryLedgerAddress = "eosio.token"
    BalanceRowBytes = 240

[GasCosts]
    Transfer = 100
    Swap = 150
    Forward = 200
    RowOp = 50
    Query = 10

[WebServer]
    ListenAddress = ":8080"
`

	filePath := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(filePath, []byte(testString), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(filePath)
	require.NoError(t, err)

	assert.Equal(t, "A", cfg.ProxySC.WrappedTicker)
	assert.Equal(t, "EOS", cfg.ProxySC.PrimaryTicker)
	assert.Equal(t, "REX", cfg.ProxySC.ExchangeTicker)
	assert.Equal(t, "21000000000000", cfg.ProxySC.MaxSupply)
	assert.Equal(t, "admin", cfg.ProxySC.AdminAddress)
	assert.Equal(t, "eosio.token", cfg.ProxySC.PrimaryLedgerAddress)
	assert.Equal(t, int64(240), cfg.ProxySC.BalanceRowBytes)
	assert.Equal(t, uint64(150), cfg.GasCosts.Swap)
	assert.Equal(t, ":8080", cfg.WebServer.ListenAddress)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Nil(t, cfg)
	assert.Error(t, err)
}
