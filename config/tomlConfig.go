package config

import (
	"os"
	"path/filepath"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pelletier/go-toml"
)

var log = logger.GetOrCreate("config")

// LoadTomlFile opens and decodes a toml file into the destination structure
func LoadTomlFile(dest interface{}, relativePath string) error {
	path, err := filepath.Abs(relativePath)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	defer func() {
		errClose := f.Close()
		if errClose != nil {
			log.Warn("cannot close config file", "error", errClose.Error())
		}
	}()

	return toml.NewDecoder(f).Decode(dest)
}

// LoadConfig returns a Config by reading the config file provided
func LoadConfig(filePath string) (*Config, error) {
	cfg := &Config{}
	err := LoadTomlFile(cfg, filePath)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
