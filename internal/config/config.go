package config

import (
	"os"

	"bombpotpoker-server/internal/util"
	"bombpotpoker-server/pkg/table"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the poker server
type Config struct {
	loaded bool

	Addr string `yaml:"addr" envconfig:"addr"`
	Log  struct {
		Level             string `yaml:"level" envconfig:"level"`
		Format            string `yaml:"format" envconfig:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`

	// Table holds the table's initial settings; they remain mutable at
	// runtime through the updateSettings command
	Table table.Settings `yaml:"table"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is not an error;
// the defaults plus environment variables apply.
func Load() error {
	config = Config{
		Addr:  ":3001",
		Table: table.DefaultSettings(),
	}

	configFile := util.Getenv("POKER_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("poker", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
