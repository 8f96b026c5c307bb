package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/mkt/internal/domain/config"
)

// loadEnvFiles loads .env and .env.local from the project root.
// Variables already set in the process environment win.
func loadEnvFiles(projectRoot string) {
	for _, name := range []string{".env", ".env.local"} {
		envFile := filepath.Join(projectRoot, name)
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			slog.Warn("failed to load env file", "file", envFile, "error", err)
		}
	}
}

// LoadProjectConfig reads mkt.toml from the project root and applies defaults.
// A missing file yields the default configuration.
func LoadProjectConfig(projectRoot string) (*config.ProjectConfig, error) {
	loadEnvFiles(projectRoot)

	cfg := config.DefaultProjectConfig()

	path := filepath.Join(projectRoot, config.ProjectConfigFileName)
	var raw config.ProjectConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", config.ProjectConfigFileName, err)
	}

	for _, key := range meta.Undecoded() {
		slog.Warn("unknown key in project config", "key", key.String())
	}

	if raw.Solidity.Version != "" {
		cfg.Solidity.Version = raw.Solidity.Version
	}
	if meta.IsDefined("solidity", "optimizer", "enabled") {
		cfg.Solidity.Optimizer.Enabled = raw.Solidity.Optimizer.Enabled
	}
	if raw.Solidity.Optimizer.Runs != 0 {
		cfg.Solidity.Optimizer.Runs = raw.Solidity.Optimizer.Runs
	}

	for name, network := range raw.Networks {
		if name == config.SimulatedNetwork {
			return nil, fmt.Errorf("network %q is reserved for the in-process chain", name)
		}
		network.URL = os.ExpandEnv(network.URL)
		network.Explorer = os.ExpandEnv(network.Explorer)
		accounts := make([]string, 0, len(network.Accounts))
		for _, account := range network.Accounts {
			if expanded := strings.TrimSpace(os.ExpandEnv(account)); expanded != "" {
				accounts = append(accounts, expanded)
			}
		}
		network.Accounts = accounts
		cfg.Networks[name] = network
	}

	if key := os.ExpandEnv(raw.Etherscan.APIKey); key != "" {
		cfg.Etherscan.APIKey = key
	}
	if url := os.ExpandEnv(raw.Etherscan.APIURL); url != "" {
		cfg.Etherscan.APIURL = url
	}
	if raw.Paths.Artifacts != "" {
		cfg.Paths.Artifacts = raw.Paths.Artifacts
	}

	if err := validateProjectConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateProjectConfig(cfg *config.ProjectConfig) error {
	if cfg.Solidity.Optimizer.Runs < 0 {
		return fmt.Errorf("solidity.optimizer.runs must not be negative")
	}
	for name, network := range cfg.Networks {
		if name == config.SimulatedNetwork {
			continue
		}
		if network.URL == "" {
			return fmt.Errorf("network %q has no url", name)
		}
	}
	return nil
}

// EtherscanAPIKey returns the verification API key, falling back to ETHERSCAN_API_KEY
func EtherscanAPIKey(cfg *config.ProjectConfig) string {
	if cfg.Etherscan.APIKey != "" {
		return cfg.Etherscan.APIKey
	}
	return os.Getenv("ETHERSCAN_API_KEY")
}
