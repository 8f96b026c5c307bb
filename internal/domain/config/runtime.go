package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Context settings
	NetworkName string // Requested network, "hardhat" when unset

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// Resolved configurations
	Project *ProjectConfig
}

// Network represents a resolved network
type Network struct {
	Name        string   `json:"name"`
	ChainID     uint64   `json:"chainId"`
	RPCURL      string   `json:"rpcUrl"`
	ExplorerURL string   `json:"explorerUrl,omitempty"`
	Accounts    []string `json:"-"`
	Simulated   bool     `json:"simulated,omitempty"`
}
