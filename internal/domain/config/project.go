package config

// ProjectConfig represents mkt.toml
type ProjectConfig struct {
	Solidity  SolidityConfig           `toml:"solidity"`
	Networks  map[string]NetworkConfig `toml:"networks"`
	Etherscan EtherscanConfig          `toml:"etherscan"`
	Paths     PathsConfig              `toml:"paths"`
}

// SolidityConfig holds the compiler settings the artifacts were built with
type SolidityConfig struct {
	Version   string          `toml:"version"`
	Optimizer OptimizerConfig `toml:"optimizer"`
}

// OptimizerConfig mirrors solc optimizer settings
type OptimizerConfig struct {
	Enabled bool `toml:"enabled"`
	Runs    int  `toml:"runs"`
}

// NetworkConfig is a named network entry
type NetworkConfig struct {
	URL      string   `toml:"url"`
	Accounts []string `toml:"accounts,omitempty"` //nolint:gosec // private keys or ${VAR} references
	ChainID  uint64   `toml:"chain_id,omitempty"`
	Explorer string   `toml:"explorer,omitempty"`
}

// EtherscanConfig holds the verification service settings
type EtherscanConfig struct {
	APIKey string `toml:"api_key,omitempty"`
	APIURL string `toml:"api_url,omitempty"`
}

// PathsConfig locates compiled artifacts
type PathsConfig struct {
	Artifacts string `toml:"artifacts,omitempty"`
}

const (
	DefaultSolcVersion    = "0.8.1"
	DefaultOptimizerRuns  = 200
	DefaultArtifactsPath  = "artifacts"
	DefaultEtherscanAPI   = "https://api.etherscan.io/v2/api"
	DefaultNetwork        = "hardhat"
	SimulatedNetwork      = "simulated"
	LocalChainID          = 31337
	SimulatedChainID      = 1337
	LocalRPCURL           = "http://127.0.0.1:8545"
	ProjectConfigFileName = "mkt.toml"
)

// DevAccounts are the well-known keys funded by hardhat node and anvil
// ("test test test test test test test test test test test junk").
var DevAccounts = []string{
	"ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
	"59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d",
	"5de4111afa1a4b94908f83103eb1f1706367c2e68ca870fc3fb9a804cdab365a",
	"7c852118294e51e653712a81e05800f419141751be58f605c371e15141b007a6",
	"47e179ec197488593b187f80a00eb0da91f1b9d0b13f8733639f19c30a34926a",
}

// DefaultProjectConfig returns the settings used when mkt.toml is absent
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		Solidity: SolidityConfig{
			Version: DefaultSolcVersion,
			Optimizer: OptimizerConfig{
				Enabled: true,
				Runs:    DefaultOptimizerRuns,
			},
		},
		Networks: BuiltinNetworks(),
		Etherscan: EtherscanConfig{
			APIURL: DefaultEtherscanAPI,
		},
		Paths: PathsConfig{
			Artifacts: DefaultArtifactsPath,
		},
	}
}

// BuiltinNetworks returns the networks every project has
func BuiltinNetworks() map[string]NetworkConfig {
	local := NetworkConfig{
		URL:      LocalRPCURL,
		Accounts: append([]string(nil), DevAccounts...),
		ChainID:  LocalChainID,
	}
	return map[string]NetworkConfig{
		"hardhat":   local,
		"localhost": local,
		SimulatedNetwork: {
			Accounts: append([]string(nil), DevAccounts...),
			ChainID:  SimulatedChainID,
		},
	}
}
