package adapters

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/wire"
	"github.com/mattn/go-isatty"
	"github.com/trebuchet-org/mkt/internal/adapters/anvil"
	"github.com/trebuchet-org/mkt/internal/adapters/blockchain"
	internalconfig "github.com/trebuchet-org/mkt/internal/adapters/config"
	"github.com/trebuchet-org/mkt/internal/adapters/interactive"
	"github.com/trebuchet-org/mkt/internal/adapters/progress"
	"github.com/trebuchet-org/mkt/internal/adapters/repository/contracts"
	"github.com/trebuchet-org/mkt/internal/adapters/repository/deployments"
	"github.com/trebuchet-org/mkt/internal/adapters/scenario"
	"github.com/trebuchet-org/mkt/internal/adapters/verification"
	"github.com/trebuchet-org/mkt/internal/config"
	domainconfig "github.com/trebuchet-org/mkt/internal/domain/config"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

// ProvideEtherscanVerifier builds the verifier from mkt.toml and the environment
func ProvideEtherscanVerifier(cfg *domainconfig.RuntimeConfig, log *slog.Logger) *verification.EtherscanVerifier {
	apiURL := cfg.Project.Etherscan.APIURL
	if apiURL == "" {
		apiURL = domainconfig.DefaultEtherscanAPI
	}
	return verification.NewEtherscanVerifier(apiURL, config.EtherscanAPIKey(cfg.Project), log)
}

// ProvideProgressSink shows spinners on a terminal and stays quiet otherwise.
// In JSON mode human output goes to stderr so stdout stays parseable.
func ProvideProgressSink(cfg *domainconfig.RuntimeConfig) *progress.SpinnerSink {
	var out io.Writer = os.Stdout
	if cfg.JSON {
		out = os.Stderr
	}
	tty := !cfg.NonInteractive && !cfg.JSON && isTerminal(os.Stdout)
	return progress.NewSpinnerSink(out, tty)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// RepositorySet provides file-backed repositories
var RepositorySet = wire.NewSet(
	deployments.NewFileRepositoryFromConfig,
	wire.Bind(new(usecase.DeploymentRepository), new(*deployments.FileRepository)),

	contracts.NewRepository,
	wire.Bind(new(usecase.ContractRepository), new(*contracts.Repository)),

	scenario.NewFileLoader,
	wire.Bind(new(usecase.ScenarioLoader), new(*scenario.FileLoader)),
)

// BlockchainSet provides chain access and signing
var BlockchainSet = wire.NewSet(
	blockchain.NewConnector,
	wire.Bind(new(usecase.ChainConnector), new(*blockchain.Connector)),

	blockchain.NewKeySigner,
	wire.Bind(new(usecase.SignerProvider), new(*blockchain.KeySigner)),
)

// VerificationSet provides block explorer verification
var VerificationSet = wire.NewSet(
	ProvideEtherscanVerifier,
	wire.Bind(new(usecase.ContractVerifier), new(*verification.EtherscanVerifier)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewPrompter,
	wire.Bind(new(usecase.Prompter), new(*interactive.Prompter)),

	ProvideProgressSink,
	wire.Bind(new(usecase.ProgressSink), new(*progress.SpinnerSink)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	internalconfig.NewNetworkResolverAdapter,
	wire.Bind(new(usecase.NetworkResolver), new(*internalconfig.NetworkResolverAdapter)),
)

// AnvilSet provides local node management
var AnvilSet = wire.NewSet(
	anvil.NewManager,
	wire.Bind(new(usecase.AnvilManager), new(*anvil.Manager)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	RepositorySet,
	BlockchainSet,
	VerificationSet,
	InteractiveSet,
	ConfigSet,
	AnvilSet,
)
