package usecase

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/mkt/internal/domain"
	"github.com/trebuchet-org/mkt/internal/domain/config"
	"github.com/trebuchet-org/mkt/internal/domain/models"
)

// DeploymentRepository handles persistence of deployment records
type DeploymentRepository interface {
	GetDeployment(ctx context.Context, id string) (*models.Deployment, error)
	GetDeploymentByAddress(ctx context.Context, chainID uint64, address string) (*models.Deployment, error)
	ListDeployments(ctx context.Context, filter domain.DeploymentFilter) ([]*models.Deployment, error)
	SaveDeployment(ctx context.Context, deployment *models.Deployment) error
}

// ContractRepository gives access to compiled contract artifacts
type ContractRepository interface {
	GetContract(ctx context.Context, name string) (*models.Contract, error)
	ListContracts(ctx context.Context) ([]*models.Contract, error)
	GetBuildInfo(ctx context.Context, contract *models.Contract) (*models.BuildInfo, error)
}

// NetworkResolver handles network configuration resolution
type NetworkResolver interface {
	GetNetworks(ctx context.Context) []string
	ResolveNetwork(ctx context.Context, networkName string) (*config.Network, error)
}

// SignerProvider builds signing identities from private keys
type SignerProvider interface {
	FromPrivateKey(key string) (*models.Signer, error)
}

// Prompter asks the user for input in interactive sessions
type Prompter interface {
	PromptPrivateKey(ctx context.Context, label string) (string, error)
	SelectContract(ctx context.Context, label string, options []string) (string, error)
}

// ChainConnector opens connections to a resolved network
type ChainConnector interface {
	Connect(ctx context.Context, network *config.Network) (ChainClient, error)
}

// ChainClient talks to a single chain. Transactions are confirmed one at a time.
type ChainClient interface {
	ChainID(ctx context.Context) (uint64, error)

	// SubmitDeployment broadcasts a contract creation without waiting for it
	SubmitDeployment(ctx context.Context, signer *models.Signer, bytecode, constructorArgs []byte) (*models.PendingTx, error)

	// WaitDeployed blocks until the created contract has code on chain
	WaitDeployed(ctx context.Context, tx *models.PendingTx) (*models.Receipt, error)

	// Transact sends a call and waits for it to be mined.
	// Reverted calls return a *domain.RevertError.
	Transact(ctx context.Context, signer *models.Signer, to common.Address, data []byte, value *big.Int) (*models.Receipt, error)

	// Call executes a read-only call against the latest state
	Call(ctx context.Context, from, to common.Address, data []byte) ([]byte, error)

	Close()
}

// ContractVerifier handles contract verification on block explorers
type ContractVerifier interface {
	Verify(ctx context.Context, req *VerificationRequest) (*models.VerificationInfo, error)
}

// VerificationRequest carries everything an explorer needs to match bytecode to source
type VerificationRequest struct {
	ChainID         uint64
	ExplorerURL     string
	Address         common.Address
	Contract        *models.Contract
	BuildInfo       *models.BuildInfo
	ConstructorArgs []byte
}

// ScenarioLoader loads behavioral test scenarios.
// An empty path selects the built-in marketplace scenario.
type ScenarioLoader interface {
	Load(ctx context.Context, path string) (*domain.Scenario, error)
}

// AnvilManager manages local anvil node instances
type AnvilManager interface {
	Start(ctx context.Context, instance *domain.AnvilInstance) error
	Stop(ctx context.Context, instance *domain.AnvilInstance) error
	GetStatus(ctx context.Context, instance *domain.AnvilInstance) (*domain.AnvilStatus, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata any
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
