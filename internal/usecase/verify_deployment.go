package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/samber/lo"
	"github.com/trebuchet-org/mkt/internal/domain"
	"github.com/trebuchet-org/mkt/internal/domain/config"
	"github.com/trebuchet-org/mkt/internal/domain/models"
)

// VerifyDeploymentParams contains parameters for verifying a deployed contract
type VerifyDeploymentParams struct {
	Address      string
	ContractName string   // taken from the registry when empty
	Args         []string // constructor arguments; taken from the registry when empty
	Network      string
}

// VerifyDeploymentResult contains the result of verification
type VerifyDeploymentResult struct {
	Address      common.Address
	ContractName string
	Network      *config.Network
	Verification *models.VerificationInfo
	Deployment   *models.Deployment // nil when the address is not in the registry
}

// VerifyDeployment handles contract verification on block explorers
type VerifyDeployment struct {
	config     *config.RuntimeConfig
	networks   NetworkResolver
	contracts  ContractRepository
	repository DeploymentRepository
	verifier   ContractVerifier
	progress   ProgressSink
}

// NewVerifyDeployment creates a new verify deployment use case
func NewVerifyDeployment(
	cfg *config.RuntimeConfig,
	networks NetworkResolver,
	contracts ContractRepository,
	repository DeploymentRepository,
	verifier ContractVerifier,
	progress ProgressSink,
) *VerifyDeployment {
	return &VerifyDeployment{
		config:     cfg,
		networks:   networks,
		contracts:  contracts,
		repository: repository,
		verifier:   verifier,
		progress:   progress,
	}
}

// Run executes the use case
func (uc *VerifyDeployment) Run(ctx context.Context, params VerifyDeploymentParams) (*VerifyDeploymentResult, error) {
	if !common.IsHexAddress(params.Address) {
		return nil, fmt.Errorf("%q: %w", params.Address, domain.ErrInvalidAddress)
	}
	address := common.HexToAddress(params.Address)

	networkName := lo.Ternary(params.Network != "", params.Network, uc.config.NetworkName)
	network, err := uc.networks.ResolveNetwork(ctx, networkName)
	if err != nil {
		return nil, err
	}
	if isLocalChain(network) {
		return nil, fmt.Errorf("network %s (chain %d) is a local chain and has no explorer", network.Name, network.ChainID)
	}

	deployment, err := uc.repository.GetDeploymentByAddress(ctx, network.ChainID, address.Hex())
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}

	contractName := params.ContractName
	if contractName == "" && deployment != nil {
		contractName = deployment.Artifact.Path
	}
	if contractName == "" {
		return nil, fmt.Errorf("address %s is not in the registry, pass --contract", address.Hex())
	}

	contract, err := uc.contracts.GetContract(ctx, contractName)
	if err != nil {
		return nil, err
	}
	buildInfo, err := uc.contracts.GetBuildInfo(ctx, contract)
	if err != nil {
		return nil, fmt.Errorf("verification needs the compiler input of %s: %w", contract.Name, err)
	}

	constructorArgs, err := uc.constructorArgs(contract, params.Args, deployment)
	if err != nil {
		return nil, err
	}

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "verifying",
		Message: fmt.Sprintf("Verifying %s at %s", contract.Name, address.Hex()),
		Spinner: true,
	})
	info, err := uc.verifier.Verify(ctx, &VerificationRequest{
		ChainID:         network.ChainID,
		ExplorerURL:     network.ExplorerURL,
		Address:         address,
		Contract:        contract,
		BuildInfo:       buildInfo,
		ConstructorArgs: constructorArgs,
	})
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "completed"})

	result := &VerifyDeploymentResult{
		Address:      address,
		ContractName: contract.Name,
		Network:      network,
		Verification: info,
		Deployment:   deployment,
	}
	if info != nil && deployment != nil {
		deployment.Verification = *info
		deployment.UpdatedAt = time.Now().UTC()
		if saveErr := uc.repository.SaveDeployment(ctx, deployment); saveErr != nil {
			uc.progress.Error(fmt.Sprintf("Could not update registry: %v", saveErr))
		}
	}
	if err != nil {
		return result, err
	}
	return result, nil
}

func (uc *VerifyDeployment) constructorArgs(contract *models.Contract, args []string, deployment *models.Deployment) ([]byte, error) {
	if len(args) == 0 && deployment != nil && deployment.Transaction.ConstructorArgs != "" {
		return hexutil.Decode(deployment.Transaction.ConstructorArgs)
	}
	parsed, err := contract.ParseABI()
	if err != nil {
		return nil, err
	}
	values, err := ParseArgs(parsed.Constructor.Inputs, StringArgs(args), nil)
	if err != nil {
		return nil, fmt.Errorf("constructor of %s: %w", contract.Name, err)
	}
	return parsed.Pack("", values...)
}

func isLocalChain(network *config.Network) bool {
	return network.Simulated || network.ChainID == config.LocalChainID || network.ChainID == config.SimulatedChainID
}
