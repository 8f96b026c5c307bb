package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/samber/lo"
	"github.com/trebuchet-org/mkt/internal/domain"
	"github.com/trebuchet-org/mkt/internal/domain/config"
	"github.com/trebuchet-org/mkt/internal/domain/models"
)

// DeployContractParams contains parameters for deploying a contract
type DeployContractParams struct {
	ContractName string
	PrivateKey   string
	Args         []string
	Network      string // defaults to the runtime network
}

// DeployContractResult contains the result of a deployment
type DeployContractResult struct {
	Deployment *models.Deployment
	Network    *config.Network
	Recorded   bool
}

// DeployContract deploys a compiled contract and waits for it to be confirmed.
// Every run creates a new instance.
type DeployContract struct {
	config     *config.RuntimeConfig
	networks   NetworkResolver
	connector  ChainConnector
	signers    SignerProvider
	prompter   Prompter
	contracts  ContractRepository
	repository DeploymentRepository
	progress   ProgressSink
	log        *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	networks NetworkResolver,
	connector ChainConnector,
	signers SignerProvider,
	prompter Prompter,
	contracts ContractRepository,
	repository DeploymentRepository,
	progress ProgressSink,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		config:     cfg,
		networks:   networks,
		connector:  connector,
		signers:    signers,
		prompter:   prompter,
		contracts:  contracts,
		repository: repository,
		progress:   progress,
		log:        log.With("component", "deploy"),
	}
}

// Run executes the use case
func (uc *DeployContract) Run(ctx context.Context, params DeployContractParams) (*DeployContractResult, error) {
	networkName := lo.Ternary(params.Network != "", params.Network, uc.config.NetworkName)
	network, err := uc.networks.ResolveNetwork(ctx, networkName)
	if err != nil {
		return nil, err
	}

	contract, err := uc.resolveContract(ctx, params.ContractName)
	if err != nil {
		return nil, err
	}
	parsed, err := contract.ParseABI()
	if err != nil {
		return nil, err
	}
	args, err := ParseArgs(parsed.Constructor.Inputs, StringArgs(params.Args), nil)
	if err != nil {
		return nil, fmt.Errorf("constructor of %s: %w", contract.Name, err)
	}
	encodedArgs, err := parsed.Pack("", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode constructor arguments: %w", err)
	}
	bytecode, err := contract.CreationCode()
	if err != nil {
		return nil, err
	}

	key, err := uc.privateKey(ctx, params.PrivateKey, network)
	if err != nil {
		return nil, err
	}
	signer, err := uc.signers.FromPrivateKey(key)
	if err != nil {
		return nil, err
	}

	client, err := uc.connector.Connect(ctx, network)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", network.Name, err)
	}
	defer client.Close()

	tx, err := client.SubmitDeployment(ctx, signer, bytecode, encodedArgs)
	if err != nil {
		return nil, fmt.Errorf("failed to deploy %s: %w", contract.Name, err)
	}
	uc.progress.Info(fmt.Sprintf("Waiting for %s deployment... %s", contract.Name, tx.ContractAddress.Hex()))

	uc.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "confirming",
		Message: fmt.Sprintf("Waiting for confirmation of %s", tx.Hash.Hex()),
		Spinner: true,
	})
	receipt, err := client.WaitDeployed(ctx, tx)
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: "confirmed"})
	if err != nil {
		return nil, fmt.Errorf("deployment of %s was not confirmed: %w", contract.Name, err)
	}

	now := time.Now().UTC()
	deployment := &models.Deployment{
		ID:           models.MakeDeploymentID(network.ChainID, contract.Name, tx.ContractAddress.Hex()),
		ChainID:      network.ChainID,
		Network:      network.Name,
		ContractName: contract.Name,
		Address:      tx.ContractAddress.Hex(),
		Deployer:     signer.Address.Hex(),
		Transaction: models.DeploymentTx{
			Hash:        tx.Hash.Hex(),
			BlockNumber: receipt.BlockNumber,
			GasUsed:     receipt.GasUsed,
		},
		Artifact: models.ArtifactInfo{
			Path:            contract.FullyQualifiedName(),
			CompilerVersion: uc.compilerVersion(contract),
			BytecodeHash:    crypto.Keccak256Hash(bytecode).Hex(),
		},
		Verification: models.VerificationInfo{Status: models.VerificationStatusUnverified},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if len(encodedArgs) > 0 {
		deployment.Transaction.ConstructorArgs = hexutil.Encode(encodedArgs)
	}

	result := &DeployContractResult{Deployment: deployment, Network: network}
	if network.Simulated {
		// the chain disappears with the process
		return result, nil
	}
	if err := uc.repository.SaveDeployment(ctx, deployment); err != nil {
		uc.progress.Error(fmt.Sprintf("Deployment succeeded but could not be recorded: %v", err))
		return result, nil
	}
	result.Recorded = true
	return result, nil
}

// privateKey picks the deploying key: explicit flag, then an interactive prompt,
// then the network's first configured account.
func (uc *DeployContract) privateKey(ctx context.Context, explicit string, network *config.Network) (string, error) {
	if key := strings.TrimSpace(explicit); key != "" {
		return key, nil
	}
	if !uc.config.NonInteractive && uc.prompter != nil {
		key, err := uc.prompter.PromptPrivateKey(ctx, fmt.Sprintf("Private key for %s (empty for default account)", network.Name))
		if err != nil {
			return "", err
		}
		if key = strings.TrimSpace(key); key != "" {
			return key, nil
		}
	}
	if len(network.Accounts) > 0 {
		uc.log.Debug("using first configured account", "network", network.Name)
		return network.Accounts[0], nil
	}
	return "", fmt.Errorf("pass --private-key or configure accounts for network %s: %w", network.Name, domain.ErrNoPrivateKey)
}

// resolveContract lets the user pick when a name matches several artifacts
func (uc *DeployContract) resolveContract(ctx context.Context, name string) (*models.Contract, error) {
	contract, err := uc.contracts.GetContract(ctx, name)
	var ambiguous domain.AmbiguousContractErr
	if err == nil || !errors.As(err, &ambiguous) || uc.config.NonInteractive || uc.prompter == nil {
		return contract, err
	}
	choice, selectErr := uc.prompter.SelectContract(ctx, fmt.Sprintf("Multiple contracts named %s", name), ambiguous.Matches)
	if selectErr != nil {
		return nil, selectErr
	}
	return uc.contracts.GetContract(ctx, choice)
}

func (uc *DeployContract) compilerVersion(contract *models.Contract) string {
	if contract.Artifact != nil && contract.Artifact.Metadata != nil && contract.Artifact.Metadata.Compiler.Version != "" {
		return contract.Artifact.Metadata.Compiler.Version
	}
	return uc.config.Project.Solidity.Version
}
