package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"regexp"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"github.com/trebuchet-org/mkt/internal/domain"
	"github.com/trebuchet-org/mkt/internal/domain/bindings"
	"github.com/trebuchet-org/mkt/internal/domain/config"
	"github.com/trebuchet-org/mkt/internal/domain/models"
)

// RunSuiteParams contains parameters for running a behavioral scenario
type RunSuiteParams struct {
	Network      string // defaults to the runtime network
	ScenarioPath string // empty runs the built-in scenario
	Bail         bool   // stop after the first failed step
	Grep         string // only run steps whose name matches
}

// RunSuite deploys the scenario fixtures and drives its steps in order
type RunSuite struct {
	config    *config.RuntimeConfig
	networks  NetworkResolver
	connector ChainConnector
	signers   SignerProvider
	contracts ContractRepository
	scenarios ScenarioLoader
	progress  ProgressSink
	log       *slog.Logger
}

// NewRunSuite creates a new RunSuite use case
func NewRunSuite(
	cfg *config.RuntimeConfig,
	networks NetworkResolver,
	connector ChainConnector,
	signers SignerProvider,
	contracts ContractRepository,
	scenarios ScenarioLoader,
	progress ProgressSink,
	log *slog.Logger,
) *RunSuite {
	return &RunSuite{
		config:    cfg,
		networks:  networks,
		connector: connector,
		signers:   signers,
		contracts: contracts,
		scenarios: scenarios,
		progress:  progress,
		log:       log.With("component", "suite"),
	}
}

// suiteSession holds the state shared by the steps of one run
type suiteSession struct {
	client    ChainClient
	signers   map[domain.Role]*models.Signer
	addresses map[domain.ContractKind]common.Address
	abis      map[domain.ContractKind]*abi.ABI
}

func (s *suiteSession) lookup(name string) (common.Address, bool) {
	if signer, ok := s.signers[domain.Role(name)]; ok {
		return signer.Address, true
	}
	addr, ok := s.addresses[domain.ContractKind(name)]
	return addr, ok
}

// Run executes the use case. Fixture failures abort the run and are returned
// as errors; step failures are reported in the result.
func (uc *RunSuite) Run(ctx context.Context, params RunSuiteParams) (*domain.SuiteResult, error) {
	started := time.Now()

	var grep *regexp.Regexp
	if params.Grep != "" {
		var err error
		if grep, err = regexp.Compile(params.Grep); err != nil {
			return nil, fmt.Errorf("invalid --grep pattern: %w", err)
		}
	}

	scenario, err := uc.scenarios.Load(ctx, params.ScenarioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load scenario: %w", err)
	}

	networkName := lo.Ternary(params.Network != "", params.Network, uc.config.NetworkName)
	network, err := uc.networks.ResolveNetwork(ctx, networkName)
	if err != nil {
		return nil, err
	}

	session := &suiteSession{
		signers:   make(map[domain.Role]*models.Signer, len(domain.Roles)),
		addresses: make(map[domain.ContractKind]common.Address, len(scenario.Fixtures)),
		abis:      make(map[domain.ContractKind]*abi.ABI, len(scenario.Fixtures)),
	}
	if len(network.Accounts) < len(domain.Roles) {
		return nil, fmt.Errorf("network %s has %d accounts, the scenario needs %d: %w",
			network.Name, len(network.Accounts), len(domain.Roles), domain.ErrNotEnoughAccounts)
	}
	for i, role := range domain.Roles {
		signer, err := uc.signers.FromPrivateKey(network.Accounts[i])
		if err != nil {
			return nil, fmt.Errorf("account %d (%s): %w", i, role, err)
		}
		session.signers[role] = signer
	}

	client, err := uc.connector.Connect(ctx, network)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", network.Name, err)
	}
	defer client.Close()
	session.client = client

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain id: %w", err)
	}
	if network.ChainID != 0 && chainID != network.ChainID {
		return nil, fmt.Errorf("network %s is configured as chain %d but the node reports %d: %w",
			network.Name, network.ChainID, chainID, domain.ErrNetworkMismatch)
	}

	result := &domain.SuiteResult{
		Scenario: scenario.Name,
		Network:  network.Name,
		ChainID:  chainID,
		Signers: lo.MapValues(session.signers, func(s *models.Signer, _ domain.Role) common.Address {
			return s.Address
		}),
	}
	defer func() {
		result.Duration = time.Since(started)
		uc.progress.OnProgress(ctx, ProgressEvent{Stage: "completed"})
	}()

	for i, fixture := range scenario.Fixtures {
		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   "fixtures",
			Current: i + 1,
			Total:   len(scenario.Fixtures),
			Message: fmt.Sprintf("Deploying %s", fixture.Artifact),
			Spinner: true,
		})
		deployed, err := uc.deployFixture(ctx, session, fixture)
		if err != nil {
			return result, fmt.Errorf("fixture %s: %w", fixture.Contract, err)
		}
		result.Fixtures = append(result.Fixtures, *deployed)
	}
	uc.checkOwnership(ctx, session)

	bailed := false
	for i, step := range scenario.Steps {
		res := domain.StepResult{
			Index:    i + 1,
			Name:     step.Name,
			Call:     step.Call.String(),
			Expected: step.Expect.String(),
		}
		if bailed || (grep != nil && !grep.MatchString(step.Name)) {
			res.Status = domain.StepSkipped
			result.Steps = append(result.Steps, res)
			continue
		}

		uc.progress.OnProgress(ctx, ProgressEvent{
			Stage:   "steps",
			Current: i + 1,
			Total:   len(scenario.Steps),
			Message: step.Name,
			Spinner: true,
		})

		stepStarted := time.Now()
		uc.runStep(ctx, session, step, &res)
		res.Duration = time.Since(stepStarted)
		uc.log.Debug("step finished", "index", res.Index, "name", res.Name, "status", res.Status)

		result.Steps = append(result.Steps, res)
		if params.Bail && res.Status != domain.StepPassed {
			bailed = true
		}
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
	}

	return result, nil
}

func (uc *RunSuite) deployFixture(ctx context.Context, s *suiteSession, fixture domain.Fixture) (*domain.FixtureResult, error) {
	contract, err := uc.contracts.GetContract(ctx, fixture.Artifact)
	if err != nil {
		return nil, err
	}
	parsed, err := contract.ParseABI()
	if err != nil {
		return nil, err
	}
	if want, known := bindings.Interfaces()[contract.Name]; known {
		if err := bindings.CheckImplements(contract.Name, want, parsed); err != nil {
			return nil, err
		}
	}

	args, err := ParseArgs(parsed.Constructor.Inputs, fixture.Args, s.lookup)
	if err != nil {
		return nil, fmt.Errorf("constructor: %w", err)
	}
	encodedArgs, err := parsed.Pack("", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode constructor arguments: %w", err)
	}
	bytecode, err := contract.CreationCode()
	if err != nil {
		return nil, err
	}

	tx, err := s.client.SubmitDeployment(ctx, s.signers[fixture.Deployer()], bytecode, encodedArgs)
	if err != nil {
		return nil, fmt.Errorf("deployment failed: %w", err)
	}
	if _, err := s.client.WaitDeployed(ctx, tx); err != nil {
		return nil, fmt.Errorf("deployment of %s was not confirmed: %w", contract.Name, err)
	}

	s.addresses[fixture.Contract] = tx.ContractAddress
	s.abis[fixture.Contract] = parsed
	uc.log.Debug("fixture deployed", "contract", fixture.Contract, "address", tx.ContractAddress.Hex())

	return &domain.FixtureResult{
		Contract: fixture.Contract,
		Artifact: contract.Name,
		Address:  tx.ContractAddress,
		TxHash:   tx.Hash,
	}, nil
}

// checkOwnership warns when the marketplace is not owned by its deployer,
// since every access-control step assumes it is.
func (uc *RunSuite) checkOwnership(ctx context.Context, s *suiteSession) {
	addr, ok := s.addresses[domain.ContractMarketplace]
	if !ok {
		return
	}
	marketplace := bindings.NewMarketplace()
	owner := s.signers[domain.RoleOwner].Address
	out, err := s.client.Call(ctx, owner, addr, marketplace.PackOwner())
	if err != nil {
		uc.log.Debug("could not read marketplace owner", "error", err)
		return
	}
	got, err := marketplace.UnpackOwner(out)
	if err != nil {
		uc.log.Debug("could not decode marketplace owner", "error", err)
		return
	}
	if got != owner {
		uc.log.Warn("marketplace owner is not the owner role", "owner", got.Hex(), "expected", owner.Hex())
	}
}

func (uc *RunSuite) runStep(ctx context.Context, s *suiteSession, step domain.Step, res *domain.StepResult) {
	for _, setup := range step.Setup {
		outcome, err := uc.execute(ctx, s, setup)
		if err != nil {
			res.Status = domain.StepErrored
			res.Err = err
			res.Message = fmt.Sprintf("setup call %s failed: %v", setup, err)
			return
		}
		if outcome.Reverted {
			res.Status = domain.StepErrored
			res.Actual = outcome.String()
			res.Message = fmt.Sprintf("setup call %s %s", setup, outcome)
			return
		}
	}

	outcome, err := uc.execute(ctx, s, step.Call)
	if err != nil {
		res.Status = domain.StepErrored
		res.Err = err
		res.Message = err.Error()
		return
	}

	res.Actual = outcome.String()
	res.TxHash = outcome.TxHash
	if ok, msg := step.Expect.Check(*outcome); ok {
		res.Status = domain.StepPassed
	} else {
		res.Status = domain.StepFailed
		res.Message = msg
	}
}

// execute sends a scenario call. A revert is an outcome, not an error.
func (uc *RunSuite) execute(ctx context.Context, s *suiteSession, call domain.Call) (*domain.Outcome, error) {
	contractABI, ok := s.abis[call.Contract]
	if !ok {
		return nil, fmt.Errorf("contract %s was not deployed", call.Contract)
	}
	method, err := findMethod(contractABI, call.Method, len(call.Args))
	if err != nil {
		return nil, err
	}
	args, err := ParseArgs(method.Inputs, call.Args, s.lookup)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method.Sig, err)
	}
	data, err := contractABI.Pack(method.Name, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", method.Sig, err)
	}

	var value *big.Int
	if !call.Value.IsZero() {
		value = call.Value.Int
	}

	receipt, err := s.client.Transact(ctx, s.signers[call.Caller()], s.addresses[call.Contract], data, value)
	if err != nil {
		var revert *domain.RevertError
		if errors.As(err, &revert) {
			return &domain.Outcome{Reverted: true, Reason: revert.Reason}, nil
		}
		return nil, err
	}
	return &domain.Outcome{TxHash: receipt.TxHash, GasUsed: receipt.GasUsed}, nil
}

// findMethod resolves a method by name, picking the overload with the given arity
func findMethod(contractABI *abi.ABI, name string, arity int) (*abi.Method, error) {
	exact, found := contractABI.Methods[name]
	if found && len(exact.Inputs) == arity {
		return &exact, nil
	}
	for _, m := range contractABI.Methods {
		if m.RawName == name && len(m.Inputs) == arity {
			return &m, nil
		}
	}
	if found {
		return nil, fmt.Errorf("%s takes %d arguments, got %d", exact.Sig, len(exact.Inputs), arity)
	}
	return nil, fmt.Errorf("method %s not found in ABI", name)
}
