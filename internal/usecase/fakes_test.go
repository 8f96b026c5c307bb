package usecase_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/mkt/internal/domain"
	"github.com/trebuchet-org/mkt/internal/domain/bindings"
	"github.com/trebuchet-org/mkt/internal/domain/config"
	"github.com/trebuchet-org/mkt/internal/domain/models"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockDeploymentRepository is a mock implementation of DeploymentRepository
type MockDeploymentRepository struct {
	mock.Mock
}

func (m *MockDeploymentRepository) GetDeployment(ctx context.Context, id string) (*models.Deployment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deployment), args.Error(1)
}

func (m *MockDeploymentRepository) GetDeploymentByAddress(ctx context.Context, chainID uint64, address string) (*models.Deployment, error) {
	args := m.Called(ctx, chainID, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deployment), args.Error(1)
}

func (m *MockDeploymentRepository) ListDeployments(ctx context.Context, filter domain.DeploymentFilter) ([]*models.Deployment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Deployment), args.Error(1)
}

func (m *MockDeploymentRepository) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	args := m.Called(ctx, deployment)
	return args.Error(0)
}

// MockContractVerifier is a mock implementation of ContractVerifier
type MockContractVerifier struct {
	mock.Mock
}

func (m *MockContractVerifier) Verify(ctx context.Context, req *usecase.VerificationRequest) (*models.VerificationInfo, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VerificationInfo), args.Error(1)
}

// fakeNetworks resolves from a fixed set of networks
type fakeNetworks map[string]*config.Network

func (f fakeNetworks) GetNetworks(ctx context.Context) []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	return names
}

func (f fakeNetworks) ResolveNetwork(ctx context.Context, name string) (*config.Network, error) {
	network, ok := f[name]
	if !ok {
		return nil, fmt.Errorf("network %q: %w", name, domain.ErrNotFound)
	}
	copied := *network
	return &copied, nil
}

func localNetworks() fakeNetworks {
	return fakeNetworks{
		"hardhat": {
			Name:     "hardhat",
			ChainID:  config.LocalChainID,
			RPCURL:   config.LocalRPCURL,
			Accounts: config.DevAccounts,
		},
		"simulated": {
			Name:      "simulated",
			ChainID:   config.SimulatedChainID,
			Accounts:  config.DevAccounts,
			Simulated: true,
		},
		"sepolia": {
			Name:        "sepolia",
			ChainID:     11155111,
			RPCURL:      "https://rpc.sepolia.example",
			ExplorerURL: "https://sepolia.etherscan.io",
		},
	}
}

// keySigners parses keys the same way the real signer does
type keySigners struct{}

func (keySigners) FromPrivateKey(key string) (*models.Signer, error) {
	key = strings.TrimPrefix(strings.TrimSpace(key), "0x")
	if key == "" {
		return nil, domain.ErrNoPrivateKey
	}
	pk, err := crypto.HexToECDSA(key)
	if err != nil {
		return nil, domain.ErrInvalidPrivateKey
	}
	return &models.Signer{Address: crypto.PubkeyToAddress(pk.PublicKey), PrivateKey: pk}, nil
}

func devAddress(i int) common.Address {
	signer, err := keySigners{}.FromPrivateKey(config.DevAccounts[i])
	if err != nil {
		panic(err)
	}
	return signer.Address
}

// marker bytecodes let the fake chain tell which contract is being created
var creationCode = map[string]string{
	"Marketplace": "0x01",
	"NFT":         "0x02",
	"Deployment":  "0x03",
}

var abiByCode = map[byte]*abi.ABI{
	0x01: bindings.NewMarketplace().ABI(),
	0x02: bindings.NewNFT().ABI(),
	0x03: bindings.NewDeployment().ABI(),
}

func testContract(name string) *models.Contract {
	var abiJSON string
	switch name {
	case "Marketplace":
		abiJSON = bindings.MarketplaceMetaData.ABI
	case "NFT":
		abiJSON = bindings.NFTMetaData.ABI
	case "Deployment":
		abiJSON = bindings.DeploymentMetaData.ABI
	}
	return &models.Contract{
		Name:       name,
		SourceName: fmt.Sprintf("contracts/%s.sol", name),
		Artifact: &models.Artifact{
			ContractName: name,
			ABI:          json.RawMessage(abiJSON),
			Bytecode:     models.Bytecode(creationCode[name]),
		},
	}
}

// fakeContracts serves the marketplace contracts from the generated bindings
type fakeContracts struct {
	contracts map[string]*models.Contract
	buildInfo *models.BuildInfo
}

func newFakeContracts() *fakeContracts {
	f := &fakeContracts{contracts: make(map[string]*models.Contract)}
	for name := range creationCode {
		c := testContract(name)
		f.contracts[name] = c
		f.contracts[c.FullyQualifiedName()] = c
	}
	return f
}

func (f *fakeContracts) GetContract(ctx context.Context, name string) (*models.Contract, error) {
	c, ok := f.contracts[name]
	if !ok {
		return nil, domain.ContractNotFoundErr{Name: name}
	}
	return c, nil
}

func (f *fakeContracts) ListContracts(ctx context.Context) ([]*models.Contract, error) {
	var out []*models.Contract
	for key, c := range f.contracts {
		if !strings.Contains(key, ":") {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContracts) GetBuildInfo(ctx context.Context, contract *models.Contract) (*models.BuildInfo, error) {
	if f.buildInfo == nil {
		return nil, domain.ErrNotFound
	}
	return f.buildInfo, nil
}

// sentCall is a decoded transaction seen by the fake chain
type sentCall struct {
	From   common.Address
	To     common.Address
	Method string
	Args   []any
	Value  *big.Int
}

type sentDeployment struct {
	From    common.Address
	Address common.Address
	Code    []byte
	Args    []byte
}

// fakeChain decodes transactions with the bindings and answers through respond.
// Calls succeed unless respond returns an error.
type fakeChain struct {
	mu          sync.Mutex
	chainID     uint64
	nonces      map[common.Address]uint64
	abis        map[common.Address]*abi.ABI
	deployments []sentDeployment
	calls       []sentCall
	respond     func(call sentCall) error
	deployErr   error
	closed      bool
}

func newFakeChain(chainID uint64) *fakeChain {
	return &fakeChain{
		chainID: chainID,
		nonces:  make(map[common.Address]uint64),
		abis:    make(map[common.Address]*abi.ABI),
	}
}

func (c *fakeChain) Connect(ctx context.Context, network *config.Network) (usecase.ChainClient, error) {
	return c, nil
}

func (c *fakeChain) ChainID(ctx context.Context) (uint64, error) {
	return c.chainID, nil
}

func (c *fakeChain) SubmitDeployment(ctx context.Context, signer *models.Signer, bytecode, constructorArgs []byte) (*models.PendingTx, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.deployErr != nil {
		return nil, c.deployErr
	}
	nonce := c.nonces[signer.Address]
	c.nonces[signer.Address]++
	address := crypto.CreateAddress(signer.Address, nonce)
	if len(bytecode) > 0 {
		c.abis[address] = abiByCode[bytecode[0]]
	}
	c.deployments = append(c.deployments, sentDeployment{
		From:    signer.Address,
		Address: address,
		Code:    bytecode,
		Args:    constructorArgs,
	})
	return &models.PendingTx{
		Hash:            common.BigToHash(big.NewInt(int64(len(c.deployments)))),
		From:            signer.Address,
		Nonce:           nonce,
		ContractAddress: address,
	}, nil
}

func (c *fakeChain) WaitDeployed(ctx context.Context, tx *models.PendingTx) (*models.Receipt, error) {
	return &models.Receipt{
		TxHash:          tx.Hash,
		BlockNumber:     uint64(len(c.deployments)),
		GasUsed:         500_000,
		ContractAddress: tx.ContractAddress,
		Success:         true,
	}, nil
}

func (c *fakeChain) Transact(ctx context.Context, signer *models.Signer, to common.Address, data []byte, value *big.Int) (*models.Receipt, error) {
	c.mu.Lock()
	call, err := c.decode(signer.Address, to, data, value)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	c.calls = append(c.calls, call)
	n := len(c.calls)
	respond := c.respond
	c.mu.Unlock()

	if respond != nil {
		if err := respond(call); err != nil {
			return nil, err
		}
	}
	return &models.Receipt{
		TxHash:      common.BigToHash(big.NewInt(int64(1000 + n))),
		BlockNumber: uint64(100 + n),
		GasUsed:     50_000,
		Success:     true,
	}, nil
}

func (c *fakeChain) Call(ctx context.Context, from, to common.Address, data []byte) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	contractABI, ok := c.abis[to]
	if !ok {
		return nil, fmt.Errorf("no contract at %s", to.Hex())
	}
	method, err := contractABI.MethodById(data)
	if err != nil {
		return nil, err
	}
	if method.Name != "owner" {
		return nil, fmt.Errorf("fake chain cannot answer %s", method.Name)
	}
	for _, d := range c.deployments {
		if d.Address == to {
			return method.Outputs.Pack(d.From)
		}
	}
	return nil, fmt.Errorf("unknown contract %s", to.Hex())
}

func (c *fakeChain) Close() {
	c.closed = true
}

func (c *fakeChain) decode(from, to common.Address, data []byte, value *big.Int) (sentCall, error) {
	contractABI, ok := c.abis[to]
	if !ok {
		return sentCall{}, fmt.Errorf("no contract at %s", to.Hex())
	}
	method, err := contractABI.MethodById(data)
	if err != nil {
		return sentCall{}, err
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return sentCall{}, err
	}
	return sentCall{From: from, To: to, Method: method.Name, Args: args, Value: value}, nil
}

func (c *fakeChain) sent() []sentCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]sentCall(nil), c.calls...)
}

// staticLoader returns a fixed scenario
type staticLoader struct {
	scenario *domain.Scenario
}

func (l staticLoader) Load(ctx context.Context, path string) (*domain.Scenario, error) {
	return l.scenario, nil
}

// fakePrompter answers prompts from fixed values
type fakePrompter struct {
	key     string
	choice  string
	prompts int
	options []string
}

func (p *fakePrompter) PromptPrivateKey(ctx context.Context, label string) (string, error) {
	p.prompts++
	return p.key, nil
}

func (p *fakePrompter) SelectContract(ctx context.Context, label string, options []string) (string, error) {
	p.prompts++
	p.options = options
	return p.choice, nil
}

// recordingSink keeps every message shown to the user
type recordingSink struct {
	mu     sync.Mutex
	infos  []string
	errors []string
	events []usecase.ProgressEvent
}

func (s *recordingSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *recordingSink) Info(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.infos = append(s.infos, message)
}

func (s *recordingSink) Error(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = append(s.errors, message)
}
