package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/trebuchet-org/mkt/internal/domain"
	"github.com/trebuchet-org/mkt/internal/domain/config"
)

// DefaultAnvilPort is the port the hardhat network's RPC URL points at
const DefaultAnvilPort = "8545"

// Node operations accepted by ManageAnvil
const (
	AnvilStart   = "start"
	AnvilStop    = "stop"
	AnvilRestart = "restart"
	AnvilStatus  = "status"
)

// ManageAnvilParams contains parameters for anvil operations
type ManageAnvilParams struct {
	Operation string
	Name      string
	Port      string
	ChainID   string // defaults to the hardhat chain id so the node matches the default network
}

// ManageAnvilResult contains the result of anvil operations
type ManageAnvilResult struct {
	Operation string
	Instance  *domain.AnvilInstance
	Status    *domain.AnvilStatus
	Message   string
}

// ManageAnvil runs a local node the deploy and test commands can target
// through the hardhat network.
type ManageAnvil struct {
	nodes    AnvilManager
	progress ProgressSink
}

// NewManageAnvil creates a new anvil management use case
func NewManageAnvil(nodes AnvilManager, progress ProgressSink) *ManageAnvil {
	return &ManageAnvil{nodes: nodes, progress: progress}
}

// Execute performs the requested operation
func (m *ManageAnvil) Execute(ctx context.Context, params ManageAnvilParams) (*ManageAnvilResult, error) {
	node := &domain.AnvilInstance{
		Name:    params.Name,
		Port:    params.Port,
		ChainID: params.ChainID,
	}
	if node.Name == "" {
		node.Name = "anvil"
	}
	if node.Port == "" {
		node.Port = DefaultAnvilPort
	}
	if node.ChainID == "" {
		node.ChainID = strconv.FormatUint(config.LocalChainID, 10)
	}

	var (
		result *ManageAnvilResult
		err    error
	)
	switch params.Operation {
	case AnvilStart:
		result, err = m.start(ctx, node)
	case AnvilStop:
		result, err = m.stop(ctx, node)
	case AnvilRestart:
		if _, err = m.stop(ctx, node); err != nil {
			return nil, err
		}
		result, err = m.start(ctx, node)
	case AnvilStatus:
		var status *domain.AnvilStatus
		if status, err = m.nodes.GetStatus(ctx, node); err != nil {
			return nil, fmt.Errorf("failed to get status: %w", err)
		}
		result = &ManageAnvilResult{Status: status}
	default:
		return nil, fmt.Errorf("unknown operation: %s", params.Operation)
	}
	if err != nil {
		return nil, err
	}

	result.Operation = params.Operation
	result.Instance = node
	return result, nil
}

func (m *ManageAnvil) start(ctx context.Context, node *domain.AnvilInstance) (*ManageAnvilResult, error) {
	if status, err := m.nodes.GetStatus(ctx, node); err == nil && status.Running {
		return nil, fmt.Errorf("anvil '%s' is already running (PID %d): %w", node.Name, status.PID, domain.ErrAlreadyExists)
	}

	m.progress.Info(fmt.Sprintf("Starting anvil '%s' on port %s...", node.Name, node.Port))
	if err := m.nodes.Start(ctx, node); err != nil {
		return nil, fmt.Errorf("failed to start anvil: %w", err)
	}

	status, err := m.nodes.GetStatus(ctx, node)
	if err != nil {
		return nil, fmt.Errorf("anvil started but its status is unavailable: %w", err)
	}
	return &ManageAnvilResult{
		Status:  status,
		Message: fmt.Sprintf("Anvil '%s' started with PID %d", node.Name, status.PID),
	}, nil
}

// stop is a no-op for nodes that aren't running
func (m *ManageAnvil) stop(ctx context.Context, node *domain.AnvilInstance) (*ManageAnvilResult, error) {
	status, err := m.nodes.GetStatus(ctx, node)
	if err != nil || !status.Running {
		return &ManageAnvilResult{Message: fmt.Sprintf("Anvil '%s' is not running", node.Name)}, nil
	}

	m.progress.Info(fmt.Sprintf("Stopping anvil '%s' (PID %d)...", node.Name, status.PID))
	if err := m.nodes.Stop(ctx, node); err != nil {
		return nil, fmt.Errorf("failed to stop anvil: %w", err)
	}
	return &ManageAnvilResult{Message: fmt.Sprintf("Anvil '%s' stopped", node.Name)}, nil
}
