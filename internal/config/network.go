package config

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/mkt/internal/domain"
	"github.com/trebuchet-org/mkt/internal/domain/config"
)

// NetworkResolver resolves network names to connection settings.
// Chain ids missing from the config are fetched once and cached for the process.
type NetworkResolver struct {
	networks map[string]config.NetworkConfig
	timeout  time.Duration

	mu       sync.Mutex
	chainIDs map[string]uint64 // rpc url -> chain id
}

// NewNetworkResolver creates a resolver over the project's networks
func NewNetworkResolver(project *config.ProjectConfig) *NetworkResolver {
	return &NetworkResolver{
		networks: project.Networks,
		timeout:  10 * time.Second,
		chainIDs: make(map[string]uint64),
	}
}

// Names lists the configured networks in alphabetical order
func (r *NetworkResolver) Names() []string {
	names := make([]string, 0, len(r.networks))
	for name := range r.networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve resolves a network name to its configuration
func (r *NetworkResolver) Resolve(ctx context.Context, name string) (*config.Network, error) {
	nc, ok := r.networks[name]
	if !ok {
		return nil, fmt.Errorf("network %q is not configured (available: %s): %w",
			name, strings.Join(r.Names(), ", "), domain.ErrNotFound)
	}

	network := &config.Network{
		Name:      name,
		ChainID:   nc.ChainID,
		RPCURL:    nc.URL,
		Accounts:  nc.Accounts,
		Simulated: name == config.SimulatedNetwork,
	}

	if network.ChainID == 0 && !network.Simulated {
		chainID, err := r.fetchChainID(ctx, nc.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch chain ID for network %s: %w", name, err)
		}
		network.ChainID = chainID
	}

	network.ExplorerURL = nc.Explorer
	if network.ExplorerURL == "" {
		network.ExplorerURL = explorerURL(network.ChainID)
	}
	return network, nil
}

func (r *NetworkResolver) fetchChainID(ctx context.Context, rpcURL string) (uint64, error) {
	r.mu.Lock()
	chainID, cached := r.chainIDs[rpcURL]
	r.mu.Unlock()
	if cached {
		return chainID, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to %s: %w", rpcURL, err)
	}
	defer client.Close()

	id, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("eth_chainId failed: %w", err)
	}

	r.mu.Lock()
	r.chainIDs[rpcURL] = id.Uint64()
	r.mu.Unlock()
	return id.Uint64(), nil
}

// explorerURL returns the block explorer for well-known chains
func explorerURL(chainID uint64) string {
	switch chainID {
	case 1:
		return "https://etherscan.io"
	case 11155111:
		return "https://sepolia.etherscan.io"
	case 17000:
		return "https://holesky.etherscan.io"
	case 10:
		return "https://optimistic.etherscan.io"
	case 137:
		return "https://polygonscan.com"
	case 8453:
		return "https://basescan.org"
	case 42161:
		return "https://arbiscan.io"
	case 56:
		return "https://bscscan.com"
	default:
		return ""
	}
}
