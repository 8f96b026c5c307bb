package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/params"
	"github.com/trebuchet-org/mkt/internal/domain"
	"github.com/trebuchet-org/mkt/internal/domain/config"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

// simulatedBalance funds every configured account on the in-process chain
var simulatedBalance = new(big.Int).Mul(big.NewInt(10_000), big.NewInt(params.Ether))

// Connector opens chain clients for resolved networks
type Connector struct {
	log *slog.Logger
}

// NewConnector creates a new Connector
func NewConnector(log *slog.Logger) *Connector {
	return &Connector{log: log.With("component", "chain")}
}

// Connect dials the network's RPC endpoint, or starts an in-process chain for
// the simulated network. The RPC chain id must match the configured one.
func (c *Connector) Connect(ctx context.Context, network *config.Network) (usecase.ChainClient, error) {
	if network.Simulated {
		return c.simulated(network)
	}

	rpc, err := ethclient.DialContext(ctx, network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", network.RPCURL, err)
	}
	chainID, err := rpc.ChainID(ctx)
	if err != nil {
		rpc.Close()
		return nil, fmt.Errorf("failed to get chain ID from %s: %w", network.RPCURL, err)
	}
	if network.ChainID != 0 && chainID.Uint64() != network.ChainID {
		rpc.Close()
		return nil, fmt.Errorf("%s reports chain %d, expected %d: %w",
			network.RPCURL, chainID.Uint64(), network.ChainID, domain.ErrNetworkMismatch)
	}

	c.log.Debug("connected", "network", network.Name, "chain_id", chainID.Uint64())
	return NewClient(rpc, chainID, nil, rpc.Close, c.log), nil
}

func (c *Connector) simulated(network *config.Network) (*Client, error) {
	alloc := make(types.GenesisAlloc, len(network.Accounts))
	for i, key := range network.Accounts {
		pk, err := crypto.HexToECDSA(trimHexPrefix(key))
		if err != nil {
			return nil, fmt.Errorf("account %d: %w", i, domain.ErrInvalidPrivateKey)
		}
		alloc[crypto.PubkeyToAddress(pk.PublicKey)] = types.Account{Balance: simulatedBalance}
	}

	backend := simulated.NewBackend(alloc)
	chainID, err := backend.Client().ChainID(context.Background())
	if err != nil {
		_ = backend.Close()
		return nil, err
	}

	c.log.Debug("started simulated chain", "accounts", len(alloc), "chain_id", chainID.Uint64())
	return NewClient(
		backend.Client(),
		chainID,
		func() { backend.Commit() },
		func() { _ = backend.Close() },
		c.log,
	), nil
}

var _ usecase.ChainConnector = (*Connector)(nil)
