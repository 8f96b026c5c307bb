package config

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/mkt/internal/domain"
	"github.com/trebuchet-org/mkt/internal/domain/config"
)

// chainIDServer answers eth_chainId with the given hex id and counts calls
func chainIDServer(t *testing.T, chainID string, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "eth_chainId", req.Method)
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      req.ID,
			"result":  chainID,
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNetworkResolver(t *testing.T) {
	t.Run("built-in network resolves offline", func(t *testing.T) {
		r := NewNetworkResolver(config.DefaultProjectConfig())

		network, err := r.Resolve(t.Context(), "hardhat")
		require.NoError(t, err)
		assert.Equal(t, uint64(31337), network.ChainID)
		assert.Equal(t, "http://127.0.0.1:8545", network.RPCURL)
		assert.Len(t, network.Accounts, 5)
		assert.False(t, network.Simulated)
	})

	t.Run("simulated network", func(t *testing.T) {
		r := NewNetworkResolver(config.DefaultProjectConfig())

		network, err := r.Resolve(t.Context(), config.SimulatedNetwork)
		require.NoError(t, err)
		assert.True(t, network.Simulated)
		assert.Equal(t, uint64(1337), network.ChainID)
	})

	t.Run("chain id fetched once and cached", func(t *testing.T) {
		var calls atomic.Int32
		srv := chainIDServer(t, "0xaa36a7", &calls)

		project := config.DefaultProjectConfig()
		project.Networks["sepolia"] = config.NetworkConfig{URL: srv.URL}
		r := NewNetworkResolver(project)

		network, err := r.Resolve(t.Context(), "sepolia")
		require.NoError(t, err)
		assert.Equal(t, uint64(11155111), network.ChainID)
		assert.Equal(t, "https://sepolia.etherscan.io", network.ExplorerURL)

		_, err = r.Resolve(t.Context(), "sepolia")
		require.NoError(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("configured explorer wins", func(t *testing.T) {
		project := config.DefaultProjectConfig()
		project.Networks["mainnet"] = config.NetworkConfig{URL: "http://unused", ChainID: 1, Explorer: "https://my.explorer"}
		r := NewNetworkResolver(project)

		network, err := r.Resolve(t.Context(), "mainnet")
		require.NoError(t, err)
		assert.Equal(t, "https://my.explorer", network.ExplorerURL)
	})

	t.Run("unknown network", func(t *testing.T) {
		r := NewNetworkResolver(config.DefaultProjectConfig())

		_, err := r.Resolve(t.Context(), "nowhere")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Contains(t, err.Error(), "hardhat")
	})

	t.Run("names are sorted", func(t *testing.T) {
		r := NewNetworkResolver(config.DefaultProjectConfig())
		assert.Equal(t, []string{"hardhat", "localhost", "simulated"}, r.Names())
	})
}
