package anvil

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/mkt/internal/domain"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

func newTestManager(t *testing.T) *Manager {
	m := NewManager(slog.New(slog.NewTextHandler(io.Discard, nil)))
	m.tempDir = t.TempDir()
	return m
}

func TestBuildAnvilArgs_Basic(t *testing.T) {
	instance := &domain.AnvilInstance{
		Port: "8545",
	}
	args := buildAnvilArgs(instance)
	assert.Equal(t, []string{"--port", "8545", "--host", "0.0.0.0"}, args)
}

func TestBuildAnvilArgs_WithChainID(t *testing.T) {
	instance := &domain.AnvilInstance{
		Port:    "9000",
		ChainID: "31337",
	}
	args := buildAnvilArgs(instance)
	assert.Equal(t, []string{"--port", "9000", "--host", "0.0.0.0", "--chain-id", "31337"}, args)
}

func TestSetFilePaths_DefaultInstance(t *testing.T) {
	m := newTestManager(t)
	instance := &domain.AnvilInstance{}
	m.setFilePaths(instance)

	assert.Equal(t, "anvil", instance.Name)
	assert.Equal(t, usecase.DefaultAnvilPort, instance.Port)
	assert.Equal(t, filepath.Join(m.tempDir, "mkt-anvil.pid"), instance.PidFile)
	assert.Equal(t, filepath.Join(m.tempDir, "mkt-anvil.log"), instance.LogFile)
}

func TestSetFilePaths_PresetPathsPreserved(t *testing.T) {
	m := newTestManager(t)
	instance := &domain.AnvilInstance{
		Name:    "suite",
		Port:    "54321",
		PidFile: "/custom/path/my.pid",
		LogFile: "/custom/path/my.log",
	}
	m.setFilePaths(instance)

	assert.Equal(t, "/custom/path/my.pid", instance.PidFile)
	assert.Equal(t, "/custom/path/my.log", instance.LogFile)
}

func TestGetStatus_NotRunning(t *testing.T) {
	m := newTestManager(t)
	status, err := m.GetStatus(t.Context(), &domain.AnvilInstance{Name: "idle"})
	require.NoError(t, err)
	assert.False(t, status.Running)
	assert.Equal(t, filepath.Join(m.tempDir, "mkt-idle.log"), status.LogFile)
}

func TestGetStatus_InvalidPidFile(t *testing.T) {
	m := newTestManager(t)
	instance := &domain.AnvilInstance{Name: "broken"}
	m.setFilePaths(instance)
	require.NoError(t, os.WriteFile(instance.PidFile, []byte("not-a-pid"), 0644))

	status, err := m.GetStatus(t.Context(), instance)
	require.NoError(t, err)
	assert.False(t, status.Running)
}

func TestGetStatus_RunningAndHealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "eth_blockNumber", req.Method)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"jsonrpc": "2.0", "id": req.ID, "result": "0x2a"})
	}))
	defer server.Close()

	m := newTestManager(t)
	parts := strings.Split(server.URL, ":")
	instance := &domain.AnvilInstance{Name: "test", Port: parts[len(parts)-1]}
	m.setFilePaths(instance)
	// the test process stands in for anvil
	require.NoError(t, os.WriteFile(instance.PidFile, []byte(strconv.Itoa(os.Getpid())), 0644))

	status, err := m.GetStatus(t.Context(), instance)
	require.NoError(t, err)
	assert.True(t, status.Running)
	assert.Equal(t, os.Getpid(), status.PID)
	assert.True(t, status.RPCHealthy)
	assert.Equal(t, uint64(42), status.BlockNumber)
	assert.Equal(t, "http://127.0.0.1:"+instance.Port, status.RPCURL)
}

func TestGetStatus_RunningButUnhealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	m := newTestManager(t)
	parts := strings.Split(server.URL, ":")
	instance := &domain.AnvilInstance{Name: "sick", Port: parts[len(parts)-1]}
	m.setFilePaths(instance)
	require.NoError(t, os.WriteFile(instance.PidFile, []byte(strconv.Itoa(os.Getpid())), 0644))

	status, err := m.GetStatus(t.Context(), instance)
	require.NoError(t, err)
	assert.True(t, status.Running)
	assert.False(t, status.RPCHealthy)
	assert.NotEmpty(t, status.Error)
}

func TestStart_MissingBinary(t *testing.T) {
	m := newTestManager(t)
	m.binary = "mkt-definitely-not-anvil"
	err := m.Start(t.Context(), &domain.AnvilInstance{Name: "nobin"})
	assert.ErrorContains(t, err, "anvil not found")
}

func TestStop_NotRunning(t *testing.T) {
	m := newTestManager(t)
	assert.NoError(t, m.Stop(t.Context(), &domain.AnvilInstance{Name: "idle"}))
}
