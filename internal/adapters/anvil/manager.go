package anvil

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/mkt/internal/domain"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

const (
	defaultName   = "anvil"
	readyTimeout  = 10 * time.Second
	stopTimeout   = 5 * time.Second
	healthTimeout = 2 * time.Second
)

// Manager runs anvil as a background process tracked through pid files
type Manager struct {
	binary  string
	tempDir string
	log     *slog.Logger
}

// NewManager creates a new anvil manager
func NewManager(log *slog.Logger) *Manager {
	return &Manager{
		binary:  "anvil",
		tempDir: os.TempDir(),
		log:     log.With("component", "anvil"),
	}
}

func buildAnvilArgs(instance *domain.AnvilInstance) []string {
	args := []string{"--port", instance.Port, "--host", "0.0.0.0"}
	if instance.ChainID != "" {
		args = append(args, "--chain-id", instance.ChainID)
	}
	return args
}

// setFilePaths fills in defaults and per-instance pid/log locations
func (m *Manager) setFilePaths(instance *domain.AnvilInstance) {
	if strings.TrimSpace(instance.Name) == "" {
		instance.Name = defaultName
	}
	if strings.TrimSpace(instance.Port) == "" {
		instance.Port = usecase.DefaultAnvilPort
	}
	if instance.PidFile == "" {
		instance.PidFile = filepath.Join(m.tempDir, fmt.Sprintf("mkt-%s.pid", instance.Name))
	}
	if instance.LogFile == "" {
		instance.LogFile = filepath.Join(m.tempDir, fmt.Sprintf("mkt-%s.log", instance.Name))
	}
}

func rpcURL(instance *domain.AnvilInstance) string {
	return fmt.Sprintf("http://127.0.0.1:%s", instance.Port)
}

// Start launches anvil and waits until its RPC answers
func (m *Manager) Start(ctx context.Context, instance *domain.AnvilInstance) error {
	m.setFilePaths(instance)
	if _, running := m.runningPID(instance); running {
		return fmt.Errorf("anvil '%s' is already running (PID file %s): %w", instance.Name, instance.PidFile, domain.ErrAlreadyExists)
	}

	binary, err := exec.LookPath(m.binary)
	if err != nil {
		return fmt.Errorf("anvil not found in PATH (install foundry from https://getfoundry.sh): %w", err)
	}

	logFile, err := os.Create(instance.LogFile)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	defer logFile.Close()

	cmd := exec.Command(binary, buildAnvilArgs(instance)...)
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start anvil: %w", err)
	}
	if err := os.WriteFile(instance.PidFile, []byte(strconv.Itoa(cmd.Process.Pid)), 0644); err != nil {
		_ = cmd.Process.Kill()
		return fmt.Errorf("failed to write PID file: %w", err)
	}
	m.log.Debug("anvil started", "pid", cmd.Process.Pid, "port", instance.Port)

	// the process outlives this command; release it so it isn't reaped with us
	_ = cmd.Process.Release()

	return m.waitReady(ctx, instance)
}

func (m *Manager) waitReady(ctx context.Context, instance *domain.AnvilInstance) error {
	ctx, cancel := context.WithTimeout(ctx, readyTimeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		if _, err := blockNumber(ctx, instance); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("anvil did not become ready on %s (see %s)", rpcURL(instance), instance.LogFile)
		case <-ticker.C:
		}
	}
}

// Stop terminates the instance, escalating to SIGKILL after a grace period
func (m *Manager) Stop(ctx context.Context, instance *domain.AnvilInstance) error {
	m.setFilePaths(instance)
	pid, running := m.runningPID(instance)
	if !running {
		_ = os.Remove(instance.PidFile)
		return nil
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("failed to find process: %w", err)
	}
	if err := process.Signal(syscall.SIGTERM); err != nil {
		if err := process.Kill(); err != nil {
			return fmt.Errorf("failed to kill process: %w", err)
		}
	}

	deadline := time.Now().Add(stopTimeout)
	for processAlive(pid) && time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}
	if processAlive(pid) {
		_ = process.Kill()
	}

	if err := os.Remove(instance.PidFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove PID file: %w", err)
	}
	m.log.Debug("anvil stopped", "pid", pid)
	return nil
}

// GetStatus reports whether the instance runs and whether its RPC responds
func (m *Manager) GetStatus(ctx context.Context, instance *domain.AnvilInstance) (*domain.AnvilStatus, error) {
	m.setFilePaths(instance)
	status := &domain.AnvilStatus{LogFile: instance.LogFile}

	pid, running := m.runningPID(instance)
	if !running {
		return status, nil
	}
	status.Running = true
	status.PID = pid
	status.RPCURL = rpcURL(instance)

	block, err := blockNumber(ctx, instance)
	if err != nil {
		status.Error = err.Error()
		return status, nil
	}
	status.RPCHealthy = true
	status.BlockNumber = block
	return status, nil
}

func (m *Manager) runningPID(instance *domain.AnvilInstance) (int, bool) {
	data, err := os.ReadFile(instance.PidFile)
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		m.log.Warn("ignoring invalid PID file", "path", instance.PidFile)
		return 0, false
	}
	return pid, processAlive(pid)
}

func processAlive(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}

func blockNumber(ctx context.Context, instance *domain.AnvilInstance) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rpcURL(instance))
	if err != nil {
		return 0, err
	}
	defer client.Close()
	return client.BlockNumber(ctx)
}

var _ usecase.AnvilManager = (*Manager)(nil)
