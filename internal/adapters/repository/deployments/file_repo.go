package deployments

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/trebuchet-org/mkt/internal/domain"
	"github.com/trebuchet-org/mkt/internal/domain/config"
	"github.com/trebuchet-org/mkt/internal/domain/models"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

// DeploymentsFile holds the registry inside the data directory
const DeploymentsFile = "deployments.json"

// FileRepository stores deployment records in a JSON file
type FileRepository struct {
	dataDir     string
	mu          sync.RWMutex
	deployments map[string]*models.Deployment
	byAddress   map[uint64]map[string]string // chain id -> lowercase address -> id
}

// NewFileRepository opens the registry in dataDir. The file is created on first save.
func NewFileRepository(dataDir string) (*FileRepository, error) {
	m := &FileRepository{
		dataDir:     dataDir,
		deployments: make(map[string]*models.Deployment),
	}
	if err := m.load(); err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}
	return m, nil
}

// NewFileRepositoryFromConfig opens the registry of the current project
func NewFileRepositoryFromConfig(cfg *config.RuntimeConfig) (*FileRepository, error) {
	return NewFileRepository(cfg.DataDir)
}

func (m *FileRepository) path() string {
	return filepath.Join(m.dataDir, DeploymentsFile)
}

func (m *FileRepository) load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.path())
	if err != nil {
		if os.IsNotExist(err) {
			m.rebuildLookups()
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, &m.deployments); err != nil {
		return fmt.Errorf("%s is corrupt: %w", m.path(), err)
	}
	if m.deployments == nil {
		m.deployments = make(map[string]*models.Deployment)
	}
	m.rebuildLookups()
	return nil
}

// save writes the registry through a temp file and an atomic rename
func (m *FileRepository) save() error {
	if err := os.MkdirAll(m.dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", m.dataDir, err)
	}

	data, err := json.MarshalIndent(m.deployments, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := m.path() + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, m.path())
}

func (m *FileRepository) rebuildLookups() {
	m.byAddress = make(map[uint64]map[string]string)
	for id, dep := range m.deployments {
		if m.byAddress[dep.ChainID] == nil {
			m.byAddress[dep.ChainID] = make(map[string]string)
		}
		m.byAddress[dep.ChainID][strings.ToLower(dep.Address)] = id
	}
}

// GetDeployment retrieves a deployment by ID
func (m *FileRepository) GetDeployment(ctx context.Context, id string) (*models.Deployment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dep, exists := m.deployments[id]
	if !exists {
		return nil, fmt.Errorf("deployment %s: %w", id, domain.ErrNotFound)
	}
	clone := *dep
	return &clone, nil
}

// GetDeploymentByAddress retrieves a deployment by chain ID and address
func (m *FileRepository) GetDeploymentByAddress(ctx context.Context, chainID uint64, address string) (*models.Deployment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, exists := m.byAddress[chainID][strings.ToLower(address)]
	if !exists {
		return nil, fmt.Errorf("deployment at address %s on chain %d: %w", address, chainID, domain.ErrNotFound)
	}
	clone := *m.deployments[id]
	return &clone, nil
}

// ListDeployments retrieves deployments matching the filter
func (m *FileRepository) ListDeployments(ctx context.Context, filter domain.DeploymentFilter) ([]*models.Deployment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matching := lo.Filter(lo.Values(m.deployments), func(dep *models.Deployment, _ int) bool {
		return (filter.ChainID == 0 || dep.ChainID == filter.ChainID) &&
			(filter.Network == "" || dep.Network == filter.Network) &&
			(filter.ContractName == "" || dep.ContractName == filter.ContractName)
	})
	return lo.Map(matching, func(dep *models.Deployment, _ int) *models.Deployment {
		clone := *dep
		return &clone
	}), nil
}

// SaveDeployment saves or updates a deployment
func (m *FileRepository) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *deployment
	m.deployments[deployment.ID] = &clone
	m.rebuildLookups()
	return m.save()
}

var _ usecase.DeploymentRepository = (*FileRepository)(nil)
