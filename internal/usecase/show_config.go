package usecase

import (
	"context"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/mkt/internal/domain/config"
)

// ShowConfigResult contains the effective configuration
type ShowConfigResult struct {
	ProjectRoot string
	ConfigPath  string
	Exists      bool
	Network     string
	Project     *config.ProjectConfig
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	config *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{config: cfg}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	path := filepath.Join(uc.config.ProjectRoot, config.ProjectConfigFileName)
	_, err := os.Stat(path)

	return &ShowConfigResult{
		ProjectRoot: uc.config.ProjectRoot,
		ConfigPath:  path,
		Exists:      err == nil,
		Network:     uc.config.NetworkName,
		Project:     uc.config.Project,
	}, nil
}
