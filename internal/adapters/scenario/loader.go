package scenario

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/trebuchet-org/mkt/internal/domain"
	"github.com/trebuchet-org/mkt/internal/usecase"
	"gopkg.in/yaml.v3"
)

//go:embed marketplace.yaml
var marketplaceScenario []byte

// FileLoader loads scenarios from YAML files
type FileLoader struct{}

// NewFileLoader creates a new scenario loader
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads the scenario at path, or the built-in one when path is empty
func (l *FileLoader) Load(ctx context.Context, path string) (*domain.Scenario, error) {
	if path == "" {
		return Parse(bytes.NewReader(marketplaceScenario))
	}

	f, err := os.Open(path) //nolint:gosec // user supplied scenario path
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scenario document. Unknown keys are rejected
// so typos like `exepct:` fail loudly instead of silently expecting success.
func Parse(r io.Reader) (*domain.Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s domain.Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("scenario is empty")
		}
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

var _ usecase.ScenarioLoader = (*FileLoader)(nil)
