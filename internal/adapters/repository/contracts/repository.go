package contracts

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/mkt/internal/domain"
	"github.com/trebuchet-org/mkt/internal/domain/config"
	"github.com/trebuchet-org/mkt/internal/domain/models"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

// foundryOutDir is scanned next to the configured Hardhat artifacts directory
const foundryOutDir = "out"

const maxSuggestions = 3

// Repository indexes compiled contract artifacts from disk
type Repository struct {
	projectRoot string
	dirs        []string
	contracts   map[string]*models.Contract   // key: "sourceName:Name"
	byName      map[string][]*models.Contract // key: contract name
	log         *slog.Logger
	mu          sync.RWMutex
	indexed     bool
}

// NewRepository creates a repository over the project's artifact directories
func NewRepository(cfg *config.RuntimeConfig, log *slog.Logger) *Repository {
	artifacts := cfg.Project.Paths.Artifacts
	if artifacts == "" {
		artifacts = config.DefaultArtifactsPath
	}
	if !filepath.IsAbs(artifacts) {
		artifacts = filepath.Join(cfg.ProjectRoot, artifacts)
	}
	return &Repository{
		projectRoot: cfg.ProjectRoot,
		dirs:        lo.Uniq([]string{artifacts, filepath.Join(cfg.ProjectRoot, foundryOutDir)}),
		log:         log.With("component", "artifacts"),
	}
}

// Index walks the artifact directories once
func (r *Repository) Index() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexed {
		return nil
	}
	r.contracts = make(map[string]*models.Contract)
	r.byName = make(map[string][]*models.Contract)

	for _, dir := range r.dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			continue
		}
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if d.Name() == "build-info" {
					return filepath.SkipDir
				}
				return nil
			}
			if filepath.Ext(path) != ".json" || strings.HasSuffix(path, ".dbg.json") {
				return nil
			}
			return r.processArtifact(path)
		})
		if err != nil {
			return fmt.Errorf("failed to index artifacts in %s: %w", dir, err)
		}
	}

	r.indexed = true
	r.log.Debug("indexed artifacts", "contracts", len(r.contracts))
	return nil
}

func (r *Repository) processArtifact(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var artifact models.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil || len(artifact.ABI) == 0 {
		// not an artifact (cache files, hardhat metadata)
		return nil
	}

	name, source := artifact.ContractName, artifact.SourceName
	if (name == "" || source == "") && artifact.Metadata != nil {
		for s, n := range artifact.Metadata.Settings.CompilationTarget {
			source, name = s, n
		}
	}
	if name == "" || source == "" {
		return nil
	}

	rel, _ := filepath.Rel(r.projectRoot, path)
	contract := &models.Contract{
		Name:         name,
		SourceName:   source,
		ArtifactPath: rel,
		Artifact:     &artifact,
		BuildInfo:    r.debugBuildInfo(path),
	}

	key := contract.FullyQualifiedName()
	if _, exists := r.contracts[key]; exists {
		// Hardhat and Foundry output for the same source; first directory wins
		return nil
	}
	r.contracts[key] = contract
	r.byName[name] = append(r.byName[name], contract)
	return nil
}

// debugBuildInfo follows a Hardhat <Name>.dbg.json to its build-info file
func (r *Repository) debugBuildInfo(artifactPath string) string {
	dbgPath := strings.TrimSuffix(artifactPath, ".json") + ".dbg.json"
	data, err := os.ReadFile(dbgPath)
	if err != nil {
		return ""
	}
	var dbg models.DebugFile
	if err := json.Unmarshal(data, &dbg); err != nil || dbg.BuildInfo == "" {
		r.log.Debug("ignoring malformed debug file", "path", dbgPath)
		return ""
	}
	return filepath.Join(filepath.Dir(dbgPath), dbg.BuildInfo)
}

// GetContract finds a contract by name or "sourceName:Name"
func (r *Repository) GetContract(ctx context.Context, name string) (*models.Contract, error) {
	if err := r.Index(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if strings.Contains(name, ":") {
		if contract, ok := r.contracts[name]; ok {
			return contract, nil
		}
		return nil, domain.ContractNotFoundErr{Name: name, Suggestions: r.suggest(name[strings.LastIndex(name, ":")+1:])}
	}

	matches := r.byName[name]
	switch len(matches) {
	case 0:
		return nil, domain.ContractNotFoundErr{Name: name, Suggestions: r.suggest(name)}
	case 1:
		return matches[0], nil
	default:
		fqns := lo.Map(matches, func(c *models.Contract, _ int) string { return c.FullyQualifiedName() })
		sort.Strings(fqns)
		return nil, domain.AmbiguousContractErr{Name: name, Matches: fqns}
	}
}

func (r *Repository) suggest(name string) []string {
	names := lo.Keys(r.byName)
	sort.Strings(names)
	matches := fuzzy.Find(name, names)
	return lo.Map(lo.Slice(matches, 0, maxSuggestions), func(m fuzzy.Match, _ int) string { return m.Str })
}

// ListContracts returns every indexed contract sorted by fully qualified name
func (r *Repository) ListContracts(ctx context.Context) ([]*models.Contract, error) {
	if err := r.Index(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	contracts := lo.Values(r.contracts)
	sort.Slice(contracts, func(i, j int) bool {
		return contracts[i].FullyQualifiedName() < contracts[j].FullyQualifiedName()
	})
	return contracts, nil
}

// GetBuildInfo loads the compiler input the contract was built from. Hardhat
// artifacts point at it through their debug file; for Foundry output the
// build-info directory is searched for the contract's source.
func (r *Repository) GetBuildInfo(ctx context.Context, contract *models.Contract) (*models.BuildInfo, error) {
	if contract.BuildInfo != "" {
		return readBuildInfo(contract.BuildInfo)
	}

	for _, dir := range r.dirs {
		files, _ := filepath.Glob(filepath.Join(dir, "build-info", "*.json"))
		for _, file := range files {
			info, err := readBuildInfo(file)
			if err != nil {
				r.log.Debug("skipping build info", "path", file, "error", err)
				continue
			}
			if info.HasSource(contract.SourceName) {
				return info, nil
			}
		}
	}
	return nil, fmt.Errorf("no build info for %s: %w", contract.FullyQualifiedName(), domain.ErrNotFound)
}

func readBuildInfo(path string) (*models.BuildInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read build info: %w", err)
	}
	var info models.BuildInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to parse build info %s: %w", path, err)
	}
	if len(info.Input) == 0 {
		return nil, fmt.Errorf("build info %s has no compiler input", path)
	}
	return &info, nil
}

var _ usecase.ContractRepository = (*Repository)(nil)
