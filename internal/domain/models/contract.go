package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Contract represents a compiled contract discovered in the artifacts directory
type Contract struct {
	Name         string    `json:"name"`
	SourceName   string    `json:"sourceName"` // e.g., "contracts/Marketplace.sol"
	ArtifactPath string    `json:"artifactPath,omitempty"`
	BuildInfo    string    `json:"buildInfo,omitempty"` // Path to the build-info file when known
	Artifact     *Artifact `json:"artifact,omitempty"`
}

// FullyQualifiedName returns "sourceName:Name"
func (c *Contract) FullyQualifiedName() string {
	return fmt.Sprintf("%s:%s", c.SourceName, c.Name)
}

// ParseABI parses the contract ABI
func (c *Contract) ParseABI() (*abi.ABI, error) {
	if c.Artifact == nil || len(c.Artifact.ABI) == 0 {
		return nil, fmt.Errorf("contract %s has no ABI", c.Name)
	}
	parsed, err := abi.JSON(bytes.NewReader(c.Artifact.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI of %s: %w", c.Name, err)
	}
	return &parsed, nil
}

// CreationCode decodes the creation bytecode. Contracts with unlinked
// libraries or without bytecode (interfaces, abstract contracts) are rejected.
func (c *Contract) CreationCode() ([]byte, error) {
	if c.Artifact == nil {
		return nil, fmt.Errorf("contract %s has no artifact", c.Name)
	}
	code := string(c.Artifact.Bytecode)
	if code == "" || code == "0x" {
		return nil, fmt.Errorf("contract %s has no creation bytecode (abstract or interface?)", c.Name)
	}
	if strings.Contains(code, "__") {
		return nil, fmt.Errorf("contract %s has unlinked library references", c.Name)
	}
	if !strings.HasPrefix(code, "0x") {
		code = "0x" + code
	}
	decoded, err := hexutil.Decode(code)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode for %s: %w", c.Name, err)
	}
	return decoded, nil
}

// Bytecode holds hex bytecode. Hardhat artifacts store it as a plain string,
// Foundry artifacts as {"object": "0x..."}.
type Bytecode string

// UnmarshalJSON accepts both artifact shapes
func (b *Bytecode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = Bytecode(s)
		return nil
	}
	var obj struct {
		Object string `json:"object"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("bytecode must be a string or an object: %w", err)
	}
	*b = Bytecode(obj.Object)
	return nil
}

// Artifact represents a Hardhat or Foundry compilation artifact
type Artifact struct {
	Format           string            `json:"_format,omitempty"`
	ContractName     string            `json:"contractName,omitempty"`
	SourceName       string            `json:"sourceName,omitempty"`
	ABI              json.RawMessage   `json:"abi"`
	Bytecode         Bytecode          `json:"bytecode"`
	DeployedBytecode Bytecode          `json:"deployedBytecode"`
	Metadata         *ArtifactMetadata `json:"metadata,omitempty"`
}

// ArtifactMetadata is the metadata section emitted by Foundry
type ArtifactMetadata struct {
	Compiler struct {
		Version string `json:"version"`
	} `json:"compiler"`
	Settings struct {
		CompilationTarget map[string]string `json:"compilationTarget"`
	} `json:"settings"`
}

// DebugFile is the Hardhat <Name>.dbg.json companion of an artifact
type DebugFile struct {
	Format    string `json:"_format"`
	BuildInfo string `json:"buildInfo"`
}

// BuildInfo is a Hardhat build-info file
type BuildInfo struct {
	ID              string          `json:"id"`
	SolcVersion     string          `json:"solcVersion"`
	SolcLongVersion string          `json:"solcLongVersion"`
	Input           json.RawMessage `json:"input"`
}

// HasSource reports whether the compiler input includes the given source file
func (b *BuildInfo) HasSource(sourceName string) bool {
	var input struct {
		Sources map[string]json.RawMessage `json:"sources"`
	}
	if err := json.Unmarshal(b.Input, &input); err != nil {
		return false
	}
	_, ok := input.Sources[sourceName]
	return ok
}
