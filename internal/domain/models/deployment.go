package models

import (
	"fmt"
	"time"
)

// VerificationStatus represents the verification status
type VerificationStatus string

const (
	VerificationStatusUnverified VerificationStatus = "UNVERIFIED"
	VerificationStatusPending    VerificationStatus = "PENDING"
	VerificationStatusVerified   VerificationStatus = "VERIFIED"
	VerificationStatusFailed     VerificationStatus = "FAILED"
)

// Deployment represents a contract deployment record
type Deployment struct {
	// Core identification
	ID           string `json:"id"` // e.g., "31337/Marketplace/0x5FbD..."
	ChainID      uint64 `json:"chainId"`
	Network      string `json:"network"`
	ContractName string `json:"contractName"` // e.g., "Marketplace"
	Address      string `json:"address"`
	Deployer     string `json:"deployer"`

	// Transaction details
	Transaction DeploymentTx `json:"transaction"`

	// Contract artifact information
	Artifact ArtifactInfo `json:"artifact"`

	// Verification information
	Verification VerificationInfo `json:"verification"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DeploymentTx is the creation transaction of a deployment
type DeploymentTx struct {
	Hash            string `json:"hash"`
	BlockNumber     uint64 `json:"blockNumber"`
	GasUsed         uint64 `json:"gasUsed"`
	ConstructorArgs string `json:"constructorArgs,omitempty"` // Hex encoded
}

// ArtifactInfo contains contract artifact information
type ArtifactInfo struct {
	Path            string `json:"path"`            // e.g., "contracts/Marketplace.sol:Marketplace"
	CompilerVersion string `json:"compilerVersion"` // e.g., "0.8.1"
	BytecodeHash    string `json:"bytecodeHash"`    // keccak256 of creation bytecode
}

// VerificationInfo contains verification details
type VerificationInfo struct {
	Status       VerificationStatus `json:"status"`
	EtherscanURL string             `json:"etherscanUrl,omitempty"`
	GUID         string             `json:"guid,omitempty"`
	VerifiedAt   *time.Time         `json:"verifiedAt,omitempty"`
	Reason       string             `json:"reason,omitempty"`
}

// MakeDeploymentID builds the registry key for a deployment
func MakeDeploymentID(chainID uint64, contractName, address string) string {
	return fmt.Sprintf("%d/%s/%s", chainID, contractName, address)
}

// ShortAddress returns a 0x1234…abcd form of the deployment address
func (d *Deployment) ShortAddress() string {
	if len(d.Address) < 12 {
		return d.Address
	}
	return d.Address[:6] + "…" + d.Address[len(d.Address)-4:]
}
