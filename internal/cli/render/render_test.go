package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/mkt/internal/domain"
	"github.com/trebuchet-org/mkt/internal/domain/models"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		secret string
		want   string
	}{
		{"", "(not set)"},
		{"abc", "***"},
		{"12345678", "********"},
		{"ABCD1234567890WXYZ", "ABCD**********WXYZ"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskSecret(tt.secret), tt.secret)
	}
}

func TestSuiteRenderer(t *testing.T) {
	noColor(t)

	result := &domain.SuiteResult{
		Scenario: "marketplace",
		Network:  "hardhat",
		ChainID:  31337,
		Fixtures: []domain.FixtureResult{
			{Contract: domain.ContractMarketplace, Address: common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")},
		},
		Steps: []domain.StepResult{
			{Index: 1, Name: "adds the collection", Status: domain.StepPassed, TxHash: common.HexToHash("0xabc")},
			{
				Index:    2,
				Name:     "rejects a duplicate collection",
				Status:   domain.StepFailed,
				Call:     "owner → marketplace.addCollection(0x5F)",
				Expected: `reverted with "Collection already exists"`,
				Actual:   "succeeded",
				Message:  `Expected transaction to be reverted with "Collection already exists", but it didn't revert`,
			},
			{Index: 3, Name: "accepts the offer", Status: domain.StepErrored, Err: errors.New("connection reset")},
			{Index: 4, Name: "withdraws fees", Status: domain.StepSkipped},
		},
		Duration: 1500 * time.Millisecond,
	}

	var buf bytes.Buffer
	require.NoError(t, NewSuiteRenderer(&buf, true).Render(result))
	out := buf.String()

	assert.Contains(t, out, "marketplace on hardhat (chain 31337)")
	assert.Contains(t, out, "0x5FbDB2315678afecb367f032d93F642f64180aa3")
	assert.Contains(t, out, "✓ 1) adds the collection")
	assert.Contains(t, out, "✗ 2) rejects a duplicate collection")
	assert.Contains(t, out, `expected: reverted with "Collection already exists"`)
	assert.Contains(t, out, "actual:   succeeded")
	assert.Contains(t, out, "error:    connection reset")
	assert.Contains(t, out, "- 4) withdraws fees")
	assert.Contains(t, out, "tx "+common.HexToHash("0xabc").Hex())
	assert.Contains(t, out, "1 passing (1.5s)")
	assert.Contains(t, out, "1 failing")
	assert.Contains(t, out, "1 errored")
	assert.Contains(t, out, "1 skipped")

	t.Run("quiet mode hides transaction hashes", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewSuiteRenderer(&buf, false).Render(result))
		assert.NotContains(t, buf.String(), "tx 0x")
	})
}

func TestDeploymentsRenderer(t *testing.T) {
	noColor(t)

	t.Run("empty registry", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewDeploymentsRenderer(&buf, false).Render(&usecase.DeploymentListResult{}))
		assert.Equal(t, "No deployments found\n", buf.String())
	})

	t.Run("one table per chain", func(t *testing.T) {
		result := &usecase.DeploymentListResult{
			Deployments: []*models.Deployment{
				{
					ChainID:      11155111,
					Network:      "sepolia",
					ContractName: "Marketplace",
					Address:      "0x5FbDB2315678afecb367f032d93F642f64180aa3",
					Verification: models.VerificationInfo{Status: models.VerificationStatusVerified},
				},
				{
					ChainID:      31337,
					Network:      "hardhat",
					ContractName: "NFT",
					Address:      "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512",
				},
			},
			Summary: usecase.DeploymentSummary{Total: 2, Verified: 1},
		}

		var buf bytes.Buffer
		require.NoError(t, NewDeploymentsRenderer(&buf, false).Render(result))
		out := buf.String()

		hardhat := strings.Index(out, "hardhat (chain 31337)")
		sepolia := strings.Index(out, "sepolia (chain 11155111)")
		require.NotEqual(t, -1, hardhat)
		require.NotEqual(t, -1, sepolia)
		assert.Less(t, hardhat, sepolia)
		assert.Contains(t, out, "CONTRACT")
		assert.Contains(t, out, "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
		assert.Contains(t, out, "Total: 2 deployments, 1 verified")
	})
}

func TestNetworksRenderer(t *testing.T) {
	noColor(t)

	result := &usecase.ListNetworksResult{
		Current: "hardhat",
		Networks: []usecase.NetworkStatus{
			{Name: "hardhat", ChainID: 31337, RPCURL: "http://127.0.0.1:8545", Accounts: 5},
			{Name: "simulated", ChainID: 1337, Simulated: true},
			{Name: "sepolia", Error: errors.New("SEPOLIA_RPC_URL is not set")},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewNetworksRenderer(&buf, false).Render(result))
	out := buf.String()

	assert.Contains(t, out, "* ✅ hardhat - Chain ID: 31337 http://127.0.0.1:8545, 5 accounts")
	assert.Contains(t, out, "  ✅ simulated - Chain ID: 1337 (in-process)")
	assert.Contains(t, out, "  ❌ sepolia - Error: SEPOLIA_RPC_URL is not set")
}

func TestVerificationCell(t *testing.T) {
	noColor(t)

	assert.Equal(t, "✓", verificationCell(models.VerificationStatusVerified))
	assert.Equal(t, "✗", verificationCell(models.VerificationStatusFailed))
	assert.Equal(t, "-", verificationCell(models.VerificationStatusUnverified))
}
