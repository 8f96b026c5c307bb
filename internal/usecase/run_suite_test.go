package usecase_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/mkt/internal/adapters/scenario"
	"github.com/trebuchet-org/mkt/internal/domain"
	"github.com/trebuchet-org/mkt/internal/domain/bindings"
	"github.com/trebuchet-org/mkt/internal/domain/config"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

func newRunSuite(loader usecase.ScenarioLoader, chain *fakeChain, networks fakeNetworks) *usecase.RunSuite {
	return usecase.NewRunSuite(
		&config.RuntimeConfig{NetworkName: "hardhat"},
		networks,
		chain,
		keySigners{},
		newFakeContracts(),
		loader,
		usecase.NopProgress{},
		quietLogger(),
	)
}

// expectedOutcomes answers every call the way the scenario says the contracts behave
func expectedOutcomes(s *domain.Scenario) func(sentCall) error {
	var outcomes []error
	for _, step := range s.Steps {
		for range step.Setup {
			outcomes = append(outcomes, nil)
		}
		if step.Expect.Reverts {
			outcomes = append(outcomes, &domain.RevertError{Reason: step.Expect.Reason})
		} else {
			outcomes = append(outcomes, nil)
		}
	}
	next := 0
	return func(sentCall) error {
		err := outcomes[next]
		next++
		return err
	}
}

func TestRunSuiteBuiltinScenario(t *testing.T) {
	ctx := t.Context()
	builtin, err := scenario.NewFileLoader().Load(ctx, "")
	require.NoError(t, err)

	chain := newFakeChain(config.LocalChainID)
	chain.respond = expectedOutcomes(builtin)

	result, err := newRunSuite(staticLoader{builtin}, chain, localNetworks()).Run(ctx, usecase.RunSuiteParams{})
	require.NoError(t, err)

	summary := result.Summary()
	assert.True(t, result.OK())
	assert.Equal(t, len(builtin.Steps), summary.Passed)
	assert.Equal(t, "hardhat", result.Network)
	assert.Equal(t, uint64(config.LocalChainID), result.ChainID)
	assert.True(t, chain.closed)

	t.Run("fixtures are deployed by the owner in order", func(t *testing.T) {
		require.Len(t, result.Fixtures, 3)
		assert.Equal(t, domain.ContractNFT, result.Fixtures[0].Contract)
		assert.Equal(t, domain.ContractMarketplace, result.Fixtures[1].Contract)
		assert.Equal(t, domain.ContractDeployment, result.Fixtures[2].Contract)
		for _, d := range chain.deployments {
			assert.Equal(t, devAddress(0), d.From)
		}

		ctor, err := bindings.NewNFT().ABI().Constructor.Inputs.Unpack(chain.deployments[0].Args)
		require.NoError(t, err)
		assert.Equal(t, []any{"tokenName", "tokenSymbol"}, ctor)
	})

	t.Run("references resolve to fixture and signer addresses", func(t *testing.T) {
		calls := chain.sent()
		nft := result.Fixtures[0].Address
		marketplace := result.Fixtures[1].Address

		assert.Equal(t, "createToken", calls[0].Method)
		assert.Equal(t, "addCollection", calls[1].Method)
		assert.Equal(t, nft, calls[1].Args[0])
		assert.Equal(t, marketplace, calls[1].To)

		assert.Equal(t, "safeMint", calls[3].Method)
		assert.Equal(t, []any{"URI", devAddress(0)}, calls[3].Args)
	})

	t.Run("roles and values are applied", func(t *testing.T) {
		var buy *sentCall
		for _, c := range chain.sent() {
			if c.Method == "buyItem" {
				buy = &c
				break
			}
		}
		require.NotNil(t, buy)
		assert.Equal(t, devAddress(1), buy.From)
		assert.Equal(t, big.NewInt(1), buy.Value)
		assert.Equal(t, big.NewInt(1), buy.Args[0])
	})

	t.Run("every step reports what it observed", func(t *testing.T) {
		for _, step := range result.Steps {
			assert.Equal(t, domain.StepPassed, step.Status, step.Name)
			assert.NotEmpty(t, step.Actual)
		}
		assert.Equal(t, `reverted with "Collection already exists"`, result.Steps[2].Actual)
	})
}

func offerScenario() *domain.Scenario {
	return &domain.Scenario{
		Name: "offers",
		Fixtures: []domain.Fixture{
			{Contract: domain.ContractMarketplace, Artifact: "Marketplace"},
			{Contract: domain.ContractNFT, Artifact: "NFT", Args: []any{"tokenName", "tokenSymbol"}},
		},
		Steps: []domain.Step{
			{
				Name:   "adds the collection",
				Call:   domain.Call{Contract: domain.ContractMarketplace, Method: "addCollection", Args: []any{"$nft"}},
				Expect: domain.ExpectOK(),
			},
			{
				Name:   "rejects a self offer",
				Call:   domain.Call{Contract: domain.ContractMarketplace, Method: "makeOffer", Args: []any{1}, Value: domain.NewWei(3)},
				Expect: domain.ExpectRevert("You cannot send offers to your self"),
			},
			{
				Name: "accepts the offer",
				Setup: []domain.Call{
					{Contract: domain.ContractMarketplace, Method: "makeOffer", Args: []any{1}, Value: domain.NewWei(3), From: domain.RoleAddr1},
				},
				Call:   domain.Call{Contract: domain.ContractMarketplace, Method: "acceptOffer", Args: []any{1, 1}},
				Expect: domain.ExpectOK(),
			},
			{
				Name:   "withdraws fees",
				Call:   domain.Call{Contract: domain.ContractMarketplace, Method: "withdrawFees"},
				Expect: domain.ExpectOK(),
			},
		},
	}
}

func TestRunSuiteVerdicts(t *testing.T) {
	errNode := errors.New("connection reset")

	tests := []struct {
		name     string
		respond  func(sentCall) error
		params   usecase.RunSuiteParams
		statuses []domain.StepStatus
	}{
		{
			name:    "all expectations met",
			respond: func(c sentCall) error { return selfOfferRevert(c) },
			statuses: []domain.StepStatus{
				domain.StepPassed, domain.StepPassed, domain.StepPassed, domain.StepPassed,
			},
		},
		{
			name:    "unexpected success fails the step and the run continues",
			respond: func(sentCall) error { return nil },
			statuses: []domain.StepStatus{
				domain.StepPassed, domain.StepFailed, domain.StepPassed, domain.StepPassed,
			},
		},
		{
			name: "wrong revert reason fails the step",
			respond: func(c sentCall) error {
				if c.Method == "makeOffer" && c.From == devAddress(0) {
					return &domain.RevertError{Reason: "Item doesn't exist"}
				}
				return nil
			},
			statuses: []domain.StepStatus{
				domain.StepPassed, domain.StepFailed, domain.StepPassed, domain.StepPassed,
			},
		},
		{
			name: "unexpected revert fails the step",
			respond: func(c sentCall) error {
				if c.Method == "withdrawFees" {
					return &domain.RevertError{Reason: "Ownable: caller is not the owner"}
				}
				return selfOfferRevert(c)
			},
			statuses: []domain.StepStatus{
				domain.StepPassed, domain.StepPassed, domain.StepPassed, domain.StepFailed,
			},
		},
		{
			name: "reverting setup call errors the step",
			respond: func(c sentCall) error {
				if c.Method == "makeOffer" {
					return &domain.RevertError{Reason: "Item doesn't exist"}
				}
				return nil
			},
			statuses: []domain.StepStatus{
				domain.StepPassed, domain.StepFailed, domain.StepErrored, domain.StepPassed,
			},
		},
		{
			name: "transport failure errors the step",
			respond: func(c sentCall) error {
				if c.Method == "acceptOffer" {
					return errNode
				}
				return selfOfferRevert(c)
			},
			statuses: []domain.StepStatus{
				domain.StepPassed, domain.StepPassed, domain.StepErrored, domain.StepPassed,
			},
		},
		{
			name:    "bail skips the remaining steps",
			respond: func(sentCall) error { return nil },
			params:  usecase.RunSuiteParams{Bail: true},
			statuses: []domain.StepStatus{
				domain.StepPassed, domain.StepFailed, domain.StepSkipped, domain.StepSkipped,
			},
		},
		{
			name:    "grep only runs matching steps",
			respond: selfOfferRevert,
			params:  usecase.RunSuiteParams{Grep: "offer"},
			statuses: []domain.StepStatus{
				domain.StepSkipped, domain.StepPassed, domain.StepPassed, domain.StepSkipped,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := newFakeChain(config.LocalChainID)
			chain.respond = tt.respond

			result, err := newRunSuite(staticLoader{offerScenario()}, chain, localNetworks()).Run(t.Context(), tt.params)
			require.NoError(t, err)

			statuses := make([]domain.StepStatus, len(result.Steps))
			for i, step := range result.Steps {
				statuses[i] = step.Status
				assert.Equal(t, i+1, step.Index)
			}
			assert.Equal(t, tt.statuses, statuses)
		})
	}
}

func selfOfferRevert(c sentCall) error {
	if c.Method == "makeOffer" && c.From == devAddress(0) {
		return &domain.RevertError{Reason: "You cannot send offers to your self"}
	}
	return nil
}

func TestRunSuiteStepDetails(t *testing.T) {
	chain := newFakeChain(config.LocalChainID)
	chain.respond = func(c sentCall) error {
		if c.Method == "acceptOffer" {
			return errors.New("connection reset")
		}
		return nil
	}

	result, err := newRunSuite(staticLoader{offerScenario()}, chain, localNetworks()).Run(t.Context(), usecase.RunSuiteParams{})
	require.NoError(t, err)
	assert.False(t, result.OK())

	failed := result.Steps[1]
	assert.Equal(t, `reverted with "You cannot send offers to your self"`, failed.Expected)
	assert.Equal(t, "succeeded", failed.Actual)
	assert.Contains(t, failed.Message, "didn't revert")
	assert.Contains(t, failed.Call, "makeOffer(1)")

	errored := result.Steps[2]
	assert.EqualError(t, errored.Err, "connection reset")

	summary := result.Summary()
	assert.Equal(t, domain.SuiteSummary{Passed: 2, Failed: 1, Errored: 1}, summary)
}

func TestRunSuiteSetupErrors(t *testing.T) {
	t.Run("not enough accounts", func(t *testing.T) {
		networks := localNetworks()
		networks["hardhat"].Accounts = config.DevAccounts[:2]

		_, err := newRunSuite(staticLoader{offerScenario()}, newFakeChain(config.LocalChainID), networks).
			Run(t.Context(), usecase.RunSuiteParams{})
		assert.ErrorIs(t, err, domain.ErrNotEnoughAccounts)
	})

	t.Run("chain id mismatch", func(t *testing.T) {
		_, err := newRunSuite(staticLoader{offerScenario()}, newFakeChain(1), localNetworks()).
			Run(t.Context(), usecase.RunSuiteParams{})
		assert.ErrorIs(t, err, domain.ErrNetworkMismatch)
	})

	t.Run("unknown network", func(t *testing.T) {
		_, err := newRunSuite(staticLoader{offerScenario()}, newFakeChain(1), localNetworks()).
			Run(t.Context(), usecase.RunSuiteParams{Network: "mainnet"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("invalid grep", func(t *testing.T) {
		_, err := newRunSuite(staticLoader{offerScenario()}, newFakeChain(config.LocalChainID), localNetworks()).
			Run(t.Context(), usecase.RunSuiteParams{Grep: "("})
		assert.ErrorContains(t, err, "invalid --grep pattern")
	})

	t.Run("fixture failure aborts the run", func(t *testing.T) {
		chain := newFakeChain(config.LocalChainID)
		chain.deployErr = errors.New("insufficient funds for gas")

		result, err := newRunSuite(staticLoader{offerScenario()}, chain, localNetworks()).
			Run(t.Context(), usecase.RunSuiteParams{})
		require.Error(t, err)
		assert.ErrorContains(t, err, "fixture marketplace")
		assert.Empty(t, result.Steps)
		assert.Empty(t, chain.sent())
	})

	t.Run("missing artifact aborts the run", func(t *testing.T) {
		s := offerScenario()
		s.Fixtures[0].Artifact = "Market"

		_, err := newRunSuite(staticLoader{s}, newFakeChain(config.LocalChainID), localNetworks()).
			Run(t.Context(), usecase.RunSuiteParams{})
		assert.ErrorIs(t, err, domain.ErrContractNotFound)
	})
}

func TestRunSuiteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	chain := newFakeChain(config.LocalChainID)
	chain.respond = func(sentCall) error {
		cancel()
		return nil
	}

	result, err := newRunSuite(staticLoader{offerScenario()}, chain, localNetworks()).Run(ctx, usecase.RunSuiteParams{})
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, result.Steps, 1)
	assert.Equal(t, domain.StepPassed, result.Steps[0].Status)
}
