package usecase_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/mkt/internal/domain"
	"github.com/trebuchet-org/mkt/internal/domain/models"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

func TestListDeployments(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	deployment := func(network, contract string, age time.Duration, status models.VerificationStatus) *models.Deployment {
		return &models.Deployment{
			Network:      network,
			ContractName: contract,
			CreatedAt:    base.Add(age),
			Verification: models.VerificationInfo{Status: status},
		}
	}

	t.Run("sorts and summarizes", func(t *testing.T) {
		older := deployment("sepolia", "Marketplace", 0, models.VerificationStatusVerified)
		newer := deployment("sepolia", "Marketplace", time.Hour, models.VerificationStatusFailed)
		nft := deployment("sepolia", "NFT", 0, models.VerificationStatusVerified)
		local := deployment("hardhat", "NFT", 0, models.VerificationStatusUnverified)

		repo := new(MockDeploymentRepository)
		repo.On("ListDeployments", mock.Anything, domain.DeploymentFilter{}).
			Return([]*models.Deployment{nft, newer, local, older}, nil)

		result, err := usecase.NewListDeployments(repo, usecase.NopProgress{}).Run(t.Context(), usecase.ListDeploymentsParams{})
		require.NoError(t, err)

		assert.Equal(t, []*models.Deployment{local, older, newer, nft}, result.Deployments)
		assert.Equal(t, usecase.DeploymentSummary{
			Total:      4,
			ByNetwork:  map[string]int{"hardhat": 1, "sepolia": 3},
			ByContract: map[string]int{"Marketplace": 2, "NFT": 2},
			Verified:   2,
		}, result.Summary)
	})

	t.Run("passes filters to the registry", func(t *testing.T) {
		repo := new(MockDeploymentRepository)
		filter := domain.DeploymentFilter{ChainID: 11155111, Network: "sepolia", ContractName: "NFT"}
		repo.On("ListDeployments", mock.Anything, filter).Return([]*models.Deployment{}, nil)

		result, err := usecase.NewListDeployments(repo, usecase.NopProgress{}).Run(t.Context(), usecase.ListDeploymentsParams{
			ChainID:      11155111,
			Network:      "sepolia",
			ContractName: "NFT",
		})
		require.NoError(t, err)
		assert.Empty(t, result.Deployments)
		assert.Zero(t, result.Summary.Total)
		repo.AssertExpectations(t)
	})

	t.Run("registry errors", func(t *testing.T) {
		repo := new(MockDeploymentRepository)
		repo.On("ListDeployments", mock.Anything, mock.Anything).Return(nil, errors.New("corrupt registry"))

		_, err := usecase.NewListDeployments(repo, usecase.NopProgress{}).Run(t.Context(), usecase.ListDeploymentsParams{})
		assert.EqualError(t, err, "corrupt registry")
	})
}
