package usecase

import (
	"context"
	"sort"

	"github.com/trebuchet-org/mkt/internal/domain"
	"github.com/trebuchet-org/mkt/internal/domain/models"
)

// ListDeploymentsParams contains parameters for listing deployments
type ListDeploymentsParams struct {
	ContractName string
	Network      string
	ChainID      uint64
}

// DeploymentListResult contains the result of listing deployments
type DeploymentListResult struct {
	Deployments []*models.Deployment
	Summary     DeploymentSummary
}

// DeploymentSummary contains summary statistics for deployments
type DeploymentSummary struct {
	Total      int
	ByNetwork  map[string]int
	ByContract map[string]int
	Verified   int
}

// ListDeployments is the use case for listing deployments
type ListDeployments struct {
	repository DeploymentRepository
	sink       ProgressSink
}

// NewListDeployments creates a new ListDeployments use case
func NewListDeployments(repository DeploymentRepository, sink ProgressSink) *ListDeployments {
	return &ListDeployments{
		repository: repository,
		sink:       sink,
	}
}

// Run executes the list deployments use case
func (uc *ListDeployments) Run(ctx context.Context, params ListDeploymentsParams) (*DeploymentListResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading deployments from registry",
		Spinner: true,
	})

	deployments, err := uc.repository.ListDeployments(ctx, domain.DeploymentFilter{
		ChainID:      params.ChainID,
		Network:      params.Network,
		ContractName: params.ContractName,
	})
	if err != nil {
		return nil, err
	}

	sortDeployments(deployments)

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Current: len(deployments),
		Total:   len(deployments),
		Message: "Deployments loaded",
	})

	return &DeploymentListResult{
		Deployments: deployments,
		Summary:     calculateSummary(deployments),
	}, nil
}

// sortDeployments sorts deployments by network, contract name and creation time
func sortDeployments(deployments []*models.Deployment) {
	sort.SliceStable(deployments, func(i, j int) bool {
		a, b := deployments[i], deployments[j]
		if a.Network != b.Network {
			return a.Network < b.Network
		}
		if a.ContractName != b.ContractName {
			return a.ContractName < b.ContractName
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
}

// calculateSummary calculates summary statistics for deployments
func calculateSummary(deployments []*models.Deployment) DeploymentSummary {
	summary := DeploymentSummary{
		Total:      len(deployments),
		ByNetwork:  make(map[string]int),
		ByContract: make(map[string]int),
	}

	for _, dep := range deployments {
		summary.ByNetwork[dep.Network]++
		summary.ByContract[dep.ContractName]++
		if dep.Verification.Status == models.VerificationStatusVerified {
			summary.Verified++
		}
	}

	return summary
}
