package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/mkt/internal/domain/models"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

// DeploymentsRenderer renders the deployment registry grouped by network
type DeploymentsRenderer struct {
	out   io.Writer
	color bool
}

// NewDeploymentsRenderer creates a new deployments renderer
func NewDeploymentsRenderer(out io.Writer, color bool) *DeploymentsRenderer {
	return &DeploymentsRenderer{
		out:   out,
		color: color,
	}
}

// Render renders one table per chain
func (r *DeploymentsRenderer) Render(result *usecase.DeploymentListResult) error {
	if len(result.Deployments) == 0 {
		fmt.Fprintln(r.out, "No deployments found")
		return nil
	}

	byChain := lo.GroupBy(result.Deployments, func(d *models.Deployment) uint64 { return d.ChainID })
	chainIDs := lo.Keys(byChain)
	sort.Slice(chainIDs, func(i, j int) bool { return chainIDs[i] < chainIDs[j] })

	for i, chainID := range chainIDs {
		deployments := byChain[chainID]
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		fmt.Fprintln(r.out, sectionHeaderStyle.Sprintf("%s (chain %d)", deployments[0].Network, chainID))

		t := newTable(table.Row{"Contract", "Address", "Verified", "Block", "Deployed"})
		for _, d := range deployments {
			t.AppendRow(table.Row{
				d.ContractName,
				addressStyle.Sprint(d.Address),
				verificationCell(d.Verification.Status),
				d.Transaction.BlockNumber,
				faintStyle.Sprint(d.CreatedAt.Local().Format("2006-01-02 15:04:05")),
			})
		}
		fmt.Fprintln(r.out, t.Render())
	}

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Total: %d deployments, %d verified\n", result.Summary.Total, result.Summary.Verified)
	return nil
}

func verificationCell(status models.VerificationStatus) string {
	switch status {
	case models.VerificationStatusVerified:
		return successStyle.Sprint("✓")
	case models.VerificationStatusFailed:
		return failureStyle.Sprint("✗")
	case models.VerificationStatusPending:
		return pendingStyle.Sprint("⏳")
	default:
		return faintStyle.Sprint("-")
	}
}
