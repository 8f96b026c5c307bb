package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/mkt/internal/usecase"
)

// DeployRenderer renders a confirmed deployment
type DeployRenderer struct {
	out io.Writer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{out: out}
}

// Render renders the deployment summary
func (r *DeployRenderer) Render(result *usecase.DeployContractResult) error {
	d := result.Deployment
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s deployed to %s", d.ContractName, d.Address)))
	fmt.Fprintf(r.out, "  network:  %s (chain %d)\n", d.Network, d.ChainID)
	fmt.Fprintf(r.out, "  deployer: %s\n", d.Deployer)
	fmt.Fprintf(r.out, "  tx:       %s (block %d, gas %d)\n", d.Transaction.Hash, d.Transaction.BlockNumber, d.Transaction.GasUsed)
	if result.Recorded {
		fmt.Fprintf(r.out, "  %s\n", faintStyle.Sprintf("recorded as %s", d.ID))
	}
	return nil
}
