package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/mkt/internal/domain/models"
	"github.com/trebuchet-org/mkt/internal/usecase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// VerifyRenderer handles rendering of verification results
type VerifyRenderer struct {
	out io.Writer
}

// NewVerifyRenderer creates a new verify renderer
func NewVerifyRenderer(out io.Writer) *VerifyRenderer {
	return &VerifyRenderer{out: out}
}

// Render renders the verification outcome for one address
func (r *VerifyRenderer) Render(result *usecase.VerifyDeploymentResult) error {
	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "%s at %s on %s\n",
		result.ContractName, result.Address.Hex(), result.Network.Name)

	info := result.Verification
	status := cases.Title(language.English).String(strings.ToLower(string(info.Status)))
	switch info.Status {
	case models.VerificationStatusVerified:
		color.New(color.FgGreen).Fprintf(r.out, "  Etherscan: ✓ %s\n", status)
	case models.VerificationStatusFailed:
		color.New(color.FgRed).Fprintf(r.out, "  Etherscan: ✗ %s\n", status)
		if info.Reason != "" {
			fmt.Fprintf(r.out, "    %s\n", info.Reason)
		}
	default:
		color.New(color.FgYellow).Fprintf(r.out, "  Etherscan: ⏳ %s\n", status)
		if info.GUID != "" {
			fmt.Fprintf(r.out, "    guid: %s\n", info.GUID)
		}
	}

	if info.EtherscanURL != "" {
		fmt.Fprintf(r.out, "  %s\n", faintStyle.Sprint(info.EtherscanURL))
	}
	if result.Deployment == nil {
		fmt.Fprintln(r.out, faintStyle.Sprint("  (address not in the local registry)"))
	}
	return nil
}
