package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/mkt/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out   io.Writer
	color bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, color bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:   out,
		color: color,
	}
}

// Render renders the list of networks. Resolution errors are shown inline.
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured in mkt.toml")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	for _, network := range result.Networks {
		marker := "  "
		if network.Name == result.Current {
			marker = "* "
		}
		switch {
		case network.Error != nil:
			fmt.Fprintf(r.out, "%s❌ %s - Error: %v\n", marker, network.Name, network.Error)
		case network.Simulated:
			fmt.Fprintf(r.out, "%s✅ %s - Chain ID: %d (in-process)\n", marker, network.Name, network.ChainID)
		default:
			fmt.Fprintf(r.out, "%s✅ %s - Chain ID: %d %s\n", marker, network.Name, network.ChainID,
				faintStyle.Sprintf("%s, %d accounts", network.RPCURL, network.Accounts))
		}
	}

	return nil
}
