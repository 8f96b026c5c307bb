package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

// ConfigRenderer renders the effective configuration
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// Render renders the configuration. Secrets are masked.
func (r *ConfigRenderer) Render(result *usecase.ShowConfigResult) error {
	if result.Exists {
		fmt.Fprintf(r.out, "📁 config file: %s\n", getRelativePath(result.ConfigPath))
	} else {
		fmt.Fprintln(r.out, FormatWarning("No mkt.toml found, using defaults"))
	}
	fmt.Fprintf(r.out, "Network:   %s\n", result.Network)
	fmt.Fprintln(r.out)

	project := result.Project
	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("Solidity"))
	fmt.Fprintf(r.out, "  version:   %s\n", project.Solidity.Version)
	fmt.Fprintf(r.out, "  optimizer: %t (%d runs)\n", project.Solidity.Optimizer.Enabled, project.Solidity.Optimizer.Runs)
	fmt.Fprintf(r.out, "  artifacts: %s\n", project.Paths.Artifacts)
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("Networks"))
	names := lo.Keys(project.Networks)
	sort.Strings(names)
	t := newTable(table.Row{"Name", "URL", "Chain", "Accounts"})
	for _, name := range names {
		network := project.Networks[name]
		chain := "auto"
		if network.ChainID != 0 {
			chain = fmt.Sprint(network.ChainID)
		}
		t.AppendRow(table.Row{name, network.URL, chain, len(network.Accounts)})
	}
	fmt.Fprintln(r.out, t.Render())
	fmt.Fprintln(r.out)

	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("Etherscan"))
	fmt.Fprintf(r.out, "  api url: %s\n", project.Etherscan.APIURL)
	fmt.Fprintf(r.out, "  api key: %s\n", MaskSecret(project.Etherscan.APIKey))
	return nil
}

// MaskSecret keeps the first and last four characters of a secret
func MaskSecret(secret string) string {
	switch {
	case secret == "":
		return "(not set)"
	case len(secret) <= 8:
		return strings.Repeat("*", len(secret))
	default:
		return secret[:4] + strings.Repeat("*", len(secret)-8) + secret[len(secret)-4:]
	}
}
