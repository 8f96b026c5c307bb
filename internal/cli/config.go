package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/mkt/internal/cli/render"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective project configuration",
		Long: `Show the compiler, network and Etherscan settings loaded from mkt.toml and
the environment, with built-in defaults applied. Secrets are masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowConfig.Run(cmd.Context())
			if err != nil {
				return err
			}
			return render.NewConfigRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	return cmd
}
