package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/mkt/internal/cli/render"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List available networks from mkt.toml",
		Long: `List the built-in networks and those configured in the [networks] section of
mkt.toml. Chain IDs not set in the config are fetched from the RPC endpoint.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context())
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result)
			}
			return render.NewNetworksRenderer(cmd.OutOrStdout(), !app.Config.NonInteractive).Render(result)
		},
	}

	return cmd
}
