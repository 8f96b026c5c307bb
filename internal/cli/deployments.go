package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/mkt/internal/cli/render"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

// NewDeploymentsCmd creates the deployments command
func NewDeploymentsCmd() *cobra.Command {
	var contractName string

	cmd := &cobra.Command{
		Use:     "deployments",
		Aliases: []string{"ls"},
		Short:   "List recorded deployments",
		Long: `List deployments recorded in .mkt/deployments.json.

Deployments on every network are listed unless --network is given.`,
		Example: `  mkt deployments
  mkt deployments --contract Marketplace --network sepolia`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListDeploymentsParams{ContractName: contractName}
			if cmd.Flags().Changed("network") {
				params.Network = app.Config.NetworkName
			}

			result, err := app.ListDeployments.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result.Deployments)
			}
			return render.NewDeploymentsRenderer(cmd.OutOrStdout(), !app.Config.NonInteractive).Render(result)
		},
	}

	cmd.Flags().StringVar(&contractName, "contract", "", "Filter by contract name")
	return cmd
}
