package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/mkt/internal/cli/render"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

// NewNodeCmd creates the node command for managing a local anvil process
func NewNodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "node",
		Short: "Manage a local anvil node",
		Long: `Manage a local anvil node for running deployments and the scenario against
the localhost network. Requires anvil from Foundry on PATH.`,
	}

	cmd.AddCommand(newNodeOpCmd(usecase.AnvilStart, "Start local anvil node", "Start a local anvil node. Fails if already running."))
	cmd.AddCommand(newNodeOpCmd(usecase.AnvilStop, "Stop local anvil node", "Stop the local anvil node if running."))
	cmd.AddCommand(newNodeOpCmd(usecase.AnvilRestart, "Restart local anvil node", "Stop and start the local anvil node."))
	cmd.AddCommand(newNodeOpCmd(usecase.AnvilStatus, "Show anvil status", "Show status of the local anvil node."))

	return cmd
}

// nodeFlags holds common flags for node commands
type nodeFlags struct {
	name    string
	port    string
	chainID string
}

func newNodeOpCmd(operation, short, long string) *cobra.Command {
	flags := &nodeFlags{}

	cmd := &cobra.Command{
		Use:   operation,
		Short: short,
		Long:  long,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ManageAnvil.Execute(cmd.Context(), usecase.ManageAnvilParams{
				Operation: operation,
				Name:      flags.name,
				Port:      flags.port,
				ChainID:   flags.chainID,
			})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return render.JSON(cmd.OutOrStdout(), result)
			}
			return render.NewAnvilRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVar(&flags.name, "name", "anvil", "Instance name")
	cmd.Flags().StringVar(&flags.port, "port", usecase.DefaultAnvilPort, "RPC port to bind")
	cmd.Flags().StringVar(&flags.chainID, "chain-id", "31337", "Chain ID for the instance")
	return cmd
}
