package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/mkt/internal/cli/render"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

// NewVerifyCmd creates the verify command
func NewVerifyCmd() *cobra.Command {
	var params usecase.VerifyDeploymentParams

	cmd := &cobra.Command{
		Use:   "verify <address>",
		Short: "Verify a deployed contract on Etherscan",
		Long: `Submit the compiler input of a deployed contract to the Etherscan v2 API and
wait for the result. Contract name and constructor arguments are taken from
the deployment registry when the address was deployed with mkt.

Requires etherscan.api_key in mkt.toml or ETHERSCAN_API_KEY.`,
		Example: `  mkt verify 0x5FbDB2315678afecb367f032d93F642f64180aa3 --network sepolia
  mkt verify 0x1234... --contract NFT --arg tokenName --arg tokenSymbol --network sepolia`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params.Address = args[0]
			result, err := app.VerifyDeployment.Run(cmd.Context(), params)
			if err != nil && (result == nil || result.Verification == nil) {
				return err
			}

			if app.Config.JSON {
				if jsonErr := render.JSON(cmd.OutOrStdout(), result.Verification); jsonErr != nil {
					return jsonErr
				}
			} else if renderErr := render.NewVerifyRenderer(cmd.OutOrStdout()).Render(result); renderErr != nil {
				return renderErr
			}
			return err
		},
	}

	cmd.Flags().StringVar(&params.ContractName, "contract", "", "Contract name (defaults to the registry entry)")
	cmd.Flags().StringArrayVar(&params.Args, "arg", nil, "Constructor argument (repeatable)")
	return cmd
}
