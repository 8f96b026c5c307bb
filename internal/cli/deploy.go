package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/mkt/internal/cli/render"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

// deployFlags holds flags shared by the deploy commands
type deployFlags struct {
	privateKey string
	args       []string
}

func addDeployFlags(cmd *cobra.Command, flags *deployFlags) {
	cmd.Flags().StringVar(&flags.privateKey, "private-key", "", "Private key of the deploying account (hex)")
}

// NewDeployCmd creates the generic deploy command
func NewDeployCmd() *cobra.Command {
	flags := &deployFlags{}

	cmd := &cobra.Command{
		Use:   "deploy <contract>",
		Short: "Deploy a compiled contract",
		Long: `Deploy a compiled contract from the project's artifacts and wait until its
code is on chain. Constructor arguments are passed in order with --arg.

Without --private-key, an interactive session prompts for one; otherwise the
network's first configured account is used.`,
		Example: `  # Deploy the NFT collection contract
  mkt deploy NFT --arg tokenName --arg tokenSymbol --network localhost

  # Disambiguate by fully qualified name
  mkt deploy contracts/Marketplace.sol:Marketplace --private-key 0x...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(cmd, args[0], flags)
		},
	}

	addDeployFlags(cmd, flags)
	cmd.Flags().StringArrayVar(&flags.args, "arg", nil, "Constructor argument (repeatable)")
	return cmd
}

// NewDeployMarketplaceCmd creates the deploy-marketplace task
func NewDeployMarketplaceCmd() *cobra.Command {
	return newContractTaskCmd("deploy-marketplace", "Marketplace", "Deploy the Marketplace contract")
}

// NewDeployDeploymentCmd creates the deploy-deployment task
func NewDeployDeploymentCmd() *cobra.Command {
	return newContractTaskCmd("deploy-deployment", "Deployment", "Deploy the Deployment (NFT factory) contract")
}

func newContractTaskCmd(use, contract, short string) *cobra.Command {
	flags := &deployFlags{}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(cmd, contract, flags)
		},
	}

	addDeployFlags(cmd, flags)
	_ = cmd.MarkFlagRequired("private-key")
	return cmd
}

func runDeploy(cmd *cobra.Command, contract string, flags *deployFlags) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	result, err := app.DeployContract.Run(cmd.Context(), usecase.DeployContractParams{
		ContractName: contract,
		PrivateKey:   flags.privateKey,
		Args:         flags.args,
	})
	if err != nil {
		return err
	}

	if app.Config.JSON {
		return render.JSON(cmd.OutOrStdout(), result.Deployment)
	}
	return render.NewDeployRenderer(cmd.OutOrStdout()).Render(result)
}
