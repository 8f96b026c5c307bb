package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/mkt/internal/app"
	"github.com/trebuchet-org/mkt/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mkt",
		Short: "Deploy and exercise the NFT marketplace contracts",
		Long: `mkt deploys the compiled Marketplace, Deployment and NFT contracts to an
EVM network and runs the behavioral marketplace scenario against them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cobra.OnFinalize(cancel)
			}
			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., hardhat, localhost, sepolia)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Abort after this long (default 5m)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "deployment",
		Title: "Deployment Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Deployment commands
	for _, cmd := range []*cobra.Command{
		NewDeployCmd(),
		NewDeployMarketplaceCmd(),
		NewDeployDeploymentCmd(),
		NewVerifyCmd(),
	} {
		cmd.GroupID = "deployment"
		rootCmd.AddCommand(cmd)
	}

	// Main commands
	testCmd := NewTestCmd()
	testCmd.GroupID = "main"
	rootCmd.AddCommand(testCmd)

	deploymentsCmd := NewDeploymentsCmd()
	deploymentsCmd.GroupID = "main"
	rootCmd.AddCommand(deploymentsCmd)

	// Management commands
	for _, cmd := range []*cobra.Command{
		NewNetworksCmd(),
		NewConfigCmd(),
		NewNodeCmd(),
	} {
		cmd.GroupID = "management"
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
