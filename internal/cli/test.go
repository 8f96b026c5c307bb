package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/mkt/internal/cli/render"
	"github.com/trebuchet-org/mkt/internal/domain"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

// NewTestCmd creates the test command
func NewTestCmd() *cobra.Command {
	var params usecase.RunSuiteParams

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run the marketplace behavior scenario",
		Long: `Deploy fresh NFT, Marketplace and Deployment contracts and run every scenario
step against them, checking that each call succeeds or reverts with the
expected reason.

The network needs at least four funded accounts (owner, addr1, addr2, addr3).
Use --network simulated to run against an in-process chain.`,
		Example: `  # Run the built-in scenario against an in-process chain
  mkt test --network simulated

  # Run against a local node, stopping at the first failure
  mkt node start && mkt test --network localhost --bail

  # Only the offer steps
  mkt test --grep 'offer'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.RunSuite.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				if err := render.JSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			} else if err := render.NewSuiteRenderer(cmd.OutOrStdout(), app.Config.Debug).Render(result); err != nil {
				return err
			}

			return suiteError(result)
		},
	}

	cmd.Flags().StringVar(&params.ScenarioPath, "scenario", "", "Scenario YAML file (defaults to the built-in marketplace scenario)")
	cmd.Flags().BoolVar(&params.Bail, "bail", false, "Stop after the first failing step")
	cmd.Flags().StringVar(&params.Grep, "grep", "", "Only run steps whose name matches this regular expression")
	return cmd
}

// suiteError turns failed or errored steps into a non-zero exit
func suiteError(result *domain.SuiteResult) error {
	if result.OK() {
		return nil
	}
	s := result.Summary()
	return fmt.Errorf("%d of %d steps did not pass", s.Failed+s.Errored, len(result.Steps))
}
