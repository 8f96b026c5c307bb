package render

import (
	"fmt"
	"io"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/trebuchet-org/mkt/internal/domain"
)

// SuiteRenderer renders scenario results as a step report
type SuiteRenderer struct {
	out     io.Writer
	verbose bool
}

// NewSuiteRenderer creates a new suite renderer. Verbose adds transaction hashes.
func NewSuiteRenderer(out io.Writer, verbose bool) *SuiteRenderer {
	return &SuiteRenderer{out: out, verbose: verbose}
}

// Render renders the fixtures, every step and a summary line
func (r *SuiteRenderer) Render(result *domain.SuiteResult) error {
	fmt.Fprintln(r.out, sectionHeaderStyle.Sprintf("%s on %s (chain %d)", result.Scenario, result.Network, result.ChainID))
	fmt.Fprintln(r.out)

	for _, f := range result.Fixtures {
		fmt.Fprintf(r.out, "  %s %s\n", faintStyle.Sprintf("%-12s", f.Contract), addressStyle.Sprint(f.Address.Hex()))
	}
	if len(result.Fixtures) > 0 {
		fmt.Fprintln(r.out)
	}

	for _, step := range result.Steps {
		r.renderStep(step)
	}

	s := result.Summary()
	fmt.Fprintln(r.out)
	fmt.Fprint(r.out, successStyle.Sprintf("  %d passing", s.Passed))
	fmt.Fprint(r.out, faintStyle.Sprintf(" (%s)", result.Duration.Round(time.Millisecond)))
	fmt.Fprintln(r.out)
	if s.Failed > 0 {
		fmt.Fprintln(r.out, failureStyle.Sprintf("  %d failing", s.Failed))
	}
	if s.Errored > 0 {
		fmt.Fprintln(r.out, failureStyle.Sprintf("  %d errored", s.Errored))
	}
	if s.Skipped > 0 {
		fmt.Fprintln(r.out, pendingStyle.Sprintf("  %d skipped", s.Skipped))
	}
	return nil
}

func (r *SuiteRenderer) renderStep(step domain.StepResult) {
	label := fmt.Sprintf("%d) %s", step.Index, step.Name)

	switch step.Status {
	case domain.StepPassed:
		fmt.Fprintf(r.out, "  %s %s %s\n", successStyle.Sprint("✓"), label, faintStyle.Sprintf("(%s)", step.Duration.Round(time.Millisecond)))
	case domain.StepSkipped:
		fmt.Fprintf(r.out, "  %s %s\n", pendingStyle.Sprint("-"), faintStyle.Sprint(label))
		return
	default:
		fmt.Fprintf(r.out, "  %s %s\n", failureStyle.Sprint("✗"), color.New(color.FgRed).Sprint(label))
		if step.Call != "" {
			fmt.Fprintf(r.out, "      call:     %s\n", step.Call)
		}
		if step.Expected != "" {
			fmt.Fprintf(r.out, "      expected: %s\n", step.Expected)
			fmt.Fprintf(r.out, "      actual:   %s\n", step.Actual)
		}
		if step.Message != "" {
			fmt.Fprintf(r.out, "      %s\n", step.Message)
		}
		if step.Err != nil {
			fmt.Fprintf(r.out, "      error:    %v\n", step.Err)
		}
	}

	if r.verbose && step.TxHash != (common.Hash{}) {
		fmt.Fprintf(r.out, "      %s\n", faintStyle.Sprintf("tx %s", step.TxHash.Hex()))
	}
}
