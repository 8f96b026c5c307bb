package domain

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Outcome is what the chain did with a call
type Outcome struct {
	Reverted bool
	Reason   string
	TxHash   common.Hash
	GasUsed  uint64
}

func (o Outcome) String() string {
	if !o.Reverted {
		return "succeeded"
	}
	if o.Reason == "" {
		return "reverted without a reason"
	}
	return fmt.Sprintf("reverted with %q", o.Reason)
}

// StepStatus is the verdict for a single scenario step
type StepStatus string

const (
	StepPassed  StepStatus = "passed"
	StepFailed  StepStatus = "failed"
	StepErrored StepStatus = "errored"
	StepSkipped StepStatus = "skipped"
)

// StepResult records how a scenario step went
type StepResult struct {
	Index    int
	Name     string
	Call     string
	Status   StepStatus
	Expected string
	Actual   string
	Message  string
	Err      error
	TxHash   common.Hash
	Duration time.Duration
}

// FixtureResult records a contract deployed before the steps ran
type FixtureResult struct {
	Contract ContractKind
	Artifact string
	Address  common.Address
	TxHash   common.Hash
}

// SuiteResult is the outcome of a scenario run
type SuiteResult struct {
	Scenario string
	Network  string
	ChainID  uint64
	Signers  map[Role]common.Address
	Fixtures []FixtureResult
	Steps    []StepResult
	Duration time.Duration
}

// SuiteSummary counts step verdicts
type SuiteSummary struct {
	Passed  int
	Failed  int
	Errored int
	Skipped int
}

// Summary tallies the step results
func (r *SuiteResult) Summary() SuiteSummary {
	var s SuiteSummary
	for _, step := range r.Steps {
		switch step.Status {
		case StepPassed:
			s.Passed++
		case StepFailed:
			s.Failed++
		case StepErrored:
			s.Errored++
		case StepSkipped:
			s.Skipped++
		}
	}
	return s
}

// OK reports whether every executed step passed
func (r *SuiteResult) OK() bool {
	s := r.Summary()
	return s.Failed == 0 && s.Errored == 0
}
