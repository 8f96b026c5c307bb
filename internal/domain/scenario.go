package domain

import (
	"fmt"
	"math/big"
	"strings"

	"gopkg.in/yaml.v3"
)

// Role names a signer in a scenario. Roles map onto the network's accounts in order.
type Role string

const (
	RoleOwner Role = "owner"
	RoleAddr1 Role = "addr1"
	RoleAddr2 Role = "addr2"
	RoleAddr3 Role = "addr3"
)

// Roles lists signer roles in account order.
var Roles = []Role{RoleOwner, RoleAddr1, RoleAddr2, RoleAddr3}

// Index returns the account index backing the role.
func (r Role) Index() (int, bool) {
	for i, role := range Roles {
		if role == r {
			return i, true
		}
	}
	return 0, false
}

// ContractKind identifies a fixture contract within a scenario
type ContractKind string

const (
	ContractMarketplace ContractKind = "marketplace"
	ContractNFT         ContractKind = "nft"
	ContractDeployment  ContractKind = "deployment"
)

// Wei is an ETH amount in wei. It accepts plain integers or decimal strings in YAML.
type Wei struct {
	*big.Int
}

// NewWei wraps an int64 amount
func NewWei(v int64) Wei {
	return Wei{Int: big.NewInt(v)}
}

// UnmarshalYAML parses a decimal or 0x-prefixed amount
func (w *Wei) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: value must be a scalar", node.Line)
	}
	v, ok := new(big.Int).SetString(strings.TrimSpace(node.Value), 0)
	if !ok || v.Sign() < 0 {
		return fmt.Errorf("line %d: invalid wei amount %q", node.Line, node.Value)
	}
	w.Int = v
	return nil
}

// IsZero reports whether no value is attached
func (w Wei) IsZero() bool {
	return w.Int == nil || w.Int.Sign() == 0
}

// Call is a single contract method invocation made by a role
type Call struct {
	Contract ContractKind `yaml:"contract"`
	Method   string       `yaml:"method"`
	Args     []any        `yaml:"args,omitempty"`
	Value    Wei          `yaml:"value,omitempty"`
	From     Role         `yaml:"from,omitempty"`
}

// Caller returns the calling role, defaulting to the owner
func (c Call) Caller() Role {
	if c.From == "" {
		return RoleOwner
	}
	return c.From
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	s := fmt.Sprintf("%s → %s.%s(%s)", c.Caller(), c.Contract, c.Method, strings.Join(args, ", "))
	if !c.Value.IsZero() {
		s += fmt.Sprintf(" {value: %s}", c.Value.String())
	}
	return s
}

// Expectation is the asserted outcome of a step's final call.
// The zero value expects success.
type Expectation struct {
	Reverts bool
	Reason  string
}

// ExpectOK expects the call to succeed
func ExpectOK() Expectation {
	return Expectation{}
}

// ExpectRevert expects the call to revert with the given reason
func ExpectRevert(reason string) Expectation {
	return Expectation{Reverts: true, Reason: reason}
}

// UnmarshalYAML accepts `ok`, `revert` or `{revert: "<reason>"}`
func (e *Expectation) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		switch strings.ToLower(node.Value) {
		case "ok", "":
			*e = ExpectOK()
		case "revert", "reverted":
			*e = Expectation{Reverts: true}
		default:
			return fmt.Errorf("line %d: unknown expectation %q (want ok or revert)", node.Line, node.Value)
		}
		return nil
	case yaml.MappingNode:
		var raw struct {
			Revert *string `yaml:"revert"`
		}
		if err := node.Decode(&raw); err != nil {
			return err
		}
		if raw.Revert == nil {
			return fmt.Errorf("line %d: expectation mapping requires a revert key", node.Line)
		}
		*e = ExpectRevert(*raw.Revert)
		return nil
	default:
		return fmt.Errorf("line %d: invalid expectation", node.Line)
	}
}

func (e Expectation) String() string {
	if !e.Reverts {
		return "ok"
	}
	if e.Reason == "" {
		return "reverted"
	}
	return fmt.Sprintf("reverted with %q", e.Reason)
}

// Check compares an observed outcome with the expectation and
// returns a mismatch description when they differ.
func (e Expectation) Check(o Outcome) (bool, string) {
	switch {
	case !e.Reverts && !o.Reverted:
		return true, ""
	case !e.Reverts && o.Reverted:
		return false, fmt.Sprintf("Expected transaction to succeed, but it %s", o)
	case e.Reverts && !o.Reverted:
		return false, fmt.Sprintf("Expected transaction to be %s, but it didn't revert", e)
	case e.Reason == "" || e.Reason == o.Reason:
		return true, ""
	default:
		return false, fmt.Sprintf("Expected transaction to be %s, but it %s", e, o)
	}
}

// Step is a named scenario entry. Setup calls run first and must succeed;
// the expectation applies to Call.
type Step struct {
	Name   string      `yaml:"name"`
	Setup  []Call      `yaml:"setup,omitempty"`
	Call   Call        `yaml:"call"`
	Expect Expectation `yaml:"expect"`
}

// Fixture is a contract deployed before the first step
type Fixture struct {
	Contract ContractKind `yaml:"contract"`
	Artifact string       `yaml:"artifact"`
	Args     []any        `yaml:"args,omitempty"`
	From     Role         `yaml:"from,omitempty"`
}

// Deployer returns the deploying role, defaulting to the owner
func (f Fixture) Deployer() Role {
	if f.From == "" {
		return RoleOwner
	}
	return f.From
}

// Scenario is an ordered behavioral test suite
type Scenario struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Fixtures    []Fixture `yaml:"fixtures"`
	Steps       []Step    `yaml:"steps"`
}

// Validate checks the scenario for references that can't be resolved at run time
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario has no name")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("scenario %q has no steps", s.Name)
	}

	fixtures := make(map[ContractKind]bool, len(s.Fixtures))
	for i, f := range s.Fixtures {
		if f.Contract == "" || f.Artifact == "" {
			return fmt.Errorf("fixture %d: contract and artifact are required", i)
		}
		if fixtures[f.Contract] {
			return fmt.Errorf("fixture %d: %s is declared twice", i, f.Contract)
		}
		if _, ok := f.Deployer().Index(); !ok {
			return fmt.Errorf("fixture %d: unknown role %q", i, f.From)
		}
		fixtures[f.Contract] = true
	}

	checkCall := func(step int, c Call) error {
		if !fixtures[c.Contract] {
			return fmt.Errorf("step %d: call targets unknown contract %q", step, c.Contract)
		}
		if c.Method == "" {
			return fmt.Errorf("step %d: call has no method", step)
		}
		if _, ok := c.Caller().Index(); !ok {
			return fmt.Errorf("step %d: unknown role %q", step, c.From)
		}
		for _, arg := range c.Args {
			ref, ok := ParseRef(arg)
			if !ok {
				continue
			}
			if _, isRole := Role(ref).Index(); !isRole && !fixtures[ContractKind(ref)] {
				return fmt.Errorf("step %d: unknown reference $%s", step, ref)
			}
		}
		return nil
	}

	for i, step := range s.Steps {
		if step.Name == "" {
			return fmt.Errorf("step %d: name is required", i+1)
		}
		for _, c := range step.Setup {
			if err := checkCall(i+1, c); err != nil {
				return err
			}
		}
		if err := checkCall(i+1, step.Call); err != nil {
			return err
		}
	}
	return nil
}

// ParseRef reports whether a scenario argument is a `$name` address reference
func ParseRef(arg any) (string, bool) {
	s, ok := arg.(string)
	if !ok || len(s) < 2 || s[0] != '$' {
		return "", false
	}
	return s[1:], true
}
