package interactive

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/mkt/internal/domain/config"
	"github.com/trebuchet-org/mkt/internal/usecase"
)

// Prompter reads keys and choices from the terminal
type Prompter struct {
	config *config.RuntimeConfig
}

// NewPrompter creates a new terminal prompter
func NewPrompter(cfg *config.RuntimeConfig) *Prompter {
	return &Prompter{config: cfg}
}

// PromptPrivateKey reads a masked private key. An empty answer is allowed and
// means the network's default account.
func (p *Prompter) PromptPrivateKey(ctx context.Context, label string) (string, error) {
	if p.config.NonInteractive {
		return "", fmt.Errorf("cannot prompt for a private key in non-interactive mode")
	}

	prompt := promptui.Prompt{
		Label:    label,
		Mask:     '*',
		Validate: validatePrivateKey,
	}
	key, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}
	return strings.TrimSpace(key), nil
}

// SelectContract asks the user to pick one of several fully qualified names
func (p *Prompter) SelectContract(ctx context.Context, label string, options []string) (string, error) {
	if p.config.NonInteractive {
		return "", fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	switch len(options) {
	case 0:
		return "", fmt.Errorf("no contracts provided for selection")
	case 1:
		return options[0], nil
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	sel := promptui.Select{
		Label:             label,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(options),
	}

	index, _, err := sel.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}
	return options[index], nil
}

func validatePrivateKey(input string) error {
	key := strings.TrimSpace(input)
	if key == "" {
		return nil
	}
	key = strings.TrimPrefix(strings.TrimPrefix(key, "0x"), "0X")
	if len(key) != 64 {
		return fmt.Errorf("expected 64 hex characters")
	}
	if _, err := hex.DecodeString(key); err != nil {
		return fmt.Errorf("not a hex string")
	}
	return nil
}

// createFuzzySearchFunc matches substrings first and falls back to fuzzy matching
func createFuzzySearchFunc(options []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		option := strings.ToLower(options[index])
		search := strings.ToLower(input)
		if strings.Contains(option, search) {
			return true
		}

		matches := fuzzy.Find(search, []string{option})
		return len(matches) > 0
	}
}

var _ usecase.Prompter = (*Prompter)(nil)
