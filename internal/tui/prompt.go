package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
)

// Prompt configures a single interactive input field.
type Prompt struct {
	Title       string
	Description string
	Placeholder string
	Default     string
	Required    bool
	Validate    func(string) error
}

func (p Prompt) validate(s string) error {
	if p.Required && strings.TrimSpace(s) == "" {
		return fmt.Errorf("this field is required")
	}
	if p.Validate != nil && strings.TrimSpace(s) != "" {
		return p.Validate(s)
	}
	return nil
}

// Input displays a single-line text prompt and returns the entered value.
func Input(p Prompt) (string, error) {
	value := p.Default

	field := huh.NewInput().
		Title(p.Title).
		Description(p.Description).
		Placeholder(p.Placeholder).
		Value(&value).
		Validate(p.validate)

	form := huh.NewForm(huh.NewGroup(field))

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	return value, nil
}

// Text displays a multi-line text prompt for longer free-form values.
func Text(p Prompt) (string, error) {
	value := p.Default

	field := huh.NewText().
		Title(p.Title).
		Description(p.Description).
		Value(&value).
		Validate(p.validate)

	form := huh.NewForm(huh.NewGroup(field))

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	return value, nil
}

// SelectString displays a single-choice menu over options. A non-empty
// defaultValue preselects that option.
func SelectString(title string, options []string, defaultValue string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options provided")
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt, opt)
	}

	selected := defaultValue
	field := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions...).
		Value(&selected)

	form := huh.NewForm(huh.NewGroup(field))

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	return selected, nil
}

// SelectOptional is SelectString with a leading "(skip)" choice that
// resolves to the empty string.
func SelectOptional(title string, options []string, defaultValue string) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options provided")
	}

	huhOptions := make([]huh.Option[string], 0, len(options)+1)
	huhOptions = append(huhOptions, huh.NewOption("(skip)", ""))
	for _, opt := range options {
		huhOptions = append(huhOptions, huh.NewOption(opt, opt))
	}

	selected := defaultValue
	field := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions...).
		Value(&selected)

	form := huh.NewForm(huh.NewGroup(field))

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	return selected, nil
}

// Confirm displays a yes/no confirmation prompt.
func Confirm(title string, defaultValue bool) (bool, error) {
	confirmed := defaultValue

	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	form := huh.NewForm(huh.NewGroup(field))

	if err := form.Run(); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}

	return confirmed, nil
}

// IsAborted reports whether err came from the user cancelling a prompt.
func IsAborted(err error) bool {
	return errors.Is(err, huh.ErrUserAborted)
}

// IsInteractive returns true if stdin is a terminal (not piped).
func IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// ShouldPrompt returns true if prompts should be shown based on environment.
// Prompts are disabled in CI environments or when stdin is not a terminal.
func ShouldPrompt() bool {
	ciEnvVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"JENKINS_URL",
		"TRAVIS",
		"CIRCLECI",
		"BUILDKITE",
	}

	for _, envVar := range ciEnvVars {
		if os.Getenv(envVar) != "" {
			return false
		}
	}

	return IsInteractive()
}
