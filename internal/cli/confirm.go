package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/wardrobe/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// errNeedsConfirmation is returned for destructive commands run without a
// terminal and without --yes.
var errNeedsConfirmation = errors.New("confirmation required: rerun with --yes")

// wardrobeHuhTheme returns a custom huh theme using the Gruvbox palette.
func wardrobeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// confirmForm creates a huh form for a yes/no confirmation.
func confirmForm(title, description string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(wardrobeHuhTheme()).WithShowHelp(false)
}

func huhConfirm(title string) (bool, error) {
	var ok bool
	if err := confirmForm(title, "This cannot be undone.", &ok).Run(); err != nil {
		return false, fmt.Errorf("confirmation: %w", err)
	}
	return ok, nil
}

// confirm returns true when the user agreed, either with --yes or through
// the interactive prompt.
func confirm(app *App, yes bool, title string) (bool, error) {
	if yes {
		return true, nil
	}
	if !app.interactive() {
		return false, errNeedsConfirmation
	}
	ask := app.Confirm
	if ask == nil {
		ask = huhConfirm
	}
	return ask(title)
}
