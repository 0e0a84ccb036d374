package cli

import (
	"github.com/alexanderramin/wardrobe/internal/outfit"
	"github.com/alexanderramin/wardrobe/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and terminal hooks used by CLI commands.
type App struct {
	Wardrobe service.WardrobeService

	// PageSize is the default --per-page value.
	PageSize int

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// Confirm asks a yes/no question. Nil uses a huh form.
	Confirm func(title string) (bool, error)
}

func (a *App) pageSize() int {
	if a.PageSize > 0 {
		return a.PageSize
	}
	return outfit.DefaultPerPage
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "wardrobe" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "wardrobe",
		Short:         "Personal wardrobe and outfit catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newOutfitsCmd(app),
		newBrowseCmd(app),
		newItemCmd(app),
		newCategoryCmd(app),
		newStatsCmd(app),
		newRulesCmd(app),
		newResetCmd(app),
		newExportCmd(app),
		newImportCmd(app),
	)

	return root
}
