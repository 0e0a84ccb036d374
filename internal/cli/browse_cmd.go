package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBrowseCmd(app *App) *cobra.Command {
	var filters filterFlags
	var perPage int

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through outfits interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errors.New("browse needs an interactive terminal; use 'wardrobe outfits' instead")
			}
			crit, err := filters.criteria()
			if err != nil {
				return err
			}
			if perPage <= 0 {
				perPage = app.pageSize()
			}

			m := newBrowseModel(app.Wardrobe, crit, perPage)
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithContext(cmdContext(cmd)),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := p.Run()
			if err != nil {
				return err
			}
			if bm, ok := final.(browseModel); ok && bm.err != nil {
				return bm.err
			}
			return nil
		},
	}

	filters.register(cmd, app)
	cmd.Flags().IntVarP(&perPage, "per-page", "n", 0, "Outfits per page (default from config)")

	return cmd
}
