package cli

import (
	"fmt"

	"github.com/alexanderramin/wardrobe/internal/cli/formatter"
	"github.com/alexanderramin/wardrobe/internal/outfit"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show garment and outfit counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Wardrobe.Stats(cmdContext(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStats(*stats))
			return nil
		},
	}
}

func newRulesCmd(_ *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Explain how outfits are composed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRules(outfit.Rules))
			return nil
		},
	}
}
