package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/wardrobe/internal/cli/formatter"
	"github.com/alexanderramin/wardrobe/internal/outfit"
	"github.com/alexanderramin/wardrobe/internal/service"
	"github.com/spf13/cobra"
)

// filterFlags binds the four filter dimensions to command flags.
type filterFlags struct {
	dress  string
	outer  string
	middle string
	bottom string
}

func (f *filterFlags) register(cmd *cobra.Command, app *App) {
	cmd.Flags().StringVar(&f.dress, "dress", "", "Only this dress (dress:ITEM or ITEM)")
	cmd.Flags().StringVar(&f.outer, "outer", "", "Outer layer, e.g. jacket:Denim or thickJacket:Parka")
	cmd.Flags().StringVar(&f.middle, "middle", "", "Middle layer, e.g. shortSleeve:Grey, shirt:White or innerWear:Camisole")
	cmd.Flags().StringVar(&f.bottom, "bottom", "", "Bottom, e.g. pants:Off-white or skirt:Brown")

	for _, dim := range []outfit.Dimension{outfit.DimDress, outfit.DimOuter, outfit.DimMiddle, outfit.DimBottom} {
		_ = cmd.RegisterFlagCompletionFunc(string(dim), completeSelections(app, dim))
	}
}

// criteria parses every flag; "all" or an empty value leaves a slot open.
func (f filterFlags) criteria() (outfit.Criteria, error) {
	var c outfit.Criteria
	var err error
	if c.Dress, err = outfit.ParseSelection(outfit.DimDress, f.dress); err != nil {
		return outfit.Criteria{}, fmt.Errorf("--dress: %w", err)
	}
	if c.Outer, err = outfit.ParseSelection(outfit.DimOuter, f.outer); err != nil {
		return outfit.Criteria{}, fmt.Errorf("--outer: %w", err)
	}
	if c.Middle, err = outfit.ParseSelection(outfit.DimMiddle, f.middle); err != nil {
		return outfit.Criteria{}, fmt.Errorf("--middle: %w", err)
	}
	if c.Bottom, err = outfit.ParseSelection(outfit.DimBottom, f.bottom); err != nil {
		return outfit.Criteria{}, fmt.Errorf("--bottom: %w", err)
	}
	return c, nil
}

// completeSelections offers "role:item" values for one filter dimension.
func completeSelections(app *App, dim outfit.Dimension) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		choices, err := app.Wardrobe.Choices(cmdContext(cmd))
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		var out []string
		for _, sel := range choices.For(dim) {
			if s := sel.String(); strings.HasPrefix(s, toComplete) {
				out = append(out, s)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func newOutfitsCmd(app *App) *cobra.Command {
	var filters filterFlags
	var page, perPage int

	cmd := &cobra.Command{
		Use:   "outfits",
		Short: "List valid outfits, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			crit, err := filters.criteria()
			if err != nil {
				return err
			}
			if perPage <= 0 {
				perPage = app.pageSize()
			}

			resp, err := app.Wardrobe.Catalog(cmdContext(cmd), service.CatalogRequest{
				Criteria: crit,
				Page:     page,
				PerPage:  perPage,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !crit.IsZero() {
				fmt.Fprintf(out, "%s %s\n\n", formatter.Dim("Filters:"), formatter.FormatCriteria(crit))
			}
			fmt.Fprint(out, formatter.FormatCatalog(resp.PageResult, resp.Generated))
			return nil
		},
	}

	filters.register(cmd, app)
	cmd.Flags().IntVarP(&page, "page", "p", 1, "Page number (clamped to the last page)")
	cmd.Flags().IntVarP(&perPage, "per-page", "n", 0, "Outfits per page (default from config)")

	return cmd
}
