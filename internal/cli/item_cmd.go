package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wardrobe/internal/cli/formatter"
	"github.com/alexanderramin/wardrobe/internal/domain"
	"github.com/spf13/cobra"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage garments within a category",
	}

	cmd.AddCommand(
		newItemListCmd(app),
		newItemAddCmd(app),
		newItemRemoveCmd(app),
	)

	return cmd
}

func newItemListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:               "list CATEGORY",
		Short:             "List every garment in a category",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeCategories(app, false),
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := app.Wardrobe.Inventory(cmdContext(cmd))
			if err != nil {
				return err
			}
			if !inv.Has(args[0]) {
				return fmt.Errorf("no category %q", args[0])
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCategory(inv, args[0]))
			return nil
		},
	}
}

func newItemAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:               "add CATEGORY NAME...",
		Short:             "Add one or more garments to a category",
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: completeCategories(app, false),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd)
			category := args[0]
			out := cmd.OutOrStdout()
			for _, name := range args[1:] {
				changed, err := app.Wardrobe.AddItem(ctx, category, name)
				if err != nil {
					return err
				}
				if !changed {
					fmt.Fprintln(out, formatter.Dim("Skipped blank name."))
					continue
				}
				fmt.Fprintf(out, "Added %s to %s.\n",
					formatter.Bold(strings.TrimSpace(name)), domain.DisplayName(category))
			}
			return nil
		},
	}
}

func newItemRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:               "remove CATEGORY NAME",
		Aliases:           []string{"rm"},
		Short:             "Remove a garment from a category",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeItems(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd)
			category, name := args[0], args[1]
			out := cmd.OutOrStdout()

			inv, err := app.Wardrobe.Inventory(ctx)
			if err != nil {
				return err
			}
			if !containsItem(inv.Items(category), name) {
				fmt.Fprintf(out, "No %s in %s.\n", formatter.Bold(name), domain.DisplayName(category))
				return nil
			}

			ok, err := confirm(app, yes, fmt.Sprintf("Remove %q from %s?", name, domain.DisplayName(category)))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}

			if _, err := app.Wardrobe.RemoveItem(ctx, category, name); err != nil {
				return err
			}
			fmt.Fprintf(out, "Removed %s from %s.\n", formatter.Bold(name), domain.DisplayName(category))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func containsItem(items []string, name string) bool {
	for _, item := range items {
		if item == name {
			return true
		}
	}
	return false
}

// completeCategories completes the first positional argument with category
// names. With customOnly set, built-in categories are left out.
func completeCategories(app *App, customOnly bool) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		inv, err := app.Wardrobe.Inventory(cmdContext(cmd))
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		var out []string
		for _, c := range inv.RenderableCategories() {
			if customOnly && domain.IsProtected(c) {
				continue
			}
			if strings.HasPrefix(c, toComplete) {
				out = append(out, c)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}

// completeItems completes CATEGORY, then the items of that category.
func completeItems(app *App) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	categories := completeCategories(app, false)
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return categories(cmd, args, toComplete)
		}
		if len(args) > 1 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		inv, err := app.Wardrobe.Inventory(cmdContext(cmd))
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		var out []string
		for _, item := range inv.Items(args[0]) {
			if strings.HasPrefix(item, toComplete) {
				out = append(out, item)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}
