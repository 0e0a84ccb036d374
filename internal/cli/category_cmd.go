package cli

import (
	"fmt"

	"github.com/alexanderramin/wardrobe/internal/cli/formatter"
	"github.com/alexanderramin/wardrobe/internal/domain"
	"github.com/alexanderramin/wardrobe/internal/service"
	"github.com/spf13/cobra"
)

func newCategoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage garment categories",
	}

	cmd.AddCommand(
		newCategoryListCmd(app),
		newCategoryAddCmd(app),
		newCategoryRemoveCmd(app),
	)

	return cmd
}

func newCategoryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List categories with item counts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := app.Wardrobe.Inventory(cmdContext(cmd))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCategories(inv))
			return nil
		},
	}
}

func newCategoryAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME",
		Short: "Add an empty custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changed, err := app.Wardrobe.AddCategory(cmdContext(cmd), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !changed {
				fmt.Fprintln(out, formatter.Dim("Category name is blank or already exists."))
				return nil
			}
			fmt.Fprintf(out, "Added category %s.\n", formatter.Bold(args[0]))
			return nil
		},
	}
}

func newCategoryRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:               "remove NAME",
		Aliases:           []string{"rm"},
		Short:             "Remove a custom category and its garments",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeCategories(app, true),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmdContext(cmd)
			name := args[0]
			out := cmd.OutOrStdout()

			if domain.IsProtected(name) {
				return fmt.Errorf("%s: %w", domain.DisplayName(name), service.ErrProtectedCategory)
			}
			inv, err := app.Wardrobe.Inventory(ctx)
			if err != nil {
				return err
			}
			if !inv.Has(name) {
				fmt.Fprintf(out, "No category %s.\n", formatter.Bold(name))
				return nil
			}

			title := fmt.Sprintf("Remove category %q and its %s?", name, formatter.Plural(len(inv.Items(name)), "garment"))
			ok, err := confirm(app, yes, title)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}

			if _, err := app.Wardrobe.RemoveCategory(ctx, name); err != nil {
				return err
			}
			fmt.Fprintf(out, "Removed category %s.\n", formatter.Bold(name))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
