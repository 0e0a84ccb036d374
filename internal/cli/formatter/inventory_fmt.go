package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wardrobe/internal/domain"
)

// FormatCategories renders every category in display order with its item
// count and a short preview of its items.
func FormatCategories(inv *domain.Inventory) string {
	headers := []string{"CATEGORY", "KIND", "COUNT", "ITEMS"}
	categories := inv.RenderableCategories()
	rows := make([][]string, 0, len(categories))
	for _, c := range categories {
		kind := Dim("custom")
		if domain.IsProtected(c) {
			kind = StyleBlue.Render("built-in")
		}
		items := inv.Items(c)
		rows = append(rows, []string{
			RoleColor(domain.Role(c)).Render(domain.DisplayName(c)),
			kind,
			fmt.Sprintf("%d", len(items)),
			Preview(items, PreviewLimit),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%s, %s", Plural(len(categories), "category"), Plural(inv.TotalItems(), "garment"))))
	b.WriteString("\n")
	return b.String()
}

// FormatCategory lists every item of one category, numbered from 1.
func FormatCategory(inv *domain.Inventory, category string) string {
	var b strings.Builder
	items := inv.Items(category)
	b.WriteString(Header(fmt.Sprintf("%s (%d)", domain.DisplayName(category), len(items))))
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString(Dim("  (empty)"))
		b.WriteString("\n")
		return b.String()
	}
	style := RoleColor(domain.Role(category))
	for i, item := range items {
		fmt.Fprintf(&b, "  %s %s\n", Dim(fmt.Sprintf("%2d.", i+1)), style.Render(item))
	}
	return b.String()
}
