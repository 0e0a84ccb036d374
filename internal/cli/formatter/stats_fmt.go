package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wardrobe/internal/domain"
	"github.com/alexanderramin/wardrobe/internal/outfit"
)

const statsBarWidth = 10

// FormatStats renders the wardrobe summary box followed by per-category counts.
func FormatStats(s outfit.Stats) string {
	var lines []string
	lines = append(lines,
		fmt.Sprintf("%s %s", Dim("Garments:        "), Bold(fmt.Sprintf("%d", s.Garments))),
		fmt.Sprintf("%s %s", Dim("Outfits:         "), Bold(fmt.Sprintf("%d", s.Outfits))),
		shareLine("Dress outfits:   ", s.Dresses, s.Outfits),
		shareLine("With outer layer:", s.WithOuter, s.Outfits),
		shareLine("With skirt:      ", s.WithSkirt, s.Outfits),
	)

	var b strings.Builder
	b.WriteString(RenderBox("Outfit stats", strings.Join(lines, "\n")))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(s.Categories))
	for _, c := range s.Categories {
		rows = append(rows, []string{
			RoleColor(domain.Role(c)).Render(domain.DisplayName(c)),
			fmt.Sprintf("%d", s.ByCategory[c]),
		})
	}
	b.WriteString(RenderTable([]string{"CATEGORY", "COUNT"}, rows))
	return b.String()
}

func shareLine(label string, part, total int) string {
	return fmt.Sprintf("%s %s %s", Dim(label), Bold(fmt.Sprintf("%-5d", part)), RenderShare(part, total, statsBarWidth))
}

// FormatRules renders the composition rules as a numbered list.
func FormatRules(rules []string) string {
	var b strings.Builder
	b.WriteString(Header("Composition rules"))
	b.WriteString("\n")
	for i, r := range rules {
		fmt.Fprintf(&b, "  %s %s\n", StyleBlue.Render(fmt.Sprintf("%d.", i+1)), r)
	}
	return b.String()
}
