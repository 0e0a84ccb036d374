package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wardrobe/internal/domain"
	"github.com/alexanderramin/wardrobe/internal/outfit"
)

// NoMatches is shown when a filter leaves nothing to display.
const NoMatches = "No outfits match the current filters."

// FormatCatalog renders one page of outfits as numbered cards followed by a
// page indicator. generated is the unfiltered outfit count.
func FormatCatalog(page outfit.PageResult, generated int) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Outfits (%d)", page.Total)))
	b.WriteString("\n")
	if page.Total < generated {
		b.WriteString(Dim(fmt.Sprintf("%d of %s match the filters", page.Total, Plural(generated, "outfit"))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if page.Total == 0 {
		b.WriteString(StyleYellow.Render(NoMatches))
		b.WriteString("\n")
		return b.String()
	}

	for i, o := range page.Outfits {
		b.WriteString(FormatOutfit(page.FirstNumber+i, o))
		b.WriteString("\n")
	}
	b.WriteString(Dim(fmt.Sprintf("Page %d / %d", page.Page, page.TotalPages)))
	b.WriteString("\n")
	return b.String()
}

// FormatOutfit renders a single outfit card headed "Outfit #n".
func FormatOutfit(n int, o domain.Outfit) string {
	var b strings.Builder
	b.WriteString(Bold(fmt.Sprintf("Outfit #%d", n)))
	b.WriteString("\n")
	if o.IsDress() {
		fmt.Fprintf(&b, "  %s %s\n", Dim("Dress: "), Garment(domain.RoleDress, o.Dress))
		return b.String()
	}
	fmt.Fprintf(&b, "  %s %s\n", Dim("Top:   "), FormatTop(o.Top))
	fmt.Fprintf(&b, "  %s %s\n", Dim("Bottom:"), Garment(o.Bottom.Role, o.Bottom.Item))
	return b.String()
}

// FormatTop renders the layers of a top joined with " + ", outermost first.
func FormatTop(t domain.Top) string {
	switch t.Layer {
	case domain.LayerOuter:
		return Garment(t.Family, t.Item) + " + " + Garment(t.Inner.Role, t.Inner.Item)
	case domain.LayerComposite:
		return Garment(domain.RoleShirt, t.Item) + " + " + Garment(domain.RoleInnerWear, t.InnerWear)
	default:
		return Garment(t.Family, t.Item)
	}
}

// FormatCriteria summarizes the active filters, or "none".
func FormatCriteria(c outfit.Criteria) string {
	var parts []string
	for _, slot := range []struct {
		name string
		sel  outfit.Selection
	}{
		{"dress", c.Dress},
		{"outer", c.Outer},
		{"middle", c.Middle},
		{"bottom", c.Bottom},
	} {
		if slot.sel.IsSet() {
			parts = append(parts, slot.name+"="+Garment(slot.sel.Role, slot.sel.Item))
		}
	}
	if len(parts) == 0 {
		return Dim("none")
	}
	return strings.Join(parts, "  ")
}
