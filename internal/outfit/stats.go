package outfit

import "github.com/alexanderramin/wardrobe/internal/domain"

// Stats summarizes an inventory and its generated outfits.
type Stats struct {
	Garments   int
	Outfits    int
	Dresses    int
	WithOuter  int
	WithSkirt  int
	ByCategory map[string]int
	Categories []string
}

// Summarize counts garments per category and classifies the outfits.
func Summarize(inv *domain.Inventory, outfits []domain.Outfit) Stats {
	s := Stats{
		Garments:   inv.TotalItems(),
		Outfits:    len(outfits),
		ByCategory: make(map[string]int),
		Categories: inv.RenderableCategories(),
	}
	for _, c := range s.Categories {
		s.ByCategory[c] = len(inv.Items(c))
	}
	for _, o := range outfits {
		switch {
		case o.IsDress():
			s.Dresses++
		default:
			if o.HasOuter() {
				s.WithOuter++
			}
			if o.Bottom.Role == domain.RoleSkirt {
				s.WithSkirt++
			}
		}
	}
	return s
}
