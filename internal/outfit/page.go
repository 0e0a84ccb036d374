package outfit

import "github.com/alexanderramin/wardrobe/internal/domain"

// DefaultPerPage is the number of outfits shown per page.
const DefaultPerPage = 5

// PageResult is one window of a paginated outfit list.
type PageResult struct {
	Outfits    []domain.Outfit
	Page       int // 1-based, clamped into range
	PerPage    int
	TotalPages int
	Total      int
	// FirstNumber is the 1-based position of Outfits[0] in the full list.
	FirstNumber int
}

// Page slices outfits into a 1-based page. Out-of-range pages are clamped;
// a non-positive perPage falls back to DefaultPerPage.
func Page(outfits []domain.Outfit, page, perPage int) PageResult {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	total := len(outfits)
	totalPages := (total + perPage - 1) / perPage

	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	res := PageResult{
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		Total:      total,
	}
	if total == 0 {
		res.Outfits = []domain.Outfit{}
		return res
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}
	res.Outfits = outfits[start:end]
	res.FirstNumber = start + 1
	return res
}
