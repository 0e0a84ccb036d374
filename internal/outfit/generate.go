// Package outfit expands an inventory into every valid outfit and narrows
// the result by layer-scoped criteria. All functions are pure.
package outfit

import "github.com/alexanderramin/wardrobe/internal/domain"

// Generate returns every outfit the inventory allows, in a stable order:
// dresses, then short-sleeve, long-sleeve and thick-long-sleeve tops, then
// shirt+inner composites, then jacket and thick-jacket layers. Bottoms
// (pants before skirts) always vary fastest. Absent categories contribute
// nothing and custom categories are ignored.
func Generate(inv *domain.Inventory) []domain.Outfit {
	out := make([]domain.Outfit, 0, Count(inv))

	for _, dress := range inv.Role(domain.RoleDress) {
		out = append(out, domain.DressOutfit(dress))
	}

	bottoms := bottomList(inv)
	if len(bottoms) == 0 {
		return out
	}
	pair := func(top domain.Top) {
		for _, b := range bottoms {
			out = append(out, domain.LayeredOutfit(top, b))
		}
	}

	for _, family := range domain.DirectTopRoles {
		for _, item := range inv.Role(family) {
			pair(domain.DirectTop(family, item))
		}
	}

	for _, shirt := range inv.Role(domain.RoleShirt) {
		for _, inner := range inv.Role(domain.RoleInnerWear) {
			pair(domain.CompositeTop(shirt, inner))
		}
	}

	for _, outer := range domain.OuterRoles {
		for _, item := range inv.Role(outer) {
			for _, innerRole := range domain.OuterInnerRoles(outer) {
				for _, inner := range inv.Role(innerRole) {
					pair(domain.OuterTop(outer, item, domain.Garment{Role: innerRole, Item: inner}))
				}
			}
		}
	}

	return out
}

// Count returns len(Generate(inv)) without building the outfits.
func Count(inv *domain.Inventory) int {
	n := func(r domain.Role) int { return len(inv.Role(r)) }

	bottoms := n(domain.RolePants) + n(domain.RoleSkirt)
	tops := n(domain.RoleShortSleeve) + n(domain.RoleLongSleeve) + n(domain.RoleThickLongSleeve)
	tops += n(domain.RoleShirt) * n(domain.RoleInnerWear)
	for _, outer := range domain.OuterRoles {
		inner := 0
		for _, r := range domain.OuterInnerRoles(outer) {
			inner += n(r)
		}
		tops += n(outer) * inner
	}
	return n(domain.RoleDress) + tops*bottoms
}

func bottomList(inv *domain.Inventory) []domain.Bottom {
	var bottoms []domain.Bottom
	for _, role := range domain.BottomRoles {
		for _, item := range inv.Role(role) {
			bottoms = append(bottoms, domain.Bottom{Role: role, Item: item})
		}
	}
	return bottoms
}
