package outfit

import "github.com/alexanderramin/wardrobe/internal/domain"

// Rules describes the composition rules in plain words.
var Rules = []string{
	"A dress is an outfit on its own.",
	"Short sleeves, long sleeves and thick long sleeves go directly with pants or a skirt.",
	"Inner wear only counts when worn under a shirt.",
	"A jacket goes over a short or long sleeve.",
	"A thick jacket goes over a long or thick long sleeve.",
}

// Choices lists the selectable values of every filter slot.
type Choices struct {
	Dress  []Selection
	Outer  []Selection
	Middle []Selection
	Bottom []Selection
}

// For returns the choices for a single slot.
func (c Choices) For(dim Dimension) []Selection {
	switch dim {
	case DimDress:
		return c.Dress
	case DimOuter:
		return c.Outer
	case DimMiddle:
		return c.Middle
	case DimBottom:
		return c.Bottom
	default:
		return nil
	}
}

// ChoicesFor builds the filter choices offered for an inventory.
func ChoicesFor(inv *domain.Inventory) Choices {
	return Choices{
		Dress:  selections(inv, []domain.Role{domain.RoleDress}),
		Outer:  selections(inv, domain.OuterRoles),
		Middle: selections(inv, domain.MiddleRoles),
		Bottom: selections(inv, domain.BottomRoles),
	}
}

func selections(inv *domain.Inventory, roles []domain.Role) []Selection {
	var out []Selection
	for _, r := range roles {
		for _, item := range inv.Role(r) {
			out = append(out, Select(r, item))
		}
	}
	return out
}
