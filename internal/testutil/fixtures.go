package testutil

import (
	"github.com/alexanderramin/wardrobe/internal/domain"
)

// Inventory options
type InventoryOption func(*domain.Inventory)

// WithItems adds items to a role, creating the category when needed.
func WithItems(role domain.Role, items ...string) InventoryOption {
	return func(inv *domain.Inventory) {
		if !inv.Has(string(role)) {
			inv.AddCategory(string(role))
		}
		for _, item := range items {
			inv.AddItem(string(role), item)
		}
	}
}

// WithCategory adds an empty custom category.
func WithCategory(name string) InventoryOption {
	return func(inv *domain.Inventory) {
		inv.AddCategory(name)
	}
}

// NewTestInventory builds an empty inventory and applies opts in order.
func NewTestInventory(opts ...InventoryOption) *domain.Inventory {
	inv := domain.NewInventory()
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// TwoTopsInventory is the small reference wardrobe: two short sleeves, one
// pair of pants and one skirt.
func TwoTopsInventory(opts ...InventoryOption) *domain.Inventory {
	base := []InventoryOption{
		WithItems(domain.RoleShortSleeve, "A", "B"),
		WithItems(domain.RolePants, "P1"),
		WithItems(domain.RoleSkirt, "S1"),
	}
	return NewTestInventory(append(base, opts...)...)
}

// FullInventory has at least one item in every built-in role.
func FullInventory(opts ...InventoryOption) *domain.Inventory {
	base := []InventoryOption{
		WithItems(domain.RoleInnerWear, "Cami"),
		WithItems(domain.RoleShortSleeve, "Tee"),
		WithItems(domain.RoleLongSleeve, "Polo", "Knit"),
		WithItems(domain.RoleThickLongSleeve, "Sweater"),
		WithItems(domain.RoleShirt, "Oxford"),
		WithItems(domain.RoleJacket, "Denim"),
		WithItems(domain.RoleThickJacket, "Parka"),
		WithItems(domain.RolePants, "Jeans"),
		WithItems(domain.RoleSkirt, "Pleated"),
		WithItems(domain.RoleDress, "Slip"),
	}
	return NewTestInventory(append(base, opts...)...)
}
