package domain

import (
	"sort"
	"strings"
)

// Inventory is the user's wardrobe: garment names grouped by category, plus
// the order in which categories are displayed.
//
// Order is kept a permutation of the keys of Categories by every mutator.
// Categories that are missing from Order are not rendered, but generation
// never looks at Order.
type Inventory struct {
	Categories map[string][]string
	Order      []string
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{Categories: make(map[string][]string)}
}

// DefaultInventory returns the built-in wardrobe used when nothing has been
// saved yet or the saved state cannot be read.
func DefaultInventory() *Inventory {
	inv := NewInventory()
	defaults := []struct {
		role  Role
		items []string
	}{
		{RoleInnerWear, []string{"Camisole", "White camisole", "Black camisole", "Grey camisole"}},
		{RoleShortSleeve, []string{"White crew neck", "White U-neck", "Black-white stripes", "Grey"}},
		{RoleLongSleeve, []string{"Polo", "Dark coffee brown", "Black cropped hoodie", "Black-grey slim", "Dark grey open knit", "Blue-collar white knit"}},
		{RoleThickLongSleeve, []string{"Grey with blue trim", "Light grey lapel", "Pink", "White cable knit", "Pink V-neck", "Toasted marshmallow", "Blue art print", "Black-white stripes"}},
		{RoleShirt, []string{"White", "Klein blue", "Blue plaid", "Bright blue voile"}},
		{RoleJacket, []string{"White suede", "Khaki suede", "Denim", "Khaki blazer", "Taro purple", "Butterfly", "Green plaid overshirt", "White-blue", "Windbreaker", "White with blue flowers"}},
		{RoleThickJacket, []string{"Tricolor fleece", "Dark grey coat", "Brown coat", "White short puffer", "Khaki parka", "Little black padded coat", "Little white padded coat", "Long black padded coat"}},
		{RolePants, []string{"Army green cargo", "Thin denim jeans", "Off-white", "Straight blue jeans"}},
		{RoleSkirt, []string{"Denim blue", "Grey suiting", "Brown", "Black"}},
		{RoleDress, []string{"Denim pinafore", "Dark grey slip dress", "Khaki pinafore", "Black cotton-linen dress", "White tulle dress"}},
	}
	for _, d := range defaults {
		inv.Categories[string(d.role)] = append([]string(nil), d.items...)
		inv.Order = append(inv.Order, string(d.role))
	}
	return inv
}

// Items returns the garments in a category. Absent categories yield nil.
func (inv *Inventory) Items(category string) []string {
	if inv == nil {
		return nil
	}
	return inv.Categories[category]
}

// Role is shorthand for Items(string(r)).
func (inv *Inventory) Role(r Role) []string {
	return inv.Items(string(r))
}

// Has reports whether the category exists, even if empty.
func (inv *Inventory) Has(category string) bool {
	if inv == nil {
		return false
	}
	_, ok := inv.Categories[category]
	return ok
}

// RenderableCategories returns the renderable categories: entries of Order that have
// a sequence in the inventory.
func (inv *Inventory) RenderableCategories() []string {
	if inv == nil {
		return nil
	}
	out := make([]string, 0, len(inv.Order))
	for _, c := range inv.Order {
		if inv.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// TotalItems counts garments across every category, built-in or custom.
func (inv *Inventory) TotalItems() int {
	if inv == nil {
		return 0
	}
	n := 0
	for _, items := range inv.Categories {
		n += len(items)
	}
	return n
}

// AddItem appends name to category, creating the category when needed.
// Empty or whitespace-only names are ignored. Duplicates are allowed.
func (inv *Inventory) AddItem(category, name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	inv.ensure()
	if !inv.Has(category) {
		inv.Order = append(inv.Order, category)
	}
	inv.Categories[category] = append(inv.Categories[category], name)
	return true
}

// RemoveItem removes every occurrence of name from category.
func (inv *Inventory) RemoveItem(category, name string) bool {
	items := inv.Items(category)
	kept := make([]string, 0, len(items))
	for _, item := range items {
		if item != name {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return false
	}
	inv.Categories[category] = kept
	return true
}

// AddCategory creates an empty category and appends it to the display order.
// Empty names and names that already exist are ignored.
func (inv *Inventory) AddCategory(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || inv.Has(name) {
		return false
	}
	inv.ensure()
	inv.Categories[name] = []string{}
	inv.Order = append(inv.Order, name)
	return true
}

// RemoveCategory deletes a category and drops it from the display order.
// Protection of built-in categories is left to the caller.
func (inv *Inventory) RemoveCategory(name string) bool {
	if !inv.Has(name) {
		return false
	}
	delete(inv.Categories, name)
	order := inv.Order[:0]
	for _, c := range inv.Order {
		if c != name {
			order = append(order, c)
		}
	}
	inv.Order = order
	return true
}

// Clone returns a deep copy.
func (inv *Inventory) Clone() *Inventory {
	if inv == nil {
		return nil
	}
	out := &Inventory{
		Categories: make(map[string][]string, len(inv.Categories)),
		Order:      append([]string(nil), inv.Order...),
	}
	for c, items := range inv.Categories {
		out.Categories[c] = append([]string{}, items...)
	}
	return out
}

// Normalize repairs Order so it is a permutation of the category keys.
// Unknown and duplicate entries are dropped; missing keys are appended with
// built-in roles first in canonical order, then the rest sorted by name.
func (inv *Inventory) Normalize() {
	inv.ensure()
	seen := make(map[string]bool, len(inv.Categories))
	order := make([]string, 0, len(inv.Categories))
	for _, c := range inv.Order {
		if seen[c] || !inv.Has(c) {
			continue
		}
		seen[c] = true
		order = append(order, c)
	}
	for _, r := range BuiltinRoles {
		c := string(r)
		if inv.Has(c) && !seen[c] {
			seen[c] = true
			order = append(order, c)
		}
	}
	var rest []string
	for c := range inv.Categories {
		if !seen[c] {
			rest = append(rest, c)
		}
	}
	sort.Strings(rest)
	inv.Order = append(order, rest...)
	for c, items := range inv.Categories {
		if items == nil {
			inv.Categories[c] = []string{}
		}
	}
}

func (inv *Inventory) ensure() {
	if inv.Categories == nil {
		inv.Categories = make(map[string][]string)
	}
}
