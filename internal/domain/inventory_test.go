package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItem_AppendsTrimmedName(t *testing.T) {
	inv := NewInventory()

	assert.True(t, inv.AddItem("pants", "  Jeans  "))
	assert.Equal(t, []string{"Jeans"}, inv.Items("pants"))
	assert.Equal(t, []string{"pants"}, inv.Order, "new category should be appended to order")
}

func TestAddItem_IgnoresBlankNames(t *testing.T) {
	inv := NewInventory()

	for _, name := range []string{"", " ", "\t\n"} {
		assert.False(t, inv.AddItem("pants", name), "name %q should be rejected", name)
	}
	assert.False(t, inv.Has("pants"))
	assert.Empty(t, inv.Order)
}

func TestAddItem_AllowsDuplicates(t *testing.T) {
	inv := NewInventory()
	inv.AddItem("skirt", "Denim")
	inv.AddItem("skirt", "Denim")

	assert.Equal(t, []string{"Denim", "Denim"}, inv.Items("skirt"))
	assert.Equal(t, []string{"skirt"}, inv.Order)
}

func TestRemoveItem_RemovesAllOccurrences(t *testing.T) {
	inv := NewInventory()
	inv.AddItem("pants", "A")
	inv.AddItem("pants", "B")
	inv.AddItem("pants", "A")

	assert.True(t, inv.RemoveItem("pants", "A"))
	assert.Equal(t, []string{"B"}, inv.Items("pants"))
}

func TestRemoveItem_AbsentIsNoop(t *testing.T) {
	inv := NewInventory()
	inv.AddItem("pants", "A")

	assert.False(t, inv.RemoveItem("pants", "Z"))
	assert.False(t, inv.RemoveItem("skirt", "A"))
	assert.Equal(t, []string{"A"}, inv.Items("pants"))
	assert.False(t, inv.Has("skirt"), "removing from an absent category must not create it")
}

func TestAddRemoveItem_RoundTrip(t *testing.T) {
	inv := DefaultInventory()
	before := append([]string(nil), inv.Items("pants")...)

	require.True(t, inv.AddItem("pants", "X"))
	require.True(t, inv.RemoveItem("pants", "X"))

	assert.Equal(t, before, inv.Items("pants"))
	assert.Len(t, inv.Items("pants"), len(before))
}

func TestAddCategory(t *testing.T) {
	inv := DefaultInventory()
	n := len(inv.Order)

	assert.True(t, inv.AddCategory(" scarves "))
	assert.True(t, inv.Has("scarves"))
	assert.Empty(t, inv.Items("scarves"))
	assert.Equal(t, "scarves", inv.Order[n])

	assert.False(t, inv.AddCategory("scarves"), "duplicate category")
	assert.False(t, inv.AddCategory("pants"), "existing built-in")
	assert.False(t, inv.AddCategory("   "), "blank name")
	assert.Len(t, inv.Order, n+1)
}

func TestRemoveCategory(t *testing.T) {
	inv := DefaultInventory()
	inv.AddCategory("hats")
	inv.AddItem("hats", "Beret")

	assert.True(t, inv.RemoveCategory("hats"))
	assert.False(t, inv.Has("hats"))
	assert.NotContains(t, inv.Order, "hats")
	assert.False(t, inv.RemoveCategory("hats"))
}

func TestRemoveCategory_ModelDoesNotEnforceProtection(t *testing.T) {
	inv := DefaultInventory()

	assert.True(t, inv.RemoveCategory("dress"))
	assert.False(t, inv.Has("dress"))
}

func TestDefaultInventory_CoversBuiltins(t *testing.T) {
	inv := DefaultInventory()

	require.Len(t, inv.Order, len(BuiltinRoles))
	for i, r := range BuiltinRoles {
		assert.Equal(t, string(r), inv.Order[i])
		assert.NotEmpty(t, inv.Role(r), "role %s should have defaults", r)
	}
	assert.Equal(t, 57, inv.TotalItems())
}

func TestDefaultInventory_IsFreshCopy(t *testing.T) {
	a := DefaultInventory()
	a.AddItem("pants", "Extra")

	b := DefaultInventory()
	assert.NotContains(t, b.Items("pants"), "Extra")
}

func TestClone_IsDeep(t *testing.T) {
	inv := DefaultInventory()
	clone := inv.Clone()

	clone.AddItem("pants", "Only in clone")
	clone.AddCategory("socks")

	assert.NotContains(t, inv.Items("pants"), "Only in clone")
	assert.False(t, inv.Has("socks"))
	assert.Equal(t, len(inv.Order)+1, len(clone.Order))
}

func TestRenderableCategories_SkipsDanglingOrderEntries(t *testing.T) {
	inv := &Inventory{
		Categories: map[string][]string{"pants": {"A"}, "hats": {}},
		Order:      []string{"ghost", "hats", "pants"},
	}
	assert.Equal(t, []string{"hats", "pants"}, inv.RenderableCategories())
}

func TestNormalize(t *testing.T) {
	inv := &Inventory{
		Categories: map[string][]string{
			"zebra":  {"Z"},
			"pants":  {"P"},
			"dress":  nil,
			"alpaca": {},
			"shirt":  {"S"},
		},
		Order: []string{"shirt", "ghost", "shirt", "zebra"},
	}

	inv.Normalize()

	assert.Equal(t, []string{"shirt", "zebra", "pants", "dress", "alpaca"}, inv.Order)
	assert.NotNil(t, inv.Items("dress"), "nil sequences become empty")
}

func TestNormalize_NilCategories(t *testing.T) {
	inv := &Inventory{Order: []string{"pants"}}
	inv.Normalize()

	assert.NotNil(t, inv.Categories)
	assert.Empty(t, inv.Order)
}

func TestIsProtected(t *testing.T) {
	for _, r := range BuiltinRoles {
		assert.True(t, IsProtected(string(r)), "%s should be protected", r)
	}
	assert.False(t, IsProtected("hats"))
	assert.False(t, IsProtected(""))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "thick jacket", DisplayName("thickJacket"))
	assert.Equal(t, "hats", DisplayName("hats"))
}

func TestOuterInnerRoles(t *testing.T) {
	assert.Equal(t, []Role{RoleShortSleeve, RoleLongSleeve}, OuterInnerRoles(RoleJacket))
	assert.Equal(t, []Role{RoleLongSleeve, RoleThickLongSleeve}, OuterInnerRoles(RoleThickJacket))
	assert.Nil(t, OuterInnerRoles(RoleShirt))
}
