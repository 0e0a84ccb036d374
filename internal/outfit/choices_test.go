package outfit

import (
	"testing"

	"github.com/alexanderramin/wardrobe/internal/domain"
	"github.com/alexanderramin/wardrobe/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestChoicesFor(t *testing.T) {
	inv := testutil.FullInventory()
	inv.AddItem("hats", "Beret")

	c := ChoicesFor(inv)

	assert.Equal(t, []Selection{Select(domain.RoleDress, "Slip")}, c.Dress)
	assert.Equal(t, []Selection{
		Select(domain.RoleJacket, "Denim"),
		Select(domain.RoleThickJacket, "Parka"),
	}, c.Outer)
	assert.Equal(t, []Selection{
		Select(domain.RoleShortSleeve, "Tee"),
		Select(domain.RoleLongSleeve, "Polo"),
		Select(domain.RoleLongSleeve, "Knit"),
		Select(domain.RoleThickLongSleeve, "Sweater"),
		Select(domain.RoleShirt, "Oxford"),
		Select(domain.RoleInnerWear, "Cami"),
	}, c.Middle)
	assert.Equal(t, []Selection{
		Select(domain.RolePants, "Jeans"),
		Select(domain.RoleSkirt, "Pleated"),
	}, c.Bottom)
	assert.Equal(t, c.Outer, c.For(DimOuter))
	assert.Nil(t, c.For(Dimension("hat")))
}

func TestChoicesFor_EveryChoiceMatchesSomething(t *testing.T) {
	inv := testutil.FullInventory()
	outfits := Generate(inv)
	c := ChoicesFor(inv)

	for _, dim := range []Dimension{DimDress, DimOuter, DimMiddle, DimBottom} {
		for _, sel := range c.For(dim) {
			var crit Criteria
			switch dim {
			case DimDress:
				crit.Dress = sel
			case DimOuter:
				crit.Outer = sel
			case DimMiddle:
				crit.Middle = sel
			case DimBottom:
				crit.Bottom = sel
			}
			assert.NoError(t, crit.Validate())
			assert.NotEmpty(t, Filter(outfits, crit), "%s %s should match", dim, sel)
		}
	}
}
