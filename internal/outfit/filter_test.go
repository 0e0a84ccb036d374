package outfit

import (
	"testing"

	"github.com/alexanderramin/wardrobe/internal/domain"
	"github.com/alexanderramin/wardrobe/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_IdentityWhenUnconstrained(t *testing.T) {
	outfits := Generate(domain.DefaultInventory())

	got := Filter(outfits, Criteria{})

	if diff := cmp.Diff(outfits, got); diff != "" {
		t.Errorf("Filter() with no criteria changed output (-want +got):\n%s", diff)
	}
}

func TestFilter_MiddleDirectTop(t *testing.T) {
	outfits := Generate(testutil.TwoTopsInventory())

	got := Filter(outfits, Criteria{Middle: Select(domain.RoleShortSleeve, "A")})

	want := []domain.Outfit{
		domain.LayeredOutfit(domain.DirectTop(domain.RoleShortSleeve, "A"), p1),
		domain.LayeredOutfit(domain.DirectTop(domain.RoleShortSleeve, "A"), s1),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_MiddleMatchesInnerOfOuterLayer(t *testing.T) {
	outfits := Generate(testutil.FullInventory())

	got := Filter(outfits, Criteria{Middle: Select(domain.RoleLongSleeve, "Polo")})

	// direct Polo + jacket over Polo + thick jacket over Polo, each over 2 bottoms
	require.Len(t, got, 6)
	var layers []domain.Layer
	for _, o := range got {
		layers = append(layers, o.Top.Layer)
		if o.HasOuter() {
			assert.Equal(t, "Polo", o.Top.Inner.Item)
		} else {
			assert.Equal(t, "Polo", o.Top.Item)
		}
	}
	assert.Equal(t, []domain.Layer{
		domain.LayerDirect, domain.LayerDirect,
		domain.LayerOuter, domain.LayerOuter,
		domain.LayerOuter, domain.LayerOuter,
	}, layers)
}

func TestFilter_MiddleShirtAndInnerWear(t *testing.T) {
	inv := testutil.NewTestInventory(
		testutil.WithItems(domain.RoleShirt, "Oxford", "Linen"),
		testutil.WithItems(domain.RoleInnerWear, "Cami", "Tank"),
		testutil.WithItems(domain.RoleShortSleeve, "Tee"),
		testutil.WithItems(domain.RolePants, "Jeans"),
	)
	outfits := Generate(inv)

	byShirt := Filter(outfits, Criteria{Middle: Select(domain.RoleShirt, "Linen")})
	require.Len(t, byShirt, 2)
	for _, o := range byShirt {
		assert.Equal(t, domain.LayerComposite, o.Top.Layer)
		assert.Equal(t, "Linen", o.Top.Item)
	}

	byInner := Filter(outfits, Criteria{Middle: Select(domain.RoleInnerWear, "Tank")})
	require.Len(t, byInner, 2)
	assert.Equal(t, "Oxford", byInner[0].Top.Item)
	assert.Equal(t, "Linen", byInner[1].Top.Item)
}

func TestFilter_InnerWearNeverMatchesDirectTop(t *testing.T) {
	inv := testutil.NewTestInventory(
		testutil.WithItems(domain.RoleShortSleeve, "Cami"),
		testutil.WithItems(domain.RolePants, "Jeans"),
	)

	got := Filter(Generate(inv), Criteria{Middle: Select(domain.RoleInnerWear, "Cami")})

	assert.Empty(t, got)
}

func TestFilter_MiddleFamilyMustMatch(t *testing.T) {
	inv := testutil.NewTestInventory(
		testutil.WithItems(domain.RoleShortSleeve, "Stripes"),
		testutil.WithItems(domain.RoleThickLongSleeve, "Stripes"),
		testutil.WithItems(domain.RolePants, "Jeans"),
	)

	got := Filter(Generate(inv), Criteria{Middle: Select(domain.RoleThickLongSleeve, "Stripes")})

	require.Len(t, got, 1)
	assert.Equal(t, domain.RoleThickLongSleeve, got[0].Top.Family)
}

func TestFilter_Outer(t *testing.T) {
	outfits := Generate(testutil.FullInventory())

	got := Filter(outfits, Criteria{Outer: Select(domain.RoleThickJacket, "Parka")})

	// Parka over Polo, Knit, Sweater; two bottoms each
	require.Len(t, got, 6)
	for _, o := range got {
		assert.True(t, o.HasOuter())
		assert.Equal(t, domain.RoleThickJacket, o.Top.Family)
		assert.Equal(t, "Parka", o.Top.Item)
	}

	wrongFamily := Filter(outfits, Criteria{Outer: Select(domain.RoleJacket, "Parka")})
	assert.Empty(t, wrongFamily)
}

func TestFilter_Bottom(t *testing.T) {
	outfits := Generate(testutil.TwoTopsInventory())

	got := Filter(outfits, Criteria{Bottom: Select(domain.RoleSkirt, "S1")})

	require.Len(t, got, 2)
	for _, o := range got {
		assert.Equal(t, s1, o.Bottom)
	}
	assert.Empty(t, Filter(outfits, Criteria{Bottom: Select(domain.RolePants, "S1")}))
}

func TestFilter_Conjunctive(t *testing.T) {
	outfits := Generate(testutil.FullInventory())

	got := Filter(outfits, Criteria{
		Outer:  Select(domain.RoleJacket, "Denim"),
		Middle: Select(domain.RoleLongSleeve, "Knit"),
		Bottom: Select(domain.RoleSkirt, "Pleated"),
	})

	require.Len(t, got, 1)
	assert.Equal(t, "Denim(jacket) + Knit(long sleeve) / Pleated(skirt)", got[0].Describe())
}

func TestFilter_DressExclusivity(t *testing.T) {
	outfits := Generate(testutil.FullInventory())

	t.Run("dress filter drops layered outfits", func(t *testing.T) {
		got := Filter(outfits, Criteria{Dress: Select(domain.RoleDress, "Slip")})
		require.Len(t, got, 1)
		assert.True(t, got[0].IsDress())
		assert.Equal(t, "Slip", got[0].Dress)
	})

	t.Run("unknown dress matches nothing", func(t *testing.T) {
		assert.Empty(t, Filter(outfits, Criteria{Dress: Select(domain.RoleDress, "Gown")}))
	})

	for name, c := range map[string]Criteria{
		"outer":  {Outer: Select(domain.RoleJacket, "Denim")},
		"middle": {Middle: Select(domain.RoleShortSleeve, "Tee")},
		"bottom": {Bottom: Select(domain.RolePants, "Jeans")},
	} {
		t.Run(name+" filter drops dresses", func(t *testing.T) {
			got := Filter(outfits, c)
			require.NotEmpty(t, got)
			for _, o := range got {
				assert.False(t, o.IsDress())
			}
		})
	}

	t.Run("dress plus layered filter is empty", func(t *testing.T) {
		got := Filter(outfits, Criteria{
			Dress:  Select(domain.RoleDress, "Slip"),
			Bottom: Select(domain.RolePants, "Jeans"),
		})
		assert.Empty(t, got)
	})
}

func TestFilter_PreservesOrderAndInput(t *testing.T) {
	outfits := Generate(domain.DefaultInventory())
	before := append([]domain.Outfit(nil), outfits...)

	got := Filter(outfits, Criteria{Bottom: Select(domain.RoleSkirt, "Brown")})

	if diff := cmp.Diff(before, outfits); diff != "" {
		t.Errorf("Filter() mutated input (-before +after):\n%s", diff)
	}

	idx := 0
	for _, o := range got {
		for outfits[idx] != o {
			idx++
			require.Less(t, idx, len(outfits), "result order diverges from input order")
		}
		idx++
	}
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name string
		dim  Dimension
		raw  string
		want Selection
	}{
		{"empty", DimMiddle, "", Selection{}},
		{"all", DimBottom, "all", Selection{}},
		{"middle", DimMiddle, "shortSleeve:Grey", Select(domain.RoleShortSleeve, "Grey")},
		{"item with colon", DimOuter, "jacket:Coat: long", Select(domain.RoleJacket, "Coat: long")},
		{"bare dress", DimDress, "Slip dress", Select(domain.RoleDress, "Slip dress")},
		{"qualified dress", DimDress, "dress:Slip", Select(domain.RoleDress, "Slip")},
		{"trimmed", DimBottom, " skirt : Brown ", Select(domain.RoleSkirt, "Brown")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSelection(tc.dim, tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseSelection_Rejects(t *testing.T) {
	tests := []struct {
		name string
		dim  Dimension
		raw  string
	}{
		{"missing role", DimMiddle, "Grey"},
		{"missing item", DimBottom, "pants:"},
		{"outer role in middle", DimMiddle, "jacket:Denim"},
		{"dress in bottom", DimBottom, "dress:Slip"},
		{"custom category", DimOuter, "hats:Beret"},
		{"unknown dimension", Dimension("hat"), "pants:Jeans"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSelection(tc.dim, tc.raw)
			assert.ErrorIs(t, err, ErrInvalidSelection)
		})
	}
}

func TestSelectionString(t *testing.T) {
	assert.Equal(t, "", Selection{}.String())
	assert.Equal(t, "pants:Jeans", Select(domain.RolePants, "Jeans").String())

	round, err := ParseSelection(DimMiddle, Select(domain.RoleInnerWear, "Cami").String())
	require.NoError(t, err)
	assert.Equal(t, Select(domain.RoleInnerWear, "Cami"), round)
}

func TestCriteriaValidate(t *testing.T) {
	assert.NoError(t, Criteria{}.Validate())
	assert.NoError(t, Criteria{
		Dress:  Select(domain.RoleDress, "Slip"),
		Outer:  Select(domain.RoleThickJacket, "Parka"),
		Middle: Select(domain.RoleShirt, "Oxford"),
		Bottom: Select(domain.RoleSkirt, "Pleated"),
	}.Validate())

	err := Criteria{Outer: Select(domain.RoleShortSleeve, "Tee")}.Validate()
	assert.ErrorIs(t, err, ErrInvalidSelection)
}
