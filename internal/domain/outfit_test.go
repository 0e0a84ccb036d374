package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutfitDescribe(t *testing.T) {
	pants := Bottom{Role: RolePants, Item: "Jeans"}

	tests := []struct {
		name   string
		outfit Outfit
		want   string
	}{
		{"dress", DressOutfit("Slip"), "Slip(dress)"},
		{"direct", LayeredOutfit(DirectTop(RoleShortSleeve, "Grey"), pants), "Grey(short sleeve) / Jeans(pants)"},
		{"composite", LayeredOutfit(CompositeTop("Plaid", "Camisole"), pants), "Plaid(shirt) + Camisole(inner wear) / Jeans(pants)"},
		{
			"outer",
			LayeredOutfit(OuterTop(RoleThickJacket, "Parka", Garment{Role: RoleLongSleeve, Item: "Polo"}), Bottom{Role: RoleSkirt, Item: "Brown"}),
			"Parka(thick jacket) + Polo(long sleeve) / Brown(skirt)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.outfit.Describe())
		})
	}
}

func TestOutfitPredicates(t *testing.T) {
	dress := DressOutfit("Slip")
	outer := LayeredOutfit(OuterTop(RoleJacket, "Denim", Garment{Role: RoleShortSleeve, Item: "Grey"}), Bottom{Role: RolePants, Item: "Jeans"})
	direct := LayeredOutfit(DirectTop(RoleLongSleeve, "Polo"), Bottom{Role: RolePants, Item: "Jeans"})

	assert.True(t, dress.IsDress())
	assert.False(t, dress.HasOuter())
	assert.True(t, outer.HasOuter())
	assert.False(t, direct.HasOuter())
	assert.False(t, direct.IsDress())
}
