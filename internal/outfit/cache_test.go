package outfit

import (
	"testing"

	"github.com/alexanderramin/wardrobe/internal/domain"
	"github.com/alexanderramin/wardrobe/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_HitReturnsEqualOutfits(t *testing.T) {
	cache, err := NewCache(4)
	require.NoError(t, err)
	inv := domain.DefaultInventory()

	first, err := cache.Generate(inv)
	require.NoError(t, err)
	second, err := cache.Generate(inv.Clone())
	require.NoError(t, err)

	assert.Equal(t, 1, cache.Len())
	if diff := cmp.Diff(Generate(inv), second); diff != "" {
		t.Errorf("cached outfits differ (-want +got):\n%s", diff)
	}
	assert.Equal(t, len(first), len(second))
}

func TestCache_ResultsAreIndependentCopies(t *testing.T) {
	cache, err := NewCache(4)
	require.NoError(t, err)
	inv := testutil.TwoTopsInventory()

	first, err := cache.Generate(inv)
	require.NoError(t, err)
	first[0].Top.Item = "mutated"

	second, err := cache.Generate(inv)
	require.NoError(t, err)
	assert.Equal(t, "A", second[0].Top.Item)
}

func TestCache_MissOnContentChange(t *testing.T) {
	cache, err := NewCache(4)
	require.NoError(t, err)
	inv := testutil.TwoTopsInventory()

	_, err = cache.Generate(inv)
	require.NoError(t, err)

	inv.AddItem(string(domain.RolePants), "P2")
	got, err := cache.Generate(inv)
	require.NoError(t, err)

	assert.Len(t, got, 6)
	assert.Equal(t, 2, cache.Len())
}

func TestFingerprint_IgnoresOrderAndCustomCategories(t *testing.T) {
	a := testutil.TwoTopsInventory()
	b := testutil.TwoTopsInventory(testutil.WithCategory("hats"))
	b.Order = []string{"skirt", "hats", "pants", "shortSleeve"}

	fa, err := Fingerprint(a)
	require.NoError(t, err)
	fb, err := Fingerprint(b)
	require.NoError(t, err)
	assert.Equal(t, fa, fb)

	c := testutil.TwoTopsInventory()
	c.Categories["shortSleeve"] = []string{"B", "A"}
	fc, err := Fingerprint(c)
	require.NoError(t, err)
	assert.NotEqual(t, fa, fc, "item order changes generation order")
}

func TestNewCache_DefaultSize(t *testing.T) {
	cache, err := NewCache(0)
	require.NoError(t, err)
	assert.Equal(t, 0, cache.Len())
}
