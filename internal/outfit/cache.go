package outfit

import (
	"fmt"

	"github.com/alexanderramin/wardrobe/internal/domain"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mitchellh/hashstructure/v2"
)

// DefaultCacheSize bounds the number of distinct inventories remembered.
const DefaultCacheSize = 16

// Cache memoizes Generate by inventory content. Category order and custom
// categories do not affect the key because generation ignores them.
type Cache struct {
	entries *lru.Cache[uint64, []domain.Outfit]
}

// NewCache creates a Cache holding up to size inventories.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[uint64, []domain.Outfit](size)
	if err != nil {
		return nil, fmt.Errorf("creating outfit cache: %w", err)
	}
	return &Cache{entries: entries}, nil
}

// Generate returns the outfits for inv, computing them on a miss. The
// returned slice is a private copy.
func (c *Cache) Generate(inv *domain.Inventory) ([]domain.Outfit, error) {
	key, err := Fingerprint(inv)
	if err != nil {
		return nil, err
	}
	if cached, ok := c.entries.Get(key); ok {
		return cloneOutfits(cached), nil
	}
	outfits := Generate(inv)
	c.entries.Add(key, cloneOutfits(outfits))
	return outfits, nil
}

// Len reports how many inventories are cached.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Fingerprint hashes the role categories that drive generation.
func Fingerprint(inv *domain.Inventory) (uint64, error) {
	roles := make(map[string][]string, len(domain.BuiltinRoles))
	for _, r := range domain.BuiltinRoles {
		if items := inv.Role(r); len(items) > 0 {
			roles[string(r)] = items
		}
	}
	key, err := hashstructure.Hash(roles, hashstructure.FormatV2, nil)
	if err != nil {
		return 0, fmt.Errorf("hashing inventory: %w", err)
	}
	return key, nil
}

func cloneOutfits(in []domain.Outfit) []domain.Outfit {
	out := make([]domain.Outfit, len(in))
	copy(out, in)
	return out
}
