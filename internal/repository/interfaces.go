package repository

import (
	"context"

	"github.com/alexanderramin/wardrobe/internal/domain"
)

// DocumentKey is the fixed key the wardrobe document is stored under.
const DocumentKey = "my-wardrobe-data"

type WardrobeRepo interface {
	Load(ctx context.Context) (*domain.Inventory, error)
	Save(ctx context.Context, inv *domain.Inventory) error
	Revision(ctx context.Context) (int, error)
}
