package service

import (
	"context"
	"errors"
	"io"

	"github.com/alexanderramin/wardrobe/internal/domain"
	"github.com/alexanderramin/wardrobe/internal/outfit"
)

// ErrProtectedCategory is returned when removing one of the ten built-in
// categories.
var ErrProtectedCategory = errors.New("built-in categories cannot be removed")

// CatalogRequest asks for one page of filtered outfits. Zero Page and
// PerPage select the first page and the default page size.
type CatalogRequest struct {
	Criteria outfit.Criteria
	Page     int
	PerPage  int
}

// CatalogResponse is one page of the filtered catalog. Total on the embedded
// page counts matches; Generated counts every outfit before filtering.
type CatalogResponse struct {
	outfit.PageResult
	Generated int
}

type WardrobeService interface {
	Inventory(ctx context.Context) (*domain.Inventory, error)
	AddItem(ctx context.Context, category, name string) (bool, error)
	RemoveItem(ctx context.Context, category, name string) (bool, error)
	AddCategory(ctx context.Context, name string) (bool, error)
	RemoveCategory(ctx context.Context, name string) (bool, error)
	Catalog(ctx context.Context, req CatalogRequest) (*CatalogResponse, error)
	Choices(ctx context.Context) (outfit.Choices, error)
	Stats(ctx context.Context) (*outfit.Stats, error)
	Reset(ctx context.Context) error
	Export(ctx context.Context, w io.Writer) error
	Import(ctx context.Context, r io.Reader) (*domain.Inventory, error)
}
