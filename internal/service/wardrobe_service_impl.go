package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/wardrobe/internal/db"
	"github.com/alexanderramin/wardrobe/internal/domain"
	"github.com/alexanderramin/wardrobe/internal/outfit"
	"github.com/alexanderramin/wardrobe/internal/repository"
	"go.uber.org/zap"
)

type wardrobeService struct {
	wardrobe repository.WardrobeRepo
	uow      db.UnitOfWork
	cache    *outfit.Cache
	logger   *zap.Logger
	observer UseCaseObserver
}

// NewWardrobeService wires the wardrobe use cases. A nil cache generates on
// every call; a nil logger discards warnings.
func NewWardrobeService(
	wardrobe repository.WardrobeRepo,
	uow db.UnitOfWork,
	cache *outfit.Cache,
	logger *zap.Logger,
	observers ...UseCaseObserver,
) WardrobeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &wardrobeService{
		wardrobe: wardrobe,
		uow:      uow,
		cache:    cache,
		logger:   logger,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *wardrobeService) Inventory(ctx context.Context) (*domain.Inventory, error) {
	return s.load(ctx, s.wardrobe)
}

func (s *wardrobeService) AddItem(ctx context.Context, category, name string) (changed bool, err error) {
	fields := map[string]any{"category": category, "item": name}
	defer observe(ctx, s.observer, "add-item", time.Now().UTC(), fields, &err)

	changed, err = s.mutate(ctx, func(inv *domain.Inventory) (bool, error) {
		return inv.AddItem(category, name), nil
	})
	fields["changed"] = changed
	return changed, err
}

func (s *wardrobeService) RemoveItem(ctx context.Context, category, name string) (changed bool, err error) {
	fields := map[string]any{"category": category, "item": name}
	defer observe(ctx, s.observer, "remove-item", time.Now().UTC(), fields, &err)

	changed, err = s.mutate(ctx, func(inv *domain.Inventory) (bool, error) {
		return inv.RemoveItem(category, name), nil
	})
	fields["changed"] = changed
	return changed, err
}

func (s *wardrobeService) AddCategory(ctx context.Context, name string) (changed bool, err error) {
	fields := map[string]any{"category": name}
	defer observe(ctx, s.observer, "add-category", time.Now().UTC(), fields, &err)

	changed, err = s.mutate(ctx, func(inv *domain.Inventory) (bool, error) {
		return inv.AddCategory(name), nil
	})
	fields["changed"] = changed
	return changed, err
}

func (s *wardrobeService) RemoveCategory(ctx context.Context, name string) (changed bool, err error) {
	fields := map[string]any{"category": name}
	defer observe(ctx, s.observer, "remove-category", time.Now().UTC(), fields, &err)

	if domain.IsProtected(name) {
		return false, fmt.Errorf("removing %q: %w", name, ErrProtectedCategory)
	}
	changed, err = s.mutate(ctx, func(inv *domain.Inventory) (bool, error) {
		return inv.RemoveCategory(name), nil
	})
	fields["changed"] = changed
	return changed, err
}

func (s *wardrobeService) Catalog(ctx context.Context, req CatalogRequest) (resp *CatalogResponse, err error) {
	fields := map[string]any{"page": req.Page}
	defer observe(ctx, s.observer, "catalog", time.Now().UTC(), fields, &err)

	if err = req.Criteria.Validate(); err != nil {
		return nil, err
	}
	var inv *domain.Inventory
	if inv, err = s.load(ctx, s.wardrobe); err != nil {
		return nil, err
	}
	var all []domain.Outfit
	if all, err = s.generate(inv); err != nil {
		return nil, err
	}
	matched := outfit.Filter(all, req.Criteria)
	resp = &CatalogResponse{
		PageResult: outfit.Page(matched, req.Page, req.PerPage),
		Generated:  len(all),
	}
	fields["generated"] = resp.Generated
	fields["matched"] = resp.Total
	return resp, nil
}

func (s *wardrobeService) Choices(ctx context.Context) (outfit.Choices, error) {
	inv, err := s.load(ctx, s.wardrobe)
	if err != nil {
		return outfit.Choices{}, err
	}
	return outfit.ChoicesFor(inv), nil
}

func (s *wardrobeService) Stats(ctx context.Context) (*outfit.Stats, error) {
	inv, err := s.load(ctx, s.wardrobe)
	if err != nil {
		return nil, err
	}
	all, err := s.generate(inv)
	if err != nil {
		return nil, err
	}
	stats := outfit.Summarize(inv, all)
	return &stats, nil
}

func (s *wardrobeService) Reset(ctx context.Context) (err error) {
	defer observe(ctx, s.observer, "reset", time.Now().UTC(), nil, &err)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteWardrobeRepo(tx).Save(ctx, domain.DefaultInventory())
	})
}

func (s *wardrobeService) Export(ctx context.Context, w io.Writer) (err error) {
	defer observe(ctx, s.observer, "export", time.Now().UTC(), nil, &err)

	var inv *domain.Inventory
	if inv, err = s.load(ctx, s.wardrobe); err != nil {
		return err
	}
	var data []byte
	if data, err = repository.EncodeDocument(inv); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err = json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("formatting export: %w", err)
	}
	buf.WriteByte('\n')
	if _, err = buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// Import replaces the stored wardrobe with the document read from r.
// Unlike startup loading, a malformed document is an error here.
func (s *wardrobeService) Import(ctx context.Context, r io.Reader) (inv *domain.Inventory, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "import", time.Now().UTC(), fields, &err)

	var data []byte
	if data, err = io.ReadAll(r); err != nil {
		return nil, fmt.Errorf("reading import: %w", err)
	}
	if inv, err = repository.DecodeDocument(data); err != nil {
		return nil, fmt.Errorf("importing wardrobe: %w", err)
	}
	fields["categories"] = len(inv.Order)
	fields["garments"] = inv.TotalItems()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteWardrobeRepo(tx).Save(ctx, inv)
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// load reads the stored wardrobe. A missing or malformed document yields the
// default inventory; any other storage failure is returned.
func (s *wardrobeService) load(ctx context.Context, repo repository.WardrobeRepo) (*domain.Inventory, error) {
	inv, err := repo.Load(ctx)
	switch {
	case err == nil:
		return inv, nil
	case errors.Is(err, repository.ErrNotFound):
		return domain.DefaultInventory(), nil
	case errors.Is(err, repository.ErrMalformedDocument):
		s.logger.Warn("stored wardrobe is malformed, using defaults", zap.Error(err))
		return domain.DefaultInventory(), nil
	default:
		return nil, err
	}
}

// mutate loads, applies and saves inside one transaction. Nothing is written
// when apply reports no change.
func (s *wardrobeService) mutate(ctx context.Context, apply func(inv *domain.Inventory) (bool, error)) (bool, error) {
	var changed bool
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txWardrobe := repository.NewSQLiteWardrobeRepo(tx)

		inv, err := s.load(ctx, txWardrobe)
		if err != nil {
			return err
		}
		if changed, err = apply(inv); err != nil || !changed {
			return err
		}
		return txWardrobe.Save(ctx, inv)
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

func (s *wardrobeService) generate(inv *domain.Inventory) ([]domain.Outfit, error) {
	if s.cache == nil {
		return outfit.Generate(inv), nil
	}
	return s.cache.Generate(inv)
}
