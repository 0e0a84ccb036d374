package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/wardrobe/internal/db"
	"github.com/alexanderramin/wardrobe/internal/domain"
)

// SQLiteWardrobeRepo implements WardrobeRepo as a single JSON document in
// the kv_store table.
type SQLiteWardrobeRepo struct {
	db  db.DBTX
	key string
}

// NewSQLiteWardrobeRepo creates a repo storing the wardrobe under DocumentKey.
func NewSQLiteWardrobeRepo(conn db.DBTX) *SQLiteWardrobeRepo {
	return &SQLiteWardrobeRepo{db: conn, key: DocumentKey}
}

func (r *SQLiteWardrobeRepo) Load(ctx context.Context) (*domain.Inventory, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, r.key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("wardrobe document: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("loading wardrobe document: %w", err)
	}
	inv, err := DecodeDocument([]byte(value))
	if err != nil {
		return nil, fmt.Errorf("wardrobe document %q: %w", r.key, err)
	}
	return inv, nil
}

func (r *SQLiteWardrobeRepo) Save(ctx context.Context, inv *domain.Inventory) error {
	data, err := EncodeDocument(inv)
	if err != nil {
		return err
	}
	query := `INSERT INTO kv_store (key, value, updated_at, revision) VALUES (?, ?, ?, 1)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at,
			revision = kv_store.revision + 1`
	if _, err := r.db.ExecContext(ctx, query, r.key, string(data), nowUTC()); err != nil {
		return fmt.Errorf("saving wardrobe document: %w", err)
	}
	return nil
}

// Revision returns how many times the document has been saved. A missing
// document has revision 0.
func (r *SQLiteWardrobeRepo) Revision(ctx context.Context) (int, error) {
	var revision int
	err := r.db.QueryRowContext(ctx, `SELECT revision FROM kv_store WHERE key = ?`, r.key).Scan(&revision)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading wardrobe revision: %w", err)
	}
	return revision, nil
}
