package item

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fretlog/fretlog/internal/database"
	"github.com/fretlog/fretlog/internal/id"
)

// OrderUpdate assigns a new display-order value to one item.
type OrderUpdate struct {
	Key   id.Internal
	Order int
}

// Repository defines storage operations for items. ResolveKey is the only
// supported conversion from an external identifier to a storage key.
type Repository interface {
	FindAll(ctx context.Context) ([]Item, error)
	FindSummaries(ctx context.Context) ([]Summary, error)
	Find(ctx context.Context, key id.Internal) (*Item, error)
	FindByExternalID(ctx context.Context, ext id.External) (*Item, error)
	ResolveKey(ctx context.Context, ext id.External) (id.Internal, error)
	SearchByTitle(ctx context.Context, query string) ([]Item, error)
	FindByTuning(ctx context.Context, tuning string) ([]Item, error)
	Create(ctx context.Context, it *Item) error
	Update(ctx context.Context, it *Item) error
	Delete(ctx context.Context, key id.Internal) error
	UpdateOrder(ctx context.Context, updates []OrderUpdate) error
	Count(ctx context.Context) (int, error)
	CountByTuning(ctx context.Context) (map[string]int, error)
}

// DBRepository implements Repository over a SQL database. It accepts a
// database.Queryer so a service can run it inside or outside a transaction.
type DBRepository struct {
	q database.Queryer
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(q database.Queryer) *DBRepository {
	return &DBRepository{q: q}
}

// FindAll returns every item sorted by display order, then title. Display
// order is a client-side sort hint and may contain gaps.
func (r *DBRepository) FindAll(ctx context.Context) ([]Item, error) {
	var items []Item
	if err := sqlx.SelectContext(ctx, r.q, &items, "SELECT * FROM items ORDER BY `order`, title"); err != nil {
		return nil, fmt.Errorf("load all items: %w", err)
	}
	return items, nil
}

// FindSummaries returns the lightweight listing shape in the same order as
// FindAll.
func (r *DBRepository) FindSummaries(ctx context.Context) ([]Summary, error) {
	var summaries []Summary
	query := "SELECT id, item_id, title, `order`, tuning FROM items ORDER BY `order`, title"
	if err := sqlx.SelectContext(ctx, r.q, &summaries, query); err != nil {
		return nil, fmt.Errorf("load item summaries: %w", err)
	}
	return summaries, nil
}

// Find returns the item with the given storage key.
func (r *DBRepository) Find(ctx context.Context, key id.Internal) (*Item, error) {
	var it Item
	if err := sqlx.GetContext(ctx, r.q, &it, "SELECT * FROM items WHERE id = ?", key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("item %d: %w", key, database.ErrNotFound)
		}
		return nil, fmt.Errorf("load item %d: %w", key, err)
	}
	return &it, nil
}

// FindByExternalID returns the item with the given external identifier.
func (r *DBRepository) FindByExternalID(ctx context.Context, ext id.External) (*Item, error) {
	var it Item
	if err := sqlx.GetContext(ctx, r.q, &it, "SELECT * FROM items WHERE item_id = ?", ext); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("item %q: %w", ext, database.ErrNotFound)
		}
		return nil, fmt.Errorf("load item %q: %w", ext, err)
	}
	return &it, nil
}

// ResolveKey converts an external identifier to the storage key of the item
// it names. The external identifier is matched as opaque text; historical
// values that happen to look numeric must never be compared as numbers.
// Always a fresh lookup, because an item and a row referencing it can be
// created within the same request.
func (r *DBRepository) ResolveKey(ctx context.Context, ext id.External) (id.Internal, error) {
	var key id.Internal
	if err := sqlx.GetContext(ctx, r.q, &key, "SELECT id FROM items WHERE item_id = ?", ext); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("item %q: %w", ext, database.ErrNotFound)
		}
		return 0, fmt.Errorf("resolve item %q: %w", ext, err)
	}
	return key, nil
}

// SearchByTitle returns items whose title contains the query, sorted like
// FindAll.
func (r *DBRepository) SearchByTitle(ctx context.Context, query string) ([]Item, error) {
	var items []Item
	pattern := "%" + query + "%"
	err := sqlx.SelectContext(ctx, r.q, &items,
		"SELECT * FROM items WHERE title LIKE ? ORDER BY `order`, title", pattern)
	if err != nil {
		return nil, fmt.Errorf("search items by title %q: %w", query, err)
	}
	return items, nil
}

// FindByTuning returns items using the given tuning, sorted like FindAll.
func (r *DBRepository) FindByTuning(ctx context.Context, tuning string) ([]Item, error) {
	var items []Item
	err := sqlx.SelectContext(ctx, r.q, &items,
		"SELECT * FROM items WHERE tuning = ? ORDER BY `order`, title", tuning)
	if err != nil {
		return nil, fmt.Errorf("load items by tuning %q: %w", tuning, err)
	}
	return items, nil
}

// Create inserts a new item and fills in its assigned storage key. An empty
// external identifier is defaulted to the stringified storage key; a
// non-empty one must be unique among existing items.
func (r *DBRepository) Create(ctx context.Context, it *Item) error {
	if it.Title == "" {
		return fmt.Errorf("item title is required: %w", database.ErrInvalidInput)
	}
	if !it.ExternalID.IsEmpty() {
		if _, err := r.ResolveKey(ctx, it.ExternalID); err == nil {
			return fmt.Errorf("item id %q already exists: %w", it.ExternalID, database.ErrInvalidInput)
		} else if !errors.Is(err, database.ErrNotFound) {
			return err
		}
	}

	now := database.Timestamp()
	it.CreatedAt = now
	it.UpdatedAt = now
	result, err := r.q.ExecContext(ctx,
		"INSERT INTO items (item_id, title, notes, duration, description, `order`, tuning, songbook, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		it.ExternalID, it.Title, it.Notes, it.Duration, it.Description, it.Order, it.Tuning, it.Songbook, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	key, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get item insert ID: %w", err)
	}
	it.Key = id.Internal(key)

	if it.ExternalID.IsEmpty() {
		it.ExternalID = it.Key.DefaultExternal()
		if _, err := r.q.ExecContext(ctx, "UPDATE items SET item_id = ? WHERE id = ?", it.ExternalID, it.Key); err != nil {
			return fmt.Errorf("assign default item id: %w", err)
		}
	}
	return nil
}

// Update overwrites the mutable columns of the item identified by it.Key.
// The external identifier is immutable after creation.
func (r *DBRepository) Update(ctx context.Context, it *Item) error {
	it.UpdatedAt = database.Timestamp()
	_, err := r.q.ExecContext(ctx,
		"UPDATE items SET title = ?, notes = ?, duration = ?, description = ?, `order` = ?, tuning = ?, songbook = ?, updated_at = ? WHERE id = ?",
		it.Title, it.Notes, it.Duration, it.Description, it.Order, it.Tuning, it.Songbook, it.UpdatedAt, it.Key)
	if err != nil {
		return fmt.Errorf("update item %d: %w", it.Key, err)
	}
	return nil
}

// Delete removes the item row. Chord chart cleanup is the service layer's
// responsibility.
func (r *DBRepository) Delete(ctx context.Context, key id.Internal) error {
	result, err := r.q.ExecContext(ctx, "DELETE FROM items WHERE id = ?", key)
	if err != nil {
		return fmt.Errorf("delete item %d: %w", key, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get deleted item count: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("item %d: %w", key, database.ErrNotFound)
	}
	return nil
}

// UpdateOrder overwrites the display order of the referenced items. Items
// not referenced keep their current value; there is no implicit renumbering.
func (r *DBRepository) UpdateOrder(ctx context.Context, updates []OrderUpdate) error {
	for _, u := range updates {
		if _, err := r.q.ExecContext(ctx, "UPDATE items SET `order` = ? WHERE id = ?", u.Order, u.Key); err != nil {
			return fmt.Errorf("update order of item %d: %w", u.Key, err)
		}
	}
	return nil
}

// Count returns the number of items.
func (r *DBRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := sqlx.GetContext(ctx, r.q, &count, "SELECT COUNT(*) FROM items"); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return count, nil
}

// CountByTuning returns how many items use each non-empty tuning.
func (r *DBRepository) CountByTuning(ctx context.Context) (map[string]int, error) {
	rows, err := r.q.QueryxContext(ctx,
		"SELECT tuning, COUNT(*) FROM items WHERE tuning <> '' GROUP BY tuning")
	if err != nil {
		return nil, fmt.Errorf("count items by tuning: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var tuning string
		var count int
		if err := rows.Scan(&tuning, &count); err != nil {
			return nil, fmt.Errorf("scan tuning count: %w", err)
		}
		counts[tuning] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tuning counts: %w", err)
	}
	return counts, nil
}
