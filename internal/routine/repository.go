package routine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fretlog/fretlog/internal/database"
	"github.com/fretlog/fretlog/internal/id"
	"github.com/fretlog/fretlog/internal/item"
)

// OrderUpdate assigns a new display-order value to one row.
type OrderUpdate struct {
	ID    int64
	Order int
}

// Repository defines storage operations for routines and their entries.
type Repository interface {
	FindAll(ctx context.Context) ([]Routine, error)
	Find(ctx context.Context, routineID int64) (*Routine, error)
	Create(ctx context.Context, r *Routine) error
	Update(ctx context.Context, r *Routine) error
	Delete(ctx context.Context, routineID int64) error
	Entries(ctx context.Context, routineID int64) ([]Entry, error)
	FindEntry(ctx context.Context, routineID, entryID int64) (*Entry, error)
	AddItem(ctx context.Context, routineID int64, ext id.External, order *int) (*Entry, error)
	RemoveItem(ctx context.Context, routineID int64, ext id.External) error
	RemoveEntry(ctx context.Context, routineID, entryID int64) error
	UpdateEntriesOrder(ctx context.Context, routineID int64, updates []OrderUpdate) error
	UpdateRoutinesOrder(ctx context.Context, updates []OrderUpdate) error
	SetEntryCompleted(ctx context.Context, routineID, entryID int64, completed bool) error
	ResetProgress(ctx context.Context, routineID int64) error
	Count(ctx context.Context) (int, error)
}

// entryColumns joins the item's external identifier onto each entry so the
// wire shape never has to expose a storage key.
const entryColumns = "SELECT ri.id, ri.routine_id, ri.item_id, ri.`order`, ri.completed, ri.created_at, i.item_id AS item_external_id " +
	"FROM routine_items ri JOIN items i ON i.id = ri.item_id"

// DBRepository implements Repository over a SQL database.
type DBRepository struct {
	q database.Queryer
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(q database.Queryer) *DBRepository {
	return &DBRepository{q: q}
}

// FindAll returns every routine in creation order. The display-order column
// is deliberately not consulted: row creation order is the sequence clients
// rely on.
func (r *DBRepository) FindAll(ctx context.Context) ([]Routine, error) {
	var routines []Routine
	if err := sqlx.SelectContext(ctx, r.q, &routines, "SELECT * FROM routines ORDER BY id"); err != nil {
		return nil, fmt.Errorf("load all routines: %w", err)
	}
	return routines, nil
}

// Find returns the routine with the given identifier.
func (r *DBRepository) Find(ctx context.Context, routineID int64) (*Routine, error) {
	var routine Routine
	if err := sqlx.GetContext(ctx, r.q, &routine, "SELECT * FROM routines WHERE id = ?", routineID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("routine %d: %w", routineID, database.ErrNotFound)
		}
		return nil, fmt.Errorf("load routine %d: %w", routineID, err)
	}
	return &routine, nil
}

// Create inserts a routine. A non-zero ID is preserved; this keeps routine
// identifiers stable when rows are replayed from the spreadsheet backend.
func (r *DBRepository) Create(ctx context.Context, routine *Routine) error {
	if routine.Name == "" {
		return fmt.Errorf("routine name is required: %w", database.ErrInvalidInput)
	}
	routine.CreatedAt = database.Timestamp()
	if routine.ID != 0 {
		_, err := r.q.ExecContext(ctx,
			"INSERT INTO routines (id, name, created_at, `order`) VALUES (?, ?, ?, ?)",
			routine.ID, routine.Name, routine.CreatedAt, routine.Order)
		if err != nil {
			return fmt.Errorf("insert routine %d: %w", routine.ID, err)
		}
		return nil
	}
	result, err := r.q.ExecContext(ctx,
		"INSERT INTO routines (name, created_at, `order`) VALUES (?, ?, ?)",
		routine.Name, routine.CreatedAt, routine.Order)
	if err != nil {
		return fmt.Errorf("insert routine: %w", err)
	}
	routineID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get routine insert ID: %w", err)
	}
	routine.ID = routineID
	return nil
}

// Update overwrites the routine's name and display order.
func (r *DBRepository) Update(ctx context.Context, routine *Routine) error {
	_, err := r.q.ExecContext(ctx,
		"UPDATE routines SET name = ?, `order` = ? WHERE id = ?",
		routine.Name, routine.Order, routine.ID)
	if err != nil {
		return fmt.Errorf("update routine %d: %w", routine.ID, err)
	}
	return nil
}

// Delete removes the routine and all of its entries.
func (r *DBRepository) Delete(ctx context.Context, routineID int64) error {
	if _, err := r.q.ExecContext(ctx, "DELETE FROM routine_items WHERE routine_id = ?", routineID); err != nil {
		return fmt.Errorf("delete entries of routine %d: %w", routineID, err)
	}
	result, err := r.q.ExecContext(ctx, "DELETE FROM routines WHERE id = ?", routineID)
	if err != nil {
		return fmt.Errorf("delete routine %d: %w", routineID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get deleted routine count: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("routine %d: %w", routineID, database.ErrNotFound)
	}
	return nil
}

// Entries returns the routine's entries in row creation order. Never sort
// these by the display-order column: it holds drag-and-drop hints with gaps
// and has no positional meaning on the read path.
func (r *DBRepository) Entries(ctx context.Context, routineID int64) ([]Entry, error) {
	var entries []Entry
	err := sqlx.SelectContext(ctx, r.q, &entries,
		entryColumns+" WHERE ri.routine_id = ? ORDER BY ri.id", routineID)
	if err != nil {
		return nil, fmt.Errorf("load entries of routine %d: %w", routineID, err)
	}
	return entries, nil
}

// FindEntry returns one entry of the routine.
func (r *DBRepository) FindEntry(ctx context.Context, routineID, entryID int64) (*Entry, error) {
	var e Entry
	err := sqlx.GetContext(ctx, r.q, &e,
		entryColumns+" WHERE ri.routine_id = ? AND ri.id = ?", routineID, entryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("entry %d of routine %d: %w", entryID, routineID, database.ErrNotFound)
		}
		return nil, fmt.Errorf("load entry %d of routine %d: %w", entryID, routineID, err)
	}
	return &e, nil
}

// AddItem appends an item to the routine. The external identifier must
// resolve to an existing item; otherwise the whole operation fails. Without
// an explicit order the entry gets max(order)+1 within the routine, so a
// fresh routine starts at 1.
func (r *DBRepository) AddItem(ctx context.Context, routineID int64, ext id.External, order *int) (*Entry, error) {
	if _, err := r.Find(ctx, routineID); err != nil {
		return nil, err
	}
	key, err := item.NewDBRepository(r.q).ResolveKey(ctx, ext)
	if err != nil {
		return nil, err
	}

	entryOrder := 0
	if order != nil {
		entryOrder = *order
	} else {
		var maxOrder sql.NullInt64
		err := sqlx.GetContext(ctx, r.q, &maxOrder,
			"SELECT MAX(`order`) FROM routine_items WHERE routine_id = ?", routineID)
		if err != nil {
			return nil, fmt.Errorf("get max entry order of routine %d: %w", routineID, err)
		}
		entryOrder = int(maxOrder.Int64) + 1
	}

	createdAt := database.Timestamp()
	result, err := r.q.ExecContext(ctx,
		"INSERT INTO routine_items (routine_id, item_id, `order`, completed, created_at) VALUES (?, ?, ?, ?, ?)",
		routineID, key, entryOrder, false, createdAt)
	if err != nil {
		return nil, fmt.Errorf("add item %q to routine %d: %w", ext, routineID, err)
	}
	entryID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get entry insert ID: %w", err)
	}
	return &Entry{
		ID:             entryID,
		RoutineID:      routineID,
		ItemKey:        key,
		Order:          entryOrder,
		Completed:      false,
		CreatedAt:      createdAt,
		ItemExternalID: ext,
	}, nil
}

// RemoveItem removes the routine's entry for the given item, resolving the
// external identifier first. Prefer RemoveEntry when the entry identifier
// is already known: it skips a lookup that can be ambiguous when an item
// appears twice in a routine.
func (r *DBRepository) RemoveItem(ctx context.Context, routineID int64, ext id.External) error {
	key, err := item.NewDBRepository(r.q).ResolveKey(ctx, ext)
	if err != nil {
		return err
	}
	result, err := r.q.ExecContext(ctx,
		"DELETE FROM routine_items WHERE routine_id = ? AND item_id = ?", routineID, key)
	if err != nil {
		return fmt.Errorf("remove item %q from routine %d: %w", ext, routineID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get removed entry count: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("item %q in routine %d: %w", ext, routineID, database.ErrNotFound)
	}
	return nil
}

// RemoveEntry removes one entry by its own identifier, without touching the
// external identifier space.
func (r *DBRepository) RemoveEntry(ctx context.Context, routineID, entryID int64) error {
	result, err := r.q.ExecContext(ctx,
		"DELETE FROM routine_items WHERE routine_id = ? AND id = ?", routineID, entryID)
	if err != nil {
		return fmt.Errorf("remove entry %d from routine %d: %w", entryID, routineID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get removed entry count: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("entry %d of routine %d: %w", entryID, routineID, database.ErrNotFound)
	}
	return nil
}

// UpdateEntriesOrder overwrites the display order of the referenced entries
// within one routine. Entries not referenced keep their current value.
func (r *DBRepository) UpdateEntriesOrder(ctx context.Context, routineID int64, updates []OrderUpdate) error {
	for _, u := range updates {
		_, err := r.q.ExecContext(ctx,
			"UPDATE routine_items SET `order` = ? WHERE routine_id = ? AND id = ?",
			u.Order, routineID, u.ID)
		if err != nil {
			return fmt.Errorf("update order of entry %d: %w", u.ID, err)
		}
	}
	return nil
}

// UpdateRoutinesOrder overwrites the display order of the referenced
// routines.
func (r *DBRepository) UpdateRoutinesOrder(ctx context.Context, updates []OrderUpdate) error {
	for _, u := range updates {
		if _, err := r.q.ExecContext(ctx, "UPDATE routines SET `order` = ? WHERE id = ?", u.Order, u.ID); err != nil {
			return fmt.Errorf("update order of routine %d: %w", u.ID, err)
		}
	}
	return nil
}

// SetEntryCompleted marks one entry completed or not.
func (r *DBRepository) SetEntryCompleted(ctx context.Context, routineID, entryID int64, completed bool) error {
	if _, err := r.FindEntry(ctx, routineID, entryID); err != nil {
		return err
	}
	_, err := r.q.ExecContext(ctx,
		"UPDATE routine_items SET completed = ? WHERE routine_id = ? AND id = ?",
		completed, routineID, entryID)
	if err != nil {
		return fmt.Errorf("set entry %d completed: %w", entryID, err)
	}
	return nil
}

// ResetProgress marks every entry of the routine not completed.
func (r *DBRepository) ResetProgress(ctx context.Context, routineID int64) error {
	if _, err := r.Find(ctx, routineID); err != nil {
		return err
	}
	if _, err := r.q.ExecContext(ctx, "UPDATE routine_items SET completed = ? WHERE routine_id = ?", false, routineID); err != nil {
		return fmt.Errorf("reset progress of routine %d: %w", routineID, err)
	}
	return nil
}

// Count returns the number of routines.
func (r *DBRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := sqlx.GetContext(ctx, r.q, &count, "SELECT COUNT(*) FROM routines"); err != nil {
		return 0, fmt.Errorf("count routines: %w", err)
	}
	return count, nil
}
