package routine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fretlog/fretlog/internal/database"
)

// The active-routine marker is a singleton: at most one logical row, pinned
// to this key.
const activeRoutineKey = 1

// ActiveRepository manages the marker recording which routine, if any, is
// currently being practiced.
type ActiveRepository interface {
	Active(ctx context.Context) (*Routine, error)
	SetActive(ctx context.Context, routineID int64) error
	ClearActive(ctx context.Context) error
}

// DBActiveRepository implements ActiveRepository over a SQL database.
type DBActiveRepository struct {
	q database.Queryer
}

// NewDBActiveRepository creates a new DBActiveRepository.
func NewDBActiveRepository(q database.Queryer) *DBActiveRepository {
	return &DBActiveRepository{q: q}
}

// Active returns the routine currently marked active, or ErrNotFound when
// no routine is marked.
func (r *DBActiveRepository) Active(ctx context.Context) (*Routine, error) {
	var routineID sql.NullInt64
	err := sqlx.GetContext(ctx, r.q, &routineID,
		"SELECT routine_id FROM active_routine WHERE id = ?", activeRoutineKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("active routine: %w", database.ErrNotFound)
		}
		return nil, fmt.Errorf("load active routine: %w", err)
	}
	if !routineID.Valid {
		return nil, fmt.Errorf("active routine: %w", database.ErrNotFound)
	}
	return NewDBRepository(r.q).Find(ctx, routineID.Int64)
}

// SetActive marks the given routine as the one being practiced, replacing
// any previous marker.
func (r *DBActiveRepository) SetActive(ctx context.Context, routineID int64) error {
	if _, err := NewDBRepository(r.q).Find(ctx, routineID); err != nil {
		return err
	}
	exists, err := r.markerExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		if _, err := r.q.ExecContext(ctx,
			"UPDATE active_routine SET routine_id = ?, updated_at = ? WHERE id = ?",
			routineID, database.Timestamp(), activeRoutineKey); err != nil {
			return fmt.Errorf("update active routine: %w", err)
		}
		return nil
	}
	if _, err := r.q.ExecContext(ctx,
		"INSERT INTO active_routine (id, routine_id, updated_at) VALUES (?, ?, ?)",
		activeRoutineKey, routineID, database.Timestamp()); err != nil {
		return fmt.Errorf("insert active routine: %w", err)
	}
	return nil
}

// ClearActive removes the marker. Clearing when nothing is marked is a
// no-op.
func (r *DBActiveRepository) ClearActive(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx,
		"UPDATE active_routine SET routine_id = NULL, updated_at = ? WHERE id = ?",
		database.Timestamp(), activeRoutineKey)
	if err != nil {
		return fmt.Errorf("clear active routine: %w", err)
	}
	return nil
}

func (r *DBActiveRepository) markerExists(ctx context.Context) (bool, error) {
	var count int
	err := sqlx.GetContext(ctx, r.q, &count,
		"SELECT COUNT(*) FROM active_routine WHERE id = ?", activeRoutineKey)
	if err != nil {
		return false, fmt.Errorf("check active routine marker: %w", err)
	}
	return count > 0, nil
}
