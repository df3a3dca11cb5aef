package chart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/fretlog/fretlog/internal/database"
)

// CommonChord is one row of the read-mostly reference table of standard
// chord shapes, used as a fallback source when generating charts from a
// chord name alone. Normal application flow never mutates it.
type CommonChord struct {
	ID        int64   `db:"id"`
	Type      string  `db:"type"`
	Name      string  `db:"name"`
	Payload   Payload `db:"chord_data"`
	CreatedAt string  `db:"created_at"`
	Order     int     `db:"order_col"`
}

// Input converts the reference shape into a chart creation input, with the
// chord name as the title and the payload normalized.
func (c CommonChord) Input() CreateInput {
	return CreateInput{
		Title:   c.Name,
		Payload: c.Payload.Normalize(),
	}
}

// CommonChordRepository defines read operations over the reference table.
type CommonChordRepository interface {
	FindAll(ctx context.Context) ([]CommonChord, error)
	FindByName(ctx context.Context, name string) (*CommonChord, error)
	SearchByName(ctx context.Context, name string) ([]CommonChord, error)
	Count(ctx context.Context) (int, error)
}

// DBCommonChordRepository implements CommonChordRepository over a SQL
// database.
type DBCommonChordRepository struct {
	q database.Queryer
}

// NewDBCommonChordRepository creates a new DBCommonChordRepository.
func NewDBCommonChordRepository(q database.Queryer) *DBCommonChordRepository {
	return &DBCommonChordRepository{q: q}
}

// FindAll returns every named chord shape.
func (r *DBCommonChordRepository) FindAll(ctx context.Context) ([]CommonChord, error) {
	var chords []CommonChord
	err := sqlx.SelectContext(ctx, r.q, &chords,
		"SELECT * FROM common_chords WHERE name <> '' ORDER BY order_col, name")
	if err != nil {
		return nil, fmt.Errorf("load common chords: %w", err)
	}
	return chords, nil
}

// FindByName returns the chord shape with the exact given name. Surrounding
// whitespace in the query is ignored.
func (r *DBCommonChordRepository) FindByName(ctx context.Context, name string) (*CommonChord, error) {
	var c CommonChord
	err := sqlx.GetContext(ctx, r.q, &c, "SELECT * FROM common_chords WHERE name = ?", strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("common chord %q: %w", name, database.ErrNotFound)
		}
		return nil, fmt.Errorf("load common chord %q: %w", name, err)
	}
	return &c, nil
}

// SearchByName returns chord shapes whose name contains the query,
// case-insensitively.
func (r *DBCommonChordRepository) SearchByName(ctx context.Context, name string) ([]CommonChord, error) {
	var chords []CommonChord
	pattern := "%" + strings.TrimSpace(name) + "%"
	err := sqlx.SelectContext(ctx, r.q, &chords,
		"SELECT * FROM common_chords WHERE LOWER(name) LIKE LOWER(?) ORDER BY name", pattern)
	if err != nil {
		return nil, fmt.Errorf("search common chords %q: %w", name, err)
	}
	return chords, nil
}

// Count returns the number of chord shapes.
func (r *DBCommonChordRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := sqlx.GetContext(ctx, r.q, &count, "SELECT COUNT(*) FROM common_chords"); err != nil {
		return 0, fmt.Errorf("count common chords: %w", err)
	}
	return count, nil
}
