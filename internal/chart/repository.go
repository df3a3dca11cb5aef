package chart

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/fretlog/fretlog/internal/database"
	"github.com/fretlog/fretlog/internal/id"
)

// ErrNotAttached reports a detach against a chart whose attachment list does
// not contain the given item. It signals a caller bug, not a storage error;
// storage is left untouched.
var ErrNotAttached = errors.New("item is not attached to chord chart")

// Repository defines storage operations for chord charts.
type Repository interface {
	FindForItem(ctx context.Context, ext id.External) ([]ChordChart, error)
	Find(ctx context.Context, chartID int64) (*ChordChart, error)
	BatchCreate(ctx context.Context, ext id.External, inputs []CreateInput, insertAt *int) ([]ChordChart, error)
	Update(ctx context.Context, chartID int64, in CreateInput) (*ChordChart, error)
	UpdateItems(ctx context.Context, chartID int64, items AttachmentList) error
	DetachFrom(ctx context.Context, ext id.External, chartID int64) error
	DetachAll(ctx context.Context, ext id.External) (int, error)
	Delete(ctx context.Context, chartID int64) error
	Purge(ctx context.Context, chartIDs []int64) (int, error)
	UpdateOrder(ctx context.Context, ext id.External, orderedIDs []int64) error
	Count(ctx context.Context) (int, error)
	AttachedItemCount(ctx context.Context) (int, error)
}

// DBRepository implements Repository over a SQL database.
type DBRepository struct {
	q database.Queryer
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(q database.Queryer) *DBRepository {
	return &DBRepository{q: q}
}

// FindForItem returns every chart attached to the item, ordered by the
// item-scoped order column. The stored attachment column is a
// comma-separated list with no fixed-width encoding, so the query matches
// four token positions (whole value, head, tail, interior); the decoded list
// is then rechecked for exact membership so the result carries no substring
// false positives.
func (r *DBRepository) FindForItem(ctx context.Context, ext id.External) ([]ChordChart, error) {
	var rows []ChordChart
	err := sqlx.SelectContext(ctx, r.q, &rows,
		"SELECT * FROM chord_charts WHERE item_id = ? OR item_id LIKE ? OR item_id LIKE ? OR item_id LIKE ? ORDER BY order_col",
		ext, string(ext)+",%", "%, "+string(ext), "%, "+string(ext)+",%")
	if err != nil {
		return nil, fmt.Errorf("load chord charts for item %q: %w", ext, err)
	}
	charts := rows[:0]
	for _, c := range rows {
		if c.Items.Contains(ext) {
			charts = append(charts, c)
		}
	}
	return charts, nil
}

// Find returns the chart with the given identifier.
func (r *DBRepository) Find(ctx context.Context, chartID int64) (*ChordChart, error) {
	var c ChordChart
	if err := sqlx.GetContext(ctx, r.q, &c, "SELECT * FROM chord_charts WHERE chord_id = ?", chartID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("chord chart %d: %w", chartID, database.ErrNotFound)
		}
		return nil, fmt.Errorf("load chord chart %d: %w", chartID, err)
	}
	return &c, nil
}

// BatchCreate inserts the given charts attached to one item. Each chart's
// order is, in increasing precedence: its position in the batch, the
// record's explicit order value, and the insertAt override (used when the
// editor inserts charts mid-sequence; chart i gets insertAt+i).
func (r *DBRepository) BatchCreate(ctx context.Context, ext id.External, inputs []CreateInput, insertAt *int) ([]ChordChart, error) {
	charts := make([]ChordChart, 0, len(inputs))
	for i, in := range inputs {
		order := i
		if in.Order != nil {
			order = *in.Order
		}
		if insertAt != nil {
			order = *insertAt + i
		}
		title := in.Title
		if title == "" {
			title = fmt.Sprintf("Chord %d", i+1)
		}
		c := ChordChart{
			Items:     AttachmentList{ext},
			Title:     title,
			Payload:   in.Payload.Normalize(),
			CreatedAt: database.Timestamp(),
			Order:     order,
		}
		result, err := r.q.ExecContext(ctx,
			"INSERT INTO chord_charts (item_id, title, chord_data, created_at, order_col) VALUES (?, ?, ?, ?, ?)",
			c.Items, c.Title, c.Payload, c.CreatedAt, c.Order)
		if err != nil {
			return nil, fmt.Errorf("insert chord chart %q: %w", c.Title, err)
		}
		chartID, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("get chord chart insert ID: %w", err)
		}
		c.ID = chartID
		charts = append(charts, c)
	}
	return charts, nil
}

// Update overwrites the chart's title, payload, and order. The attachment
// list is not touched; use the detach and copy operations for that.
func (r *DBRepository) Update(ctx context.Context, chartID int64, in CreateInput) (*ChordChart, error) {
	if _, err := r.Find(ctx, chartID); err != nil {
		return nil, err
	}
	order := 0
	if in.Order != nil {
		order = *in.Order
	}
	payload := in.Payload.Normalize()
	_, err := r.q.ExecContext(ctx,
		"UPDATE chord_charts SET title = ?, chord_data = ?, order_col = ? WHERE chord_id = ?",
		in.Title, payload, order, chartID)
	if err != nil {
		return nil, fmt.Errorf("update chord chart %d: %w", chartID, err)
	}
	return r.Find(ctx, chartID)
}

// UpdateItems overwrites the chart's attachment list. The list must not be
// empty: an unattached chart is an illegal persistent state and must be
// deleted instead.
func (r *DBRepository) UpdateItems(ctx context.Context, chartID int64, items AttachmentList) error {
	if items.IsEmpty() {
		return fmt.Errorf("chord chart %d: attachment list must not be empty: %w", chartID, database.ErrInvalidInput)
	}
	_, err := r.q.ExecContext(ctx, "UPDATE chord_charts SET item_id = ? WHERE chord_id = ?", items, chartID)
	if err != nil {
		return fmt.Errorf("update chord chart %d attachments: %w", chartID, err)
	}
	return nil
}

// DetachFrom removes the item from the chart's attachment list. Removing
// the last attachment deletes the chart row: an empty list must never
// persist. Detaching an item that is not attached fails with ErrNotAttached
// and mutates nothing.
func (r *DBRepository) DetachFrom(ctx context.Context, ext id.External, chartID int64) error {
	c, err := r.Find(ctx, chartID)
	if err != nil {
		return err
	}
	remaining, removed := c.Items.WithDetached(ext)
	if !removed {
		return fmt.Errorf("item %q, chord chart %d: %w", ext, chartID, ErrNotAttached)
	}
	if remaining.IsEmpty() {
		return r.Delete(ctx, chartID)
	}
	return r.UpdateItems(ctx, chartID, remaining)
}

// DetachAll removes the item from every chart it is attached to, deleting
// charts it owned exclusively. Returns how many charts were affected.
func (r *DBRepository) DetachAll(ctx context.Context, ext id.External) (int, error) {
	charts, err := r.FindForItem(ctx, ext)
	if err != nil {
		return 0, err
	}
	for _, c := range charts {
		if err := r.DetachFrom(ctx, ext, c.ID); err != nil {
			return 0, err
		}
	}
	return len(charts), nil
}

// Delete removes the chart row unconditionally, regardless of how many
// items are attached.
func (r *DBRepository) Delete(ctx context.Context, chartID int64) error {
	result, err := r.q.ExecContext(ctx, "DELETE FROM chord_charts WHERE chord_id = ?", chartID)
	if err != nil {
		return fmt.Errorf("delete chord chart %d: %w", chartID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get deleted chord chart count: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("chord chart %d: %w", chartID, database.ErrNotFound)
	}
	return nil
}

// Purge deletes the given charts unconditionally, bypassing sharing
// semantics: a purged chart disappears for every attached item, not just
// the caller's. Returns how many rows were deleted.
func (r *DBRepository) Purge(ctx context.Context, chartIDs []int64) (int, error) {
	if len(chartIDs) == 0 {
		return 0, nil
	}
	query, args, err := sqlx.In("DELETE FROM chord_charts WHERE chord_id IN (?)", chartIDs)
	if err != nil {
		return 0, fmt.Errorf("build chord chart purge query: %w", err)
	}
	result, err := r.q.ExecContext(ctx, r.q.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("purge chord charts: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("get purged chord chart count: %w", err)
	}
	return int(affected), nil
}

// UpdateOrder renumbers the item's charts to match the given sequence:
// chart orderedIDs[i] gets order i. Charts not referenced keep their
// current order. IDs not attached to the item are skipped.
func (r *DBRepository) UpdateOrder(ctx context.Context, ext id.External, orderedIDs []int64) error {
	charts, err := r.FindForItem(ctx, ext)
	if err != nil {
		return err
	}
	attached := make(map[int64]bool, len(charts))
	for _, c := range charts {
		attached[c.ID] = true
	}
	for i, chartID := range orderedIDs {
		if !attached[chartID] {
			continue
		}
		if _, err := r.q.ExecContext(ctx, "UPDATE chord_charts SET order_col = ? WHERE chord_id = ?", i, chartID); err != nil {
			return fmt.Errorf("update order of chord chart %d: %w", chartID, err)
		}
	}
	return nil
}

// Count returns the number of chart rows.
func (r *DBRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := sqlx.GetContext(ctx, r.q, &count, "SELECT COUNT(*) FROM chord_charts"); err != nil {
		return 0, fmt.Errorf("count chord charts: %w", err)
	}
	return count, nil
}

// AttachedItemCount returns how many distinct items have at least one chart
// attached. Counting distinct attachment columns would undercount shared
// charts, so the lists are decoded and unioned.
func (r *DBRepository) AttachedItemCount(ctx context.Context) (int, error) {
	var lists []AttachmentList
	if err := sqlx.SelectContext(ctx, r.q, &lists, "SELECT item_id FROM chord_charts"); err != nil {
		return 0, fmt.Errorf("load chart attachments: %w", err)
	}
	seen := map[id.External]bool{}
	for _, l := range lists {
		for _, ext := range l {
			seen[ext] = true
		}
	}
	return len(seen), nil
}
