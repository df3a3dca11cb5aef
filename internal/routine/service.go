package routine

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/fretlog/fretlog/internal/database"
	"github.com/fretlog/fretlog/internal/id"
	"github.com/fretlog/fretlog/internal/item"
	"github.com/fretlog/fretlog/internal/wire"
)

// EntryDetail pairs one routine entry with the details of the item it
// references, in the nested shape practice-session clients consume.
type EntryDetail struct {
	RoutineEntry wire.Record `json:"routineEntry"`
	ItemDetails  wire.Record `json:"itemDetails,omitempty"`
}

// Stats summarizes the routine tables and the active marker.
type Stats struct {
	TotalRoutines     int    `json:"total_routines"`
	HasActiveRoutine  bool   `json:"has_active_routine"`
	ActiveRoutineID   string `json:"active_routine_id,omitempty"`
	ActiveRoutineName string `json:"active_routine_name,omitempty"`
}

// Service orchestrates routine operations.
type Service struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewService creates a new routine Service.
func NewService(db *sqlx.DB, logger *slog.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Routines returns every routine in creation order, in wire format with an
// extra "active" flag marking the one currently being practiced.
func (s *Service) Routines(ctx context.Context) ([]wire.Record, error) {
	routines, err := NewDBRepository(s.db).FindAll(ctx)
	if err != nil {
		return nil, err
	}
	var activeID int64
	if active, err := NewDBActiveRepository(s.db).Active(ctx); err == nil {
		activeID = active.ID
	} else if !database.IsNotFound(err) {
		return nil, err
	}

	records := make([]wire.Record, 0, len(routines))
	for _, r := range routines {
		rec := r.Wire()
		rec["active"] = r.ID == activeID && activeID != 0
		records = append(records, rec)
	}
	return records, nil
}

// Create creates a routine from a wire record, preserving an explicit
// column-A identifier when present.
func (s *Service) Create(ctx context.Context, rec wire.Record) (wire.Record, error) {
	r := FromWire(rec)
	err := database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return NewDBRepository(tx).Create(ctx, &r)
	})
	if err != nil {
		return nil, err
	}
	return r.Wire(), nil
}

// Update overwrites the routine's name and display order from a wire
// record.
func (s *Service) Update(ctx context.Context, routineID int64, rec wire.Record) (wire.Record, error) {
	var updated *Routine
	err := database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		repo := NewDBRepository(tx)
		current, err := repo.Find(ctx, routineID)
		if err != nil {
			return err
		}
		current.Name = rec.String("B")
		current.Order = rec.Int("D")
		if err := repo.Update(ctx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated.Wire(), nil
}

// Delete removes the routine and its entries in one transaction.
func (s *Service) Delete(ctx context.Context, routineID int64) error {
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return NewDBRepository(tx).Delete(ctx, routineID)
	})
}

// RoutineWithItems returns the routine in wire format with its entries
// nested under "items", each paired with the referenced item's details.
// Entries appear in row creation order regardless of display-order values.
func (s *Service) RoutineWithItems(ctx context.Context, routineID int64) (wire.Record, error) {
	repo := NewDBRepository(s.db)
	r, err := repo.Find(ctx, routineID)
	if err != nil {
		return nil, err
	}
	entries, err := repo.Entries(ctx, routineID)
	if err != nil {
		return nil, err
	}

	items := item.NewDBRepository(s.db)
	details := make([]EntryDetail, 0, len(entries))
	for _, e := range entries {
		detail := EntryDetail{RoutineEntry: e.Wire()}
		it, err := items.Find(ctx, e.ItemKey)
		if err == nil {
			detail.ItemDetails = wire.Record{
				"A": string(it.ExternalID),
				"B": string(it.ExternalID),
				"C": it.Title,
				"D": it.Notes,
				"E": it.Duration,
				"F": it.Description,
				"H": it.Tuning,
				"I": it.Songbook,
			}
		} else if !database.IsNotFound(err) {
			return nil, err
		}
		details = append(details, detail)
	}

	rec := r.Wire()
	rec["items"] = details
	return rec, nil
}

// Entries returns the routine's entries in wire format, in row creation
// order.
func (s *Service) Entries(ctx context.Context, routineID int64) ([]wire.Record, error) {
	entries, err := NewDBRepository(s.db).Entries(ctx, routineID)
	if err != nil {
		return nil, err
	}
	records := make([]wire.Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, e.Wire())
	}
	return records, nil
}

// AddItem appends the item named by ext to the routine and returns the new
// entry in wire format.
func (s *Service) AddItem(ctx context.Context, routineID int64, ext id.External, order *int) (wire.Record, error) {
	var entry *Entry
	err := database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error
		entry, err = NewDBRepository(tx).AddItem(ctx, routineID, ext, order)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entry.Wire(), nil
}

// RemoveItem removes the routine's entry for the item named by ext.
func (s *Service) RemoveItem(ctx context.Context, routineID int64, ext id.External) error {
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return NewDBRepository(tx).RemoveItem(ctx, routineID, ext)
	})
}

// RemoveEntry removes one entry by its own identifier.
func (s *Service) RemoveEntry(ctx context.Context, routineID, entryID int64) error {
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return NewDBRepository(tx).RemoveEntry(ctx, routineID, entryID)
	})
}

// UpdateEntriesOrder overwrites entry display order from wire records
// carrying A (entry id) and C (order).
func (s *Service) UpdateEntriesOrder(ctx context.Context, routineID int64, recs []wire.Record) error {
	updates, err := orderUpdates(recs, "C")
	if err != nil {
		return err
	}
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return NewDBRepository(tx).UpdateEntriesOrder(ctx, routineID, updates)
	})
}

// UpdateRoutinesOrder overwrites routine display order from wire records
// carrying A (routine id) and D (order).
func (s *Service) UpdateRoutinesOrder(ctx context.Context, recs []wire.Record) error {
	updates, err := orderUpdates(recs, "D")
	if err != nil {
		return err
	}
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return NewDBRepository(tx).UpdateRoutinesOrder(ctx, updates)
	})
}

// UpdateEntry updates one entry from a wire record. Only the completion
// flag (column D) is mutable this way; identifiers and order are preserved.
func (s *Service) UpdateEntry(ctx context.Context, routineID, entryID int64, rec wire.Record) (wire.Record, error) {
	err := database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		repo := NewDBRepository(tx)
		if _, ok := rec["D"]; ok {
			return repo.SetEntryCompleted(ctx, routineID, entryID, wire.ParseBool(rec.String("D")))
		}
		_, err := repo.FindEntry(ctx, routineID, entryID)
		return err
	})
	if err != nil {
		return nil, err
	}
	entry, err := NewDBRepository(s.db).FindEntry(ctx, routineID, entryID)
	if err != nil {
		return nil, err
	}
	return entry.Wire(), nil
}

// SetEntryCompleted marks one entry completed or not.
func (s *Service) SetEntryCompleted(ctx context.Context, routineID, entryID int64, completed bool) error {
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return NewDBRepository(tx).SetEntryCompleted(ctx, routineID, entryID, completed)
	})
}

// ResetProgress marks every entry of the routine not completed.
func (s *Service) ResetProgress(ctx context.Context, routineID int64) error {
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return NewDBRepository(tx).ResetProgress(ctx, routineID)
	})
}

// Active returns the active routine as an {A, B} wire record, or nil when
// no routine is marked active.
func (s *Service) Active(ctx context.Context) (wire.Record, error) {
	r, err := NewDBActiveRepository(s.db).Active(ctx)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return wire.Record{
		"A": strconv.FormatInt(r.ID, 10),
		"B": r.Name,
	}, nil
}

// SetActive marks the routine as the one being practiced.
func (s *Service) SetActive(ctx context.Context, routineID int64) error {
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return NewDBActiveRepository(tx).SetActive(ctx, routineID)
	})
}

// ClearActive clears the active-routine marker.
func (s *Service) ClearActive(ctx context.Context) error {
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return NewDBActiveRepository(tx).ClearActive(ctx)
	})
}

// Stats returns routine-level statistics.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	total, err := NewDBRepository(s.db).Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	stats := Stats{TotalRoutines: total}
	active, err := NewDBActiveRepository(s.db).Active(ctx)
	if err != nil {
		if database.IsNotFound(err) {
			return stats, nil
		}
		return Stats{}, err
	}
	stats.HasActiveRoutine = true
	stats.ActiveRoutineID = strconv.FormatInt(active.ID, 10)
	stats.ActiveRoutineName = active.Name
	return stats, nil
}

func orderUpdates(recs []wire.Record, orderKey string) ([]OrderUpdate, error) {
	updates := make([]OrderUpdate, 0, len(recs))
	for _, rec := range recs {
		rowID, err := strconv.ParseInt(rec.String("A"), 10, 64)
		if err != nil {
			return nil, err
		}
		updates = append(updates, OrderUpdate{ID: rowID, Order: rec.Int(orderKey)})
	}
	return updates, nil
}
