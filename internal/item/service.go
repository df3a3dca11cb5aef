package item

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/jmoiron/sqlx"

	"github.com/fretlog/fretlog/internal/chart"
	"github.com/fretlog/fretlog/internal/database"
	"github.com/fretlog/fretlog/internal/id"
	"github.com/fretlog/fretlog/internal/wire"
)

// Stats summarizes the item table.
type Stats struct {
	TotalItems         int            `json:"total_items"`
	TuningDistribution map[string]int `json:"tuning_distribution"`
}

// Service orchestrates item operations. External identifiers are resolved
// here, at the top of each operation's transaction; repositories below never
// translate between the two identifier spaces.
type Service struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewService creates a new item Service.
func NewService(db *sqlx.DB, logger *slog.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Items returns every item in wire format.
func (s *Service) Items(ctx context.Context) ([]wire.Record, error) {
	items, err := NewDBRepository(s.db).FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toWire(items), nil
}

// ItemSummaries returns the lightweight listing in wire format.
func (s *Service) ItemSummaries(ctx context.Context) ([]wire.Record, error) {
	summaries, err := NewDBRepository(s.db).FindSummaries(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]wire.Record, 0, len(summaries))
	for _, sum := range summaries {
		records = append(records, sum.Wire())
	}
	return records, nil
}

// Item returns one item by external identifier in wire format.
func (s *Service) Item(ctx context.Context, ext id.External) (wire.Record, error) {
	it, err := NewDBRepository(s.db).FindByExternalID(ctx, ext)
	if err != nil {
		return nil, err
	}
	return it.Wire(), nil
}

// Create creates an item from a wire record and returns the stored shape,
// including the assigned identifiers.
func (s *Service) Create(ctx context.Context, rec wire.Record) (wire.Record, error) {
	it := FromWire(rec)
	err := database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return NewDBRepository(tx).Create(ctx, &it)
	})
	if err != nil {
		return nil, err
	}
	return it.Wire(), nil
}

// Update overwrites the mutable fields of the item named by ext from a wire
// record, and returns the stored result.
func (s *Service) Update(ctx context.Context, ext id.External, rec wire.Record) (wire.Record, error) {
	var updated Item
	err := database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		repo := NewDBRepository(tx)
		current, err := repo.FindByExternalID(ctx, ext)
		if err != nil {
			return err
		}
		updated = FromWire(rec)
		updated.Key = current.Key
		updated.ExternalID = current.ExternalID
		updated.CreatedAt = current.CreatedAt
		return repo.Update(ctx, &updated)
	})
	if err != nil {
		return nil, err
	}
	return updated.Wire(), nil
}

// Delete removes the item and detaches it from every chord chart, deleting
// charts it owned exclusively. Charts shared with other items keep their
// remaining attachments. Routine entries referencing the item go with it via
// the foreign key cascade. The chart cascade and the item delete are one
// transaction.
func (s *Service) Delete(ctx context.Context, ext id.External) error {
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		repo := NewDBRepository(tx)
		key, err := repo.ResolveKey(ctx, ext)
		if err != nil {
			return err
		}
		detached, err := chart.NewDBRepository(tx).DetachAll(ctx, ext)
		if err != nil {
			return err
		}
		if err := repo.Delete(ctx, key); err != nil {
			return err
		}
		s.logger.Info("deleted item",
			slog.String("item_id", string(ext)),
			slog.Int("detached_charts", detached))
		return nil
	})
}

// UpdateOrder overwrites item display order from wire records carrying
// A (internal id) and G (order).
func (s *Service) UpdateOrder(ctx context.Context, recs []wire.Record) error {
	updates := make([]OrderUpdate, 0, len(recs))
	for _, rec := range recs {
		key, err := strconv.ParseInt(rec.String("A"), 10, 64)
		if err != nil {
			return err
		}
		updates = append(updates, OrderUpdate{Key: id.Internal(key), Order: rec.Int("G")})
	}
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return NewDBRepository(tx).UpdateOrder(ctx, updates)
	})
}

// Search returns items whose title contains the query, in wire format.
func (s *Service) Search(ctx context.Context, query string) ([]wire.Record, error) {
	items, err := NewDBRepository(s.db).SearchByTitle(ctx, query)
	if err != nil {
		return nil, err
	}
	return toWire(items), nil
}

// ByTuning returns items using the given tuning, in wire format.
func (s *Service) ByTuning(ctx context.Context, tuning string) ([]wire.Record, error) {
	items, err := NewDBRepository(s.db).FindByTuning(ctx, tuning)
	if err != nil {
		return nil, err
	}
	return toWire(items), nil
}

// Notes returns the item's free-text notes.
func (s *Service) Notes(ctx context.Context, ext id.External) (string, error) {
	it, err := NewDBRepository(s.db).FindByExternalID(ctx, ext)
	if err != nil {
		return "", err
	}
	return it.Notes, nil
}

// SaveNotes overwrites the item's free-text notes.
func (s *Service) SaveNotes(ctx context.Context, ext id.External, notes string) error {
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		repo := NewDBRepository(tx)
		it, err := repo.FindByExternalID(ctx, ext)
		if err != nil {
			return err
		}
		it.Notes = notes
		return repo.Update(ctx, it)
	})
}

// Stats returns item-level statistics. Items without a tuning are counted
// under "Unknown".
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	repo := NewDBRepository(s.db)
	total, err := repo.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	tunings, err := repo.CountByTuning(ctx)
	if err != nil {
		return Stats{}, err
	}
	withTuning := 0
	for _, n := range tunings {
		withTuning += n
	}
	if unknown := total - withTuning; unknown > 0 {
		tunings["Unknown"] = unknown
	}
	return Stats{TotalItems: total, TuningDistribution: tunings}, nil
}

func toWire(items []Item) []wire.Record {
	records := make([]wire.Record, 0, len(items))
	for _, it := range items {
		records = append(records, it.Wire())
	}
	return records
}
