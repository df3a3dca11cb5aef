package chart

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/fretlog/fretlog/internal/database"
	"github.com/fretlog/fretlog/internal/id"
	"github.com/fretlog/fretlog/internal/wire"
)

// CopyResult reports what a copy-to-items operation did.
type CopyResult struct {
	ChartsFound int           `json:"charts_found"`
	Updated     int           `json:"updated"`
	Removed     int           `json:"removed"`
	TargetItems []id.External `json:"target_items"`
}

// BatchDeleteResult reports a purge outcome. Success is false when the
// purge failed partway; DeletedCount is what was actually removed.
type BatchDeleteResult struct {
	Success      bool `json:"success"`
	DeletedCount int  `json:"deleted_count"`
}

// Stats summarizes the chart table.
type Stats struct {
	TotalCharts   int `json:"total_chord_charts"`
	AttachedItems int `json:"items_with_charts"`
}

// Service orchestrates chart operations, wrapping each in one transaction.
type Service struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewService creates a new chart Service.
func NewService(db *sqlx.DB, logger *slog.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// ChartsForItem returns the item's charts in wire format, ordered by the
// item-scoped order column.
func (s *Service) ChartsForItem(ctx context.Context, ext id.External) ([]wire.Record, error) {
	charts, err := NewDBRepository(s.db).FindForItem(ctx, ext)
	if err != nil {
		return nil, err
	}
	return toWire(charts), nil
}

// ChartsForItems returns charts for several items at once, keyed by item.
func (s *Service) ChartsForItems(ctx context.Context, exts []id.External) (map[id.External][]wire.Record, error) {
	repo := NewDBRepository(s.db)
	result := make(map[id.External][]wire.Record, len(exts))
	for _, ext := range exts {
		charts, err := repo.FindForItem(ctx, ext)
		if err != nil {
			return nil, err
		}
		result[ext] = toWire(charts)
	}
	return result, nil
}

// Chart returns one chart in wire format.
func (s *Service) Chart(ctx context.Context, chartID int64) (wire.Record, error) {
	c, err := NewDBRepository(s.db).Find(ctx, chartID)
	if err != nil {
		return nil, err
	}
	return c.Wire(), nil
}

// Create creates a single chart attached to the item from one batch record.
func (s *Service) Create(ctx context.Context, ext id.External, rec map[string]any) (wire.Record, error) {
	records, err := s.BatchCreate(ctx, ext, []map[string]any{rec}, nil)
	if err != nil {
		return nil, err
	}
	return records[0], nil
}

// BatchCreate classifies and inserts a batch of heterogeneous chart records
// attached to one item, in a single transaction. insertAt, when set,
// overrides every record's order so the batch lands mid-sequence.
func (s *Service) BatchCreate(ctx context.Context, ext id.External, recs []map[string]any, insertAt *int) ([]wire.Record, error) {
	inputs := make([]CreateInput, 0, len(recs))
	for i, rec := range recs {
		in, err := ClassifyInput(rec)
		if err != nil {
			return nil, fmt.Errorf("chart record %d: %w", i, err)
		}
		inputs = append(inputs, in)
	}

	var charts []ChordChart
	err := database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error
		charts, err = NewDBRepository(tx).BatchCreate(ctx, ext, inputs, insertAt)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toWire(charts), nil
}

// Update overwrites a chart's title, payload, and order from a
// column-letter record.
func (s *Service) Update(ctx context.Context, chartID int64, rec wire.Record) (wire.Record, error) {
	in, err := NewColumnInput(rec)
	if err != nil {
		return nil, err
	}
	var updated *ChordChart
	err = database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		updated, err = NewDBRepository(tx).Update(ctx, chartID, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated.Wire(), nil
}

// DeleteFromItem detaches the chart from the item, deleting the chart when
// the item was its last attachment.
func (s *Service) DeleteFromItem(ctx context.Context, ext id.External, chartID int64) error {
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return NewDBRepository(tx).DetachFrom(ctx, ext, chartID)
	})
}

// Delete removes one chart unconditionally.
func (s *Service) Delete(ctx context.Context, chartID int64) error {
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return NewDBRepository(tx).Delete(ctx, chartID)
	})
}

// BatchDelete purges the given charts, bypassing sharing semantics. A
// storage failure is reported as a structured result so callers of
// destructive batches always learn how much was processed.
func (s *Service) BatchDelete(ctx context.Context, chartIDs []int64) (BatchDeleteResult, error) {
	var deleted int
	err := database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error
		deleted, err = NewDBRepository(tx).Purge(ctx, chartIDs)
		return err
	})
	if err != nil {
		s.logger.Error("batch delete chord charts failed",
			slog.Int("requested", len(chartIDs)),
			slog.Any("error", err))
		return BatchDeleteResult{Success: false}, err
	}
	return BatchDeleteResult{Success: true, DeletedCount: deleted}, nil
}

// UpdateOrder renumbers the item's charts to match the given id sequence.
func (s *Service) UpdateOrder(ctx context.Context, ext id.External, orderedIDs []int64) error {
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		return NewDBRepository(tx).UpdateOrder(ctx, ext, orderedIDs)
	})
}

// Sections returns the item's charts grouped by section identifier, in wire
// format. Charts without a section land under "default".
func (s *Service) Sections(ctx context.Context, ext id.External) (map[string][]wire.Record, error) {
	charts, err := NewDBRepository(s.db).FindForItem(ctx, ext)
	if err != nil {
		return nil, err
	}
	sections := map[string][]wire.Record{}
	for _, c := range charts {
		sectionID := c.Payload.SectionID
		if sectionID == "" {
			sectionID = "default"
		}
		sections[sectionID] = append(sections[sectionID], c.Wire())
	}
	return sections, nil
}

// CopyToItems copies the source item's chart set to every target item using
// the sharing model: each target's existing attachments are removed first
// (the source's charts win on conflict), then every target is attached to
// every source chart. The whole operation is one transaction; partial
// application would leave targets disagreeing about the chart set.
func (s *Service) CopyToItems(ctx context.Context, source id.External, targets []id.External) (CopyResult, error) {
	result := CopyResult{TargetItems: targets}
	err := database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		repo := NewDBRepository(tx)

		sourceCharts, err := repo.FindForItem(ctx, source)
		if err != nil {
			return err
		}
		if len(sourceCharts) == 0 {
			s.logger.Warn("no chord charts to copy", slog.String("source_item", string(source)))
			return nil
		}
		result.ChartsFound = len(sourceCharts)

		for _, target := range targets {
			targetCharts, err := repo.FindForItem(ctx, target)
			if err != nil {
				return err
			}
			for _, c := range targetCharts {
				remaining, _ := c.Items.WithDetached(target)
				if remaining.IsEmpty() {
					if err := repo.Delete(ctx, c.ID); err != nil {
						return err
					}
					result.Removed++
					continue
				}
				if err := repo.UpdateItems(ctx, c.ID, remaining); err != nil {
					return err
				}
			}
		}

		// Re-read the source charts: the detach pass above may have touched
		// charts shared between source and a target.
		sourceCharts, err = repo.FindForItem(ctx, source)
		if err != nil {
			return err
		}
		for _, c := range sourceCharts {
			items := c.Items
			for _, target := range targets {
				items = items.WithAttached(target)
			}
			if err := repo.UpdateItems(ctx, c.ID, items); err != nil {
				return err
			}
			result.Updated++
		}
		return nil
	})
	if err != nil {
		return CopyResult{TargetItems: targets}, err
	}
	s.logger.Info("copied chord charts",
		slog.String("source_item", string(source)),
		slog.Int("targets", len(targets)),
		slog.Int("updated", result.Updated),
		slog.Int("removed", result.Removed))
	return result, nil
}

// Stats returns chart-level statistics.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	repo := NewDBRepository(s.db)
	total, err := repo.Count(ctx)
	if err != nil {
		return Stats{}, err
	}
	attached, err := repo.AttachedItemCount(ctx)
	if err != nil {
		return Stats{}, err
	}
	return Stats{TotalCharts: total, AttachedItems: attached}, nil
}

// CommonChords returns every reference chord shape as a chart creation
// input rendered in the flattened editor shape.
func (s *Service) CommonChords(ctx context.Context) ([]map[string]any, error) {
	chords, err := NewDBCommonChordRepository(s.db).FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]map[string]any, 0, len(chords))
	for _, c := range chords {
		result = append(result, flattenInput(c.Input()))
	}
	return result, nil
}

// FindCommonChord returns one reference shape by exact name in the
// flattened editor shape.
func (s *Service) FindCommonChord(ctx context.Context, name string) (map[string]any, error) {
	c, err := NewDBCommonChordRepository(s.db).FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return flattenInput(c.Input()), nil
}

// SearchCommonChords returns name/id pairs of reference shapes matching the
// query.
func (s *Service) SearchCommonChords(ctx context.Context, name string) ([]map[string]any, error) {
	chords, err := NewDBCommonChordRepository(s.db).SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}
	result := make([]map[string]any, 0, len(chords))
	for _, c := range chords {
		result = append(result, map[string]any{"id": c.ID, "name": c.Name})
	}
	return result, nil
}

// AutocreateFromNames creates charts for the item from chord names, using
// the reference table as the shape source. Names with no reference shape
// are skipped and reported back.
func (s *Service) AutocreateFromNames(ctx context.Context, ext id.External, names []string) ([]wire.Record, []string, error) {
	commons := NewDBCommonChordRepository(s.db)
	var inputs []CreateInput
	var missing []string
	for _, name := range names {
		c, err := commons.FindByName(ctx, name)
		if err != nil {
			if database.IsNotFound(err) {
				missing = append(missing, name)
				continue
			}
			return nil, nil, err
		}
		inputs = append(inputs, c.Input())
	}

	var charts []ChordChart
	err := database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error
		charts, err = NewDBRepository(tx).BatchCreate(ctx, ext, inputs, nil)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return toWire(charts), missing, nil
}

func toWire(charts []ChordChart) []wire.Record {
	records := make([]wire.Record, 0, len(charts))
	for _, c := range charts {
		records = append(records, c.Wire())
	}
	return records
}

func flattenInput(in CreateInput) map[string]any {
	p := in.Payload.Normalize()
	return map[string]any{
		"title":        in.Title,
		"fingers":      p.Fingers,
		"barres":       p.Barres,
		"tuning":       p.Tuning,
		"capo":         p.Capo,
		"startingFret": p.StartingFret,
		"numFrets":     p.NumFrets,
		"numStrings":   p.NumStrings,
		"openStrings":  p.OpenStrings,
		"mutedStrings": p.MutedStrings,
	}
}
