package datalayer

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/fretlog/fretlog/internal/chart"
	"github.com/fretlog/fretlog/internal/id"
	"github.com/fretlog/fretlog/internal/item"
	"github.com/fretlog/fretlog/internal/routine"
	"github.com/fretlog/fretlog/internal/wire"
)

// Relational serves the backend surface from the relational database via
// the entity services.
type Relational struct {
	db       *sqlx.DB
	items    *item.Service
	charts   *chart.Service
	routines *routine.Service
}

var _ Backend = (*Relational)(nil)

// NewRelational creates the relational backend over an open database.
func NewRelational(db *sqlx.DB, logger *slog.Logger) *Relational {
	return &Relational{
		db:       db,
		items:    item.NewService(db, logger),
		charts:   chart.NewService(db, logger),
		routines: routine.NewService(db, logger),
	}
}

// Available reports whether the database answers a ping.
func (b *Relational) Available(ctx context.Context) bool {
	return b.db != nil && b.db.PingContext(ctx) == nil
}

func (b *Relational) Items(ctx context.Context) ([]wire.Record, error) {
	return b.items.Items(ctx)
}

func (b *Relational) ItemSummaries(ctx context.Context) ([]wire.Record, error) {
	return b.items.ItemSummaries(ctx)
}

func (b *Relational) Item(ctx context.Context, ext id.External) (wire.Record, error) {
	return b.items.Item(ctx, ext)
}

func (b *Relational) CreateItem(ctx context.Context, rec wire.Record) (wire.Record, error) {
	return b.items.Create(ctx, rec)
}

func (b *Relational) UpdateItem(ctx context.Context, ext id.External, rec wire.Record) (wire.Record, error) {
	return b.items.Update(ctx, ext, rec)
}

func (b *Relational) DeleteItem(ctx context.Context, ext id.External) error {
	return b.items.Delete(ctx, ext)
}

func (b *Relational) UpdateItemsOrder(ctx context.Context, recs []wire.Record) error {
	return b.items.UpdateOrder(ctx, recs)
}

func (b *Relational) SearchItems(ctx context.Context, query string) ([]wire.Record, error) {
	return b.items.Search(ctx, query)
}

func (b *Relational) ItemsByTuning(ctx context.Context, tuning string) ([]wire.Record, error) {
	return b.items.ByTuning(ctx, tuning)
}

func (b *Relational) ItemNotes(ctx context.Context, ext id.External) (string, error) {
	return b.items.Notes(ctx, ext)
}

func (b *Relational) SaveItemNotes(ctx context.Context, ext id.External, notes string) error {
	return b.items.SaveNotes(ctx, ext, notes)
}

func (b *Relational) ChartsForItem(ctx context.Context, ext id.External) ([]wire.Record, error) {
	return b.charts.ChartsForItem(ctx, ext)
}

func (b *Relational) ChartsForItems(ctx context.Context, exts []id.External) (map[id.External][]wire.Record, error) {
	return b.charts.ChartsForItems(ctx, exts)
}

func (b *Relational) CreateChart(ctx context.Context, ext id.External, rec map[string]any) (wire.Record, error) {
	return b.charts.Create(ctx, ext, rec)
}

func (b *Relational) BatchCreateCharts(ctx context.Context, ext id.External, recs []map[string]any, insertAt *int) ([]wire.Record, error) {
	return b.charts.BatchCreate(ctx, ext, recs, insertAt)
}

func (b *Relational) UpdateChart(ctx context.Context, chartID int64, rec wire.Record) (wire.Record, error) {
	return b.charts.Update(ctx, chartID, rec)
}

func (b *Relational) DeleteChartFromItem(ctx context.Context, ext id.External, chartID int64) error {
	return b.charts.DeleteFromItem(ctx, ext, chartID)
}

func (b *Relational) PurgeCharts(ctx context.Context, chartIDs []int64) (chart.BatchDeleteResult, error) {
	return b.charts.BatchDelete(ctx, chartIDs)
}

func (b *Relational) UpdateChartsOrder(ctx context.Context, ext id.External, orderedIDs []int64) error {
	return b.charts.UpdateOrder(ctx, ext, orderedIDs)
}

func (b *Relational) ChartSections(ctx context.Context, ext id.External) (map[string][]wire.Record, error) {
	return b.charts.Sections(ctx, ext)
}

func (b *Relational) CopyCharts(ctx context.Context, source id.External, targets []id.External) (chart.CopyResult, error) {
	return b.charts.CopyToItems(ctx, source, targets)
}

func (b *Relational) CommonChords(ctx context.Context) ([]map[string]any, error) {
	return b.charts.CommonChords(ctx)
}

func (b *Relational) FindCommonChord(ctx context.Context, name string) (map[string]any, error) {
	return b.charts.FindCommonChord(ctx, name)
}

func (b *Relational) SearchCommonChords(ctx context.Context, name string) ([]map[string]any, error) {
	return b.charts.SearchCommonChords(ctx, name)
}

func (b *Relational) AutocreateCharts(ctx context.Context, ext id.External, names []string) ([]wire.Record, []string, error) {
	return b.charts.AutocreateFromNames(ctx, ext, names)
}

func (b *Relational) Routines(ctx context.Context) ([]wire.Record, error) {
	return b.routines.Routines(ctx)
}

func (b *Relational) CreateRoutine(ctx context.Context, rec wire.Record) (wire.Record, error) {
	return b.routines.Create(ctx, rec)
}

func (b *Relational) UpdateRoutine(ctx context.Context, routineID int64, rec wire.Record) (wire.Record, error) {
	return b.routines.Update(ctx, routineID, rec)
}

func (b *Relational) DeleteRoutine(ctx context.Context, routineID int64) error {
	return b.routines.Delete(ctx, routineID)
}

func (b *Relational) RoutineWithItems(ctx context.Context, routineID int64) (wire.Record, error) {
	return b.routines.RoutineWithItems(ctx, routineID)
}

func (b *Relational) RoutineEntries(ctx context.Context, routineID int64) ([]wire.Record, error) {
	return b.routines.Entries(ctx, routineID)
}

func (b *Relational) AddRoutineItem(ctx context.Context, routineID int64, ext id.External, order *int) (wire.Record, error) {
	return b.routines.AddItem(ctx, routineID, ext, order)
}

func (b *Relational) RemoveRoutineItem(ctx context.Context, routineID int64, ext id.External) error {
	return b.routines.RemoveItem(ctx, routineID, ext)
}

func (b *Relational) RemoveRoutineEntry(ctx context.Context, routineID, entryID int64) error {
	return b.routines.RemoveEntry(ctx, routineID, entryID)
}

func (b *Relational) UpdateRoutineEntriesOrder(ctx context.Context, routineID int64, recs []wire.Record) error {
	return b.routines.UpdateEntriesOrder(ctx, routineID, recs)
}

func (b *Relational) UpdateRoutinesOrder(ctx context.Context, recs []wire.Record) error {
	return b.routines.UpdateRoutinesOrder(ctx, recs)
}

func (b *Relational) UpdateRoutineEntry(ctx context.Context, routineID, entryID int64, rec wire.Record) (wire.Record, error) {
	return b.routines.UpdateEntry(ctx, routineID, entryID, rec)
}

func (b *Relational) SetRoutineEntryCompleted(ctx context.Context, routineID, entryID int64, completed bool) error {
	return b.routines.SetEntryCompleted(ctx, routineID, entryID, completed)
}

func (b *Relational) ResetRoutineProgress(ctx context.Context, routineID int64) error {
	return b.routines.ResetProgress(ctx, routineID)
}

func (b *Relational) ActiveRoutine(ctx context.Context) (wire.Record, error) {
	return b.routines.Active(ctx)
}

func (b *Relational) SetActiveRoutine(ctx context.Context, routineID int64) error {
	return b.routines.SetActive(ctx, routineID)
}

func (b *Relational) ClearActiveRoutine(ctx context.Context) error {
	return b.routines.ClearActive(ctx)
}

// Stats merges the entity-level statistics into one report.
func (b *Relational) Stats(ctx context.Context) (Stats, error) {
	itemStats, err := b.items.Stats(ctx)
	if err != nil {
		return Stats{}, err
	}
	chartStats, err := b.charts.Stats(ctx)
	if err != nil {
		return Stats{}, err
	}
	routineStats, err := b.routines.Stats(ctx)
	if err != nil {
		return Stats{}, err
	}
	extra := map[string]any{
		"items_without_charts": itemStats.TotalItems - chartStats.AttachedItems,
	}
	if itemStats.TotalItems > 0 {
		extra["avg_charts_per_item"] = float64(chartStats.TotalCharts) / float64(itemStats.TotalItems)
	}
	return Stats{
		Backend:  ModeRelational.String(),
		Items:    itemStats,
		Charts:   chartStats,
		Routines: routineStats,
		Extra:    extra,
	}, nil
}
