// Package datalayer is the single entry point the route layer talks to. It
// selects one of two storage backends at construction time and forwards
// every operation to it, so callers never see which backend is serving.
package datalayer

//go:generate mockgen -source=backend.go -destination=../mocks/datalayer/mock_backend.go

import (
	"context"

	"github.com/fretlog/fretlog/internal/chart"
	"github.com/fretlog/fretlog/internal/id"
	"github.com/fretlog/fretlog/internal/item"
	"github.com/fretlog/fretlog/internal/routine"
	"github.com/fretlog/fretlog/internal/wire"
)

// Stats is the merged statistics shape across all entities, tagged with the
// backend that produced it.
type Stats struct {
	Backend  string         `json:"backend"`
	Items    item.Stats     `json:"items"`
	Charts   chart.Stats    `json:"chord_charts"`
	Routines routine.Stats  `json:"routines"`
	Extra    map[string]any `json:"extra,omitempty"`
}

// Backend is the full operation surface a storage backend must provide.
// Every operation is keyed by external identifiers and speaks the wire
// format; how a backend stores things is its own business.
type Backend interface {
	// Available reports whether the backend can serve traffic right now.
	// Checked once, at facade construction.
	Available(ctx context.Context) bool

	// Items.
	Items(ctx context.Context) ([]wire.Record, error)
	ItemSummaries(ctx context.Context) ([]wire.Record, error)
	Item(ctx context.Context, ext id.External) (wire.Record, error)
	CreateItem(ctx context.Context, rec wire.Record) (wire.Record, error)
	UpdateItem(ctx context.Context, ext id.External, rec wire.Record) (wire.Record, error)
	DeleteItem(ctx context.Context, ext id.External) error
	UpdateItemsOrder(ctx context.Context, recs []wire.Record) error
	SearchItems(ctx context.Context, query string) ([]wire.Record, error)
	ItemsByTuning(ctx context.Context, tuning string) ([]wire.Record, error)
	ItemNotes(ctx context.Context, ext id.External) (string, error)
	SaveItemNotes(ctx context.Context, ext id.External, notes string) error

	// Chord charts.
	ChartsForItem(ctx context.Context, ext id.External) ([]wire.Record, error)
	ChartsForItems(ctx context.Context, exts []id.External) (map[id.External][]wire.Record, error)
	CreateChart(ctx context.Context, ext id.External, rec map[string]any) (wire.Record, error)
	BatchCreateCharts(ctx context.Context, ext id.External, recs []map[string]any, insertAt *int) ([]wire.Record, error)
	UpdateChart(ctx context.Context, chartID int64, rec wire.Record) (wire.Record, error)
	DeleteChartFromItem(ctx context.Context, ext id.External, chartID int64) error
	PurgeCharts(ctx context.Context, chartIDs []int64) (chart.BatchDeleteResult, error)
	UpdateChartsOrder(ctx context.Context, ext id.External, orderedIDs []int64) error
	ChartSections(ctx context.Context, ext id.External) (map[string][]wire.Record, error)
	CopyCharts(ctx context.Context, source id.External, targets []id.External) (chart.CopyResult, error)
	CommonChords(ctx context.Context) ([]map[string]any, error)
	FindCommonChord(ctx context.Context, name string) (map[string]any, error)
	SearchCommonChords(ctx context.Context, name string) ([]map[string]any, error)
	AutocreateCharts(ctx context.Context, ext id.External, names []string) ([]wire.Record, []string, error)

	// Routines.
	Routines(ctx context.Context) ([]wire.Record, error)
	CreateRoutine(ctx context.Context, rec wire.Record) (wire.Record, error)
	UpdateRoutine(ctx context.Context, routineID int64, rec wire.Record) (wire.Record, error)
	DeleteRoutine(ctx context.Context, routineID int64) error
	RoutineWithItems(ctx context.Context, routineID int64) (wire.Record, error)
	RoutineEntries(ctx context.Context, routineID int64) ([]wire.Record, error)
	AddRoutineItem(ctx context.Context, routineID int64, ext id.External, order *int) (wire.Record, error)
	RemoveRoutineItem(ctx context.Context, routineID int64, ext id.External) error
	RemoveRoutineEntry(ctx context.Context, routineID, entryID int64) error
	UpdateRoutineEntriesOrder(ctx context.Context, routineID int64, recs []wire.Record) error
	UpdateRoutinesOrder(ctx context.Context, recs []wire.Record) error
	UpdateRoutineEntry(ctx context.Context, routineID, entryID int64, rec wire.Record) (wire.Record, error)
	SetRoutineEntryCompleted(ctx context.Context, routineID, entryID int64, completed bool) error
	ResetRoutineProgress(ctx context.Context, routineID int64) error
	ActiveRoutine(ctx context.Context) (wire.Record, error)
	SetActiveRoutine(ctx context.Context, routineID int64) error
	ClearActiveRoutine(ctx context.Context) error

	// Stats returns the backend's merged statistics.
	Stats(ctx context.Context) (Stats, error)
}
