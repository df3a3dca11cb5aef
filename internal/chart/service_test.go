package chart

import (
	"context"
	"log/slog"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fretlog/fretlog/internal/database"
	"github.com/fretlog/fretlog/internal/id"
	"github.com/fretlog/fretlog/internal/testutil"
)

func newTestService(t *testing.T) (*Service, *sqlx.DB) {
	t.Helper()
	db := testutil.OpenTestDB(t)
	return NewService(db, slog.New(slog.DiscardHandler)), db
}

func createCharts(t *testing.T, svc *Service, ext id.External, titles ...string) []int64 {
	t.Helper()
	recs := make([]map[string]any, 0, len(titles))
	for _, title := range titles {
		recs = append(recs, map[string]any{
			"title":   title,
			"fingers": []any{[]any{1.0, 2.0}},
		})
	}
	created, err := svc.BatchCreate(context.Background(), ext, recs, nil)
	require.NoError(t, err)
	ids := make([]int64, 0, len(created))
	for _, rec := range created {
		var chartID int64
		chartID = int64(rec.Int("A"))
		ids = append(ids, chartID)
	}
	return ids
}

func TestBatchCreateAndList(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	ids := createCharts(t, svc, "107", "Am", "Em", "C")
	require.Len(t, ids, 3)

	charts, err := svc.ChartsForItem(ctx, "107")
	require.NoError(t, err)
	require.Len(t, charts, 3)
	assert.Equal(t, "Am", charts[0].String("C"))
	assert.Equal(t, "Em", charts[1].String("C"))
	assert.Equal(t, "C", charts[2].String("C"))
	assert.Equal(t, "107", charts[0].String("B"))
}

func TestBatchCreateDefaultsTitle(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.BatchCreate(context.Background(), "1", []map[string]any{
		{"fingers": []any{}, "title": ""},
		{"fingers": []any{}, "title": ""},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Chord 1", created[0].String("C"))
	assert.Equal(t, "Chord 2", created[1].String("C"))
}

func TestBatchCreateInsertAt(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.BatchCreate(ctx, "1", []map[string]any{
		{"title": "D", "fingers": []any{}},
		{"title": "E", "fingers": []any{}},
	}, intPtr(5))
	require.NoError(t, err)
	assert.Equal(t, 5, created[0].Int("F"))
	assert.Equal(t, 6, created[1].Int("F"))
}

func TestFindForItemExactMembership(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	// A chart shared by items whose identifiers are substrings of each
	// other must only surface for exact members.
	_, err := db.ExecContext(ctx,
		"INSERT INTO chord_charts (item_id, title, chord_data, created_at, order_col) VALUES (?, ?, ?, ?, ?)",
		"61, 107, 45", "Shared", "{}", database.Timestamp(), 0)
	require.NoError(t, err)

	for ext, want := range map[id.External]int{
		"107": 1,
		"61":  1,
		"45":  1,
		"1":   0,
		"7":   0,
		"10":  0,
		"4":   0,
	} {
		charts, err := svc.ChartsForItem(ctx, ext)
		require.NoError(t, err)
		assert.Len(t, charts, want, "item %q", ext)
	}
}

func TestDeleteFromItemSharedChart(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		"INSERT INTO chord_charts (item_id, title, chord_data, created_at, order_col) VALUES (?, ?, ?, ?, ?)",
		"61, 107", "Shared", "{}", database.Timestamp(), 0)
	require.NoError(t, err)
	var chartID int64
	require.NoError(t, db.GetContext(ctx, &chartID, "SELECT chord_id FROM chord_charts"))

	// Detaching one item keeps the chart for the other.
	require.NoError(t, svc.DeleteFromItem(ctx, "61", chartID))
	charts, err := svc.ChartsForItem(ctx, "107")
	require.NoError(t, err)
	require.Len(t, charts, 1)
	assert.Equal(t, "107", charts[0].String("B"))

	// Detaching the last attachment deletes the row.
	require.NoError(t, svc.DeleteFromItem(ctx, "107", chartID))
	_, err = svc.Chart(ctx, chartID)
	assert.True(t, database.IsNotFound(err))
}

func TestDeleteFromItemNotAttached(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	ids := createCharts(t, svc, "107", "Am")

	err := svc.DeleteFromItem(ctx, "61", ids[0])
	assert.ErrorIs(t, err, ErrNotAttached)

	// The failed detach must not have mutated the chart.
	charts, err := svc.ChartsForItem(ctx, "107")
	require.NoError(t, err)
	assert.Len(t, charts, 1)
}

func TestDeleteFromItemUnknownChart(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.DeleteFromItem(context.Background(), "107", 9999)
	assert.True(t, database.IsNotFound(err))
}

func TestBatchDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	ids := createCharts(t, svc, "107", "Am", "Em", "C")

	result, err := svc.BatchDelete(ctx, ids[:2])
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.DeletedCount)

	charts, err := svc.ChartsForItem(ctx, "107")
	require.NoError(t, err)
	assert.Len(t, charts, 1)
}

func TestBatchDeleteBypassesSharing(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		"INSERT INTO chord_charts (item_id, title, chord_data, created_at, order_col) VALUES (?, ?, ?, ?, ?)",
		"61, 107", "Shared", "{}", database.Timestamp(), 0)
	require.NoError(t, err)
	var chartID int64
	require.NoError(t, db.GetContext(ctx, &chartID, "SELECT chord_id FROM chord_charts"))

	result, err := svc.BatchDelete(ctx, []int64{chartID})
	require.NoError(t, err)
	assert.Equal(t, 1, result.DeletedCount)

	// A purge removes the chart for every attached item.
	for _, ext := range []id.External{"61", "107"} {
		charts, err := svc.ChartsForItem(ctx, ext)
		require.NoError(t, err)
		assert.Empty(t, charts)
	}
}

func TestUpdateChart(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	ids := createCharts(t, svc, "107", "Am")

	updated, err := svc.Update(ctx, ids[0], map[string]any{
		"C": "Am7",
		"D": map[string]any{"fingers": []any{[]any{1.0, 1.0}}, "tuning": "DADGAD"},
		"F": "4",
	})
	require.NoError(t, err)
	assert.Equal(t, "Am7", updated.String("C"))
	assert.Equal(t, 4, updated.Int("F"))
	// Attachments survive a content update.
	assert.Equal(t, "107", updated.String("B"))
}

func TestUpdateOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	ids := createCharts(t, svc, "107", "Am", "Em", "C")

	// Reverse, with a foreign id that must be skipped.
	require.NoError(t, svc.UpdateOrder(ctx, "107", []int64{ids[2], 9999, ids[1], ids[0]}))

	charts, err := svc.ChartsForItem(ctx, "107")
	require.NoError(t, err)
	require.Len(t, charts, 3)
	assert.Equal(t, "C", charts[0].String("C"))
	assert.Equal(t, "Em", charts[1].String("C"))
	assert.Equal(t, "Am", charts[2].String("C"))
}

func TestCopyToItems(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	createCharts(t, svc, "src", "Am", "Em")
	createCharts(t, svc, "tgt", "Old")

	result, err := svc.CopyToItems(ctx, "src", []id.External{"tgt"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.ChartsFound)
	assert.Equal(t, 2, result.Updated)
	assert.Equal(t, 1, result.Removed)

	// The target now sees exactly the source's charts, shared.
	charts, err := svc.ChartsForItem(ctx, "tgt")
	require.NoError(t, err)
	require.Len(t, charts, 2)
	assert.Equal(t, "src, tgt", charts[0].String("B"))

	srcCharts, err := svc.ChartsForItem(ctx, "src")
	require.NoError(t, err)
	assert.Len(t, srcCharts, 2)
}

func TestCopyToItemsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	createCharts(t, svc, "src", "Am")

	for i := 0; i < 2; i++ {
		result, err := svc.CopyToItems(ctx, "src", []id.External{"tgt"})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Updated)
	}

	charts, err := svc.ChartsForItem(ctx, "tgt")
	require.NoError(t, err)
	require.Len(t, charts, 1)
	assert.Equal(t, "src, tgt", charts[0].String("B"))
}

func TestCopyToItemsEmptySource(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.CopyToItems(context.Background(), "empty", []id.External{"tgt"})
	require.NoError(t, err)
	assert.Equal(t, 0, result.ChartsFound)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 0, result.Removed)
}

func TestSections(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.BatchCreate(ctx, "107", []map[string]any{
		{"title": "Am", "fingers": []any{}, "sectionId": "verse"},
		{"title": "Em", "fingers": []any{}, "sectionId": "verse"},
		{"title": "C", "fingers": []any{}},
	}, nil)
	require.NoError(t, err)

	sections, err := svc.Sections(ctx, "107")
	require.NoError(t, err)
	assert.Len(t, sections["verse"], 2)
	assert.Len(t, sections["default"], 1)
}

func TestStats(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	createCharts(t, svc, "107", "Am", "Em")
	_, err := db.ExecContext(ctx,
		"INSERT INTO chord_charts (item_id, title, chord_data, created_at, order_col) VALUES (?, ?, ?, ?, ?)",
		"61, 107", "Shared", "{}", database.Timestamp(), 0)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalCharts)
	assert.Equal(t, 2, stats.AttachedItems)
}

func seedCommonChord(t *testing.T, db *sqlx.DB, name, data string) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		"INSERT INTO common_chords (type, name, chord_data, created_at, order_col) VALUES (?, ?, ?, ?, ?)",
		"open", name, data, database.Timestamp(), 0)
	require.NoError(t, err)
}

func TestCommonChords(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	seedCommonChord(t, db, "Am", `{"fingers": [[1, 1], [2, 2]]}`)
	seedCommonChord(t, db, "Em", `{"fingers": [{"string": 5, "fret": 2}]}`)

	chords, err := svc.CommonChords(ctx)
	require.NoError(t, err)
	require.Len(t, chords, 2)

	found, err := svc.FindCommonChord(ctx, "Am")
	require.NoError(t, err)
	assert.Equal(t, "Am", found["title"])

	_, err = svc.FindCommonChord(ctx, "Zsus4")
	assert.True(t, database.IsNotFound(err))

	matches, err := svc.SearchCommonChords(ctx, "m")
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestAutocreateFromNames(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	seedCommonChord(t, db, "Am", `{"fingers": [[1, 1]]}`)
	seedCommonChord(t, db, "Em", `{"fingers": [[5, 2]]}`)

	created, missing, err := svc.AutocreateFromNames(ctx, "107", []string{"Am", "Zsus4", "Em"})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, []string{"Zsus4"}, missing)
	assert.Equal(t, "Am", created[0].String("C"))
	assert.Equal(t, "Em", created[1].String("C"))

	charts, err := svc.ChartsForItem(ctx, "107")
	require.NoError(t, err)
	assert.Len(t, charts, 2)
}
