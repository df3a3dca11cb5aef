package routine

import (
	"context"
	"log/slog"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fretlog/fretlog/internal/database"
	"github.com/fretlog/fretlog/internal/id"
	"github.com/fretlog/fretlog/internal/item"
	"github.com/fretlog/fretlog/internal/testutil"
	"github.com/fretlog/fretlog/internal/wire"
)

func newTestService(t *testing.T) (*Service, *sqlx.DB) {
	t.Helper()
	db := testutil.OpenTestDB(t)
	return NewService(db, slog.New(slog.DiscardHandler)), db
}

func seedItem(t *testing.T, db *sqlx.DB, ext id.External, title string) {
	t.Helper()
	it := item.Item{ExternalID: ext, Title: title}
	require.NoError(t, item.NewDBRepository(db).Create(context.Background(), &it))
}

func createRoutine(t *testing.T, svc *Service, name string) int64 {
	t.Helper()
	created, err := svc.Create(context.Background(), wire.Record{"B": name})
	require.NoError(t, err)
	return int64(created.Int("A"))
}

func TestCreateRequiresName(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.Create(context.Background(), wire.Record{})
	assert.True(t, database.IsInvalidInput(err))
}

func TestCreatePreservesExplicitID(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Create(context.Background(), wire.Record{"A": "42", "B": "Morning"})
	require.NoError(t, err)
	assert.Equal(t, "42", created.String("A"))
}

func TestRoutinesListedInCreationOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Display-order values are deliberately out of line with creation
	// order; the listing must ignore them.
	for _, rec := range []wire.Record{
		{"B": "First", "D": "10"},
		{"B": "Second", "D": "1"},
		{"B": "Third", "D": "2"},
	} {
		_, err := svc.Create(ctx, rec)
		require.NoError(t, err)
	}

	routines, err := svc.Routines(ctx)
	require.NoError(t, err)
	require.Len(t, routines, 3)
	assert.Equal(t, "First", routines[0].String("B"))
	assert.Equal(t, "Second", routines[1].String("B"))
	assert.Equal(t, "Third", routines[2].String("B"))
}

func TestRoutinesActiveFlag(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first := createRoutine(t, svc, "First")
	createRoutine(t, svc, "Second")

	require.NoError(t, svc.SetActive(ctx, first))

	routines, err := svc.Routines(ctx)
	require.NoError(t, err)
	assert.Equal(t, true, routines[0]["active"])
	assert.Equal(t, false, routines[1]["active"])
}

func TestAddItemAssignsNextOrder(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	seedItem(t, db, "a", "Alpha")
	seedItem(t, db, "b", "Bravo")
	routineID := createRoutine(t, svc, "Practice")

	first, err := svc.AddItem(ctx, routineID, "a", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Int("C"))

	second, err := svc.AddItem(ctx, routineID, "b", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Int("C"))

	assert.Equal(t, "a", first.String("B"))
	assert.Equal(t, wire.False, first.String("D"))
}

func TestAddItemUnknownItem(t *testing.T) {
	svc, _ := newTestService(t)
	routineID := createRoutine(t, svc, "Practice")

	_, err := svc.AddItem(context.Background(), routineID, "missing", nil)
	assert.True(t, database.IsNotFound(err))
}

func TestAddItemUnknownRoutine(t *testing.T) {
	svc, db := newTestService(t)
	seedItem(t, db, "a", "Alpha")

	_, err := svc.AddItem(context.Background(), 9999, "a", nil)
	assert.True(t, database.IsNotFound(err))
}

func TestEntriesListedInCreationOrder(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	seedItem(t, db, "a", "Alpha")
	seedItem(t, db, "b", "Bravo")
	seedItem(t, db, "c", "Charlie")
	routineID := createRoutine(t, svc, "Practice")

	// Explicit order values descend, but the read path follows row
	// creation order.
	for i, ext := range []id.External{"a", "b", "c"} {
		order := 10 - i
		_, err := svc.AddItem(ctx, routineID, ext, &order)
		require.NoError(t, err)
	}

	entries, err := svc.Entries(ctx, routineID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "a", entries[0].String("B"))
	assert.Equal(t, "b", entries[1].String("B"))
	assert.Equal(t, "c", entries[2].String("B"))
}

func TestRoutineWithItems(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	seedItem(t, db, "a", "Alpha")
	routineID := createRoutine(t, svc, "Practice")
	_, err := svc.AddItem(ctx, routineID, "a", nil)
	require.NoError(t, err)

	rec, err := svc.RoutineWithItems(ctx, routineID)
	require.NoError(t, err)
	assert.Equal(t, "Practice", rec.String("B"))

	details, ok := rec["items"].([]EntryDetail)
	require.True(t, ok)
	require.Len(t, details, 1)
	assert.Equal(t, "a", details[0].RoutineEntry.String("B"))
	assert.Equal(t, "a", details[0].ItemDetails.String("A"))
	assert.Equal(t, "a", details[0].ItemDetails.String("B"))
	assert.Equal(t, "Alpha", details[0].ItemDetails.String("C"))
}

func TestRemoveItemAndEntry(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	seedItem(t, db, "a", "Alpha")
	seedItem(t, db, "b", "Bravo")
	routineID := createRoutine(t, svc, "Practice")

	_, err := svc.AddItem(ctx, routineID, "a", nil)
	require.NoError(t, err)
	second, err := svc.AddItem(ctx, routineID, "b", nil)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveItem(ctx, routineID, "a"))
	require.NoError(t, svc.RemoveEntry(ctx, routineID, int64(second.Int("A"))))

	entries, err := svc.Entries(ctx, routineID)
	require.NoError(t, err)
	assert.Empty(t, entries)

	err = svc.RemoveItem(ctx, routineID, "a")
	assert.True(t, database.IsNotFound(err))
}

func TestCompletionAndReset(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	seedItem(t, db, "a", "Alpha")
	seedItem(t, db, "b", "Bravo")
	routineID := createRoutine(t, svc, "Practice")

	first, err := svc.AddItem(ctx, routineID, "a", nil)
	require.NoError(t, err)
	second, err := svc.AddItem(ctx, routineID, "b", nil)
	require.NoError(t, err)

	require.NoError(t, svc.SetEntryCompleted(ctx, routineID, int64(first.Int("A")), true))
	require.NoError(t, svc.SetEntryCompleted(ctx, routineID, int64(second.Int("A")), true))

	entries, err := svc.Entries(ctx, routineID)
	require.NoError(t, err)
	assert.Equal(t, wire.True, entries[0].String("D"))
	assert.Equal(t, wire.True, entries[1].String("D"))

	require.NoError(t, svc.ResetProgress(ctx, routineID))

	entries, err = svc.Entries(ctx, routineID)
	require.NoError(t, err)
	assert.Equal(t, wire.False, entries[0].String("D"))
	assert.Equal(t, wire.False, entries[1].String("D"))
}

func TestUpdateEntryCompletionOnly(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	seedItem(t, db, "a", "Alpha")
	routineID := createRoutine(t, svc, "Practice")
	entry, err := svc.AddItem(ctx, routineID, "a", nil)
	require.NoError(t, err)
	entryID := int64(entry.Int("A"))

	updated, err := svc.UpdateEntry(ctx, routineID, entryID, wire.Record{"D": wire.True})
	require.NoError(t, err)
	assert.Equal(t, wire.True, updated.String("D"))
	// Identity and order are untouched.
	assert.Equal(t, entry.String("A"), updated.String("A"))
	assert.Equal(t, entry.String("C"), updated.String("C"))
}

func TestUpdateEntriesOrder(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	seedItem(t, db, "a", "Alpha")
	seedItem(t, db, "b", "Bravo")
	routineID := createRoutine(t, svc, "Practice")

	first, err := svc.AddItem(ctx, routineID, "a", nil)
	require.NoError(t, err)
	second, err := svc.AddItem(ctx, routineID, "b", nil)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateEntriesOrder(ctx, routineID, []wire.Record{
		{"A": first.String("A"), "C": "5"},
		{"A": second.String("A"), "C": "3"},
	}))

	entries, err := svc.Entries(ctx, routineID)
	require.NoError(t, err)
	// Order values changed, sequence still follows creation order.
	assert.Equal(t, 5, entries[0].Int("C"))
	assert.Equal(t, 3, entries[1].Int("C"))
	assert.Equal(t, "a", entries[0].String("B"))
}

func TestDeleteRemovesEntries(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	seedItem(t, db, "a", "Alpha")
	routineID := createRoutine(t, svc, "Practice")
	_, err := svc.AddItem(ctx, routineID, "a", nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, routineID))

	var count int
	require.NoError(t, db.GetContext(ctx, &count, "SELECT COUNT(*) FROM routine_items"))
	assert.Equal(t, 0, count)

	err = svc.Delete(ctx, routineID)
	assert.True(t, database.IsNotFound(err))
}

func TestActiveRoutineLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Nothing marked yet.
	active, err := svc.Active(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)

	first := createRoutine(t, svc, "First")
	second := createRoutine(t, svc, "Second")

	require.NoError(t, svc.SetActive(ctx, first))
	active, err = svc.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, "First", active.String("B"))

	// Marking another routine replaces the previous marker.
	require.NoError(t, svc.SetActive(ctx, second))
	active, err = svc.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Second", active.String("B"))

	require.NoError(t, svc.ClearActive(ctx))
	active, err = svc.Active(ctx)
	require.NoError(t, err)
	assert.Nil(t, active)

	// Clearing twice is a no-op, not an error.
	require.NoError(t, svc.ClearActive(ctx))
}

func TestSetActiveUnknownRoutine(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.SetActive(context.Background(), 9999)
	assert.True(t, database.IsNotFound(err))
}

func TestStats(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)

	routineID := createRoutine(t, svc, "Practice")
	require.NoError(t, svc.SetActive(ctx, routineID))

	stats, err = svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalRoutines)
	assert.True(t, stats.HasActiveRoutine)
	assert.Equal(t, "Practice", stats.ActiveRoutineName)
}
