package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fretlog/fretlog/internal/config"
	"github.com/fretlog/fretlog/internal/database"
	"github.com/fretlog/fretlog/internal/wire"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(config.SheetsConfig{
		BaseURL:       srv.URL,
		SpreadsheetID: "sheet1",
		APIToken:      "token123",
		RetryAttempts: 1,
	})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func TestItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spreadsheets/sheet1/items", r.URL.Path)
		assert.Equal(t, "Bearer token123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]wire.Record{{"A": "1", "C": "Wonderwall"}})
	})

	records, err := client.Items(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Wonderwall", records[0].String("C"))
}

func TestItemNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Item(context.Background(), "missing")
	assert.True(t, database.IsNotFound(err))
}

func TestRetryOnServerError(t *testing.T) {
	attempts := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]wire.Record{})
	})

	_, err := client.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestNoRetryOnClientError(t *testing.T) {
	attempts := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := client.Items(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestBatchCreateChartsQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spreadsheets/sheet1/items/107/chord-charts/batch", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("insert_at"))

		var recs []map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&recs))
		assert.Len(t, recs, 1)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]wire.Record{{"A": "9", "C": "Am"}})
	})

	insertAt := 3
	records, err := client.BatchCreateCharts(context.Background(), "107",
		[]map[string]any{{"title": "Am"}}, &insertAt)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Am", records[0].String("C"))
}

func TestActiveRoutineUnset(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{}"))
	})

	rec, err := client.ActiveRoutine(context.Background())
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestAvailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spreadsheets/sheet1/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})
	assert.True(t, client.Available(context.Background()))

	down := NewClient(config.SheetsConfig{BaseURL: "http://127.0.0.1:1", SpreadsheetID: "sheet1"})
	defer down.Close()
	assert.False(t, down.Available(context.Background()))
}

func TestStatsTagged(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": {"total_items": 4}}`))
	})

	stats, err := client.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sheets", stats.Backend)
	assert.Equal(t, 4, stats.Items.TotalItems)
}
