package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fretlog/fretlog/internal/chart"
	"github.com/fretlog/fretlog/internal/database"
	"github.com/fretlog/fretlog/internal/datalayer"
	"github.com/fretlog/fretlog/internal/extraction"
	"github.com/fretlog/fretlog/internal/id"
	mock_datalayer "github.com/fretlog/fretlog/internal/mocks/datalayer"
	mock_extraction "github.com/fretlog/fretlog/internal/mocks/extraction"
	"github.com/fretlog/fretlog/internal/wire"
)

// testSource adapts a mocked backend to the DataSource facade surface.
type testSource struct {
	datalayer.Backend
	info datalayer.ModeInfo
}

func (s testSource) ModeInfo() datalayer.ModeInfo {
	return s.info
}

func newTestHandler(t *testing.T, extractor extraction.Client) (*Handler, *mock_datalayer.MockBackend) {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := mock_datalayer.NewMockBackend(ctrl)
	source := testSource{Backend: backend, info: datalayer.ModeInfo{Mode: "relational", Configured: "relational"}}
	return NewHandler(source, extractor, slog.New(slog.DiscardHandler)), backend
}

func doRequest(t *testing.T, h *Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.Routes().ServeHTTP(rec, req)
	return rec
}

func TestListItems(t *testing.T) {
	h, backend := newTestHandler(t, nil)
	backend.EXPECT().Items(gomock.Any()).Return([]wire.Record{
		{"A": "1", "B": "1", "C": "Wonderwall"},
	}, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/items", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []wire.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Wonderwall", items[0].String("C"))
}

func TestGetItemNotFound(t *testing.T) {
	h, backend := newTestHandler(t, nil)
	backend.EXPECT().Item(gomock.Any(), id.External("missing")).Return(nil, database.ErrNotFound)

	rec := doRequest(t, h, http.MethodGet, "/api/items/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateItem(t *testing.T) {
	h, backend := newTestHandler(t, nil)
	backend.EXPECT().CreateItem(gomock.Any(), wire.Record{"C": "Wonderwall"}).
		Return(wire.Record{"A": "1", "B": "1", "C": "Wonderwall"}, nil)

	rec := doRequest(t, h, http.MethodPost, "/api/items", `{"C": "Wonderwall"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created wire.Record
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "1", created.String("B"))
}

func TestCreateItemInvalidBody(t *testing.T) {
	h, _ := newTestHandler(t, nil)
	rec := doRequest(t, h, http.MethodPost, "/api/items", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateItemDuplicate(t *testing.T) {
	h, backend := newTestHandler(t, nil)
	backend.EXPECT().CreateItem(gomock.Any(), gomock.Any()).Return(nil, database.ErrInvalidInput)

	rec := doRequest(t, h, http.MethodPost, "/api/items", `{"B": "taken", "C": "Song"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBatchCreateChartsInsertAt(t *testing.T) {
	h, backend := newTestHandler(t, nil)
	insertAt := 3
	backend.EXPECT().
		BatchCreateCharts(gomock.Any(), id.External("107"), gomock.Any(), &insertAt).
		Return([]wire.Record{{"A": "9", "C": "Am"}}, nil)

	rec := doRequest(t, h, http.MethodPost,
		"/api/items/107/chord-charts/batch?insert_at=3",
		`[{"title": "Am", "fingers": []}]`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDeleteChartDetach(t *testing.T) {
	h, backend := newTestHandler(t, nil)
	backend.EXPECT().DeleteChartFromItem(gomock.Any(), id.External("107"), int64(5)).Return(nil)

	rec := doRequest(t, h, http.MethodDelete, "/api/chord-charts/5?item_id=107", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteChartNotAttachedConflict(t *testing.T) {
	h, backend := newTestHandler(t, nil)
	backend.EXPECT().DeleteChartFromItem(gomock.Any(), id.External("61"), int64(5)).
		Return(chart.ErrNotAttached)

	rec := doRequest(t, h, http.MethodDelete, "/api/chord-charts/5?item_id=61", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteChartPurgesWithoutItem(t *testing.T) {
	h, backend := newTestHandler(t, nil)
	backend.EXPECT().PurgeCharts(gomock.Any(), []int64{5}).
		Return(chart.BatchDeleteResult{Success: true, DeletedCount: 1}, nil)

	rec := doRequest(t, h, http.MethodDelete, "/api/chord-charts/5", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var result chart.BatchDeleteResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.DeletedCount)
}

func TestDeleteChartBadID(t *testing.T) {
	h, _ := newTestHandler(t, nil)
	rec := doRequest(t, h, http.MethodDelete, "/api/chord-charts/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCopyChartsRequiresTargets(t *testing.T) {
	h, _ := newTestHandler(t, nil)
	rec := doRequest(t, h, http.MethodPost, "/api/chord-charts/copy",
		`{"source_item_id": "107", "target_item_ids": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCopyCharts(t *testing.T) {
	h, backend := newTestHandler(t, nil)
	backend.EXPECT().
		CopyCharts(gomock.Any(), id.External("107"), []id.External{"61", "45"}).
		Return(chart.CopyResult{ChartsFound: 2, Updated: 2, TargetItems: []id.External{"61", "45"}}, nil)

	rec := doRequest(t, h, http.MethodPost, "/api/chord-charts/copy",
		`{"source_item_id": "107", "target_item_ids": ["61", "45"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result chart.CopyResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Updated)
}

func TestActiveRoutineUnset(t *testing.T) {
	h, backend := newTestHandler(t, nil)
	backend.EXPECT().ActiveRoutine(gomock.Any()).Return(nil, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/practice/active-routine", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	v, ok := body["active_routine"]
	require.True(t, ok)
	assert.Nil(t, v)
}

func TestSetActiveRoutine(t *testing.T) {
	h, backend := newTestHandler(t, nil)
	backend.EXPECT().SetActiveRoutine(gomock.Any(), int64(3)).Return(nil)

	rec := doRequest(t, h, http.MethodPost, "/api/practice/active-routine", `{"routine_id": 3}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCompleteRoutineEntry(t *testing.T) {
	h, backend := newTestHandler(t, nil)
	backend.EXPECT().SetRoutineEntryCompleted(gomock.Any(), int64(2), int64(7), true).Return(nil)

	rec := doRequest(t, h, http.MethodPut, "/api/routines/2/items/7/complete", `{"completed": true}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSystemStatus(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rec := doRequest(t, h, http.MethodGet, "/api/system/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var info datalayer.ModeInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "relational", info.Mode)
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t, nil)
	rec := doRequest(t, h, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestExtractChartsUnconfigured(t *testing.T) {
	h, _ := newTestHandler(t, nil)
	rec := doRequest(t, h, http.MethodPost, "/api/extract-chord-charts",
		`{"item_id": "107", "files": [{"name": "a.png", "media_type": "image/png", "data": "aGk="}]}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestExtractCharts(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mock_extraction.NewMockClient(ctrl)
	h, backend := newTestHandler(t, extractor)

	extracted := []map[string]any{{"title": "Am", "fingers": []any{}}}
	extractor.EXPECT().
		ExtractCharts(gomock.Any(), []extraction.File{
			{Name: "a.png", MediaType: "image/png", Data: []byte("hi")},
		}).
		Return(extracted, nil)
	backend.EXPECT().
		BatchCreateCharts(gomock.Any(), id.External("107"), extracted, nil).
		Return([]wire.Record{{"A": "1", "C": "Am"}}, nil)

	rec := doRequest(t, h, http.MethodPost, "/api/extract-chord-charts",
		`{"item_id": "107", "files": [{"name": "a.png", "media_type": "image/png", "data": "aGk="}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
}
