// Package server is the HTTP route layer: request/response marshaling over
// the data layer facade. Handlers hold no business logic; they decode,
// delegate, and encode.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fretlog/fretlog/internal/chart"
	"github.com/fretlog/fretlog/internal/database"
	"github.com/fretlog/fretlog/internal/datalayer"
	"github.com/fretlog/fretlog/internal/extraction"
)

// DataSource is the facade surface the handlers consume.
type DataSource interface {
	datalayer.Backend
	ModeInfo() datalayer.ModeInfo
}

// Handler serves the JSON API.
type Handler struct {
	data      DataSource
	extractor extraction.Client
	logger    *slog.Logger
}

// NewHandler creates the API handler. extractor may be nil when the
// extraction service is not configured; the extraction route then reports
// the feature unavailable.
func NewHandler(data DataSource, extractor extraction.Client, logger *slog.Logger) *Handler {
	return &Handler{data: data, extractor: extractor, logger: logger}
}

// Routes registers every API route on a fresh mux.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/items", h.listItems)
	mux.HandleFunc("POST /api/items", h.createItem)
	mux.HandleFunc("GET /api/items/lightweight", h.listItemSummaries)
	mux.HandleFunc("GET /api/items/search", h.searchItems)
	mux.HandleFunc("GET /api/items/tuning/{tuning}", h.itemsByTuning)
	mux.HandleFunc("PUT /api/items/order", h.updateItemsOrder)
	mux.HandleFunc("GET /api/items/{itemID}", h.getItem)
	mux.HandleFunc("PUT /api/items/{itemID}", h.updateItem)
	mux.HandleFunc("DELETE /api/items/{itemID}", h.deleteItem)
	mux.HandleFunc("GET /api/items/{itemID}/notes", h.getItemNotes)
	mux.HandleFunc("POST /api/items/{itemID}/notes", h.saveItemNotes)

	mux.HandleFunc("GET /api/items/{itemID}/chord-charts", h.listCharts)
	mux.HandleFunc("POST /api/items/{itemID}/chord-charts", h.createChart)
	mux.HandleFunc("POST /api/items/{itemID}/chord-charts/batch", h.batchCreateCharts)
	mux.HandleFunc("PUT /api/items/{itemID}/chord-charts/order", h.updateChartsOrder)
	mux.HandleFunc("GET /api/items/{itemID}/chord-charts/sections", h.chartSections)
	mux.HandleFunc("PUT /api/chord-charts/{chartID}", h.updateChart)
	mux.HandleFunc("DELETE /api/chord-charts/{chartID}", h.deleteChart)
	mux.HandleFunc("POST /api/chord-charts/batch", h.batchGetCharts)
	mux.HandleFunc("POST /api/chord-charts/batch-delete", h.batchDeleteCharts)
	mux.HandleFunc("POST /api/chord-charts/copy", h.copyCharts)
	mux.HandleFunc("GET /api/chord-charts/common", h.listCommonChords)
	mux.HandleFunc("GET /api/chord-charts/common/search", h.searchCommonChords)
	mux.HandleFunc("GET /api/chord-charts/common/{name}", h.getCommonChord)
	mux.HandleFunc("POST /api/autocreate-chord-charts", h.autocreateCharts)
	mux.HandleFunc("POST /api/extract-chord-charts", h.extractCharts)

	mux.HandleFunc("GET /api/routines", h.listRoutines)
	mux.HandleFunc("POST /api/routines", h.createRoutine)
	mux.HandleFunc("PUT /api/routines/order", h.updateRoutinesOrder)
	mux.HandleFunc("GET /api/routines/{routineID}", h.getRoutine)
	mux.HandleFunc("PUT /api/routines/{routineID}", h.updateRoutine)
	mux.HandleFunc("DELETE /api/routines/{routineID}", h.deleteRoutine)
	mux.HandleFunc("GET /api/routines/{routineID}/details", h.getRoutine)
	mux.HandleFunc("GET /api/routines/{routineID}/items", h.listRoutineEntries)
	mux.HandleFunc("POST /api/routines/{routineID}/items", h.addRoutineItem)
	mux.HandleFunc("PUT /api/routines/{routineID}/items/order", h.updateRoutineEntriesOrder)
	mux.HandleFunc("DELETE /api/routines/{routineID}/items/by-item/{itemID}", h.removeRoutineItem)
	mux.HandleFunc("PUT /api/routines/{routineID}/items/{entryID}", h.updateRoutineEntry)
	mux.HandleFunc("DELETE /api/routines/{routineID}/items/{entryID}", h.removeRoutineEntry)
	mux.HandleFunc("PUT /api/routines/{routineID}/items/{entryID}/complete", h.completeRoutineEntry)
	mux.HandleFunc("POST /api/routines/{routineID}/reset", h.resetRoutineProgress)
	mux.HandleFunc("GET /api/practice/active-routine", h.getActiveRoutine)
	mux.HandleFunc("POST /api/practice/active-routine", h.setActiveRoutine)
	mux.HandleFunc("DELETE /api/practice/active-routine", h.clearActiveRoutine)

	mux.HandleFunc("GET /api/health", h.health)
	mux.HandleFunc("GET /api/system/status", h.systemStatus)
	mux.HandleFunc("GET /api/stats", h.stats)

	return mux
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) systemStatus(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.data.ModeInfo())
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.data.Stats(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", slog.Any("error", err))
	}
}

// writeError maps the data layer's error taxonomy onto HTTP statuses:
// unresolved identifiers are 404, malformed inputs 400, detach conflicts
// 409, and anything else a logged 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case database.IsNotFound(err):
		status = http.StatusNotFound
	case database.IsInvalidInput(err):
		status = http.StatusBadRequest
	case errors.Is(err, chart.ErrNotAttached):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// decodeJSON reads the request body into v; a malformed body is an
// ErrInvalidInput, surfaced before any storage work happens.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return database.ErrInvalidInput
	}
	return nil
}
