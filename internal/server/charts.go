package server

import (
	"net/http"
	"strconv"

	"github.com/fretlog/fretlog/internal/database"
	"github.com/fretlog/fretlog/internal/extraction"
	"github.com/fretlog/fretlog/internal/id"
)

func chartID(r *http.Request) (int64, error) {
	n, err := strconv.ParseInt(r.PathValue("chartID"), 10, 64)
	if err != nil {
		return 0, database.ErrInvalidInput
	}
	return n, nil
}

func (h *Handler) listCharts(w http.ResponseWriter, r *http.Request) {
	recs, err := h.data.ChartsForItem(r.Context(), itemID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, recs)
}

func (h *Handler) createChart(w http.ResponseWriter, r *http.Request) {
	var rec map[string]any
	if err := decodeJSON(r, &rec); err != nil {
		h.writeError(w, r, err)
		return
	}
	created, err := h.data.CreateChart(r.Context(), itemID(r), rec)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) batchCreateCharts(w http.ResponseWriter, r *http.Request) {
	var recs []map[string]any
	if err := decodeJSON(r, &recs); err != nil {
		h.writeError(w, r, err)
		return
	}
	var insertAt *int
	if raw := r.URL.Query().Get("insert_at"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, r, database.ErrInvalidInput)
			return
		}
		insertAt = &n
	}
	created, err := h.data.BatchCreateCharts(r.Context(), itemID(r), recs, insertAt)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateChart(w http.ResponseWriter, r *http.Request) {
	cID, err := chartID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var rec map[string]any
	if err := decodeJSON(r, &rec); err != nil {
		h.writeError(w, r, err)
		return
	}
	updated, err := h.data.UpdateChart(r.Context(), cID, rec)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

// deleteChart detaches the chart from the item named in the item_id query
// parameter. Without it the chart is purged across all items.
func (h *Handler) deleteChart(w http.ResponseWriter, r *http.Request) {
	cID, err := chartID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if ext := r.URL.Query().Get("item_id"); ext != "" {
		if err := h.data.DeleteChartFromItem(r.Context(), id.External(ext), cID); err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
		return
	}
	result, err := h.data.PurgeCharts(r.Context(), []int64{cID})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// batchGetCharts returns the charts of many items in one round trip, keyed
// by item identifier.
func (h *Handler) batchGetCharts(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ItemIDs []id.External `json:"item_ids"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	recs, err := h.data.ChartsForItems(r.Context(), body.ItemIDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, recs)
}

func (h *Handler) batchDeleteCharts(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ChartIDs []int64 `json:"chart_ids"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	result, err := h.data.PurgeCharts(r.Context(), body.ChartIDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) updateChartsOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ChartIDs []int64 `json:"chart_ids"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.data.UpdateChartsOrder(r.Context(), itemID(r), body.ChartIDs); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) chartSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.data.ChartSections(r.Context(), itemID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sections)
}

func (h *Handler) copyCharts(w http.ResponseWriter, r *http.Request) {
	var body struct {
		SourceItemID  id.External   `json:"source_item_id"`
		TargetItemIDs []id.External `json:"target_item_ids"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	if body.SourceItemID.IsEmpty() || len(body.TargetItemIDs) == 0 {
		h.writeError(w, r, database.ErrInvalidInput)
		return
	}
	result, err := h.data.CopyCharts(r.Context(), body.SourceItemID, body.TargetItemIDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) listCommonChords(w http.ResponseWriter, r *http.Request) {
	chords, err := h.data.CommonChords(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, chords)
}

func (h *Handler) searchCommonChords(w http.ResponseWriter, r *http.Request) {
	chords, err := h.data.SearchCommonChords(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, chords)
}

func (h *Handler) getCommonChord(w http.ResponseWriter, r *http.Request) {
	chord, err := h.data.FindCommonChord(r.Context(), r.PathValue("name"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, chord)
}

func (h *Handler) autocreateCharts(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ItemID     id.External `json:"item_id"`
		ChordNames []string    `json:"chord_names"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	if body.ItemID.IsEmpty() || len(body.ChordNames) == 0 {
		h.writeError(w, r, database.ErrInvalidInput)
		return
	}
	created, missing, err := h.data.AutocreateCharts(r.Context(), body.ItemID, body.ChordNames)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"created": created,
		"missing": missing,
	})
}

// extractCharts runs uploaded images through the extraction model and
// attaches the resulting charts to the named item in one batch.
func (h *Handler) extractCharts(w http.ResponseWriter, r *http.Request) {
	if h.extractor == nil {
		h.writeJSON(w, http.StatusServiceUnavailable,
			map[string]string{"error": "chart extraction is not configured"})
		return
	}
	var body struct {
		ItemID id.External `json:"item_id"`
		Files  []struct {
			Name      string `json:"name"`
			MediaType string `json:"media_type"`
			Data      []byte `json:"data"`
		} `json:"files"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	if body.ItemID.IsEmpty() || len(body.Files) == 0 {
		h.writeError(w, r, database.ErrInvalidInput)
		return
	}
	files := make([]extraction.File, 0, len(body.Files))
	for _, f := range body.Files {
		files = append(files, extraction.File{Name: f.Name, MediaType: f.MediaType, Data: f.Data})
	}
	recs, err := h.extractor.ExtractCharts(r.Context(), files)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	created, err := h.data.BatchCreateCharts(r.Context(), body.ItemID, recs, nil)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}
