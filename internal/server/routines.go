package server

import (
	"net/http"
	"strconv"

	"github.com/fretlog/fretlog/internal/database"
	"github.com/fretlog/fretlog/internal/id"
	"github.com/fretlog/fretlog/internal/wire"
)

func pathInt64(r *http.Request, name string) (int64, error) {
	n, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, database.ErrInvalidInput
	}
	return n, nil
}

func (h *Handler) listRoutines(w http.ResponseWriter, r *http.Request) {
	recs, err := h.data.Routines(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, recs)
}

func (h *Handler) createRoutine(w http.ResponseWriter, r *http.Request) {
	var rec wire.Record
	if err := decodeJSON(r, &rec); err != nil {
		h.writeError(w, r, err)
		return
	}
	created, err := h.data.CreateRoutine(r.Context(), rec)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) getRoutine(w http.ResponseWriter, r *http.Request) {
	rID, err := pathInt64(r, "routineID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	rec, err := h.data.RoutineWithItems(r.Context(), rID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) updateRoutine(w http.ResponseWriter, r *http.Request) {
	rID, err := pathInt64(r, "routineID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var rec wire.Record
	if err := decodeJSON(r, &rec); err != nil {
		h.writeError(w, r, err)
		return
	}
	updated, err := h.data.UpdateRoutine(r.Context(), rID, rec)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteRoutine(w http.ResponseWriter, r *http.Request) {
	rID, err := pathInt64(r, "routineID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.data.DeleteRoutine(r.Context(), rID); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) listRoutineEntries(w http.ResponseWriter, r *http.Request) {
	rID, err := pathInt64(r, "routineID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	recs, err := h.data.RoutineEntries(r.Context(), rID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, recs)
}

func (h *Handler) addRoutineItem(w http.ResponseWriter, r *http.Request) {
	rID, err := pathInt64(r, "routineID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body struct {
		ItemID string `json:"item_id"`
		Order  *int   `json:"order"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	if body.ItemID == "" {
		h.writeError(w, r, database.ErrInvalidInput)
		return
	}
	created, err := h.data.AddRoutineItem(r.Context(), rID, id.External(body.ItemID), body.Order)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) removeRoutineItem(w http.ResponseWriter, r *http.Request) {
	rID, err := pathInt64(r, "routineID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.data.RemoveRoutineItem(r.Context(), rID, itemID(r)); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) removeRoutineEntry(w http.ResponseWriter, r *http.Request) {
	rID, err := pathInt64(r, "routineID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	eID, err := pathInt64(r, "entryID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.data.RemoveRoutineEntry(r.Context(), rID, eID); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) updateRoutineEntriesOrder(w http.ResponseWriter, r *http.Request) {
	rID, err := pathInt64(r, "routineID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var recs []wire.Record
	if err := decodeJSON(r, &recs); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.data.UpdateRoutineEntriesOrder(r.Context(), rID, recs); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) updateRoutinesOrder(w http.ResponseWriter, r *http.Request) {
	var recs []wire.Record
	if err := decodeJSON(r, &recs); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.data.UpdateRoutinesOrder(r.Context(), recs); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) updateRoutineEntry(w http.ResponseWriter, r *http.Request) {
	rID, err := pathInt64(r, "routineID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	eID, err := pathInt64(r, "entryID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var rec wire.Record
	if err := decodeJSON(r, &rec); err != nil {
		h.writeError(w, r, err)
		return
	}
	updated, err := h.data.UpdateRoutineEntry(r.Context(), rID, eID, rec)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) completeRoutineEntry(w http.ResponseWriter, r *http.Request) {
	rID, err := pathInt64(r, "routineID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	eID, err := pathInt64(r, "entryID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var body struct {
		Completed bool `json:"completed"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.data.SetRoutineEntryCompleted(r.Context(), rID, eID, body.Completed); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) resetRoutineProgress(w http.ResponseWriter, r *http.Request) {
	rID, err := pathInt64(r, "routineID")
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.data.ResetRoutineProgress(r.Context(), rID); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// getActiveRoutine returns {"active_routine": null} rather than 404 when no
// routine is selected; an unset selection is not an error for the client.
func (h *Handler) getActiveRoutine(w http.ResponseWriter, r *http.Request) {
	rec, err := h.data.ActiveRoutine(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if rec == nil {
		h.writeJSON(w, http.StatusOK, map[string]any{"active_routine": nil})
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"active_routine": rec})
}

func (h *Handler) setActiveRoutine(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RoutineID int64 `json:"routine_id"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.data.SetActiveRoutine(r.Context(), body.RoutineID); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) clearActiveRoutine(w http.ResponseWriter, r *http.Request) {
	if err := h.data.ClearActiveRoutine(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
