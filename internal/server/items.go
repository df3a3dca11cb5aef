package server

import (
	"net/http"

	"github.com/fretlog/fretlog/internal/id"
	"github.com/fretlog/fretlog/internal/wire"
)

func itemID(r *http.Request) id.External {
	return id.External(r.PathValue("itemID"))
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	recs, err := h.data.Items(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, recs)
}

func (h *Handler) listItemSummaries(w http.ResponseWriter, r *http.Request) {
	recs, err := h.data.ItemSummaries(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, recs)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	rec, err := h.data.Item(r.Context(), itemID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var rec wire.Record
	if err := decodeJSON(r, &rec); err != nil {
		h.writeError(w, r, err)
		return
	}
	created, err := h.data.CreateItem(r.Context(), rec)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var rec wire.Record
	if err := decodeJSON(r, &rec); err != nil {
		h.writeError(w, r, err)
		return
	}
	updated, err := h.data.UpdateItem(r.Context(), itemID(r), rec)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	if err := h.data.DeleteItem(r.Context(), itemID(r)); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) updateItemsOrder(w http.ResponseWriter, r *http.Request) {
	var recs []wire.Record
	if err := decodeJSON(r, &recs); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.data.UpdateItemsOrder(r.Context(), recs); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) searchItems(w http.ResponseWriter, r *http.Request) {
	recs, err := h.data.SearchItems(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, recs)
}

func (h *Handler) itemsByTuning(w http.ResponseWriter, r *http.Request) {
	recs, err := h.data.ItemsByTuning(r.Context(), r.PathValue("tuning"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, recs)
}

func (h *Handler) getItemNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.data.ItemNotes(r.Context(), itemID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"notes": notes})
}

func (h *Handler) saveItemNotes(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Notes string `json:"notes"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.data.SaveItemNotes(r.Context(), itemID(r), body.Notes); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
