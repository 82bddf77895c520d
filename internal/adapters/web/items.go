package web

import (
	"errors"
	"net/http"

	"inventory-service/internal/core"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// itemID extracts and parses the {id} URL parameter. On failure it writes a
// 400 response and returns false.
func itemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "invalid item ID", "BAD_REQUEST", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// internalError logs the storage failure and writes the generic 500 response.
// Error detail stays in the log; the caller only sees the collapsed outcome.
func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error().
		Err(err).
		Str("path", r.URL.Path).
		Str("request_id", requestIDFromContext(r.Context())).
		Msg("storage failure")
	writeError(w, r, "internal error", "INTERNAL_ERROR", http.StatusInternalServerError)
}

// createItem handles POST /items.
// Body: { name, unit, stock, rack?, location? }
func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var input core.NewItem
	if !decodeJSON(w, r, &input) {
		return
	}

	item, err := h.svc.CreateItem(r.Context(), input)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// listItems handles GET /items.
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.GetItems(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	if items == nil {
		items = []core.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

// getItem handles GET /items/{id}.
func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	item, err := h.svc.GetItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrItemNotFound) {
			writeError(w, r, "item not found", "NOT_FOUND", http.StatusNotFound)
			return
		}
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// updateItem handles PUT /items/{id}.
// Body: { name, unit, stock, rack?, location? }
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	var input core.NewItem
	if !decodeJSON(w, r, &input) {
		return
	}

	item, err := h.svc.UpdateItem(r.Context(), id, input)
	if err != nil {
		if errors.Is(err, core.ErrItemNotFound) {
			writeError(w, r, "item not found", "NOT_FOUND", http.StatusNotFound)
			return
		}
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// deleteItem handles DELETE /items/{id}. Success is 200 with an empty body;
// the prior content of the record is not returned.
func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	if err := h.svc.SoftDeleteItem(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrItemNotFound) {
			writeError(w, r, "item not found", "NOT_FOUND", http.StatusNotFound)
			return
		}
		h.internalError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
