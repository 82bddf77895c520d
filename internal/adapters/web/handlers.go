package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"inventory-service/internal/core"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler holds the ItemService, the chi router, and the request logger.
type Handler struct {
	svc    core.ItemService
	logger zerolog.Logger
	ping   func(context.Context) error
}

// NewHandler creates and wires the chi router with all routes. ping is used
// by the health endpoint to verify database connectivity; it may be nil.
func NewHandler(svc core.ItemService, logger zerolog.Logger, ping func(context.Context) error) http.Handler {
	h := &Handler{svc: svc, logger: logger, ping: ping}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recoverer(logger))
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB

	r.Get("/api/health", h.health)

	r.Post("/items", h.createItem)
	r.Get("/items", h.listItems)
	r.Get("/items/{id}", h.getItem)
	r.Put("/items/{id}", h.updateItem)
	r.Delete("/items/{id}", h.deleteItem)

	return r
}

// health returns service status after a connectivity check.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		if err := h.ping(r.Context()); err != nil {
			h.logger.Error().Err(err).Msg("health check failed")
			writeError(w, r, "database unreachable", "INTERNAL_ERROR", http.StatusInternalServerError)
			return
		}
	}

	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, http.StatusOK, response{Status: "ok"})
}

// decodeJSON decodes the request body into v and returns false + writes an appropriate
// error response on failure. Returns HTTP 413 when the body exceeds the size limit set
// by RequestBodyLimit middleware; HTTP 400 for all other decode errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, r, "request body too large", "REQUEST_TOO_LARGE", http.StatusRequestEntityTooLarge)
			return false
		}
		writeError(w, r, "invalid JSON body: "+err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return false
	}
	return true
}
