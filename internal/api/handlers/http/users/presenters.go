package users

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/AttemptedCollective/Airbox/internal/domain"
	"github.com/AttemptedCollective/Airbox/internal/pagination"
	"github.com/AttemptedCollective/Airbox/pkg/e"
	"github.com/AttemptedCollective/Airbox/pkg/validator"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	switch {
	case errors.Is(err, e.ErrNotFound):
		// Absence is an expected outcome, not a server fault.
		l.Warn("not found",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		h.writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, e.ErrInvalidInput), errors.Is(err, e.ErrInvalidCoordinates):
		l.Warn("invalid input",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
	default:
		l.Error("handler error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

// writePagedJSON writes the page items as the body and the pagination
// metadata as a serialized Pagination header, out of band of the item payload.
func (h *Handler) writePagedJSON(w http.ResponseWriter, r *http.Request, page *pagination.PagedList[domain.UserLocation]) {
	header, err := json.Marshal(page.Header())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	w.Header().Set(pagination.HeaderName, string(header))
	h.writeJSON(w, http.StatusOK, page.Items)
}

// decodeJSON decodes one strict JSON object into target and validates it.
// Responds with 400 and returns false on any failure.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(target); err != nil {
		h.log(r).Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}

	// Reject trailing data after the first JSON object.
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return false
	}

	if err := validator.ValidateStruct(target); err != nil {
		h.log(r).Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid input"})
		return false
	}

	return true
}
