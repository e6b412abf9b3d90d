package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ecetopal/familytree-backend/internal/services"
)

type APIError struct {
	Error   string      `json:"error"`
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, code, msg string, details interface{}) {
	WriteJSON(w, status, APIError{
		Error:   msg,
		Code:    code,
		Details: details,
	})
}

// WriteServiceError maps a service error onto the HTTP taxonomy. Unknown
// errors become an opaque 500; the detail only goes to the server log.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch services.KindOf(err) {
	case services.KindValidation:
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error(), nil)
	case services.KindUnauthorized:
		WriteError(w, http.StatusUnauthorized, "unauthenticated", err.Error(), nil)
	case services.KindForbidden:
		WriteError(w, http.StatusForbidden, "forbidden", err.Error(), nil)
	case services.KindNotFound:
		WriteError(w, http.StatusNotFound, "not_found", err.Error(), nil)
	case services.KindConflict:
		WriteError(w, http.StatusConflict, "conflict", err.Error(), nil)
	default:
		slog.Error("unhandled error", "err", err)
		WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}
