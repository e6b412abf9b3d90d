// Package handlers holds the HTTP handlers for /api/v1.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecetopal/familytree-backend/internal/api/httpx"
	"github.com/ecetopal/familytree-backend/internal/api/validate"
	"github.com/ecetopal/familytree-backend/internal/auth"
	"github.com/ecetopal/familytree-backend/internal/middleware"
)

// pathID parses a numeric chi URL param, failing fast with 400 when it is
// not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := validate.ID(chi.URLParam(r, name))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", name+": "+err.Error(), nil)
		return 0, false
	}
	return id, true
}

func principal(w http.ResponseWriter, r *http.Request) (auth.Principal, bool) {
	p, ok := middleware.Principal(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated", "missing session", nil)
		return auth.Principal{}, false
	}
	return p, true
}
