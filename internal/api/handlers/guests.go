package handlers

import (
	"net/http"
	"time"

	"github.com/ecetopal/familytree-backend/internal/api/httpx"
	"github.com/ecetopal/familytree-backend/internal/services"
)

type GuestHandler struct {
	Guests *services.GuestService
}

func NewGuestHandler(guests *services.GuestService) *GuestHandler {
	return &GuestHandler{Guests: guests}
}

// IssueCode mints (or re-serves) the guest access code for a member.
func (h *GuestHandler) IssueCode(w http.ResponseWriter, r *http.Request) {
	p, ok := principal(w, r)
	if !ok {
		return
	}
	treeID, ok := pathID(w, r, "treeID")
	if !ok {
		return
	}
	memberID, ok := pathID(w, r, "memberID")
	if !ok {
		return
	}
	g, err := h.Guests.IssueCode(r.Context(), p, treeID, memberID)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, struct {
		Code      string    `json:"code"`
		ExpiresAt time.Time `json:"expires_at"`
	}{
		Code:      g.Code,
		ExpiresAt: g.ExpiresAt().UTC(),
	})
}
