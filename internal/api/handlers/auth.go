package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ecetopal/familytree-backend/internal/api/httpx"
	"github.com/ecetopal/familytree-backend/internal/services"
)

type AuthHandler struct {
	Users  *services.UserService
	Guests *services.GuestService
}

func NewAuthHandler(users *services.UserService, guests *services.GuestService) *AuthHandler {
	return &AuthHandler{Users: users, Guests: guests}
}

type tokenResp struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct{ Username, Email, Password string }
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "bad request body", nil)
		return
	}
	u, err := h.Users.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, u)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct{ Email, Password string }
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "bad request body", nil)
		return
	}
	access, refresh, err := h.Users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tokenResp{AccessToken: access, RefreshToken: refresh})
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "refresh_token required", nil)
		return
	}
	access, refresh, err := h.Users.Refresh(req.RefreshToken)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tokenResp{AccessToken: access, RefreshToken: refresh})
}

// Guest redeems an access code into a guest session.
func (h *AuthHandler) Guest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AccessCode string `json:"access_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AccessCode == "" {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "access_code required", nil)
		return
	}
	access, refresh, g, err := h.Guests.Redeem(r.Context(), req.AccessCode)
	if err != nil {
		httpx.WriteServiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, struct {
		tokenResp
		TreeID    int64     `json:"tree_id"`
		MemberID  int64     `json:"member_id"`
		ExpiresAt time.Time `json:"expires_at"`
	}{
		tokenResp: tokenResp{AccessToken: access, RefreshToken: refresh},
		TreeID:    g.TreeID,
		MemberID:  g.MemberID,
		ExpiresAt: g.ExpiresAt().UTC(),
	})
}
