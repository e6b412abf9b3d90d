package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecetopal/familytree-backend/internal/auth"
)

func TestAuthMiddleware(t *testing.T) {
	tm := auth.NewTokenManager("secret", "test", time.Minute, time.Hour)
	mw := NewAuthMiddleware(tm)

	var got auth.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = Principal(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	h := mw.Auth(next)

	access, refresh, _, err := tm.GenerateGuestPair("guest:3", 7, 12)
	if err != nil {
		t.Fatalf("pair: %v", err)
	}

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer nope", http.StatusUnauthorized},
		{"refresh token", "Bearer " + refresh, http.StatusUnauthorized},
		{"access token", "Bearer " + access, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)
			if w.Code != tc.want {
				t.Fatalf("status: got %d want %d", w.Code, tc.want)
			}
		})
	}

	if got.Role != auth.RoleGuest || got.TreeID != 7 || got.MemberID != 12 {
		t.Fatalf("principal: %+v", got)
	}
}

func TestRequireOwner(t *testing.T) {
	tm := auth.NewTokenManager("secret", "test", time.Minute, time.Hour)
	mw := NewAuthMiddleware(tm)
	h := mw.Auth(RequireOwner(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	ownerTok, _, _, err := tm.GeneratePair("u1")
	if err != nil {
		t.Fatalf("pair: %v", err)
	}
	guestTok, _, _, err := tm.GenerateGuestPair("guest:1", 1, 1)
	if err != nil {
		t.Fatalf("pair: %v", err)
	}

	cases := []struct {
		name  string
		token string
		want  int
	}{
		{"owner", ownerTok, http.StatusOK},
		{"guest", guestTok, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Header.Set("Authorization", "Bearer "+tc.token)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)
			if w.Code != tc.want {
				t.Fatalf("status: got %d want %d", w.Code, tc.want)
			}
		})
	}
}
