package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ecetopal/familytree-backend/internal/api/httpx"
	"github.com/ecetopal/familytree-backend/internal/auth"
)

type principalKey struct{}

// Principal returns the identity the auth middleware resolved for this
// request.
func Principal(ctx context.Context) (auth.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(auth.Principal)
	return p, ok
}

type AuthMiddleware struct {
	TM *auth.TokenManager
}

func NewAuthMiddleware(tm *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{TM: tm}
}

// Auth resolves the bearer token into a Principal. Refresh tokens are not
// valid on API routes.
func (m *AuthMiddleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ah := r.Header.Get("Authorization")
		if ah == "" || !strings.HasPrefix(strings.ToLower(ah), "bearer ") {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated", "missing bearer token", nil)
			return
		}
		token := strings.TrimSpace(ah[len("Bearer "):])

		claims, isRefresh, err := m.TM.ParseAny(token)
		if err != nil || isRefresh {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated", "invalid access token", nil)
			return
		}
		p := auth.Principal{
			UserID:   claims.UserID,
			Role:     claims.Role,
			TreeID:   claims.TreeID,
			MemberID: claims.MemberID,
		}
		ctx := context.WithValue(r.Context(), principalKey{}, p)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireOwner rejects guest sessions up front on routes that never apply
// to them (e.g. listing your own trees).
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := Principal(r.Context())
		if !ok {
			httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated", "missing session", nil)
			return
		}
		if !p.IsOwner() {
			httpx.WriteError(w, http.StatusForbidden, "forbidden", "this action is reserved for the tree owner", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
