package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pratik-mahalle/gigmarket/internal/auth"
	apperrors "github.com/pratik-mahalle/gigmarket/internal/pkg/errors"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/utils"
)

type contextKey string

// IdentityKey is the context key holding the authenticated caller
const IdentityKey contextKey = "identity"

// Auth validates the bearer token and stores the caller identity in the
// request context
func Auth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				utils.WriteError(w, apperrors.Unauthorized("missing authentication token"))
				return
			}

			claims, err := auth.ParseClaims(token, jwtSecret)
			if err != nil {
				utils.WriteError(w, apperrors.Unauthorized("invalid or expired token"))
				return
			}

			identity := auth.Identity{
				UserID:  claims.UserID,
				Email:   claims.Email,
				Role:    claims.Role,
				IsStaff: claims.IsStaff,
			}
			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := r.Cookie("access_token"); err == nil {
		return cookie.Value
	}
	return ""
}

// GetIdentity extracts the authenticated caller from the request context
func GetIdentity(ctx context.Context) (auth.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(auth.Identity)
	return identity, ok
}

// RequireRole rejects callers without the given account role. It runs
// after Auth.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentity(r.Context())
			if !ok {
				utils.WriteError(w, apperrors.Unauthorized("authentication required"))
				return
			}
			if !identity.HasRole(role) {
				utils.WriteError(w, apperrors.Forbidden("insufficient permissions"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
