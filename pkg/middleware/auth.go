package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rizaldyc/simm-backend/internal/auth"
	"github.com/rizaldyc/simm-backend/pkg/response"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// UserKey is the context key for the authenticated user
const UserKey ContextKey = "auth_user"

// TokenParser validates a bearer token and returns the user it identifies
type TokenParser interface {
	ParseToken(token string) (auth.User, error)
}

// RequireAuth validates the Authorization header and puts the user in the
// request context.
func RequireAuth(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, "Authorization header required")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				response.Unauthorized(w, "Invalid authorization header format")
				return
			}

			user, err := parser.ParseToken(parts[1])
			if err != nil {
				response.Unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects requests whose context user is not the admin role.
// Must run after RequireAuth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		if !ok {
			response.Unauthorized(w, "Authentication required")
			return
		}
		if !user.IsAdmin() {
			response.Forbidden(w, "Admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUser extracts the authenticated user from the request context
func GetUser(ctx context.Context) (auth.User, bool) {
	user, ok := ctx.Value(UserKey).(auth.User)
	return user, ok
}
