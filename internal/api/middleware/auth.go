package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tasktrack/tasktrack/internal/api/shared"
	"github.com/tasktrack/tasktrack/internal/service/auth"
)

// AuthMiddleware provides bearer-token authentication for routes.
type AuthMiddleware struct {
	tokenService auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokenService auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate validates bearer tokens from the Authorization header and
// adds the principal to the request context for authorized requests.
//
// A missing or malformed header is 401: no credential was presented. A
// credential that fails verification (bad signature, malformed payload, or
// expired) is 403; the two failure modes are deliberately not
// distinguishable to the client.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Extract token from Authorization header
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Access denied")
			return
		}

		// Check Bearer prefix
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Access denied")
			return
		}

		token := parts[1]

		// Validate token
		claims, err := m.tokenService.ValidateToken(r.Context(), token)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusForbidden, "Invalid token")
			return
		}

		// Add principal to context
		ctx := context.WithValue(r.Context(), shared.PrincipalContextKey, claims.Username)

		// Continue with the authenticated request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetPrincipal extracts the authenticated principal from the request context.
// Returns the principal and a boolean indicating if it was found.
func GetPrincipal(r *http.Request) (string, bool) {
	principal, ok := r.Context().Value(shared.PrincipalContextKey).(string)
	return principal, ok
}
