package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"dustbinbackend/appctx"
	"dustbinbackend/services"
)

// AuthMiddleware gates routes behind a bearer session token. A missing
// token yields 401, an invalid or expired one 403.
type AuthMiddleware struct {
	usersService services.UsersService
}

// NewAuthMiddleware creates a new authentication middleware instance
func NewAuthMiddleware(usersService services.UsersService) *AuthMiddleware {
	return &AuthMiddleware{usersService: usersService}
}

// WithAuth wraps an HTTP handler with session-token authentication. On
// success the verified identity is attached to the request context.
func (m *AuthMiddleware) WithAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Printf("🔐 Authentication middleware processing request from %s", r.RemoteAddr)

		token := extractBearerToken(r.Header.Get("Authorization"))
		if token == "" {
			log.Printf("❌ Missing bearer token")
			m.writeErrorResponse(w, "Access token required", http.StatusUnauthorized)
			return
		}

		claims, err := m.usersService.ValidateSessionToken(token)
		if err != nil {
			log.Printf("❌ Session token verification failed: %v", err)
			m.writeErrorResponse(w, "Invalid or expired token", http.StatusForbidden)
			return
		}

		log.Printf("✅ Session token verified for user ID: %d", claims.UserID)
		ctx := appctx.SetSession(r.Context(), claims)
		r = r.WithContext(ctx)

		next(w, r)
	}
}

func extractBearerToken(authHeader string) string {
	if authHeader == "" {
		return ""
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// writeErrorResponse writes a standardized error response
func (m *AuthMiddleware) writeErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := map[string]string{"error": message}
	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		log.Printf("❌ Failed to encode error response: %v", err)
	}
}
