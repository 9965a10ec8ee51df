package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"dustbinbackend/appctx"
	"dustbinbackend/core"
	"dustbinbackend/middleware"
	"dustbinbackend/models/api"
	"dustbinbackend/services"
)

type AuthHTTPHandler struct {
	usersService services.UsersService
}

func NewAuthHTTPHandler(usersService services.UsersService) *AuthHTTPHandler {
	return &AuthHTTPHandler{usersService: usersService}
}

// SetupEndpoints registers the auth routes. Only the current-user route is
// gated by the auth middleware.
func (h *AuthHTTPHandler) SetupEndpoints(router *mux.Router, authMiddleware *middleware.AuthMiddleware) {
	router.HandleFunc("/api/auth/google", h.HandleGoogleSignIn).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/me", authMiddleware.WithAuth(h.HandleCurrentUser)).Methods(http.MethodGet)
}

type GoogleSignInRequest struct {
	IDToken string `json:"idToken"`
}

func (h *AuthHTTPHandler) HandleGoogleSignIn(w http.ResponseWriter, r *http.Request) {
	log.Printf("🔐 Google sign-in request received from %s", r.RemoteAddr)

	var req GoogleSignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
		writeJSONResponse(w, http.StatusBadRequest, map[string]string{
			"error": "ID token is required",
		})
		return
	}

	result, err := h.usersService.SignInWithGoogle(r.Context(), req.IDToken)
	if err != nil {
		if errors.Is(err, core.ErrInvalidTokenPayload) {
			writeJSONResponse(w, http.StatusBadRequest, map[string]string{
				"error": "Invalid token payload",
			})
			return
		}
		log.Printf("❌ Google sign-in failed: %v", err)
		writeJSONResponse(w, http.StatusInternalServerError, map[string]string{
			"error":   "Authentication failed",
			"details": err.Error(),
		})
		return
	}

	writeJSONResponse(w, http.StatusOK, api.SignInModel{
		Success: true,
		Token:   result.Token,
		User:    api.DomainUserToAPIUser(result.User),
	})
}

func (h *AuthHTTPHandler) HandleCurrentUser(w http.ResponseWriter, r *http.Request) {
	log.Printf("👤 Current user request received from %s", r.RemoteAddr)

	claims, ok := appctx.GetSession(r.Context())
	if !ok {
		log.Printf("❌ Session not found in context")
		writeJSONResponse(w, http.StatusUnauthorized, map[string]string{
			"error": "Access token required",
		})
		return
	}

	maybeUser, err := h.usersService.GetUserByID(r.Context(), claims.UserID)
	if err != nil {
		log.Printf("❌ Failed to get user: %v", err)
		writeJSONResponse(w, http.StatusInternalServerError, map[string]string{
			"error":   "Database error",
			"message": "Failed to fetch user",
		})
		return
	}

	user, ok := maybeUser.Get()
	if !ok {
		writeJSONResponse(w, http.StatusNotFound, map[string]string{
			"error": "User not found",
		})
		return
	}

	writeJSONResponse(w, http.StatusOK, api.CurrentUserModel{
		User: api.DomainUserToAPIUser(user),
	})
}
