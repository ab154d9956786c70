package api

import (
	"log/slog"
	"net/http"

	"github.com/tasktrack/tasktrack/internal/api/shared"
	"github.com/tasktrack/tasktrack/internal/platform/logger"
	"github.com/tasktrack/tasktrack/internal/service/auth"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	tokenService auth.TokenService
	logger       *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(tokenService auth.TokenService, log *slog.Logger) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}

	return &AuthHandler{
		tokenService: tokenService,
		logger:       log.With(slog.String("component", "auth_handler")),
	}
}

// Login handles the /login endpoint. Any non-empty username is accepted as
// a principal; there is no user registry and no password.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req LoginRequest

	// Parse request
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Username is required")
		return
	}

	// Generate token
	token, err := h.tokenService.GenerateToken(r.Context(), req.Username)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	log.Debug("issued token", "username", req.Username)

	// Return success response
	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		Token: token,
	})
}
