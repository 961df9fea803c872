// Package http provides HTTP handlers for profile operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "taskhub/internal/errors"
	"taskhub/internal/httputil"
	"taskhub/internal/identity"
	"taskhub/internal/profile/http/dto"
	profileUseCase "taskhub/internal/profile/usecase"
)

// ProfileHandler handles HTTP requests for the caller's profile.
type ProfileHandler struct {
	profileUseCase profileUseCase.UseCase
	logger         *slog.Logger
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileUseCase profileUseCase.UseCase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		logger:         logger,
	}
}

// MeHandler returns the caller's profile, provisioning one on first access.
// GET /users/me - Requires authentication via identity.AuthRequired.
func (h *ProfileHandler) MeHandler(c *gin.Context) {
	ident, ok := identity.FromContext(c.Request.Context())
	if !ok {
		// AuthRequired did not run; treat as unauthenticated.
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	profile, err := h.profileUseCase.GetOrCreate(c.Request.Context(), ident)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile, ident))
}
