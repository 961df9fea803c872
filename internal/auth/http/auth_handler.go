// Package http provides HTTP handlers for authentication operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskhub/internal/auth/http/dto"
	authUseCase "taskhub/internal/auth/usecase"
	"taskhub/internal/httputil"
)

// AuthHandler handles HTTP requests for registration, login, and token validation.
type AuthHandler struct {
	authUseCase authUseCase.UseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authUseCase authUseCase.UseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// RegisterHandler creates a new account.
// POST /auth/register - No authentication required.
// Returns 201 Created with the new account's id and email.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	user, err := h.authUseCase.Register(c.Request.Context(), dto.ToRegisterInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRegisterResponse(user))
}

// LoginHandler exchanges credentials for a signed access token.
// POST /auth/login - No authentication required.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	token, err := h.authUseCase.Login(c.Request.Context(), dto.ToLoginInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// ValidateTokenHandler resolves a bearer token to the identity behind it.
// POST /auth/validate-token - The token under validation travels in the
// Authorization header, not the body. Resource services call this endpoint
// on every inbound request.
func (h *AuthHandler) ValidateTokenHandler(c *gin.Context) {
	token, err := httputil.BearerToken(c)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	user, err := h.authUseCase.ValidateToken(c.Request.Context(), token)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToValidateTokenResponse(user))
}
