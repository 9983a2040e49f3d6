package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/allisson/cardvault/internal/auth/http/dto"
	authService "github.com/allisson/cardvault/internal/auth/service"
	"github.com/allisson/cardvault/internal/httputil"
	userUseCase "github.com/allisson/cardvault/internal/user/usecase"
)

// TokenHandler handles access token issuance.
type TokenHandler struct {
	userUseCase  userUseCase.UseCase
	tokenService authService.TokenService
	logger       *slog.Logger
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(
	userUseCase userUseCase.UseCase,
	tokenService authService.TokenService,
	logger *slog.Logger,
) *TokenHandler {
	return &TokenHandler{
		userUseCase:  userUseCase,
		tokenService: tokenService,
		logger:       logger,
	}
}

// IssueTokenHandler exchanges email/password credentials for a bearer token.
// POST /v1/auth/token
// Returns 200 OK with the access token, or 401 for bad credentials.
func (h *TokenHandler) IssueTokenHandler(c *gin.Context) {
	var req dto.IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	user, err := h.userUseCase.VerifyCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	token, expiresAt, err := h.tokenService.IssueToken(user.ID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(time.Until(expiresAt).Seconds()),
	})
}
