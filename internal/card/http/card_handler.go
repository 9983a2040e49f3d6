// Package http provides HTTP handlers for card storage operations.
// All endpoints require an authenticated user; card numbers never appear in
// responses or logs.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/cardvault/internal/auth/http"
	"github.com/allisson/cardvault/internal/card/http/dto"
	cardUseCase "github.com/allisson/cardvault/internal/card/usecase"
	apperrors "github.com/allisson/cardvault/internal/errors"
	"github.com/allisson/cardvault/internal/httputil"
)

// batchFileField is the multipart form field carrying the batch file.
const batchFileField = "file"

// CardHandler handles card-related HTTP requests.
type CardHandler struct {
	cardUseCase        cardUseCase.CardUseCase
	batchImportUseCase cardUseCase.BatchImportUseCase
	logger             *slog.Logger
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(
	cardUC cardUseCase.CardUseCase,
	batchImportUC cardUseCase.BatchImportUseCase,
	logger *slog.Logger,
) *CardHandler {
	return &CardHandler{
		cardUseCase:        cardUC,
		batchImportUseCase: batchImportUC,
		logger:             logger,
	}
}

// CreateHandler registers a single card for the authenticated user.
// POST /v1/cards
// Returns 201 Created, 409 for duplicates, 422 for invalid numbers.
func (h *CardHandler) CreateHandler(c *gin.Context) {
	userID, ok := authHTTP.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	card, err := h.cardUseCase.CreateCard(c.Request.Context(), userID, req.CardNumber)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCreateCardResponse(card))
}

// LookupHandler checks whether a card number is registered for the
// authenticated user.
// GET /v1/cards/lookup?card_number=...
// Returns 200 with the card ID when found, 404 otherwise.
func (h *CardHandler) LookupHandler(c *gin.Context) {
	userID, ok := authHTTP.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	req := dto.LookupCardRequest{CardNumber: c.Query("card_number")}
	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	card, err := h.cardUseCase.LookupCard(c.Request.Context(), userID, req.CardNumber)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ToLookupCardResponse(card))
}

// BatchImportHandler ingests a fixed-width batch file of card records.
// POST /v1/cards/batch (multipart, field "file")
// Returns 200 with the import summary; structural failures map to 422 and
// an unreadable upload to 400.
func (h *CardHandler) BatchImportHandler(c *gin.Context) {
	userID, ok := authHTTP.GetUserID(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	fileHeader, err := c.FormFile(batchFileField)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.batchImportUseCase.ImportBatch(c.Request.Context(), userID, file)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, result)
}
