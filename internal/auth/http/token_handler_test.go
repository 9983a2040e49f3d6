package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/cardvault/internal/auth/http/dto"
	authService "github.com/allisson/cardvault/internal/auth/service"
	userDomain "github.com/allisson/cardvault/internal/user/domain"
	userMocks "github.com/allisson/cardvault/internal/user/http/mocks"
)

func setupTokenHandler(t *testing.T) (*TokenHandler, *userMocks.MockUserUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	tokenService, err := authService.NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)

	mockUserUseCase := &userMocks.MockUserUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewTokenHandler(mockUserUseCase, tokenService, logger), mockUserUseCase
}

func tokenTestContext(body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/token", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func TestTokenHandler_IssueTokenHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, mockUserUseCase := setupTokenHandler(t)

		user := &userDomain.User{ID: uuid.Must(uuid.NewV7()), Email: "alice@example.com"}
		mockUserUseCase.On("VerifyCredentials", mock.Anything, "alice@example.com", "Str0ng-pass").
			Return(user, nil)

		c, w := tokenTestContext(dto.IssueTokenRequest{
			Email:    "alice@example.com",
			Password: "Str0ng-pass",
		})
		handler.IssueTokenHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response.AccessToken)
		assert.Equal(t, "Bearer", response.TokenType)
		assert.Greater(t, response.ExpiresIn, int64(0))
	})

	t.Run("invalid credentials", func(t *testing.T) {
		handler, mockUserUseCase := setupTokenHandler(t)

		mockUserUseCase.On("VerifyCredentials", mock.Anything, "alice@example.com", "wrong").
			Return(nil, userDomain.ErrInvalidCredentials)

		c, w := tokenTestContext(dto.IssueTokenRequest{
			Email:    "alice@example.com",
			Password: "wrong",
		})
		handler.IssueTokenHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		handler, mockUserUseCase := setupTokenHandler(t)

		c, w := tokenTestContext(dto.IssueTokenRequest{Email: "not-an-email"})
		handler.IssueTokenHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUserUseCase.AssertNotCalled(t, "VerifyCredentials", mock.Anything, mock.Anything, mock.Anything)
	})
}
