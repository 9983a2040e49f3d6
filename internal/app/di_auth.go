package app

import (
	"fmt"
	"sync"

	authHTTP "github.com/allisson/cardvault/internal/auth/http"
	authService "github.com/allisson/cardvault/internal/auth/service"
)

// authComponents holds the lazily initialized auth feature components.
type authComponents struct {
	tokenService authService.TokenService
	tokenHandler *authHTTP.TokenHandler

	tokenServiceInit sync.Once
	tokenHandlerInit sync.Once
}

// TokenService returns the JWT token service instance.
func (c *Container) TokenService() (authService.TokenService, error) {
	c.features.auth.tokenServiceInit.Do(func() {
		service, err := authService.NewJWTService(c.config.JWTSecret, c.config.JWTExpiration)
		if err != nil {
			c.initErrors["tokenService"] = fmt.Errorf("failed to create token service: %w", err)
			return
		}
		c.features.auth.tokenService = service
	})
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.features.auth.tokenService, nil
}

// TokenHandler returns the token HTTP handler instance.
func (c *Container) TokenHandler() (*authHTTP.TokenHandler, error) {
	c.features.auth.tokenHandlerInit.Do(func() {
		userUseCase, err := c.UserUseCase()
		if err != nil {
			c.initErrors["tokenHandler"] = fmt.Errorf("failed to get user use case for token handler: %w", err)
			return
		}

		tokenService, err := c.TokenService()
		if err != nil {
			c.initErrors["tokenHandler"] = fmt.Errorf("failed to get token service for token handler: %w", err)
			return
		}

		c.features.auth.tokenHandler = authHTTP.NewTokenHandler(userUseCase, tokenService, c.Logger())
	})
	if storedErr, exists := c.initErrors["tokenHandler"]; exists {
		return nil, storedErr
	}
	return c.features.auth.tokenHandler, nil
}
