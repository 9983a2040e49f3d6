package commands

import (
	"context"
	"fmt"
	"log/slog"

	userUsecase "github.com/allisson/cardvault/internal/user/usecase"

	"github.com/allisson/cardvault/internal/app"
	"github.com/allisson/cardvault/internal/config"
)

// RunCreateUser registers a new user account from the command line.
// Useful for bootstrapping the first account without going through the HTTP API.
//
// Requirements: Database must be migrated and reachable.
func RunCreateUser(ctx context.Context, name, email, password string) error {
	cfg := config.Load()

	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	userUseCase, err := container.UserUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize user use case: %w", err)
	}

	user, err := userUseCase.RegisterUser(ctx, userUsecase.RegisterUserInput{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("email", user.Email),
	)

	return nil
}
