package app

import (
	"fmt"
	"sync"

	userHTTP "github.com/allisson/cardvault/internal/user/http"
	userRepository "github.com/allisson/cardvault/internal/user/repository"
	userUsecase "github.com/allisson/cardvault/internal/user/usecase"
)

// userComponents holds the lazily initialized user feature components.
type userComponents struct {
	repo    userUsecase.UserRepository
	useCase userUsecase.UseCase
	handler *userHTTP.UserHandler

	repoInit    sync.Once
	useCaseInit sync.Once
	handlerInit sync.Once
}

// UserRepository returns the user repository instance.
func (c *Container) UserRepository() (userUsecase.UserRepository, error) {
	c.features.user.repoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["userRepo"] = fmt.Errorf("failed to get database for user repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.features.user.repo = userRepository.NewMySQLUserRepository(db)
		case "postgres":
			c.features.user.repo = userRepository.NewPostgreSQLUserRepository(db)
		default:
			c.initErrors["userRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.features.user.repo, nil
}

// UserUseCase returns the user use case instance.
func (c *Container) UserUseCase() (userUsecase.UseCase, error) {
	c.features.user.useCaseInit.Do(func() {
		repo, err := c.UserRepository()
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to get user repository for user use case: %w", err)
			return
		}

		useCase, err := userUsecase.NewUserUseCase(repo)
		if err != nil {
			c.initErrors["userUseCase"] = fmt.Errorf("failed to create user use case: %w", err)
			return
		}
		c.features.user.useCase = useCase
	})
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.features.user.useCase, nil
}

// UserHandler returns the user HTTP handler instance.
func (c *Container) UserHandler() (*userHTTP.UserHandler, error) {
	c.features.user.handlerInit.Do(func() {
		useCase, err := c.UserUseCase()
		if err != nil {
			c.initErrors["userHandler"] = fmt.Errorf("failed to get user use case for user handler: %w", err)
			return
		}
		c.features.user.handler = userHTTP.NewUserHandler(useCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["userHandler"]; exists {
		return nil, storedErr
	}
	return c.features.user.handler, nil
}
