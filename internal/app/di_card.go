package app

import (
	"fmt"
	"sync"

	cardHTTP "github.com/allisson/cardvault/internal/card/http"
	cardRepository "github.com/allisson/cardvault/internal/card/repository"
	cardService "github.com/allisson/cardvault/internal/card/service"
	cardUsecase "github.com/allisson/cardvault/internal/card/usecase"
)

// cardComponents holds the lazily initialized card feature components.
type cardComponents struct {
	repo          cardUsecase.CardRepository
	encryptor     cardUsecase.CardEncryptor
	useCase       cardUsecase.CardUseCase
	batchUseCase  cardUsecase.BatchImportUseCase
	handler       *cardHTTP.CardHandler
	repoInit      sync.Once
	encryptorInit sync.Once
	useCaseInit   sync.Once
	batchInit     sync.Once
	handlerInit   sync.Once
}

// featureComponents groups the per-feature component sets.
type featureComponents struct {
	user userComponents
	auth authComponents
	card cardComponents
}

// CardRepository returns the card repository instance.
func (c *Container) CardRepository() (cardUsecase.CardRepository, error) {
	c.features.card.repoInit.Do(func() {
		db, err := c.DB()
		if err != nil {
			c.initErrors["cardRepo"] = fmt.Errorf("failed to get database for card repository: %w", err)
			return
		}

		switch c.config.DBDriver {
		case "mysql":
			c.features.card.repo = cardRepository.NewMySQLCardRepository(db)
		case "postgres":
			c.features.card.repo = cardRepository.NewPostgreSQLCardRepository(db)
		default:
			c.initErrors["cardRepo"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
		}
	})
	if storedErr, exists := c.initErrors["cardRepo"]; exists {
		return nil, storedErr
	}
	return c.features.card.repo, nil
}

// CardEncryptor returns the deterministic card number encryptor.
func (c *Container) CardEncryptor() (cardUsecase.CardEncryptor, error) {
	c.features.card.encryptorInit.Do(func() {
		encryptor, err := cardService.NewAESECBEncryptor(c.config.CardEncryptionKey)
		if err != nil {
			c.initErrors["cardEncryptor"] = fmt.Errorf("failed to create card encryptor: %w", err)
			return
		}
		c.features.card.encryptor = encryptor
	})
	if storedErr, exists := c.initErrors["cardEncryptor"]; exists {
		return nil, storedErr
	}
	return c.features.card.encryptor, nil
}

// CardUseCase returns the card use case instance, decorated with metrics.
func (c *Container) CardUseCase() (cardUsecase.CardUseCase, error) {
	c.features.card.useCaseInit.Do(func() {
		repo, err := c.CardRepository()
		if err != nil {
			c.initErrors["cardUseCase"] = fmt.Errorf("failed to get card repository for card use case: %w", err)
			return
		}

		encryptor, err := c.CardEncryptor()
		if err != nil {
			c.initErrors["cardUseCase"] = fmt.Errorf("failed to get card encryptor for card use case: %w", err)
			return
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["cardUseCase"] = fmt.Errorf("failed to get business metrics for card use case: %w", err)
			return
		}

		useCase := cardUsecase.NewCardUseCase(repo, encryptor)
		c.features.card.useCase = cardUsecase.NewCardUseCaseWithMetrics(useCase, businessMetrics)
	})
	if storedErr, exists := c.initErrors["cardUseCase"]; exists {
		return nil, storedErr
	}
	return c.features.card.useCase, nil
}

// BatchImportUseCase returns the batch import use case instance, decorated with metrics.
func (c *Container) BatchImportUseCase() (cardUsecase.BatchImportUseCase, error) {
	c.features.card.batchInit.Do(func() {
		cardUseCase, err := c.CardUseCase()
		if err != nil {
			c.initErrors["batchImportUseCase"] = fmt.Errorf("failed to get card use case for batch import: %w", err)
			return
		}

		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			c.initErrors["batchImportUseCase"] = fmt.Errorf("failed to get business metrics for batch import: %w", err)
			return
		}

		useCase := cardUsecase.NewBatchImportUseCase(cardUseCase)
		c.features.card.batchUseCase = cardUsecase.NewBatchImportUseCaseWithMetrics(useCase, businessMetrics)
	})
	if storedErr, exists := c.initErrors["batchImportUseCase"]; exists {
		return nil, storedErr
	}
	return c.features.card.batchUseCase, nil
}

// CardHandler returns the card HTTP handler instance.
func (c *Container) CardHandler() (*cardHTTP.CardHandler, error) {
	c.features.card.handlerInit.Do(func() {
		cardUseCase, err := c.CardUseCase()
		if err != nil {
			c.initErrors["cardHandler"] = fmt.Errorf("failed to get card use case for card handler: %w", err)
			return
		}

		batchUseCase, err := c.BatchImportUseCase()
		if err != nil {
			c.initErrors["cardHandler"] = fmt.Errorf("failed to get batch import use case for card handler: %w", err)
			return
		}

		c.features.card.handler = cardHTTP.NewCardHandler(cardUseCase, batchUseCase, c.Logger())
	})
	if storedErr, exists := c.initErrors["cardHandler"]; exists {
		return nil, storedErr
	}
	return c.features.card.handler, nil
}
