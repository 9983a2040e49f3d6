package dto

import (
	"github.com/google/uuid"

	"github.com/allisson/cardvault/internal/card/domain"
)

// CreateCardResponse represents the API response for a registered card.
type CreateCardResponse struct {
	CardID  uuid.UUID `json:"card_id"`
	Message string    `json:"message"`
}

// ToCreateCardResponse converts a domain Card to a CreateCardResponse DTO.
func ToCreateCardResponse(card *domain.Card) CreateCardResponse {
	return CreateCardResponse{
		CardID:  card.CardID,
		Message: "Card stored successfully",
	}
}

// LookupCardResponse represents the API response for a card lookup hit.
type LookupCardResponse struct {
	CardID uuid.UUID `json:"card_id"`
	Found  bool      `json:"found"`
}

// ToLookupCardResponse converts a domain Card to a LookupCardResponse DTO.
func ToLookupCardResponse(card *domain.Card) LookupCardResponse {
	return LookupCardResponse{
		CardID: card.CardID,
		Found:  true,
	}
}
