// Package dto provides data transfer objects for the card HTTP layer.
package dto

import (
	validation "github.com/jellydator/validation"

	appValidation "github.com/allisson/cardvault/internal/validation"
)

// CreateCardRequest represents the API request for registering a card.
type CreateCardRequest struct {
	CardNumber string `json:"card_number"`
}

// Validate validates the CreateCardRequest.
func (r *CreateCardRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.CardNumber,
			validation.Required.Error("card_number is required"),
			appValidation.Digits,
			validation.Length(13, 19).Error("card_number must be between 13 and 19 digits"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// LookupCardRequest represents the query parameters for a card lookup.
type LookupCardRequest struct {
	CardNumber string `form:"card_number"`
}

// Validate validates the LookupCardRequest.
func (r *LookupCardRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.CardNumber,
			validation.Required.Error("card_number is required"),
			appValidation.Digits,
			validation.Length(13, 19).Error("card_number must be between 13 and 19 digits"),
		),
	)
	return appValidation.WrapValidationError(err)
}
