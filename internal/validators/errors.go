package validators

import "errors"

var (
	ErrEmptyTitle        = errors.New("drink title is required")
	ErrEmptyRecipe       = errors.New("drink recipe is required")
	ErrInvalidIngredient = errors.New("invalid recipe ingredient")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")
	ErrInvalidDrinkID    = errors.New("invalid drink id")
)
