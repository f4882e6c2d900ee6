// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks drink payloads on the client before they are sent
// to the API, using the rules the server applies so that obviously malformed
// requests never leave the process. Parts are additionally required to be
// positive.
package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/coffee-shop-client/models"
)

// ValidateDrink checks a drink for POST /drinks.
//
// The title must be non-empty and the recipe must be a list. A nil recipe
// encodes as null and is rejected; an empty one is accepted. Every ingredient
// needs a color, a name and positive parts.
func ValidateDrink(drink models.Drink) error {
	var errs []error

	if strings.TrimSpace(drink.Title) == "" {
		errs = append(errs, ErrEmptyTitle)
	}
	if drink.Recipe == nil {
		errs = append(errs, ErrEmptyRecipe)
	}
	errs = append(errs, validateRecipe(drink.Recipe))

	return errors.Join(errs...)
}

// ValidateDrinkPatch checks a partial update for PATCH /drinks/{id}.
//
// The server applies ingredient fields one at a time, so a recipe entry may
// carry any subset of color, name and parts. Only the fields present are
// checked.
func ValidateDrinkPatch(id int64, patch models.DrinkPatch) error {
	if err := ValidateDrinkID(id); err != nil {
		return err
	}
	if strings.TrimSpace(patch.Title) == "" && len(patch.Recipe) == 0 {
		return ErrNoFieldsToUpdate
	}

	return validatePatchRecipe(patch.Recipe)
}

// ValidateDrinkID checks an identifier used in a path parameter.
func ValidateDrinkID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDrinkID, id)
	}
	return nil
}

func validateRecipe(recipe []models.Ingredient) error {
	var errs []error
	for i, ingredient := range recipe {
		switch {
		case strings.TrimSpace(ingredient.Color) == "":
			errs = append(errs, fmt.Errorf("%w #%d: color is required", ErrInvalidIngredient, i))
		case strings.TrimSpace(ingredient.Name) == "":
			errs = append(errs, fmt.Errorf("%w #%d: name is required", ErrInvalidIngredient, i))
		case ingredient.Parts <= 0:
			errs = append(errs, fmt.Errorf("%w #%d: parts must be positive", ErrInvalidIngredient, i))
		}
	}

	return errors.Join(errs...)
}

// validatePatchRecipe treats empty strings and zero parts as absent.
func validatePatchRecipe(recipe []models.Ingredient) error {
	var errs []error
	for i, ingredient := range recipe {
		if ingredient.Parts < 0 {
			errs = append(errs, fmt.Errorf("%w #%d: parts must be positive", ErrInvalidIngredient, i))
		}
	}

	return errors.Join(errs...)
}
