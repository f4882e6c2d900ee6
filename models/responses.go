package models

import (
	"encoding/json"
	"fmt"
)

// DrinksResponse is the envelope returned by GET /drinks, GET /drinks-detail
// and PATCH /drinks/{id}.
type DrinksResponse struct {
	Success bool    `json:"success"`
	Drinks  []Drink `json:"drinks"`
}

// DrinkResponse is the envelope returned by POST /drinks, which carries a
// single drink in the "drinks" field.
type DrinkResponse struct {
	Success bool  `json:"success"`
	Drink   Drink `json:"drinks"`
}

// DeleteResponse is the envelope returned by DELETE /drinks/{id}.
type DeleteResponse struct {
	Success bool  `json:"success"`
	Delete  int64 `json:"delete"`
}

// ErrorResponse is the body the API sends for every handled error.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// UnmarshalJSON accepts both a single drink object and a one-element list in
// the "drinks" field; servers differ in which form POST /drinks returns.
func (r *DrinkResponse) UnmarshalJSON(b []byte) error {
	var raw struct {
		Success bool            `json:"success"`
		Drinks  json.RawMessage `json:"drinks"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	r.Success = raw.Success

	if len(raw.Drinks) == 0 || string(raw.Drinks) == "null" {
		return nil
	}

	if raw.Drinks[0] == '[' {
		var list []Drink
		if err := json.Unmarshal(raw.Drinks, &list); err != nil {
			return err
		}
		if len(list) != 1 {
			return fmt.Errorf("expected exactly one drink, got %d", len(list))
		}
		r.Drink = list[0]
		return nil
	}

	return json.Unmarshal(raw.Drinks, &r.Drink)
}
