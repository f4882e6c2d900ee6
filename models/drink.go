package models

// Ingredient is a single component of a drink recipe.
//
// The public /drinks listing returns the short form (Color and Parts only);
// /drinks-detail and all mutating endpoints return the long form that also
// includes Name.
type Ingredient struct {
	// Color is the CSS color used to render the ingredient layer.
	Color string `json:"color"`
	// Name is the ingredient name (e.g. "milk"). Empty in the short form.
	Name string `json:"name,omitempty"`
	// Parts is the relative amount of the ingredient in the drink.
	Parts int `json:"parts"`
}

// Drink is a menu entry served by the Coffee Shop API.
type Drink struct {
	// ID is the server-assigned identifier; zero for drinks not yet created.
	ID int64 `json:"id,omitempty"`
	// Title is the display name of the drink.
	Title string `json:"title"`
	// Recipe lists the ingredients the drink is made of.
	Recipe []Ingredient `json:"recipe"`
}

// DrinkPatch carries a partial update for PATCH /drinks/{id}.
// Nil or empty fields are left unchanged by the server.
type DrinkPatch struct {
	Title  string       `json:"title,omitempty"`
	Recipe []Ingredient `json:"recipe,omitempty"`
}
