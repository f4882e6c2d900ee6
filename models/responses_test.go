package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrinkResponse_UnmarshalObject(t *testing.T) {
	body := `{"success":true,"drinks":{"id":3,"title":"latte","recipe":[{"color":"white","name":"milk","parts":2}]}}`

	var r DrinkResponse
	require.NoError(t, json.Unmarshal([]byte(body), &r))

	assert.True(t, r.Success)
	assert.Equal(t, int64(3), r.Drink.ID)
	assert.Equal(t, "latte", r.Drink.Title)
	assert.Equal(t, []Ingredient{{Color: "white", Name: "milk", Parts: 2}}, r.Drink.Recipe)
}

func TestDrinkResponse_UnmarshalSingletonList(t *testing.T) {
	body := `{"success":true,"drinks":[{"id":4,"title":"mocha","recipe":[]}]}`

	var r DrinkResponse
	require.NoError(t, json.Unmarshal([]byte(body), &r))
	assert.Equal(t, int64(4), r.Drink.ID)
}

func TestDrinkResponse_UnmarshalErrors(t *testing.T) {
	var r DrinkResponse
	assert.Error(t, json.Unmarshal([]byte(`{"success":true,"drinks":[]}`), &r))
	assert.Error(t, json.Unmarshal([]byte(`{"success":true,"drinks":"oops"}`), &r))
}

func TestDrinkResponse_UnmarshalNull(t *testing.T) {
	var r DrinkResponse
	require.NoError(t, json.Unmarshal([]byte(`{"success":false,"drinks":null}`), &r))
	assert.False(t, r.Success)
	assert.Zero(t, r.Drink.ID)
}

func TestToken_Can(t *testing.T) {
	tok := Token{Permissions: []string{PermissionGetDrinksDetail, PermissionPostDrinks}}

	assert.True(t, tok.Can(PermissionGetDrinksDetail))
	assert.True(t, tok.Can(PermissionPostDrinks))
	assert.False(t, tok.Can(PermissionDeleteDrinks))
}

func TestToken_String(t *testing.T) {
	tok := Token{SignedString: "a.b.c"}
	assert.Equal(t, "a.b.c", tok.String())
}
