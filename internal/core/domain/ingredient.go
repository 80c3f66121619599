package domain

import (
	"errors"
	"strings"
)

var ErrIngredientNotFound = errors.New("ingredient not found")
var ErrIngredientInUse = errors.New("ingredient is used by recipes")
var ErrNameRequired = errors.New("ingredient name required")
var ErrDuplicateName = errors.New("ingredient name already exists")

// Ingredient is a canonical ingredient name shared across recipes. Rows are
// referenced by many recipes and never owned by one.
type Ingredient struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NormalizeName trims the name and collapses internal whitespace runs to a
// single space. Applied before any comparison or storage.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
