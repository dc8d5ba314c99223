package recipe

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Ingredient is a single line of a recipe's ingredient list. Amount is nil
// when the source line carried no recognizable quantity. Note holds a
// trailing parenthesized preparation hint, e.g. "finely chopped".
type Ingredient struct {
	Name   string
	Amount *Amount
	Note   string
}

// IngredientGroup is an ordered run of ingredients under an optional H2
// heading. An empty Title marks the implicit, untitled bucket; at most one
// such group may exist per recipe and it must come first.
type IngredientGroup struct {
	Title       string
	Ingredients []Ingredient
}

// Recipe is the in-memory document model for one RecipeMD file. Title is the
// only field the parser requires; everything else defaults to empty.
type Recipe struct {
	Title        string
	Description  string
	Tags         []string
	Yield        []Amount
	Groups       []IngredientGroup
	Instructions string
}

// Ingredients flattens all groups into a single ordered list.
func (r *Recipe) Ingredients() []Ingredient {
	var out []Ingredient
	for _, group := range r.Groups {
		out = append(out, group.Ingredients...)
	}
	return out
}

// HasTag reports whether the recipe carries the tag, compared
// case-insensitively.
func (r *Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// File wraps a parsed Recipe with its on-disk identity. ID stays stable for
// as long as the same in-memory instance is reused (cache hits); a fresh
// parse from disk mints a new one. ModTime is the modification timestamp
// captured when the file was read, used for optimistic conflict detection.
type File struct {
	Recipe  Recipe
	Path    string
	ModTime time.Time
	ID      uuid.UUID
}
