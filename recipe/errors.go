package recipe

import "errors"

var (
	ErrMissingTitle   = errors.New("recipe: document has no title")
	ErrEmptySlug      = errors.New("recipe: title produces an empty slug")
	ErrTitleRequired  = errors.New("recipe: title is required")
	ErrNoIngredients  = errors.New("recipe: at least one ingredient is required")
	ErrIngredientName = errors.New("recipe: ingredient name is required")
)
