package recipe

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Form carries user-edited recipe input before it becomes a Recipe. Unlike
// the parser, the form enforces the editing invariants: a non-blank title and
// at least one named ingredient across all groups.
type Form struct {
	Title        string
	Description  string
	Tags         []string
	Yield        string
	Groups       []FormGroup
	Instructions string
}

// FormGroup mirrors IngredientGroup with free-text ingredient rows.
type FormGroup struct {
	Title       string
	Ingredients []FormIngredient
}

// FormIngredient is one editable ingredient row. Amount is free text and may
// be empty or non-numeric; only numeric text produces an Amount.
type FormIngredient struct {
	Amount string
	Name   string
	Note   string
}

// Validate enforces the editing-form invariants.
func (f Form) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return ErrTitleRequired
			}
			return nil
		})),
		validation.Field(&f.Groups, validation.By(func(any) error {
			for _, group := range f.Groups {
				for _, ing := range group.Ingredients {
					if strings.TrimSpace(ing.Name) != "" {
						return nil
					}
				}
			}
			return ErrNoIngredients
		})),
	)
}

// Build validates the form and converts it into a Recipe. Tags are de-duped
// case-insensitively keeping the first occurrence's casing; the yield text is
// split on commas into one Amount per token.
func (f Form) Build() (Recipe, error) {
	if err := f.Validate(); err != nil {
		return Recipe{}, err
	}

	out := Recipe{
		Title:        strings.TrimSpace(f.Title),
		Description:  strings.TrimSpace(f.Description),
		Tags:         DedupeTags(f.Tags),
		Yield:        parseYieldText(f.Yield),
		Instructions: strings.TrimSpace(f.Instructions),
	}

	for _, group := range f.Groups {
		built := IngredientGroup{Title: strings.TrimSpace(group.Title)}
		for _, ing := range group.Ingredients {
			name := strings.TrimSpace(ing.Name)
			if name == "" {
				continue
			}
			item := Ingredient{Name: name, Note: strings.TrimSpace(ing.Note)}
			if amount, ok := ParseAmount(ing.Amount); ok {
				item.Amount = &amount
			}
			built.Ingredients = append(built.Ingredients, item)
		}
		if len(built.Ingredients) > 0 || built.Title != "" {
			out.Groups = append(out.Groups, built)
		}
	}

	return out, nil
}

// DedupeTags trims and de-duplicates tags case-insensitively, preserving
// the casing and order of each first occurrence.
func DedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}

func parseYieldText(text string) []Amount {
	var out []Amount
	for _, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if amount, ok := ParseAmount(token); ok {
			out = append(out, amount)
			continue
		}
		out = append(out, Amount{RawText: token})
	}
	return out
}
