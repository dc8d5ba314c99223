package markdown

import (
	"strings"

	"github.com/goliatone/go-recipemd/recipe"
)

// Serialize renders a Recipe back into RecipeMD text. Emission is
// deterministic: the same document always produces identical bytes, so
// unchanged recipes never show up as file diffs. Parsing the output yields
// the input document back (modulo amount raw-text normalization).
func Serialize(r *recipe.Recipe) []byte {
	var b strings.Builder

	b.WriteString("# ")
	b.WriteString(strings.TrimSpace(r.Title))
	b.WriteString("\n")

	if desc := strings.TrimSpace(r.Description); desc != "" {
		b.WriteString("\n")
		b.WriteString(desc)
		b.WriteString("\n")
	}

	if len(r.Tags) > 0 {
		b.WriteString("\n*")
		b.WriteString(strings.Join(r.Tags, ", "))
		b.WriteString("*\n")
	}

	if yield := formatYield(r.Yield); yield != "" {
		b.WriteString("\n**")
		b.WriteString(yield)
		b.WriteString("**\n")
	}

	b.WriteString("\n---\n")

	for _, group := range r.Groups {
		if title := strings.TrimSpace(group.Title); title != "" {
			b.WriteString("\n## ")
			b.WriteString(title)
			b.WriteString("\n")
		}
		if len(group.Ingredients) > 0 {
			b.WriteString("\n")
		}
		for _, ing := range group.Ingredients {
			b.WriteString(formatIngredient(ing))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n---\n")

	if instructions := strings.TrimSpace(r.Instructions); instructions != "" {
		b.WriteString("\n")
		b.WriteString(instructions)
		b.WriteString("\n")
	}

	return []byte(b.String())
}

// FormatYield renders the yield list the way the bold yield line carries it:
// raw amount texts joined with commas.
func FormatYield(yield []recipe.Amount) string {
	return formatYield(yield)
}

func formatYield(yield []recipe.Amount) string {
	parts := make([]string, 0, len(yield))
	for _, amount := range yield {
		if text := amount.Format(recipe.FormatOriginal); text != "" && text != "0" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, ", ")
}

func formatIngredient(ing recipe.Ingredient) string {
	var b strings.Builder
	b.WriteString("- ")
	if ing.Amount != nil {
		b.WriteString("*")
		b.WriteString(ing.Amount.Format(recipe.FormatOriginal))
		b.WriteString("* ")
	}
	b.WriteString(strings.TrimSpace(ing.Name))
	if note := strings.TrimSpace(ing.Note); note != "" {
		b.WriteString(" (")
		b.WriteString(note)
		b.WriteString(")")
	}
	return b.String()
}
