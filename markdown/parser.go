package markdown

import (
	"strings"

	"github.com/goliatone/go-recipemd/recipe"
)

// Parse converts RecipeMD-flavored Markdown into a Recipe. The recognizer is
// a deliberate line-oriented single pass over the source, not a CommonMark
// AST: RecipeMD's conventions (H1 title, italic tag line, bold yield line,
// HR-delimited sections, H2 ingredient groups) are positional, and a full
// Markdown parser would accept and reject different inputs than the format
// this library reads and writes.
//
// Only a missing title is fatal. Every other section is optional and
// malformed markers degrade to plain text rather than failing the document.
func Parse(source []byte) (*recipe.Recipe, error) {
	body, frontTags := stripFrontmatter(source)

	lines := splitLines(body)

	titleIdx, title := findTitle(lines)
	if titleIdx < 0 {
		return nil, recipe.ErrMissingTitle
	}

	out := &recipe.Recipe{Title: title}

	// The head window runs from the title to the first horizontal rule and
	// holds description, tags, and yields in any order.
	headEnd := len(lines)
	for i := titleIdx + 1; i < len(lines); i++ {
		if isRule(lines[i]) {
			headEnd = i
			break
		}
	}

	out.Description = scanDescription(lines[titleIdx+1 : headEnd])

	// Body tags accumulate in encounter order, duplicates included, so a
	// parsed document serializes back to what it said. De-duplication only
	// happens when frontmatter tags are merged in front of them.
	tags := scanTags(lines[titleIdx+1 : headEnd])
	if len(frontTags) > 0 {
		tags = recipe.DedupeTags(append(frontTags, tags...))
	}
	out.Tags = tags

	out.Yield = scanYields(lines[titleIdx+1 : headEnd])

	if headEnd == len(lines) {
		return out, nil
	}

	groups, rest := scanIngredients(lines[headEnd+1:])
	out.Groups = groups
	out.Instructions = strings.TrimSpace(strings.Join(rest, "\n"))

	return out, nil
}

func splitLines(source []byte) []string {
	lines := strings.Split(string(source), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// findTitle locates the first H1 line. Leading non-heading text is tolerated
// but never promoted to a title.
func findTitle(lines []string) (int, string) {
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if rest, ok := strings.CutPrefix(trimmed, "# "); ok {
			if title := strings.TrimSpace(rest); title != "" {
				return i, title
			}
		}
	}
	return -1, ""
}

// isRule reports whether the line is a horizontal rule: three or more
// hyphens or asterisks, optionally padded with whitespace.
func isRule(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 3 {
		return false
	}
	marker := trimmed[0]
	if marker != '-' && marker != '*' {
		return false
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] != marker {
			return false
		}
	}
	return true
}

// isTagLine matches a line wrapped in single asterisks: *italian, dinner*.
// Double asterisks belong to yield lines and are excluded.
func isTagLine(line string) bool {
	s := strings.TrimSpace(line)
	if len(s) <= 2 || isRule(s) {
		return false
	}
	return s[0] == '*' && s[len(s)-1] == '*' && s[1] != '*' && s[len(s)-2] != '*'
}

// isYieldLine matches a line wrapped in double asterisks: **4 servings**.
func isYieldLine(line string) bool {
	s := strings.TrimSpace(line)
	if len(s) <= 4 || isRule(s) {
		return false
	}
	return strings.HasPrefix(s, "**") && strings.HasSuffix(s, "**")
}

func isHeading(line string) bool {
	s := strings.TrimSpace(line)
	hashes := 0
	for hashes < len(s) && s[hashes] == '#' {
		hashes++
	}
	if hashes == 0 || hashes > 6 || hashes == len(s) {
		return false
	}
	return s[hashes] == ' ' && strings.TrimSpace(s[hashes:]) != ""
}

func isSpecial(line string) bool {
	return isRule(line) || isTagLine(line) || isYieldLine(line) || isHeading(line)
}

// scanDescription joins the first contiguous run of plain lines in the head
// window. A special line before any plain text means there is no description.
func scanDescription(window []string) string {
	var run []string
	for _, line := range window {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(run) > 0 {
				break
			}
			continue
		}
		if isSpecial(line) {
			break
		}
		run = append(run, trimmed)
	}
	return strings.Join(run, " ")
}

func scanTags(window []string) []string {
	var tags []string
	for _, line := range window {
		if !isTagLine(line) {
			continue
		}
		inner := strings.TrimSpace(line)
		inner = strings.TrimPrefix(inner, "*")
		inner = strings.TrimSuffix(inner, "*")
		for _, token := range strings.Split(inner, ",") {
			if token = strings.TrimSpace(token); token != "" {
				tags = append(tags, token)
			}
		}
	}
	return tags
}

var yieldPrefixes = []string{"yields:", "yield:", "serves:", "servings:"}

func scanYields(window []string) []recipe.Amount {
	var yields []recipe.Amount
	for _, line := range window {
		if !isYieldLine(line) {
			continue
		}
		inner := strings.TrimSpace(line)
		inner = strings.TrimPrefix(inner, "**")
		inner = strings.TrimSuffix(inner, "**")
		inner = strings.TrimSpace(inner)
		for _, prefix := range yieldPrefixes {
			if len(inner) >= len(prefix) && strings.EqualFold(inner[:len(prefix)], prefix) {
				inner = strings.TrimSpace(inner[len(prefix):])
				break
			}
		}
		if inner == "" {
			continue
		}
		for _, token := range strings.Split(inner, ",") {
			token = strings.TrimSpace(token)
			if token == "" {
				continue
			}
			if amount, ok := recipe.ParseAmount(token); ok {
				yields = append(yields, amount)
			} else {
				yields = append(yields, recipe.Amount{RawText: token})
			}
		}
	}
	return yields
}

// scanIngredients consumes the ingredient section starting right after the
// first rule. It returns the parsed groups and the remaining lines that form
// the instructions: everything after a second rule, or, when no second rule
// exists, everything after the last line the ingredient section recognizes.
func scanIngredients(lines []string) ([]recipe.IngredientGroup, []string) {
	var groups []recipe.IngredientGroup
	current := -1

	appendIngredient := func(ing recipe.Ingredient) {
		if current < 0 {
			groups = append(groups, recipe.IngredientGroup{})
			current = 0
		}
		groups[current].Ingredients = append(groups[current].Ingredients, ing)
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case isRule(line):
			return groups, lines[i+1:]
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, "## "):
			title := strings.TrimSpace(strings.TrimPrefix(trimmed, "## "))
			groups = append(groups, recipe.IngredientGroup{Title: title})
			current = len(groups) - 1
		case strings.HasPrefix(trimmed, "-"):
			if ing, ok := parseIngredientLine(trimmed); ok {
				appendIngredient(ing)
			}
		default:
			// Not part of the ingredient grammar: with only one rule in the
			// document this is where the instructions begin.
			return groups, lines[i:]
		}
	}

	return groups, nil
}

// parseIngredientLine reads "- *2 cups* flour (sifted)" style lines. The
// leading italic segment is parsed as an amount when its first token is
// numeric; otherwise its text folds back into the ingredient name, which is
// how lines like "- *pinch* salt" keep "pinch salt" as the name.
func parseIngredientLine(line string) (recipe.Ingredient, bool) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "-"))

	var amount *recipe.Amount
	if strings.HasPrefix(rest, "*") && !strings.HasPrefix(rest, "**") {
		if end := strings.Index(rest[1:], "*"); end >= 0 {
			inner := rest[1 : end+1]
			remainder := strings.TrimSpace(rest[end+2:])
			if parsed, ok := recipe.ParseAmount(inner); ok {
				amount = &parsed
				rest = remainder
			} else {
				rest = strings.TrimSpace(strings.TrimSpace(inner) + " " + remainder)
			}
		}
	}

	name := rest
	note := ""
	if strings.HasSuffix(name, ")") {
		if open := strings.LastIndex(name, "("); open >= 0 {
			note = strings.TrimSpace(name[open+1 : len(name)-1])
			name = strings.TrimSpace(name[:open])
		}
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return recipe.Ingredient{}, false
	}

	return recipe.Ingredient{Name: name, Amount: amount, Note: note}, true
}
