package recipe

import "github.com/goliatone/go-slug"

// SlugNormalizer exposes the slug normalizer interface.
type SlugNormalizer = slug.Normalizer

// DefaultSlugNormalizer returns the default slug normalizer.
func DefaultSlugNormalizer() SlugNormalizer {
	return slug.Default()
}

// Slugify derives a filesystem-safe filename stem from a recipe title:
// lowercase, non-alphanumeric runs collapsed to single hyphens, leading and
// trailing hyphens trimmed. Titles that normalize to nothing return
// ErrEmptySlug.
func Slugify(title string) (string, error) {
	normalized, err := slug.Normalize(title)
	if err != nil {
		return "", ErrEmptySlug
	}
	if normalized == "" {
		return "", ErrEmptySlug
	}
	return normalized, nil
}

// IsValidSlug reports whether the slug matches the default rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}
