// Package search derives views over the store's recipe collection: a
// substring/tag filter and a frequency-sorted tag vocabulary. Everything
// here is recomputed on demand from the current collection; nothing is
// persisted.
package search

import (
	"sort"
	"strings"

	"github.com/goliatone/go-recipemd/recipe"
)

// TagFrequency is one row of the tag index: how many recipes carry the tag,
// whether it belongs to the built-in vocabulary, and its category when it
// does.
type TagFrequency struct {
	Name     string
	Count    int
	BuiltIn  bool
	Category Category
}

// TagFrequencies counts tags across the collection. Every built-in tag is
// present even at count zero; tags outside the vocabulary are appended as
// custom entries. Counting is case-insensitive. The result is sorted by
// descending count, then case-insensitive name, with built-in and custom
// entries interleaved by that order alone.
func TagFrequencies(recipes []*recipe.File) []TagFrequency {
	counts := map[string]int{}
	casing := map[string]string{}
	for _, file := range recipes {
		for _, tag := range file.Recipe.Tags {
			key := strings.ToLower(strings.TrimSpace(tag))
			if key == "" {
				continue
			}
			counts[key]++
			if _, ok := casing[key]; !ok {
				casing[key] = strings.TrimSpace(tag)
			}
		}
	}

	out := make([]TagFrequency, 0, len(builtinTags)+len(counts))
	builtin := map[string]struct{}{}
	for _, tag := range builtinTags {
		key := strings.ToLower(tag.name)
		builtin[key] = struct{}{}
		out = append(out, TagFrequency{
			Name:     tag.name,
			Count:    counts[key],
			BuiltIn:  true,
			Category: tag.category,
		})
	}

	for key, count := range counts {
		if _, ok := builtin[key]; ok {
			continue
		}
		out = append(out, TagFrequency{Name: casing[key], Count: count})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// Filter narrows the collection by selected tags and a search query. Tag
// filtering is AND logic and runs first: a recipe must carry every selected
// tag, case-insensitively. The query then matches as a case-insensitive
// substring against title, description, tags, ingredient names, and
// instructions; any single field qualifies the recipe. Empty query and no
// tags return the full collection.
func Filter(recipes []*recipe.File, query string, tags []string) []*recipe.File {
	query = strings.ToLower(strings.TrimSpace(query))

	selected := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			selected = append(selected, tag)
		}
	}

	if query == "" && len(selected) == 0 {
		return recipes
	}

	out := make([]*recipe.File, 0, len(recipes))
	for _, file := range recipes {
		if !hasAllTags(&file.Recipe, selected) {
			continue
		}
		if query != "" && !matchesQuery(&file.Recipe, query) {
			continue
		}
		out = append(out, file)
	}
	return out
}

func hasAllTags(r *recipe.Recipe, tags []string) bool {
	for _, tag := range tags {
		if !r.HasTag(tag) {
			return false
		}
	}
	return true
}

func matchesQuery(r *recipe.Recipe, query string) bool {
	if contains(r.Title, query) || contains(r.Description, query) || contains(r.Instructions, query) {
		return true
	}
	for _, tag := range r.Tags {
		if contains(tag, query) {
			return true
		}
	}
	for _, group := range r.Groups {
		for _, ing := range group.Ingredients {
			if contains(ing.Name, query) {
				return true
			}
		}
	}
	return false
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}
