package search

import (
	"testing"

	"github.com/goliatone/go-recipemd/recipe"
)

func file(title string, tags []string, ingredients ...string) *recipe.File {
	r := recipe.Recipe{Title: title, Tags: tags}
	if len(ingredients) > 0 {
		group := recipe.IngredientGroup{}
		for _, name := range ingredients {
			group.Ingredients = append(group.Ingredients, recipe.Ingredient{Name: name})
		}
		r.Groups = []recipe.IngredientGroup{group}
	}
	return &recipe.File{Recipe: r}
}

func frequencyFor(t *testing.T, freqs []TagFrequency, name string) TagFrequency {
	t.Helper()
	for _, f := range freqs {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("tag %q not in frequencies", name)
	return TagFrequency{}
}

func TestTagFrequenciesEmptyCollection(t *testing.T) {
	freqs := TagFrequencies(nil)

	if len(freqs) != VocabularySize() {
		t.Fatalf("frequencies = %d, want %d", len(freqs), VocabularySize())
	}
	for _, f := range freqs {
		if f.Count != 0 {
			t.Fatalf("tag %q count = %d, want 0", f.Name, f.Count)
		}
		if !f.BuiltIn {
			t.Fatalf("tag %q should be built-in", f.Name)
		}
		if f.Category == "" {
			t.Fatalf("tag %q has no category", f.Name)
		}
	}
}

func TestTagFrequenciesCounting(t *testing.T) {
	recipes := []*recipe.File{
		file("Pie", []string{"dessert", "Baking"}),
		file("Cake", []string{"DESSERT", "grandmas"}),
		file("Bread", []string{"baking"}),
	}

	freqs := TagFrequencies(recipes)
	if len(freqs) != VocabularySize()+1 {
		t.Fatalf("frequencies = %d, want %d", len(freqs), VocabularySize()+1)
	}

	if f := frequencyFor(t, freqs, "dessert"); f.Count != 2 || !f.BuiltIn {
		t.Fatalf("dessert = %+v", f)
	}
	if f := frequencyFor(t, freqs, "baking"); f.Count != 2 || f.Category != CategoryMethod {
		t.Fatalf("baking = %+v", f)
	}

	// Custom tags keep the casing of their first occurrence.
	if f := frequencyFor(t, freqs, "grandmas"); f.Count != 1 || f.BuiltIn {
		t.Fatalf("grandmas = %+v", f)
	}

	// Counted tags sort before the zero-count vocabulary.
	if freqs[0].Count != 2 || freqs[1].Count != 2 || freqs[2].Count != 1 {
		t.Fatalf("sort order = %+v", freqs[:3])
	}
	// Ties break on case-insensitive name.
	if freqs[0].Name != "baking" || freqs[1].Name != "dessert" {
		t.Fatalf("tie break = %q, %q", freqs[0].Name, freqs[1].Name)
	}
	if freqs[2].Name != "grandmas" {
		t.Fatalf("custom tag position = %q", freqs[2].Name)
	}
}

func TestFilterEmptyReturnsAll(t *testing.T) {
	recipes := []*recipe.File{file("Pie", nil), file("Cake", nil)}

	got := Filter(recipes, "", nil)
	if len(got) != 2 {
		t.Fatalf("filtered = %d, want 2", len(got))
	}
	got = Filter(recipes, "   ", []string{" "})
	if len(got) != 2 {
		t.Fatalf("blank filter = %d, want 2", len(got))
	}
}

func TestFilterTagsAreConjunctive(t *testing.T) {
	recipes := []*recipe.File{
		file("Pie", []string{"dessert", "baking"}),
		file("Cake", []string{"dessert"}),
		file("Bread", []string{"baking"}),
	}

	got := Filter(recipes, "", []string{"Dessert", "BAKING"})
	if len(got) != 1 || got[0].Recipe.Title != "Pie" {
		t.Fatalf("filtered = %+v", got)
	}
}

func TestFilterQueryFields(t *testing.T) {
	pie := file("Apple Pie", []string{"dessert"}, "apples", "cinnamon")
	pie.Recipe.Description = "Best served warm."
	pie.Recipe.Instructions = "Bake until golden."
	stew := file("Stew", []string{"winter"}, "beef")

	recipes := []*recipe.File{pie, stew}

	cases := []struct {
		query string
		want  int
	}{
		{"apple", 1},     // title
		{"WARM", 1},      // description, case-insensitive
		{"cinnamon", 1},  // ingredient name
		{"golden", 1},    // instructions
		{"dessert", 1},   // tag
		{"anchovies", 0}, // no match
	}
	for _, tc := range cases {
		got := Filter(recipes, tc.query, nil)
		if len(got) != tc.want {
			t.Fatalf("Filter(%q) = %d results, want %d", tc.query, len(got), tc.want)
		}
	}
}

func TestFilterCombinesTagsAndQuery(t *testing.T) {
	recipes := []*recipe.File{
		file("Apple Pie", []string{"dessert"}),
		file("Apple Salad", []string{"salad"}),
	}

	got := Filter(recipes, "apple", []string{"dessert"})
	if len(got) != 1 || got[0].Recipe.Title != "Apple Pie" {
		t.Fatalf("filtered = %+v", got)
	}
}
