package search

// Category classifies a built-in vocabulary tag.
type Category string

const (
	CategoryCourse   Category = "course"
	CategoryCuisine  Category = "cuisine"
	CategoryDiet     Category = "diet"
	CategoryMethod   Category = "method"
	CategorySeason   Category = "season"
	CategoryOccasion Category = "occasion"
)

// builtinTag pairs a vocabulary tag with its category. Declaration order is
// cosmetic; frequency sorting re-orders the full list.
type builtinTag struct {
	name     string
	category Category
}

var builtinTags = []builtinTag{
	{"breakfast", CategoryCourse},
	{"lunch", CategoryCourse},
	{"dinner", CategoryCourse},
	{"dessert", CategoryCourse},
	{"snack", CategoryCourse},
	{"appetizer", CategoryCourse},
	{"side dish", CategoryCourse},
	{"soup", CategoryCourse},
	{"salad", CategoryCourse},
	{"drink", CategoryCourse},

	{"italian", CategoryCuisine},
	{"french", CategoryCuisine},
	{"mexican", CategoryCuisine},
	{"chinese", CategoryCuisine},
	{"japanese", CategoryCuisine},
	{"indian", CategoryCuisine},
	{"thai", CategoryCuisine},
	{"mediterranean", CategoryCuisine},
	{"middle eastern", CategoryCuisine},
	{"american", CategoryCuisine},

	{"vegetarian", CategoryDiet},
	{"vegan", CategoryDiet},
	{"gluten-free", CategoryDiet},
	{"dairy-free", CategoryDiet},
	{"low-carb", CategoryDiet},
	{"high-protein", CategoryDiet},

	{"baking", CategoryMethod},
	{"grilling", CategoryMethod},
	{"roasting", CategoryMethod},
	{"slow cooker", CategoryMethod},
	{"one-pot", CategoryMethod},
	{"no-cook", CategoryMethod},

	{"spring", CategorySeason},
	{"summer", CategorySeason},
	{"fall", CategorySeason},
	{"winter", CategorySeason},

	{"holiday", CategoryOccasion},
	{"party", CategoryOccasion},
	{"weeknight", CategoryOccasion},
	{"comfort food", CategoryOccasion},
}

// Vocabulary returns the built-in tag names in declaration order.
func Vocabulary() []string {
	out := make([]string, len(builtinTags))
	for i, tag := range builtinTags {
		out[i] = tag.name
	}
	return out
}

// VocabularySize is the number of built-in tags.
func VocabularySize() int {
	return len(builtinTags)
}
