package recipescmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	bulkAddTagsMessageType    = "recipemd.tags.bulk_add"
	bulkRemoveTagsMessageType = "recipemd.tags.bulk_remove"
	importURLMessageType      = "recipemd.import.url"
)

// BulkAddTagsCommand unions Tags into every recipe in RecipeIDs. Each
// recipe's write is independent; partial failure is reported through the
// handler's result callback, not as an aborting error.
type BulkAddTagsCommand struct {
	// Tags to add; de-duplicated case-insensitively against existing tags.
	Tags []string `json:"tags"`
	// RecipeIDs selects the target recipes by in-memory identity.
	RecipeIDs []uuid.UUID `json:"recipe_ids"`
}

// Type implements command.Message.
func (BulkAddTagsCommand) Type() string { return bulkAddTagsMessageType }

// Validate ensures tags and targets are present before handlers execute.
func (cmd BulkAddTagsCommand) Validate() error {
	return validateTagSelection(&cmd, &cmd.Tags, &cmd.RecipeIDs)
}

// BulkRemoveTagsCommand removes Tags from every recipe in RecipeIDs.
// Removing a tag a recipe does not carry is a no-op success.
type BulkRemoveTagsCommand struct {
	// Tags to remove, matched case-insensitively.
	Tags []string `json:"tags"`
	// RecipeIDs selects the target recipes by in-memory identity.
	RecipeIDs []uuid.UUID `json:"recipe_ids"`
}

// Type implements command.Message.
func (BulkRemoveTagsCommand) Type() string { return bulkRemoveTagsMessageType }

// Validate ensures tags and targets are present before handlers execute.
func (cmd BulkRemoveTagsCommand) Validate() error {
	return validateTagSelection(&cmd, &cmd.Tags, &cmd.RecipeIDs)
}

// ImportURLCommand extracts a recipe from a web page and saves it as a new
// file in the store.
type ImportURLCommand struct {
	// URL of the page to extract a recipe from.
	URL string `json:"url"`
}

// Type implements command.Message.
func (ImportURLCommand) Type() string { return importURLMessageType }

// Validate ensures a URL is present before handlers execute.
func (cmd ImportURLCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.URL, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("recipemd.import.url.url_required", "url is required")
			}
			return nil
		})),
	)
}

func validateTagSelection(cmd any, tags *[]string, ids *[]uuid.UUID) error {
	return validation.ValidateStruct(cmd,
		validation.Field(tags, validation.Required, validation.By(func(any) error {
			for _, tag := range *tags {
				if strings.TrimSpace(tag) != "" {
					return nil
				}
			}
			return validation.NewError("recipemd.tags.tags_required", "at least one non-blank tag is required")
		})),
		validation.Field(ids, validation.Required, validation.Length(1, 0)),
	)
}
