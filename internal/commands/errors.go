package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-recipemd/extract"
	"github.com/goliatone/go-recipemd/recipe"
	"github.com/goliatone/go-recipemd/store"
)

const (
	commandValidationCode   = "RECIPE_COMMAND_INVALID"
	commandContextCanceled  = "RECIPE_COMMAND_CANCELED"
	commandContextTimeout   = "RECIPE_COMMAND_TIMEOUT"
	commandContextErrorCode = "RECIPE_COMMAND_CONTEXT_ERROR"
	commandExecuteFailed    = "RECIPE_COMMAND_FAILED"
	recipeInvalidCode       = "RECIPE_INVALID"
	recipeNotFoundCode      = "RECIPE_NOT_FOUND"
	recipeConflictCode      = "RECIPE_EXTERNALLY_MODIFIED"
)

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command validation failed").
		WithTextCode(commandValidationCode)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch err {
	case context.Canceled:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution cancelled").
			WithTextCode(commandContextCanceled)
	case context.DeadlineExceeded:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution deadline exceeded").
			WithTextCode(commandContextTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command context error").
			WithTextCode(commandContextErrorCode)
	}
}

// wrapExecuteError classifies handler failures by their store, recipe, and
// extraction sentinels. Extraction sentinels pass through untouched so callers
// can keep matching them with errors.Is, as the importer promises.
func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch {
	case errors.Is(err, extract.ErrNotARecipe),
		errors.Is(err, extract.ErrNetwork),
		errors.Is(err, extract.ErrAuth),
		errors.Is(err, extract.ErrRateLimited),
		errors.Is(err, extract.ErrExtractorRequired):
		return err
	case errors.Is(err, store.ErrRecipeNotFound):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "recipe not found").
			WithTextCode(recipeNotFoundCode)
	case errors.Is(err, store.ErrExternalModification):
		return goerrors.Wrap(err, goerrors.CategoryCommand, "recipe modified outside the library").
			WithTextCode(recipeConflictCode)
	case errors.Is(err, recipe.ErrMissingTitle),
		errors.Is(err, recipe.ErrTitleRequired),
		errors.Is(err, recipe.ErrEmptySlug),
		errors.Is(err, recipe.ErrNoIngredients),
		errors.Is(err, recipe.ErrIngredientName):
		return goerrors.Wrap(err, goerrors.CategoryValidation, "recipe failed validation").
			WithTextCode(recipeInvalidCode)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").
			WithTextCode(commandExecuteFailed)
	}
}
