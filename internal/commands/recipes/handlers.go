package recipescmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-recipemd/extract"
	"github.com/goliatone/go-recipemd/internal/commands"
	"github.com/goliatone/go-recipemd/internal/logging"
	"github.com/goliatone/go-recipemd/pkg/interfaces"
	"github.com/goliatone/go-recipemd/recipe"
	"github.com/goliatone/go-recipemd/store"
)

const (
	bulkAddOperation    = "tags.bulk_add"
	bulkRemoveOperation = "tags.bulk_remove"
	importURLOperation  = "import.url"
)

var (
	_ command.Commander[BulkAddTagsCommand]    = (*BulkAddTagsHandler)(nil)
	_ command.Commander[BulkRemoveTagsCommand] = (*BulkRemoveTagsHandler)(nil)
	_ command.Commander[ImportURLCommand]      = (*ImportURLHandler)(nil)
)

// BulkAddTagsHandler applies BulkAddTagsCommand against the recipe store.
type BulkAddTagsHandler struct {
	inner *commands.Handler[BulkAddTagsCommand]
}

// NewBulkAddTagsHandler creates a handler bound to the supplied store. The
// optional onResult callback receives the per-recipe outcome so callers can
// retain failed selections for retry.
func NewBulkAddTagsHandler(recipes *store.Store, logger interfaces.Logger, onResult func(store.BulkResult)) *BulkAddTagsHandler {
	if logger == nil {
		logger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg BulkAddTagsCommand) error {
		result := recipes.BulkAddTags(ctx, msg.Tags, msg.RecipeIDs)
		logging.WithFields(logger, map[string]any{
			"succeeded": result.Succeeded,
			"failed":    result.Failed,
		}).Info("recipemd.command.bulk_add_tags.completed")
		if onResult != nil {
			onResult(result)
		}
		return nil
	}

	return &BulkAddTagsHandler{
		inner: commands.NewHandler(exec,
			commands.WithLogger[BulkAddTagsCommand](logger),
			commands.WithOperation[BulkAddTagsCommand](bulkAddOperation),
		),
	}
}

// Execute implements command.Commander.
func (h *BulkAddTagsHandler) Execute(ctx context.Context, msg BulkAddTagsCommand) error {
	return h.inner.Execute(ctx, msg)
}

// BulkRemoveTagsHandler applies BulkRemoveTagsCommand against the recipe store.
type BulkRemoveTagsHandler struct {
	inner *commands.Handler[BulkRemoveTagsCommand]
}

// NewBulkRemoveTagsHandler creates a handler bound to the supplied store.
func NewBulkRemoveTagsHandler(recipes *store.Store, logger interfaces.Logger, onResult func(store.BulkResult)) *BulkRemoveTagsHandler {
	if logger == nil {
		logger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg BulkRemoveTagsCommand) error {
		result := recipes.BulkRemoveTags(ctx, msg.Tags, msg.RecipeIDs)
		logging.WithFields(logger, map[string]any{
			"succeeded": result.Succeeded,
			"failed":    result.Failed,
		}).Info("recipemd.command.bulk_remove_tags.completed")
		if onResult != nil {
			onResult(result)
		}
		return nil
	}

	return &BulkRemoveTagsHandler{
		inner: commands.NewHandler(exec,
			commands.WithLogger[BulkRemoveTagsCommand](logger),
			commands.WithOperation[BulkRemoveTagsCommand](bulkRemoveOperation),
		),
	}
}

// Execute implements command.Commander.
func (h *BulkRemoveTagsHandler) Execute(ctx context.Context, msg BulkRemoveTagsCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ImportURLHandler runs ImportURLCommand through the extraction importer.
type ImportURLHandler struct {
	inner *commands.Handler[ImportURLCommand]
}

// NewImportURLHandler creates a handler bound to the supplied importer. The
// optional onImported callback receives the saved document.
func NewImportURLHandler(importer *extract.Importer, logger interfaces.Logger, onImported func(*recipe.File)) *ImportURLHandler {
	if logger == nil {
		logger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ImportURLCommand) error {
		file, err := importer.FromURL(ctx, msg.URL)
		if err != nil {
			return err
		}
		logging.WithFields(logger, map[string]any{
			"path":  file.Path,
			"title": file.Recipe.Title,
		}).Info("recipemd.command.import_url.completed")
		if onImported != nil {
			onImported(file)
		}
		return nil
	}

	return &ImportURLHandler{
		inner: commands.NewHandler(exec,
			commands.WithLogger[ImportURLCommand](logger),
			commands.WithOperation[ImportURLCommand](importURLOperation),
		),
	}
}

// Execute implements command.Commander.
func (h *ImportURLHandler) Execute(ctx context.Context, msg ImportURLCommand) error {
	return h.inner.Execute(ctx, msg)
}
