// Package recipemd manages a folder of RecipeMD-flavored Markdown recipes:
// parsing, serialization, an incremental cache-aware store, tag and text
// search, portion scaling, and extraction-service imports. The Library type
// wires the pieces together; the sub-packages remain usable on their own.
package recipemd

import (
	"context"

	"github.com/google/uuid"

	"github.com/goliatone/go-recipemd/extract"
	recipescmd "github.com/goliatone/go-recipemd/internal/commands/recipes"
	"github.com/goliatone/go-recipemd/internal/logging"
	"github.com/goliatone/go-recipemd/internal/logging/gologger"
	"github.com/goliatone/go-recipemd/markdown"
	"github.com/goliatone/go-recipemd/pkg/interfaces"
	"github.com/goliatone/go-recipemd/recipe"
	"github.com/goliatone/go-recipemd/search"
	"github.com/goliatone/go-recipemd/store"
	"github.com/goliatone/go-recipemd/watch"
)

// Option customizes Library construction.
type Option func(*Library)

// WithLoggerProvider replaces the default go-logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(l *Library) {
		l.provider = provider
	}
}

// WithExtractor enables extraction-service imports (ImportURL, ImportImage).
func WithExtractor(extractor extract.Extractor) Option {
	return func(l *Library) {
		l.extractor = extractor
	}
}

// WithSecretStore supplies the credential collaborator implementations of
// the extraction service may need. The library only carries it; it never
// reads or writes secrets itself.
func WithSecretStore(secrets interfaces.SecretStore) Option {
	return func(l *Library) {
		l.secrets = secrets
	}
}

// Library is the assembled recipe manager for one folder.
type Library struct {
	cfg       Config
	provider  interfaces.LoggerProvider
	store     *store.Store
	watcher   *watch.Watcher
	importer  *extract.Importer
	renderer  *markdown.Renderer
	extractor extract.Extractor
	secrets   interfaces.SecretStore
}

// New wires a Library from the configuration. The folder must exist; the
// initial scan runs on Load.
func New(cfg Config, opts ...Option) (*Library, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l := &Library{cfg: cfg, renderer: markdown.NewRenderer()}
	for _, opt := range opts {
		opt(l)
	}

	if l.provider == nil {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
		})
		if err != nil {
			return nil, err
		}
		l.provider = provider
	}

	recipes, err := store.New(store.Config{
		Dir:    cfg.Dir,
		Logger: logging.StoreLogger(l.provider),
	})
	if err != nil {
		return nil, err
	}
	l.store = recipes

	if l.extractor != nil {
		importer, err := extract.NewImporter(extract.ImporterConfig{
			Extractor: l.extractor,
			Store:     recipes,
			Logger:    logging.ImportLogger(l.provider),
		})
		if err != nil {
			return nil, err
		}
		l.importer = importer
	}

	if cfg.Watch {
		watcher, err := watch.New(watch.Config{
			Dir:      cfg.Dir,
			Debounce: cfg.WatchDebounce,
			Logger:   logging.WatchLogger(l.provider),
		})
		if err != nil {
			return nil, err
		}
		l.watcher = watcher
	}

	return l, nil
}

// Load runs the initial folder scan.
func (l *Library) Load(ctx context.Context) error {
	return l.store.Load(ctx)
}

// Refresh re-scans the folder, reusing cached parses for unchanged files.
func (l *Library) Refresh(ctx context.Context) error {
	return l.store.Refresh(ctx)
}

// Recipes returns the current collection sorted by title.
func (l *Library) Recipes() []*recipe.File {
	return l.store.Recipes()
}

// ParseErrors returns the per-file failures from the last scan.
func (l *Library) ParseErrors() map[string]error {
	return l.store.Errors()
}

// Search filters the collection by query text and selected tags.
func (l *Library) Search(query string, tags []string) []*recipe.File {
	return search.Filter(l.store.Recipes(), query, tags)
}

// TagFrequencies computes the frequency-sorted tag vocabulary.
func (l *Library) TagFrequencies() []search.TagFrequency {
	return search.TagFrequencies(l.store.Recipes())
}

// TagPrompt renders the extraction-service prompt block for the current
// collection.
func (l *Library) TagPrompt() string {
	return search.PromptText(l.TagFrequencies())
}

// SaveNew persists a document as a new file named after its title.
func (l *Library) SaveNew(ctx context.Context, r *recipe.Recipe) (*recipe.File, error) {
	return l.store.SaveNew(ctx, r)
}

// Update rewrites an existing file, failing on external modification unless
// force is set.
func (l *Library) Update(ctx context.Context, file *recipe.File, force bool) error {
	return l.store.Update(ctx, file, force)
}

// Delete removes a recipe from disk and the collection.
func (l *Library) Delete(ctx context.Context, file *recipe.File) error {
	return l.store.Delete(ctx, file)
}

// BulkAddTags adds tags to the selected recipes.
func (l *Library) BulkAddTags(ctx context.Context, tags []string, ids []uuid.UUID) store.BulkResult {
	return l.store.BulkAddTags(ctx, tags, ids)
}

// BulkRemoveTags removes tags from the selected recipes.
func (l *Library) BulkRemoveTags(ctx context.Context, tags []string, ids []uuid.UUID) store.BulkResult {
	return l.store.BulkRemoveTags(ctx, tags, ids)
}

// ImportURL extracts a recipe from a web page and saves it. Requires
// WithExtractor. The request runs as a validated, logged command so callers
// get the same treatment as handler-dispatched work.
func (l *Library) ImportURL(ctx context.Context, url string) (*recipe.File, error) {
	if l.importer == nil {
		return nil, extract.ErrExtractorRequired
	}

	var file *recipe.File
	handler := recipescmd.NewImportURLHandler(l.importer, l.CommandLogger(), func(f *recipe.File) {
		file = f
	})
	if err := handler.Execute(ctx, recipescmd.ImportURLCommand{URL: url}); err != nil {
		return nil, err
	}
	return file, nil
}

// ImportImage extracts a recipe from a photo payload and saves it. Requires
// WithExtractor.
func (l *Library) ImportImage(ctx context.Context, image []byte, mimeType string) (*recipe.File, error) {
	if l.importer == nil {
		return nil, extract.ErrExtractorRequired
	}
	return l.importer.FromImage(ctx, image, mimeType)
}

// RenderInstructions converts instruction Markdown into preview HTML.
func (l *Library) RenderInstructions(text string) ([]byte, error) {
	return l.renderer.Render([]byte(text))
}

// Subscribe registers for coalesced collection-change notifications. The
// cancel func detaches the subscription.
func (l *Library) Subscribe() (<-chan struct{}, func()) {
	return l.store.Subscribe()
}

// Secrets exposes the configured secret-store collaborator, if any.
func (l *Library) Secrets() interfaces.SecretStore {
	return l.secrets
}

// Store exposes the underlying recipe store for callers that build their own
// command handlers around it.
func (l *Library) Store() *store.Store {
	return l.store
}

// Importer exposes the extraction importer, or nil when no extractor was
// configured.
func (l *Library) Importer() *extract.Importer {
	return l.importer
}

// CommandLogger returns the logger namespace command handlers should use.
func (l *Library) CommandLogger() interfaces.Logger {
	return logging.CommandLogger(l.provider)
}

// Watch consumes folder-change events until the context ends, refreshing
// the store after each settled burst of external edits. It should run on
// its own goroutine and returns immediately when watching is disabled.
func (l *Library) Watch(ctx context.Context) {
	if l.watcher == nil {
		return
	}
	go l.watcher.Run(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.watcher.Events():
			if err := l.store.Refresh(ctx); err != nil {
				logging.WatchLogger(l.provider).Warn("refresh after folder change failed", "error", err)
			}
		}
	}
}

// Close releases the folder watcher when one was started.
func (l *Library) Close() error {
	if l.watcher != nil {
		return l.watcher.Close()
	}
	return nil
}
