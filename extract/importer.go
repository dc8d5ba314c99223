package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-recipemd/internal/logging"
	"github.com/goliatone/go-recipemd/markdown"
	"github.com/goliatone/go-recipemd/pkg/interfaces"
	"github.com/goliatone/go-recipemd/recipe"
	"github.com/goliatone/go-recipemd/store"
)

var (
	ErrExtractorRequired = errors.New("extract: extractor is required")
	ErrStoreRequired     = errors.New("extract: store is required")
)

// ImporterConfig encapsulates the dependencies an Importer needs.
type ImporterConfig struct {
	Extractor Extractor
	Store     *store.Store
	Logger    interfaces.Logger
}

// Importer runs extraction output through the RecipeMD parser and saves the
// result as a new file in the store. Failures from the extractor pass
// through unchanged so callers can distinguish "not a recipe" from
// transport or credential problems.
type Importer struct {
	extractor Extractor
	store     *store.Store
	logger    interfaces.Logger
}

// NewImporter builds an Importer from the supplied configuration.
func NewImporter(cfg ImporterConfig) (*Importer, error) {
	if cfg.Extractor == nil {
		return nil, ErrExtractorRequired
	}
	if cfg.Store == nil {
		return nil, ErrStoreRequired
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Importer{extractor: cfg.Extractor, store: cfg.Store, logger: logger}, nil
}

// FromURL extracts a recipe from a web page and saves it.
func (i *Importer) FromURL(ctx context.Context, url string) (*recipe.File, error) {
	text, err := i.extractor.FromURL(ctx, url)
	if err != nil {
		return nil, err
	}
	file, err := i.save(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("extract: import from %s: %w", url, err)
	}
	i.logger.Info("recipe imported", "source", url, "title", file.Recipe.Title)
	return file, nil
}

// FromImage extracts a recipe from a photo payload and saves it.
func (i *Importer) FromImage(ctx context.Context, image []byte, mimeType string) (*recipe.File, error) {
	text, err := i.extractor.FromImage(ctx, image, mimeType)
	if err != nil {
		return nil, err
	}
	file, err := i.save(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("extract: import from image: %w", err)
	}
	i.logger.Info("recipe imported", "source", "image", "title", file.Recipe.Title)
	return file, nil
}

func (i *Importer) save(ctx context.Context, text string) (*recipe.File, error) {
	parsed, err := markdown.Parse([]byte(text))
	if err != nil {
		return nil, err
	}
	return i.store.SaveNew(ctx, parsed)
}
