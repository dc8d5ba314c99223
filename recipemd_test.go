package recipemd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-recipemd/extract"
	"github.com/goliatone/go-recipemd/recipe"
	"github.com/goliatone/go-recipemd/search"
)

type stubExtractor struct {
	text  string
	err   error
	calls int
}

func (s *stubExtractor) FromURL(ctx context.Context, url string) (string, error) {
	s.calls++
	return s.text, s.err
}

func (s *stubExtractor) FromImage(ctx context.Context, image []byte, mimeType string) (string, error) {
	return s.text, s.err
}

func newTestLibrary(t *testing.T, opts ...Option) (*Library, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Dir = dir
	cfg.Logging.Level = "error"

	lib, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return lib, dir
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrFolderRequired) {
		t.Fatalf("error = %v, want ErrFolderRequired", err)
	}
}

func TestLibraryLoadAndSearch(t *testing.T) {
	lib, dir := newTestLibrary(t)

	source := "# Apple Pie\n\n*dessert, baking*\n\n---\n\n- *6* apples\n\n---\n\nBake.\n"
	if err := os.WriteFile(filepath.Join(dir, "apple-pie.md"), []byte(source), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := lib.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if files := lib.Recipes(); len(files) != 1 || files[0].Recipe.Title != "Apple Pie" {
		t.Fatalf("recipes = %+v", files)
	}

	if got := lib.Search("apple", nil); len(got) != 1 {
		t.Fatalf("search by title = %+v", got)
	}
	if got := lib.Search("", []string{"dessert"}); len(got) != 1 {
		t.Fatalf("search by tag = %+v", got)
	}
	if got := lib.Search("anchovies", nil); len(got) != 0 {
		t.Fatalf("search miss = %+v", got)
	}
}

func TestLibrarySaveUpdateDelete(t *testing.T) {
	lib, dir := newTestLibrary(t)
	ctx := context.Background()

	if err := lib.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	file, err := lib.SaveNew(ctx, &recipe.Recipe{Title: "Bread"})
	if err != nil {
		t.Fatalf("SaveNew: %v", err)
	}
	if file.Path != filepath.Join(dir, "bread.md") {
		t.Fatalf("path = %q", file.Path)
	}

	file.Recipe.Tags = []string{"baking"}
	if err := lib.Update(ctx, file, false); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if err := lib.Delete(ctx, file); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if files := lib.Recipes(); len(files) != 0 {
		t.Fatalf("recipes = %+v", files)
	}
}

func TestLibraryTagPrompt(t *testing.T) {
	lib, _ := newTestLibrary(t)

	if err := lib.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	prompt := lib.TagPrompt()
	if !strings.Contains(prompt, "- dinner (0 recipes)") {
		t.Fatalf("prompt missing vocabulary entries:\n%s", prompt)
	}
	if len(lib.TagFrequencies()) != search.VocabularySize() {
		t.Fatalf("frequencies = %d, want %d", len(lib.TagFrequencies()), search.VocabularySize())
	}
}

func TestLibraryImportRequiresExtractor(t *testing.T) {
	lib, _ := newTestLibrary(t)

	if _, err := lib.ImportURL(context.Background(), "https://example.com"); !errors.Is(err, extract.ErrExtractorRequired) {
		t.Fatalf("error = %v, want ErrExtractorRequired", err)
	}
	if _, err := lib.ImportImage(context.Background(), nil, "image/png"); !errors.Is(err, extract.ErrExtractorRequired) {
		t.Fatalf("error = %v, want ErrExtractorRequired", err)
	}
}

func TestLibraryImportURL(t *testing.T) {
	extractor := &stubExtractor{text: "# Imported\n\n---\n\n- *1 cup* rice\n\n---\n"}
	lib, _ := newTestLibrary(t, WithExtractor(extractor))

	if err := lib.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	file, err := lib.ImportURL(context.Background(), "https://example.com/rice")
	if err != nil {
		t.Fatalf("ImportURL: %v", err)
	}
	if file.Recipe.Title != "Imported" {
		t.Fatalf("title = %q", file.Recipe.Title)
	}
}

func TestLibraryImportURLValidatesInput(t *testing.T) {
	extractor := &stubExtractor{text: "# Imported\n\n---\n"}
	lib, _ := newTestLibrary(t, WithExtractor(extractor))

	if err := lib.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if _, err := lib.ImportURL(context.Background(), "   "); err == nil {
		t.Fatal("expected validation error for blank URL")
	}
	if extractor.calls != 0 {
		t.Fatalf("extractor invoked %d times for an invalid request", extractor.calls)
	}
}

func TestLibraryExposesCollaborators(t *testing.T) {
	lib, _ := newTestLibrary(t)
	if lib.Store() == nil {
		t.Fatal("Store() returned nil")
	}
	if lib.Importer() != nil {
		t.Fatal("Importer() should be nil without an extractor")
	}

	withImports, _ := newTestLibrary(t, WithExtractor(&stubExtractor{}))
	if withImports.Importer() == nil {
		t.Fatal("Importer() returned nil with an extractor configured")
	}
}

func TestLibraryRenderInstructions(t *testing.T) {
	lib, _ := newTestLibrary(t)

	out, err := lib.RenderInstructions("Knead **well**.")
	if err != nil {
		t.Fatalf("RenderInstructions: %v", err)
	}
	if !strings.Contains(string(out), "<strong>well</strong>") {
		t.Fatalf("rendered = %s", out)
	}
}
