// Package store owns the canonical in-memory recipe collection for one
// folder of RecipeMD files. It is the sole mutator of both the collection
// and the files under that folder: reads go through a modification-time
// parse cache, writes are atomic, and external edits are detected
// optimistically by timestamp comparison rather than locking.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/goliatone/go-recipemd/internal/logging"
	"github.com/goliatone/go-recipemd/markdown"
	"github.com/goliatone/go-recipemd/pkg/interfaces"
	"github.com/goliatone/go-recipemd/recipe"
)

// Config controls how the store discovers and persists recipes.
type Config struct {
	// Dir is the watched recipe folder.
	Dir string
	// Logger receives structured store events. Nil disables logging.
	Logger interfaces.Logger
}

// cacheEntry pairs a parsed file with the modification timestamp it was
// parsed at. An entry is reused only while the on-disk timestamp matches.
type cacheEntry struct {
	file    *recipe.File
	modTime time.Time
}

// Store holds the recipe collection for a folder. All operations are
// serialized by one mutex; consumers observe complete collections, never a
// partially updated scan.
type Store struct {
	mu       sync.Mutex
	dir      string
	files    []*recipe.File
	cache    map[string]cacheEntry
	failures map[string]error
	logger   interfaces.Logger
	collator *collate.Collator
	version  uint64
	subs     []chan struct{}
}

// New constructs a store rooted at cfg.Dir. The folder must exist; call
// Load to run the initial scan.
func New(cfg Config) (*Store, error) {
	dir := strings.TrimSpace(cfg.Dir)
	if dir == "" {
		return nil, ErrFolderRequired
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("store: stat folder %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("store: %s is not a folder", dir)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Store{
		dir:      dir,
		cache:    map[string]cacheEntry{},
		failures: map[string]error{},
		logger:   logger,
		collator: collate.New(language.Und, collate.IgnoreCase),
	}, nil
}

// Dir returns the watched folder.
func (s *Store) Dir() string {
	return s.dir
}

// Load scans the folder and replaces the in-memory collection with every
// recipe that parses. Files that fail to parse are excluded but tracked;
// see Errors.
func (s *Store) Load(ctx context.Context) error {
	return s.Refresh(ctx)
}

// Refresh re-scans the folder. A file whose modification timestamp is
// unchanged since its cached parse is not re-read, and its existing
// in-memory instance is reused, keeping object identity stable for
// consumers that diff by pointer or ID.
func (s *Store) Refresh(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("store: read folder %s: %w", s.dir, err)
	}

	var files []*recipe.File
	failures := map[string]error{}
	seen := map[string]struct{}{}

	// os.ReadDir sorts entries lexicographically, which keeps scan order
	// deterministic across runs.
	for _, entry := range entries {
		if entry.IsDir() || !isRecipeFile(entry.Name()) {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		seen[path] = struct{}{}

		info, err := entry.Info()
		if err != nil {
			failures[path] = fmt.Errorf("store: stat %s: %w", path, err)
			delete(s.cache, path)
			continue
		}

		if cached, ok := s.cache[path]; ok && cached.modTime.Equal(info.ModTime()) {
			files = append(files, cached.file)
			continue
		}

		file, err := s.parseFile(path, info.ModTime())
		if err != nil {
			failures[path] = err
			delete(s.cache, path)
			s.logger.Warn("recipe parse failed", "path", path, "error", err)
			continue
		}
		files = append(files, file)
	}

	for path := range s.cache {
		if _, ok := seen[path]; !ok {
			delete(s.cache, path)
		}
	}

	s.sortLocked(files)
	s.files = files
	s.failures = failures
	s.bumpLocked()

	s.logger.Info("folder scan complete", "dir", s.dir, "recipes", len(files), "failures", len(failures))
	return nil
}

func (s *Store) parseFile(path string, modTime time.Time) (*recipe.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}

	parsed, err := markdown.Parse(data)
	if err != nil {
		return nil, err
	}

	file := &recipe.File{
		Recipe:  *parsed,
		Path:    path,
		ModTime: modTime,
		ID:      uuid.New(),
	}
	s.cache[path] = cacheEntry{file: file, modTime: modTime}
	return file, nil
}

// Recipes returns the current collection sorted by title. The returned
// slice is a copy; the files it points at are shared.
func (s *Store) Recipes() []*recipe.File {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*recipe.File, len(s.files))
	copy(out, s.files)
	return out
}

// Get looks a recipe up by its in-memory identity.
func (s *Store) Get(id uuid.UUID) (*recipe.File, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, file := range s.files {
		if file.ID == id {
			return file, true
		}
	}
	return nil, false
}

// Errors returns the per-file failures from the last scan, keyed by path.
// Failed files are excluded from Recipes but never silently dropped.
func (s *Store) Errors() map[string]error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]error, len(s.failures))
	for path, err := range s.failures {
		out[path] = err
	}
	return out
}

// SaveNew serializes the document to a new file named after the slugified
// title, resolving name collisions with numeric suffixes, and inserts it
// into the collection in sorted position.
func (s *Store) SaveNew(ctx context.Context, r *recipe.Recipe) (*recipe.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slug, err := recipe.Slugify(r.Title)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := uniquePath(s.dir, slug)
	if err != nil {
		return nil, err
	}
	if err := writeFileAtomic(path, markdown.Serialize(r)); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("store: stat %s after write: %w", path, err)
	}

	file := &recipe.File{
		Recipe:  *r,
		Path:    path,
		ModTime: info.ModTime(),
		ID:      uuid.New(),
	}
	s.cache[path] = cacheEntry{file: file, modTime: info.ModTime()}
	s.files = append(s.files, file)
	s.sortLocked(s.files)
	s.bumpLocked()

	s.logger.Info("recipe saved", "path", path, "title", r.Title)
	return file, nil
}

// Update re-serializes the document to its existing path. When the file on
// disk was modified after it was loaded, the write fails with a
// ConflictError unless force is set. The check-then-write window against a
// concurrent external writer is an accepted limitation of the
// timestamp-based design.
func (s *Store) Update(ctx context.Context, file *recipe.File, force bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !force {
		if info, err := os.Stat(file.Path); err == nil && !info.ModTime().Equal(file.ModTime) {
			return &ConflictError{Path: file.Path, Loaded: file.ModTime, OnDisk: info.ModTime()}
		}
	}

	if err := writeFileAtomic(file.Path, markdown.Serialize(&file.Recipe)); err != nil {
		return err
	}

	info, err := os.Stat(file.Path)
	if err != nil {
		return fmt.Errorf("store: stat %s after write: %w", file.Path, err)
	}

	file.ModTime = info.ModTime()
	s.cache[file.Path] = cacheEntry{file: file, modTime: info.ModTime()}
	s.sortLocked(s.files)
	s.bumpLocked()

	s.logger.Info("recipe updated", "path", file.Path, "title", file.Recipe.Title, "forced", force)
	return nil
}

// Delete removes the recipe's file and drops it from the collection. A file
// that is already gone from disk counts as deleted; any other removal
// failure leaves both disk and memory untouched.
func (s *Store) Delete(ctx context.Context, file *recipe.File) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(file.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("store: delete %s: %w", file.Path, err)
	}

	for i, existing := range s.files {
		if existing.ID == file.ID {
			s.files = append(s.files[:i], s.files[i+1:]...)
			break
		}
	}
	delete(s.cache, file.Path)
	delete(s.failures, file.Path)
	s.bumpLocked()

	s.logger.Info("recipe deleted", "path", file.Path)
	return nil
}

// BulkResult reports per-recipe outcomes of a bulk tag operation. Failed IDs
// stay addressable so callers can retain the selection for retry.
type BulkResult struct {
	Succeeded int
	Failed    int
	Failures  map[uuid.UUID]error
}

// BulkAddTags unions the given tags into each targeted recipe and rewrites
// its file. De-duplication is case-insensitive, keeping the casing already
// on the recipe. Each recipe's write is independent; one failure does not
// abort the others.
func (s *Store) BulkAddTags(ctx context.Context, tags []string, ids []uuid.UUID) BulkResult {
	return s.bulkRetag(ctx, ids, "bulk add tags", func(existing []string) ([]string, bool) {
		merged := append(append([]string(nil), existing...), tags...)
		deduped := recipe.DedupeTags(merged)
		return deduped, len(deduped) != len(existing)
	})
}

// BulkRemoveTags removes the given tags from each targeted recipe. Removing
// a tag a recipe does not carry is a no-op success for that recipe.
func (s *Store) BulkRemoveTags(ctx context.Context, tags []string, ids []uuid.UUID) BulkResult {
	drop := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		drop[strings.ToLower(strings.TrimSpace(tag))] = struct{}{}
	}

	return s.bulkRetag(ctx, ids, "bulk remove tags", func(existing []string) ([]string, bool) {
		kept := existing[:0:0]
		for _, tag := range existing {
			if _, ok := drop[strings.ToLower(tag)]; !ok {
				kept = append(kept, tag)
			}
		}
		return kept, len(kept) != len(existing)
	})
}

func (s *Store) bulkRetag(ctx context.Context, ids []uuid.UUID, op string, retag func([]string) ([]string, bool)) BulkResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := BulkResult{Failures: map[uuid.UUID]error{}}
	changed := false

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			result.Failed++
			result.Failures[id] = err
			continue
		}

		file := s.findLocked(id)
		if file == nil {
			result.Failed++
			result.Failures[id] = ErrRecipeNotFound
			continue
		}

		next, dirty := retag(file.Recipe.Tags)
		if !dirty {
			result.Succeeded++
			continue
		}

		previous := file.Recipe.Tags
		file.Recipe.Tags = next
		if err := writeFileAtomic(file.Path, markdown.Serialize(&file.Recipe)); err != nil {
			file.Recipe.Tags = previous
			result.Failed++
			result.Failures[id] = err
			s.logger.Warn("bulk tag write failed", "op", op, "path", file.Path, "error", err)
			continue
		}

		if info, err := os.Stat(file.Path); err == nil {
			file.ModTime = info.ModTime()
			s.cache[file.Path] = cacheEntry{file: file, modTime: info.ModTime()}
		}
		result.Succeeded++
		changed = true
	}

	if changed {
		s.bumpLocked()
	}

	s.logger.Info("bulk tag operation complete", "op", op,
		"succeeded", result.Succeeded, "failed", result.Failed)
	return result
}

func (s *Store) findLocked(id uuid.UUID) *recipe.File {
	for _, file := range s.files {
		if file.ID == id {
			return file
		}
	}
	return nil
}

func (s *Store) sortLocked(files []*recipe.File) {
	sort.SliceStable(files, func(i, j int) bool {
		return s.collator.CompareString(files[i].Recipe.Title, files[j].Recipe.Title) < 0
	})
}

// Version increments on every observable collection change.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Subscribe registers for coalesced change notifications. The channel
// receives at most one pending signal; slow consumers never block store
// mutations. The returned cancel func detaches the subscription; calling
// it more than once is harmless.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan struct{}, 1)
	s.subs = append(s.subs, ch)
	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub == ch {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
	return ch, cancel
}

func (s *Store) bumpLocked() {
	s.version++
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
