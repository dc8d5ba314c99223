// Package watch notices external edits to the recipe folder. The store's
// optimistic timestamp checks already defend individual writes; the watcher
// exists so a collection on screen refreshes when another process (a sync
// client, an editor) touches the folder.
package watch

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/goliatone/go-recipemd/internal/logging"
	"github.com/goliatone/go-recipemd/pkg/interfaces"
)

// DefaultDebounce is how long the watcher waits for the folder to settle
// before firing. Sync clients tend to touch many files in bursts.
const DefaultDebounce = 500 * time.Millisecond

// Config controls folder watching.
type Config struct {
	// Dir is the recipe folder to watch.
	Dir string
	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration
	// Logger receives watcher events. Nil disables logging.
	Logger interfaces.Logger
}

// Watcher emits a coalesced signal whenever recipe files in the folder
// change. Only visible .md files are considered; everything else in the
// folder is noise.
type Watcher struct {
	dir      string
	debounce time.Duration
	logger   interfaces.Logger
	fsw      *fsnotify.Watcher
	events   chan struct{}

	mu    sync.Mutex
	timer *time.Timer
}

// New creates a watcher for cfg.Dir. Call Run to start delivering events
// and Close to release the underlying OS watch.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(cfg.Dir); err != nil {
		fsw.Close()
		return nil, err
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &Watcher{
		dir:      cfg.Dir,
		debounce: debounce,
		logger:   logger,
		fsw:      fsw,
		events:   make(chan struct{}, 1),
	}, nil
}

// Events delivers at most one pending change signal; receivers that lag
// simply coalesce further changes into the same signal.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Run consumes filesystem events until the context ends. It is meant to be
// launched on its own goroutine.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("folder change", "path", event.Name, "op", event.Op.String())
			w.schedule()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "dir", w.dir, "error", err)
		}
	}
}

// Close stops the OS watch and any pending debounce timer.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()
	return w.fsw.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}
	return strings.EqualFold(filepath.Ext(name), ".md")
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.events <- struct{}{}:
		default:
		}
	})
}
