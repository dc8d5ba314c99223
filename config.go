package recipemd

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrFolderRequired       = errors.New("recipemd: recipe folder is required")
	ErrLoggingLevelInvalid  = errors.New("recipemd: logging level is invalid")
	ErrLoggingFormatInvalid = errors.New("recipemd: logging format is invalid")
)

// LoggingConfig selects the go-logger output applied when no custom
// LoggerProvider is injected.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error, fatal. Empty uses the
	// logger's default.
	Level string
	// Format is one of json, console, pretty. Empty means json.
	Format string
	// AddSource annotates entries with file and line.
	AddSource bool
}

// Config configures a Library.
type Config struct {
	// Dir is the folder of RecipeMD files the library manages.
	Dir string
	// Logging configures the default logger provider.
	Logging LoggingConfig
	// Watch enables the fsnotify folder watcher so external edits trigger a
	// refresh.
	Watch bool
	// WatchDebounce overrides the watcher's quiet period when positive.
	WatchDebounce time.Duration
}

// DefaultConfig returns a configuration with console logging at info level
// and watching disabled.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

var (
	validLevels  = []string{"", "trace", "debug", "info", "warn", "warning", "error", "fatal"}
	validFormats = []string{"", "json", "console", "pretty"}
)

// Validate checks the configuration before New wires anything.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Dir) == "" {
		return ErrFolderRequired
	}
	if !containsFold(validLevels, c.Logging.Level) {
		return ErrLoggingLevelInvalid
	}
	if !containsFold(validFormats, c.Logging.Format) {
		return ErrLoggingFormatInvalid
	}
	return nil
}

func containsFold(haystack []string, needle string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	for _, candidate := range haystack {
		if candidate == needle {
			return true
		}
	}
	return false
}
