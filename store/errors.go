package store

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrFolderRequired       = errors.New("store: folder is required")
	ErrRecipeNotFound       = errors.New("store: recipe not found")
	ErrExternalModification = errors.New("store: file modified outside the store")
)

// ConflictError reports an optimistic-concurrency failure on update: the file
// on disk changed after the document was loaded for editing. Callers recover
// by forcing the overwrite or saving under a new name.
type ConflictError struct {
	Path   string
	Loaded time.Time
	OnDisk time.Time
}

func (e *ConflictError) Error() string {
	if e == nil {
		return ErrExternalModification.Error()
	}
	return fmt.Sprintf("%s: %s (loaded %s, on disk %s)",
		ErrExternalModification.Error(), e.Path,
		e.Loaded.Format(time.RFC3339), e.OnDisk.Format(time.RFC3339))
}

func (e *ConflictError) Unwrap() error {
	return ErrExternalModification
}
