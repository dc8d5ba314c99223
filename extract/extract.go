// Package extract defines the contract with the external extraction service
// that turns web pages and photos into RecipeMD text, and the glue that
// feeds its output through the ordinary parse-and-save path. The service
// itself (transport, credentials, retries) lives outside this library.
package extract

import (
	"context"
	"errors"
)

var (
	// ErrNotARecipe means the service could not find a recipe in the input.
	// It is surfaced verbatim and never retried here.
	ErrNotARecipe = errors.New("extract: source does not contain a recipe")
	// ErrNetwork covers transport failures reaching the service.
	ErrNetwork = errors.New("extract: network failure")
	// ErrAuth means the service rejected the caller's credentials.
	ErrAuth = errors.New("extract: authentication failed")
	// ErrRateLimited means the service throttled the caller.
	ErrRateLimited = errors.New("extract: rate limited")
)

// Extractor is the extraction-service collaborator. Implementations return
// RecipeMD-flavored Markdown, which goes through the same parser as any
// hand-written file; there is no special-cased parse path for extracted
// text.
type Extractor interface {
	FromURL(ctx context.Context, url string) (string, error)
	FromImage(ctx context.Context, image []byte, mimeType string) (string, error)
}
