package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts instruction text into HTML for detail-view previews. It
// renders plain Markdown with the goldmark engine; the RecipeMD recognizer in
// Parse never goes through here, so rendering cannot change what the library
// accepts or writes. The renderer is stateless and safe to share.
type Renderer struct {
	engine goldmark.Markdown
}

// NewRenderer constructs a renderer with GFM, autolinks, and task lists
// enabled and raw HTML suppressed.
func NewRenderer() *Renderer {
	return &Renderer{
		engine: goldmark.New(
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithExtensions(
				extension.GFM,
				extension.Linkify,
				extension.TaskList,
			),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

// Render converts Markdown text into HTML.
func (r *Renderer) Render(markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}
