package markdown

import (
	"bytes"
	"strings"

	"github.com/adrg/frontmatter"
)

// frontmatterEnvelope captures the only frontmatter key the recipe format
// cares about. Anything else is ignored.
type frontmatterEnvelope struct {
	Tags []string `yaml:"tags"`
}

// stripFrontmatter removes a leading YAML frontmatter block when one exists
// and returns any tags it declared. Documents without frontmatter pass
// through untouched, and a malformed block degrades to plain text instead of
// failing the parse.
func stripFrontmatter(source []byte) ([]byte, []string) {
	if !hasFrontmatter(source) {
		return source, nil
	}

	var envelope frontmatterEnvelope
	rest, err := frontmatter.Parse(bytes.NewReader(source), &envelope)
	if err != nil {
		return source, nil
	}
	return rest, envelope.Tags
}

// hasFrontmatter requires an opening "---" on the first line, a closing
// delimiter, and at least one "key: value" line in between. A recipe that
// merely opens with a horizontal rule fails the key check and is left alone.
func hasFrontmatter(source []byte) bool {
	lines := strings.Split(string(source), "\n")
	if len(lines) < 3 || strings.TrimSpace(lines[0]) != "---" {
		return false
	}

	sawKey := false
	for _, line := range lines[1:] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "---" {
			return sawKey
		}
		if key, _, found := strings.Cut(trimmed, ":"); found && strings.TrimSpace(key) != "" {
			sawKey = true
		}
	}
	return false
}
