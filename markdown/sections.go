package markdown

import "strings"

// Section is one instruction block delimited by a Markdown heading. The
// heading level is not preserved: H2 and H3 both just open a section. Title
// is empty for the implicit leading section.
type Section struct {
	Title string
	Text  string
}

// ParseSections splits a freeform instructions string into ordered sections
// around heading lines. The first section is always present and untitled,
// even when the text opens with a heading. Sections exist only for the
// editing form; the on-disk format keeps instructions as one opaque string.
func ParseSections(instructions string) []Section {
	sections := []Section{{}}
	current := 0
	var body []string

	flush := func() {
		sections[current].Text = strings.TrimSpace(strings.Join(body, "\n"))
		body = body[:0]
	}

	for _, line := range strings.Split(instructions, "\n") {
		if title, ok := headingText(line); ok {
			flush()
			sections = append(sections, Section{Title: title})
			current++
			continue
		}
		body = append(body, line)
	}
	flush()

	return sections
}

// JoinSections is the inverse of ParseSections: the untitled body first,
// then each named section as an H2 heading followed by its text.
func JoinSections(sections []Section) string {
	var parts []string
	for i, section := range sections {
		text := strings.TrimSpace(section.Text)
		if i == 0 && section.Title == "" {
			if text != "" {
				parts = append(parts, text)
			}
			continue
		}
		parts = append(parts, "## "+strings.TrimSpace(section.Title))
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n")
}

func headingText(line string) (string, bool) {
	s := strings.TrimSpace(line)
	hashes := 0
	for hashes < len(s) && s[hashes] == '#' {
		hashes++
	}
	if hashes == 0 || hashes > 6 || hashes == len(s) || s[hashes] != ' ' {
		return "", false
	}
	title := strings.TrimSpace(s[hashes:])
	if title == "" {
		return "", false
	}
	return title, true
}
