package search

import (
	"strconv"
	"strings"
)

const (
	promptHeader = "When tagging the recipe, prefer tags from this library's existing vocabulary, listed with how often each is used:"
	promptFooter = "Reuse an existing tag whenever one fits; only introduce a new tag when none of the above apply."
)

// PromptText renders the tag index into the deterministic prompt block the
// extraction service receives. One line per tag, custom tags marked, counts
// pluralized, in the exact order TagFrequencies produced.
func PromptText(frequencies []TagFrequency) string {
	var b strings.Builder
	b.WriteString(promptHeader)
	b.WriteString("\n")

	for _, freq := range frequencies {
		b.WriteString("- ")
		if !freq.BuiltIn {
			b.WriteString("[Custom] ")
		}
		b.WriteString(freq.Name)
		b.WriteString(" (")
		b.WriteString(strconv.Itoa(freq.Count))
		if freq.Count == 1 {
			b.WriteString(" recipe)")
		} else {
			b.WriteString(" recipes)")
		}
		b.WriteString("\n")
	}

	b.WriteString(promptFooter)
	return b.String()
}
