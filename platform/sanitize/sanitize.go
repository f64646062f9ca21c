// Package sanitize provides text cleanup for values read from contact exports
// and escaping for values written into XML documents.
package sanitize

import (
	"bytes"
	"encoding/xml"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// whitespaceRegex matches runs of whitespace including line breaks
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// Text normalizes a field value: NFC composition, whitespace runs collapsed to
// a single space, surrounding whitespace trimmed. Exports from different
// address books disagree on both, which breaks exact category matching.
func Text(s string) string {
	result := norm.NFC.String(s)
	result = whitespaceRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// Texts applies Text to every element and returns a new slice.
// Empty results are kept so callers can decide what an empty value means.
func Texts(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = Text(v)
	}
	return out
}

// XML escapes s for use in XML character data and attribute values.
func XML(s string) string {
	var buf bytes.Buffer
	// EscapeText only fails when the writer fails; bytes.Buffer never does.
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
