package helpers

import (
	"html"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

var (
	markupTagRegex  = regexp.MustCompile(`<[^>]*>`)
	multiSpaceRegex = regexp.MustCompile(`\s+`)
)

// StripMarkup removes inline XML/HTML tags (e.g. <i> in article titles),
// decodes entities and collapses whitespace.
func StripMarkup(s string) string {
	if s == "" {
		return ""
	}
	s = markupTagRegex.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = multiSpaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Truncate shortens s to at most width terminal columns, ending with "..."
// when cut. Wide (CJK) characters count as two columns.
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "...")
}

// PadRight pads s with spaces to width terminal columns.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return runewidth.StringWidth(s)
}
