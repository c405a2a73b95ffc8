package affiliation

import (
	"regexp"
	"strings"
)

var (
	// A non-whitespace run containing "@" plus at most one trailing space.
	emailPattern = regexp.MustCompile(`\S*@\S*\s?`)

	lineBreakPattern = regexp.MustCompile(`[\r\n\t]+`)
)

// Normalize strips email addresses and line breaks from a raw affiliation
// string and trims surrounding whitespace.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := emailPattern.ReplaceAllString(raw, "")
	s = lineBreakPattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Segments splits a normalized affiliation on commas. Each segment is
// trimmed of whitespace and of ".", "," and ";" at either end.
func Segments(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.Trim(p, " \t.,;")
	}
	return parts
}

// LastSegment returns the last non-empty segment of s, where the country
// usually sits in citation-style affiliations.
func LastSegment(s string) string {
	parts := Segments(s)
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}
