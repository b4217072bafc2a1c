package agentev

import (
	"strings"
	"unicode/utf8"
)

// MaxLineLength is the number of characters of a matching line kept in a Match.
const MaxLineLength = 150

// Match is a single line that contains the query.
type Match struct {
	// Source is a file path, or a label such as "HTML (https://example.com)".
	Source string
	// Line is the 1-based line number within the source.
	Line int
	// Text is the stripped line, truncated to MaxLineLength characters.
	Text string
}

// FindMatches returns every line of text that contains query, ignoring case.
// Lines are split on "\n" and numbered from 1. An empty query matches nothing.
func FindMatches(text, query, source string) []*Match {
	if query == "" {
		return nil
	}
	needle := strings.ToLower(query)

	var matches []*Match
	for i, line := range strings.Split(text, "\n") {
		if !strings.Contains(strings.ToLower(line), needle) {
			continue
		}
		matches = append(matches, &Match{
			Source: source,
			Line:   i + 1,
			Text:   TruncateLine(strings.TrimSpace(line)),
		})
	}
	return matches
}

// TruncateLine cuts line to MaxLineLength characters and appends "..." when
// anything was cut.
func TruncateLine(line string) string {
	if utf8.RuneCountInString(line) <= MaxLineLength {
		return line
	}
	return string([]rune(line)[:MaxLineLength]) + "..."
}
