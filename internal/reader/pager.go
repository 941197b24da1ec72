package reader

import (
	"strings"
)

// DefaultPageSize is the number of paragraphs shown per page.
const DefaultPageSize = 2

// SplitParagraphs cuts chapter text on blank-line separation, trimming each
// paragraph and discarding empty ones.
func SplitParagraphs(text string) []string {
	var paragraphs []string
	for _, part := range strings.Split(text, "\n\n") {
		if p := strings.TrimSpace(part); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// PageCount returns the number of pages needed for a paragraph count. A
// chapter with no paragraphs still occupies one (empty) page so that every
// chapter has a valid page 0.
func PageCount(paragraphs, pageSize int) int {
	if paragraphs <= 0 {
		return 1
	}
	return (paragraphs + pageSize - 1) / pageSize
}

// PageSlice returns the paragraphs visible on a page.
func PageSlice(paragraphs []string, page, pageSize int) []string {
	start := page * pageSize
	if start >= len(paragraphs) {
		return nil
	}
	end := start + pageSize
	if end > len(paragraphs) {
		end = len(paragraphs)
	}
	return paragraphs[start:end]
}
