package extract

import (
	"strings"
	"unicode/utf8"
)

const (
	// DefaultDescriptionLimit caps the generated description length.
	DefaultDescriptionLimit = 200

	// DefaultPreviewLimit caps content previews shown alongside results.
	DefaultPreviewLimit = 500

	// minSentenceLength filters out headings and fragments when picking the
	// leading sentence of a description.
	minSentenceLength = 10
)

// Description builds a short synopsis from the start of content. Content
// within the limit is returned whole (trimmed). Longer content prefers the
// first meaningful sentence when it fits, otherwise it is truncated at a
// sentence or word boundary inside the limit. The result never exceeds
// limit and never cuts mid-word.
func Description(content string, limit int) string {
	if limit <= 0 {
		limit = DefaultDescriptionLimit
	}
	text := strings.TrimSpace(content)
	if len(text) <= limit {
		return text
	}

	for _, s := range SplitSentences(text) {
		if len(s) < minSentenceLength {
			continue
		}
		if len(s) <= limit {
			return s
		}
		break
	}
	return truncateAtBoundary(text, limit)
}

// Preview returns the leading portion of content for display, cut at a word
// boundary with a trailing ellipsis when content exceeds limit.
func Preview(content string, limit int) string {
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}
	text := strings.TrimSpace(content)
	if len(text) <= limit {
		return text
	}
	cut := truncateAtBoundary(text, limit)
	return cut + "..."
}

// truncateAtBoundary cuts text to at most limit bytes, preferring the last
// sentence end inside the window, then the last space, then a hard cut on a
// rune boundary.
func truncateAtBoundary(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	for limit > 0 && !utf8.RuneStart(text[limit]) {
		limit--
	}
	cut := text[:limit]

	if idx := lastSentenceEnd(cut); idx >= minSentenceLength {
		return strings.TrimSpace(cut[:idx])
	}
	if idx := strings.LastIndexAny(cut, " \t\n"); idx > 0 {
		return strings.TrimSpace(cut[:idx])
	}
	return cut
}

// lastSentenceEnd returns the index just past the final sentence terminator
// in text, or -1 when none qualifies. A terminator counts only when followed
// by whitespace or the end of text, so decimals and filenames do not split.
func lastSentenceEnd(text string) int {
	for i := len(text) - 1; i >= 0; i-- {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		if i+1 == len(text) {
			return i + 1
		}
		switch text[i+1] {
		case ' ', '\n', '\t':
			return i + 1
		}
	}
	return -1
}

// SplitSentences splits text at period, question mark, and exclamation
// boundaries followed by whitespace or end of string.
func SplitSentences(text string) []string {
	var sentences []string
	var cur strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		cur.WriteRune(runes[i])
		if runes[i] == '.' || runes[i] == '?' || runes[i] == '!' {
			if i+1 >= len(runes) || runes[i+1] == ' ' || runes[i+1] == '\n' || runes[i+1] == '\t' {
				s := strings.TrimSpace(cur.String())
				if s != "" {
					sentences = append(sentences, s)
				}
				cur.Reset()
			}
		}
	}
	if cur.Len() > 0 {
		s := strings.TrimSpace(cur.String())
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}
