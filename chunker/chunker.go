// Package chunker splits document content into fragments small enough
// for a language-model context window.
package chunker

import (
	"strings"

	"github.com/krish-jayaratne/MultiDoc-LLM-Summary-Tool/extract"
)

// Defaults applied by New for zero-value Config fields. A token is
// estimated as four characters of prose.
const (
	DefaultMaxTokens = 3000
	DefaultOverlap   = 120
)

// Config controls the chunking behaviour.
type Config struct {
	MaxTokens int // Maximum estimated tokens per chunk.
	Overlap   int // Token overlap carried between consecutive chunks.
}

// Chunk is one fragment of a larger document.
type Chunk struct {
	Index   int    // Position of the fragment within the document.
	Content string // Fragment text, trimmed.
	Tokens  int    // Estimated token count of Content.
}

// Chunker splits text into model-sized fragments.
type Chunker struct {
	cfg Config
}

// New returns a Chunker with the given configuration.
// Zero-value fields are replaced with sensible defaults.
func New(cfg Config) *Chunker {
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Overlap == 0 {
		cfg.Overlap = DefaultOverlap
	}
	return &Chunker{cfg: cfg}
}

// Split is a convenience wrapper around New(cfg).Split(content).
func Split(content string, cfg Config) []Chunk {
	return New(cfg).Split(content)
}

// EstimateTokens approximates the token count of text. One token is
// roughly four characters of English prose.
func EstimateTokens(text string) int {
	return len(text) / 4
}

// Split breaks content into chunks that each fit within MaxTokens,
// splitting at paragraph and then sentence boundaries. Consecutive
// chunks share up to Overlap tokens of trailing text from the previous
// chunk so that no sentence loses its context entirely.
func (c *Chunker) Split(content string) []Chunk {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}
	fragments := c.splitContent(content)
	chunks := make([]Chunk, 0, len(fragments))
	for i, frag := range fragments {
		chunks = append(chunks, Chunk{Index: i, Content: frag, Tokens: EstimateTokens(frag)})
	}
	return chunks
}

// splitContent breaks a long text into fragments that each fit within
// MaxTokens, splitting at paragraph and then sentence boundaries.
func (c *Chunker) splitContent(text string) []string {
	if EstimateTokens(text) <= c.cfg.MaxTokens {
		return []string{text}
	}

	paragraphs := splitParagraphs(text)
	var fragments []string
	var current strings.Builder
	currentTokens := 0
	overlapText := ""

	for _, para := range paragraphs {
		paraTokens := EstimateTokens(para)

		// A single paragraph beyond MaxTokens is split by sentences.
		if paraTokens > c.cfg.MaxTokens {
			if current.Len() > 0 {
				fragments = append(fragments, strings.TrimSpace(current.String()))
				overlapText = extractOverlap(current.String(), c.cfg.Overlap)
				current.Reset()
				currentTokens = 0
			}
			sentenceFragments := c.splitBySentences(para, overlapText)
			fragments = append(fragments, sentenceFragments...)
			if len(sentenceFragments) > 0 {
				overlapText = extractOverlap(sentenceFragments[len(sentenceFragments)-1], c.cfg.Overlap)
			}
			continue
		}

		if currentTokens+paraTokens > c.cfg.MaxTokens && current.Len() > 0 {
			fragments = append(fragments, strings.TrimSpace(current.String()))
			overlapText = extractOverlap(current.String(), c.cfg.Overlap)
			current.Reset()
			currentTokens = 0

			// The new fragment opens with the overlap text.
			if overlapText != "" {
				current.WriteString(overlapText)
				currentTokens = EstimateTokens(overlapText)
			}
		}

		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(para)
		currentTokens += paraTokens
	}

	if current.Len() > 0 {
		fragments = append(fragments, strings.TrimSpace(current.String()))
	}

	return fragments
}

// splitBySentences breaks a paragraph into fragments at sentence
// boundaries, respecting MaxTokens and prepending overlap from the
// previous fragment.
func (c *Chunker) splitBySentences(text string, initialOverlap string) []string {
	sentences := extract.SplitSentences(text)
	var fragments []string
	var current strings.Builder
	currentTokens := 0

	if initialOverlap != "" {
		current.WriteString(initialOverlap)
		currentTokens = EstimateTokens(initialOverlap)
	}

	for _, sent := range sentences {
		sentTokens := EstimateTokens(sent)

		if currentTokens+sentTokens > c.cfg.MaxTokens && current.Len() > 0 {
			fragments = append(fragments, strings.TrimSpace(current.String()))
			overlap := extractOverlap(current.String(), c.cfg.Overlap)
			current.Reset()
			currentTokens = 0
			if overlap != "" {
				current.WriteString(overlap)
				currentTokens = EstimateTokens(overlap)
			}
		}

		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(sent)
		currentTokens += sentTokens
	}

	if current.Len() > 0 {
		fragments = append(fragments, strings.TrimSpace(current.String()))
	}

	return fragments
}

// splitParagraphs splits text on blank-line boundaries.
func splitParagraphs(text string) []string {
	raw := strings.Split(text, "\n\n")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// extractOverlap returns the trailing words of text whose combined
// estimated token count stays within maxTokens.
func extractOverlap(text string, maxTokens int) string {
	words := strings.Fields(text)
	if len(words) == 0 || maxTokens <= 0 {
		return ""
	}
	budget := maxTokens * 4
	size := 0
	start := len(words)
	for start > 0 {
		w := len(words[start-1])
		if size > 0 {
			w++ // joining space
		}
		if size+w > budget {
			break
		}
		size += w
		start--
	}
	if start == len(words) {
		return ""
	}
	return strings.Join(words[start:], " ")
}
