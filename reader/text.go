package reader

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/krish-jayaratne/MultiDoc-LLM-Summary-Tool/metadata"
)

// defaultTextExtensions are the plain-text formats accepted out of the box.
var defaultTextExtensions = []string{".txt", ".md", ".rst", ".log"}

// TextReader reads plain-text documents. Files that are not valid UTF-8 are
// decoded as Latin-1 before giving up.
type TextReader struct {
	Extensions       []string
	DescriptionLimit int
}

var _ Reader = (*TextReader)(nil)

// NewTextReader creates a text reader for the given extensions, defaulting
// to .txt, .md, .rst and .log when none are supplied.
func NewTextReader(extensions ...string) *TextReader {
	if len(extensions) == 0 {
		extensions = defaultTextExtensions
	}
	return &TextReader{Extensions: extensions}
}

func (r *TextReader) SupportedExtensions() []string { return r.Extensions }

func (r *TextReader) ReadContent(path string) (string, error) {
	if err := checkFile(path, r.Extensions); err != nil {
		return "", err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", ErrRead, path, err)
	}
	if !utf8.Valid(raw) {
		decoded, derr := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if derr != nil {
			return "", fmt.Errorf("%w: decoding %s: %v", ErrRead, path, derr)
		}
		raw = decoded
	}
	return string(raw), nil
}

func (r *TextReader) ExtractMetadata(path string) (*metadata.Record, error) {
	content, err := r.ReadContent(path)
	if err != nil {
		return nil, err
	}
	return buildRecord(path, content, r.DescriptionLimit), nil
}
