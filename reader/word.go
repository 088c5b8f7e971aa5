package reader

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/krish-jayaratne/MultiDoc-LLM-Summary-Tool/metadata"
)

// WordReader reads .docx documents by walking word/document.xml inside the
// ZIP container and collecting paragraph text.
type WordReader struct {
	DescriptionLimit int
}

var _ Reader = (*WordReader)(nil)

func NewWordReader() *WordReader { return &WordReader{} }

func (r *WordReader) SupportedExtensions() []string { return []string{".docx"} }

func (r *WordReader) ReadContent(path string) (string, error) {
	if err := checkFile(path, r.SupportedExtensions()); err != nil {
		return "", err
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("%w: opening %s: %v", ErrRead, path, err)
	}
	defer zr.Close()

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("%w: %s: word/document.xml missing", ErrRead, path)
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("%w: opening document.xml in %s: %v", ErrRead, path, err)
	}
	defer rc.Close()

	text, err := wordText(rc)
	if err != nil {
		return "", fmt.Errorf("%w: parsing %s: %v", ErrRead, path, err)
	}
	return text, nil
}

func (r *WordReader) ExtractMetadata(path string) (*metadata.Record, error) {
	content, err := r.ReadContent(path)
	if err != nil {
		return nil, err
	}
	return buildRecord(path, content, r.DescriptionLimit), nil
}

// wordText walks the document XML, joining text runs and ending each
// paragraph with a newline. Tabs and explicit breaks are preserved.
func wordText(rc io.Reader) (string, error) {
	decoder := xml.NewDecoder(rc)
	var b strings.Builder
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				b.WriteByte('\t')
			case "br":
				b.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteByte('\n')
			}
		}
	}
	return strings.TrimSpace(b.String()), nil
}
