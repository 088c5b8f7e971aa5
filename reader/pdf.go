package reader

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/krish-jayaratne/MultiDoc-LLM-Summary-Tool/metadata"
)

// PDFReader extracts page text through the pdf library. Byte-stream parsing
// lives entirely in that collaborator; this reader concatenates page text in
// order with boundary markers and cleans the result.
type PDFReader struct {
	DescriptionLimit int
}

var _ Reader = (*PDFReader)(nil)

func NewPDFReader() *PDFReader { return &PDFReader{} }

func (r *PDFReader) SupportedExtensions() []string { return []string{".pdf"} }

func (r *PDFReader) ReadContent(path string) (string, error) {
	content, _, err := r.read(path)
	return content, err
}

func (r *PDFReader) ExtractMetadata(path string) (*metadata.Record, error) {
	content, info, err := r.read(path)
	if err != nil {
		return nil, err
	}
	rec := buildRecord(path, content, r.DescriptionLimit)
	rec.SetProperty("page_count", strconv.Itoa(info.pages))
	for key, value := range info.fields {
		rec.SetProperty(key, value)
	}
	return rec, nil
}

type pdfInfo struct {
	pages  int
	fields map[string]string
}

// read opens the document once, returning cleaned page text joined with
// boundary markers plus the information-dictionary properties. Pages that
// fail text extraction are skipped in place, preserving page order.
func (r *PDFReader) read(path string) (string, pdfInfo, error) {
	if err := checkFile(path, r.SupportedExtensions()); err != nil {
		return "", pdfInfo{}, err
	}

	f, doc, err := pdf.Open(path)
	if err != nil {
		return "", pdfInfo{}, fmt.Errorf("%w: opening %s: %v", ErrRead, path, err)
	}
	defer f.Close()

	var b strings.Builder
	wrote := false
	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			slog.Warn("pdf: skipping page", "file", path, "page", i, "error", err)
			continue
		}
		text = cleanExtractedText(text)
		if text == "" {
			continue
		}
		if wrote {
			fmt.Fprintf(&b, "\n\n--- page %d ---\n\n", i)
		}
		b.WriteString(text)
		wrote = true
	}

	info := pdfInfo{pages: doc.NumPage(), fields: documentInfo(doc)}
	return b.String(), info, nil
}

// documentInfo copies the string entries of the PDF information dictionary.
func documentInfo(doc *pdf.Reader) map[string]string {
	info := doc.Trailer().Key("Info")
	if info.IsNull() {
		return nil
	}
	fields := make(map[string]string)
	for _, key := range []string{"Title", "Author", "Subject", "Creator", "Producer"} {
		if v := strings.TrimSpace(info.Key(key).Text()); v != "" {
			fields["pdf_"+strings.ToLower(key)] = v
		}
	}
	return fields
}

var (
	reMultiNewline = regexp.MustCompile(`\n{3,}`)
	reLineSpaces   = regexp.MustCompile(`[ \t]+\n`)

	// Odd spacing characters that PDF extraction tends to leave behind.
	spaceReplacer = strings.NewReplacer(
		" ", " ", // no-break space
		" ", " ", // thin space
		"​", "", // zero-width space
		"\uFEFF", "", // BOM
		"\r\n", "\n",
		"\r", "\n",
	)
)

// cleanExtractedText normalizes the whitespace artifacts of PDF text
// extraction: exotic spaces, CRLF line endings, runs of blank lines.
func cleanExtractedText(text string) string {
	text = spaceReplacer.Replace(text)
	text = reLineSpaces.ReplaceAllString(text, "\n")
	text = reMultiNewline.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
