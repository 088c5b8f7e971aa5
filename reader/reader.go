package reader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/krish-jayaratne/MultiDoc-LLM-Summary-Tool/extract"
	"github.com/krish-jayaratne/MultiDoc-LLM-Summary-Tool/metadata"
)

var (
	// ErrNotFound is returned when the document path does not exist.
	ErrNotFound = errors.New("reader: file not found")

	// ErrUnsupportedFormat is returned when a file extension is not in the
	// reader's declared supported set.
	ErrUnsupportedFormat = errors.New("reader: unsupported file format")

	// ErrRead is returned when content cannot be decoded or parsed.
	ErrRead = errors.New("reader: unreadable content")
)

// Reader turns a document path into raw text and extracted metadata.
// ReadContent stays exposed so callers such as LLM enrichment can reach the
// raw text without re-running extraction.
type Reader interface {
	ReadContent(path string) (string, error)
	ExtractMetadata(path string) (*metadata.Record, error)
	SupportedExtensions() []string
}

// contentTypes maps supported extensions to their MIME types, recorded on
// extracted records.
var contentTypes = map[string]string{
	".txt":  "text/plain",
	".md":   "text/markdown",
	".rst":  "text/x-rst",
	".log":  "text/plain",
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".xlsm": "application/vnd.ms-excel.sheet.macroEnabled.12",
}

// checkFile validates existence before format so a missing document always
// reports ErrNotFound, then verifies the extension against supported.
func checkFile(path string, supported []string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("%w: stat %s: %v", ErrRead, path, err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range supported {
		if ext == strings.ToLower(s) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

// buildRecord creates a record named after the file, runs entity extraction
// over content, and stamps the shared file properties.
func buildRecord(path, content string, descriptionLimit int) *metadata.Record {
	rec := metadata.New(filepath.Base(path), path)
	extract.Populate(rec, content, descriptionLimit)

	if info, err := os.Stat(path); err == nil {
		rec.SetProperty("file_size", strconv.FormatInt(info.Size(), 10))
		rec.SetProperty("modified", info.ModTime().UTC().Format(time.RFC3339))
	}
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(path))]; ok {
		rec.SetProperty("content_type", ct)
	}
	return rec
}
