package reader

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/krish-jayaratne/MultiDoc-LLM-Summary-Tool/metadata"
)

// SpreadsheetReader reads workbook documents sheet by sheet, rendering rows
// as tab-separated lines so the entity extractors see plain text.
type SpreadsheetReader struct {
	DescriptionLimit int
}

var _ Reader = (*SpreadsheetReader)(nil)

func NewSpreadsheetReader() *SpreadsheetReader { return &SpreadsheetReader{} }

func (r *SpreadsheetReader) SupportedExtensions() []string { return []string{".xlsx", ".xlsm"} }

func (r *SpreadsheetReader) ReadContent(path string) (string, error) {
	content, _, err := r.read(path)
	return content, err
}

func (r *SpreadsheetReader) ExtractMetadata(path string) (*metadata.Record, error) {
	content, sheets, err := r.read(path)
	if err != nil {
		return nil, err
	}
	rec := buildRecord(path, content, r.DescriptionLimit)
	rec.SetProperty("sheet_count", strconv.Itoa(sheets))
	return rec, nil
}

// read opens the workbook once, returning its text and the sheet count.
// Sheets whose rows cannot be loaded are skipped in place.
func (r *SpreadsheetReader) read(path string) (string, int, error) {
	if err := checkFile(path, r.SupportedExtensions()); err != nil {
		return "", 0, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", 0, fmt.Errorf("%w: opening %s: %v", ErrRead, path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	var b strings.Builder
	wrote := false
	for _, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			slog.Warn("spreadsheet: skipping sheet", "file", path, "sheet", sheet, "error", err)
			continue
		}
		if len(rows) == 0 {
			continue
		}
		if wrote {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "--- sheet %s ---\n", sheet)
		for _, row := range rows {
			b.WriteString(strings.Join(row, "\t"))
			b.WriteString("\n")
		}
		wrote = true
	}
	return strings.TrimSpace(b.String()), len(sheets), nil
}
