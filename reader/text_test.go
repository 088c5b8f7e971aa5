package reader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestTextReaderReadContent(t *testing.T) {
	dir := t.TempDir()
	r := NewTextReader()

	tests := []struct {
		name string
		file string
		data []byte
		want string
	}{
		{
			name: "plain utf-8",
			file: "notes.txt",
			data: []byte("Meeting notes for the launch."),
			want: "Meeting notes for the launch.",
		},
		{
			name: "latin-1 fallback",
			file: "menu.txt",
			data: []byte("caf\xe9 menu"),
			want: "café menu",
		},
		{
			name: "markdown extension",
			file: "readme.md",
			data: []byte("# Title\nBody."),
			want: "# Title\nBody.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.data)
			got, err := r.ReadContent(path)
			if err != nil {
				t.Fatalf("ReadContent() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadContent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextReaderErrors(t *testing.T) {
	dir := t.TempDir()
	r := NewTextReader()

	t.Run("missing path", func(t *testing.T) {
		_, err := r.ReadContent(filepath.Join(dir, "absent.txt"))
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("missing path from ExtractMetadata", func(t *testing.T) {
		_, err := r.ExtractMetadata(filepath.Join(dir, "absent.txt"))
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("error = %v, want ErrNotFound", err)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, dir, "image.png", []byte("not text"))
		_, err := r.ReadContent(path)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("error = %v, want ErrUnsupportedFormat", err)
		}
	})
}

func TestTextReaderCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	r := NewTextReader(".cfg")

	path := writeFile(t, dir, "app.cfg", []byte("key = value"))
	if _, err := r.ReadContent(path); err != nil {
		t.Errorf("ReadContent(.cfg) error: %v", err)
	}

	txt := writeFile(t, dir, "plain.txt", []byte("text"))
	if _, err := r.ReadContent(txt); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("custom reader accepted .txt, error = %v", err)
	}
}

func TestTextReaderExtractMetadata(t *testing.T) {
	dir := t.TempDir()
	content := "Status update from 01/15/2024. Acme Corporation and Dr. Sarah Johnson " +
		"reviewed system_design.pdf before sign-off."
	path := writeFile(t, dir, "status.txt", []byte(content))

	r := NewTextReader()
	rec, err := r.ExtractMetadata(path)
	if err != nil {
		t.Fatalf("ExtractMetadata() error: %v", err)
	}

	if rec.Name != "status.txt" {
		t.Errorf("Name = %q, want status.txt", rec.Name)
	}
	if rec.SourcePath != path {
		t.Errorf("SourcePath = %q, want %q", rec.SourcePath, path)
	}
	if rec.Description == "" {
		t.Error("description empty")
	}
	if len(rec.Organizations) != 1 || rec.Organizations[0] != "Acme Corporation" {
		t.Errorf("Organizations = %v", rec.Organizations)
	}
	if len(rec.People) != 1 || rec.People[0] != "Sarah Johnson" {
		t.Errorf("People = %v", rec.People)
	}
	if len(rec.ReferencedDocuments) != 1 || rec.ReferencedDocuments[0] != "system_design.pdf" {
		t.Errorf("ReferencedDocuments = %v", rec.ReferencedDocuments)
	}
	if len(rec.Dates) != 1 {
		t.Errorf("Dates = %v", rec.Dates)
	}
	if rec.Properties["content_type"] != "text/plain" {
		t.Errorf("content_type = %q", rec.Properties["content_type"])
	}
	if rec.Properties["file_size"] == "" || rec.Properties["modified"] == "" {
		t.Errorf("file properties missing: %v", rec.Properties)
	}
}

func TestTextReaderDescriptionLimit(t *testing.T) {
	dir := t.TempDir()
	long := ""
	for i := 0; i < 40; i++ {
		long += "word "
	}
	path := writeFile(t, dir, "long.txt", []byte(long))

	r := NewTextReader()
	r.DescriptionLimit = 30
	rec, err := r.ExtractMetadata(path)
	if err != nil {
		t.Fatalf("ExtractMetadata() error: %v", err)
	}
	if len(rec.Description) > 30 {
		t.Errorf("description length = %d, want <= 30", len(rec.Description))
	}
}
