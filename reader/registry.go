package reader

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Registry selects a Reader by file extension. The built-in variants are
// pre-registered; additional formats join through Register rather than
// subclassing anything.
type Registry struct {
	readers map[string]Reader
}

// RegistryOption adjusts the built-in readers before registration.
type RegistryOption func(*registryConfig)

type registryConfig struct {
	textExtensions   []string
	descriptionLimit int
}

// WithTextExtensions overrides the extensions accepted by the built-in text
// reader.
func WithTextExtensions(extensions ...string) RegistryOption {
	return func(c *registryConfig) {
		if len(extensions) > 0 {
			c.textExtensions = extensions
		}
	}
}

// WithDescriptionLimit sets the description budget used by every built-in
// reader.
func WithDescriptionLimit(limit int) RegistryOption {
	return func(c *registryConfig) { c.descriptionLimit = limit }
}

// NewRegistry creates a registry with the Text, PDF, Spreadsheet and Word
// readers registered.
func NewRegistry(opts ...RegistryOption) *Registry {
	var cfg registryConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	text := NewTextReader(cfg.textExtensions...)
	pdf := NewPDFReader()
	sheet := NewSpreadsheetReader()
	word := NewWordReader()
	if cfg.descriptionLimit > 0 {
		text.DescriptionLimit = cfg.descriptionLimit
		pdf.DescriptionLimit = cfg.descriptionLimit
		sheet.DescriptionLimit = cfg.descriptionLimit
		word.DescriptionLimit = cfg.descriptionLimit
	}

	reg := &Registry{readers: make(map[string]Reader)}
	reg.Register(text)
	reg.Register(pdf)
	reg.Register(sheet)
	reg.Register(word)
	return reg
}

// Register maps every extension the reader supports to it, replacing any
// previous registration for those extensions.
func (g *Registry) Register(r Reader) {
	for _, ext := range r.SupportedExtensions() {
		g.readers[normalizeExt(ext)] = r
	}
}

// ForPath returns the reader registered for the path's extension.
func (g *Registry) ForPath(path string) (Reader, error) {
	return g.ForExtension(filepath.Ext(path))
}

// ForExtension returns the reader registered for ext.
func (g *Registry) ForExtension(ext string) (Reader, error) {
	r, ok := g.readers[normalizeExt(ext)]
	if !ok {
		return nil, fmt.Errorf("%w: no reader registered for %q", ErrUnsupportedFormat, ext)
	}
	return r, nil
}

// Extensions lists every registered extension, sorted.
func (g *Registry) Extensions() []string {
	exts := make([]string, 0, len(g.readers))
	for ext := range g.readers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
