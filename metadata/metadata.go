package metadata

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// DateLayout is the canonical rendering of an extracted date.
const DateLayout = "2006-01-02"

// Record holds the structured facts extracted from a single document.
// Entity collections behave as sets: every Add method normalizes before a
// membership check, so re-adding a value (in any casing) is a no-op and the
// first-seen casing is kept. SourcePath and ExtractedAt are set once at
// construction and never change.
type Record struct {
	Name                string            `json:"name"`
	Description         string            `json:"description,omitempty"`
	Dates               []time.Time       `json:"dates,omitempty"`
	Organizations       []string          `json:"organizations,omitempty"`
	People              []string          `json:"people_mentioned,omitempty"`
	ReferencedDocuments []string          `json:"referenced_documents,omitempty"`
	SourcePath          string            `json:"source_path"`
	ExtractedAt         time.Time         `json:"extraction_timestamp"`
	Properties          map[string]string `json:"properties,omitempty"`
}

// New creates a record for one source document and stamps the extraction
// timestamp.
func New(name, sourcePath string) *Record {
	return &Record{
		Name:        name,
		SourcePath:  sourcePath,
		ExtractedAt: time.Now(),
	}
}

// AddDate inserts a date, normalized to midnight UTC. Duplicate calendar
// days and zero times are ignored, so differently formatted mentions of the
// same day collapse to one entry.
func (r *Record) AddDate(t time.Time) {
	if t.IsZero() {
		return
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	for _, d := range r.Dates {
		if d.Equal(day) {
			return
		}
	}
	r.Dates = append(r.Dates, day)
}

// AddOrganization inserts an organization name, preserving insertion order.
func (r *Record) AddOrganization(name string) {
	r.Organizations = appendUnique(r.Organizations, name)
}

// AddPerson inserts a person name.
func (r *Record) AddPerson(name string) {
	r.People = appendUnique(r.People, name)
}

// AddReferencedDocument inserts the name of another document mentioned in
// the text. References are plain strings, never record pointers.
func (r *Record) AddReferencedDocument(name string) {
	r.ReferencedDocuments = appendUnique(r.ReferencedDocuments, name)
}

// SetProperty records a free-form extra such as page_count or pdf_author.
func (r *Record) SetProperty(key, value string) {
	if key == "" || value == "" {
		return
	}
	if r.Properties == nil {
		r.Properties = make(map[string]string)
	}
	r.Properties[key] = value
}

// HasDate reports whether the record already contains the calendar day of t.
func (r *Record) HasDate(t time.Time) bool {
	for _, d := range r.Dates {
		if d.Year() == t.Year() && d.Month() == t.Month() && d.Day() == t.Day() {
			return true
		}
	}
	return false
}

// Summary renders the record as labeled lines for human consumption. Empty
// collections are omitted; dates print sorted as YYYY-MM-DD.
func (r *Record) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Document: %s\n", r.Name)
	if r.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", r.Description)
	}
	if len(r.People) > 0 {
		fmt.Fprintf(&b, "People: %s\n", strings.Join(r.People, ", "))
	}
	if len(r.Organizations) > 0 {
		fmt.Fprintf(&b, "Organizations: %s\n", strings.Join(r.Organizations, ", "))
	}
	if len(r.ReferencedDocuments) > 0 {
		fmt.Fprintf(&b, "Referenced Docs: %s\n", strings.Join(r.ReferencedDocuments, ", "))
	}
	if len(r.Dates) > 0 {
		days := make([]string, len(r.Dates))
		for i, d := range r.Dates {
			days[i] = d.Format(DateLayout)
		}
		sort.Strings(days)
		fmt.Fprintf(&b, "Dates: %s\n", strings.Join(days, ", "))
	}
	return b.String()
}

// appendUnique adds value to list unless a case-insensitive duplicate is
// already present. Blank values are dropped.
func appendUnique(list []string, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return list
	}
	for _, existing := range list {
		if strings.EqualFold(existing, value) {
			return list
		}
	}
	return append(list, value)
}
