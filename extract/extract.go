package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/krish-jayaratne/MultiDoc-LLM-Summary-Tool/metadata"
)

// Pattern-based entity recognition shared by every reader variant. The
// matchers are deliberately simple: they trade recall and precision for
// predictability, and a text with no matches yields empty sets, never an
// error.
var (
	// Dates: 03/03/2023, 2023-03-03, March 3, 2023, Mar 3rd 2023, 3 March 2023.
	reNumericDate = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{4})\b`)
	reISODate     = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
	reMonthFirst  = regexp.MustCompile(`\b(` + monthNames + `)\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`)
	reDayFirst    = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(` + monthNames + `)\.?,?\s+(\d{4})\b`)

	// Organizations: capitalized runs ending in a corporate suffix (one
	// pattern for mixed case, one for all-caps names), runs ending in an
	// organizational keyword, and keyword-led names ("University of X").
	reOrgSuffix  = regexp.MustCompile(`\b([A-Z][A-Za-z.-]*(?:\s+(?:[A-Z][A-Za-z.-]*|&))*\s+(?:Incorporated|Corporation|Company|Limited|Holdings|Partners|Inc|Corp|LLC|Ltd|Co)\b\.?)`)
	reOrgAllCaps = regexp.MustCompile(`\b([A-Z][A-Z&]+(?:\s+[A-Z][A-Z&]+)*\s+(?:INCORPORATED|CORPORATION|COMPANY|LIMITED|HOLDINGS|PARTNERS|INC|CORP|LLC|LTD|CO)\b\.?)`)
	reOrgKeyword = regexp.MustCompile(`\b([A-Z][A-Za-z.-]*(?:\s+(?:[A-Z][A-Za-z.-]*|&))*\s+(?:University|Institute|Department|Agency|Association|Foundation|Group|Bank|Ministry|Bureau)\b)`)
	reOrgOfForm  = regexp.MustCompile(`\b((?:University|Institute|Department|Ministry|Bureau|Bank)\s+of(?:\s+[A-Z][A-Za-z.-]*)+)\b`)

	// People: honorific-prefixed names, and standalone runs of two or three
	// capitalized tokens.
	reHonorific  = regexp.MustCompile(`\b(?:Mr|Mrs|Ms|Miss|Dr|Prof|Professor)\.?\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,2})\b`)
	rePersonName = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+){1,2})\b`)

	// Referenced documents: filename-like tokens with a known extension.
	reDocName = regexp.MustCompile(`(?i)\b([\w][\w.-]*\.(?:pdf|docx|doc|txt|md|xlsx|xls|pptx|csv|rtf|log))\b`)
)

var orgPatterns = []*regexp.Regexp{reOrgSuffix, reOrgAllCaps, reOrgKeyword, reOrgOfForm}

const monthNames = `Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|June?|July?|Aug(?:ust)?|Sept?(?:ember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?`

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// personStopwords filters standalone capitalized runs whose leading token is
// common prose rather than a given name.
var personStopwords = map[string]bool{
	"the": true, "this": true, "that": true, "these": true, "those": true,
	"a": true, "an": true, "in": true, "on": true, "at": true, "by": true,
	"for": true, "from": true, "with": true, "and": true, "but": true,
	"dear": true, "hello": true, "best": true, "kind": true, "sincerely": true,
	"regards": true, "thanks": true, "thank": true, "meeting": true,
	"minutes": true, "project": true, "page": true, "chapter": true,
	"section": true, "table": true, "figure": true, "appendix": true,
	"note": true, "subject": true, "date": true, "january": true,
	"february": true, "march": true, "april": true, "may": true, "june": true,
	"july": true, "august": true, "september": true, "october": true,
	"november": true, "december": true,
}

// Populate runs every extractor over content and fills rec in place.
// descriptionLimit <= 0 selects DefaultDescriptionLimit.
func Populate(rec *metadata.Record, content string, descriptionLimit int) {
	rec.Description = Description(content, descriptionLimit)
	for _, t := range Dates(content) {
		rec.AddDate(t)
	}
	for _, org := range Organizations(content) {
		rec.AddOrganization(org)
	}
	for _, person := range People(content) {
		rec.AddPerson(person)
	}
	for _, doc := range ReferencedDocuments(content) {
		rec.AddReferencedDocument(doc)
	}
}

type dateMatch struct {
	pos int
	t   time.Time
}

// Dates returns the distinct calendar days mentioned in content, normalized
// to midnight UTC and ordered by first appearance. Matches that do not form
// a real date (month 13, February 30) are discarded silently.
func Dates(content string) []time.Time {
	var found []dateMatch
	collect := func(pos, year, month, day int) {
		if t, ok := civilDate(year, month, day); ok {
			found = append(found, dateMatch{pos: pos, t: t})
		}
	}

	for _, m := range reNumericDate.FindAllStringSubmatchIndex(content, -1) {
		collect(m[0], atoi(content[m[6]:m[7]]), atoi(content[m[2]:m[3]]), atoi(content[m[4]:m[5]]))
	}
	for _, m := range reISODate.FindAllStringSubmatchIndex(content, -1) {
		collect(m[0], atoi(content[m[2]:m[3]]), atoi(content[m[4]:m[5]]), atoi(content[m[6]:m[7]]))
	}
	for _, m := range reMonthFirst.FindAllStringSubmatchIndex(content, -1) {
		if month, ok := monthFromName(content[m[2]:m[3]]); ok {
			collect(m[0], atoi(content[m[6]:m[7]]), int(month), atoi(content[m[4]:m[5]]))
		}
	}
	for _, m := range reDayFirst.FindAllStringSubmatchIndex(content, -1) {
		if month, ok := monthFromName(content[m[4]:m[5]]); ok {
			collect(m[0], atoi(content[m[6]:m[7]]), int(month), atoi(content[m[2]:m[3]]))
		}
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].pos < found[j].pos })
	var out []time.Time
	seen := make(map[string]bool)
	for _, f := range found {
		key := f.t.Format(metadata.DateLayout)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, f.t)
	}
	return out
}

type orgMatch struct {
	start, end int
	name       string
}

// Organizations returns distinct organization names in order of first
// appearance. Trailing periods from abbreviated suffixes are dropped so
// "Acme Inc." and "Acme Inc" collapse to one entry.
func Organizations(content string) []string {
	matches := organizationMatches(content)
	var out []string
	seen := make(map[string]bool)
	for _, m := range matches {
		key := strings.ToLower(m.name)
		if m.name == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, m.name)
	}
	return out
}

// organizationMatches collects matches from every organization pattern,
// sorted by text position. The spans double as a precedence mask for person
// extraction.
func organizationMatches(content string) []orgMatch {
	var matches []orgMatch
	for _, re := range orgPatterns {
		for _, m := range re.FindAllStringSubmatchIndex(content, -1) {
			name := strings.TrimSuffix(strings.TrimSpace(content[m[2]:m[3]]), ".")
			matches = append(matches, orgMatch{start: m[0], end: m[1], name: name})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].start < matches[j].start })
	return matches
}

type personMatch struct {
	pos  int
	name string
}

// People returns distinct person names in order of first appearance.
// Organization detection takes precedence: a capitalized run overlapping an
// organization match is never classified as a person.
func People(content string) []string {
	orgs := organizationMatches(content)
	var found []personMatch

	var honorifics [][2]int
	for _, m := range reHonorific.FindAllStringSubmatchIndex(content, -1) {
		honorifics = append(honorifics, [2]int{m[0], m[1]})
		if overlapsOrg(m[2], m[3], orgs) {
			continue
		}
		found = append(found, personMatch{pos: m[0], name: content[m[2]:m[3]]})
	}
	for _, m := range rePersonName.FindAllStringSubmatchIndex(content, -1) {
		start, end := m[2], m[3]
		if overlapsOrg(start, end, orgs) {
			continue
		}
		// The honorific pass already took these, title included.
		if overlapsSpan(start, end, honorifics) {
			continue
		}
		name := content[start:end]
		first, _, _ := strings.Cut(name, " ")
		if personStopwords[strings.ToLower(first)] {
			continue
		}
		found = append(found, personMatch{pos: start, name: name})
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].pos < found[j].pos })
	var out []string
	seen := make(map[string]bool)
	for _, f := range found {
		name := strings.TrimSpace(f.name)
		key := strings.ToLower(name)
		if name == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	return out
}

// ReferencedDocuments returns distinct filename-like tokens in order of
// first appearance, with original casing preserved.
func ReferencedDocuments(content string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, m := range reDocName.FindAllStringSubmatch(content, -1) {
		name := m[1]
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	return out
}

func overlapsOrg(start, end int, orgs []orgMatch) bool {
	for _, o := range orgs {
		if start < o.end && end > o.start {
			return true
		}
	}
	return false
}

func overlapsSpan(start, end int, spans [][2]int) bool {
	for _, s := range spans {
		if start < s[1] && end > s[0] {
			return true
		}
	}
	return false
}

// civilDate builds a midnight-UTC date and rejects values that do not
// round-trip, such as February 30.
func civilDate(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

func monthFromName(name string) (time.Month, bool) {
	if len(name) < 3 {
		return 0, false
	}
	m, ok := monthsByPrefix[strings.ToLower(name[:3])]
	return m, ok
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
