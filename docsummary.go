package docsummary

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/krish-jayaratne/MultiDoc-LLM-Summary-Tool/chunker"
	"github.com/krish-jayaratne/MultiDoc-LLM-Summary-Tool/extract"
	"github.com/krish-jayaratne/MultiDoc-LLM-Summary-Tool/llm"
	"github.com/krish-jayaratne/MultiDoc-LLM-Summary-Tool/metadata"
	"github.com/krish-jayaratne/MultiDoc-LLM-Summary-Tool/reader"
)

// AnalysisResult is the outcome of analyzing a single document.
type AnalysisResult struct {
	ID              string           `json:"id"`
	Path            string           `json:"path"`
	Record          *metadata.Record `json:"metadata"`
	ContentPreview  string           `json:"content_preview,omitempty"`
	LLM             *llm.Analysis    `json:"llm_analysis,omitempty"`
	Enriched        bool             `json:"enriched"`
	EnrichmentError string           `json:"enrichment_error,omitempty"`
	ElapsedMs       int64            `json:"elapsed_ms"`
}

// DocumentResult is one slot of a cross-reference batch, in input order. A
// failed document carries Err and a nil Analysis instead of aborting the
// batch.
type DocumentResult struct {
	Path     string          `json:"path"`
	Analysis *AnalysisResult `json:"analysis,omitempty"`
	Err      string          `json:"error,omitempty"`
}

// SharedEntities lists the people and organizations two documents of a batch
// have in common.
type SharedEntities struct {
	Documents     [2]string `json:"documents"`
	People        []string  `json:"people,omitempty"`
	Organizations []string  `json:"organizations,omitempty"`
}

// CrossReferenceResult aggregates a batch analysis. ReferencedBy maps a
// document name to the documents mentioning it; it is derived from the
// completed records on every call, never independently mutated.
type CrossReferenceResult struct {
	BatchID        string              `json:"batch_id"`
	Documents      []DocumentResult    `json:"documents"`
	ReferencedBy   map[string][]string `json:"referenced_by"`
	SharedEntities []SharedEntities    `json:"shared_entities,omitempty"`
	ElapsedMs      int64               `json:"elapsed_ms"`
}

// AnalyzeOption configures a single analysis call.
type AnalyzeOption func(*analyzeOptions)

type analyzeOptions struct {
	enrich      bool
	forceReread bool
}

// WithEnrichment refines the heuristic record with a language-model pass.
// Enrichment failures are recovered: the heuristic record is kept and the
// failure is recorded on the result.
func WithEnrichment() AnalyzeOption {
	return func(o *analyzeOptions) { o.enrich = true }
}

// WithForceReread bypasses the record cache for this call.
func WithForceReread() AnalyzeOption {
	return func(o *analyzeOptions) { o.forceReread = true }
}

// Option configures an Analyzer at construction.
type Option func(*Analyzer)

// WithLLM injects an enrichment client, replacing the one the configuration
// would build.
func WithLLM(c llm.Client) Option {
	return func(a *Analyzer) { a.client = c }
}

// WithLogger replaces the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *Analyzer) { a.logger = l }
}

// WithCacheSize overrides the configured record cache size.
func WithCacheSize(n int) Option {
	return func(a *Analyzer) { a.cfg.CacheSize = n }
}

// Analyzer drives single-document analysis and multi-document
// cross-referencing, composing readers, entity extraction, and an optional
// LLM client.
type Analyzer struct {
	cfg      Config
	registry *reader.Registry
	client   llm.Client
	chunkr   *chunker.Chunker
	cache    *lru.Cache[string, *metadata.Record]
	logger   *slog.Logger
}

// New creates an Analyzer with the given configuration.
func New(cfg Config, opts ...Option) (*Analyzer, error) {
	if cfg.CacheSize < 0 {
		return nil, fmt.Errorf("%w: cache size %d", ErrInvalidConfig, cfg.CacheSize)
	}
	if cfg.DescriptionLimit <= 0 {
		cfg.DescriptionLimit = extract.DefaultDescriptionLimit
	}
	if cfg.PreviewLimit <= 0 {
		cfg.PreviewLimit = extract.DefaultPreviewLimit
	}

	a := &Analyzer{
		cfg:    cfg,
		chunkr: chunker.New(chunker.Config{}),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}

	regOpts := []reader.RegistryOption{reader.WithDescriptionLimit(a.cfg.DescriptionLimit)}
	if len(a.cfg.TextExtensions) > 0 {
		regOpts = append(regOpts, reader.WithTextExtensions(a.cfg.TextExtensions...))
	}
	a.registry = reader.NewRegistry(regOpts...)

	if a.client == nil {
		client, err := llm.NewClient(a.cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("creating llm client: %w", err)
		}
		a.client = client
	}

	if a.cfg.CacheSize > 0 {
		cache, err := lru.New[string, *metadata.Record](a.cfg.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating record cache: %w", err)
		}
		a.cache = cache
	}
	return a, nil
}

// Registry returns the reader registry so callers can register additional
// document formats.
func (a *Analyzer) Registry() *reader.Registry {
	return a.registry
}

// AnalyzeDocument reads one document, extracts its metadata record, and
// optionally enriches it with a language-model pass. A nil reader selects
// one from the registry by extension. Reader failures return *AnalysisError
// wrapping the cause; recovered enrichment failures are recorded on the
// result instead.
func (a *Analyzer) AnalyzeDocument(ctx context.Context, path string, r reader.Reader, opts ...AnalyzeOption) (*AnalysisResult, error) {
	options := &analyzeOptions{}
	for _, o := range opts {
		o(options)
	}

	start := time.Now()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, &AnalysisError{Path: path, Err: err}
	}
	if r == nil {
		r, err = a.registry.ForPath(absPath)
		if err != nil {
			return nil, &AnalysisError{Path: path, Err: err}
		}
	}

	filename := filepath.Base(absPath)
	content, err := r.ReadContent(absPath)
	if err != nil {
		return nil, &AnalysisError{Path: path, Err: err}
	}

	rec := a.cachedRecord(absPath, options.forceReread)
	if rec == nil {
		a.logger.Info("analyze: extracting metadata", "file", filename)
		rec, err = r.ExtractMetadata(absPath)
		if err != nil {
			return nil, &AnalysisError{Path: path, Err: err}
		}
		a.storeRecord(absPath, rec)
	} else {
		a.logger.Debug("analyze: using cached record", "file", filename)
	}

	result := &AnalysisResult{
		ID:             uuid.NewString(),
		Path:           absPath,
		Record:         rec,
		ContentPreview: extract.Preview(content, a.cfg.PreviewLimit),
	}

	if options.enrich {
		a.enrich(ctx, result, content)
	}

	result.ElapsedMs = time.Since(start).Milliseconds()
	return result, nil
}

// cachedRecord returns the record stored for absPath, if any. Cached records
// are shared pointers: a later enrichment pass writes through to the cache.
func (a *Analyzer) cachedRecord(absPath string, force bool) *metadata.Record {
	if a.cache == nil || force {
		return nil
	}
	if rec, ok := a.cache.Get(absPath); ok {
		return rec
	}
	return nil
}

func (a *Analyzer) storeRecord(absPath string, rec *metadata.Record) {
	if a.cache != nil {
		a.cache.Add(absPath, rec)
	}
}

// enrich refines the record description through the LLM client. Entity
// collections stay heuristic: the structured analysis is attached to the
// result, never merged over extracted fields.
func (a *Analyzer) enrich(ctx context.Context, result *AnalysisResult, content string) {
	filename := filepath.Base(result.Path)
	a.logger.Info("analyze: enriching via llm", "file", filename, "provider", a.cfg.LLM.Provider)

	enrichStart := time.Now()
	analysis, err := a.analyzeContent(ctx, filename, content)
	if err != nil {
		a.logger.Warn("analyze: enrichment failed, keeping heuristic description",
			"file", filename, "error", err)
		result.EnrichmentError = err.Error()
		return
	}

	result.LLM = analysis
	result.Enriched = true
	if s := strings.TrimSpace(analysis.Summary); s != "" {
		result.Record.Description = s
	}
	a.logger.Info("analyze: enrichment complete",
		"file", filename, "elapsed", time.Since(enrichStart).Round(time.Millisecond))
}

// analyzeContent runs the structured LLM analysis. Content beyond the model
// budget is split into chunks, analyzed per chunk, and combined.
func (a *Analyzer) analyzeContent(ctx context.Context, filename, content string) (*llm.Analysis, error) {
	chunks := a.chunkr.Split(content)
	if len(chunks) <= 1 {
		return a.client.Analyze(ctx, content, llm.Options{})
	}

	a.logger.Info("analyze: content exceeds model budget, chunking",
		"file", filename, "chunks", len(chunks))

	partials := make([]*llm.Analysis, 0, len(chunks))
	for _, chunk := range chunks {
		analysis, err := a.client.Analyze(ctx, chunk.Content, llm.Options{})
		if err != nil {
			return nil, fmt.Errorf("chunk %d: %w", chunk.Index, err)
		}
		partials = append(partials, analysis)
	}
	return a.mergeAnalyses(ctx, filename, partials), nil
}

// mergeAnalyses combines per-chunk results: first non-empty value wins for
// scalar fields, list fields union case-insensitively, and the partial
// summaries are aggregated by a final LLM pass.
func (a *Analyzer) mergeAnalyses(ctx context.Context, filename string, partials []*llm.Analysis) *llm.Analysis {
	merged := &llm.Analysis{}
	var summaries []string
	for _, p := range partials {
		if merged.DocumentType == "" {
			merged.DocumentType = p.DocumentType
		}
		if merged.DocumentDate == "" {
			merged.DocumentDate = p.DocumentDate
		}
		if s := strings.TrimSpace(p.Summary); s != "" {
			summaries = append(summaries, s)
		}
		merged.Organizations = mergeUnique(merged.Organizations, p.Organizations...)
		merged.People = mergeUnique(merged.People, p.People...)
		merged.Dates = mergeUnique(merged.Dates, p.Dates...)
		merged.Locations = mergeUnique(merged.Locations, p.Locations...)
		merged.ReferencedDocuments = mergeUnique(merged.ReferencedDocuments, p.ReferencedDocuments...)
		merged.KeyInformation = mergeUnique(merged.KeyInformation, p.KeyInformation...)
		merged.FinancialAmounts = mergeUnique(merged.FinancialAmounts, p.FinancialAmounts...)
	}
	merged.Summary = a.aggregateSummaries(ctx, filename, summaries)
	return merged
}

// maxFallbackSummary caps the concatenated summary used when the aggregation
// call fails.
const maxFallbackSummary = 600

// aggregateSummaries combines partial chunk summaries into one text. When
// the combining LLM call fails the summaries are joined and capped instead.
func (a *Analyzer) aggregateSummaries(ctx context.Context, filename string, summaries []string) string {
	switch len(summaries) {
	case 0:
		return ""
	case 1:
		return summaries[0]
	}

	combined, err := a.client.Summarize(ctx, llm.AggregationPrompt(summaries, filename), llm.Options{})
	if err == nil {
		return strings.TrimSpace(combined)
	}
	a.logger.Warn("analyze: summary aggregation failed, concatenating",
		"file", filename, "error", err)

	joined := strings.Join(summaries, " ")
	if len(joined) > maxFallbackSummary {
		joined = joined[:maxFallbackSummary] + "..."
	}
	return joined
}

// CrossReference analyzes every path independently and derives
// cross-document relationships from the completed records. A failed document
// occupies its slot with an error marker rather than aborting the batch; the
// call itself only fails when paths is empty.
func (a *Analyzer) CrossReference(ctx context.Context, paths []string, r reader.Reader, opts ...AnalyzeOption) (*CrossReferenceResult, error) {
	if len(paths) == 0 {
		return nil, ErrNoDocuments
	}

	start := time.Now()
	result := &CrossReferenceResult{
		BatchID:      uuid.NewString(),
		Documents:    make([]DocumentResult, 0, len(paths)),
		ReferencedBy: make(map[string][]string),
	}

	a.logger.Info("crossref: analyzing batch", "batch_id", result.BatchID, "documents", len(paths))

	for _, path := range paths {
		analysis, err := a.AnalyzeDocument(ctx, path, r, opts...)
		if err != nil {
			a.logger.Warn("crossref: document failed", "file", path, "error", err)
			result.Documents = append(result.Documents, DocumentResult{Path: path, Err: err.Error()})
			continue
		}
		result.Documents = append(result.Documents, DocumentResult{Path: path, Analysis: analysis})
	}

	records := make([]*metadata.Record, 0, len(result.Documents))
	for _, d := range result.Documents {
		if d.Analysis != nil {
			records = append(records, d.Analysis.Record)
		}
	}
	result.ReferencedBy = referencedBy(records)
	result.SharedEntities = sharedEntities(records)

	result.ElapsedMs = time.Since(start).Milliseconds()
	a.logger.Info("crossref: batch complete",
		"batch_id", result.BatchID, "documents", len(result.Documents),
		"references", len(result.ReferencedBy), "elapsed", time.Since(start).Round(time.Millisecond))
	return result, nil
}

// referencedBy maps each document name to the documents mentioning it.
// Matching is case-insensitive; mentions resolving to no batch document are
// left out, as are self-references. When two documents share a name the
// first occurrence wins.
func referencedBy(records []*metadata.Record) map[string][]string {
	byName := make(map[string]string, len(records))
	for _, rec := range records {
		key := strings.ToLower(rec.Name)
		if _, exists := byName[key]; !exists {
			byName[key] = rec.Name
		}
	}

	refs := make(map[string][]string)
	for _, rec := range records {
		for _, mentioned := range rec.ReferencedDocuments {
			canonical, known := byName[strings.ToLower(mentioned)]
			if !known || strings.EqualFold(rec.Name, mentioned) {
				continue
			}
			refs[canonical] = mergeUnique(refs[canonical], rec.Name)
		}
	}
	return refs
}

// sharedEntities finds, for each unordered pair of batch documents, the
// people and organizations mentioned in both.
func sharedEntities(records []*metadata.Record) []SharedEntities {
	var shared []SharedEntities
	for i := 0; i < len(records); i++ {
		for j := i + 1; j < len(records); j++ {
			people := intersect(records[i].People, records[j].People)
			orgs := intersect(records[i].Organizations, records[j].Organizations)
			if len(people) == 0 && len(orgs) == 0 {
				continue
			}
			shared = append(shared, SharedEntities{
				Documents:     [2]string{records[i].Name, records[j].Name},
				People:        people,
				Organizations: orgs,
			})
		}
	}
	return shared
}

// intersect returns the values of a that also appear in b, case-insensitive,
// keeping a's casing and order.
func intersect(a, b []string) []string {
	var common []string
	for _, v := range a {
		for _, w := range b {
			if strings.EqualFold(v, w) {
				common = append(common, v)
				break
			}
		}
	}
	return common
}

// mergeUnique appends values to dst, skipping blanks and case-insensitive
// duplicates.
func mergeUnique(dst []string, values ...string) []string {
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		seen := false
		for _, existing := range dst {
			if strings.EqualFold(existing, v) {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, v)
		}
	}
	return dst
}
