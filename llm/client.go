package llm

import (
	"context"
	"errors"
	"fmt"
)

// Client is the capability contract for language-model backed document
// analysis. Implementations are safe for concurrent use.
type Client interface {
	// Summarize produces a single coherent summary of the given text.
	// The text may carry several partial summaries of one document,
	// formatted with AggregationPrompt.
	Summarize(ctx context.Context, text string, opts Options) (string, error)

	// Analyze extracts structured information from document content.
	Analyze(ctx context.Context, text string, opts Options) (*Analysis, error)
}

// Options override per-request model parameters. Zero values fall back
// to the client's configuration.
type Options struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// Analysis is the structured result of an Analyze call.
type Analysis struct {
	DocumentType        string   `json:"document_type"`
	DocumentDate        string   `json:"document_date"`
	Summary             string   `json:"summary"`
	Organizations       []string `json:"organizations"`
	People              []string `json:"people"`
	Dates               []string `json:"dates"`
	Locations           []string `json:"locations"`
	ReferencedDocuments []string `json:"referenced_documents"`
	KeyInformation      []string `json:"key_information"`
	FinancialAmounts    []string `json:"financial_amounts"`
}

var (
	// ErrUnavailable indicates the provider could not serve the request:
	// missing credentials, an unreachable endpoint, or an open circuit.
	ErrUnavailable = errors.New("llm: provider unavailable")

	// ErrResponse indicates the provider answered with something that
	// could not be decoded into the expected shape.
	ErrResponse = errors.New("llm: malformed response")
)

// Config configures an LLM client.
type Config struct {
	Provider          string  `json:"provider" yaml:"provider"` // openai, ollama, gemini, groq, lmstudio, openrouter, xai, custom, noop
	Model             string  `json:"model" yaml:"model"`
	BaseURL           string  `json:"base_url" yaml:"base_url"`
	APIKey            string  `json:"api_key" yaml:"api_key"`
	MaxTokens         int     `json:"max_tokens" yaml:"max_tokens"`
	Temperature       float64 `json:"temperature" yaml:"temperature"`
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
}

// NewClient creates an LLM client from configuration. An empty or
// "noop" provider yields the no-op client, which reports ErrUnavailable
// for every call so that callers keep their heuristic results.
func NewClient(cfg Config) (Client, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAI(cfg), nil
	case "ollama":
		return NewOllama(cfg), nil
	case "gemini":
		return NewGemini(cfg), nil
	case "groq":
		return NewGroq(cfg), nil
	case "lmstudio":
		return NewLMStudio(cfg), nil
	case "openrouter":
		return NewOpenRouter(cfg), nil
	case "xai":
		return NewXAI(cfg), nil
	case "custom":
		return NewOpenAICompat(cfg), nil
	case "noop", "":
		return NewNoop(), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
