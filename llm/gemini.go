package llm

import (
	"context"
	"os"
)

// geminiClient implements Client for Google's Gemini API using the
// OpenAI-compatible endpoint. Gemini uses a different path prefix than
// standard OpenAI providers (no /v1).
//
// Chat models:
//
//	gemini-2.5-flash  fast, cost-effective
//	gemini-2.5-pro    highest capability
//
// API key: set via config or GEMINI_API_KEY env var.
type geminiClient struct {
	base openAICompatClient
}

// NewGemini creates a client for Google Gemini.
func NewGemini(cfg Config) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	return &geminiClient{base: newOpenAICompatClientPrefix(cfg, "")}
}

func (c *geminiClient) Summarize(ctx context.Context, text string, opts Options) (string, error) {
	return c.base.summarize(ctx, text, opts)
}

func (c *geminiClient) Analyze(ctx context.Context, text string, opts Options) (*Analysis, error) {
	return c.base.analyze(ctx, text, opts)
}
