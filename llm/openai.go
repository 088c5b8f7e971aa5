package llm

import (
	"context"
	"os"
)

// openAIClient implements Client for the OpenAI API.
// Uses the standard OpenAI-compatible format.
//
// Chat models:
//
//	gpt-4o       (default) strongest extraction quality
//	gpt-4o-mini  cheaper, good for large batches
//
// API key: set via config or the OPENAI_API_KEY / OPENAI_KEY env vars.
type openAIClient struct {
	base openAICompatClient
}

// NewOpenAI creates a client for OpenAI.
func NewOpenAI(cfg Config) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o"
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 4000
	}
	if cfg.Temperature == 0 {
		// Low temperature for consistent extraction.
		cfg.Temperature = 0.1
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_KEY")
	}
	return &openAIClient{base: newOpenAICompatClient(cfg)}
}

func (c *openAIClient) Summarize(ctx context.Context, text string, opts Options) (string, error) {
	return c.base.summarize(ctx, text, opts)
}

func (c *openAIClient) Analyze(ctx context.Context, text string, opts Options) (*Analysis, error) {
	return c.base.analyze(ctx, text, opts)
}
