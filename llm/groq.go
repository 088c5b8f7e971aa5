package llm

import (
	"context"
	"os"
)

// groqClient implements Client for Groq's inference API.
// Groq uses the OpenAI-compatible API format and provides extremely
// fast inference for open-source models (Llama, Mixtral, Gemma, etc.).
//
// API key: set via config or GROQ_API_KEY env var.
type groqClient struct {
	base openAICompatClient
}

// NewGroq creates a client for Groq.
func NewGroq(cfg Config) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.groq.com/openai"
	}
	if cfg.Model == "" {
		cfg.Model = "llama-3.3-70b-versatile"
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GROQ_API_KEY")
	}
	return &groqClient{base: newOpenAICompatClient(cfg)}
}

func (c *groqClient) Summarize(ctx context.Context, text string, opts Options) (string, error) {
	return c.base.summarize(ctx, text, opts)
}

func (c *groqClient) Analyze(ctx context.Context, text string, opts Options) (*Analysis, error) {
	return c.base.analyze(ctx, text, opts)
}
