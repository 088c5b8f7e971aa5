package llm

import (
	"context"
	"os"
)

// openRouterClient implements Client for OpenRouter.
// OpenRouter uses the OpenAI-compatible API format.
//
// API key: set via config or OPENROUTER_API_KEY env var.
type openRouterClient struct {
	base openAICompatClient
}

// NewOpenRouter creates a client for OpenRouter.
func NewOpenRouter(cfg Config) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://openrouter.ai/api"
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENROUTER_API_KEY")
	}
	return &openRouterClient{base: newOpenAICompatClient(cfg)}
}

func (c *openRouterClient) Summarize(ctx context.Context, text string, opts Options) (string, error) {
	return c.base.summarize(ctx, text, opts)
}

func (c *openRouterClient) Analyze(ctx context.Context, text string, opts Options) (*Analysis, error) {
	return c.base.analyze(ctx, text, opts)
}
