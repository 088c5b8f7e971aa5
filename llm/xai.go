package llm

import "context"

// xaiClient implements Client for xAI (Grok).
// xAI uses the OpenAI-compatible API format.
type xaiClient struct {
	base openAICompatClient
}

// NewXAI creates a client for xAI (Grok).
func NewXAI(cfg Config) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.x.ai"
	}
	return &xaiClient{base: newOpenAICompatClient(cfg)}
}

func (c *xaiClient) Summarize(ctx context.Context, text string, opts Options) (string, error) {
	return c.base.summarize(ctx, text, opts)
}

func (c *xaiClient) Analyze(ctx context.Context, text string, opts Options) (*Analysis, error) {
	return c.base.analyze(ctx, text, opts)
}
