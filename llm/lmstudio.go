package llm

import "context"

// lmStudioClient implements Client for LM Studio.
// LM Studio exposes an OpenAI-compatible API.
type lmStudioClient struct {
	base openAICompatClient
}

// NewLMStudio creates a client for LM Studio.
func NewLMStudio(cfg Config) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:1234"
	}
	return &lmStudioClient{base: newOpenAICompatClient(cfg)}
}

func (c *lmStudioClient) Summarize(ctx context.Context, text string, opts Options) (string, error) {
	return c.base.summarize(ctx, text, opts)
}

func (c *lmStudioClient) Analyze(ctx context.Context, text string, opts Options) (*Analysis, error) {
	return c.base.analyze(ctx, text, opts)
}
