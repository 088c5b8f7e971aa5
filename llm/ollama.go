package llm

import "context"

// ollamaClient implements Client for a local Ollama server through its
// OpenAI-compatible API.
type ollamaClient struct {
	base openAICompatClient
}

// NewOllama creates a client for Ollama.
func NewOllama(cfg Config) Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434"
	}
	return &ollamaClient{base: newOpenAICompatClient(cfg)}
}

func (c *ollamaClient) Summarize(ctx context.Context, text string, opts Options) (string, error) {
	return c.base.summarize(ctx, text, opts)
}

func (c *ollamaClient) Analyze(ctx context.Context, text string, opts Options) (*Analysis, error) {
	return c.base.analyze(ctx, text, opts)
}
