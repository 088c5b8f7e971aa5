package llm

import (
	"context"
	"fmt"
)

// noopClient is the default when no provider is configured. Every call
// reports ErrUnavailable so that callers keep their heuristic results.
type noopClient struct{}

// NewNoop returns a client that performs no network calls.
func NewNoop() Client {
	return noopClient{}
}

func (noopClient) Summarize(context.Context, string, Options) (string, error) {
	return "", fmt.Errorf("%w: no provider configured", ErrUnavailable)
}

func (noopClient) Analyze(context.Context, string, Options) (*Analysis, error) {
	return nil, fmt.Errorf("%w: no provider configured", ErrUnavailable)
}
