package llm

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		provider string
		wantType string
	}{
		{"openai", "*llm.openAIClient"},
		{"ollama", "*llm.ollamaClient"},
		{"gemini", "*llm.geminiClient"},
		{"groq", "*llm.groqClient"},
		{"lmstudio", "*llm.lmStudioClient"},
		{"openrouter", "*llm.openRouterClient"},
		{"xai", "*llm.xaiClient"},
		{"custom", "*llm.openAICompatProvider"},
		{"noop", "llm.noopClient"},
		{"", "llm.noopClient"},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg := Config{
				Provider: tt.provider,
				Model:    "test-model",
				APIKey:   "test-key",
			}
			c, err := NewClient(cfg)
			if err != nil {
				t.Fatalf("NewClient(%q) returned error: %v", tt.provider, err)
			}
			gotType := fmt.Sprintf("%T", c)
			if gotType != tt.wantType {
				t.Errorf("NewClient(%q) type = %s, want %s", tt.provider, gotType, tt.wantType)
			}
		})
	}
}

func TestNewClientUnknown(t *testing.T) {
	cfg := Config{
		Provider: "doesnotexist",
		Model:    "test-model",
	}
	_, err := NewClient(cfg)
	if err == nil {
		t.Fatal("expected error for unknown provider, got nil")
	}
	want := "unknown llm provider: doesnotexist"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

// baseConfigField reaches base.cfg.<name> inside a concrete client type.
func baseConfigField(t *testing.T, c Client, name string) reflect.Value {
	t.Helper()
	v := reflect.ValueOf(c).Elem()
	base := v.FieldByName("base")
	return base.FieldByName("cfg").FieldByName(name)
}

// TestDefaultBaseURLs verifies that when BaseURL is empty in the config,
// each provider constructor sets the correct default.
func TestDefaultBaseURLs(t *testing.T) {
	tests := []struct {
		provider string
		wantURL  string
	}{
		{"openai", "https://api.openai.com"},
		{"ollama", "http://localhost:11434"},
		{"gemini", "https://generativelanguage.googleapis.com/v1beta/openai"},
		{"groq", "https://api.groq.com/openai"},
		{"lmstudio", "http://localhost:1234"},
		{"openrouter", "https://openrouter.ai/api"},
		{"xai", "https://api.x.ai"},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			cfg := Config{
				Provider: tt.provider,
				Model:    "test-model",
				APIKey:   "test-key",
				// BaseURL intentionally left empty.
			}
			c, err := NewClient(cfg)
			if err != nil {
				t.Fatalf("NewClient(%q): %v", tt.provider, err)
			}

			if gotURL := baseConfigField(t, c, "BaseURL").String(); gotURL != tt.wantURL {
				t.Errorf("default BaseURL for %q = %q, want %q", tt.provider, gotURL, tt.wantURL)
			}
		})
	}
}

// TestExplicitBaseURLPreserved verifies that a user-supplied BaseURL
// is not overwritten by the default.
func TestExplicitBaseURLPreserved(t *testing.T) {
	customURL := "http://my-server:9999"

	tests := []string{"openai", "ollama", "gemini", "groq", "lmstudio", "openrouter", "xai", "custom"}
	for _, provider := range tests {
		t.Run(provider, func(t *testing.T) {
			cfg := Config{
				Provider: provider,
				Model:    "test-model",
				APIKey:   "test-key",
				BaseURL:  customURL,
			}
			c, err := NewClient(cfg)
			if err != nil {
				t.Fatalf("NewClient(%q): %v", provider, err)
			}

			if gotURL := baseConfigField(t, c, "BaseURL").String(); gotURL != customURL {
				t.Errorf("provider %q BaseURL = %q, want %q", provider, gotURL, customURL)
			}
		})
	}
}

// TestOpenAIDefaults verifies the model parameters the OpenAI
// constructor fills in for zero-value config fields.
func TestOpenAIDefaults(t *testing.T) {
	c := NewOpenAI(Config{Provider: "openai", APIKey: "test-key"})

	if got := baseConfigField(t, c, "Model").String(); got != "gpt-4o" {
		t.Errorf("default model = %q, want %q", got, "gpt-4o")
	}
	if got := baseConfigField(t, c, "MaxTokens").Int(); got != 4000 {
		t.Errorf("default max tokens = %d, want 4000", got)
	}
	if got := baseConfigField(t, c, "Temperature").Float(); got != 0.1 {
		t.Errorf("default temperature = %v, want 0.1", got)
	}
}

// TestModelPassedThrough verifies the model from Config is stored
// inside the client.
func TestModelPassedThrough(t *testing.T) {
	cfg := Config{
		Provider: "ollama",
		Model:    "llama3:latest",
	}
	c, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if got := baseConfigField(t, c, "Model").String(); got != "llama3:latest" {
		t.Errorf("model = %q, want %q", got, "llama3:latest")
	}
}

// TestAPIKeyPassedThrough verifies the API key from Config is stored
// inside the client.
func TestAPIKeyPassedThrough(t *testing.T) {
	cfg := Config{
		Provider: "openrouter",
		Model:    "test",
		APIKey:   "sk-test-key-123",
	}
	c, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if got := baseConfigField(t, c, "APIKey").String(); got != "sk-test-key-123" {
		t.Errorf("api key = %q, want %q", got, "sk-test-key-123")
	}
}

func TestNoopUnavailable(t *testing.T) {
	c := NewNoop()

	if _, err := c.Summarize(context.Background(), "anything", Options{}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Summarize error = %v, want ErrUnavailable", err)
	}
	if _, err := c.Analyze(context.Background(), "anything", Options{}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Analyze error = %v, want ErrUnavailable", err)
	}
}
