package docsummary

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/krish-jayaratne/MultiDoc-LLM-Summary-Tool/extract"
	"github.com/krish-jayaratne/MultiDoc-LLM-Summary-Tool/llm"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the document analyzer.
type Config struct {
	// LLM configures the enrichment provider. The zero value selects the
	// no-op provider, which keeps the analyzer fully functional without
	// network access: enrichment reports unavailability and heuristic
	// extraction carries the result.
	LLM llm.Config `json:"llm" yaml:"llm"`

	// DescriptionLimit caps the heuristic description length in characters.
	// Defaults to extract.DefaultDescriptionLimit.
	DescriptionLimit int `json:"description_limit" yaml:"description_limit"`

	// PreviewLimit caps the content preview attached to analysis results.
	// Defaults to extract.DefaultPreviewLimit.
	PreviewLimit int `json:"preview_limit" yaml:"preview_limit"`

	// CacheSize is the number of extracted records kept in the in-process
	// LRU cache. Zero disables caching.
	CacheSize int `json:"cache_size" yaml:"cache_size"`

	// TextExtensions overrides the extensions handled as plain text.
	// Defaults to .txt, .md, .rst, .log.
	TextExtensions []string `json:"text_extensions" yaml:"text_extensions"`

	// LogLevel is one of debug, info, warn, error. Defaults to info.
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults: heuristic-only
// analysis with a small record cache and no LLM provider. Provider-specific
// model defaults apply once a real provider is configured.
func DefaultConfig() Config {
	return Config{
		LLM:              llm.Config{Provider: "noop"},
		DescriptionLimit: extract.DefaultDescriptionLimit,
		PreviewLimit:     extract.DefaultPreviewLimit,
		CacheSize:        128,
		LogLevel:         "info",
	}
}

// LoadConfig reads a YAML configuration file over the defaults, so omitted
// keys keep their default values. On failure the defaults are returned
// alongside the error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// FromEnv builds a Config from environment variables, loading a .env file
// first when one is present. Unset variables keep their defaults.
//
//	DOCSUMMARY_LLM_PROVIDER   provider name (openai, ollama, gemini, ...)
//	DOCSUMMARY_LLM_MODEL      model identifier
//	DOCSUMMARY_LLM_BASE_URL   provider endpoint override
//	OPENAI_API_KEY            API key (OPENAI_KEY also accepted)
//	DOCSUMMARY_CACHE_SIZE     record cache size
//	DOCSUMMARY_LOG_LEVEL      debug, info, warn, error
func FromEnv() Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if v := os.Getenv("DOCSUMMARY_LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("DOCSUMMARY_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("DOCSUMMARY_LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("OPENAI_KEY"); v != "" && cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("DOCSUMMARY_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.CacheSize = n
		}
	}
	if v := os.Getenv("DOCSUMMARY_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}

// SlogLevel maps LogLevel onto its slog.Level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
