package docsummary

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDocuments is returned when a cross-reference batch has no paths.
	ErrNoDocuments = errors.New("docsummary: no documents to analyze")

	// ErrInvalidConfig is returned for invalid configuration values.
	ErrInvalidConfig = errors.New("docsummary: invalid configuration")
)

// AnalysisError wraps a failure while analyzing a single document, keeping
// the path for diagnostics. errors.Is and errors.As reach the cause.
type AnalysisError struct {
	Path string
	Err  error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analyzing %s: %v", e.Path, e.Err)
}

func (e *AnalysisError) Unwrap() error { return e.Err }
