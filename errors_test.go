package docsummary

import (
	"errors"
	"fmt"
	"testing"

	"github.com/krish-jayaratne/MultiDoc-LLM-Summary-Tool/reader"
)

func TestAnalysisErrorMessage(t *testing.T) {
	err := &AnalysisError{Path: "a.txt", Err: reader.ErrNotFound}
	want := "analyzing a.txt: reader: file not found"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestAnalysisErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("%w: contract.pdf", reader.ErrNotFound)
	err := error(&AnalysisError{Path: "contract.pdf", Err: cause})

	if !errors.Is(err, reader.ErrNotFound) {
		t.Errorf("errors.Is(ErrNotFound) = false, want true")
	}

	wrapped := fmt.Errorf("batch item 2: %w", err)
	var ae *AnalysisError
	if !errors.As(wrapped, &ae) {
		t.Fatalf("errors.As through an outer wrap failed")
	}
	if ae.Path != "contract.pdf" {
		t.Errorf("path = %q, want contract.pdf", ae.Path)
	}
}
