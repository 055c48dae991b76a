// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts the text layer from regulation PDFs with
// pluggable backends. Line boundaries are preserved so that downstream
// segmentation can detect "Pasal N" headings.
package pdftext

import (
	"fmt"

	"github.com/mesh-intelligence/regconv/pkg/types"
)

// Extractor reads a PDF file and returns its text in document order.
// Different backends (native, pdftotext) implement this interface.
type Extractor interface {
	// Extract reads the PDF at pdfPath and returns the extracted text.
	Extract(pdfPath string) (string, error)
}

// ExtractionError reports a PDF that cannot be opened or yields no
// extractable text. It is terminal for the run.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("extracting %s: no extractable text", e.Path)
	}
	return fmt.Sprintf("extracting %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// NewExtractor builds the extractor selected by cfg.Backend. An empty
// backend defaults to native.
func NewExtractor(cfg types.ExtractionConfig) (Extractor, error) {
	switch cfg.Backend {
	case types.BackendNative, "":
		return &NativeExtractor{}, nil
	case types.BackendPdftotext:
		return NewPdftotextExtractor(cfg.PdftotextPath)
	default:
		return nil, fmt.Errorf("unknown extraction backend %q (want native or pdftotext)", cfg.Backend)
	}
}
