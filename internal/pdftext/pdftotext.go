// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const pdftotextBinary = "pdftotext"

// PdftotextExtractor shells out to the poppler pdftotext binary. It is the
// fallback for PDFs whose text layer the native backend decodes poorly.
type PdftotextExtractor struct {
	path string
}

// NewPdftotextExtractor resolves the pdftotext binary, from path when
// given or from PATH otherwise.
func NewPdftotextExtractor(path string) (*PdftotextExtractor, error) {
	if path == "" {
		resolved, err := exec.LookPath(pdftotextBinary)
		if err != nil {
			return nil, fmt.Errorf("pdftotext not found in PATH: %w", err)
		}
		path = resolved
	}
	return &PdftotextExtractor{path: path}, nil
}

// Extract runs pdftotext with layout preserved and returns its stdout.
func (e *PdftotextExtractor) Extract(pdfPath string) (string, error) {
	if _, err := os.Stat(pdfPath); err != nil {
		return "", &ExtractionError{Path: pdfPath, Err: err}
	}

	var out, errBuf bytes.Buffer
	cmd := exec.Command(e.path, "-layout", "-enc", "UTF-8", pdfPath, "-")
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(errBuf.String())
		if msg != "" {
			err = fmt.Errorf("%s: %w", msg, err)
		}
		return "", &ExtractionError{Path: pdfPath, Err: err}
	}

	text := strings.TrimSpace(out.String())
	if text == "" {
		return "", &ExtractionError{Path: pdfPath}
	}
	return text, nil
}
