// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// NativeExtractor extracts the embedded text layer in-process. Scanned
// (image-only) PDFs have no text layer and yield an ExtractionError.
type NativeExtractor struct{}

// Extract reads every page of the PDF and returns its text with one line
// per rendered text row. Pages that cannot be decoded are skipped; if no
// page yields text the whole extraction fails.
func (e *NativeExtractor) Extract(pdfPath string) (string, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", &ExtractionError{Path: pdfPath, Err: err}
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		rows, err := p.GetTextByRow()
		if err != nil {
			continue
		}

		for _, row := range rows {
			var line strings.Builder
			for _, word := range row.Content {
				line.WriteString(word.S)
			}
			if s := strings.TrimSpace(line.String()); s != "" {
				b.WriteString(s)
				b.WriteByte('\n')
			}
		}
		b.WriteByte('\n')
	}

	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", &ExtractionError{Path: pdfPath}
	}
	return text, nil
}
