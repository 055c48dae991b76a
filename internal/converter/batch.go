// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package converter

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ManifestEntry describes one document in a batch manifest.
type ManifestEntry struct {
	// PDF is the path to the source PDF, relative paths resolved against
	// the manifest location.
	PDF string `yaml:"pdf"`

	Metadata `yaml:",inline"`

	// OutDir overrides the output directory for this document. Empty
	// derives a directory from the regulation identifier under the
	// converter's base output directory.
	OutDir string `yaml:"outdir,omitempty"`
}

// Manifest lists the documents for a batch conversion run.
type Manifest struct {
	Documents []ManifestEntry `yaml:"documents"`
}

// LoadManifest reads and parses a batch manifest YAML file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if len(m.Documents) == 0 {
		return nil, fmt.Errorf("manifest %s lists no documents", path)
	}

	// Resolve PDF paths relative to the manifest.
	base := filepath.Dir(path)
	for i := range m.Documents {
		if m.Documents[i].PDF != "" && !filepath.IsAbs(m.Documents[i].PDF) {
			m.Documents[i].PDF = filepath.Join(base, m.Documents[i].PDF)
		}
	}

	return &m, nil
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Failed    int
}

// Total returns the number of documents processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any documents failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ConvertBatch processes every manifest entry sequentially, printing
// per-document status to w and returning a summary. Documents are
// independent; one failure does not stop the run.
func (c *Converter) ConvertBatch(ctx context.Context, m *Manifest, w io.Writer) BatchResult {
	var result BatchResult

	for _, entry := range m.Documents {
		name := filepath.Base(entry.PDF)

		cc := *c
		cc.output.OutDir = entry.OutDir
		if cc.output.OutDir == "" {
			reg, err := entry.Metadata.Regulation(entry.PDF)
			if err != nil {
				fmt.Fprintf(w, "failed:    %s (%v)\n", name, err)
				result.Failed++
				continue
			}
			cc.output.OutDir = filepath.Join(c.output.OutDir, reg.ID)
		}

		if _, err := cc.Convert(ctx, entry.PDF, entry.Metadata, w); err != nil {
			fmt.Fprintf(w, "failed:    %s (%v)\n", name, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "converted: %s -> %s\n", name, cc.output.OutDir)
		result.Converted++
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result
}
