// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package converter turns one regulation PDF plus caller-supplied
// metadata into the record files and embedded database consumed by the
// offline viewer. A conversion run is a one-shot, stateless transform;
// output files are overwritten, never merged.
package converter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/mesh-intelligence/regconv/internal/pdftext"
	"github.com/mesh-intelligence/regconv/internal/regdb"
	"github.com/mesh-intelligence/regconv/internal/segment"
	"github.com/mesh-intelligence/regconv/pkg/types"
)

const (
	// RegulationsFile lists the Regulation records in the output directory.
	RegulationsFile = "regulations.json"
	// ArticlesFile lists the Article records in the output directory.
	ArticlesFile = "articles.json"
	// DatasetFile is the combined YAML export of both record sets.
	DatasetFile = "dataset.yaml"
)

// Converter runs the conversion pipeline: extract, truncate, segment,
// persist.
type Converter struct {
	extractor pdftext.Extractor
	opts      segment.Options
	output    types.OutputConfig
}

// New builds a Converter from configuration.
func New(cfg types.ConvertConfig) (*Converter, error) {
	extractor, err := pdftext.NewExtractor(cfg.Extraction)
	if err != nil {
		return nil, err
	}
	opts, err := segment.FromConfig(cfg.Segment)
	if err != nil {
		return nil, err
	}

	out := cfg.Output
	if out.OutDir == "" {
		out.OutDir = "out"
	}

	return &Converter{
		extractor: extractor,
		opts:      opts,
		output:    out,
	}, nil
}

// Result holds the outcome of a single conversion run.
type Result struct {
	Regulation types.Regulation
	Articles   []types.Article

	// Paths of the files written, database path empty unless built.
	RegulationsPath string
	ArticlesPath    string
	DatasetPath     string
	DatabasePath    string

	// Warnings are non-fatal conditions surfaced to the operator.
	Warnings []string
}

// Convert runs the full pipeline for one PDF. Metadata is validated
// before any file is touched, so a ValidationError never leaves partial
// output behind. Zero detected articles is a warning, not a failure.
func (c *Converter) Convert(ctx context.Context, pdfPath string, meta Metadata, w io.Writer) (*Result, error) {
	reg, err := meta.Regulation(pdfPath)
	if err != nil {
		return nil, err
	}

	raw, err := c.extractor.Extract(pdfPath)
	if err != nil {
		return nil, err
	}

	articles := BuildArticles(reg.ID, raw, c.opts)

	result := &Result{Regulation: reg, Articles: articles}
	if len(articles) == 0 {
		warning := fmt.Sprintf("no articles detected in %s; writing an empty article set", filepath.Base(pdfPath))
		result.Warnings = append(result.Warnings, warning)
		fmt.Fprintf(w, "warning: %s\n", warning)
	}

	if err := c.writeRecords(result, w); err != nil {
		return nil, err
	}

	if c.output.BuildDB {
		dbPath := filepath.Join(c.output.OutDir, regdb.DatabaseFile)
		if err := buildDatabase(ctx, dbPath, reg, articles); err != nil {
			return nil, err
		}
		result.DatabasePath = dbPath
		fmt.Fprintf(w, "built %s\n", dbPath)
	}

	return result, nil
}

// BuildArticles normalizes and segments extracted text into Article
// records in citation order, with ids 1..N.
func BuildArticles(regulationID, raw string, opts segment.Options) []types.Article {
	text := segment.Normalize(raw)

	var articles []types.Article
	for _, block := range segment.SplitPasal(text, opts) {
		for _, clause := range segment.SplitAyat(block.Content) {
			articles = append(articles, types.Article{
				ID:           len(articles) + 1,
				RegulationID: regulationID,
				Pasal:        block.Number,
				Ayat:         clause.Label,
				Text:         clause.Text,
			})
		}
	}
	return articles
}

// writeRecords writes the JSON record files and the YAML dataset export.
// Output bytes are deterministic so re-converting the same instrument
// yields identical files.
func (c *Converter) writeRecords(result *Result, w io.Writer) error {
	if err := os.MkdirAll(c.output.OutDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	regsPath := filepath.Join(c.output.OutDir, RegulationsFile)
	if err := writeJSON(regsPath, []types.Regulation{result.Regulation}); err != nil {
		return err
	}
	result.RegulationsPath = regsPath
	fmt.Fprintf(w, "wrote %s (1 record)\n", regsPath)

	articles := result.Articles
	if articles == nil {
		articles = []types.Article{}
	}
	artsPath := filepath.Join(c.output.OutDir, ArticlesFile)
	if err := writeJSON(artsPath, articles); err != nil {
		return err
	}
	result.ArticlesPath = artsPath
	fmt.Fprintf(w, "wrote %s (%d records)\n", artsPath, len(articles))

	dataset := types.Dataset{Regulation: result.Regulation, Articles: articles}
	data, err := yaml.Marshal(&dataset)
	if err != nil {
		return fmt.Errorf("marshaling dataset: %w", err)
	}
	dsPath := filepath.Join(c.output.OutDir, DatasetFile)
	if err := os.WriteFile(dsPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dsPath, err)
	}
	result.DatasetPath = dsPath
	fmt.Fprintf(w, "wrote %s\n", dsPath)

	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func buildDatabase(ctx context.Context, dbPath string, reg types.Regulation, articles []types.Article) error {
	store, err := regdb.Create(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Insert(ctx, reg, articles)
}
