// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/regconv/internal/converter"
	"github.com/mesh-intelligence/regconv/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert one regulation PDF into record files and a database",
	Long: `Convert extracts the text of a regulation PDF, discards the explanatory
appendix, segments the remainder into pasal and ayat citation units, and
writes regulations.json, articles.json, and dataset.yaml to the output
directory. With --build-db it also builds the ojk.db SQLite database with
citation-lookup indexes and full-text search.`,
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	pdfPath, _ := cmd.Flags().GetString("pdf")

	conv, err := converter.New(convertConfigFromFlags(cmd))
	if err != nil {
		return err
	}

	_, err = conv.Convert(context.Background(), pdfPath, metadataFromFlags(cmd), os.Stdout)
	return err
}

// metadataFromFlags collects the caller-supplied instrument metadata.
// Validation happens in the converter so that batch manifests take the
// same path.
func metadataFromFlags(cmd *cobra.Command) converter.Metadata {
	s := func(name string) string { v, _ := cmd.Flags().GetString(name); return v }
	year, _ := cmd.Flags().GetInt("year")

	return converter.Metadata{
		Type:            s("type"),
		Number:          s("number"),
		Title:           s("title"),
		Year:            year,
		EffectiveDate:   s("effective-date"),
		Status:          s("status"),
		ReplacesNumber:  s("replaces"),
		AmendedByNumber: s("amended-by"),
		RevokedByNumber: s("revoked-by"),
		SourceURL:       s("source-url"),
	}
}

// convertConfigFromFlags merges flags with config-file settings. The
// truncation heuristic is config-only: it varies per document corpus,
// not per invocation.
func convertConfigFromFlags(cmd *cobra.Command) types.ConvertConfig {
	backend, _ := cmd.Flags().GetString("backend")
	outDir, _ := cmd.Flags().GetString("outdir")
	buildDB, _ := cmd.Flags().GetBool("build-db")

	return types.ConvertConfig{
		Extraction: types.ExtractionConfig{
			Backend:       types.ExtractionBackend(backend),
			PdftotextPath: viper.GetString("extraction.pdftotext_path"),
		},
		Segment: segmentConfigFromViper(),
		Output: types.OutputConfig{
			OutDir:  outDir,
			BuildDB: buildDB,
		},
	}
}

func segmentConfigFromViper() types.SegmentConfig {
	cfg := types.SegmentConfig{
		PenjelasanPattern: viper.GetString("segment.penjelasan_pattern"),
	}
	if viper.IsSet("segment.stop_on_repeated_pasal") {
		v := viper.GetBool("segment.stop_on_repeated_pasal")
		cfg.StopOnRepeatedPasal = &v
	}
	return cfg
}

func init() {
	convertCmd.Flags().String("pdf", "", "path to the source PDF (required)")
	convertCmd.Flags().String("type", "", "instrument type: POJK or SEOJK")
	convertCmd.Flags().String("number", "", `citation number, e.g. "12/POJK.03/2021"`)
	convertCmd.Flags().String("title", "", "full instrument title")
	convertCmd.Flags().Int("year", 0, "promulgation year")
	convertCmd.Flags().String("effective-date", "", "effective date (YYYY-MM-DD)")
	convertCmd.Flags().String("status", "", "legal standing: active, amended, or revoked (default active)")
	convertCmd.Flags().String("replaces", "", "citation number of the instrument this one replaces")
	convertCmd.Flags().String("amended-by", "", "citation number of the amending instrument")
	convertCmd.Flags().String("revoked-by", "", "citation number of the revoking instrument")
	convertCmd.Flags().String("source-url", "", "URL the PDF was obtained from")
	convertCmd.Flags().String("outdir", "out", "output directory")
	convertCmd.Flags().Bool("build-db", false, "also build the ojk.db SQLite database")
	convertCmd.Flags().String("backend", "native", "extraction backend: native or pdftotext")

	convertCmd.MarkFlagRequired("pdf")

	rootCmd.AddCommand(convertCmd)
}
