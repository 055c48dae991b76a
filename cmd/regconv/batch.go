// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/regconv/internal/converter"
	"github.com/mesh-intelligence/regconv/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Convert every document listed in a YAML manifest",
	Long: `Batch reads a YAML manifest listing documents with their metadata and
converts each one into its own output directory under --outdir. Documents
are independent: one failure does not stop the run, but any failure makes
the command exit non-zero.

Manifest format:

  documents:
    - pdf: pojk_12_2021.pdf
      type: POJK
      number: "12/POJK.03/2021"
      title: "Peraturan OJK tentang X"
      year: 2021`,
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	manifestPath, _ := cmd.Flags().GetString("manifest")
	outDir, _ := cmd.Flags().GetString("outdir")
	buildDB, _ := cmd.Flags().GetBool("build-db")
	backend, _ := cmd.Flags().GetString("backend")

	manifest, err := converter.LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	conv, err := converter.New(types.ConvertConfig{
		Extraction: types.ExtractionConfig{
			Backend:       types.ExtractionBackend(backend),
			PdftotextPath: viper.GetString("extraction.pdftotext_path"),
		},
		Segment: segmentConfigFromViper(),
		Output: types.OutputConfig{
			OutDir:  outDir,
			BuildDB: buildDB,
		},
	})
	if err != nil {
		return err
	}

	result := conv.ConvertBatch(context.Background(), manifest, os.Stdout)
	if result.HasFailures() {
		return fmt.Errorf("%d document(s) failed conversion", result.Failed)
	}
	return nil
}

func init() {
	batchCmd.Flags().String("manifest", "", "path to the batch manifest YAML (required)")
	batchCmd.Flags().String("outdir", "out", "base output directory; each document gets a subdirectory")
	batchCmd.Flags().Bool("build-db", false, "also build an ojk.db database per document")
	batchCmd.Flags().String("backend", "native", "extraction backend: native or pdftotext")

	batchCmd.MarkFlagRequired("manifest")

	rootCmd.AddCommand(batchCmd)
}
