// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractionBackend identifies the PDF text extraction backend.
type ExtractionBackend string

const (
	// BackendNative extracts the embedded text layer in-process.
	BackendNative ExtractionBackend = "native"
	// BackendPdftotext shells out to the poppler pdftotext binary.
	BackendPdftotext ExtractionBackend = "pdftotext"
)

// ExtractionConfig holds settings for the PDF text extraction stage.
type ExtractionConfig struct {
	// Backend selects the extraction backend: native or pdftotext.
	Backend ExtractionBackend `json:"backend" yaml:"backend"`

	// PdftotextPath overrides the pdftotext binary location. Empty means
	// resolve from PATH.
	PdftotextPath string `json:"pdftotext_path,omitempty" yaml:"pdftotext_path,omitempty"`
}

// SegmentConfig holds settings for article segmentation. The truncation
// heuristic is deliberately overridable: explanatory-appendix formatting
// varies between instruments.
type SegmentConfig struct {
	// PenjelasanPattern is the regular expression marking the start of the
	// explanatory appendix. Empty uses the built-in default.
	PenjelasanPattern string `json:"penjelasan_pattern,omitempty" yaml:"penjelasan_pattern,omitempty"`

	// StopOnRepeatedPasal truncates at a second "Pasal 1" heading, the
	// usual start of an unlabeled explanatory appendix. Default true.
	StopOnRepeatedPasal *bool `json:"stop_on_repeated_pasal,omitempty" yaml:"stop_on_repeated_pasal,omitempty"`
}

// OutputConfig holds settings for the conversion output stage.
type OutputConfig struct {
	// OutDir is the directory that receives all output files.
	OutDir string `json:"outdir" yaml:"outdir"`

	// BuildDB controls whether the SQLite database is built in addition
	// to the record files.
	BuildDB bool `json:"build_db" yaml:"build_db"`
}

// ConvertConfig groups all stage configurations for a conversion run.
type ConvertConfig struct {
	Extraction ExtractionConfig `json:"extraction" yaml:"extraction"`
	Segment    SegmentConfig    `json:"segment" yaml:"segment"`
	Output     OutputConfig     `json:"output" yaml:"output"`
}

// QueryConfig holds settings for querying a built database.
type QueryConfig struct {
	// DatabasePath is the path to the SQLite database file.
	DatabasePath string `json:"database_path" yaml:"database_path"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
