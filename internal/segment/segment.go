// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package segment splits normalized regulation text into pasal blocks and
// ayat clauses, truncating the non-normative Penjelasan appendix.
package segment

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/regconv/pkg/types"
)

// Marker regex patterns.
var (
	// pasalRe matches article headings on their own line: "Pasal 12".
	pasalRe = regexp.MustCompile(`(?im)^\s*Pasal\s+(\d+)\s*$`)

	// ayatRe matches clause markers at the start of a line: "(1)", "(2a)".
	ayatRe = regexp.MustCompile(`(?m)^\s*\((\d+[a-z]?)\)\s*`)

	// defaultPenjelasanRe matches the heading of the explanatory appendix.
	defaultPenjelasanRe = regexp.MustCompile(`(?im)^\s*Penjelasan\b.*$`)
)

// Options controls segmentation. The zero value is not usable; call
// DefaultOptions or FromConfig.
type Options struct {
	// PenjelasanRe marks the start of the explanatory appendix. Everything
	// from its first match onward is discarded.
	PenjelasanRe *regexp.Regexp

	// StopOnRepeatedPasal truncates at a second "Pasal 1" heading after
	// the first, the usual start of an unlabeled appendix.
	StopOnRepeatedPasal bool
}

// DefaultOptions returns the standard truncation heuristic.
func DefaultOptions() Options {
	return Options{
		PenjelasanRe:        defaultPenjelasanRe,
		StopOnRepeatedPasal: true,
	}
}

// FromConfig builds Options from a SegmentConfig, compiling any custom
// Penjelasan pattern as case-insensitive multiline.
func FromConfig(cfg types.SegmentConfig) (Options, error) {
	opts := DefaultOptions()

	if cfg.PenjelasanPattern != "" {
		re, err := regexp.Compile(`(?im)` + cfg.PenjelasanPattern)
		if err != nil {
			return Options{}, fmt.Errorf("compiling penjelasan pattern: %w", err)
		}
		opts.PenjelasanRe = re
	}
	if cfg.StopOnRepeatedPasal != nil {
		opts.StopOnRepeatedPasal = *cfg.StopOnRepeatedPasal
	}
	return opts, nil
}

// PasalBlock is one article heading together with the text that follows
// it, up to the next heading.
type PasalBlock struct {
	Number  int
	Content string
}

// Clause is one ayat within a pasal. Label is empty when the pasal has no
// ayat markers.
type Clause struct {
	Label string
	Text  string
}

// Truncate cuts text at the start of the explanatory appendix: the first
// Penjelasan heading match, or the second "Pasal 1" heading when
// StopOnRepeatedPasal is set, whichever comes first.
func Truncate(text string, opts Options) string {
	if opts.PenjelasanRe != nil {
		if loc := opts.PenjelasanRe.FindStringIndex(text); loc != nil {
			text = text[:loc[0]]
		}
	}

	if opts.StopOnRepeatedPasal {
		seen := false
		for _, m := range pasalRe.FindAllStringSubmatchIndex(text, -1) {
			num, _ := strconv.Atoi(text[m[2]:m[3]])
			if num != 1 {
				continue
			}
			if seen {
				text = text[:m[0]]
				break
			}
			seen = true
		}
	}

	return text
}

// SplitPasal truncates the text and splits the remainder into pasal
// blocks in document order. Text with no pasal headings becomes a single
// block numbered 1, so non-standard documents still produce output.
func SplitPasal(text string, opts Options) []PasalBlock {
	text = Truncate(text, opts)

	marks := pasalRe.FindAllStringSubmatchIndex(text, -1)
	if len(marks) == 0 {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			return []PasalBlock{{Number: 1, Content: trimmed}}
		}
		return nil
	}

	var blocks []PasalBlock
	for i, m := range marks {
		num, _ := strconv.Atoi(text[m[2]:m[3]])

		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		content := strings.TrimSpace(text[m[1]:end])
		if content == "" {
			continue
		}
		blocks = append(blocks, PasalBlock{Number: num, Content: content})
	}
	return blocks
}

// SplitAyat splits a pasal body on ayat markers. A body with no markers
// yields a single unlabeled clause.
func SplitAyat(content string) []Clause {
	marks := ayatRe.FindAllStringSubmatchIndex(content, -1)
	if len(marks) == 0 {
		if trimmed := strings.TrimSpace(content); trimmed != "" {
			return []Clause{{Text: trimmed}}
		}
		return nil
	}

	var clauses []Clause
	for i, m := range marks {
		end := len(content)
		if i+1 < len(marks) {
			end = marks[i+1][0]
		}
		text := strings.TrimSpace(content[m[1]:end])
		if text == "" {
			continue
		}
		clauses = append(clauses, Clause{
			Label: content[m[2]:m[3]],
			Text:  text,
		})
	}
	return clauses
}
