// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import "regexp"

// Normalization patterns. Regulation PDFs carry page numbers on their own
// lines and hyphenate words across line breaks; both break marker
// detection if left in place.
var (
	crlfRe        = regexp.MustCompile(`\r\n?`)
	pageNumberRe  = regexp.MustCompile(`(?m)^\s*\d+\s*$`)
	hyphenBreakRe = regexp.MustCompile(`(\pL)-\n(\pL)`)
	blankRunRe    = regexp.MustCompile(`\n{3,}`)
)

// Normalize prepares raw extracted text for segmentation: line endings
// are folded to \n, page-number-only lines are dropped, words hyphenated
// across line breaks are rejoined, and runs of blank lines are collapsed.
func Normalize(raw string) string {
	s := crlfRe.ReplaceAllString(raw, "\n")
	s = pageNumberRe.ReplaceAllString(s, "")
	s = hyphenBreakRe.ReplaceAllString(s, "$1$2")
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return s
}
