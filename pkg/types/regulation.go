// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"regexp"
	"strings"
)

// RegulationType categorizes a regulatory instrument.
type RegulationType string

const (
	// TypePOJK is a regulation issued by the financial services authority.
	TypePOJK RegulationType = "POJK"
	// TypeSEOJK is a circular letter issued by the same authority.
	TypeSEOJK RegulationType = "SEOJK"
)

// ParseRegulationType validates and normalizes a type tag supplied on the
// command line. Matching is case-insensitive.
func ParseRegulationType(s string) (RegulationType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(TypePOJK):
		return TypePOJK, nil
	case string(TypeSEOJK):
		return TypeSEOJK, nil
	default:
		return "", fmt.Errorf("unknown regulation type %q (want POJK or SEOJK)", s)
	}
}

// RegulationStatus tracks the legal standing of a regulation.
type RegulationStatus string

const (
	StatusActive  RegulationStatus = "active"
	StatusAmended RegulationStatus = "amended"
	StatusRevoked RegulationStatus = "revoked"
)

// Regulation holds the metadata for one legal instrument. One record is
// produced per conversion run; it is never updated after being written.
type Regulation struct {
	// ID is a slug derived from type, number, and year
	// (e.g. "pojk-12-pojk-03-2021"). Stable across re-conversions.
	ID string `json:"id" yaml:"id"`

	// Type is the instrument category: POJK or SEOJK.
	Type RegulationType `json:"type" yaml:"type"`

	// Number is the citation number as printed on the instrument
	// (e.g. "12/POJK.03/2021").
	Number string `json:"number_text" yaml:"number_text"`

	// Title is the full title of the instrument.
	Title string `json:"title" yaml:"title"`

	// Year is the promulgation year.
	Year int `json:"year" yaml:"year"`

	// EffectiveDate is the date the instrument takes effect (YYYY-MM-DD),
	// when known.
	EffectiveDate string `json:"effective_date,omitempty" yaml:"effective_date,omitempty"`

	// Status is the legal standing: active, amended, or revoked.
	Status RegulationStatus `json:"status" yaml:"status"`

	// ReplacesNumber cites the instrument this one replaces, if any.
	ReplacesNumber string `json:"replaces_number,omitempty" yaml:"replaces_number,omitempty"`

	// AmendedByNumber cites the instrument that amends this one, if any.
	AmendedByNumber string `json:"amended_by_number,omitempty" yaml:"amended_by_number,omitempty"`

	// RevokedByNumber cites the instrument that revokes this one, if any.
	RevokedByNumber string `json:"revoked_by_number,omitempty" yaml:"revoked_by_number,omitempty"`

	// SourceURL is where the PDF was obtained, when known.
	SourceURL string `json:"source_url,omitempty" yaml:"source_url,omitempty"`

	// PDFPath is the basename of the source PDF.
	PDFPath string `json:"pdf_path" yaml:"pdf_path"`
}

// slugRe collapses runs of non-alphanumeric characters when deriving IDs.
var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// RegulationID derives the stable identifier for a regulation from its
// type, citation number, and year. The same inputs always produce the
// same ID, so repeated conversions of one instrument are idempotent.
func RegulationID(typ RegulationType, number string, year int) string {
	raw := strings.ToLower(fmt.Sprintf("%s-%s-%d", typ, number, year))
	slug := slugRe.ReplaceAllString(raw, "-")
	return strings.Trim(slug, "-")
}

// Article is one addressable citation unit: a pasal, or a single ayat
// within a pasal. Articles belong to exactly one Regulation and are
// numbered 1..N in document order.
type Article struct {
	// ID is the 1-based position of the article in document order.
	ID int `json:"id" yaml:"id"`

	// RegulationID references the owning Regulation.
	RegulationID string `json:"regulation_id" yaml:"regulation_id"`

	// Pasal is the article number from the "Pasal N" heading.
	Pasal int `json:"pasal" yaml:"pasal"`

	// Ayat is the sub-clause label from a "(N)" marker, empty when the
	// pasal has no ayat subdivisions.
	Ayat string `json:"ayat,omitempty" yaml:"ayat,omitempty"`

	// Text is the extracted body of the citation unit.
	Text string `json:"text" yaml:"text"`
}

// Dataset bundles the full output of one conversion run.
type Dataset struct {
	Regulation Regulation `json:"regulation" yaml:"regulation"`
	Articles   []Article  `json:"articles" yaml:"articles"`
}
