// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package converter

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/mesh-intelligence/regconv/pkg/types"
)

// ValidationError reports caller-supplied metadata that is missing or
// malformed. It is terminal for the run; no output files are produced.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid metadata: %s %s", e.Field, e.Reason)
}

// Metadata is the caller-supplied description of the instrument being
// converted. Type, Number, Title, and Year are required.
type Metadata struct {
	Type   string `yaml:"type"`
	Number string `yaml:"number"`
	Title  string `yaml:"title"`
	Year   int    `yaml:"year"`

	EffectiveDate   string `yaml:"effective_date,omitempty"`
	Status          string `yaml:"status,omitempty"`
	ReplacesNumber  string `yaml:"replaces,omitempty"`
	AmendedByNumber string `yaml:"amended_by,omitempty"`
	RevokedByNumber string `yaml:"revoked_by,omitempty"`
	SourceURL       string `yaml:"source_url,omitempty"`
}

// Regulation validates the metadata and builds the Regulation record,
// deriving the stable identifier from type, number, and year.
func (m Metadata) Regulation(pdfPath string) (types.Regulation, error) {
	typ, err := m.validate()
	if err != nil {
		return types.Regulation{}, err
	}

	status := types.RegulationStatus(m.Status)
	if m.Status == "" {
		status = types.StatusActive
	}

	return types.Regulation{
		ID:              types.RegulationID(typ, m.Number, m.Year),
		Type:            typ,
		Number:          strings.TrimSpace(m.Number),
		Title:           strings.TrimSpace(m.Title),
		Year:            m.Year,
		EffectiveDate:   m.EffectiveDate,
		Status:          status,
		ReplacesNumber:  m.ReplacesNumber,
		AmendedByNumber: m.AmendedByNumber,
		RevokedByNumber: m.RevokedByNumber,
		SourceURL:       m.SourceURL,
		PDFPath:         filepath.Base(pdfPath),
	}, nil
}

func (m Metadata) validate() (types.RegulationType, error) {
	if strings.TrimSpace(m.Type) == "" {
		return "", &ValidationError{Field: "type", Reason: "is required"}
	}
	typ, err := types.ParseRegulationType(m.Type)
	if err != nil {
		return "", &ValidationError{Field: "type", Reason: err.Error()}
	}

	if strings.TrimSpace(m.Number) == "" {
		return "", &ValidationError{Field: "number", Reason: "is required"}
	}
	if strings.TrimSpace(m.Title) == "" {
		return "", &ValidationError{Field: "title", Reason: "is required"}
	}
	if m.Year <= 0 {
		return "", &ValidationError{Field: "year", Reason: "is required"}
	}

	if m.EffectiveDate != "" {
		if _, err := time.Parse("2006-01-02", m.EffectiveDate); err != nil {
			return "", &ValidationError{Field: "effective-date", Reason: "must be YYYY-MM-DD"}
		}
	}

	switch types.RegulationStatus(m.Status) {
	case "", types.StatusActive, types.StatusAmended, types.StatusRevoked:
	default:
		return "", &ValidationError{Field: "status", Reason: "must be active, amended, or revoked"}
	}

	return typ, nil
}
