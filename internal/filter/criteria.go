// Package filter implements the study filter engine: a set of criteria
// evaluated against an ordered study collection.
//
// Evaluation is a pure function of the criteria and the input slice. The
// result is always a subsequence of the input in its original order. Free-text
// fields match as case-insensitive substrings, modality matches exactly and
// the two date bounds are inclusive. A date bound that cannot be parsed is
// ignored for that evaluation and reported as an INVALID_DATE diagnostic.
package filter

import (
	"strings"

	"github.com/treykane/cli-studies/internal/errors"
	"github.com/treykane/cli-studies/internal/study"
)

// Field identifies one filter input.
type Field int

const (
	FieldPatientName Field = iota
	FieldMRN
	FieldStartDate
	FieldEndDate
	FieldDescription
	FieldModality
	FieldAccessionNumber
)

var fieldNames = map[Field]string{
	FieldPatientName:     "Patient Name",
	FieldMRN:             "MRN",
	FieldStartDate:       "Study Date",
	FieldEndDate:         "End Date",
	FieldDescription:     "Description",
	FieldModality:        "Modality",
	FieldAccessionNumber: "Accession #",
}

// Fields returns every field in form order.
func Fields() []Field {
	return []Field{
		FieldPatientName,
		FieldMRN,
		FieldStartDate,
		FieldEndDate,
		FieldDescription,
		FieldModality,
		FieldAccessionNumber,
	}
}

// String returns the form label of the field.
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "Unknown"
}

// IsDate reports whether the field holds a calendar-date bound.
func (f Field) IsDate() bool {
	return f == FieldStartDate || f == FieldEndDate
}

// Criteria is the set of active constraints. The zero value matches every
// study.
type Criteria struct {
	PatientName     string
	MRN             string
	Description     string
	AccessionNumber string
	Modality        study.Modality
	StartDate       string // YYYY-MM-DD, inclusive
	EndDate         string // YYYY-MM-DD, inclusive
}

// Clear returns criteria with every field reset to its empty value.
func Clear() Criteria {
	return Criteria{}
}

// HasActiveFilters reports whether at least one field is non-empty.
func (c Criteria) HasActiveFilters() bool {
	for _, f := range Fields() {
		if c.Value(f) != "" {
			return true
		}
	}
	return false
}

// Value returns the raw value of a field.
func (c Criteria) Value(f Field) string {
	switch f {
	case FieldPatientName:
		return c.PatientName
	case FieldMRN:
		return c.MRN
	case FieldStartDate:
		return c.StartDate
	case FieldEndDate:
		return c.EndDate
	case FieldDescription:
		return c.Description
	case FieldModality:
		return string(c.Modality)
	case FieldAccessionNumber:
		return c.AccessionNumber
	default:
		return ""
	}
}

// With returns a copy of c with one field replaced. Modality values are
// validated against the closed modality set; on error c is returned
// unchanged. Date strings are stored as typed and only parsed on evaluation,
// so a half-typed date never blocks editing.
func (c Criteria) With(f Field, value string) (Criteria, error) {
	next := c
	switch f {
	case FieldPatientName:
		next.PatientName = value
	case FieldMRN:
		next.MRN = value
	case FieldStartDate:
		next.StartDate = value
	case FieldEndDate:
		next.EndDate = value
	case FieldDescription:
		next.Description = value
	case FieldModality:
		m, err := study.ParseModality(value)
		if err != nil {
			return c, err
		}
		next.Modality = m
	case FieldAccessionNumber:
		next.AccessionNumber = value
	default:
		return c, errors.New(errors.ErrCodeUnknownField, "unknown filter field %d", int(f))
	}
	return next, nil
}

// Summary renders the active fields as "label=value" pairs for logs and the
// status bar.
func (c Criteria) Summary() string {
	parts := make([]string, 0, len(fieldNames))
	for _, f := range Fields() {
		if v := c.Value(f); v != "" {
			parts = append(parts, f.String()+"="+v)
		}
	}
	return strings.Join(parts, " ")
}
