package filter

import (
	stderrors "errors"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/treykane/cli-studies/internal/errors"
	"github.com/treykane/cli-studies/internal/study"
)

// Matcher is a compiled form of Criteria. It is not safe for concurrent use.
type Matcher struct {
	fold     cases.Caser
	text     []textTerm
	modality study.Modality
	start    time.Time
	hasStart bool
	end      time.Time
	hasEnd   bool
}

type textTerm struct {
	needle string
	field  func(study.Record) string
}

// Compile folds the text criteria and parses the date bounds once. A bound
// that fails to parse is left out of the matcher and reported in the
// returned error (code INVALID_DATE); the matcher is usable either way.
func Compile(c Criteria) (Matcher, error) {
	m := Matcher{
		fold:     cases.Fold(),
		modality: c.Modality,
	}

	m.addText(c.PatientName, func(r study.Record) string { return r.PatientName })
	m.addText(c.MRN, func(r study.Record) string { return r.MRN })
	m.addText(c.Description, func(r study.Record) string { return r.Description })
	m.addText(c.AccessionNumber, func(r study.Record) string { return r.AccessionNumber })

	var diags []error
	if c.StartDate != "" {
		t, err := study.ParseDate(c.StartDate)
		if err != nil {
			diags = append(diags, errors.Wrap(errors.ErrCodeInvalidDate, err, "ignoring start date %q", c.StartDate))
		} else {
			m.start, m.hasStart = t, true
		}
	}
	if c.EndDate != "" {
		t, err := study.ParseDate(c.EndDate)
		if err != nil {
			diags = append(diags, errors.Wrap(errors.ErrCodeInvalidDate, err, "ignoring end date %q", c.EndDate))
		} else {
			m.end, m.hasEnd = t, true
		}
	}

	return m, stderrors.Join(diags...)
}

func (m *Matcher) addText(value string, field func(study.Record) string) {
	if value == "" {
		return
	}
	m.text = append(m.text, textTerm{needle: m.fold.String(value), field: field})
}

// Match reports whether r satisfies every constraint.
func (m Matcher) Match(r study.Record) bool {
	if m.modality != "" && r.Modality != m.modality {
		return false
	}
	if m.hasStart || m.hasEnd {
		day := calendarDay(r.StudyDate)
		if m.hasStart && day.Before(m.start) {
			return false
		}
		if m.hasEnd && day.After(m.end) {
			return false
		}
	}
	for _, term := range m.text {
		if !strings.Contains(m.fold.String(term.field(r)), term.needle) {
			return false
		}
	}
	return true
}

// Evaluate returns the studies matching c, in their original order.
//
// The result is valid even when err is non-nil: err only carries
// INVALID_DATE diagnostics for bounds that were ignored. A nil collection
// yields a nil result.
func Evaluate(c Criteria, studies []study.Record) ([]study.Record, error) {
	m, err := Compile(c)
	if studies == nil {
		return nil, err
	}
	out := make([]study.Record, 0, len(studies))
	for _, r := range studies {
		if m.Match(r) {
			out = append(out, r)
		}
	}
	return out, err
}

// calendarDay truncates t to midnight UTC so bounds compare by date only.
func calendarDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
