// Package study defines the imaging study records browsed by cli-studies and
// the fixed catalogue they are loaded from.
//
// Records are immutable values. The collection keeps insertion order, which
// is the default display order; nothing in this package sorts. UI state such
// as which rows are expanded is owned by the caller and keyed by Record.ID.
package study

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date layout used for study dates and filter
// bounds.
const DateLayout = "2006-01-02"

// Record is one imaging study.
type Record struct {
	ID              string
	PatientName     string
	MRN             string
	StudyDate       time.Time // calendar date at UTC midnight
	Description     string
	Modality        Modality
	AccessionNumber string
	InstanceCount   int
}

// DateString formats the study date as YYYY-MM-DD.
func (r Record) DateString() string {
	if r.StudyDate.IsZero() {
		return ""
	}
	return r.StudyDate.Format(DateLayout)
}

// Series is one series row shown in a study's detail panel and in the
// viewer's thumbnail strip.
type Series struct {
	Number        int
	Description   string
	Modality      Modality
	InstanceCount int
}

// ParseDate parses a YYYY-MM-DD calendar date as UTC midnight. Surrounding
// whitespace is ignored.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.UTC)
}

// Collection is the ordered set of studies plus the series shown for them.
type Collection struct {
	records []Record
	index   map[string]int
	series  []Series
}

// Records returns the studies in insertion order. The slice is a copy.
func (c *Collection) Records() []Record {
	if c == nil {
		return nil
	}
	return append([]Record(nil), c.records...)
}

// Len returns the number of studies.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Lookup returns the study with the given ID.
func (c *Collection) Lookup(id string) (Record, bool) {
	if c == nil {
		return Record{}, false
	}
	i, ok := c.index[id]
	if !ok {
		return Record{}, false
	}
	return c.records[i], true
}

// Series returns the series list displayed for the study with the given ID.
// The mock catalogue shares one list across all studies.
func (c *Collection) Series(id string) []Series {
	if _, ok := c.Lookup(id); !ok {
		return nil
	}
	return append([]Series(nil), c.series...)
}
