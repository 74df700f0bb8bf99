package app

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/treykane/cli-studies/internal/errors"
	"github.com/treykane/cli-studies/internal/filter"
	"github.com/treykane/cli-studies/internal/study"
)

// modalityAll is the display label of the empty modality constraint.
const modalityAll = "All"

var filterPlaceholders = map[filter.Field]string{
	filter.FieldPatientName:     "name",
	filter.FieldMRN:             "mrn",
	filter.FieldStartDate:       "YYYY-MM-DD",
	filter.FieldEndDate:         "YYYY-MM-DD",
	filter.FieldDescription:     "description",
	filter.FieldAccessionNumber: "accession",
}

// newFilterInputs builds one text input per filter field. The modality slot
// is kept for indexing but never focused; modality cycles instead of taking
// text.
func newFilterInputs() []textinput.Model {
	fields := filter.Fields()
	inputs := make([]textinput.Model, len(fields))
	for _, f := range fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = filterPlaceholders[f]
		in.CharLimit = InputCharLimit
		in.Width = FilterInputWidth
		if f.IsDate() {
			in.CharLimit = len(study.DateLayout)
		}
		inputs[f] = in
	}
	return inputs
}

// focusFilter moves keyboard focus to one form field.
func (m *Model) focusFilter(f filter.Field) tea.Cmd {
	m.blurFilters()
	m.filterFocus = int(f)
	if f == filter.FieldModality {
		return nil
	}
	return m.inputs[f].Focus()
}

func (m *Model) blurFilters() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.filterFocus = noFilterFocus
}

// focusedField returns the focused form field, if any.
func (m *Model) focusedField() (filter.Field, bool) {
	if m.filterFocus == noFilterFocus {
		return 0, false
	}
	return filter.Field(m.filterFocus), true
}

// handleFilterKey edits the focused filter field. Every edit re-evaluates
// the list immediately.
func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	field, _ := m.focusedField()
	fields := filter.Fields()

	switch msg.String() {
	case "esc", "enter":
		m.blurFilters()
		m.setStatus(m.resultSummary())
		return m, nil
	case "tab", "down":
		return m, m.focusFilter(fields[(int(field)+1)%len(fields)])
	case "shift+tab", "up":
		return m, m.focusFilter(fields[(int(field)+len(fields)-1)%len(fields)])
	}
	if m.actionForKey(msg.String()) == actionClearFilters {
		m.clearFilters()
		return m, nil
	}

	if field == filter.FieldModality {
		switch msg.String() {
		case "right", " ", "l":
			m.cycleModality(1)
		case "left", "h":
			m.cycleModality(-1)
		case "backspace", "delete":
			m.setFilter(filter.FieldModality, "")
		}
		return m, nil
	}

	before := m.inputs[field].Value()
	var cmd tea.Cmd
	m.inputs[field], cmd = m.inputs[field].Update(msg)
	if value := m.inputs[field].Value(); value != before {
		m.setFilter(field, value)
	}
	return m, cmd
}

// modalityChoices lists the modality dropdown entries, "All" first.
func modalityChoices() []study.Modality {
	return append([]study.Modality{""}, study.Modalities()...)
}

// cycleModality steps the modality filter through its choices.
func (m *Model) cycleModality(delta int) {
	choices := modalityChoices()
	i := slices.Index(choices, m.criteria.Modality)
	if i < 0 {
		i = 0
	}
	next := choices[(i+delta+len(choices))%len(choices)]
	m.setFilter(filter.FieldModality, string(next))
}

// setFilter replaces one criteria field and re-evaluates the list. Rejected
// values leave the criteria unchanged.
func (m *Model) setFilter(f filter.Field, value string) {
	next, err := m.criteria.With(f, value)
	if err != nil {
		m.setStatusError("Invalid "+f.String(), err, "field", f.String(), "value", value)
		return
	}
	m.criteria = next
	m.applyFilters()
}

// clearFilters resets the criteria and every form field.
func (m *Model) clearFilters() {
	m.criteria = filter.Clear()
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.applyFilters()
	appLog.Debug("filters cleared")
}

// applyFilters re-evaluates the criteria against the full collection and
// clamps the cursor to the new result.
func (m *Model) applyFilters() {
	results, err := filter.Evaluate(m.criteria, m.all)
	m.results = results
	m.cursor = clamp(m.cursor, 0, max(0, len(m.results)-1))
	m.ensureCursorVisible()

	if err != nil {
		m.setStatusInputError("Invalid date, "+apperrors.Message(err)+" (use YYYY-MM-DD)", err, "filters", m.criteria.Summary())
		return
	}
	m.setStatus(m.resultSummary())
	appLog.Debug("filters applied", "filters", m.criteria.Summary(), "matches", len(m.results))
}

func (m *Model) resultSummary() string {
	if !m.criteria.HasActiveFilters() {
		return fmt.Sprintf("%d studies", m.studies.Len())
	}
	return fmt.Sprintf("%d of %d studies match", len(m.results), m.studies.Len())
}

// filterDisplayValue is the text shown in a form field.
func (m *Model) filterDisplayValue(f filter.Field) string {
	if f == filter.FieldModality {
		if m.criteria.Modality == "" {
			return modalityAll
		}
		return string(m.criteria.Modality)
	}
	return m.inputs[f].View()
}
