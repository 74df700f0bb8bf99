package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/treykane/cli-studies/internal/filter"
	"github.com/treykane/cli-studies/internal/study"
)

// availableViewers lists the viewer entries of an expanded study. Only the
// first one opens anything.
var availableViewers = []string{"Basic Viewer", "Segmentation", "Annotations", "Measurements", "Preclinical 4D"}

// column is one study list column. A zero width column shares the space
// left after the fixed columns.
type column struct {
	title string
	width int
	value func(study.Record) string
}

var listColumnSpec = []column{
	{title: "Patient Name", value: func(r study.Record) string { return r.PatientName }},
	{title: "MRN", width: 12, value: func(r study.Record) string { return r.MRN }},
	{title: "Study Date", width: 11, value: func(r study.Record) string { return r.DateString() }},
	{title: "Description", value: func(r study.Record) string { return r.Description }},
	{title: "Modality", width: 9, value: func(r study.Record) string { return string(r.Modality) }},
	{title: "Accession #", width: 14, value: func(r study.Record) string { return r.AccessionNumber }},
	{title: "Instances", width: 9, value: func(r study.Record) string { return strconv.Itoa(r.InstanceCount) }},
}

// rowPrefixWidth is the expand marker column ("▸ ").
const rowPrefixWidth = 2

// listColumns sizes the columns for a terminal width.
func listColumns(width int) []column {
	fixed := rowPrefixWidth
	flexible := 0
	for _, c := range listColumnSpec {
		if c.width == 0 {
			flexible++
			continue
		}
		fixed += c.width + 1
	}
	share := 0
	if flexible > 0 {
		share = max(8, (width-fixed)/flexible-1)
	}
	cols := make([]column, len(listColumnSpec))
	copy(cols, listColumnSpec)
	for i := range cols {
		if cols[i].width == 0 {
			cols[i].width = share
		}
	}
	return cols
}

// renderList draws the study list screen.
func (m *Model) renderList(dims LayoutDimensions) string {
	width := m.width
	lines := make([]string, 0, dims.ContentHeight)

	count := fmt.Sprintf("  %d of %d", len(m.results), m.studies.Len())
	lines = append(lines, truncate(titleStyle.Render("Study List")+mutedStyle.Render(count), width))
	lines = append(lines, m.filterFormLines(width)...)
	lines = append(lines, truncate(m.filterHintLine(), width))
	lines = append(lines, truncate(m.columnHeaderLine(width), width))
	lines = append(lines, m.listBodyLines(width, dims.ListBodyHeight)...)

	return strings.Join(lines, "\n")
}

// filterFormLines lays the filter fields out left to right, wrapping onto a
// new row when the next field does not fit.
func (m *Model) filterFormLines(width int) []string {
	var (
		lines   []string
		current string
	)
	focused, hasFocus := m.focusedField()
	for _, f := range filter.Fields() {
		label := labelStyle.Render(f.String() + ":")
		value := m.filterDisplayValue(f)
		if f == filter.FieldModality && hasFocus && focused == f {
			value = "◂ " + value + " ▸"
		}
		if hasFocus && focused == f {
			label = focusedField.Render("› " + f.String() + ":")
		}
		cell := label + " " + padRight(value, FilterInputWidth+1)

		candidate := cell
		if current != "" {
			candidate = current + "  " + cell
		}
		if current != "" && lipgloss.Width(candidate) > width {
			lines = append(lines, current)
			current = cell
			continue
		}
		current = candidate
	}
	if current != "" {
		lines = append(lines, truncate(current, width))
	}
	return lines
}

// filterHintLine shows the clear action only while a filter is active.
func (m *Model) filterHintLine() string {
	if m.criteria.HasActiveFilters() {
		return accentStyle.Render("✕ Clear Filters") + mutedStyle.Render(" ("+m.primaryActionKey(actionClearFilters, "Ctrl+X")+")")
	}
	return mutedStyle.Render(m.primaryActionKey(actionFocusFilters, "/") + " to filter")
}

func (m *Model) columnHeaderLine(width int) string {
	cols := listColumns(width)
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		parts = append(parts, padRight(c.title, c.width))
	}
	return strings.Repeat(" ", rowPrefixWidth) + columnStyle.Render(strings.Join(parts, " "))
}

func (m *Model) formatRow(r study.Record, width int) string {
	marker := "▸ "
	if m.expanded[r.ID] {
		marker = "▾ "
	}
	cols := listColumns(width)
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		parts = append(parts, padRight(c.value(r), c.width))
	}
	return marker + strings.Join(parts, " ")
}

// rowHeight is the number of lines a study occupies, details included.
func (m *Model) rowHeight(r study.Record, width int) int {
	if !m.expanded[r.ID] {
		return 1
	}
	return 1 + len(m.detailLines(r, width))
}

// listBodyLines renders the visible studies starting at listOffset.
func (m *Model) listBodyLines(width, height int) []string {
	if height <= 0 {
		return nil
	}
	if len(m.results) == 0 {
		return []string{mutedStyle.Render("No studies match the current filters")}
	}
	lines := make([]string, 0, height)
	for i := m.listOffset; i < len(m.results) && len(lines) < height; i++ {
		r := m.results[i]
		row := truncate(m.formatRow(r, width), width)
		if i == m.cursor {
			row = selectedStyle.Width(width).Render(row)
		}
		lines = append(lines, row)
		if m.expanded[r.ID] {
			lines = append(lines, m.detailLines(r, width)...)
		}
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return lines
}

// listRowTargets returns one full-width target per visible study row, in
// screen coordinates. Detail lines of expanded studies are not targets.
func (m *Model) listRowTargets(dims LayoutDimensions) []hitTarget {
	if len(m.results) == 0 {
		return nil
	}
	top := listChromeRows + dims.FormRows
	var targets []hitTarget
	for i, line := m.listOffset, 0; i < len(m.results) && line < dims.ListBodyHeight; i++ {
		targets = append(targets, hitTarget{line: top + line, x0: 0, x1: m.width, kind: hitRow, index: i})
		line += m.rowHeight(m.results[i], m.width)
	}
	return targets
}

// detailLines renders the side panel of an expanded study: description,
// available viewers and the series table.
func (m *Model) detailLines(r study.Record, width int) []string {
	const indent = "    "
	inner := max(0, width-len(indent))

	viewers := make([]string, 0, len(availableViewers))
	for i, name := range availableViewers {
		if i == 0 {
			viewers = append(viewers, accentStyle.Render("["+name+"]"))
			continue
		}
		viewers = append(viewers, mutedStyle.Render(name))
	}

	lines := []string{
		labelStyle.Render("Description: ") + r.Description,
		labelStyle.Render("Available Viewers: ") + strings.Join(viewers, "  ") +
			mutedStyle.Render("  ("+m.primaryActionKey(actionOpenViewer, "O")+" opens Basic Viewer)"),
	}
	lines = append(lines, strings.Split(seriesTable(m.studies.Series(r.ID), inner), "\n")...)

	for i, line := range lines {
		lines[i] = indent + truncate(line, inner)
	}
	return lines
}

// seriesTable renders the series of a study with lipgloss/table.
func seriesTable(series []study.Series, width int) string {
	rows := make([][]string, 0, len(series))
	for _, s := range series {
		desc := s.Description
		if desc == "" {
			desc = "(no description)"
		}
		rows = append(rows, []string{
			strconv.Itoa(s.Number),
			desc,
			string(s.Modality),
			strconv.Itoa(s.InstanceCount),
		})
	}
	if len(rows) == 0 {
		return mutedStyle.Render("No series")
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(tableBorder).
		Headers("Series", "Description", "Modality", "Instances").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeader
			}
			return tableCell
		})
	if width > 0 {
		t = t.Width(min(width, 72))
	}
	return t.String()
}

// ensureCursorVisible scrolls the list so the selected study and its details
// fit in the body.
func (m *Model) ensureCursorVisible() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.listOffset = clamp(m.listOffset, 0, max(0, len(m.results)-1))
	if m.cursor < m.listOffset {
		m.listOffset = m.cursor
		return
	}
	height := m.calculateLayout().ListBodyHeight
	for m.listOffset < m.cursor {
		used := 0
		for i := m.listOffset; i <= m.cursor; i++ {
			used += m.rowHeight(m.results[i], m.width)
		}
		if used <= height {
			return
		}
		m.listOffset++
	}
}
