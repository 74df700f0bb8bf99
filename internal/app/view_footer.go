package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/treykane/cli-studies/internal/filter"
	"github.com/treykane/cli-studies/internal/toolbar"
)

func (m *Model) renderStatus(width, rows int) string {
	statusRows, _ := m.buildStatusRows(width, rows)
	style := statusStyle
	if m.statusIsError {
		style = errorStatus
	}
	for len(statusRows) < rows {
		statusRows = append(statusRows, "")
	}

	rendered := make([]string, 0, len(statusRows))
	for _, line := range statusRows {
		line = " " + truncate(line, max(0, width-1))
		rendered = append(rendered, style.Width(width).Render(line))
	}
	return strings.Join(rendered, "\n")
}

func (m *Model) buildStatusRows(width, rowLimit int) ([]string, bool) {
	if width <= 0 || rowLimit <= 0 {
		return nil, true
	}

	help := m.statusHelpSegments()
	context := m.statusContextSegments()
	status := m.statusMessageSegment()

	segments := make([]string, 0, len(help)+len(context)+2)
	if len(help) > 0 {
		segments = append(segments, "Keys: "+help[0])
		segments = append(segments, help[1:]...)
	}
	if len(context) > 0 {
		segments = append(segments, "Context: "+context[0])
		segments = append(segments, context[1:]...)
	}
	if status != "" {
		segments = append(segments, "Status: "+status)
	}

	rows := make([]string, 1, rowLimit)
	rowIndex := 0
	fit := true
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		segment := seg
		if lipgloss.Width(segment) > width {
			segment = truncateWithEllipsis(segment, width)
		}

		candidate := segment
		if rows[rowIndex] != "" {
			candidate = rows[rowIndex] + " | " + segment
		}
		if lipgloss.Width(candidate) <= width {
			rows[rowIndex] = candidate
			continue
		}
		if rowIndex+1 < rowLimit {
			rowIndex++
			rows = append(rows, segment)
			continue
		}

		fit = false
		if rows[rowIndex] == "" {
			rows[rowIndex] = truncateWithEllipsis(segment, width)
		} else {
			rows[rowIndex] = truncateWithEllipsis(rows[rowIndex]+" | "+segment, width)
		}
		break
	}
	return rows, fit
}

func truncateWithEllipsis(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(value) <= width {
		return value
	}
	if width == 1 {
		return "…"
	}
	return ansi.Truncate(value, width-1, "") + "…"
}

// statusHelpSegments lists the keys that apply to whatever has input focus.
func (m *Model) statusHelpSegments() []string {
	if m.showHelp {
		return []string{"Help", "↑/↓ scroll", "Esc close"}
	}
	if m.screen == screenViewer {
		switch m.tools.Menu {
		case toolbar.MenuLayout:
			if m.menuFocus == focusPicker {
				return []string{"Grid picker", "arrows preview", "Enter apply", "Tab presets", "Esc close"}
			}
			return []string{"Layout menu", "↑/↓ move", "Enter apply", "Tab custom grid", "Esc close"}
		case toolbar.MenuMeasurement:
			return []string{"Measurement tools", "↑/↓ move", "Enter choose", "Esc close"}
		}
		return []string{
			m.primaryActionKey(actionLayoutMenu, "L") + " layout",
			m.primaryActionKey(actionMeasureMenu, "M") + " measure",
			m.primaryActionKey(actionToolZoom, "z") + " zoom",
			m.primaryActionKey(actionToolPan, "p") + " pan",
			m.primaryActionKey(actionToolCrosshair, "c") + " crosshair",
			m.primaryActionKey(actionToolWindow, "w") + " window",
			m.primaryActionKey(actionToolCapture, "m") + " capture",
			m.primaryActionKey(actionToolSnapshot, "s") + " snapshot",
			m.primaryActionKey(actionBack, "Esc") + " back",
			m.primaryActionKey(actionHelp, "?") + " help",
			m.primaryActionKey(actionQuit, "q") + " quit",
		}
	}
	if m.filterFocus != noFilterFocus {
		if field, _ := m.focusedField(); field == filter.FieldModality {
			return []string{"Modality", "←/→ cycle", "Tab next field", "Enter/Esc done"}
		}
		return []string{"Filter", "type to narrow", "Tab next field", "Enter/Esc done"}
	}
	return []string{
		m.allActionKeys(actionCursorUp, "↑") + "/" + m.allActionKeys(actionCursorDown, "↓") + " move",
		m.primaryActionKey(actionExpandToggle, "Enter") + " details",
		m.primaryActionKey(actionOpenViewer, "o") + " open",
		m.primaryActionKey(actionFocusFilters, "/") + " filter",
		m.primaryActionKey(actionClearFilters, "Ctrl+X") + " clear",
		m.primaryActionKey(actionHelp, "?") + " help",
		m.primaryActionKey(actionQuit, "q") + " quit",
	}
}

// statusContextSegments summarises the list or the open study.
func (m *Model) statusContextSegments() []string {
	if m.screen == screenViewer {
		parts := []string{"Layout " + m.selector.Current().String()}
		if m.selector.Previewing() {
			hover, _ := m.selector.Hover()
			parts = append(parts, fmt.Sprintf("Preview %d×%d", hover.Row, hover.Col))
		}
		if tool, ok := toolbar.Lookup(m.tools.Active); ok {
			parts = append(parts, "Tool "+tool.Label)
		}
		return parts
	}
	parts := []string{fmt.Sprintf("%d/%d studies", len(m.results), m.studies.Len())}
	if summary := m.criteria.Summary(); summary != "" {
		parts = append(parts, summary)
	}
	return parts
}

func (m *Model) statusMessageSegment() string {
	return strings.TrimSpace(m.status)
}
