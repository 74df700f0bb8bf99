package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cli-studies/internal/toolbar"
)

// handleMouse routes mouse events to the help overlay, the study list or the
// viewer, whichever is showing.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}
	if m.screen != screenViewer {
		return m.handleListMouse(msg)
	}
	switch msg.Action {
	case tea.MouseActionMotion:
		m.handleViewerMotion(msg.X, msg.Y)
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.handleViewerClick(msg.X, msg.Y)
		}
	}
	return m, nil
}

// handleListMouse scrolls the list with the wheel. Clicking a study selects
// it and toggles its details.
func (m *Model) handleListMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-1)
	case tea.MouseButtonWheelDown:
		m.moveCursor(1)
	case tea.MouseButtonLeft:
		if hit, ok := findHit(m.listRowTargets(m.calculateLayout()), msg.X, msg.Y); ok {
			m.cursor = hit.index
			m.toggleExpand()
		}
	}
	return m, nil
}

// handleViewerMotion drives the grid picker preview: hovering a cell
// previews it, anything else reverts to the committed layout.
func (m *Model) handleViewerMotion(x, y int) {
	_, _, _, targets, ok := m.openMenu()
	if !ok {
		return
	}
	hit, found := findHit(targets, x, y)
	switch {
	case found && hit.kind == hitCell:
		m.menuFocus = focusPicker
		if err := m.selector.HoverCell(hit.cell.Row, hit.cell.Col); err != nil {
			m.setStatusError("Invalid grid cell", err, "row", hit.cell.Row, "col", hit.cell.Col)
		}
		return
	case found && hit.kind == hitMeasure:
		for i, t := range toolbar.MeasurementTools() {
			if t.ID == hit.tool {
				m.measureCursor = i
			}
		}
	}
	m.selector.ClearHover()
}

// handleViewerClick applies a left click: menu entries first, then toolbar
// buttons. A click anywhere else closes the open menu.
func (m *Model) handleViewerClick(x, y int) {
	if _, _, _, targets, ok := m.openMenu(); ok {
		if hit, found := findHit(targets, x, y); found {
			switch hit.kind {
			case hitPreset:
				m.selectPreset(string(hit.preset))
			case hitCell:
				m.commitCustom(hit.cell.Row, hit.cell.Col)
			case hitMeasure:
				m.chooseMeasurement(hit.tool)
			}
			return
		}
		if m.menuBounds(x, y) {
			return
		}
	}

	r, ok := m.viewing()
	if !ok {
		return
	}
	_, header := m.viewerHeader(r, m.width)
	if hit, found := findHit(header, x, y); found && hit.kind == hitBack {
		m.backToList()
		return
	}
	_, tools := m.toolbarRow(m.width)
	if hit, found := findHit(offsetTargets(tools, 0, 1), x, y); found {
		m.pressTool(hit.tool)
		return
	}
	if m.tools.Menu != toolbar.MenuNone {
		m.dismissMenus()
		m.setStatus("Menu closed")
	}
}
