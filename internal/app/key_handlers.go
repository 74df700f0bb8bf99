package app

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cli-studies/internal/filter"
	"github.com/treykane/cli-studies/internal/layout"
	"github.com/treykane/cli-studies/internal/toolbar"
)

// viewerToolActions maps tool actions to the toolbar buttons they press.
var viewerToolActions = map[string]toolbar.ToolID{
	actionLayoutMenu:    toolbar.ToolGrid,
	actionMeasureMenu:   toolbar.ToolRuler,
	actionToolZoom:      toolbar.ToolZoom,
	actionToolPan:       toolbar.ToolPan,
	actionToolCrosshair: toolbar.ToolCrosshair,
	actionToolWindow:    toolbar.ToolSettings,
	actionToolCapture:   toolbar.ToolMeasure,
	actionToolSnapshot:  toolbar.ToolCamera,
}

// handleListKey routes key presses on the study list while the filter form
// is not focused.
func (m *Model) handleListKey(key string) (tea.Model, tea.Cmd) {
	switch m.actionForKey(key) {
	case actionQuit:
		return m, tea.Quit
	case actionHelp:
		return m.toggleHelp()
	case actionCursorUp:
		m.moveCursor(-1)
	case actionCursorDown:
		m.moveCursor(1)
	case actionJumpTop:
		m.moveCursor(-len(m.results))
	case actionJumpBottom:
		m.moveCursor(len(m.results))
	case actionExpandToggle:
		m.toggleExpand()
	case actionOpenViewer:
		m.openViewer()
	case actionFocusFilters:
		return m, m.focusFilter(filter.FieldPatientName)
	case actionClearFilters:
		m.clearFilters()
	}
	return m, nil
}

// handleViewerKey routes key presses in the viewer while no menu is open.
func (m *Model) handleViewerKey(key string) (tea.Model, tea.Cmd) {
	action := m.actionForKey(key)
	if id, ok := viewerToolActions[action]; ok {
		m.pressTool(id)
		return m, nil
	}
	switch action {
	case actionQuit:
		return m, tea.Quit
	case actionHelp:
		return m.toggleHelp()
	case actionBack:
		m.backToList()
	}
	return m, nil
}

// handleLayoutMenuKey drives the layout menu: tab switches between the
// preset list and the grid picker.
func (m *Model) handleLayoutMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "esc", "q":
		m.dismissMenus()
		m.setStatus("Layout unchanged: " + m.selector.Current().String())
		return m, nil
	case "tab", "shift+tab":
		m.toggleMenuFocus()
		return m, nil
	}
	if m.actionForKey(key) == actionLayoutMenu {
		m.pressTool(toolbar.ToolGrid)
		return m, nil
	}

	if m.menuFocus == focusPicker {
		cell, ok := m.selector.Hover()
		if !ok {
			cell = m.pickerStart()
		}
		switch key {
		case "up", "k":
			cell.Row--
		case "down", "j":
			cell.Row++
		case "left", "h":
			cell.Col--
		case "right", "l":
			cell.Col++
		case "enter", " ":
			m.commitCustom(cell.Row, cell.Col)
			return m, nil
		default:
			return m, nil
		}
		cell.Row = clamp(cell.Row, 1, layout.PickerRows)
		cell.Col = clamp(cell.Col, 1, layout.PickerCols)
		if err := m.selector.HoverCell(cell.Row, cell.Col); err != nil {
			m.setStatusError("Invalid grid cell", err, "row", cell.Row, "col", cell.Col)
		}
		return m, nil
	}

	presets := layout.Presets()
	next, selectPressed, closePressed, handled := handlePopupListNav(msg, m.presetCursor, len(presets))
	if !handled {
		switch key {
		case "left", "h":
			next = clamp(m.presetCursor-1, 0, len(presets)-1)
		case "right", "l":
			next = clamp(m.presetCursor+1, 0, len(presets)-1)
		case " ":
			selectPressed = true
		}
	}
	m.presetCursor = next
	if closePressed {
		m.dismissMenus()
		return m, nil
	}
	if selectPressed {
		m.selectPreset(string(presets[m.presetCursor]))
	}
	return m, nil
}

// handleMeasureMenuKey drives the measurement tool menu.
func (m *Model) handleMeasureMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.actionForKey(msg.String()) == actionMeasureMenu {
		m.pressTool(toolbar.ToolRuler)
		return m, nil
	}
	if msg.String() == "q" {
		m.dismissMenus()
		return m, nil
	}
	tools := toolbar.MeasurementTools()
	next, selectPressed, closePressed, _ := handlePopupListNav(msg, m.measureCursor, len(tools))
	m.measureCursor = next
	switch {
	case closePressed:
		m.dismissMenus()
	case selectPressed:
		m.chooseMeasurement(tools[m.measureCursor].ID)
	}
	return m, nil
}

// moveCursor shifts the list selection, clamped to the visible results.
func (m *Model) moveCursor(delta int) {
	if len(m.results) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = clamp(m.cursor+delta, 0, len(m.results)-1)
	m.ensureCursorVisible()
}

// toggleExpand shows or hides the detail panel of the selected study.
func (m *Model) toggleExpand() {
	if m.cursor >= len(m.results) {
		return
	}
	id := m.results[m.cursor].ID
	if m.expanded[id] {
		delete(m.expanded, id)
	} else {
		m.expanded[id] = true
	}
	m.ensureCursorVisible()
}

// openViewer switches to the Basic Viewer for the selected study.
func (m *Model) openViewer() {
	if m.cursor >= len(m.results) {
		m.setStatus("No study selected")
		return
	}
	r := m.results[m.cursor]
	m.viewingID = r.ID
	m.screen = screenViewer
	m.tools = toolbar.State{}
	m.selector.Dismiss()
	m.setStatus("Basic Viewer: " + r.PatientName)
	appLog.Debug("open viewer", "study", r.ID, "layout", m.selector.Current().String())
}

// backToList leaves the viewer. Filters, expansions and the committed layout
// are kept.
func (m *Model) backToList() {
	m.dismissMenus()
	m.screen = screenList
	m.setStatus(m.resultSummary())
}

// pressTool applies a toolbar button press and keeps the layout selector in
// step with the menu it opens or closes.
func (m *Model) pressTool(id toolbar.ToolID) {
	wasOpen := m.tools.Menu
	next, err := m.tools.Press(id)
	if err != nil {
		m.setStatusError("Unknown tool", err, "tool", string(id))
		return
	}
	m.tools = next
	if wasOpen == toolbar.MenuLayout && next.Menu != toolbar.MenuLayout {
		m.selector.Dismiss()
	}
	tool, _ := toolbar.Lookup(id)
	switch {
	case next.Menu == toolbar.MenuLayout && wasOpen != toolbar.MenuLayout:
		m.openLayoutMenu()
	case next.Menu == toolbar.MenuMeasurement && wasOpen != toolbar.MenuMeasurement:
		m.measureCursor = max(0, slices.IndexFunc(toolbar.MeasurementTools(), func(t toolbar.Tool) bool {
			return t.ID == m.tools.Active
		}))
		m.setStatus("Choose a measurement tool")
	case tool.Menu != toolbar.MenuNone:
		m.setStatus(tool.Label + " menu closed")
	case next.Active != "":
		m.setStatus("Tool: " + tool.Label)
	default:
		m.setStatus("No tool active")
	}
}

// openLayoutMenu resets the menu cursor to the committed preset.
func (m *Model) openLayoutMenu() {
	m.menuFocus = focusPresets
	m.presetCursor = 0
	if p, ok := m.selector.Current().Preset(); ok {
		m.presetCursor = max(0, slices.Index(layout.Presets(), p))
	} else {
		m.menuFocus = focusPicker
	}
	m.setStatus("Choose a layout")
}

// pickerStart is where keyboard navigation of the grid picker begins: the
// committed custom grid, or the top-left cell.
func (m *Model) pickerStart() layout.Cell {
	if size, ok := m.selector.Current().Custom(); ok {
		return size
	}
	return layout.Cell{Row: 1, Col: 1}
}

func (m *Model) toggleMenuFocus() {
	if m.menuFocus == focusPicker {
		m.menuFocus = focusPresets
		m.selector.ClearHover()
		return
	}
	m.menuFocus = focusPicker
	start := m.pickerStart()
	if err := m.selector.HoverCell(start.Row, start.Col); err != nil {
		m.setStatusError("Invalid grid cell", err)
	}
}

// dismissMenus closes any open menu without committing.
func (m *Model) dismissMenus() {
	if m.tools.Menu == toolbar.MenuLayout {
		m.selector.Dismiss()
	}
	m.tools = m.tools.CloseMenu()
}

func (m *Model) selectPreset(name string) {
	effect, err := m.selector.SelectPreset(name)
	if err != nil {
		m.setStatusError("Unknown layout", err, "preset", name)
		return
	}
	m.applyEffect(effect)
	m.setStatus("Layout: " + m.selector.Current().String())
	appLog.Debug("layout selected", "layout", m.selector.Current().String())
}

func (m *Model) commitCustom(row, col int) {
	effect, err := m.selector.CommitCustom(row, col)
	if err != nil {
		m.setStatusError("Invalid grid cell", err, "row", row, "col", col)
		return
	}
	m.applyEffect(effect)
	m.setStatus("Layout: " + m.selector.Current().String())
	appLog.Debug("custom layout committed", "rows", row, "cols", col)
}

func (m *Model) chooseMeasurement(id toolbar.ToolID) {
	next, err := m.tools.ChooseMeasurement(id)
	if err != nil {
		m.setStatusError("Unknown measurement tool", err, "tool", string(id))
		return
	}
	m.tools = next
	tool, _ := toolbar.Lookup(id)
	m.setStatus("Tool: " + tool.Label)
}

func (m *Model) applyEffect(effect layout.Effect) {
	if effect == layout.EffectClosePicker {
		m.tools = m.tools.CloseMenu()
	}
}
