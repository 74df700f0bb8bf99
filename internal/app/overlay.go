package app

import tea "github.com/charmbracelet/bubbletea"

// toggleHelp opens or closes the keyboard reference overlay. Opening it
// re-renders the help text at the current width.
func (m *Model) toggleHelp() (tea.Model, tea.Cmd) {
	m.showHelp = !m.showHelp
	if m.showHelp {
		m.refreshHelp()
		m.help.GotoTop()
	}
	return m, nil
}

// handleHelpKey closes the help overlay or scrolls it.
func (m *Model) handleHelpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.showHelp = false
		return m, nil
	}
	if m.actionForKey(msg.String()) == actionHelp {
		m.showHelp = false
		return m, nil
	}
	var cmd tea.Cmd
	m.help, cmd = m.help.Update(msg)
	return m, cmd
}

// handlePopupListNav handles the shared up/down/select/close key patterns used by list popups.
// It returns (nextCursor, selectPressed, closePressed, handled).
func handlePopupListNav(msg tea.KeyMsg, cursor, count int) (int, bool, bool, bool) {
	key := msg.String()
	switch key {
	case "esc":
		return cursor, false, true, true
	case "up", "k", "ctrl+p":
		if count <= 0 {
			return 0, false, false, true
		}
		return clamp(cursor-1, 0, count-1), false, false, true
	case "down", "j", "ctrl+n":
		if count <= 0 {
			return 0, false, false, true
		}
		return clamp(cursor+1, 0, count-1), false, false, true
	case "enter":
		return cursor, true, false, true
	default:
		return cursor, false, false, false
	}
}
