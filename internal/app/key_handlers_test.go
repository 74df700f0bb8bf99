package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cli-studies/internal/layout"
	"github.com/treykane/cli-studies/internal/toolbar"
)

func TestHandlePopupListNav(t *testing.T) {
	cases := []struct {
		key           string
		cursor, count int
		next          int
		sel, closed   bool
		handled       bool
	}{
		{key: "down", cursor: 0, count: 3, next: 1, handled: true},
		{key: "ctrl+n", cursor: 2, count: 3, next: 2, handled: true},
		{key: "up", cursor: 0, count: 3, next: 0, handled: true},
		{key: "k", cursor: 2, count: 3, next: 1, handled: true},
		{key: "down", cursor: 4, count: 0, next: 0, handled: true},
		{key: "enter", cursor: 1, count: 3, next: 1, sel: true, handled: true},
		{key: "esc", cursor: 1, count: 3, next: 1, closed: true, handled: true},
		{key: "x", cursor: 1, count: 3, next: 1},
	}
	for _, tc := range cases {
		var msg tea.KeyMsg
		switch tc.key {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "ctrl+n":
			msg = tea.KeyMsg{Type: tea.KeyCtrlN}
		default:
			msg = keyMsg(tc.key)
		}
		next, sel, closed, handled := handlePopupListNav(msg, tc.cursor, tc.count)
		if next != tc.next || sel != tc.sel || closed != tc.closed || handled != tc.handled {
			t.Fatalf("%s from %d/%d: got (%d, %v, %v, %v)", tc.key, tc.cursor, tc.count, next, sel, closed, handled)
		}
	}
}

func TestPressToolStatusMessages(t *testing.T) {
	m := newTestModel(t, 120, 30)
	sendKey(m, "o")

	steps := []struct {
		id     toolbar.ToolID
		status string
	}{
		{toolbar.ToolCrosshair, "Tool: Crosshair"},
		{toolbar.ToolRuler, "Choose a measurement tool"},
		{toolbar.ToolRuler, "Measure menu closed"},
		{toolbar.ToolGrid, "Choose a layout"},
		{toolbar.ToolGrid, "Layout menu closed"},
		{toolbar.ToolCrosshair, "No tool active"},
	}
	for _, step := range steps {
		m.pressTool(step.id)
		if m.status != step.status {
			t.Fatalf("press %s: expected status %q, got %q", step.id, step.status, m.status)
		}
	}
}

func TestPressToolRejectsDisplayOnlyButtons(t *testing.T) {
	m := newTestModel(t, 120, 30)
	sendKey(m, "o")
	m.pressTool(toolbar.ToolNext)
	if !m.statusIsError || m.status != "Unknown tool" {
		t.Fatalf("expected unknown tool error, got %q", m.status)
	}
	if m.tools != (toolbar.State{}) {
		t.Fatalf("expected toolbar unchanged, got %+v", m.tools)
	}
}

func TestPickerArrowStartsFromCommittedCustomGrid(t *testing.T) {
	m := newTestModel(t, 120, 30)
	sendKey(m, "o")
	m.commitCustom(2, 2)

	sendKey(m, "L")
	if m.menuFocus != focusPicker || m.selector.Previewing() {
		t.Fatal("expected picker focus without a preview on open")
	}
	sendKey(m, "right")
	if hover, _ := m.selector.Hover(); hover != (layout.Cell{Row: 2, Col: 3}) {
		t.Fatalf("expected hover 2,3, got %+v", hover)
	}
	sendKey(m, "tab")
	if m.menuFocus != focusPresets || m.selector.Previewing() {
		t.Fatal("expected tab back to presets to drop the preview")
	}
}

func TestLayoutKeyClosesOpenLayoutMenu(t *testing.T) {
	m := newTestModel(t, 120, 30)
	sendKey(m, "o")
	sendKey(m, "L")
	sendKey(m, "tab")
	sendKey(m, "L")
	if m.tools.Menu != toolbar.MenuNone || m.selector.Previewing() {
		t.Fatal("expected second press to close the menu and drop the preview")
	}
}

func TestQuitKeysDependOnFocus(t *testing.T) {
	m := newTestModel(t, 120, 30)
	sendKey(m, "o")
	sendKey(m, "L")
	if cmd := sendKey(m, "q"); cmd != nil {
		t.Fatal("expected q inside the layout menu to close it, not quit")
	}
	if m.tools.Menu != toolbar.MenuNone {
		t.Fatal("expected q to close the layout menu")
	}
	sendKey(m, "M")
	if cmd := sendKey(m, "q"); cmd != nil || m.tools.Menu != toolbar.MenuNone {
		t.Fatal("expected q to close the measurement menu, not quit")
	}
	if cmd := sendKey(m, "q"); cmd == nil {
		t.Fatal("expected q in the viewer to quit")
	}
}
