package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/cli-studies/internal/layout"
	"github.com/treykane/cli-studies/internal/toolbar"
)

// Offsets from a menu block's corner to its content: the border, plus the
// horizontal padding.
const (
	menuContentTop  = 1
	menuContentLeft = 2
)

// openMenu renders the dropdown that is open, if any, together with its
// screen position and its targets in screen coordinates.
func (m *Model) openMenu() (block string, x, y int, targets []hitTarget, ok bool) {
	var (
		anchor toolbar.ToolID
		inner  []hitTarget
	)
	switch m.tools.Menu {
	case toolbar.MenuLayout:
		anchor = toolbar.ToolGrid
		block, inner = m.layoutMenu()
	case toolbar.MenuMeasurement:
		anchor = toolbar.ToolRuler
		block, inner = m.measureMenu()
	default:
		return "", 0, 0, nil, false
	}

	x, y = m.menuOrigin(anchor, lipgloss.Width(block))
	return block, x, y, offsetTargets(inner, x+menuContentLeft, y+menuContentTop), true
}

// menuOrigin places a menu under its toolbar button, shifted left when it
// would run past the right edge.
func (m *Model) menuOrigin(anchor toolbar.ToolID, blockWidth int) (int, int) {
	_, tools := m.toolbarRow(m.width)
	x := 0
	for _, t := range tools {
		if t.tool == anchor {
			x = t.x0
			break
		}
	}
	return clamp(x, 0, max(0, m.width-blockWidth)), ViewerHeaderRows
}

// menuBounds reports whether (x, y) falls inside the open menu block.
func (m *Model) menuBounds(x, y int) bool {
	block, ox, oy, _, ok := m.openMenu()
	if !ok {
		return false
	}
	return x >= ox && x < ox+lipgloss.Width(block) && y >= oy && y < oy+lipgloss.Height(block)
}

// layoutMenu draws the Common presets on one row, the Advanced presets as a
// list and the custom grid picker. Targets are relative to the menu content.
func (m *Model) layoutMenu() (string, []hitTarget) {
	var (
		lines   []string
		targets []hitTarget
	)
	current := m.selector.Current()
	committed, isPreset := current.Preset()
	presets := layout.Presets()
	presetFocus := m.menuFocus == focusPresets

	styleFor := func(p layout.Preset, text string) string {
		switch {
		case presetFocus && presets[m.presetCursor] == p:
			return selectedStyle.Render(text)
		case isPreset && committed == p:
			return accentStyle.Render(text)
		default:
			return text
		}
	}

	lines = append(lines, titleStyle.Render("Common"))
	var (
		row strings.Builder
		x   int
	)
	for _, p := range presets {
		if p.Group() != layout.GroupCommon {
			continue
		}
		if x > 0 {
			row.WriteString(strings.Repeat(" ", PresetColumnGap))
			x += PresetColumnGap
		}
		text := "[" + p.Label() + "]"
		w := lipgloss.Width(text)
		targets = append(targets, hitTarget{line: len(lines), x0: x, x1: x + w, kind: hitPreset, preset: p})
		row.WriteString(styleFor(p, text))
		x += w
	}
	lines = append(lines, row.String(), "", titleStyle.Render("Advanced"))

	for _, p := range presets {
		if p.Group() != layout.GroupAdvanced {
			continue
		}
		marker := "  "
		if isPreset && committed == p {
			marker = "✓ "
		}
		text := marker + p.Label()
		targets = append(targets, hitTarget{line: len(lines), x0: 0, x1: lipgloss.Width(text), kind: hitPreset, preset: p})
		lines = append(lines, styleFor(p, text))
	}

	lines = append(lines, "", titleStyle.Render("Custom"))
	for r := 1; r <= layout.PickerRows; r++ {
		var cells strings.Builder
		for c := 1; c <= layout.PickerCols; c++ {
			x0 := (c - 1) * PickerCellWidth
			targets = append(targets, hitTarget{line: len(lines), x0: x0, x1: x0 + PickerCellWidth, kind: hitCell, cell: layout.Cell{Row: r, Col: c}})
			if m.selector.IsCellActive(r, c) {
				cells.WriteString(cellOnStyle.Render("[■]"))
			} else {
				cells.WriteString(cellOffStyle.Render("[□]"))
			}
			if c < layout.PickerCols {
				cells.WriteString(strings.Repeat(" ", PickerCellWidth-3))
			}
		}
		lines = append(lines, cells.String())
	}

	if hover, ok := m.selector.Hover(); ok {
		lines = append(lines, accentStyle.Render(fmt.Sprintf("Preview: %d×%d", hover.Row, hover.Col)))
	} else {
		lines = append(lines, mutedStyle.Render("Current: "+current.String()))
	}
	lines = append(lines, mutedStyle.Render("Tab switch · Enter apply · Esc close"))

	return menuStyle.Render(strings.Join(lines, "\n")), targets
}

// measureMenu lists the measurement tools.
func (m *Model) measureMenu() (string, []hitTarget) {
	tools := toolbar.MeasurementTools()
	lines := make([]string, 0, len(tools))
	targets := make([]hitTarget, 0, len(tools))
	for i, t := range tools {
		marker := "  "
		if m.tools.Active == t.ID {
			marker = "✓ "
		}
		text := marker + t.Label
		targets = append(targets, hitTarget{line: i, x0: 0, x1: lipgloss.Width(text), kind: hitMeasure, tool: t.ID})
		if i == m.measureCursor {
			text = selectedStyle.Render(text)
		}
		lines = append(lines, text)
	}
	return menuStyle.Render(strings.Join(lines, "\n")), targets
}
