package layout

import "fmt"

// Cell is a 1-based position in the custom grid picker.
type Cell struct {
	Row int
	Col int
}

// Selection is either a named preset or a custom rows×cols grid; use
// IsCustom to tell them apart. The zero value is DefaultPreset.
type Selection struct {
	preset Preset
	custom Cell
}

// PresetSelection wraps a catalogue preset.
func PresetSelection(p Preset) Selection {
	return Selection{preset: p}
}

// CustomSelection wraps a rows×cols grid, clamped to the picker size.
func CustomSelection(rows, cols int) Selection {
	return Selection{custom: Cell{
		Row: min(max(rows, 1), PickerRows),
		Col: min(max(cols, 1), PickerCols),
	}}
}

// IsCustom reports whether the selection came from the grid picker.
func (s Selection) IsCustom() bool {
	return s.preset == "" && s.custom.Row > 0 && s.custom.Col > 0
}

// Preset returns the preset and true when the selection is a preset.
func (s Selection) Preset() (Preset, bool) {
	if s.IsCustom() {
		return "", false
	}
	if s.preset == "" {
		return DefaultPreset, true
	}
	return s.preset, true
}

// Custom returns the grid size and true when the selection is custom.
func (s Selection) Custom() (Cell, bool) {
	return s.custom, s.IsCustom()
}

// String renders the selection for the status bar, e.g. "2x2" or
// "custom 2×3".
func (s Selection) String() string {
	if p, ok := s.Preset(); ok {
		return p.Label()
	}
	return fmt.Sprintf("custom %d×%d", s.custom.Row, s.custom.Col)
}

// Pane is one viewport of an arrangement, positioned on a 1-based grid.
type Pane struct {
	Row     int
	Col     int
	RowSpan int
	ColSpan int
	Label   string
}

// Arrangement is the grid a selection draws on the viewer.
type Arrangement struct {
	Rows  int
	Cols  int
	Panes []Pane
}

// Arrangement resolves the selection into panes. Presets without explicit
// panes and custom selections arrange as a plain grid of single cells.
func (s Selection) Arrangement() Arrangement {
	if p, ok := s.Preset(); ok {
		info, found := lookup(p)
		if !found {
			return uniformGrid(1, 1)
		}
		if len(info.panes) == 0 {
			return uniformGrid(info.rows, info.cols)
		}
		panes := make([]Pane, len(info.panes))
		copy(panes, info.panes)
		return Arrangement{Rows: info.rows, Cols: info.cols, Panes: panes}
	}
	return uniformGrid(s.custom.Row, s.custom.Col)
}

func uniformGrid(rows, cols int) Arrangement {
	a := Arrangement{Rows: rows, Cols: cols, Panes: make([]Pane, 0, rows*cols)}
	for r := 1; r <= rows; r++ {
		for c := 1; c <= cols; c++ {
			a.Panes = append(a.Panes, Pane{Row: r, Col: c, RowSpan: 1, ColSpan: 1})
		}
	}
	return a
}
