// Package layout holds the viewport layout selector: a fixed catalogue of
// named presets plus a hover-driven custom grid picker.
//
// A Selector is owned by a single event loop and is not safe for concurrent
// use. Every mutating operation either fully applies or leaves the selector
// untouched and returns an error.
package layout

import (
	"github.com/treykane/cli-studies/internal/errors"
)

// Picker grid dimensions.
const (
	PickerRows = 3
	PickerCols = 4
)

// Effect is a presentation hint returned by committing operations.
type Effect int

const (
	EffectNone Effect = iota
	EffectClosePicker
)

// Selector tracks the committed layout and the transient picker hover.
type Selector struct {
	current  Selection
	hover    Cell
	hovering bool
}

// NewSelector returns a selector whose committed layout is initial.
func NewSelector(initial Preset) (*Selector, error) {
	if !initial.Valid() {
		return nil, errors.New(errors.ErrCodeUnknownPreset, "unknown layout preset %q", string(initial))
	}
	return &Selector{current: PresetSelection(initial)}, nil
}

// Current returns the committed selection.
func (s *Selector) Current() Selection {
	return s.current
}

// Hover returns the hovered cell, if any.
func (s *Selector) Hover() (Cell, bool) {
	return s.hover, s.hovering
}

// Previewing reports whether the picker is showing a hover preview rather
// than the committed layout.
func (s *Selector) Previewing() bool {
	return s.hovering
}

// SelectPreset commits a catalogue preset.
func (s *Selector) SelectPreset(name string) (Effect, error) {
	p, err := ParsePreset(name)
	if err != nil {
		return EffectNone, err
	}
	s.current = PresetSelection(p)
	s.ClearHover()
	return EffectClosePicker, nil
}

// HoverCell records the pointer position over the picker.
func (s *Selector) HoverCell(row, col int) error {
	if err := checkCell(row, col); err != nil {
		return err
	}
	s.hover = Cell{Row: row, Col: col}
	s.hovering = true
	return nil
}

// ClearHover drops any hover preview.
func (s *Selector) ClearHover() {
	s.hover = Cell{}
	s.hovering = false
}

// CommitCustom commits a rows×cols custom grid.
func (s *Selector) CommitCustom(row, col int) (Effect, error) {
	if err := checkCell(row, col); err != nil {
		return EffectNone, err
	}
	s.current = CustomSelection(row, col)
	s.ClearHover()
	return EffectClosePicker, nil
}

// Dismiss closes the picker without committing.
func (s *Selector) Dismiss() {
	s.ClearHover()
}

// IsCellActive reports whether a picker cell falls inside the highlighted
// rectangle. The rectangle is anchored at the hover cell, or at the committed
// custom grid when nothing is hovered. A preset selection highlights nothing.
func (s *Selector) IsCellActive(row, col int) bool {
	if checkCell(row, col) != nil {
		return false
	}
	anchor, ok := s.anchor()
	if !ok {
		return false
	}
	return row <= anchor.Row && col <= anchor.Col
}

func (s *Selector) anchor() (Cell, bool) {
	if s.hovering {
		return s.hover, true
	}
	return s.current.Custom()
}

func checkCell(row, col int) error {
	if row < 1 || row > PickerRows || col < 1 || col > PickerCols {
		return errors.New(errors.ErrCodeOutOfRange, "cell (%d, %d) outside %dx%d picker", row, col, PickerRows, PickerCols)
	}
	return nil
}
