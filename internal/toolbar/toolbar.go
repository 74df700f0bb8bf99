// Package toolbar models the viewer toolbar: which tool is active and which
// dropdown menu is open.
package toolbar

import (
	"github.com/treykane/cli-studies/internal/errors"
)

// ToolID names a toolbar button or a measurement tool.
type ToolID string

// Main toolbar buttons, left to right.
const (
	ToolRuler     ToolID = "ruler"
	ToolZoom      ToolID = "zoom"
	ToolPan       ToolID = "pan"
	ToolCrosshair ToolID = "crosshair"
	ToolSettings  ToolID = "settings"
	ToolMeasure   ToolID = "measure"
	ToolCamera    ToolID = "camera"
	ToolGrid      ToolID = "grid"
)

// Measurement tools offered by the ruler dropdown.
const (
	MeasureLength        ToolID = "length"
	MeasureBidirectional ToolID = "bidirectional"
	MeasureAnnotation    ToolID = "annotation"
	MeasureEllipse       ToolID = "ellipse"
	MeasureRectangle     ToolID = "rectangle"
	MeasureCircle        ToolID = "circle"
	MeasureFreehand      ToolID = "freehand"
	MeasureSpline        ToolID = "spline"
	MeasureLivewire      ToolID = "livewire"
)

// Right-hand buttons. They are drawn but have no behaviour.
const (
	ToolReset      ToolID = "reset"
	ToolLines      ToolID = "lines"
	ToolCrosshair2 ToolID = "crosshair2"
	ToolRotate     ToolID = "rotate"
	ToolPrev       ToolID = "prev"
	ToolNext       ToolID = "next"
)

// Menu identifies an open dropdown.
type Menu int

const (
	MenuNone Menu = iota
	MenuMeasurement
	MenuLayout
)

func (m Menu) String() string {
	switch m {
	case MenuMeasurement:
		return "measurement"
	case MenuLayout:
		return "layout"
	default:
		return "none"
	}
}

// Tool describes one button.
type Tool struct {
	ID    ToolID
	Label string
	Icon  string
	// Menu is the dropdown the button opens, MenuNone for plain tools.
	Menu Menu
	// Highlight marks the accent-coloured button.
	Highlight bool
}

var mainTools = []Tool{
	{ID: ToolRuler, Label: "Measure", Icon: "⊢", Menu: MenuMeasurement},
	{ID: ToolZoom, Label: "Zoom", Icon: "⌕"},
	{ID: ToolPan, Label: "Pan", Icon: "✥"},
	{ID: ToolCrosshair, Label: "Crosshair", Icon: "✛"},
	{ID: ToolSettings, Label: "Window", Icon: "⚙"},
	{ID: ToolMeasure, Label: "Capture", Icon: "◎", Highlight: true},
	{ID: ToolCamera, Label: "Snapshot", Icon: "⎙"},
	{ID: ToolGrid, Label: "Layout", Icon: "▦", Menu: MenuLayout},
}

var measurementTools = []Tool{
	{ID: MeasureLength, Label: "Length"},
	{ID: MeasureBidirectional, Label: "Bidirectional"},
	{ID: MeasureAnnotation, Label: "Annotation"},
	{ID: MeasureEllipse, Label: "Ellipse"},
	{ID: MeasureRectangle, Label: "Rectangle"},
	{ID: MeasureCircle, Label: "Circle"},
	{ID: MeasureFreehand, Label: "Freehand"},
	{ID: MeasureSpline, Label: "Spline"},
	{ID: MeasureLivewire, Label: "Livewire"},
}

var rightTools = []Tool{
	{ID: ToolReset, Label: "Reset", Icon: "−"},
	{ID: ToolLines, Label: "Lines", Icon: "≡"},
	{ID: ToolCrosshair2, Label: "Reference", Icon: "⊕"},
	{ID: ToolRotate, Label: "Rotate", Icon: "↻"},
	{ID: ToolPrev, Label: "Previous", Icon: "‹"},
	{ID: ToolNext, Label: "Next", Icon: "›"},
}

// MainTools returns the left toolbar buttons in display order.
func MainTools() []Tool {
	return append([]Tool(nil), mainTools...)
}

// MeasurementTools returns the ruler dropdown entries in display order.
func MeasurementTools() []Tool {
	return append([]Tool(nil), measurementTools...)
}

// RightTools returns the display-only buttons on the right.
func RightTools() []Tool {
	return append([]Tool(nil), rightTools...)
}

func findTool(list []Tool, id ToolID) (Tool, bool) {
	for _, t := range list {
		if t.ID == id {
			return t, true
		}
	}
	return Tool{}, false
}

// Lookup finds any tool by id, measurement tools included.
func Lookup(id ToolID) (Tool, bool) {
	if t, ok := findTool(mainTools, id); ok {
		return t, true
	}
	if t, ok := findTool(measurementTools, id); ok {
		return t, true
	}
	return findTool(rightTools, id)
}

// State is the toolbar state. The zero value has nothing active and no menu
// open.
type State struct {
	Active ToolID
	Menu   Menu
}

// Press applies a click on a main toolbar button. Dropdown buttons toggle
// their menu and close any other; plain buttons toggle Active.
func (s State) Press(id ToolID) (State, error) {
	tool, ok := findTool(mainTools, id)
	if !ok {
		return s, errors.New(errors.ErrCodeUnknownTool, "unknown toolbar button %q", string(id))
	}
	next := s
	if tool.Menu != MenuNone {
		if s.Menu == tool.Menu {
			next.Menu = MenuNone
		} else {
			next.Menu = tool.Menu
		}
		return next, nil
	}
	next.Menu = MenuNone
	if s.Active == id {
		next.Active = ""
	} else {
		next.Active = id
	}
	return next, nil
}

// ChooseMeasurement activates a measurement tool and closes the dropdown.
func (s State) ChooseMeasurement(id ToolID) (State, error) {
	if _, ok := findTool(measurementTools, id); !ok {
		return s, errors.New(errors.ErrCodeUnknownTool, "unknown measurement tool %q", string(id))
	}
	return State{Active: id, Menu: MenuNone}, nil
}

// CloseMenu closes any open dropdown.
func (s State) CloseMenu() State {
	s.Menu = MenuNone
	return s
}

// IsActive reports whether id is the active tool. The ruler button counts as
// active while a measurement tool is selected.
func (s State) IsActive(id ToolID) bool {
	if s.Active == "" {
		return false
	}
	if s.Active == id {
		return true
	}
	if id == ToolRuler {
		_, ok := findTool(measurementTools, s.Active)
		return ok
	}
	return false
}
