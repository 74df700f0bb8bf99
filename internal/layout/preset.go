package layout

import (
	"strings"

	"github.com/treykane/cli-studies/internal/errors"
)

// Preset is a named viewport arrangement from the fixed catalogue.
type Preset string

const (
	Preset1x1          Preset = "1x1"
	Preset2x1          Preset = "2x1"
	Preset2x2          Preset = "2x2"
	Preset2x3          Preset = "2x3"
	PresetMPR          Preset = "mpr"
	Preset3DFourUp     Preset = "3d-four-up"
	Preset3DMain       Preset = "3d-main"
	PresetAxialPrimary Preset = "axial-primary"
	Preset3DOnly       Preset = "3d-only"
	Preset3DPrimary    Preset = "3d-primary"
	PresetFrameView    Preset = "frame-view"
)

// DefaultPreset is the single-viewport layout the viewer opens with.
const DefaultPreset = Preset1x1

// Group is the menu section a preset is listed under.
type Group int

const (
	GroupCommon Group = iota
	GroupAdvanced
)

func (g Group) String() string {
	if g == GroupAdvanced {
		return "Advanced"
	}
	return "Common"
}

type presetInfo struct {
	preset Preset
	label  string
	group  Group
	// rows and cols size the arrangement grid; panes are placed on it.
	rows, cols int
	panes      []Pane
}

// catalogue order is menu order.
var catalogue = []presetInfo{
	{preset: Preset1x1, label: "1x1", group: GroupCommon, rows: 1, cols: 1},
	{preset: Preset2x1, label: "2x1", group: GroupCommon, rows: 1, cols: 2},
	{preset: Preset2x2, label: "2x2", group: GroupCommon, rows: 2, cols: 2},
	{preset: Preset2x3, label: "2x3", group: GroupCommon, rows: 3, cols: 2},
	{
		preset: PresetMPR, label: "MPR", group: GroupAdvanced, rows: 1, cols: 3,
		panes: []Pane{
			{Row: 1, Col: 1, RowSpan: 1, ColSpan: 1, Label: "Axial"},
			{Row: 1, Col: 2, RowSpan: 1, ColSpan: 1, Label: "Sagittal"},
			{Row: 1, Col: 3, RowSpan: 1, ColSpan: 1, Label: "Coronal"},
		},
	},
	{
		preset: Preset3DFourUp, label: "3D four up", group: GroupAdvanced, rows: 2, cols: 2,
		panes: []Pane{
			{Row: 1, Col: 1, RowSpan: 1, ColSpan: 1, Label: "Axial"},
			{Row: 1, Col: 2, RowSpan: 1, ColSpan: 1, Label: "3D"},
			{Row: 2, Col: 1, RowSpan: 1, ColSpan: 1, Label: "Coronal"},
			{Row: 2, Col: 2, RowSpan: 1, ColSpan: 1, Label: "Sagittal"},
		},
	},
	{
		preset: Preset3DMain, label: "3D main", group: GroupAdvanced, rows: 2, cols: 3,
		panes: []Pane{
			{Row: 1, Col: 1, RowSpan: 1, ColSpan: 3, Label: "3D"},
			{Row: 2, Col: 1, RowSpan: 1, ColSpan: 1, Label: "Axial"},
			{Row: 2, Col: 2, RowSpan: 1, ColSpan: 1, Label: "Sagittal"},
			{Row: 2, Col: 3, RowSpan: 1, ColSpan: 1, Label: "Coronal"},
		},
	},
	{
		preset: PresetAxialPrimary, label: "Axial Primary", group: GroupAdvanced, rows: 2, cols: 3,
		panes: []Pane{
			{Row: 1, Col: 1, RowSpan: 2, ColSpan: 2, Label: "Axial"},
			{Row: 1, Col: 3, RowSpan: 1, ColSpan: 1, Label: "Sagittal"},
			{Row: 2, Col: 3, RowSpan: 1, ColSpan: 1, Label: "Coronal"},
		},
	},
	{
		preset: Preset3DOnly, label: "3D only", group: GroupAdvanced, rows: 1, cols: 1,
		panes: []Pane{
			{Row: 1, Col: 1, RowSpan: 1, ColSpan: 1, Label: "3D"},
		},
	},
	{
		preset: Preset3DPrimary, label: "3D primary", group: GroupAdvanced, rows: 2, cols: 3,
		panes: []Pane{
			{Row: 1, Col: 1, RowSpan: 2, ColSpan: 2, Label: "3D"},
			{Row: 1, Col: 3, RowSpan: 1, ColSpan: 1, Label: "Axial"},
			{Row: 2, Col: 3, RowSpan: 1, ColSpan: 1, Label: "Coronal"},
		},
	},
	{
		preset: PresetFrameView, label: "Frame View", group: GroupAdvanced, rows: 1, cols: 1,
		panes: []Pane{
			{Row: 1, Col: 1, RowSpan: 1, ColSpan: 1, Label: "Frames"},
		},
	},
}

// Presets returns the catalogue in menu order.
func Presets() []Preset {
	out := make([]Preset, 0, len(catalogue))
	for _, info := range catalogue {
		out = append(out, info.preset)
	}
	return out
}

// PresetsIn returns the presets of one menu group in menu order.
func PresetsIn(g Group) []Preset {
	var out []Preset
	for _, info := range catalogue {
		if info.group == g {
			out = append(out, info.preset)
		}
	}
	return out
}

// ParsePreset resolves a preset name. Names are matched case-insensitively
// after trimming.
func ParsePreset(name string) (Preset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, info := range catalogue {
		if string(info.preset) == key {
			return info.preset, nil
		}
	}
	return "", errors.New(errors.ErrCodeUnknownPreset, "unknown layout preset %q", name)
}

func lookup(p Preset) (presetInfo, bool) {
	for _, info := range catalogue {
		if info.preset == p {
			return info, true
		}
	}
	return presetInfo{}, false
}

// Valid reports whether p is in the catalogue.
func (p Preset) Valid() bool {
	_, ok := lookup(p)
	return ok
}

// Label returns the menu label of the preset.
func (p Preset) Label() string {
	if info, ok := lookup(p); ok {
		return info.label
	}
	return string(p)
}

// Group returns the menu section of the preset.
func (p Preset) Group() Group {
	info, _ := lookup(p)
	return info.group
}

func (p Preset) String() string {
	return string(p)
}
