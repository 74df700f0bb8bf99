package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/cli-studies/internal/layout"
	"github.com/treykane/cli-studies/internal/study"
	"github.com/treykane/cli-studies/internal/toolbar"
)

// hitKind names what a clickable region does.
type hitKind int

const (
	hitBack hitKind = iota
	hitTool
	hitPreset
	hitCell
	hitMeasure
	hitRow
)

// hitTarget is a clickable span on one line of a rendered block. x1 is
// exclusive. The builders that draw a block return its targets so View and
// the mouse handler agree on positions.
type hitTarget struct {
	line   int
	x0, x1 int
	kind   hitKind
	tool   toolbar.ToolID
	preset layout.Preset
	cell   layout.Cell
	index  int // study list row
}

func (t hitTarget) contains(x, y int) bool {
	return y == t.line && x >= t.x0 && x < t.x1
}

// findHit returns the first target under (x, y).
func findHit(targets []hitTarget, x, y int) (hitTarget, bool) {
	for _, t := range targets {
		if t.contains(x, y) {
			return t, true
		}
	}
	return hitTarget{}, false
}

// offsetTargets moves targets from block coordinates to screen coordinates.
func offsetTargets(targets []hitTarget, dx, dy int) []hitTarget {
	out := make([]hitTarget, len(targets))
	for i, t := range targets {
		t.line += dy
		t.x0 += dx
		t.x1 += dx
		out[i] = t
	}
	return out
}

// renderViewer draws the Basic Viewer: header, toolbar, then the sidebar and
// the viewport grid for the committed layout.
func (m *Model) renderViewer(dims LayoutDimensions) string {
	r, ok := m.viewing()
	if !ok {
		return mutedStyle.Render("No study open")
	}
	header, _ := m.viewerHeader(r, m.width)
	tools, _ := m.toolbarRow(m.width)

	body := m.viewportGrid(r, dims.MainWidth, dims.BodyHeight)
	if dims.SidebarWidth > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.viewerSidebar(r, dims.SidebarWidth, dims.BodyHeight), body)
	}
	return header + "\n" + tools + "\n" + body
}

// viewerHeader renders the study banner with its back button.
func (m *Model) viewerHeader(r study.Record, width int) (string, []hitTarget) {
	back := " ‹ Back "
	info := fmt.Sprintf(" %s  MRN %s  %s  %s", r.PatientName, r.MRN, r.DateString(), r.Description)
	line := accentStyle.Render(back) + headerStyle.Render(truncate(info, max(0, width-lipgloss.Width(back))))
	targets := []hitTarget{{line: 0, x0: 0, x1: lipgloss.Width(back), kind: hitBack}}
	return headerStyle.Width(width).Render(truncate(line, width)), targets
}

// toolButton renders one toolbar button.
func (m *Model) toolButton(t toolbar.Tool) string {
	text := " " + t.Icon + " " + t.Label
	if t.Menu != toolbar.MenuNone {
		text += " ▾"
	}
	text += " "
	switch {
	case m.tools.IsActive(t.ID) || (t.Menu != toolbar.MenuNone && m.tools.Menu == t.Menu):
		return toolActiveStyle.Render(text)
	case t.Highlight:
		return toolHighlight.Render(text)
	default:
		return toolStyle.Render(text)
	}
}

// toolbarRow renders the main buttons on the left, the frame readout in the
// centre and the display-only buttons on the right. The readout and right
// buttons are dropped when the terminal is too narrow for them.
func (m *Model) toolbarRow(width int) (string, []hitTarget) {
	var (
		b       strings.Builder
		targets []hitTarget
		x       int
	)
	for i, t := range toolbar.MainTools() {
		if i > 0 {
			b.WriteString(" ")
			x++
		}
		button := m.toolButton(t)
		w := lipgloss.Width(button)
		if x < width {
			targets = append(targets, hitTarget{line: 0, x0: x, x1: min(x+w, width), kind: hitTool, tool: t.ID})
		}
		b.WriteString(button)
		x += w
	}
	left := b.String()

	rightParts := make([]string, 0, len(toolbar.RightTools()))
	for _, t := range toolbar.RightTools() {
		rightParts = append(rightParts, mutedStyle.Render(" "+t.Icon+" "))
	}
	right := strings.Join(rightParts, "")
	frame := mutedStyle.Render(ViewerFrameLabel)

	leftW, rightW, frameW := lipgloss.Width(left), lipgloss.Width(right), lipgloss.Width(frame)
	switch {
	case leftW+frameW+rightW+4 <= width:
		gap := width - leftW - frameW - rightW
		pre := gap / 2
		left += strings.Repeat(" ", pre) + frame + strings.Repeat(" ", gap-pre) + right
	case leftW+rightW+1 <= width:
		left += strings.Repeat(" ", width-leftW-rightW) + right
	}
	return truncate(left, width), targets
}

// viewerSidebar lists the study and its series.
func (m *Model) viewerSidebar(r study.Record, width, height int) string {
	if height < 2 || width < 6 {
		return padBlock("", width, height)
	}
	inner := width - paneStyle.GetHorizontalFrameSize()
	lines := []string{
		titleStyle.Render(truncate(r.PatientName, inner)),
		truncate("MRN "+r.MRN, inner),
		truncate(r.DateString()+"  "+string(r.Modality), inner),
		mutedStyle.Render(truncate(r.Description, inner)),
		"",
		labelStyle.Render("Series"),
	}
	for _, s := range m.studies.Series(r.ID) {
		desc := s.Description
		if desc == "" {
			desc = "(no description)"
		}
		lines = append(lines, truncate(fmt.Sprintf("%d %s", s.Number, desc), inner))
		lines = append(lines, mutedStyle.Render(truncate("  "+string(s.Modality)+" · "+strconv.Itoa(s.InstanceCount)+" images", inner)))
	}
	innerHeight := height - paneStyle.GetVerticalFrameSize()
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	return paneStyle.
		Width(width - paneStyle.GetHorizontalBorderSize()).
		Height(innerHeight).
		Render(strings.Join(lines, "\n"))
}

// viewportGrid draws the panes of the committed layout. Each pane is boxed
// and labelled with its preset label or, for plain grids, the series it
// would show.
func (m *Model) viewportGrid(r study.Record, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	arr := m.selector.Current().Arrangement()
	series := m.studies.Series(r.ID)

	canvas := make([][]rune, height)
	for y := range canvas {
		canvas[y] = []rune(strings.Repeat(" ", width))
	}

	xs := gridStops(width, arr.Cols)
	ys := gridStops(height, arr.Rows)
	for i, p := range arr.Panes {
		x0, x1 := xs[p.Col-1], xs[p.Col-1+p.ColSpan]-1
		y0, y1 := ys[p.Row-1], ys[p.Row-1+p.RowSpan]-1
		if x1-x0 < 2 || y1-y0 < 1 {
			continue
		}
		drawBox(canvas, x0, y0, x1, y1)

		label := p.Label
		if label == "" && len(series) > 0 {
			label = series[i%len(series)].Description
		}
		if label == "" {
			label = fmt.Sprintf("Viewport %d", i+1)
		}
		drawLabel(canvas, label, x0+1, x1-1, (y0+y1)/2)
	}

	lines := make([]string, height)
	for y, row := range canvas {
		lines[y] = viewportStyle.Render(string(row))
	}
	return strings.Join(lines, "\n")
}

// gridStops splits size into n nearly equal spans and returns the n+1
// boundaries.
func gridStops(size, n int) []int {
	n = max(1, n)
	stops := make([]int, n+1)
	for i := range stops {
		stops[i] = i * size / n
	}
	return stops
}

func drawBox(canvas [][]rune, x0, y0, x1, y1 int) {
	for x := x0 + 1; x < x1; x++ {
		canvas[y0][x] = '─'
		canvas[y1][x] = '─'
	}
	for y := y0 + 1; y < y1; y++ {
		canvas[y][x0] = '│'
		canvas[y][x1] = '│'
	}
	canvas[y0][x0], canvas[y0][x1] = '┌', '┐'
	canvas[y1][x0], canvas[y1][x1] = '└', '┘'
}

// drawLabel centres text between x0 and x1 on row y, clipping it to fit.
func drawLabel(canvas [][]rune, text string, x0, x1, y int) {
	runes := []rune(text)
	span := x1 - x0 + 1
	if span <= 0 {
		return
	}
	if len(runes) > span {
		runes = runes[:span]
	}
	start := x0 + (span-len(runes))/2
	copy(canvas[y][start:], runes)
}
