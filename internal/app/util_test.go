package app

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/cli-studies/internal/layout"
)

func TestPadBlockNormalizesSize(t *testing.T) {
	out := padBlock("a\nbbbbbbbb\nc\nd", 4, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if lipgloss.Width(line) != 4 {
			t.Fatalf("line %d has width %d", i, lipgloss.Width(line))
		}
	}
	if lines[1] != "bbbb" {
		t.Fatalf("expected truncated line, got %q", lines[1])
	}
	if padBlock("x", 0, 3) != "" {
		t.Fatal("expected empty block for zero width")
	}
}

func TestPlaceOverlayKeepsWidth(t *testing.T) {
	base := padBlock("", 10, 4)
	out := placeOverlay(base, "XX\nYY", 10, 3, 1)
	lines := strings.Split(out, "\n")
	if lines[1] != "   XX     " || lines[2] != "   YY     " {
		t.Fatalf("unexpected overlay placement %q", lines)
	}
	if lines[0] != strings.Repeat(" ", 10) || lines[3] != strings.Repeat(" ", 10) {
		t.Fatal("expected rows outside the block untouched")
	}

	clipped := placeOverlay(base, "A\nB\nC", 10, 0, 3)
	if got := strings.Split(clipped, "\n"); len(got) != 4 || !strings.HasPrefix(got[3], "A") {
		t.Fatalf("expected rows past the base to be dropped, got %q", got)
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 6, "hello…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
	}
	for _, tc := range cases {
		if got := truncateWithEllipsis(tc.in, tc.width); got != tc.want {
			t.Fatalf("truncateWithEllipsis(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestGridStopsCoverSize(t *testing.T) {
	stops := gridStops(10, 3)
	want := []int{0, 3, 6, 10}
	for i := range want {
		if stops[i] != want[i] {
			t.Fatalf("gridStops(10, 3) = %v, want %v", stops, want)
		}
	}
}

func TestViewportGridDrawsOneBoxPerPane(t *testing.T) {
	m := newTestModel(t, 120, 30)
	r := m.all[0]

	for _, tc := range []struct {
		name    string
		sel     func() error
		corners int
	}{
		{"1x1", func() error { _, err := m.selector.SelectPreset("1x1"); return err }, 1},
		{"2x2", func() error { _, err := m.selector.SelectPreset("2x2"); return err }, 4},
		{"custom full grid", func() error {
			_, err := m.selector.CommitCustom(layout.PickerRows, layout.PickerCols)
			return err
		}, layout.PickerRows * layout.PickerCols},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.sel(); err != nil {
				t.Fatalf("select: %v", err)
			}
			grid := m.viewportGrid(r, 80, 24)
			if got := strings.Count(grid, "┌"); got != tc.corners {
				t.Fatalf("expected %d panes, got %d", tc.corners, got)
			}
			if got := len(strings.Split(grid, "\n")); got != 24 {
				t.Fatalf("expected 24 rows, got %d", got)
			}
		})
	}

	if arr := m.selector.Current().Arrangement(); arr.Rows != layout.PickerRows || arr.Cols != layout.PickerCols {
		t.Fatalf("expected full picker arrangement, got %dx%d", arr.Rows, arr.Cols)
	}
}
