package app

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFooterHeightForWidthPrefersTwoRowsWhenFit(t *testing.T) {
	m := newTestModel(t, 240, 30)

	if got := m.footerHeightForWidth(240); got != FooterMinRows {
		t.Fatalf("expected %d footer rows at wide width, got %d", FooterMinRows, got)
	}
}

func TestFooterHeightForWidthExpandsToThreeRowsWhenNeeded(t *testing.T) {
	m := newTestModel(t, 72, 30)
	m.setStatus("Invalid date ignored while re-evaluating every study in the catalogue")

	if got := m.footerHeightForWidth(72); got != FooterMaxRows {
		t.Fatalf("expected %d footer rows at narrow width, got %d", FooterMaxRows, got)
	}
}

func TestBuildStatusRowsTruncatesWithEllipsisWhenOverCapacity(t *testing.T) {
	m := newTestModel(t, 80, 30)
	m.setStatus(strings.Repeat("status ", 30))

	rows, fit := m.buildStatusRows(28, FooterMaxRows)
	if fit {
		t.Fatal("expected rows to overflow and require truncation")
	}
	if len(rows) != FooterMaxRows {
		t.Fatalf("expected %d rows, got %d", FooterMaxRows, len(rows))
	}
	if !strings.Contains(rows[len(rows)-1], "…") {
		t.Fatalf("expected ellipsis in final row, got %q", rows[len(rows)-1])
	}
}

func TestStatusHelpSegmentsByFocus(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		m := newTestModel(t, 120, 30)
		joined := strings.Join(m.statusHelpSegments(), " | ")
		for _, want := range []string{"O open", "/ filter", "Q quit"} {
			if !strings.Contains(joined, want) {
				t.Fatalf("expected list help to include %q, got %q", want, joined)
			}
		}
	})

	t.Run("filter", func(t *testing.T) {
		m := newTestModel(t, 120, 30)
		sendKey(m, "/")
		joined := strings.Join(m.statusHelpSegments(), " | ")
		if !strings.Contains(joined, "Tab next field") {
			t.Fatalf("expected filter help, got %q", joined)
		}
	})

	t.Run("viewer", func(t *testing.T) {
		m := newTestModel(t, 120, 30)
		sendKey(m, "o")
		joined := strings.Join(m.statusHelpSegments(), " | ")
		if !strings.Contains(joined, "Shift+L layout") {
			t.Fatalf("expected viewer help to include layout, got %q", joined)
		}
	})

	t.Run("layout menu", func(t *testing.T) {
		m := newTestModel(t, 120, 30)
		sendKey(m, "o")
		sendKey(m, "L")
		joined := strings.Join(m.statusHelpSegments(), " | ")
		if !strings.Contains(joined, "Layout menu") {
			t.Fatalf("expected layout menu help, got %q", joined)
		}
	})
}

func TestStatusContextShowsFilterSummaryAndLayout(t *testing.T) {
	m := newTestModel(t, 120, 30)
	typeText(m, "/", "ct")
	joined := strings.Join(m.statusContextSegments(), " | ")
	if !strings.Contains(joined, "Patient Name=ct") {
		t.Fatalf("expected filter summary in context, got %q", joined)
	}

	sendKey(m, "esc")
	sendKey(m, "o")
	joined = strings.Join(m.statusContextSegments(), " | ")
	if !strings.Contains(joined, "Layout 1x1") {
		t.Fatalf("expected layout in viewer context, got %q", joined)
	}

	sendKey(m, "L")
	if joined = strings.Join(m.statusContextSegments(), " | "); strings.Contains(joined, "Preview") {
		t.Fatalf("expected no preview before the picker is hovered, got %q", joined)
	}
	sendKey(m, "tab")
	sendKey(m, "down")
	if joined = strings.Join(m.statusContextSegments(), " | "); !strings.Contains(joined, "Preview 2×1") {
		t.Fatalf("expected picker preview in context, got %q", joined)
	}
}

func TestCalculateLayoutReservesFooterRowsAndStaysNonNegative(t *testing.T) {
	m := newTestModel(t, 70, 2)
	layout := m.calculateLayout()
	if layout.ContentHeight < 0 || layout.ListBodyHeight < 0 || layout.BodyHeight < 0 {
		t.Fatalf("expected non-negative heights, got %+v", layout)
	}

	_, _ = m.handleWindowResize(resize(240, 24))
	layout = m.calculateLayout()
	expected := 24 - FooterMinRows
	if layout.ContentHeight != expected {
		t.Fatalf("expected content height %d, got %d", expected, layout.ContentHeight)
	}
	if layout.SidebarWidth != SidebarWidth || layout.MainWidth != 240-SidebarWidth {
		t.Fatalf("unexpected viewer split %+v", layout)
	}
}

func TestCalculateLayoutHidesSidebarOnNarrowTerminal(t *testing.T) {
	m := newTestModel(t, MinSidebarTerminalWidth-1, 24)
	layout := m.calculateLayout()
	if layout.SidebarWidth != 0 || layout.MainWidth != m.width {
		t.Fatalf("expected no sidebar, got %+v", layout)
	}
}

func TestViewPadsToTerminalSizeWithAdaptiveFooter(t *testing.T) {
	for _, tc := range []struct {
		name  string
		keys  []string
		width int
	}{
		{name: "list", width: 90},
		{name: "expanded", keys: []string{"enter"}, width: 90},
		{name: "viewer", keys: []string{"o"}, width: 120},
		{name: "layout menu", keys: []string{"o", "L"}, width: 120},
		{name: "measure menu", keys: []string{"o", "M"}, width: 60},
		{name: "help", keys: []string{"?"}, width: 90},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t, tc.width, 30)
			for _, k := range tc.keys {
				sendKey(m, k)
			}

			out := m.View()
			lines := strings.Split(out, "\n")
			if len(lines) != m.height {
				t.Fatalf("expected %d lines, got %d", m.height, len(lines))
			}
			for i, line := range lines {
				if w := lipgloss.Width(line); w != m.width {
					t.Fatalf("line %d width mismatch: expected %d, got %d", i+1, m.width, w)
				}
			}
		})
	}
}

func TestViewShowsLoadingBeforeFirstResize(t *testing.T) {
	m, err := New(Options{})
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	if got := m.View(); got != "Loading..." {
		t.Fatalf("expected loading placeholder, got %q", got)
	}
}
