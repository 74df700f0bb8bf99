package app

import (
	"testing"

	"github.com/treykane/cli-studies/internal/config"
)

func TestActionForKeySupportsDefaultAliases(t *testing.T) {
	m := &Model{}
	m.loadKeybindings(config.Config{})

	cases := map[string]string{
		"up":     actionCursorUp,
		"k":      actionCursorUp,
		"down":   actionCursorDown,
		"enter":  actionExpandToggle,
		" ":      actionExpandToggle,
		"g":      actionJumpTop,
		"G":      actionJumpBottom,
		"o":      actionOpenViewer,
		"/":      actionFocusFilters,
		"ctrl+x": actionClearFilters,
		"esc":    actionBack,
		"L":      actionLayoutMenu,
		"M":      actionMeasureMenu,
		"m":      actionToolCapture,
		"ctrl+c": actionQuit,
	}
	for key, want := range cases {
		if got := m.actionForKey(key); got != want {
			t.Fatalf("actionForKey(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestLoadKeybindingsOverrideReplacesDefaultAliases(t *testing.T) {
	m := &Model{}
	m.loadKeybindings(config.Config{
		Keybindings: map[string]string{
			actionCursorDown: "alt+j",
		},
	})

	if got := m.actionForKey("alt+j"); got != actionCursorDown {
		t.Fatalf("expected override key to map to cursor down, got %q", got)
	}
	if got := m.actionForKey("down"); got != "" {
		t.Fatalf("expected default alias 'down' to be replaced, got %q", got)
	}
	if got := m.actionForKey("j"); got != "" {
		t.Fatalf("expected default alias 'j' to be replaced, got %q", got)
	}
}

func TestLoadKeybindingsIgnoresUnknownAction(t *testing.T) {
	m := &Model{}
	m.loadKeybindings(config.Config{
		Keybindings: map[string]string{"viewer.teleport": "t"},
	})
	if got := m.actionForKey("t"); got != "" {
		t.Fatalf("expected unknown action to be ignored, got %q", got)
	}
}

func TestOverrideWinsKeyConflictAgainstDefault(t *testing.T) {
	m := &Model{}
	m.loadKeybindings(config.Config{
		Keybindings: map[string]string{actionLayoutMenu: "z"},
	})
	if got := m.actionForKey("z"); got != actionLayoutMenu {
		t.Fatalf("expected override to own 'z', got %q", got)
	}
	if got := m.primaryActionKey(actionLayoutMenu, "L"); got != "z" {
		t.Fatalf("expected primary key label z, got %q", got)
	}
}

func TestNormalizeKeyString(t *testing.T) {
	cases := map[string]string{
		"Ctrl+X":  "ctrl+x",
		" L ":     "shift+l",
		"shift+m": "shift+m",
		"space":   " ",
		" ":       " ",
		"":        "",
	}
	for in, want := range cases {
		if got := normalizeKeyString(in); got != want {
			t.Fatalf("normalizeKeyString(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestHumanizeKeyLabel(t *testing.T) {
	cases := map[string]string{
		"ctrl+x":  "Ctrl+X",
		"shift+l": "Shift+L",
		" ":       "Space",
		"up":      "↑",
		"esc":     "Esc",
	}
	for in, want := range cases {
		if got := humanizeKeyLabel(in); got != want {
			t.Fatalf("humanizeKeyLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
