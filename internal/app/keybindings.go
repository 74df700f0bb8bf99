package app

import (
	"maps"
	"slices"
	"strings"

	"github.com/treykane/cli-studies/internal/config"
)

// ---------------------------------------------------------------------------
// Action constants
// ---------------------------------------------------------------------------
//
// Each constant below identifies a user-triggerable action. Actions are the
// abstraction layer between physical key presses and application behavior:
// the user presses a key, the key is looked up in the keyToAction map, and
// the resulting action string is dispatched by the handler of the active
// screen. Keys that reach a screen with no use for their action are ignored.
//
// Default key assignments are declared in defaultActionKeys. Users can
// override any assignment via the "keybindings" map in config.yaml.
// ---------------------------------------------------------------------------

const (
	// actionCursorUp moves the study list selection up by one row.
	actionCursorUp = "list.cursor.up"

	// actionCursorDown moves the study list selection down by one row.
	actionCursorDown = "list.cursor.down"

	// actionJumpTop moves selection to the first visible study.
	actionJumpTop = "list.jump.top"

	// actionJumpBottom moves selection to the last visible study.
	actionJumpBottom = "list.jump.bottom"

	// actionExpandToggle shows or hides the detail panel of the selected
	// study.
	actionExpandToggle = "list.expand.toggle"

	// actionOpenViewer opens the Basic Viewer for the selected study.
	actionOpenViewer = "viewer.open"

	// actionFocusFilters moves keyboard focus into the filter form.
	actionFocusFilters = "filter.focus"

	// actionClearFilters resets every filter field.
	actionClearFilters = "filter.clear"

	// actionBack leaves the viewer and returns to the study list.
	actionBack = "viewer.back"

	// actionLayoutMenu opens the layout selector menu.
	actionLayoutMenu = "viewer.layout.menu"

	// actionMeasureMenu opens the measurement tool menu.
	actionMeasureMenu = "viewer.measure.menu"

	// actionToolZoom toggles the zoom tool.
	actionToolZoom = "viewer.tool.zoom"

	// actionToolPan toggles the pan tool.
	actionToolPan = "viewer.tool.pan"

	// actionToolCrosshair toggles the crosshair tool.
	actionToolCrosshair = "viewer.tool.crosshair"

	// actionToolWindow toggles the window/level settings tool.
	actionToolWindow = "viewer.tool.window"

	// actionToolCapture toggles the highlighted capture tool.
	actionToolCapture = "viewer.tool.capture"

	// actionToolSnapshot toggles the snapshot tool.
	actionToolSnapshot = "viewer.tool.snapshot"

	// actionHelp toggles the in-app keyboard shortcut reference panel.
	actionHelp = "help.toggle"

	// actionQuit exits the application.
	actionQuit = "app.quit"
)

// defaultActionKeys maps each action to its factory-default key bindings.
//
// Key strings use the Bubble Tea notation:
//   - Modifier keys: "ctrl+", "alt+", "shift+"
//   - Special keys: "enter", "esc", "tab", "up", "down", "left", "right"
//   - Single characters: "o", "f", "?", etc.
var defaultActionKeys = map[string][]string{
	actionCursorUp:      {"up", "k"},
	actionCursorDown:    {"down", "j"},
	actionJumpTop:       {"g", "home"},
	actionJumpBottom:    {"shift+g", "end"},
	actionExpandToggle:  {"enter", "right", "l", " "},
	actionOpenViewer:    {"o"},
	actionFocusFilters:  {"/", "f"},
	actionClearFilters:  {"ctrl+x"},
	actionBack:          {"esc", "backspace", "b"},
	actionLayoutMenu:    {"shift+l"},
	actionMeasureMenu:   {"shift+m"},
	actionToolZoom:      {"z"},
	actionToolPan:       {"p"},
	actionToolCrosshair: {"c"},
	actionToolWindow:    {"w"},
	actionToolCapture:   {"m"},
	actionToolSnapshot:  {"s"},
	actionHelp:          {"?"},
	actionQuit:          {"q", "ctrl+c"},
}

// ---------------------------------------------------------------------------
// Keybinding initialization
// ---------------------------------------------------------------------------

// loadKeybindings initializes the bidirectional key↔action maps from two
// sources, applied in order of increasing priority:
//
//  1. defaultActionKeys: built-in factory defaults (always applied first).
//  2. cfg.Keybindings: overrides from the "keybindings" map in
//     ~/.cli-studies/config.yaml.
//
// Unknown action names in user overrides are logged as warnings and ignored.
// An override replaces the action's full default key set with the configured
// key. Key conflicts (two actions mapped to the same key) are also logged as
// warnings; the action that sorts first keeps the key.
func (m *Model) loadKeybindings(cfg config.Config) {
	m.keyForAction = map[string][]string{}
	for action, keys := range defaultActionKeys {
		m.keyForAction[action] = append([]string(nil), keys...)
	}

	for action, key := range cfg.Keybindings {
		m.applyKeybindingOverride(action, key)
	}

	m.rebuildActionKeyIndex()
}

// applyKeybindingOverride updates a single action's key binding, replacing the
// action's full default key set.
//
// Both the action and key are trimmed and normalized. If the action string
// is not recognized (i.e. it does not exist in defaultActionKeys), the
// override is ignored and a warning is logged.
func (m *Model) applyKeybindingOverride(action, key string) {
	action = strings.TrimSpace(action)
	key = normalizeKeyString(key)
	if action == "" || key == "" {
		return
	}
	if _, ok := defaultActionKeys[action]; !ok {
		appLog.Warn("ignore unknown keybinding action", "action", action)
		return
	}
	m.keyForAction[action] = []string{key}
}

// rebuildActionKeyIndex constructs the reverse lookup map (keyToAction) from
// the current keyForAction map.
//
// Overridden actions are indexed before defaults, so a user override wins a
// conflict against a factory default. Within each pass actions are visited
// in sorted order so conflict resolution is stable between runs.
func (m *Model) rebuildActionKeyIndex() {
	m.keyToAction = map[string]string{}
	actions := slices.Sorted(maps.Keys(m.keyForAction))
	overridden := func(action string) bool {
		return !slices.Equal(m.keyForAction[action], defaultActionKeys[action])
	}
	for _, pass := range []bool{true, false} {
		for _, action := range actions {
			if overridden(action) != pass {
				continue
			}
			for _, key := range m.keyForAction[action] {
				if key == "" {
					continue
				}
				if existing, ok := m.keyToAction[key]; ok && existing != action {
					appLog.Warn("keybinding conflict ignored", "key", key, "action", action, "existing_action", existing)
					continue
				}
				m.keyToAction[key] = action
			}
		}
	}
}

// ---------------------------------------------------------------------------
// Key string normalization
// ---------------------------------------------------------------------------

// normalizeKeyString converts a user-provided key string into the canonical
// lowercase form used internally by Bubble Tea and the keybinding maps.
//
// Normalization rules:
//   - Whitespace is trimmed.
//   - The entire string is lowercased (Bubble Tea reports keys in lowercase).
//   - A single uppercase letter (e.g. "L") is converted to "shift+l" because
//     Bubble Tea may report shifted letter keys as uppercase runes. This
//     ensures that both "L" and "shift+l" in config files produce the same
//     internal representation.
//   - A lone space is kept as " ", the rune Bubble Tea reports for the
//     space bar.
//
// Examples:
//
//	normalizeKeyString("Ctrl+X")  → "ctrl+x"
//	normalizeKeyString(" L ")     → "shift+l"
//	normalizeKeyString("shift+m") → "shift+m"
//	normalizeKeyString("")        → ""
func normalizeKeyString(key string) string {
	if key == " " || strings.EqualFold(strings.TrimSpace(key), "space") {
		return " "
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	// Bubble Tea may report uppercase single rune keys for shifted letters.
	if len([]rune(key)) == 1 && strings.ToUpper(key) == key && strings.ToLower(key) != key {
		return "shift+" + strings.ToLower(key)
	}
	return strings.ToLower(key)
}

// actionForKey looks up the action bound to the given key string.
//
// The key is normalized before lookup to ensure consistent matching
// regardless of how the terminal reports the key event. Returns an empty
// string if no action is bound to the key.
func (m *Model) actionForKey(key string) string {
	if m.keyToAction == nil {
		return ""
	}
	return m.keyToAction[normalizeKeyString(key)]
}

func (m *Model) actionKeyLabels(action string) []string {
	keys, ok := m.keyForAction[action]
	if !ok || len(keys) == 0 {
		return nil
	}
	labels := make([]string, 0, len(keys))
	for _, key := range keys {
		label := humanizeKeyLabel(key)
		if label == "" {
			continue
		}
		if slices.Contains(labels, label) {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

func (m *Model) primaryActionKey(action, fallback string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return fallback
	}
	return keys[0]
}

func (m *Model) allActionKeys(action, fallback string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return fallback
	}
	return strings.Join(keys, ", ")
}

func humanizeKeyLabel(key string) string {
	normalized := normalizeKeyString(key)
	if normalized == "" {
		return ""
	}
	if normalized == " " {
		return "Space"
	}
	special := map[string]string{
		"up":        "↑",
		"down":      "↓",
		"left":      "←",
		"right":     "→",
		"enter":     "Enter",
		"esc":       "Esc",
		"tab":       "Tab",
		"home":      "Home",
		"end":       "End",
		"pgup":      "PgUp",
		"pgdown":    "PgDn",
		"space":     "Space",
		"backspace": "Backspace",
	}
	parts := strings.Split(normalized, "+")
	for i, part := range parts {
		switch part {
		case "ctrl":
			parts[i] = "Ctrl"
		case "alt":
			parts[i] = "Alt"
		case "shift":
			parts[i] = "Shift"
		default:
			if label, ok := special[part]; ok {
				parts[i] = label
				continue
			}
			runes := []rune(part)
			if len(runes) == 1 && runes[0] >= 'a' && runes[0] <= 'z' {
				parts[i] = strings.ToUpper(part)
			} else {
				parts[i] = strings.ToUpper(part[:1]) + part[1:]
			}
		}
	}
	return strings.Join(parts, "+")
}
