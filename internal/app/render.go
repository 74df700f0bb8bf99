// render.go renders the keyboard reference shown in the help overlay.
//
// The help text is generated as markdown from the live keybinding table, so
// user overrides from the config file show up in it, and is rendered through
// Glamour at the overlay width.
//
// # Glamour Renderers
//
// Glamour TermRenderer instances are cached per wrap width in a global map
// (rendererCache) protected by a mutex, with the least recently used width
// evicted once maxRendererCacheEntries is exceeded. Resizing the terminal
// back and forth reuses renderers instead of rebuilding them. The rendering
// style is determined by the CLI_STUDIES_GLAMOUR_STYLE or GLAMOUR_STYLE
// environment variable, defaulting to "dark".
package app

import (
	"container/list"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/treykane/cli-studies/internal/layout"
)

var (
	// maxRendererCacheEntries bounds the number of width-specific Glamour
	// renderers retained in memory.
	maxRendererCacheEntries = 8

	// rendererCacheMu protects concurrent access to the renderer cache.
	rendererCacheMu sync.Mutex

	// rendererCache maps wrap widths to reusable Glamour TermRenderer
	// instances.
	rendererCache = map[int]*glamour.TermRenderer{}

	// rendererCacheOrder tracks widths in LRU order (front = least recent,
	// back = most recent).
	rendererCacheOrder = list.New()

	// rendererCacheNodes stores the LRU-list node for each cached width.
	rendererCacheNodes = map[int]*list.Element{}
)

// refreshHelp re-renders the help markdown into the help viewport.
func (m *Model) refreshHelp() {
	m.help.SetContent(renderMarkdown(m.helpMarkdown(), m.help.Width))
}

// helpRow is one line of a help table: the keys and what they do.
type helpRow struct {
	keys string
	does string
}

// helpMarkdown lists every binding grouped by screen.
func (m *Model) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Keyboard Shortcuts\n\n")

	section := func(title string, rows []helpRow) {
		fmt.Fprintf(&b, "## %s\n\n| Keys | Action |\n| --- | --- |\n", title)
		for _, r := range rows {
			fmt.Fprintf(&b, "| %s | %s |\n", strings.ReplaceAll(r.keys, "|", "\\|"), r.does)
		}
		b.WriteString("\n")
	}

	section("Study List", []helpRow{
		{m.allActionKeys(actionCursorUp, "↑") + ", " + m.allActionKeys(actionCursorDown, "↓"), "Move selection"},
		{m.allActionKeys(actionJumpTop, "g") + " / " + m.allActionKeys(actionJumpBottom, "G"), "Jump to top / bottom"},
		{m.allActionKeys(actionExpandToggle, "Enter"), "Expand or collapse study details"},
		{m.allActionKeys(actionOpenViewer, "o"), "Open the Basic Viewer"},
		{m.allActionKeys(actionFocusFilters, "/"), "Edit filters"},
		{m.allActionKeys(actionClearFilters, "Ctrl+X"), "Clear all filters"},
		{"Click", "Select a study and show or hide its details"},
	})
	section("Filters", []helpRow{
		{"Tab / Shift+Tab", "Next / previous field"},
		{"←, →", "Cycle modality"},
		{"Enter, Esc", "Leave the filter form"},
		{"YYYY-MM-DD", "Date format for start and end dates"},
	})
	section("Basic Viewer", []helpRow{
		{m.allActionKeys(actionLayoutMenu, "L"), "Layout menu"},
		{m.allActionKeys(actionMeasureMenu, "M"), "Measurement tools"},
		{m.allActionKeys(actionToolZoom, "z"), "Zoom"},
		{m.allActionKeys(actionToolPan, "p"), "Pan"},
		{m.allActionKeys(actionToolCrosshair, "c"), "Crosshair"},
		{m.allActionKeys(actionToolWindow, "w"), "Window level"},
		{m.allActionKeys(actionToolCapture, "m"), "Capture"},
		{m.allActionKeys(actionToolSnapshot, "s"), "Snapshot"},
		{m.allActionKeys(actionBack, "Esc"), "Back to the study list"},
		{"Mouse", "Click toolbar buttons, hover the grid picker"},
	})
	section("Layout Menu", []helpRow{
		{"Tab", "Switch between presets and the custom grid"},
		{"↑/↓/←/→", "Move the preset cursor or the grid preview"},
		{"Enter, Space", "Apply the layout"},
		{"Esc", "Close without changing the layout"},
	})

	b.WriteString("## Layouts\n\n")
	for _, g := range []layout.Group{layout.GroupCommon, layout.GroupAdvanced} {
		names := make([]string, 0, len(layout.PresetsIn(g)))
		for _, p := range layout.PresetsIn(g) {
			names = append(names, "`"+p.Label()+"`")
		}
		fmt.Fprintf(&b, "- **%s**: %s\n", g, strings.Join(names, ", "))
	}
	fmt.Fprintf(&b, "- **Custom**: any grid up to %d rows by %d columns\n\n", layout.PickerRows, layout.PickerCols)

	fmt.Fprintf(&b, "%s toggles this help, %s quits.\n",
		m.primaryActionKey(actionHelp, "?"), m.primaryActionKey(actionQuit, "q"))
	return b.String()
}

// renderMarkdown converts raw markdown text to ANSI-formatted output. If
// renderer creation or rendering fails, the raw markdown is returned as-is
// so the user still sees content (just unformatted).
func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = 80
	}
	renderer, err := getRenderer(width)
	if err != nil {
		appLog.Error("create markdown renderer", "width", width, "error", err)
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		appLog.Error("render markdown content", "width", width, "error", err)
		return content
	}
	return out
}

// getRenderer returns a cached Glamour TermRenderer for the given width,
// creating one if it doesn't exist.
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if width <= 0 {
		width = 80
	}
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	if renderer, ok := rendererCache[width]; ok {
		if node, ok := rendererCacheNodes[width]; ok {
			rendererCacheOrder.MoveToBack(node)
		}
		return renderer, nil
	}
	renderer, err := glamour.NewTermRenderer(
		glamourStyleOption(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	rendererCache[width] = renderer
	rendererCacheNodes[width] = rendererCacheOrder.PushBack(width)
	evictOldestRendererIfNeeded()
	return renderer, nil
}

func evictOldestRendererIfNeeded() {
	for len(rendererCache) > maxRendererCacheEntries && rendererCacheOrder.Len() > 0 {
		oldest := rendererCacheOrder.Front()
		width, _ := oldest.Value.(int)
		rendererCacheOrder.Remove(oldest)
		delete(rendererCache, width)
		delete(rendererCacheNodes, width)
	}
}

func resetRendererCacheForTests() {
	rendererCacheMu.Lock()
	defer rendererCacheMu.Unlock()
	rendererCache = map[int]*glamour.TermRenderer{}
	rendererCacheOrder = list.New()
	rendererCacheNodes = map[int]*list.Element{}
}

// glamourStyleOption resolves the Glamour rendering style from environment
// variables. The lookup order is:
//
//  1. CLI_STUDIES_GLAMOUR_STYLE (app-specific override)
//  2. GLAMOUR_STYLE (Glamour's own environment variable)
//  3. "dark"
//
// The special value "auto" delegates to Glamour's auto-detection, which
// queries the terminal's background color. All other values are passed
// through as standard style names (dark, light, notty).
func glamourStyleOption() glamour.TermRendererOption {
	style := strings.ToLower(strings.TrimSpace(os.Getenv("CLI_STUDIES_GLAMOUR_STYLE")))
	if style == "" {
		style = strings.ToLower(strings.TrimSpace(os.Getenv("GLAMOUR_STYLE")))
	}
	if style == "" {
		style = "dark"
	}
	if style == "auto" {
		return glamour.WithAutoStyle()
	}
	switch style {
	case "dark", "light", "notty":
		return glamour.WithStandardStyle(style)
	default:
		return glamour.WithStandardStyle("dark")
	}
}
