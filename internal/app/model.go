package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cli-studies/internal/config"
	"github.com/treykane/cli-studies/internal/filter"
	"github.com/treykane/cli-studies/internal/layout"
	"github.com/treykane/cli-studies/internal/study"
	"github.com/treykane/cli-studies/internal/toolbar"
)

// screen selects which top-level view is drawn.
type screen int

const (
	screenList screen = iota
	screenViewer
)

// menuFocus is the section of the layout menu driven by the keyboard.
type menuFocus int

const (
	focusPresets menuFocus = iota
	focusPicker
)

// noFilterFocus marks the filter form as not focused.
const noFilterFocus = -1

// Options configures a new Model.
type Options struct {
	// Config supplies keybinding overrides and the default layout.
	Config config.Config
	// Layout overrides Config.DefaultLayout when set.
	Layout layout.Preset
	// Studies is the collection to browse. Nil loads the built-in catalogue.
	Studies *study.Collection
}

// Model holds the Bubble Tea state for the entire UI.
type Model struct {
	// Study data
	studies  *study.Collection
	all      []study.Record
	results  []study.Record
	criteria filter.Criteria

	// List screen
	inputs      []textinput.Model // indexed by filter.Field
	filterFocus int
	cursor      int
	listOffset  int
	expanded    map[string]bool

	// Viewer screen
	screen        screen
	viewingID     string
	selector      *layout.Selector
	tools         toolbar.State
	menuFocus     menuFocus
	presetCursor  int
	measureCursor int

	// Keybindings
	keyForAction map[string][]string
	keyToAction  map[string]string

	// UI widgets
	help          viewport.Model
	showHelp      bool
	status        string
	statusIsError bool
	debugInput    bool

	// Layout sizing
	width  int
	height int
}

// New prepares the initial UI model: the study collection, the filter form
// and the layout selector.
func New(opts Options) (*Model, error) {
	studies := opts.Studies
	if studies == nil {
		loaded, err := study.Load()
		if err != nil {
			return nil, fmt.Errorf("load studies: %w", err)
		}
		studies = loaded
	}

	initial := opts.Layout
	if initial == "" {
		initial = opts.Config.Layout()
	}
	selector, err := layout.NewSelector(initial)
	if err != nil {
		return nil, err
	}

	m := &Model{
		studies:     studies,
		all:         studies.Records(),
		inputs:      newFilterInputs(),
		filterFocus: noFilterFocus,
		expanded:    map[string]bool{},
		selector:    selector,
		help:        viewport.New(0, 0),
		debugInput:  os.Getenv("CLI_STUDIES_DEBUG_INPUT") != "",
	}
	m.loadKeybindings(opts.Config)
	m.applyFilters()
	m.setStatus("Ready")
	appLog.Debug("study browser ready", "studies", m.studies.Len(), "layout", selector.Current().String())
	return m, nil
}

// Init has nothing to start; every operation is synchronous.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update is the Bubble Tea update loop: handle events and emit commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if m.shouldIgnoreInput(msg) {
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

// handleWindowResize records the terminal size and resizes the help viewport.
func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.applyLayout(m.calculateLayout())
	if m.showHelp {
		m.refreshHelp()
	}
	m.ensureCursorVisible()
	return m, nil
}

// handleKey routes key presses to the overlay or screen that owns them.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showHelp {
		return m.handleHelpKey(msg)
	}
	switch m.screen {
	case screenViewer:
		switch m.tools.Menu {
		case toolbar.MenuLayout:
			return m.handleLayoutMenuKey(msg)
		case toolbar.MenuMeasurement:
			return m.handleMeasureMenuKey(msg)
		}
		return m.handleViewerKey(msg.String())
	default:
		if m.filterFocus != noFilterFocus {
			return m.handleFilterKey(msg)
		}
		return m.handleListKey(msg.String())
	}
}

// viewing returns the study open in the viewer.
func (m *Model) viewing() (study.Record, bool) {
	if m.viewingID == "" {
		return study.Record{}, false
	}
	return m.studies.Lookup(m.viewingID)
}

func isOSCBackgroundResponse(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes {
		return false
	}
	sequence := msg.String()
	if sequence == "" {
		return false
	}
	sequence = trimOSCSequenceSuffix(sequence)
	if !strings.Contains(sequence, "rgb:") {
		return false
	}
	if !strings.Contains(sequence, "\x1b") &&
		!strings.Contains(sequence, "11;rgb:") &&
		!strings.Contains(sequence, "1;rgb:") {
		return false
	}
	return hasRGBTriple(sequence)
}

// shouldIgnoreInput drops terminal responses (OSC colour replies) and raw
// control sequences that would otherwise be typed into a filter field.
func (m *Model) shouldIgnoreInput(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes {
		return false
	}
	if isOSCBackgroundResponse(msg) || containsControlRunes(msg.String()) {
		if m.debugInput {
			m.setStatus(fmt.Sprintf("Ignored input: %q", msg.String()))
		}
		return true
	}
	return false
}

func trimOSCSequenceSuffix(sequence string) string {
	for _, suffix := range []string{"\x1b\\", "\a", "\\", "\x1b"} {
		if strings.HasSuffix(sequence, suffix) {
			return strings.TrimSuffix(sequence, suffix)
		}
	}
	return sequence
}

func containsControlRunes(sequence string) bool {
	for _, r := range sequence {
		switch {
		case r == '\n' || r == '\t':
			continue
		case r < 32 || r == 127:
			return true
		}
	}
	return false
}

func isHex(value string) bool {
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func hasRGBTriple(sequence string) bool {
	index := strings.Index(sequence, "rgb:")
	if index == -1 {
		return false
	}
	parts := strings.SplitN(sequence[index+len("rgb:"):], "/", 3)
	if len(parts) != 3 {
		return false
	}
	for _, part := range parts {
		if len(part) < 4 || !isHex(part[:4]) {
			return false
		}
	}
	return true
}
