package app

// Layout constants define the default dimensions and spacing for the UI
const (
	// SidebarWidth is the width of the viewer's study/series sidebar
	SidebarWidth = 30

	// MinSidebarTerminalWidth hides the viewer sidebar on narrower terminals
	MinSidebarTerminalWidth = 70

	// ViewerHeaderRows is the number of rows above the viewer body
	// (study header + toolbar)
	ViewerHeaderRows = 2

	// FilterInputWidth is the visible width of each filter text field
	FilterInputWidth = 14

	// HelpPopupPadding is the horizontal margin around the help overlay
	HelpPopupPadding = 4

	// FooterMinRows is the default number of rows reserved for the bottom
	// status/help area. The app targets two rows on typical terminal widths.
	FooterMinRows = 2
	// FooterMaxRows is the expanded footer height used when content does not
	// fit within FooterMinRows.
	FooterMaxRows = 3
)

// Input limits define maximum sizes for user input
const (
	// InputCharLimit is the maximum number of characters allowed in text inputs
	InputCharLimit = 120
)

// Picker rendering
const (
	// PickerCellWidth is the rendered width of one custom-grid cell,
	// including the trailing gap.
	PickerCellWidth = 4

	// PresetColumnGap separates the common presets on their single row
	PresetColumnGap = 2
)

// Viewer placeholders
const (
	// ViewerFrameLabel is the orientation/frame readout shown on the toolbar
	ViewerFrameLabel = "H: Axial | Frame 1/50"
)
