// layout.go centralizes all terminal layout calculations for the two screens.
//
// The study list is a single column: a title row, the filter form (which
// wraps onto as many rows as the terminal width requires), a hint row, the
// column headers and then the study rows. The viewer has a study header row
// and a toolbar row above a body split into an optional fixed-width sidebar
// and the viewport area. Both screens reserve two or three footer rows at
// the bottom depending on how much status content fits.
//
// All dimension calculations are gathered into a single LayoutDimensions
// struct so View, the mouse hit-testing and the scrolling logic agree on
// where everything is drawn.
package app

// LayoutDimensions holds all calculated layout dimensions for the UI.
type LayoutDimensions struct {
	ContentHeight  int // rows above the footer
	FormRows       int // rows used by the wrapped filter form
	ListBodyHeight int // rows available for study rows and their details
	SidebarWidth   int // viewer sidebar width, 0 when hidden
	MainWidth      int // viewer viewport area width
	BodyHeight     int // viewer rows below the header and toolbar
	HelpWidth      int // usable width inside the help overlay
	HelpHeight     int // usable height inside the help overlay
}

// listChromeRows counts the fixed list rows around the form: title, hint
// and column headers.
const listChromeRows = 3

// calculateLayout computes all UI dimensions based on terminal size.
func (m *Model) calculateLayout() LayoutDimensions {
	contentHeight := max(0, m.height-m.footerHeightForWidth(m.width))
	formRows := len(m.filterFormLines(m.width))

	sidebar := 0
	if m.width >= MinSidebarTerminalWidth {
		sidebar = SidebarWidth
	}

	helpOuter := max(0, m.width-2*HelpPopupPadding)
	return LayoutDimensions{
		ContentHeight:  contentHeight,
		FormRows:       formRows,
		ListBodyHeight: max(0, contentHeight-listChromeRows-formRows),
		SidebarWidth:   sidebar,
		MainWidth:      max(0, m.width-sidebar),
		BodyHeight:     max(0, contentHeight-ViewerHeaderRows),
		HelpWidth:      max(0, helpOuter-popupStyle.GetHorizontalFrameSize()),
		HelpHeight:     max(0, contentHeight-popupStyle.GetVerticalFrameSize()),
	}
}

// footerHeightForWidth returns how many rows should be reserved for the footer.
// It prefers FooterMinRows and expands to FooterMaxRows when the footer
// segments cannot fit without dropping content.
func (m *Model) footerHeightForWidth(width int) int {
	_, fit := m.buildStatusRows(width, FooterMinRows)
	if fit {
		return FooterMinRows
	}
	return FooterMaxRows
}

// applyLayout updates the help viewport dimensions to match the calculated
// layout.
func (m *Model) applyLayout(layout LayoutDimensions) {
	m.help.Width = layout.HelpWidth
	m.help.Height = layout.HelpHeight
}
