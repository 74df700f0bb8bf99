package app

// View draws the active screen, any open menu or help overlay, and the
// status footer.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	footerHeight := m.footerHeightForWidth(m.width)
	layout := m.calculateLayout()

	var content string
	switch m.screen {
	case screenViewer:
		content = m.renderViewer(layout)
	default:
		content = m.renderList(layout)
	}
	content = padBlock(content, m.width, layout.ContentHeight)

	if m.screen == screenViewer {
		if block, x, y, _, ok := m.openMenu(); ok {
			content = placeOverlay(content, block, m.width, x, y)
		}
	}
	if m.showHelp {
		content = placeOverlay(content, m.renderHelp(layout), m.width, HelpPopupPadding, 0)
	}

	view := content + "\n" + m.renderStatus(m.width, footerHeight)
	return padBlock(view, m.width, m.height)
}

// renderHelp frames the help viewport.
func (m *Model) renderHelp(layout LayoutDimensions) string {
	return popupStyle.
		Width(layout.HelpWidth + popupStyle.GetHorizontalPadding()).
		Height(layout.HelpHeight).
		Render(m.help.View())
}
