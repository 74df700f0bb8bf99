package app

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	paneStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	popupStyle      = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1)
	menuStyle       = popupStyle.BorderForeground(lipgloss.Color("62"))
	selectedStyle   = lipgloss.NewStyle().Reverse(true)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStatus     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	accentStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	headerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236"))
	columnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Bold(true)
	labelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	focusedField    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	toolStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	toolActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("39"))
	toolHighlight   = lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214"))
	cellOnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	cellOffStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	viewportStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Background(lipgloss.Color("0"))
	tableBorder     = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	tableHeader     = lipgloss.NewStyle().Foreground(lipgloss.Color("110")).Bold(true).Padding(0, 1)
	tableCell       = lipgloss.NewStyle().Padding(0, 1)
)
