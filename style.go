package main

import "github.com/charmbracelet/lipgloss"

const (
	rowTextFGColor         = "#c0c0c0"
	rowSelectedTextFGColor = "#e0e0e0"
	rowSelectedBGColor     = "#3a3a3a"
	badgeBGColor           = "#c0392b"
	highlightBorderColor   = "#f5c542"
	errorFGColor           = "#e74c3c"
)

var (
	appstyle    = lipgloss.NewStyle().Margin(1, 2)
	headerStyle = lipgloss.NewStyle().Bold(true).BorderStyle(lipgloss.Border{
		Left:  " ",
		Right: " ",
	}).BorderLeft(true).BorderRight(true)

	rowStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color(rowTextFGColor))
	rowSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(rowSelectedBGColor)).
				Foreground(lipgloss.Color(rowSelectedTextFGColor))

	cellStyle  = lipgloss.NewStyle().Padding(0, 1)
	tableStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
	badgeStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(badgeBGColor)).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1)

	// Category selector
	radioStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	radioCheckedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color(badgeBGColor)).Padding(0, 1)

	// Detail panel
	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1)
	detailHighlightStyle = detailStyle.BorderForeground(lipgloss.Color(highlightBorderColor))
	titleStyle           = lipgloss.NewStyle().Bold(true)
	timeStyle            = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(highlightBorderColor))
	labelStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color(errorFGColor))

	refreshStyle     = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder())
	refreshBusyStyle = refreshStyle.Faint(true)
)
