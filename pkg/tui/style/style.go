package style

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

const (
	Gray       = lipgloss.Color("240")
	PaleYellow = lipgloss.Color("229")
	NeonPurple = lipgloss.Color("57")
	Lilac      = lipgloss.Color("105")
)

var (
	OpenRed       = lipgloss.AdaptiveColor{Light: "#c1121f", Dark: "#ff5f5f"}
	ResolvedGreen = lipgloss.AdaptiveColor{Light: "#2b9348", Dark: "#80ed99"}
	LightBlue     = lipgloss.AdaptiveColor{Light: "#415a77", Dark: "#778da9"}
)

var (
	HorizontalPadding = 1

	Main = lipgloss.NewStyle().Margin(0, 0).Padding(0, HorizontalPadding).Foreground(LightBlue)

	Padded = lipgloss.NewStyle().Padding(0, 2, 0, 1)

	TableContainer = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).BorderForeground(Gray)

	Table = table.Styles{
		Selected: lipgloss.NewStyle().Bold(true).Foreground(PaleYellow).Background(NeonPurple),
		Header:   lipgloss.NewStyle().Bold(false).Padding(0, 1).BorderStyle(lipgloss.NormalBorder()).BorderForeground(Gray).BorderBottom(true),
		Cell:     lipgloss.NewStyle().Padding(0, 1),
	}

	Help = lipgloss.NewStyle().Foreground(Lilac)

	// Notices are the "please try again" messages shown while prompting
	Notice = lipgloss.NewStyle().Bold(true).Foreground(OpenRed)

	Success = lipgloss.NewStyle().Bold(true).Foreground(ResolvedGreen)

	Open = lipgloss.NewStyle().Bold(true).Foreground(OpenRed)

	Resolved = lipgloss.NewStyle().Bold(true).Foreground(ResolvedGreen)

	IncidentViewer = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).BorderForeground(Gray)

	Error = lipgloss.NewStyle().
		Bold(true).
		Width(64).
		Foreground(lipgloss.AdaptiveColor{Light: "#E11C9C", Dark: "#FF62DA"}).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "#E11C9C", Dark: "#FF62DA"}).
		Padding(1, 3, 1, 3)
)
