package tui

import (
	"github.com/charmbracelet/bubbles/table"
)

const (
	initialTableHeight = 20
	initialTableWidth  = 106

	rankWidth      = 4
	idWidth        = 12
	levelWidth     = 8
	frequencyWidth = 10
	statusWidth    = 8
	scoreWidth     = 6
	minSystemWidth = 16

	// Each cell is padded by one space on either side
	cellPadding = 2
	// Left and right border of the table container
	borderEdges = 2
)

// tableColumns lays out the table for the given terminal width, giving the
// system name whatever space the fixed width columns leave over. Both modes
// have seven columns.
func tableColumns(ranked bool, width int) []table.Column {
	if width <= 0 {
		width = initialTableWidth
	}

	fixed := idWidth + levelWidth*2 + frequencyWidth + scoreWidth
	if ranked {
		fixed += rankWidth
	} else {
		fixed += statusWidth
	}

	system := width - fixed - cellPadding*7 - borderEdges
	if system < minSystemWidth {
		system = minSystemWidth
	}

	if ranked {
		return []table.Column{
			{Title: "Rank", Width: rankWidth},
			{Title: "ID", Width: idWidth},
			{Title: "System", Width: system},
			{Title: "Severity", Width: levelWidth},
			{Title: "Urgency", Width: levelWidth},
			{Title: "Frequency", Width: frequencyWidth},
			{Title: "Score", Width: scoreWidth},
		}
	}

	return []table.Column{
		{Title: "ID", Width: idWidth},
		{Title: "System", Width: system},
		{Title: "Severity", Width: levelWidth},
		{Title: "Urgency", Width: levelWidth},
		{Title: "Frequency", Width: frequencyWidth},
		{Title: "Status", Width: statusWidth},
		{Title: "Score", Width: scoreWidth},
	}
}
