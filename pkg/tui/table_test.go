package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableColumns(t *testing.T) {
	tests := []struct {
		name           string
		ranked         bool
		width          int
		expectedTitles []string
		expectedSystem int
	}{
		{
			name:           "all incidents at the default width",
			ranked:         false,
			width:          0,
			expectedTitles: []string{"ID", "System", "Severity", "Urgency", "Frequency", "Status", "Score"},
			expectedSystem: 38,
		},
		{
			name:           "ranked at the default width",
			ranked:         true,
			width:          0,
			expectedTitles: []string{"Rank", "ID", "System", "Severity", "Urgency", "Frequency", "Score"},
			expectedSystem: 42,
		},
		{
			name:           "wide terminal grows the system column",
			ranked:         false,
			width:          150,
			expectedTitles: []string{"ID", "System", "Severity", "Urgency", "Frequency", "Status", "Score"},
			expectedSystem: 82,
		},
		{
			name:           "narrow terminal keeps the minimum",
			ranked:         true,
			width:          40,
			expectedTitles: []string{"Rank", "ID", "System", "Severity", "Urgency", "Frequency", "Score"},
			expectedSystem: minSystemWidth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			columns := tableColumns(tt.ranked, tt.width)

			var titles []string
			system := 0
			for _, c := range columns {
				titles = append(titles, c.Title)
				if c.Title == "System" {
					system = c.Width
				}
			}

			assert.Equal(t, tt.expectedTitles, titles)
			assert.Equal(t, tt.expectedSystem, system)
		})
	}
}
