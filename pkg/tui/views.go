package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/clcollins/incidentrank/pkg/incident"
	"github.com/clcollins/incidentrank/pkg/tui/style"
)

const title = "IT Incident Prioritization System"

var windowSize tea.WindowSizeMsg

func (m model) View() string {
	var s strings.Builder

	s.WriteString(m.renderHeader())

	switch {
	case m.err != nil:
		log.Debug("View", "error", m.err)

		s.WriteString(dot)
		s.WriteString("ERROR")
		s.WriteString(dot)
		s.WriteString("\n\n")
		s.WriteString(m.err.Error())
		s.WriteString("\n")
		s.WriteString(help.New().View(errorViewKeyMap))

		return style.Error.Render(s.String())

	case m.viewingIncident:
		s.WriteString(m.incidentViewer.View())

	case len(m.table.Rows()) == 0:
		s.WriteString(style.TableContainer.Render(m.table.View() + "\n" + m.emptyTableMessage()))

	default:
		s.WriteString(style.TableContainer.Render(m.table.View()))
	}

	if m.input.Focused() {
		s.WriteString("\n")
		s.WriteString(m.input.View())
	}

	s.WriteString("\n")
	s.WriteString(m.renderFooter())
	s.WriteString("\n")
	s.WriteString(style.Padded.Render(style.Help.Render(m.help.View(m.activeKeyMap()))))

	return style.Main.Render(s.String())
}

// activeKeyMap is the help for the keys handled in the current focus mode
func (m model) activeKeyMap() help.KeyMap {
	switch {
	case m.err != nil:
		return errorViewKeyMap
	case m.input.Focused():
		return inputModeKeyMap
	case m.viewingIncident:
		return incidentViewKeyMap
	}
	return defaultKeyMap
}

func (m model) renderHeader() string {
	var s strings.Builder

	s.WriteString(
		lipgloss.JoinHorizontal(
			0.2,
			style.Padded.Render(title),
			style.Padded.Render(modeArea(m.ranked)),
		),
	)
	s.WriteString("\n")
	return s.String()
}

func (m model) renderFooter() string {
	status := statusArea(m.status)
	if m.statusNotice {
		status = style.Notice.Render(status)
	}

	return lipgloss.JoinHorizontal(
		0.2,
		style.Padded.Render(status),
		style.Padded.Render(countsArea(m.store.Len(), m.store.OpenCount())),
	)
}

func modeArea(ranked bool) string {
	if ranked {
		return "Showing OPEN incidents ranked by priority"
	}
	return "Showing all incidents"
}

func statusArea(s string) string {
	return "> " + strings.TrimSuffix(s, "\n")
}

func countsArea(total, open int) string {
	return fmt.Sprintf("%d incident(s), %s %s",
		total,
		style.Open.Render(fmt.Sprintf("%d %s", open, incident.StatusOpen)),
		style.Resolved.Render(fmt.Sprintf("%d %s", total-open, incident.StatusResolved)),
	)
}
