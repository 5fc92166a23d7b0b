package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/clcollins/incidentrank/pkg/tui/style"
)

// errMsgHandler is the message handler for the errMsg message
func (m model) errMsgHandler(msg errMsg) (tea.Model, tea.Cmd) {
	debug("errMsgHandler")
	// A nil error is not an error
	if msg.error == nil {
		return m, nil
	}

	log.Error("errMsgHandler", "error", msg.error)
	m.setStatus(msg.Error())
	m.err = msg.error
	return m, nil
}

// windowSizeMsgHandler is the message handler for the windowSizeMsg message
// and resizes the tui according to the new terminal window size
func (m model) windowSizeMsgHandler(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	debug("windowSizeMsgHandler", "width", msg.Width, "height", msg.Height)
	windowSize = msg

	top, _, bottom, _ := style.Main.GetMargin()
	height := windowSize.Height - top - bottom - 10
	if height < 1 {
		height = 1
	}

	m.help.Width = windowSize.Width - borderEdges
	m.table.SetColumns(tableColumns(m.ranked, windowSize.Width))
	m.table.SetHeight(height)
	m.incidentViewer.Width = windowSize.Width - borderEdges
	m.incidentViewer.Height = height

	return m, nil
}

func (m model) keyMsgHandler(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	debug("keyMsgHandler", "tea.KeyMsg", msg.String())
	if key.Matches(msg, defaultKeyMap.ForceQuit) {
		return m, tea.Quit
	}

	switch {
	case m.err != nil:
		return switchErrorFocusMode(m, msg)

	case m.input.Focused():
		return switchInputFocusMode(m, msg)

	case m.viewingIncident:
		return switchIncidentFocusMode(m, msg)
	}

	return switchTableFocusMode(m, msg)
}

// tableFocusMode is the main mode for the application
func switchTableFocusMode(m model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	debug("switchTableFocusMode")

	switch {
	case key.Matches(msg, defaultKeyMap.Help):
		m.toggleHelp()

	case key.Matches(msg, defaultKeyMap.Up):
		m.table.MoveUp(1)

	case key.Matches(msg, defaultKeyMap.Down):
		m.table.MoveDown(1)

	case key.Matches(msg, defaultKeyMap.Top):
		m.table.GotoTop()

	case key.Matches(msg, defaultKeyMap.Bottom):
		m.table.GotoBottom()

	case key.Matches(msg, defaultKeyMap.Enter):
		id := m.highlightedID()
		if id == "" {
			m.setNotice(noIncidentSelectedStatus)
			return m, nil
		}
		cmd := m.viewIncident(id)
		return m, cmd

	case key.Matches(msg, defaultKeyMap.Add):
		cmd := m.startPrompt(stepID)
		return m, cmd

	case key.Matches(msg, defaultKeyMap.Resolve):
		if m.store.Len() == 0 {
			m.setNotice("No incidents available.")
			return m, nil
		}
		cmd := m.startPrompt(stepResolveID)
		m.input.SetValue(m.highlightedID())
		m.input.CursorEnd()
		return m, cmd

	case key.Matches(msg, defaultKeyMap.Rank):
		m.ranked = !m.ranked
		m.refreshTable()
		if m.ranked {
			m.setStatus("showing OPEN incidents ranked by priority")
		} else {
			m.setStatus("showing all incidents")
		}

	case key.Matches(msg, defaultKeyMap.Export):
		if m.store.Len() == 0 {
			m.setNotice("No incidents available to report.")
			return m, nil
		}
		cmd := m.exportReport(m.ranked)
		return m, cmd

	case key.Matches(msg, defaultKeyMap.Import):
		cmd := m.importFromPagerDuty()
		return m, cmd

	case key.Matches(msg, defaultKeyMap.Quit):
		// Only offer a report when there is something to report
		if m.store.Len() == 0 {
			return m, tea.Quit
		}
		cmd := m.startPrompt(stepExportConfirm)
		return m, cmd
	}

	return m, nil
}

func switchInputFocusMode(m model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	debug("switchInputFocusMode", "step", m.step)

	switch {
	case key.Matches(msg, defaultKeyMap.Back):
		m.endPrompt()
		m.quitAfterExport = false
		m.setStatus(cancelledStatus)
		return m, nil

	case key.Matches(msg, defaultKeyMap.Enter):
		return m.submitInput()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func switchIncidentFocusMode(m model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	debug("switchIncidentFocusMode")

	switch {
	case key.Matches(msg, defaultKeyMap.Help):
		m.toggleHelp()
		return m, nil

	// This returns to the table view
	case key.Matches(msg, defaultKeyMap.Back):
		m.viewingIncident = false
		m.viewedIncidentID = ""
		return m, nil

	case key.Matches(msg, defaultKeyMap.Resolve):
		if err := m.resolveIncident(m.viewedIncidentID); err != nil {
			return m.errMsgHandler(errMsg{err})
		}
		// Re-render to show the new status
		cmd := m.viewIncident(m.viewedIncidentID)
		return m, cmd
	}

	var cmd tea.Cmd
	m.incidentViewer, cmd = m.incidentViewer.Update(msg)
	return m, cmd
}

func switchErrorFocusMode(m model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	debug("switchErrorFocusMode")
	if key.Matches(msg, defaultKeyMap.Back) {
		m.err = nil
	}
	return m, nil
}
