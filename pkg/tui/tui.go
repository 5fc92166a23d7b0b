package tui

import (
	"fmt"

	"github.com/PagerDuty/go-pagerduty"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/clcollins/incidentrank/pkg/incident"
	"github.com/clcollins/incidentrank/pkg/metrics"
	"github.com/clcollins/incidentrank/pkg/pd"
)

const (
	dot       = "•"
	upArrow   = "↑"
	downArrow = "↓"

	defaultInputPrompt = " $ "

	noIncidentSelectedStatus  = "No incident selected."
	importingStatus           = "importing incidents from PagerDuty..."
	importNotConfiguredStatus = "PagerDuty import is not configured; set pagerduty_token in the config file"
	writingReportStatus       = "writing report..."
)

type errMsg struct{ error }

type renderedIncidentMsg struct {
	id      string
	content string
	err     error
}

type reportWrittenMsg struct {
	path   string
	ranked bool
	err    error
}

type reportOpenedMsg struct {
	path string
	err  error
}

type fetchedPagerDutyIncidentsMsg struct {
	incidents []pagerduty.Incident
	err       error
}

func (m model) Init() tea.Cmd {
	debug("Init")
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case errMsg:
		return m.errMsgHandler(msg)

	case tea.WindowSizeMsg:
		return m.windowSizeMsgHandler(msg)

	case tea.KeyMsg:
		return m.keyMsgHandler(msg)

	case renderedIncidentMsg:
		debug("renderedIncidentMsg", "id", msg.id)
		if msg.err != nil {
			return m.errMsgHandler(errMsg{msg.err})
		}
		m.viewingIncident = true
		m.viewedIncidentID = msg.id
		m.incidentViewer.SetContent(msg.content)
		m.incidentViewer.GotoTop()
		return m, nil

	case reportWrittenMsg:
		return m.reportWrittenMsgHandler(msg)

	case reportOpenedMsg:
		debug("reportOpenedMsg", "path", msg.path)
		if msg.err != nil {
			return m.errMsgHandler(errMsg{msg.err})
		}
		return m, nil

	case fetchedPagerDutyIncidentsMsg:
		return m.fetchedPagerDutyIncidentsMsgHandler(msg)
	}

	// Everything else (eg: cursor blinks) belongs to the focused component
	var cmd tea.Cmd
	if m.input.Focused() {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m model) reportWrittenMsgHandler(msg reportWrittenMsg) (tea.Model, tea.Cmd) {
	debug("reportWrittenMsgHandler", "path", msg.path, "ranked", msg.ranked)
	if msg.err != nil {
		m.quitAfterExport = false
		return m.errMsgHandler(errMsg{msg.err})
	}

	if m.metrics != nil {
		m.metrics.ReportsWritten.WithLabelValues(metrics.ReportMode(msg.ranked)).Inc()
	}
	m.setStatus(fmt.Sprintf("HTML report generated: %s", msg.path))

	var cmds []tea.Cmd
	if m.openReport && m.launcher.Enabled {
		cmds = append(cmds, openReportCmd(m.launcher, msg.path))
	}
	if m.quitAfterExport {
		cmds = append(cmds, tea.Quit)
	}

	switch len(cmds) {
	case 0:
		return m, nil
	case 1:
		return m, cmds[0]
	}
	return m, tea.Sequence(cmds...)
}

func (m model) fetchedPagerDutyIncidentsMsgHandler(msg fetchedPagerDutyIncidentsMsg) (tea.Model, tea.Cmd) {
	m.importing = false
	if msg.err != nil {
		return m.errMsgHandler(errMsg{msg.err})
	}

	r := pd.Import(m.store, msg.incidents)
	log.Info("imported PagerDuty incidents", "imported", r.Imported, "skipped", r.Skipped)
	if m.metrics != nil {
		m.metrics.IncidentsImported.Add(float64(len(r.Imported)))
	}

	m.refreshTable()
	m.setStatus(fmt.Sprintf("imported %d incident(s) from PagerDuty; %d already recorded", len(r.Imported), len(r.Skipped)))
	return m, nil
}

// resolveIncident marks an incident as resolved, leaving the store unchanged
// if the ID is unknown
func (m *model) resolveIncident(id string) error {
	if err := m.store.Resolve(id); err != nil {
		return err
	}

	if m.metrics != nil {
		m.metrics.IncidentsResolved.Inc()
	}
	m.refreshTable()
	m.setStatus("Incident marked as RESOLVED.")
	return nil
}

// addIncident inserts the finished draft
func (m *model) addIncident(i incident.Incident) error {
	if err := m.store.Insert(i); err != nil {
		return err
	}

	if m.metrics != nil {
		m.metrics.IncidentsAdded.Inc()
	}
	m.refreshTable()
	m.setStatus("Incident added successfully!")
	return nil
}
