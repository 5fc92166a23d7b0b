package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/clcollins/incidentrank/pkg/incident"
	"github.com/clcollins/incidentrank/pkg/launcher"
	"github.com/clcollins/incidentrank/pkg/metrics"
	"github.com/clcollins/incidentrank/pkg/pd"
	"github.com/clcollins/incidentrank/pkg/report"
	"github.com/clcollins/incidentrank/pkg/tui/style"
)

type model struct {
	err error

	store      *incident.Store
	metrics    *metrics.Recorder
	pdConfig   *pd.Config
	launcher   launcher.ReportLauncher
	reportDir  string
	openReport bool

	table          table.Model
	input          textinput.Model
	help           help.Model
	incidentViewer viewport.Model
	// This is a hack since viewport.Model doesn't have a Focused() method
	viewingIncident  bool
	viewedIncidentID string
	markdownRenderer *glamour.TermRenderer

	status       string
	statusNotice bool

	ranked          bool
	step            inputStep
	draft           draft
	quitAfterExport bool
	importing       bool

	debug bool
}

func InitialModel(
	store *incident.Store,
	recorder *metrics.Recorder,
	token string,
	teams []string,
	launcher launcher.ReportLauncher,
	reportDir string,
	openReport bool,
	debug bool,
) model {
	debugLogging = debug

	// Create markdown renderer once - reusing it is much faster than creating new ones
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		log.Error("InitialModel", "failed to create markdown renderer", err)
		// Rendering falls back to plain text
		renderer = nil
	}

	if reportDir == "" {
		reportDir = report.DefaultDir
	}

	m := model{
		store:            store,
		metrics:          recorder,
		launcher:         launcher,
		reportDir:        reportDir,
		openReport:       openReport,
		debug:            debug,
		help:             newHelp(),
		table:            newTableWithStyles(),
		input:            newTextInput(),
		incidentViewer:   newIncidentViewer(),
		markdownRenderer: renderer,
	}

	// PagerDuty import is optional; without a token the import key just says so
	if token != "" {
		// Init() runs before the first Update(), so the error is set directly
		// rather than sent as an errMsg
		m.pdConfig, err = pd.NewConfig(context.Background(), token, teams)
		if err != nil {
			log.Error("InitialModel", "error", err)
			m.pdConfig = nil
			m.err = err
		}
	}

	m.refreshTable()
	log.Debug("InitialModel", "reportDir", m.reportDir, "openReport", m.openReport, "pagerduty", m.pdConfig != nil)

	return m
}

func (m *model) setStatus(msg string) {
	log.Info("setStatus", "status", msg)
	m.status = msg
	m.statusNotice = false
}

// setNotice sets a status that asks the user to try again
func (m *model) setNotice(msg string) {
	log.Info("setNotice", "status", msg)
	m.status = msg
	m.statusNotice = true
}

func (m *model) toggleHelp() {
	m.help.ShowAll = !m.help.ShowAll
}

// refreshTable rebuilds the table rows from the store. In ranked mode this
// ranks the store, which also refreshes the cached score of every open
// incident.
func (m *model) refreshTable() {
	var rows []table.Row

	if m.ranked {
		for _, r := range m.store.Rank() {
			i := r.Incident
			rows = append(rows, table.Row{
				strconv.Itoa(r.Rank), i.ID, i.System, i.Severity.String(),
				i.Urgency.String(), i.Frequency.String(), report.FormatScore(r.Score),
			})
		}
		m.recordRanking()
	} else {
		for i := range m.store.All() {
			rows = append(rows, table.Row{
				i.ID, i.System, i.Severity.String(), i.Urgency.String(),
				i.Frequency.String(), i.Status.String(), cachedScore(i),
			})
		}
	}

	// Both modes have the same number of columns, so the order of these
	// calls never leaves rows and columns mismatched
	m.table.SetColumns(tableColumns(m.ranked, windowSize.Width))
	m.table.SetRows(rows)
	// Moving on an empty table leaves the cursor at -1
	switch c := m.table.Cursor(); {
	case len(rows) == 0:
	case c < 0:
		m.table.SetCursor(0)
	case c >= len(rows):
		m.table.SetCursor(len(rows) - 1)
	}

	if m.metrics != nil {
		m.metrics.IncidentsOpen.Set(float64(m.store.OpenCount()))
	}
}

func (m *model) recordRanking() {
	if m.metrics != nil {
		m.metrics.Rankings.Inc()
	}
}

// highlightedID returns the ID of the incident on the highlighted table row,
// or "" if the table is empty
func (m *model) highlightedID() string {
	row := m.table.SelectedRow()
	if row == nil {
		return ""
	}
	if m.ranked {
		// Column [0] is the rank
		return row[1]
	}
	return row[0]
}

// emptyTableMessage describes why the table has no rows
func (m *model) emptyTableMessage() string {
	switch {
	case m.store.Len() == 0 && m.ranked:
		return "No incidents to rank."
	case m.store.Len() == 0:
		return "No incidents recorded yet."
	case m.ranked:
		return "No OPEN incidents to rank."
	}
	return ""
}

// cachedScore is the score from the last ranking, or "-" if the incident has
// not been ranked since it was added or resolved
func cachedScore(i incident.Incident) string {
	if s, ok := i.PriorityScore(); ok {
		return report.FormatScore(s)
	}
	return "-"
}

func newTableWithStyles() table.Model {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(initialTableHeight),
	)
	t.SetStyles(style.Table)
	return t
}

func newTextInput() textinput.Model {
	i := textinput.New()
	i.Prompt = defaultInputPrompt
	i.CharLimit = 64
	i.Width = 50
	return i
}

func newHelp() help.Model {
	h := help.New()
	h.ShowAll = false
	return h
}

func newIncidentViewer() viewport.Model {
	vp := viewport.New(initialTableWidth, initialTableHeight)
	vp.Style = style.IncidentViewer
	return vp
}
