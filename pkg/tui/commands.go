package tui

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"text/template"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/clcollins/incidentrank/pkg/incident"
	"github.com/clcollins/incidentrank/pkg/launcher"
	"github.com/clcollins/incidentrank/pkg/pd"
	"github.com/clcollins/incidentrank/pkg/report"
)

// The commands in this file run on their own goroutines, so they only ever
// receive copies or already built values, never the store itself.

// exportReport builds the report from the store and returns a command that
// writes it to disk
func (m *model) exportReport(ranked bool) tea.Cmd {
	r := report.Build(m.store, ranked)
	if ranked {
		m.recordRanking()
		// The ranked view is already current; the all view shows cached scores
		if !m.ranked {
			m.refreshTable()
		}
	}

	m.setStatus(writingReportStatus)
	return writeReportCmd(m.reportDir, r)
}

func writeReportCmd(dir string, r report.Report) tea.Cmd {
	return func() tea.Msg {
		path, err := report.Write(dir, r)
		if err != nil {
			return reportWrittenMsg{ranked: r.Ranked, err: err}
		}

		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		debug("tui.writeReportCmd(): wrote report", "path", path)
		return reportWrittenMsg{path: path, ranked: r.Ranked}
	}
}

func openReportCmd(l launcher.ReportLauncher, path string) tea.Cmd {
	return func() tea.Msg {
		debug("tui.openReportCmd(): opening report", "command", l.BuildOpenCommand(path))
		return reportOpenedMsg{path: path, err: l.Open(path)}
	}
}

// viewIncident renders the detail view for an incident
func (m *model) viewIncident(id string) tea.Cmd {
	i, err := m.store.Find(id)
	if err != nil {
		return func() tea.Msg { return errMsg{err} }
	}

	content, err := incidentMarkdown(i)
	if err != nil {
		return func() tea.Msg { return errMsg{err} }
	}

	return renderIncidentCmd(m.markdownRenderer, i.ID, content)
}

func renderIncidentCmd(renderer *glamour.TermRenderer, id, content string) tea.Cmd {
	return func() tea.Msg {
		// Without a renderer the markdown is shown as-is
		if renderer == nil {
			return renderedIncidentMsg{id: id, content: content}
		}

		rendered, err := renderer.Render(content)
		if err != nil {
			return renderedIncidentMsg{id: id, err: fmt.Errorf("tui.renderIncidentCmd(): %w", err)}
		}
		return renderedIncidentMsg{id: id, content: rendered}
	}
}

// importFromPagerDuty starts fetching open PagerDuty incidents. The results
// are inserted into the store when they arrive.
func (m *model) importFromPagerDuty() tea.Cmd {
	if m.pdConfig == nil {
		m.setNotice(importNotConfiguredStatus)
		return nil
	}
	if m.importing {
		return nil
	}

	m.importing = true
	m.setStatus(importingStatus)
	return fetchPagerDutyIncidentsCmd(m.pdConfig)
}

func fetchPagerDutyIncidentsCmd(c *pd.Config) tea.Cmd {
	return func() tea.Msg {
		i, err := pd.FetchOpenIncidents(context.Background(), c)
		debug("tui.fetchPagerDutyIncidentsCmd(): retrieved incidents", "count", len(i))
		return fetchedPagerDutyIncidentsMsg{incidents: i, err: err}
	}
}

type incidentSummary struct {
	ID        string
	System    string
	Severity  string
	Urgency   string
	Frequency string
	Status    string
	Score     string
}

func summarizeIncident(i incident.Incident) incidentSummary {
	s := incidentSummary{
		ID:        i.ID,
		System:    i.System,
		Severity:  i.Severity.String(),
		Urgency:   i.Urgency.String(),
		Frequency: i.Frequency.String(),
		Status:    i.Status.String(),
	}
	if score, ok := i.PriorityScore(); ok {
		s.Score = report.FormatScore(score)
	}
	return s
}

var incidentTemplate = template.Must(template.New("incident").Parse(incidentMarkdownTemplate))

func incidentMarkdown(i incident.Incident) (string, error) {
	o := new(bytes.Buffer)
	if err := incidentTemplate.Execute(o, summarizeIncident(i)); err != nil {
		return "", fmt.Errorf("tui.incidentMarkdown(): %w", err)
	}
	return o.String(), nil
}

const incidentMarkdownTemplate = `# {{ .ID }} - {{ .Status }}

**{{ .System }}**

* Severity: {{ .Severity }}
* Urgency: {{ .Urgency }}
* Frequency: {{ .Frequency }}
{{ if .Score }}
Priority score: **{{ .Score }}**
{{- else }}
Priority score: _not ranked_
{{- end }}
`
