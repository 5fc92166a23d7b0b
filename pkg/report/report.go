// Package report renders the incident store as a static HTML page.
package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/clcollins/incidentrank/pkg/incident"
)

const (
	DefaultDir  = "reports"
	FileName    = "incidents.html"
	reportTitle = "IT Incident Report"
)

// Row is one rendered table row. Rank and Score are empty for unranked
// reports.
type Row struct {
	Rank      string
	ID        string
	System    string
	Severity  string
	Urgency   string
	Frequency string
	Status    string
	Score     string
}

type Report struct {
	Title  string
	Ranked bool
	Rows   []Row
}

// Build collects the rows for a report. A ranked report ranks the store
// (refreshing every open incident's cached score) and contains only open
// incidents; an unranked report lists every incident in insertion order.
func Build(s *incident.Store, ranked bool) Report {
	r := Report{
		Title:  reportTitle,
		Ranked: ranked,
		Rows:   []Row{},
	}

	if !ranked {
		for i := range s.All() {
			r.Rows = append(r.Rows, newRow(i))
		}
		return r
	}

	for _, ranking := range s.Rank() {
		row := newRow(ranking.Incident)
		row.Rank = strconv.Itoa(ranking.Rank)
		row.Score = FormatScore(ranking.Score)
		r.Rows = append(r.Rows, row)
	}
	return r
}

func newRow(i incident.Incident) Row {
	return Row{
		ID:        i.ID,
		System:    i.System,
		Severity:  i.Severity.String(),
		Urgency:   i.Urgency.String(),
		Frequency: i.Frequency.String(),
		Status:    i.Status.String(),
	}
}

// FormatScore renders a score with two decimal places
func FormatScore(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

var funcMap = template.FuncMap{
	"StatusClass": func(status string) string {
		if status == incident.StatusOpen.String() {
			return "open"
		}
		return "resolved"
	},
}

var reportTemplate = template.Must(template.New("report").Funcs(funcMap).Parse(htmlTemplate))

// Render writes the report as HTML. All incident text is escaped.
func Render(w io.Writer, r Report) error {
	if err := reportTemplate.Execute(w, r); err != nil {
		return fmt.Errorf("report.Render(): failed to render report: %w", err)
	}
	return nil
}

// Write renders a built report into dir/incidents.html, creating dir if
// needed, and returns the path written. Write does not touch the store, so it
// is safe to call away from the goroutine that owns it.
func Write(dir string, r Report) (string, error) {
	if dir == "" {
		dir = DefaultDir
	}

	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:gomnd
		return "", fmt.Errorf("report.Write(): failed to create report directory `%v`: %w", dir, err)
	}

	path := filepath.Join(dir, FileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("report.Write(): failed to create `%v`: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	if err := Render(f, r); err != nil {
		return "", err
	}

	return path, f.Close()
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{ .Title }}</title>
  <style>
    table {border-collapse: collapse; width: 100%;}
    th, td {border: 1px solid #999; padding: 8px; text-align: left;}
    th {background-color: #f2f2f2;}
    .open {color: red; font-weight: bold;}
    .resolved {color: green; font-weight: bold;}
  </style>
</head>
<body>
  <h2>{{ .Title }}</h2>
  {{- if not .Rows }}
  <p>{{ if .Ranked }}No OPEN incidents to rank.{{ else }}No incidents recorded yet.{{ end }}</p>
  {{- end }}
  <table>
    <tr>
      <th>Rank</th>
      <th>ID</th>
      <th>System</th>
      <th>Severity</th>
      <th>Urgency</th>
      <th>Frequency</th>
      <th>Status</th>
      {{- if .Ranked }}
      <th>Priority Score</th>
      {{- end }}
    </tr>
    {{- range .Rows }}
    <tr>
      <td>{{ .Rank }}</td>
      <td>{{ .ID }}</td>
      <td>{{ .System }}</td>
      <td>{{ .Severity }}</td>
      <td>{{ .Urgency }}</td>
      <td>{{ .Frequency }}</td>
      <td class="{{ StatusClass .Status }}">{{ .Status }}</td>
      {{- if $.Ranked }}
      <td>{{ .Score }}</td>
      {{- end }}
    </tr>
    {{- end }}
  </table>
</body>
</html>
`
