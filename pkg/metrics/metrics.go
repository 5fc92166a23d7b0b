// Package metrics records what happened during a session so it can be
// exported in the Prometheus text format, eg: for a node_exporter textfile
// collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "incidentrank"

// Recorder holds the session counters in its own registry, so nothing leaks
// into (or depends on) the global default registry.
type Recorder struct {
	Registry *prometheus.Registry

	IncidentsAdded    prometheus.Counter
	IncidentsResolved prometheus.Counter
	IncidentsImported prometheus.Counter
	Rankings          prometheus.Counter
	ReportsWritten    *prometheus.CounterVec
	IncidentsOpen     prometheus.Gauge
}

func New() *Recorder {
	r := &Recorder{
		Registry: prometheus.NewRegistry(),
		IncidentsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "incidents_added_total",
			Help:      "Number of incidents recorded this session.",
		}),
		IncidentsResolved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "incidents_resolved_total",
			Help:      "Number of incidents marked as resolved this session.",
		}),
		IncidentsImported: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "incidents_imported_total",
			Help:      "Number of incidents imported from PagerDuty this session.",
		}),
		Rankings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rankings_total",
			Help:      "Number of times open incidents were ranked.",
		}),
		ReportsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_written_total",
			Help:      "Number of HTML reports written, by mode.",
		}, []string{"mode"}),
		IncidentsOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "incidents_open",
			Help:      "Number of incidents currently open.",
		}),
	}

	r.Registry.MustRegister(
		r.IncidentsAdded,
		r.IncidentsResolved,
		r.IncidentsImported,
		r.Rankings,
		r.ReportsWritten,
		r.IncidentsOpen,
	)

	return r
}

// ReportMode is the label value for ReportsWritten
func ReportMode(ranked bool) string {
	if ranked {
		return "ranked"
	}
	return "all"
}

// WriteTextfile writes every registered metric to path in the Prometheus
// text exposition format
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.Registry); err != nil {
		return fmt.Errorf("metrics.WriteTextfile(): failed to write `%v`: %w", path, err)
	}
	return nil
}
