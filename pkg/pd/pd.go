package pd

import (
	"context"
	"fmt"
	"strings"

	"github.com/PagerDuty/go-pagerduty"
	"github.com/clcollins/incidentrank/pkg/incident"
)

const (
	defaultPageLimit = 100
	defaultOffset    = 0

	// Alert counts at or above these thresholds map to the matching frequency
	frequentAlertCount   = 5
	occasionalAlertCount = 2
)

var defaultIncidentStatues = []string{"triggered", "acknowledged"}

// PagerDutyClientInterface is an interface that defines the methods used by the pd package and makes it easier to mock
// calls to PagerDuty in tests
type PagerDutyClientInterface interface {
	GetTeamWithContext(ctx context.Context, id string) (*pagerduty.Team, error)
	ListIncidentsWithContext(ctx context.Context, opts pagerduty.ListIncidentsOptions) (*pagerduty.ListIncidentsResponse, error)
}

// PagerDutyClient implements PagerDutyClientInterface and is used by the pd package to make calls to PagerDuty
// This allows for mocking calls that would usually use the pagerduty.Client struct
type PagerDutyClient interface {
	PagerDutyClientInterface
}

// Config holds the PagerDuty client and the teams whose incidents are imported
type Config struct {
	Client PagerDutyClient
	Teams  []*pagerduty.Team
}

func NewConfig(ctx context.Context, token string, teams []string) (*Config, error) {
	var c Config
	var err error

	if token == "" {
		return &c, fmt.Errorf("pd.NewConfig(): PagerDuty token is not set")
	}

	c.Client = newClient(token)

	c.Teams, err = GetTeams(ctx, c.Client, teams)
	if err != nil {
		return &c, fmt.Errorf("pd.NewConfig(): failed to get team(s) `%v`: %w", teams, err)
	}

	return &c, nil
}

func newClient(token string) PagerDutyClient {
	return pagerduty.NewClient(token)
}

func NewListIncidentOptsFromDefaults() pagerduty.ListIncidentsOptions {
	return pagerduty.ListIncidentsOptions{
		Limit:    defaultPageLimit,
		Offset:   defaultOffset,
		Statuses: defaultIncidentStatues,
	}
}

// TeamIDs returns the IDs of the configured teams
func (c *Config) TeamIDs() []string {
	var ids []string
	for _, t := range c.Teams {
		ids = append(ids, t.ID)
	}
	return ids
}

func GetTeams(ctx context.Context, client PagerDutyClient, teams []string) ([]*pagerduty.Team, error) {
	var t []*pagerduty.Team

	for _, i := range teams {
		team, err := client.GetTeamWithContext(ctx, i)
		if err != nil {
			return t, fmt.Errorf("pd.GetTeams(): failed to find PagerDuty team `%v`: %w", i, err)
		}
		t = append(t, team)
	}

	return t, nil
}

func GetIncidents(ctx context.Context, client PagerDutyClient, opts pagerduty.ListIncidentsOptions) ([]pagerduty.Incident, error) {
	var i []pagerduty.Incident

	for {
		response, err := client.ListIncidentsWithContext(ctx, opts)
		if err != nil {
			return i, fmt.Errorf("pd.GetIncidents(): failed to get incidents: %w", err)
		}

		i = append(i, response.Incidents...)

		opts.Offset += opts.Limit

		if !response.More {
			break
		}
	}

	return i, nil
}

// ToIncident maps a PagerDuty incident onto the local incident model.
//
//	severity:  priority P1/P2 => High, P3 => Medium, anything else => Low
//	urgency:   "high" => High, anything else => Low
//	frequency: alert count >= 5 => Frequent, >= 2 => Occasional, else Rare
func ToIncident(p pagerduty.Incident) incident.Incident {
	system := p.Service.Summary
	if system == "" {
		system = p.Title
	}

	return incident.Incident{
		ID:        p.ID,
		System:    system,
		Severity:  severityFromPriority(p.Priority),
		Urgency:   urgencyFromPagerDuty(p.Urgency),
		Frequency: frequencyFromAlertCount(int(p.AlertCounts.All)),
		Status:    incident.StatusOpen,
	}
}

func severityFromPriority(p *pagerduty.Priority) incident.Level {
	if p == nil {
		return incident.LevelLow
	}

	name := p.Name
	if name == "" {
		name = p.Summary
	}

	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "P1", "P2":
		return incident.LevelHigh
	case "P3":
		return incident.LevelMedium
	}
	return incident.LevelLow
}

func urgencyFromPagerDuty(u string) incident.Level {
	if strings.EqualFold(u, "high") {
		return incident.LevelHigh
	}
	return incident.LevelLow
}

func frequencyFromAlertCount(n int) incident.Frequency {
	switch {
	case n >= frequentAlertCount:
		return incident.FrequencyFrequent
	case n >= occasionalAlertCount:
		return incident.FrequencyOccasional
	}
	return incident.FrequencyRare
}

// FetchOpenIncidents retrieves the triggered and acknowledged incidents for
// the configured teams
func FetchOpenIncidents(ctx context.Context, c *Config) ([]pagerduty.Incident, error) {
	opts := NewListIncidentOptsFromDefaults()
	opts.TeamIDs = c.TeamIDs()

	i, err := GetIncidents(ctx, c.Client, opts)
	if err != nil {
		return i, fmt.Errorf("pd.FetchOpenIncidents(): %w", err)
	}
	return i, nil
}

// ImportResult reports what Import did with each retrieved incident
type ImportResult struct {
	Imported []string
	Skipped  []string
}

// Import inserts fetched PagerDuty incidents into the store. Incidents whose
// ID is already in the store are skipped, so importing twice is harmless.
func Import(s *incident.Store, incidents []pagerduty.Incident) ImportResult {
	var r ImportResult

	for _, p := range incidents {
		if err := s.Insert(ToIncident(p)); err != nil {
			r.Skipped = append(r.Skipped, p.ID)
			continue
		}
		r.Imported = append(r.Imported, p.ID)
	}

	return r
}
