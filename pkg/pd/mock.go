package pd

import (
	"context"
	"fmt"

	"github.com/PagerDuty/go-pagerduty"
)

var ErrMockError = fmt.Errorf("pd.Mock(): mock error") // Used to mock errors in unit tests

// MockPagerDutyClient serves a fixed set of incidents, opts.Limit at a time,
// so paging and mapping can be tested without PagerDuty.
type MockPagerDutyClient struct {
	PagerDutyClient

	Incidents []pagerduty.Incident
	Calls     int
}

func (m *MockPagerDutyClient) GetTeamWithContext(ctx context.Context, team string) (*pagerduty.Team, error) {
	// Provided so we can mock error responses for unit tests
	if team == "err" {
		return nil, ErrMockError
	}
	return &pagerduty.Team{APIObject: pagerduty.APIObject{ID: team}, Name: team}, nil
}

func (m *MockPagerDutyClient) ListIncidentsWithContext(ctx context.Context, opts pagerduty.ListIncidentsOptions) (*pagerduty.ListIncidentsResponse, error) {
	m.Calls++

	for _, id := range opts.TeamIDs {
		if id == "err" {
			return &pagerduty.ListIncidentsResponse{}, ErrMockError
		}
	}

	size := opts.Limit
	if size == 0 {
		size = uint(len(m.Incidents)) + 1
	}

	start := min(opts.Offset, uint(len(m.Incidents)))
	end := min(start+size, uint(len(m.Incidents)))

	return &pagerduty.ListIncidentsResponse{
		APIListObject: pagerduty.APIListObject{
			More: end < uint(len(m.Incidents)),
		},
		Incidents: m.Incidents[start:end],
	}, nil
}
