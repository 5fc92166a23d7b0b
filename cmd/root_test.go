package cmd

import (
	"bytes"
	"testing"

	"github.com/clcollins/incidentrank/pkg/incident"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineLogDestination(t *testing.T) {
	tests := []struct {
		name         string
		goos         string
		expectedDest LogDestination
		expectedPath string
	}{
		{
			name:         "Linux logs to the config directory",
			goos:         "linux",
			expectedDest: LogToFile,
			expectedPath: "~/.config/incidentrank/debug.log",
		},
		{
			name:         "macOS logs to the user log directory",
			goos:         "darwin",
			expectedDest: LogToFile,
			expectedPath: "~/Library/Logs/incidentrank.log",
		},
		{
			name:         "Unsupported OS logs to stderr",
			goos:         "windows",
			expectedDest: LogToStderr,
			expectedPath: "",
		},
		{
			name:         "Unknown OS logs to stderr",
			goos:         "freebsd",
			expectedDest: LogToStderr,
			expectedPath: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dest, path := determineLogDestination(tt.goos)
			assert.Equal(t, tt.expectedDest, dest, "Log destination mismatch")
			assert.Equal(t, tt.expectedPath, path, "Log path mismatch")
		})
	}
}

func TestExpandHome(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{path: "~/.config/incidentrank/debug.log", expected: "/home/user/.config/incidentrank/debug.log"},
		{path: "~", expected: "/home/user"},
		{path: "/var/log/incidentrank.log", expected: "/var/log/incidentrank.log"},
		{path: "~user/debug.log", expected: "~user/debug.log"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandHome(tt.path, "/home/user"))
		})
	}
}

func TestPrintScore(t *testing.T) {
	tests := []struct {
		name      string
		severity  string
		urgency   string
		frequency string
		expected  string
		errFields []string
	}{
		{name: "all highest", severity: "High", urgency: "High", frequency: "Frequent", expected: "3.00\n"},
		{name: "all lowest", severity: "low", urgency: "LOW", frequency: "rare", expected: "1.00\n"},
		{name: "mixed", severity: "High", urgency: "Medium", frequency: "Rare", expected: "2.30\n"},
		{name: "invalid severity", severity: "Critical", urgency: "Low", frequency: "Rare", errFields: []string{"severity"}},
		{
			name:     "every field invalid",
			severity: "", urgency: "urgent", frequency: "Often",
			errFields: []string{"severity", "urgency", "frequency"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := printScore(&out, tt.severity, tt.urgency, tt.frequency)

			if len(tt.errFields) > 0 {
				require.Error(t, err)
				assert.ErrorIs(t, err, incident.ErrInvalidField)
				for _, f := range tt.errFields {
					assert.Contains(t, err.Error(), f+":")
				}
				assert.Empty(t, out.String())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, out.String())
		})
	}
}

func TestPagerDutySettings(t *testing.T) {
	tests := []struct {
		name          string
		settings      map[string]interface{}
		expectedToken string
		expectedTeams []string
	}{
		{
			name:          "current keys",
			settings:      map[string]interface{}{"pagerduty_token": "abc", "pagerduty_teams": []string{"T1"}},
			expectedToken: "abc",
			expectedTeams: []string{"T1"},
		},
		{
			name:          "deprecated keys are still read",
			settings:      map[string]interface{}{"token": "old", "teams": []string{"T2", "T3"}},
			expectedToken: "old",
			expectedTeams: []string{"T2", "T3"},
		},
		{
			name: "current keys win over deprecated keys",
			settings: map[string]interface{}{
				"pagerduty_token": "new", "token": "old",
				"pagerduty_teams": []string{"T1"}, "teams": []string{"T2"},
			},
			expectedToken: "new",
			expectedTeams: []string{"T1"},
		},
		{
			name:          "nothing configured",
			settings:      map[string]interface{}{},
			expectedToken: "",
			expectedTeams: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tt.settings {
				v.Set(k, val)
			}

			token, teams := pagerDutySettings(v)
			assert.Equal(t, tt.expectedToken, token)
			assert.ElementsMatch(t, tt.expectedTeams, teams)
		})
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name        string
		settings    map[string]interface{}
		expectedErr string
	}{
		{
			name:     "empty config is valid",
			settings: map[string]interface{}{},
		},
		{
			name: "full config is valid",
			settings: map[string]interface{}{
				"report_dir":       "reports",
				"open_report":      true,
				"browser":          "firefox --new-tab %%REPORT_PATH%%",
				"metrics_textfile": "/tmp/incidentrank.prom",
				"pagerduty_token":  "abc",
				"pagerduty_teams":  []string{"T1"},
			},
		},
		{
			name:     "deprecated keys only warn",
			settings: map[string]interface{}{"weights": "0.5,0.3,0.2", "token": "abc"},
		},
		{
			name:        "browser without the report path",
			settings:    map[string]interface{}{"browser": "firefox"},
			expectedErr: "invalid browser command",
		},
		{
			name:        "teams without a token",
			settings:    map[string]interface{}{"pagerduty_teams": []string{"T1"}},
			expectedErr: "pagerduty_token is not",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			for k, val := range tt.settings {
				v.Set(k, val)
			}

			err := validateConfig(v)
			if tt.expectedErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedErr)
		})
	}
}
