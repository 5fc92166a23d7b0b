package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/clcollins/incidentrank/pkg/incident"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *incident.Store {
	t.Helper()
	s := incident.NewStore()

	for _, fields := range [][5]string{
		{"INC001", "Auth", "Low", "Low", "Rare"},
		{"INC002", "Checkout", "High", "High", "Frequent"},
		{"INC003", "Search", "Medium", "Low", "Occasional"},
	} {
		i, err := incident.New(fields[0], fields[1], fields[2], fields[3], fields[4])
		require.NoError(t, err)
		require.NoError(t, s.Insert(i))
	}
	require.NoError(t, s.Resolve("INC003"))
	return s
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		ranked   bool
		expected []Row
	}{
		{
			name:   "unranked report lists everything in insertion order",
			ranked: false,
			expected: []Row{
				{ID: "INC001", System: "Auth", Severity: "Low", Urgency: "Low", Frequency: "Rare", Status: "OPEN"},
				{ID: "INC002", System: "Checkout", Severity: "High", Urgency: "High", Frequency: "Frequent", Status: "OPEN"},
				{ID: "INC003", System: "Search", Severity: "Medium", Urgency: "Low", Frequency: "Occasional", Status: "RESOLVED"},
			},
		},
		{
			name:   "ranked report lists open incidents by score",
			ranked: true,
			expected: []Row{
				{Rank: "1", ID: "INC002", System: "Checkout", Severity: "High", Urgency: "High", Frequency: "Frequent", Status: "OPEN", Score: "3.00"},
				{Rank: "2", ID: "INC001", System: "Auth", Severity: "Low", Urgency: "Low", Frequency: "Rare", Status: "OPEN", Score: "1.00"},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := Build(newTestStore(t), test.ranked)
			assert.Equal(t, test.ranked, r.Ranked)
			assert.Equal(t, test.expected, r.Rows)
		})
	}
}

func TestBuildRankedCachesScores(t *testing.T) {
	s := newTestStore(t)
	Build(s, true)

	i, err := s.Find("INC002")
	require.NoError(t, err)
	score, ok := i.PriorityScore()
	assert.True(t, ok)
	assert.Equal(t, 3.0, score)
}

func TestRender(t *testing.T) {
	tests := []struct {
		name             string
		ranked           bool
		expectedContains []string
		expectedMissing  []string
	}{
		{
			name:   "ranked report has a score column",
			ranked: true,
			expectedContains: []string{
				"<title>IT Incident Report</title>",
				"<th>Priority Score</th>",
				`<td class="open">OPEN</td>`,
				"<td>3.00</td>",
			},
			expectedMissing: []string{"INC003", "RESOLVED"},
		},
		{
			name:   "unranked report has no score column",
			ranked: false,
			expectedContains: []string{
				"<td>INC003</td>",
				`<td class="resolved">RESOLVED</td>`,
			},
			expectedMissing: []string{"Priority Score", "3.00"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var b bytes.Buffer
			require.NoError(t, Render(&b, Build(newTestStore(t), test.ranked)))
			out := b.String()

			for _, s := range test.expectedContains {
				assert.Contains(t, out, s)
			}
			for _, s := range test.expectedMissing {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestRenderEscapesIncidentText(t *testing.T) {
	s := incident.NewStore()
	i, err := incident.New("INC<1>", "<script>alert(1)</script>", "low", "low", "rare")
	require.NoError(t, err)
	require.NoError(t, s.Insert(i))

	var b bytes.Buffer
	require.NoError(t, Render(&b, Build(s, false)))

	assert.NotContains(t, b.String(), "<script>")
	assert.Contains(t, b.String(), "&lt;script&gt;")
}

func TestRenderEmpty(t *testing.T) {
	tests := []struct {
		ranked   bool
		expected string
	}{
		{ranked: false, expected: "No incidents recorded yet."},
		{ranked: true, expected: "No OPEN incidents to rank."},
	}

	for _, test := range tests {
		var b bytes.Buffer
		require.NoError(t, Render(&b, Build(incident.NewStore(), test.ranked)))
		assert.Contains(t, b.String(), test.expected)
	}
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")

	path, err := Write(dir, Build(newTestStore(t), true))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "<!DOCTYPE html>"))
	assert.Contains(t, string(b), "INC002")
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "1.70", FormatScore(1.7))
	assert.Equal(t, "3.00", FormatScore(3))
	assert.Equal(t, "0.00", FormatScore(0))
}
