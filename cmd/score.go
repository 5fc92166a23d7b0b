package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/clcollins/incidentrank/pkg/incident"
	"github.com/clcollins/incidentrank/pkg/report"
	"github.com/spf13/cobra"
)

var (
	scoreSeverity  string
	scoreUrgency   string
	scoreFrequency string
)

// scoreCmd prints the priority score for a set of ratings, without starting the TUI
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Print the priority score for a severity, urgency and frequency",
	Long: `The score command prints the priority score an incident with the
given ratings would be ranked by:

  severity*0.5 + urgency*0.3 + frequency*0.2

where Low/Rare = 1, Medium/Occasional = 2 and High/Frequent = 3.`,
	Example:      "  incidentrank score --severity High --urgency Medium --frequency Rare",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printScore(cmd.OutOrStdout(), scoreSeverity, scoreUrgency, scoreFrequency)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringVarP(&scoreSeverity, "severity", "s", "", "severity: Low, Medium or High")
	scoreCmd.Flags().StringVarP(&scoreUrgency, "urgency", "u", "", "urgency: Low, Medium or High")
	scoreCmd.Flags().StringVarP(&scoreFrequency, "frequency", "f", "", "frequency: Rare, Occasional or Frequent")
	for _, f := range []string{"severity", "urgency", "frequency"} {
		_ = scoreCmd.MarkFlagRequired(f)
	}
}

func printScore(w io.Writer, severity, urgency, frequency string) error {
	errs := []error{}

	sev, err := incident.ParseLevel(severity)
	if err != nil {
		errs = append(errs, fmt.Errorf("severity: %w", err))
	}
	urg, err := incident.ParseLevel(urgency)
	if err != nil {
		errs = append(errs, fmt.Errorf("urgency: %w", err))
	}
	freq, err := incident.ParseFrequency(frequency)
	if err != nil {
		errs = append(errs, fmt.Errorf("frequency: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, report.FormatScore(incident.Score(sev, urg, freq)))
	return err
}
