package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/clcollins/incidentrank/pkg/deprecation"
	"github.com/clcollins/incidentrank/pkg/launcher"
	"github.com/clcollins/incidentrank/pkg/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	exampleConfig = `
# Example incidentrank configuration file
---
# This is an example configuration file for incidentrank.  It is intended to
# be used as a reference for the configuration options available to the user.
# The configuration file is located at ~/.config/incidentrank/incidentrank.yaml
#
# Every option is optional; incidentrank runs without a config file.

# Directory HTML reports are written to
report_dir: reports

# Open a report in the browser once it is written
open_report: true

# Command used to open a report; must contain %%REPORT_PATH%%
browser: xdg-open %%REPORT_PATH%%

# Write session metrics in the Prometheus text format on exit
metrics_textfile: /var/lib/node_exporter/textfile_collector/incidentrank.prom

# PagerDuty API token; enables importing open PagerDuty incidents
pagerduty_token: <PagerDuty API token>

# Teams to import incidents for
pagerduty_teams:
  - <PagerDuty Team ID 1>
  - <PagerDuty Team ID 2>`
)

const description = `The config command is used to create or validate the incidentrank config file.
The config file is located at ~/.config/incidentrank/incidentrank.yaml and is used to store
the configuration options for the incidentrank application.`

var (
	defaultOptionalKeys = map[string]string{
		"report_dir":  report.DefaultDir,
		"open_report": "true",
		"browser":     launcher.DefaultCommand,
	}
	optionalKeys = map[string]string{
		"report_dir":       fmt.Sprintf("Directory HTML reports are written to (default: %v)", defaultOptionalKeys["report_dir"]),
		"open_report":      fmt.Sprintf("Open a report once it is written (default: %v)", defaultOptionalKeys["open_report"]),
		"browser":          fmt.Sprintf("Command used to open a report (default: %v)", defaultOptionalKeys["browser"]),
		"metrics_textfile": "Prometheus textfile written on exit (default: None)",
		"pagerduty_token":  "PagerDuty API token (default: None, import disabled)",
		"pagerduty_teams":  "PagerDuty team IDs to import incidents for (default: None)",
	}
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:          "config",
	Short:        "Create or validate the incidentrank config file",
	Long:         description + "\n\n" + exampleConfig,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case cmd.Flag("create").Value.String() == "true":
			fmt.Println(exampleConfig)
			return nil
		case cmd.Flag("validate").Value.String() == "true":
			err := validateConfig(viper.GetViper())
			if err != nil {
				return err
			}
			fmt.Printf("Config file is valid\n")
			return nil
		default:
			err := cmd.Usage()
			return err
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().BoolP("create", "c", false, "print a sample config file")
	configCmd.Flags().BoolP("validate", "v", false, "validate the config file")
	configCmd.MarkFlagsMutuallyExclusive("create", "validate")
}

// validateConfig checks the settings read from the config file and the
// environment. Deprecated keys only warn; values that cannot work are errors.
func validateConfig(v *viper.Viper) error {
	errs := []error{}
	settings := v.AllSettings()
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if deprecation.Deprecated(k) {
			if r, ok := deprecation.Replacement(k); ok {
				log.Warn("Found deprecated key; rename it", "key_name", k, "replacement", r)
				continue
			}
			log.Info("Found deprecated key; you may remove this from your config", "key_name", k)
			continue
		}

		value := fmt.Sprintf("%v", settings[k])
		if strings.Contains(k, "token") {
			value = "*****"
		}

		log.Debug("Found key", k, value)
	}

	if b := v.GetString("browser"); b != "" {
		if _, err := launcher.NewReportLauncher(b); err != nil {
			errs = append(errs, fmt.Errorf("invalid browser command: %w", err))
			log.Error("Invalid key", "key_name", "browser", "key_description", optionalKeys["browser"])
		}
	}

	if v.IsSet("pagerduty_teams") && v.GetString("pagerduty_token") == "" {
		errs = append(errs, errors.New("pagerduty_teams is set but pagerduty_token is not"))
		log.Error("Missing key", "key_name", "pagerduty_token", "key_description", optionalKeys["pagerduty_token"])
	}

	for k := range optionalKeys {
		if !v.IsSet(k) {
			d, ok := defaultOptionalKeys[k]
			if !ok {
				d = "None"
			}
			log.Warn("missing optional key: " + k + "; using default value " + d)
		}
	}

	return errors.Join(errs...)
}
