/*
Copyright © 2023 Chris Collins 'collins.christopher@gmail.com'

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/


package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/clcollins/incidentrank/pkg/deprecation"
	"github.com/clcollins/incidentrank/pkg/incident"
	"github.com/clcollins/incidentrank/pkg/launcher"
	"github.com/clcollins/incidentrank/pkg/metrics"
	"github.com/clcollins/incidentrank/pkg/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const cfgFile = "incidentrank.yaml"
const cfgFilePath = ".config/incidentrank/"

var debug bool
var reportDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "incidentrank",
	Short: "TUI for recording and prioritizing IT incidents",
	Long: `'incidentrank' is a TUI application for keeping track of
IT incidents during a session.  Incidents are scored from their
severity, urgency and frequency, and the OPEN incidents can be
ranked by priority and exported as an HTML report.  Incidents
live only in memory and are gone when the program exits; export
a report before quitting to keep a record of them.`,

	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if debug {
			log.SetLevel(log.DebugLevel)
			for k, v := range viper.GetViper().AllSettings() {
				if k == "pagerduty_token" || k == "token" {
					v = "*****"
				}
				log.Debug("Found key", "key", k, "value", v)
			}
		}

		token, teams := pagerDutySettings(viper.GetViper())

		// The flag always overrides the config file if set
		if reportDir == "" {
			reportDir = viper.GetString("report_dir")
		}

		l, err := launcher.NewReportLauncher(viper.GetString("browser"))
		if err != nil {
			// Reports are still written, they just are not opened
			log.Warn("report launcher disabled", "error", err)
		}

		recorder := metrics.New()
		store := incident.NewStore()

		m := tui.InitialModel(
			store,
			recorder,
			token,
			teams,
			l,
			reportDir,
			viper.GetBool("open_report"),
			debug,
		)

		p := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("incidentrank: %w", err)
		}

		if path := viper.GetString("metrics_textfile"); path != "" {
			if err := recorder.WriteTextfile(path); err != nil {
				log.Error("failed to write metrics", "error", err)
			}
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debugging output")
	rootCmd.Flags().StringVarP(&reportDir, "report-dir", "r", "", "Directory HTML reports are written to; default is `report_dir` from the config file")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Find home directory.
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	viper.AddConfigPath(filepath.Join(home, cfgFilePath))
	viper.SetConfigName(cfgFile)
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("incidentrank")
	viper.AutomaticEnv() // read in environment variables that match

	for k, v := range defaultOptionalKeys {
		viper.SetDefault(k, v)
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file is fine; everything has a default
			log.Debug("Config file not found", "error", err)
		} else {
			fmt.Fprintln(os.Stderr, "Config file error: "+err.Error())
		}
	}
}

// pagerDutySettings returns the PagerDuty token and teams, falling back to
// the deprecated keys when the current ones are not set
func pagerDutySettings(v *viper.Viper) (string, []string) {
	token := v.GetString("pagerduty_token")
	teams := v.GetStringSlice("pagerduty_teams")

	if token == "" && v.IsSet("token") {
		r, _ := deprecation.Replacement("token")
		log.Warn("using deprecated config key", "key_name", "token", "replacement", r)
		token = v.GetString("token")
	}
	if len(teams) == 0 && v.IsSet("teams") {
		r, _ := deprecation.Replacement("teams")
		log.Warn("using deprecated config key", "key_name", "teams", "replacement", r)
		teams = v.GetStringSlice("teams")
	}

	return token, teams
}
