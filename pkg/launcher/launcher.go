package launcher

import (
	"fmt"
	"os/exec"
	"strings"
)

const (
	ReportPathPlaceholder = "%%REPORT_PATH%%"
	DefaultCommand        = "xdg-open " + ReportPathPlaceholder
)

// ReportLauncher opens a written report with a user supplied command, eg:
// "xdg-open %%REPORT_PATH%%" or "firefox --new-tab %%REPORT_PATH%%"
type ReportLauncher struct {
	Enabled bool
	command []string
}

func NewReportLauncher(command string) (ReportLauncher, error) {
	launcher := ReportLauncher{
		command: strings.Fields(command),
	}

	err := launcher.validate()
	if err != nil {
		return ReportLauncher{}, err
	}

	return launcher, nil
}

func (l *ReportLauncher) validate() error {
	errs := []error{}

	if len(l.command) == 0 || l.command[0] == "" {
		errs = append(errs, fmt.Errorf("browser command is not set"))
	}

	if len(l.command) > 0 && strings.Contains(l.command[0], "%%") {
		errs = append(errs, fmt.Errorf("first browser command argument cannot have a replaceable"))
	}

	if !strings.Contains(strings.Join(l.command, " "), ReportPathPlaceholder) {
		errs = append(errs, fmt.Errorf("browser command must contain %s", ReportPathPlaceholder))
	}

	if len(errs) > 0 {
		return fmt.Errorf("launcher error: %v", errs)
	}

	l.Enabled = true
	return nil
}

// BuildOpenCommand expands the command template for the given report path.
// The first element is never replaced.
func (l *ReportLauncher) BuildOpenCommand(path string) []string {
	command := []string{}

	if len(l.command) == 0 {
		return command
	}

	command = append(command, l.command[0])
	command = append(command, replaceVars(l.command[1:], path)...)

	return command
}

// Open starts the command for the given report without waiting for it
func (l *ReportLauncher) Open(path string) error {
	if !l.Enabled {
		return fmt.Errorf("launcher.Open(): launcher is not enabled")
	}

	command := l.BuildOpenCommand(path)
	c := exec.Command(command[0], command[1:]...)
	if err := c.Start(); err != nil {
		return fmt.Errorf("launcher.Open(): failed to run `%v`: %w", c.String(), err)
	}

	// Reap the process in the background; browsers commonly outlive us
	go c.Wait() //nolint:errcheck

	return nil
}

func replaceVars(args []string, path string) []string {
	transformedArgs := []string{}
	for _, str := range args {
		transformedArgs = append(transformedArgs, strings.ReplaceAll(str, ReportPathPlaceholder, path))
	}
	return transformedArgs
}
