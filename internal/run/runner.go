package run

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"nixclean/internal/clean"
)

// ExecRunner runs external commands with stdout/stderr passed through to the
// user. In dry mode it logs what would run instead of running it.
type ExecRunner struct {
	logger clean.Logger
}

// NewExecRunner creates a runner that logs through the given logger.
func NewExecRunner(logger clean.Logger) *ExecRunner {
	return &ExecRunner{logger: logger}
}

// Run executes the command, honoring its dry flag.
func (r *ExecRunner) Run(c clean.Command) error {
	if c.Message != "" {
		r.logger.Info(c.Message)
	}

	commandLine := c.Program + " " + strings.Join(c.Args, " ")
	if c.Dry {
		r.logger.Info("dry run, not executing", "command", commandLine)
		return nil
	}

	r.logger.Debug("executing", "command", commandLine)
	cmd := exec.Command(c.Program, c.Args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", commandLine, err)
	}
	return nil
}

// Compile-time check that ExecRunner implements clean.Runner.
var _ clean.Runner = (*ExecRunner)(nil)
