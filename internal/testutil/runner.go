package testutil

import "nixclean/internal/clean"

// RecorderRunner records every command it is asked to run.
type RecorderRunner struct {
	Commands []clean.Command

	// Err is returned for every run; when FailOn is set, only for that
	// program.
	Err    error
	FailOn string
}

// NewRecorderRunner creates a runner that succeeds on everything.
func NewRecorderRunner() *RecorderRunner {
	return &RecorderRunner{}
}

func (r *RecorderRunner) Run(c clean.Command) error {
	r.Commands = append(r.Commands, c)
	if r.Err != nil && (r.FailOn == "" || r.FailOn == c.Program) {
		return r.Err
	}
	return nil
}
