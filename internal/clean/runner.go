package clean

// Command describes one external program invocation.
type Command struct {
	Program string
	Args    []string

	// Message is logged before the command runs, so the user sees what is
	// happening even when the command itself is quiet.
	Message string

	// Dry logs the command instead of executing it.
	Dry bool
}

// Runner executes external commands (the store collector and optimiser).
type Runner interface {
	Run(cmd Command) error
}
