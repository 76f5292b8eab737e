package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"nixclean/internal/clean"
)

// TerminalPrompter asks yes/no questions on the controlling terminal.
// Deletions should never be confirmed by piped input, so a non-terminal
// stdin is an error rather than an implicit answer.
type TerminalPrompter struct{}

// NewTerminalPrompter creates a prompter reading from stdin.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{}
}

// Confirm prints the question and blocks until the user answers. An empty
// answer picks the default.
func (*TerminalPrompter) Confirm(question string, defaultAnswer bool) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, fmt.Errorf("confirmation requested but stdin is not a terminal")
	}

	hint := "[y/N]"
	if defaultAnswer {
		hint = "[Y/n]"
	}
	fmt.Fprintf(os.Stderr, "%s %s ", question, hint)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("reading answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return defaultAnswer, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Compile-time check that TerminalPrompter implements clean.Prompter.
var _ clean.Prompter = (*TerminalPrompter)(nil)
