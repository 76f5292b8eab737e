//go:build unix

package sys

import (
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// Elevate re-executes the current invocation under sudo. On success the
// process image is replaced and this call never returns.
func (*OSSystem) Elevate() error {
	sudo, err := exec.LookPath("sudo")
	if err != nil {
		return fmt.Errorf("locating sudo: %w", err)
	}

	argv := append([]string{sudo}, os.Args...)
	if err := unix.Exec(sudo, argv, os.Environ()); err != nil {
		return fmt.Errorf("re-executing with sudo: %w", err)
	}
	return nil
}
