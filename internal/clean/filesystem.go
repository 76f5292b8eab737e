package clean

import "time"

// Filesystem provides the narrow set of filesystem operations the cleanup
// pipeline needs. It abstracts the OS so planning logic is testable without
// touching a real Nix installation.
type Filesystem interface {
	// ReadDir returns the entry names of a directory in lexical order.
	ReadDir(dir string) ([]string, error)

	// ReadLink returns the target a symlink points at, without resolving
	// the target further. Fails for non-symlinks.
	ReadLink(path string) (string, error)

	// ModTime returns the modification time of the path itself; a trailing
	// symlink is not followed.
	ModTime(path string) (time.Time, error)

	// AccessNoFollow checks that the path exists and is writable without
	// following a trailing symlink. A missing path is reported as
	// fs.ErrNotExist and a forbidden one as fs.ErrPermission (both
	// unwrappable with errors.Is); anything else is an unexpected
	// filesystem error.
	AccessNoFollow(path string) error

	// Remove deletes a single filesystem entry.
	Remove(path string) error
}
