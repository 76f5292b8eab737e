//go:build unix

package fs

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// AccessNoFollow checks that path exists and is writable by the calling
// process without following a trailing symlink. Errors come back as
// *fs.PathError wrapping the errno, so callers can classify them with
// errors.Is(err, fs.ErrNotExist) and errors.Is(err, fs.ErrPermission).
func (*OSFilesystem) AccessNoFollow(path string) error {
	err := unix.Faccessat(unix.AT_FDCWD, path, unix.W_OK, unix.AT_SYMLINK_NOFOLLOW)
	if err != nil {
		return &fs.PathError{Op: "faccessat", Path: path, Err: err}
	}
	return nil
}
