package fs

import (
	"os"
	"time"

	"nixclean/internal/clean"
)

// OSFilesystem is the real filesystem implementation of clean.Filesystem.
type OSFilesystem struct{}

// NewOSFilesystem creates a filesystem that operates on the real filesystem.
func NewOSFilesystem() *OSFilesystem {
	return &OSFilesystem{}
}

// ReadDir returns the entry names of a directory in lexical order.
func (*OSFilesystem) ReadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name()
	}
	return names, nil
}

// ReadLink returns the target of a symlink without resolving it further.
func (*OSFilesystem) ReadLink(path string) (string, error) {
	return os.Readlink(path)
}

// ModTime returns the modification time of the path itself; a trailing
// symlink is not followed.
func (*OSFilesystem) ModTime(path string) (time.Time, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// Remove deletes a single filesystem entry.
func (*OSFilesystem) Remove(path string) error {
	return os.Remove(path)
}

// Compile-time check that OSFilesystem implements clean.Filesystem.
var _ clean.Filesystem = (*OSFilesystem)(nil)
