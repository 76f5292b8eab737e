package testutil

import (
	"io/fs"
	"path/filepath"
	"sort"
	"time"
)

// MockEntry represents one entry in the mock filesystem.
type MockEntry struct {
	IsDir     bool
	IsSymlink bool
	Target    string
	ModTime   time.Time
	Writable  bool
}

// MockFilesystem is an in-memory filesystem for testing the cleanup
// pipeline. It implements clean.Filesystem.
type MockFilesystem struct {
	entries map[string]*MockEntry

	// Removed records every successful Remove call, in order.
	Removed []string

	readDirErrs map[string]error
	modTimeErrs map[string]error
	accessErrs  map[string]error
	removeErrs  map[string]error
}

// NewMockFilesystem creates an empty mock filesystem.
func NewMockFilesystem() *MockFilesystem {
	return &MockFilesystem{
		entries:     make(map[string]*MockEntry),
		readDirErrs: make(map[string]error),
		modTimeErrs: make(map[string]error),
		accessErrs:  make(map[string]error),
		removeErrs:  make(map[string]error),
	}
}

// AddDir adds a directory.
func (m *MockFilesystem) AddDir(path string) {
	m.entries[path] = &MockEntry{IsDir: true, ModTime: time.Now(), Writable: true}
}

// AddFile adds a regular file with the given modification time.
func (m *MockFilesystem) AddFile(path string, modTime time.Time) {
	m.entries[path] = &MockEntry{ModTime: modTime, Writable: true}
}

// AddSymlink adds a symlink pointing at target. modTime is the link's own
// modification time.
func (m *MockFilesystem) AddSymlink(path, target string, modTime time.Time) {
	m.entries[path] = &MockEntry{IsSymlink: true, Target: target, ModTime: modTime, Writable: true}
}

// SetWritable marks an existing entry writable or not.
func (m *MockFilesystem) SetWritable(path string, writable bool) {
	m.entries[path].Writable = writable
}

// FailReadDir makes ReadDir on dir return err.
func (m *MockFilesystem) FailReadDir(dir string, err error) { m.readDirErrs[dir] = err }

// FailModTime makes ModTime on path return err.
func (m *MockFilesystem) FailModTime(path string, err error) { m.modTimeErrs[path] = err }

// FailAccess makes AccessNoFollow on path return err.
func (m *MockFilesystem) FailAccess(path string, err error) { m.accessErrs[path] = err }

// FailRemove makes Remove on path return err.
func (m *MockFilesystem) FailRemove(path string, err error) { m.removeErrs[path] = err }

func (m *MockFilesystem) ReadDir(dir string) ([]string, error) {
	if err := m.readDirErrs[dir]; err != nil {
		return nil, err
	}
	entry, ok := m.entries[dir]
	if !ok || !entry.IsDir {
		return nil, &fs.PathError{Op: "readdir", Path: dir, Err: fs.ErrNotExist}
	}

	var names []string
	for path := range m.entries {
		if path != dir && filepath.Dir(path) == dir {
			names = append(names, filepath.Base(path))
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *MockFilesystem) ReadLink(path string) (string, error) {
	entry, ok := m.entries[path]
	if !ok {
		return "", &fs.PathError{Op: "readlink", Path: path, Err: fs.ErrNotExist}
	}
	if !entry.IsSymlink {
		return "", &fs.PathError{Op: "readlink", Path: path, Err: fs.ErrInvalid}
	}
	return entry.Target, nil
}

func (m *MockFilesystem) ModTime(path string) (time.Time, error) {
	if err := m.modTimeErrs[path]; err != nil {
		return time.Time{}, err
	}
	entry, ok := m.entries[path]
	if !ok {
		return time.Time{}, &fs.PathError{Op: "lstat", Path: path, Err: fs.ErrNotExist}
	}
	return entry.ModTime, nil
}

func (m *MockFilesystem) AccessNoFollow(path string) error {
	if err := m.accessErrs[path]; err != nil {
		return err
	}
	entry, ok := m.entries[path]
	if !ok {
		return &fs.PathError{Op: "faccessat", Path: path, Err: fs.ErrNotExist}
	}
	if !entry.Writable {
		return &fs.PathError{Op: "faccessat", Path: path, Err: fs.ErrPermission}
	}
	return nil
}

func (m *MockFilesystem) Remove(path string) error {
	if err := m.removeErrs[path]; err != nil {
		return err
	}
	if _, ok := m.entries[path]; !ok {
		return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
	}
	delete(m.entries, path)
	m.Removed = append(m.Removed, path)
	return nil
}
