package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Status categorizes the outcome of inspecting a single directory entry.
type Status int

const (
	StatusOK          Status = iota
	StatusStatFailed         // metadata could not be read (permissions, dangling symlink, ...)
	StatusUnsupported        // neither a regular file nor a directory
)

// String returns the string representation of the Status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusStatFailed:
		return "stat_failed"
	case StatusUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Entry is the result of inspecting one child of a directory. Exactly one of
// Info and Err is set.
type Entry struct {
	Name   string      // Base name as reported by the directory listing.
	Path   string      // Name joined onto the listed directory.
	Info   os.FileInfo // Metadata with symlinks followed.
	Err    error       // Why the entry could not be inspected.
	Status Status
}

// Failed reports whether the entry could not be inspected.
func (e Entry) Failed() bool {
	return e.Status != StatusOK
}

// IsDir reports whether the entry resolves to a directory.
func (e Entry) IsDir() bool {
	return e.Status == StatusOK && e.Info.IsDir()
}

// IsRegular reports whether the entry resolves to a regular file.
func (e Entry) IsRegular() bool {
	return e.Status == StatusOK && e.Info.Mode().IsRegular()
}

// List reads dir and returns one Entry per child, in the order the
// filesystem reports them. A failure to open or read dir itself is returned
// as an error; failures on individual children are reported on their Entry
// and never abort the listing.
func List(fsys afero.Fs, dir string) ([]Entry, error) {
	f, err := fsys.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("walker: open %s: %w", dir, err)
	}
	defer f.Close()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, fmt.Errorf("walker: read %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, inspect(fsys, dir, name))
	}
	return entries, nil
}

func inspect(fsys afero.Fs, dir, name string) Entry {
	e := Entry{Name: name, Path: filepath.Join(dir, name)}

	// Stat rather than Lstat so symlinked documents and folders are
	// treated like their targets.
	info, err := fsys.Stat(e.Path)
	if err != nil {
		e.Err = err
		e.Status = StatusStatFailed
		return e
	}
	e.Info = info

	if !info.IsDir() && !info.Mode().IsRegular() {
		e.Err = fmt.Errorf("walker: %s: unsupported file mode %s", e.Path, info.Mode().Type())
		e.Status = StatusUnsupported
	}
	return e
}

// Canonical returns the identity of dir used for revisit detection. On the
// OS filesystem symlinks are resolved so that two routes to the same
// directory yield the same key; other filesystems have no links and the
// cleaned path is used.
func Canonical(fsys afero.Fs, dir string) (string, error) {
	if _, ok := fsys.(*afero.OsFs); !ok {
		return filepath.Clean(dir), nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("walker: resolve %s: %w", dir, err)
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("walker: resolve %s: %w", dir, err)
	}
	return real, nil
}

// Exists reports whether path can be stat'ed on fsys.
func Exists(fsys afero.Fs, path string) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
