package fileaccess

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
)

// Errors returned by this package. Callers match them with errors.Is; the
// underlying OS error stays in the chain, so fs.ErrNotExist and
// fs.ErrPermission match as well.
var (
	ErrOpen    = errors.New("open file")
	ErrSize    = errors.New("get file size")
	ErrAlloc   = errors.New("allocate read buffer")
	ErrMapping = errors.New("map file")
	ErrRead    = errors.New("read file")
)

// File is a read-only handle to one path. It must be closed on every path
// out of the caller.
type File struct {
	f     afero.File
	path  string
	size  int64
	sized bool
}

// Open opens path read-only on fsys.
func Open(fsys afero.Fs, path string) (*File, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	return &File{f: f, path: path}, nil
}

// Path returns the path the file was opened with.
func (f *File) Path() string {
	return f.path
}

// Size returns the file's length in bytes. The file is stat'ed once; later
// calls return the cached value.
func (f *File) Size() (int64, error) {
	if f.sized {
		return f.size, nil
	}
	info, err := f.f.Stat()
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrSize, f.path, err)
	}
	f.size = info.Size()
	f.sized = true
	return f.size, nil
}

// Close releases the handle.
func (f *File) Close() error {
	return f.f.Close()
}

// fd returns the OS descriptor when the file is backed by one. In-memory
// filesystems have none, which makes them unmappable.
func (f *File) fd() (uintptr, bool) {
	d, ok := f.f.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	return d.Fd(), true
}
