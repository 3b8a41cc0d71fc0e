//go:build windows

package fileaccess

import (
	"os"

	"github.com/spf13/afero"
	"golang.org/x/sys/windows"
)

// NewOsFs returns the OS filesystem. On windows files are opened with
// FILE_FLAG_SEQUENTIAL_SCAN so the cache manager reads ahead aggressively.
func NewOsFs() afero.Fs {
	return sequentialFs{Fs: afero.NewOsFs()}
}

type sequentialFs struct {
	afero.Fs
}

func (sequentialFs) Open(name string) (afero.File, error) {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}
	h, err := windows.CreateFile(p, windows.GENERIC_READ, windows.FILE_SHARE_READ, nil,
		windows.OPEN_EXISTING, windows.FILE_ATTRIBUTE_NORMAL|windows.FILE_FLAG_SEQUENTIAL_SCAN, 0)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}
	return os.NewFile(uintptr(h), name), nil
}
