//go:build !windows

package fileaccess

import "github.com/spf13/afero"

// NewOsFs returns the OS filesystem.
func NewOsFs() afero.Fs {
	return afero.NewOsFs()
}
