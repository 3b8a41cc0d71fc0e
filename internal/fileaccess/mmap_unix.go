//go:build unix

package fileaccess

import "golang.org/x/sys/unix"

// mapFile maps size bytes of fd read-only and advises the kernel that the
// region will be read sequentially.
func mapFile(fd uintptr, size int) ([]byte, error) {
	b, err := unix.Mmap(int(fd), 0, size, unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	// Advice only; a refusal does not affect correctness.
	_ = unix.Madvise(b, unix.MADV_SEQUENTIAL)
	return b, nil
}

func unmapFile(b []byte) error {
	return unix.Munmap(b)
}
