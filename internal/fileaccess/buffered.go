package fileaccess

import (
	"context"
	"errors"
	"fmt"
	"io"
	"unsafe"

	"golang.org/x/time/rate"
)

type bufferedSource struct {
	f       *File
	buf     []byte
	limiter *rate.Limiter
}

func newBufferedSource(f *File, limiter *rate.Limiter) (*bufferedSource, error) {
	buf, err := alignedBuffer(BufferSize, BufferAlign)
	if err != nil {
		return nil, err
	}
	return &bufferedSource{f: f, buf: buf, limiter: limiter}, nil
}

func (s *bufferedSource) Strategy() Strategy { return Buffered }

func (s *bufferedSource) Each(ctx context.Context, fn func([]byte) error) error {
	if s.buf == nil {
		return fmt.Errorf("%w: %s: source closed", ErrRead, s.f.Path())
	}
	for {
		n, err := s.f.f.Read(s.buf)
		if n > 0 {
			if s.limiter != nil {
				if werr := s.limiter.WaitN(ctx, n); werr != nil {
					return werr
				}
			}
			if ferr := fn(s.buf[:n]); ferr != nil {
				return ferr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrRead, s.f.Path(), err)
		}
		// A zero-byte read without error is treated as end of file.
		if n == 0 {
			return nil
		}
	}
}

func (s *bufferedSource) Close() error {
	s.buf = nil
	return nil
}

// alignedBuffer returns a size-byte slice whose first element sits on an
// align-byte boundary. align must be a power of two.
func alignedBuffer(size, align int) ([]byte, error) {
	if size <= 0 || align <= 0 || align&(align-1) != 0 {
		return nil, fmt.Errorf("%w: size %d, alignment %d", ErrAlloc, size, align)
	}
	raw := make([]byte, size+align)
	off := 0
	if rem := int(uintptr(unsafe.Pointer(&raw[0])) & uintptr(align-1)); rem != 0 {
		off = align - rem
	}
	return raw[off : off+size : off+size], nil
}
