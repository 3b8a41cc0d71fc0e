package fileaccess

import (
	"context"
	"fmt"
	"math"
)

type mappedSource struct {
	f      *File
	region []byte
}

func newMappedSource(f *File, size int64) (*mappedSource, error) {
	fd, ok := f.fd()
	if !ok {
		return nil, fmt.Errorf("%w: %s: no file descriptor", ErrMapping, f.Path())
	}
	if size <= 0 || uint64(size) > math.MaxInt {
		return nil, fmt.Errorf("%w: %s: size %d out of range", ErrMapping, f.Path(), size)
	}
	region, err := mapFile(fd, int(size))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMapping, f.Path(), err)
	}
	return &mappedSource{f: f, region: region}, nil
}

func (s *mappedSource) Strategy() Strategy { return Mapped }

// Each hands the whole region to fn as a single chunk.
func (s *mappedSource) Each(_ context.Context, fn func([]byte) error) error {
	if s.region == nil {
		return fmt.Errorf("%w: %s: source closed", ErrRead, s.f.Path())
	}
	return fn(s.region)
}

func (s *mappedSource) Close() error {
	if s.region == nil {
		return nil
	}
	region := s.region
	s.region = nil
	if err := unmapFile(region); err != nil {
		return fmt.Errorf("unmap %s: %w", s.f.Path(), err)
	}
	return nil
}
