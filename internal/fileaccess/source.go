package fileaccess

import (
	"context"
	"errors"

	"github.com/dustin/go-humanize"
	"golang.org/x/time/rate"

	"github.com/eargollo/thash/internal/logging"
)

// Source yields a file's bytes as chunks. Chunks are only valid for the
// duration of the callback and must not be retained.
type Source interface {
	// Strategy reports the strategy actually in use, which is Buffered when
	// mapping was requested but failed.
	Strategy() Strategy
	// Each calls fn for every chunk in file order. It stops at the first
	// error from a read or from fn.
	Each(ctx context.Context, fn func(chunk []byte) error) error
	// Close releases the mapping or buffer. It is safe to call more than once.
	Close() error
}

// Options tunes Access. A nil *Options means no throttle and no logging.
type Options struct {
	// Limiter meters buffered reads in bytes. Its burst must be at least
	// BufferSize; see NewReadLimiter.
	Limiter *rate.Limiter
	// Verbose enables debug logging.
	Verbose bool
}

func (o *Options) limiter() *rate.Limiter {
	if o == nil {
		return nil
	}
	return o.Limiter
}

func (o *Options) debugf(format string, args ...interface{}) {
	logging.Debugf(o != nil && o.Verbose, format, args...)
}

// NewReadLimiter returns a limiter allowing bytesPerSec bytes of buffered
// reads per second, or nil when bytesPerSec is zero.
func NewReadLimiter(bytesPerSec uint64) *rate.Limiter {
	if bytesPerSec == 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(bytesPerSec), BufferSize)
}

// Access exposes f (whose size is already known and non-zero) as a Source
// using strategy s. A Mapped request that cannot be mapped falls back to
// Buffered; the mapping error is logged, never returned.
func Access(ctx context.Context, f *File, size int64, s Strategy, opts *Options) (Source, error) {
	if s == Mapped {
		src, err := newMappedSource(f, size)
		if err == nil {
			opts.debugf("mapped %s (%s)", f.Path(), humanize.IBytes(uint64(size)))
			return src, nil
		}
		if !errors.Is(err, ErrMapping) {
			return nil, err
		}
		opts.debugf("%v; falling back to buffered reads", err)
	}
	src, err := newBufferedSource(f, opts.limiter())
	if err != nil {
		return nil, err
	}
	opts.debugf("reading %s (%s) in %s chunks", f.Path(), humanize.IBytes(uint64(size)), humanize.IBytes(BufferSize))
	return src, nil
}
