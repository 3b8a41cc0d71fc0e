package hash

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	"github.com/eargollo/thash/internal/digest"
	"github.com/eargollo/thash/internal/fileaccess"
	"github.com/eargollo/thash/internal/logging"
)

// ErrEmptyFile is returned for zero-length input unless Options.AllowEmpty is set.
var ErrEmptyFile = errors.New("empty file")

// access opens the byte source; tests wrap it to observe release order.
var access = fileaccess.Access

// Options configures Run. Nil means defaults: the OS filesystem, size-based
// strategy selection, empty files rejected, no throttle, no debug logging.
type Options struct {
	Fs          afero.Fs            // filesystem to read from (default: fileaccess.NewOsFs)
	Select      fileaccess.Selector // strategy override (default: fileaccess.Select)
	AllowEmpty  bool                // hash empty files instead of rejecting them
	MaxReadRate uint64              // bytes/second for buffered reads, 0 = unlimited
	Verbose     bool
}

func (o *Options) fs() afero.Fs {
	if o == nil || o.Fs == nil {
		return fileaccess.NewOsFs()
	}
	return o.Fs
}

func (o *Options) selector() fileaccess.Selector {
	if o == nil || o.Select == nil {
		return fileaccess.Select
	}
	return o.Select
}

func (o *Options) allowEmpty() bool { return o != nil && o.AllowEmpty }

func (o *Options) verbose() bool { return o != nil && o.Verbose }

func (o *Options) maxReadRate() uint64 {
	if o == nil {
		return 0
	}
	return o.MaxReadRate
}

// Result is the outcome of hashing one file.
type Result struct {
	Path     string
	Size     int64
	Strategy fileaccess.Strategy
	Digest   digest.Digest
	Elapsed  time.Duration
}

// String renders the result as "SHA256(<path>) = <hex>".
func (r *Result) String() string {
	return fmt.Sprintf("SHA256(%s) = %s", r.Path, r.Digest)
}

// HashFile reads the file at path and returns its SHA-256 hash as a hex-encoded string.
// Large files are memory-mapped; smaller ones are streamed through a fixed buffer.
func HashFile(path string) (string, error) {
	res, err := Run(context.Background(), path, nil)
	if err != nil {
		return "", err
	}
	return res.Digest.String(), nil
}

// Run hashes the file at path. Resources are released in reverse order of
// acquisition on every return path: the mapping or buffer first, then the
// file handle. A release error is reported only if nothing failed earlier.
func Run(ctx context.Context, path string, opts *Options) (res *Result, err error) {
	start := time.Now()
	f, err := fileaccess.Open(opts.fs(), path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			res, err = nil, fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	size, err := f.Size()
	if err != nil {
		return nil, err
	}
	if size == 0 {
		if !opts.allowEmpty() {
			return nil, fmt.Errorf("%w: %s", ErrEmptyFile, path)
		}
		d, err := digest.Begin().Finish()
		if err != nil {
			return nil, err
		}
		return &Result{Path: path, Strategy: fileaccess.Buffered, Digest: d, Elapsed: time.Since(start)}, nil
	}

	strategy := opts.selector()(size)
	limiter := fileaccess.NewReadLimiter(opts.maxReadRate())
	if limiter != nil && strategy == fileaccess.Mapped {
		// The throttle meters read calls; a mapping has none.
		strategy = fileaccess.Buffered
	}
	logging.Debugf(opts.verbose(), "%s: %s, selected %s", path, humanize.IBytes(uint64(size)), strategy)

	src, err := access(ctx, f, size, strategy, &fileaccess.Options{Limiter: limiter, Verbose: opts.verbose()})
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			res, err = nil, cerr
		}
	}()

	state := digest.Begin()
	if err := src.Each(ctx, state.Update); err != nil {
		return nil, err
	}
	d, err := state.Finish()
	if err != nil {
		return nil, err
	}
	// Release the region before the deferred handle close.
	if err := src.Close(); err != nil {
		return nil, err
	}

	res = &Result{Path: path, Size: size, Strategy: src.Strategy(), Digest: d, Elapsed: time.Since(start)}
	logging.Debugf(opts.verbose(), "hashed %s (%s, %s) in %s", path, humanize.IBytes(uint64(size)), res.Strategy, formatDuration(res.Elapsed))
	return res, nil
}

