// Copyright 2018 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package aigfile

import (
	"compress/bzip2"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/go-air/aiger/aiger"
	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"
	"go.uber.org/zap"
)

// Stdio is the path standing for standard input or output.
const Stdio = "-"

// ErrNoBzip2Writer is returned when writing a ".bz2" file.
var ErrNoBzip2Writer = errors.New("bzip2 compression is not supported for writing")

type compression int

const (
	plain compression = iota
	gzipped
	bzipped
	xzipped
)

var suffixes = [...]string{gzipped: ".gz", bzipped: ".bz2", xzipped: ".xz"}

func (c compression) String() string {
	if c == plain {
		return "none"
	}
	return suffixes[c][1:]
}

// compressionOf gives the compression of path and path without the
// compression suffix.
func compressionOf(path string) (compression, string) {
	for c := gzipped; c <= xzipped; c++ {
		if strings.HasSuffix(path, suffixes[c]) {
			return c, strings.TrimSuffix(path, suffixes[c])
		}
	}
	return plain, path
}

// ModeOf gives the default write mode for path.
func ModeOf(path string) aiger.Mode {
	_, base := compressionOf(path)
	if strings.HasSuffix(base, ".aag") {
		return aiger.Ascii
	}
	return aiger.Binary
}

type closers []io.Closer

func (cs closers) Close() error {
	var first error
	for _, c := range cs {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

type readCloser struct {
	io.Reader
	closers
}

// Open opens path for reading, decompressing according to its suffix.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdio {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	c, _ := compressionOf(path)
	switch c {
	case gzipped:
		r, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "gzip %s", path)
		}
		return &readCloser{Reader: r, closers: closers{r, f}}, nil
	case bzipped:
		return &readCloser{Reader: bzip2.NewReader(f), closers: closers{f}}, nil
	case xzipped:
		r, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, errors.Wrapf(err, "xz %s", path)
		}
		return &readCloser{Reader: r, closers: closers{f}}, nil
	}
	return f, nil
}

// Read reads the model stored at path.  log may be nil.
func Read(path string, log *zap.Logger) (*aiger.T, error) {
	if log == nil {
		log = zap.NewNop()
	}
	c, _ := compressionOf(path)
	log.Debug("reading model", zap.String("path", path), zap.Stringer("compression", c))
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	t, err := aiger.Read(r)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	log.Debug("read model",
		zap.String("path", path),
		zap.Uint32("maxvar", uint32(t.MaxVar)),
		zap.Int("inputs", len(t.Inputs)),
		zap.Int("latches", len(t.Latches)),
		zap.Int("ands", len(t.Ands)))
	return t, nil
}

type writeCloser struct {
	io.Writer
	closers
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// Create creates path for writing, compressing according to its suffix.
// Closing the result flushes the compressor and closes the file.
func Create(path string) (io.WriteCloser, error) {
	if path == Stdio {
		return nopWriteCloser{os.Stdout}, nil
	}
	c, _ := compressionOf(path)
	if c == bzipped {
		return nil, ErrNoBzip2Writer
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "create")
	}
	switch c {
	case gzipped:
		w := gzip.NewWriter(f)
		return &writeCloser{Writer: w, closers: closers{w, f}}, nil
	case xzipped:
		w, err := xz.NewWriter(f)
		if err != nil {
			f.Close()
			os.Remove(path)
			return nil, errors.Wrapf(err, "xz %s", path)
		}
		return &writeCloser{Writer: w, closers: closers{w, f}}, nil
	}
	return f, nil
}

// Write writes t to path in the given mode.  If writing fails, path is
// removed.  log may be nil.
//
// Writing in binary mode reencodes t, see aiger.T.Write.
func Write(t *aiger.T, path string, mode aiger.Mode, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	if err := t.Check(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	w, err := Create(path)
	if err != nil {
		return err
	}
	err = t.Write(w, mode)
	if cerr := w.Close(); err == nil {
		err = errors.Wrapf(cerr, "close %s", path)
	}
	if err != nil {
		if path != Stdio {
			os.Remove(path)
		}
		log.Debug("write failed", zap.String("path", path), zap.Error(err))
		return err
	}
	log.Debug("wrote model",
		zap.String("path", path),
		zap.Bool("ascii", mode&aiger.Ascii != 0),
		zap.Bool("stripped", mode&aiger.Stripped != 0))
	return nil
}
