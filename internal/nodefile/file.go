package nodefile

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/avilella/fermi/internal/unitig"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// stream is a reader or writer with a chain of closers, closed in order
type stream struct {
	io.Reader
	io.Writer
	closers []func() error
}

func (s *stream) Close() (err error) {
	for _, c := range s.closers {
		if cerr := c(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open opens a node file for reading, "-" being stdin. Gzip and zstd
// compressed files are recognized by their magic bytes
func Open(path string) (io.ReadCloser, error) {
	s := &stream{}
	var in io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open node file %s", path)
		}
		in = f
		s.closers = append(s.closers, f.Close)
	}

	br := bufio.NewReaderSize(in, 1<<16)
	magic, _ := br.Peek(4)

	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		gz, err := gzip.NewReader(br)
		if err != nil {
			s.Close()
			return nil, errors.Wrapf(err, "failed to read gzip header of %s", path)
		}
		s.Reader = gz
		s.closers = append([]func() error{gz.Close}, s.closers...)
	case bytes.HasPrefix(magic, zstdMagic):
		zr, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			s.Close()
			return nil, errors.Wrapf(err, "failed to read zstd header of %s", path)
		}
		s.Reader = zr
		s.closers = append([]func() error{func() error { zr.Close(); return nil }}, s.closers...)
	default:
		s.Reader = br
	}

	return s, nil
}

// Create opens a node file for writing, "-" or "" being stdout. Files
// ending in .gz or .zst are compressed
func Create(path string) (io.WriteCloser, error) {
	s := &stream{}
	var out io.Writer = os.Stdout
	if path != "-" && path != "" {
		f, err := os.Create(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create node file %s", path)
		}
		out = f
		s.closers = append(s.closers, f.Close)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz := gzip.NewWriter(out)
		s.Writer = gz
		s.closers = append([]func() error{gz.Close}, s.closers...)
	case ".zst":
		zw, err := zstd.NewWriter(out, zstd.WithEncoderConcurrency(1))
		if err != nil {
			s.Close()
			return nil, errors.Wrapf(err, "failed to create zstd writer for %s", path)
		}
		s.Writer = zw
		s.closers = append([]func() error{zw.Close}, s.closers...)
	default:
		s.Writer = out
	}

	return s, nil
}

// ReadFile reads all fragments of a node file
func ReadFile(path string, log logrus.FieldLogger) ([]unitig.Fragment, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	frags, err := Read(r, log)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	return frags, nil
}

// WriteFile writes the active fragments to a node file
func WriteFile(path string, frags []unitig.Fragment) error {
	w, err := Create(path)
	if err != nil {
		return err
	}

	if err = Write(w, frags); err != nil {
		w.Close()
		return err
	}
	return errors.Wrapf(w.Close(), "failed to close %s", path)
}
