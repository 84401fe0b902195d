// Package spool provides a write-then-replay scratch buffer that keeps small
// payloads in memory and moves larger ones to a temporary file.
//
// The GraphML writer needs it because key declarations precede the body in
// the output but are only final once the body has been seen.
package spool

import (
	"bytes"
	"io"
	"os"

	"github.com/Maxyme/gml-to-graphml/pkg/errors"
)

// DefaultThreshold is the in-memory limit used when none is configured.
const DefaultThreshold = 8 << 20

// Spool is an io.Writer whose content can be replayed once writing is done.
// It is not safe for concurrent use.
type Spool struct {
	dir       string
	threshold int64
	mem       bytes.Buffer
	file      *os.File
	size      int64
}

// New returns a spool that spills to a temporary file in dir once more than
// threshold bytes were written. An empty dir means [os.TempDir]; a zero
// threshold means [DefaultThreshold]; a negative threshold never spills.
func New(dir string, threshold int64) *Spool {
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	return &Spool{dir: dir, threshold: threshold}
}

// Write appends p.
func (s *Spool) Write(p []byte) (int, error) {
	if s.file == nil && s.threshold > 0 && int64(s.mem.Len()+len(p)) > s.threshold {
		if err := s.spill(); err != nil {
			return 0, err
		}
	}
	var (
		n   int
		err error
	)
	if s.file != nil {
		n, err = s.file.Write(p)
		err = errors.IO(err, "write spool file")
	} else {
		n, _ = s.mem.Write(p)
	}
	s.size += int64(n)
	return n, err
}

func (s *Spool) spill() error {
	f, err := os.CreateTemp(s.dir, "graphconv-*.spool")
	if err != nil {
		return errors.IO(err, "create spool file")
	}
	if _, err := s.mem.WriteTo(f); err != nil {
		f.Close()
		os.Remove(f.Name())
		return errors.IO(err, "write spool file")
	}
	s.file = f
	return nil
}

// Size returns the number of bytes written so far.
func (s *Spool) Size() int64 { return s.size }

// Spilled reports whether the content moved to a temporary file.
func (s *Spool) Spilled() bool { return s.file != nil }

// WriteTo replays everything written so far into w.
func (s *Spool) WriteTo(w io.Writer) (int64, error) {
	if s.file == nil {
		n, err := w.Write(s.mem.Bytes())
		return int64(n), err
	}
	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return 0, errors.IO(err, "rewind spool file")
	}
	n, err := io.Copy(w, s.file)
	if _, serr := s.file.Seek(0, io.SeekEnd); err == nil && serr != nil {
		err = errors.IO(serr, "seek spool file")
	}
	return n, err
}

// Close releases the buffer and removes the temporary file, if any.
func (s *Spool) Close() error {
	s.mem.Reset()
	if s.file == nil {
		return nil
	}
	f := s.file
	s.file = nil
	cerr := f.Close()
	rerr := os.Remove(f.Name())
	if cerr != nil {
		return errors.IO(cerr, "close spool file")
	}
	return errors.IO(rerr, "remove spool file")
}

var _ io.WriterTo = (*Spool)(nil)
