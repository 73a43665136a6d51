package transfer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// sink is the backing resource of a Save session.
type sink interface {
	open(identifier string) (io.Writer, error)
	// finish commits the written bytes when ok is true and discards them
	// otherwise.
	finish(ok bool) error
}

// source is the backing resource of a Load session.
type source interface {
	open(identifier string) (io.Reader, error)
	finish() error
}

type writerSink struct {
	w io.Writer
}

func (s writerSink) open(string) (io.Writer, error) { return s.w, nil }
func (s writerSink) finish(bool) error             { return nil }

type readerSource struct {
	r io.Reader
}

func (s readerSource) open(string) (io.Reader, error) { return s.r, nil }
func (s readerSource) finish() error                  { return nil }

// fileSink writes to a temp file and renames it over the target on commit,
// so a crash never leaves a truncated save behind.
type fileSink struct {
	dir  string
	path string
	f    *os.File
}

func (s *fileSink) open(identifier string) (io.Writer, error) {
	path, err := resolve(s.dir, identifier)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path+".tmp", os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}
	s.path = path
	s.f = f
	return f, nil
}

func (s *fileSink) finish(ok bool) error {
	if s.f == nil {
		return nil
	}
	tmp := s.f.Name()
	err := s.f.Sync()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	s.f = nil
	if !ok || err != nil {
		if rerr := os.Remove(tmp); rerr != nil && !errors.Is(rerr, os.ErrNotExist) && err == nil {
			err = rerr
		}
		return err
	}
	return os.Rename(tmp, s.path)
}

type fileSource struct {
	dir string
	f   *os.File
}

func (s *fileSource) open(identifier string) (io.Reader, error) {
	path, err := resolve(s.dir, identifier)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	s.f = f
	return f, nil
}

func (s *fileSource) finish() error {
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}

// resolve joins a plain file name onto dir.
func resolve(dir, identifier string) (string, error) {
	if identifier == "" || identifier == "." || identifier == ".." || filepath.Base(identifier) != identifier {
		return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, identifier)
	}
	return filepath.Join(dir, identifier), nil
}
