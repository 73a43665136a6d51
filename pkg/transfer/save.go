package transfer

import (
	"bufio"
	"io"
)

// Save is a session that writes every field to its backing resource.
type Save struct {
	session
	sink    sink
	w       *bufio.Writer
	written int64
	err     error
}

var _ Transfer = (*Save)(nil)

// NewSave returns a session writing to w. The identifier given to Open is
// only a label, and Close flushes but does not close w.
func NewSave(w io.Writer) *Save {
	return &Save{session: newSession(ModeSave), sink: writerSink{w: w}}
}

// NewSaveFile returns a session writing to the file named by the Open
// identifier inside dir. The file only appears, atomically, when Close
// succeeds.
func NewSaveFile(dir string) *Save {
	return &Save{session: newSession(ModeSave), sink: &fileSink{dir: dir}}
}

// Open binds the session and opens its backing resource.
func (s *Save) Open(identifier string) error {
	if err := s.begin(identifier); err != nil {
		return err
	}
	w, err := s.sink.open(identifier)
	if err != nil {
		s.state = stateClosed
		s.options &^= OptionProcessing
		return &ResourceError{Op: "open", Identifier: identifier, Err: err}
	}
	s.w = bufio.NewWriter(w)
	return nil
}

// User writes data.
func (s *Save) User(data []byte) error {
	if err := s.ready(); err != nil {
		return err
	}
	return s.transferCore(data)
}

func (s *Save) transferCore(data []byte) error {
	if s.err != nil {
		return s.err
	}
	n, err := s.w.Write(data)
	s.written += int64(n)
	if err != nil {
		s.err = &ResourceError{Op: "write", Identifier: s.identifier, Err: err}
		return s.err
	}
	return nil
}

// Written returns the number of bytes accepted so far.
func (s *Save) Written() int64 {
	return s.written
}

// Close flushes buffered bytes and commits the backing resource. If any
// write failed, nothing is committed and the first write error is returned.
func (s *Save) Close() error {
	return s.finish(true)
}

// Abort ends the session without committing. For file-backed sessions the
// partially written file is removed. Earlier write errors are not reported;
// failing to close or remove the partial file is.
func (s *Save) Abort() error {
	return s.finish(false)
}

func (s *Save) finish(commit bool) error {
	if err := s.end(); err != nil {
		return err
	}
	if commit && s.err == nil {
		if err := s.w.Flush(); err != nil {
			s.err = &ResourceError{Op: "flush", Identifier: s.identifier, Err: err}
		}
	}
	ok := commit && s.err == nil
	var closeErr error
	if err := s.sink.finish(ok); err != nil {
		closeErr = &ResourceError{Op: "close", Identifier: s.identifier, Err: err}
		if s.err == nil {
			s.err = closeErr
		}
	}
	if !commit {
		return closeErr
	}
	return s.err
}
