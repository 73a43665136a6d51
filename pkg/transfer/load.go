package transfer

import (
	"bufio"
	"io"
)

// Load is a session that fills every field from its backing resource.
type Load struct {
	session
	source source
	r      *bufio.Reader
	read   int64
}

var _ Transfer = (*Load)(nil)

// NewLoad returns a session reading from r. The identifier given to Open is
// only a label.
func NewLoad(r io.Reader) *Load {
	return &Load{session: newSession(ModeLoad), source: readerSource{r: r}}
}

// NewLoadFile returns a session reading the file named by the Open
// identifier inside dir.
func NewLoadFile(dir string) *Load {
	return &Load{session: newSession(ModeLoad), source: &fileSource{dir: dir}}
}

// Open binds the session and opens its backing resource.
func (l *Load) Open(identifier string) error {
	if err := l.begin(identifier); err != nil {
		return err
	}
	r, err := l.source.open(identifier)
	if err != nil {
		l.state = stateClosed
		l.options &^= OptionProcessing
		return &ResourceError{Op: "open", Identifier: identifier, Err: err}
	}
	l.r = bufio.NewReader(r)
	return nil
}

// User fills data completely. Running out of input is reported as a
// ResourceError wrapping io.ErrUnexpectedEOF.
func (l *Load) User(data []byte) error {
	if err := l.ready(); err != nil {
		return err
	}
	return l.transferCore(data)
}

func (l *Load) transferCore(data []byte) error {
	n, err := io.ReadFull(l.r, data)
	l.read += int64(n)
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return &ResourceError{Op: "read", Identifier: l.identifier, Err: err}
	}
	return nil
}

// Consumed returns the number of bytes read so far.
func (l *Load) Consumed() int64 {
	return l.read
}

// Close releases the backing resource.
func (l *Load) Close() error {
	if err := l.end(); err != nil {
		return err
	}
	if err := l.source.finish(); err != nil {
		return &ResourceError{Op: "close", Identifier: l.identifier, Err: err}
	}
	return nil
}
