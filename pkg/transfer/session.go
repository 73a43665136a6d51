package transfer

type sessionState int

const (
	stateIdle sessionState = iota
	stateOpen
	stateClosed
)

// session holds the state shared by every mode.
type session struct {
	mode       Mode
	options    Options
	identifier string
	state      sessionState
}

func newSession(mode Mode) session {
	return session{mode: mode}
}

func (s *session) Mode() Mode {
	return s.mode
}

func (s *session) Options() Options {
	return s.options
}

func (s *session) SetOptions(opts Options) {
	s.options = opts
}

func (s *session) Identifier() string {
	return s.identifier
}

// mustHaveMode panics on zero-value sessions.
func (s *session) mustHaveMode() {
	if s.mode == ModeInvalid {
		panic("transfer: session mode was never fixed; use a constructor")
	}
}

func (s *session) begin(identifier string) error {
	s.mustHaveMode()
	switch s.state {
	case stateOpen:
		return ErrAlreadyOpen
	case stateClosed:
		return ErrClosed
	}
	s.identifier = identifier
	s.state = stateOpen
	s.options |= OptionProcessing
	return nil
}

func (s *session) ready() error {
	s.mustHaveMode()
	switch s.state {
	case stateIdle:
		return ErrNotOpen
	case stateClosed:
		return ErrClosed
	}
	return nil
}

func (s *session) end() error {
	if err := s.ready(); err != nil {
		return err
	}
	s.state = stateClosed
	s.options &^= OptionProcessing
	return nil
}
