package transfer

// Mode selects what a session does with the bytes it is handed.
type Mode int

const (
	// ModeInvalid is the mode of a session that was never constructed.
	ModeInvalid Mode = iota
	ModeSave
	ModeLoad
	ModeCRC
)

// String returns a human-readable representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSave:
		return "Save"
	case ModeLoad:
		return "Load"
	case ModeCRC:
		return "CRC"
	default:
		return "Invalid"
	}
}

// Options is a bit set attached to a session. Bits not defined here are
// reserved and preserved as set by the caller.
type Options uint32

const (
	// OptionProcessing is set between Open and Close.
	OptionProcessing Options = 1 << iota
)

// Has reports whether every bit in flag is set.
func (o Options) Has(flag Options) bool {
	return o&flag == flag
}

// Transfer is one save, load or checksum session.
type Transfer interface {
	// Mode returns the fixed mode of the session.
	Mode() Mode

	// Options returns the session option bits.
	Options() Options

	// SetOptions replaces the session option bits.
	SetOptions(opts Options)

	// Identifier returns the identifier passed to Open.
	Identifier() string

	// Open binds the session to identifier. For file-backed sessions it is
	// a file name; for checksum sessions it is only a label.
	Open(identifier string) error

	// Close finalizes the session and releases any backing resource.
	Close() error

	// User transfers one field. data is the exact byte image to write on
	// Save, the buffer to fill on Load, and the payload to fold on CRC.
	User(data []byte) error
}

// Transferable is implemented by entities that can describe their state.
type Transferable interface {
	Xfer(t Transfer) error
}
