package savegame

import (
	"errors"
	"fmt"

	"github.com/bft-labs/xfer/pkg/transfer"
)

// Magic opens every save file.
const Magic = "XFR\x00"

// FormatVersion is the header layout written by this package.
const FormatVersion uint8 = 1

var (
	// ErrNotSaveFile is returned when a file does not start with Magic.
	ErrNotSaveFile = errors.New("savegame: not a save file")
)

// Header is the fixed prefix of a save file.
type Header struct {
	Magic  [4]byte
	Format uint8
}

func newHeader() Header {
	var h Header
	copy(h.Magic[:], Magic)
	h.Format = FormatVersion
	return h
}

// Xfer transfers the header and validates it on Load.
func (h *Header) Xfer(t transfer.Transfer) error {
	if err := t.User(h.Magic[:]); err != nil {
		return err
	}
	if string(h.Magic[:]) != Magic {
		return fmt.Errorf("%w: magic %q", ErrNotSaveFile, h.Magic[:])
	}
	return transfer.VersionByte(t, &h.Format, FormatVersion)
}
