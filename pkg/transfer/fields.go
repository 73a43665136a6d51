package transfer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// The helpers below marshal common field types to little-endian spans and
// hand them to User. Fixed-width helpers encode the current value, transfer
// it and decode the span back, which is the identity for Save and CRC and
// fills the value for Load.

// Uint8 transfers a single byte.
func Uint8(t Transfer, v *uint8) error {
	b := [1]byte{*v}
	if err := t.User(b[:]); err != nil {
		return err
	}
	*v = b[0]
	return nil
}

// Bool transfers a bool as one byte. Any non-zero byte loads as true.
func Bool(t Transfer, v *bool) error {
	var b [1]byte
	if *v {
		b[0] = 1
	}
	if err := t.User(b[:]); err != nil {
		return err
	}
	*v = b[0] != 0
	return nil
}

// Uint16 transfers a uint16.
func Uint16(t Transfer, v *uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], *v)
	if err := t.User(b[:]); err != nil {
		return err
	}
	*v = binary.LittleEndian.Uint16(b[:])
	return nil
}

// Uint32 transfers a uint32.
func Uint32(t Transfer, v *uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], *v)
	if err := t.User(b[:]); err != nil {
		return err
	}
	*v = binary.LittleEndian.Uint32(b[:])
	return nil
}

// Int32 transfers an int32.
func Int32(t Transfer, v *int32) error {
	u := uint32(*v)
	if err := Uint32(t, &u); err != nil {
		return err
	}
	*v = int32(u)
	return nil
}

// Uint64 transfers a uint64.
func Uint64(t Transfer, v *uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], *v)
	if err := t.User(b[:]); err != nil {
		return err
	}
	*v = binary.LittleEndian.Uint64(b[:])
	return nil
}

// Int64 transfers an int64.
func Int64(t Transfer, v *int64) error {
	u := uint64(*v)
	if err := Uint64(t, &u); err != nil {
		return err
	}
	*v = int64(u)
	return nil
}

// Float32 transfers the IEEE 754 bits of a float32.
func Float32(t Transfer, v *float32) error {
	u := math.Float32bits(*v)
	if err := Uint32(t, &u); err != nil {
		return err
	}
	*v = math.Float32frombits(u)
	return nil
}

// Len transfers a collection length as a uint32. Entities call it before
// iterating a variable-length field; on Load it yields the stored count.
func Len(t Transfer, n *int) error {
	if *n < 0 || uint64(*n) > math.MaxUint32 {
		if t.Mode() != ModeLoad {
			return fmt.Errorf("%w: length %d", ErrTooLong, *n)
		}
	}
	u := uint32(*n)
	if err := Uint32(t, &u); err != nil {
		return err
	}
	if uint64(u) > uint64(math.MaxInt) {
		return fmt.Errorf("%w: length %d", ErrTooLong, u)
	}
	*n = int(u)
	return nil
}

// String transfers a string with a uint16 length prefix.
func String(t Transfer, s *string) error {
	loading := t.Mode() == ModeLoad
	if !loading && len(*s) > math.MaxUint16 {
		return fmt.Errorf("%w: string of %d bytes", ErrTooLong, len(*s))
	}
	n := uint16(len(*s))
	if err := Uint16(t, &n); err != nil {
		return err
	}
	var buf []byte
	if loading {
		buf = make([]byte, n)
	} else {
		buf = []byte(*s)
	}
	if err := t.User(buf); err != nil {
		return err
	}
	*s = string(buf)
	return nil
}

// bytesChunk bounds how far a Load allocation can run ahead of the bytes
// actually read, so a corrupt length prefix cannot force a huge allocation.
const bytesChunk = 64 << 10

// Bytes transfers a byte slice with a uint32 length prefix. On Load the
// slice is replaced by a newly allocated one, grown as the payload arrives.
func Bytes(t Transfer, b *[]byte) error {
	n := len(*b)
	if err := Len(t, &n); err != nil {
		return err
	}
	if t.Mode() != ModeLoad {
		return t.User(*b)
	}

	buf := make([]byte, 0, min(n, bytesChunk))
	for len(buf) < n {
		k := min(n-len(buf), bytesChunk)
		buf = append(buf, make([]byte, k)...)
		if err := t.User(buf[len(buf)-k:]); err != nil {
			return err
		}
	}
	*b = buf
	return nil
}

// VersionByte transfers a layout version. Save and CRC record current; Load
// reads the stored version into v and fails with ErrUnsupportedVersion if it
// is zero or newer than current.
func VersionByte(t Transfer, v *uint8, current uint8) error {
	if t.Mode() != ModeLoad {
		*v = current
	}
	if err := Uint8(t, v); err != nil {
		return err
	}
	if *v == 0 || *v > current {
		return fmt.Errorf("%w: %d (supported up to %d)", ErrUnsupportedVersion, *v, current)
	}
	return nil
}

// Objects transfers each entity in order.
func Objects(t Transfer, objs ...Transferable) error {
	for _, obj := range objs {
		if err := obj.Xfer(t); err != nil {
			return err
		}
	}
	return nil
}
