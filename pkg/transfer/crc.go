package transfer

import (
	"encoding/binary"
	"io"
	"math/bits"

	"golang.org/x/sys/cpu"

	"github.com/bft-labs/xfer/pkg/checksum"
)

// CRC is a checksum session. It never fails once open.
type CRC struct {
	session
	crc uint32

	// bigEndian is the byte order of the host. Tests flip it to simulate
	// the other order.
	bigEndian bool
}

var _ Transfer = (*CRC)(nil)

// NewCRC returns a checksum session.
func NewCRC() *CRC {
	return &CRC{
		session:   newSession(ModeCRC),
		bigEndian: cpu.IsBigEndian,
	}
}

// Open labels the session and clears the accumulator.
func (c *CRC) Open(identifier string) error {
	if err := c.begin(identifier); err != nil {
		return err
	}
	c.crc = 0
	return nil
}

// Close ends the session. There is nothing to flush.
func (c *CRC) Close() error {
	return c.end()
}

// User folds data into the checksum.
func (c *CRC) User(data []byte) error {
	if err := c.ready(); err != nil {
		return err
	}
	c.transferCore(data)
	return nil
}

func (c *CRC) transferCore(data []byte) {
	order := hostOrder(c.bigEndian)
	words := len(data) &^ 3
	for i := 0; i < words; i += 4 {
		c.AddCRC(order.Uint32(data[i:]))
	}

	rest := data[words:]
	if len(rest) == 0 {
		return
	}
	var partial uint32
	for i, b := range rest {
		partial += uint32(b) << (8 * i)
	}
	c.crc = checksum.Fold(c.crc, partial)
}

// AddCRC folds a single host-order word, converting it to network byte
// order first.
func (c *CRC) AddCRC(word uint32) {
	c.crc = checksum.Fold(c.crc, toNetwork(word, c.bigEndian))
}

// CRC returns the checksum. The accumulator is published in network byte
// order and read back as little-endian, so every host reports the same
// value.
func (c *CRC) CRC() uint32 {
	var b [4]byte
	hostOrder(c.bigEndian).PutUint32(b[:], toNetwork(c.crc, c.bigEndian))
	return binary.LittleEndian.Uint32(b[:])
}

func hostOrder(bigEndian bool) binary.ByteOrder {
	if bigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// toNetwork converts a host-order word to network byte order.
func toNetwork(v uint32, bigEndian bool) uint32 {
	if bigEndian {
		return v
	}
	return bits.ReverseBytes32(v)
}

// checksumChunk is a multiple of 4 so chunked folding matches a single
// User call over the whole stream.
const checksumChunk = 64 << 10

// ChecksumReader returns the CRC session checksum of everything read from r,
// as if the whole content had been passed to a single User call.
func ChecksumReader(identifier string, r io.Reader) (uint32, error) {
	c := NewCRC()
	if err := c.Open(identifier); err != nil {
		return 0, err
	}
	buf := make([]byte, checksumChunk)
	for {
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			c.transferCore(buf[:n])
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return 0, &ResourceError{Op: "read", Identifier: identifier, Err: err}
		}
	}
	if err := c.Close(); err != nil {
		return 0, err
	}
	return c.CRC(), nil
}
