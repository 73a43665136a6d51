package transfer

import (
	"bytes"
	"encoding/binary"
	"math/bits"
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/xfer/pkg/checksum"
)

func newCRCWithOrder(t *testing.T, bigEndian bool) *CRC {
	t.Helper()
	c := NewCRC()
	c.bigEndian = bigEndian
	require.NoError(t, c.Open("test"))
	return c
}

// wordFold folds an aligned buffer the way CRC sessions must: each 4-byte
// group as a big-endian word through the rolling update.
func wordFold(data []byte) uint32 {
	var acc uint32
	for i := 0; i+4 <= len(data); i += 4 {
		acc = checksum.Fold(acc, binary.BigEndian.Uint32(data[i:]))
	}
	return acc
}

func TestCRCKnownValues(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		acc  uint32
		want uint32
	}{
		{name: "empty", data: nil, acc: 0, want: 0},
		{name: "word plus one byte", data: []byte{0x01, 0x02, 0x03, 0x04, 0x05}, acc: 0x0204060d, want: 0x0d060402},
		{name: "word plus three bytes", data: []byte{1, 2, 3, 4, 5, 6, 7}, acc: 0x020b0c0d, want: 0x0d0c0b02},
		{name: "saturated words", data: bytes.Repeat([]byte{0xff}, 8), acc: 0xfffffffe, want: 0xfeffffff},
		{name: "top bit carry", data: []byte{0x80, 0, 0, 0, 0x80, 0, 0, 0}, acc: 0x80000001, want: 0x01000080},
	}

	for _, tt := range tests {
		for _, bigEndian := range []bool{false, true} {
			c := newCRCWithOrder(t, bigEndian)
			require.NoError(t, c.User(tt.data))
			assert.Equal(t, tt.acc, c.crc, "%s: accumulator (bigEndian=%v)", tt.name, bigEndian)
			assert.Equal(t, tt.want, c.CRC(), "%s: published (bigEndian=%v)", tt.name, bigEndian)
		}
	}
}

func TestCRCRemainderSkipsNormalization(t *testing.T) {
	c := newCRCWithOrder(t, false)
	require.NoError(t, c.User([]byte{0x01, 0x02}))
	// 0x0201 folded as-is; going through AddCRC would fold 0x01020000.
	assert.Equal(t, uint32(0x0201), c.crc)
}

func TestCRCAlignedMatchesWordFold(t *testing.T) {
	prop := func(words []uint32) bool {
		data := make([]byte, 4*len(words))
		for i, w := range words {
			binary.LittleEndian.PutUint32(data[4*i:], w)
		}
		want := wordFold(data)
		for _, bigEndian := range []bool{false, true} {
			c := NewCRC()
			c.bigEndian = bigEndian
			if err := c.Open("prop"); err != nil {
				return false
			}
			if err := c.User(data); err != nil {
				return false
			}
			if c.crc != want || c.CRC() != bits.ReverseBytes32(want) {
				return false
			}
		}
		return true
	}
	require.NoError(t, quick.Check(prop, nil))
}

func TestCRCEndiannessInvariance(t *testing.T) {
	prop := func(data []byte) bool {
		little := NewCRC()
		little.bigEndian = false
		big := NewCRC()
		big.bigEndian = true
		_ = little.Open("le")
		_ = big.Open("be")
		_ = little.User(data)
		_ = big.User(data)
		return little.CRC() == big.CRC()
	}
	require.NoError(t, quick.Check(prop, nil))
}

func TestAddCRCNormalizesHostWord(t *testing.T) {
	little := newCRCWithOrder(t, false)
	little.AddCRC(0x04030201)
	big := newCRCWithOrder(t, true)
	big.AddCRC(0x01020304)

	assert.Equal(t, uint32(0x01020304), little.crc)
	assert.Equal(t, little.crc, big.crc)
}

func TestCRCOpenResetsAccumulator(t *testing.T) {
	c := NewCRC()
	c.crc = 0xdeadbeef
	require.NoError(t, c.Open("fresh"))
	assert.Equal(t, uint32(0), c.CRC())
	assert.Equal(t, "fresh", c.Identifier())
}

func TestCRCEmptyUserIsNoop(t *testing.T) {
	c := newCRCWithOrder(t, false)
	require.NoError(t, c.User([]byte{9, 9, 9, 9}))
	before := c.CRC()
	require.NoError(t, c.User(nil))
	require.NoError(t, c.User([]byte{}))
	assert.Equal(t, before, c.CRC())
}

func TestChecksumReaderMatchesSingleUser(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, size := range []int{0, 3, 4, checksumChunk - 1, checksumChunk, checksumChunk + 5, 3*checksumChunk + 2} {
		data := make([]byte, size)
		rng.Read(data)

		c := newCRCWithOrder(t, false)
		require.NoError(t, c.User(data))

		got, err := ChecksumReader("blob", bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, c.CRC(), got, "size %d", size)
	}
}
