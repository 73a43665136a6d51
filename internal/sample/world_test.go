package sample

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/xfer/pkg/pool"
	"github.com/bft-labs/xfer/pkg/transfer"
)

func crcOf(t *testing.T, w *World) uint32 {
	t.Helper()
	c := transfer.NewCRC()
	require.NoError(t, c.Open("world"))
	require.NoError(t, w.Xfer(c))
	require.NoError(t, c.Close())
	return c.CRC()
}

func TestWorldRoundTripPreservesChecksum(t *testing.T) {
	src := NewWorld(8, 4)
	src.Populate(10, 42)
	src.Step()
	src.Step()
	want := crcOf(t, src)

	var buf bytes.Buffer
	s := transfer.NewSave(&buf)
	require.NoError(t, s.Open("world"))
	require.NoError(t, src.Xfer(s))
	require.NoError(t, s.Close())

	dst := NewWorld(2, 2)
	dst.Populate(3, 7)
	l := transfer.NewLoad(&buf)
	require.NoError(t, l.Open("world"))
	require.NoError(t, dst.Xfer(l))
	require.NoError(t, l.Close())

	assert.Equal(t, want, crcOf(t, dst))
	require.Len(t, dst.Units, 10)
	assert.Equal(t, uint32(2), dst.Frame)
	assert.Equal(t, 2, dst.Units[0].Speed.Len())
	assert.Equal(t, 1, dst.Units[1].Speed.Len())
	assert.Equal(t, 10, dst.units.Stats().Used)
	assert.Equal(t, 14, dst.speeds.Stats().Used)

	// Stepping both sides identically keeps them in sync.
	src.Step()
	dst.Step()
	assert.Equal(t, crcOf(t, src), crcOf(t, dst))
}

func TestClearUpgradesChangesState(t *testing.T) {
	w := NewWorld(4, 4)
	w.Populate(4, 1)
	before := crcOf(t, w)
	overridden := w.Units[0].Speed.Resolve()

	w.ClearUpgrades()
	assert.NotEqual(t, before, crcOf(t, w))
	assert.NotEqual(t, overridden, w.Units[0].Speed.Resolve())
	assert.Equal(t, 4, w.speeds.Stats().Used)
}

func TestClearReturnsEverything(t *testing.T) {
	w := NewWorld(4, 4)
	w.Populate(6, 3)
	w.Clear()

	for _, s := range []pool.Stats{w.units.Stats(), w.speeds.Stats()} {
		assert.Equal(t, 0, s.Used, s.Name)
		assert.Equal(t, s.Total, s.Free, s.Name)
	}
	assert.Empty(t, w.Units)

	u := w.Spawn("fresh", 0, 0, 1)
	assert.Equal(t, uint32(1), u.ID)
	assert.Equal(t, 1, u.Speed.Len())
}

func TestRegister(t *testing.T) {
	r := pool.NewRegistry()
	w := NewWorld(1, 1)
	require.NoError(t, w.Register(r))
	assert.Len(t, r.Stats(), 2)
	assert.ErrorIs(t, w.Register(r), pool.ErrDuplicateName)
}

func TestLoadHugeCountOnTruncatedInput(t *testing.T) {
	// version 1, frame 9, nextID 9, then a count of 5,000,000 and no units.
	data := []byte{1, 9, 0, 0, 0, 9, 0, 0, 0, 0x40, 0x4b, 0x4c, 0x00}

	w := NewWorld(4, 4)
	w.Populate(3, 1)
	l := transfer.NewLoad(bytes.NewReader(data))
	require.NoError(t, l.Open("truncated"))
	require.Error(t, w.Xfer(l))

	assert.Empty(t, w.Units)
	assert.Equal(t, uint32(0), w.Frame)
	units := w.units.Stats()
	assert.Equal(t, 0, units.Used)
	assert.Equal(t, 4, units.Total)
	assert.Equal(t, 0, w.speeds.Stats().Used)
}

func TestLoadTruncatedSaveLeavesWorldEmpty(t *testing.T) {
	src := NewWorld(8, 4)
	src.Populate(6, 5)

	var buf bytes.Buffer
	s := transfer.NewSave(&buf)
	require.NoError(t, s.Open("world"))
	require.NoError(t, src.Xfer(s))
	require.NoError(t, s.Close())

	// Cut into the last unit's speed chain.
	data := buf.Bytes()[:buf.Len()-3]

	dst := NewWorld(8, 4)
	dst.Populate(2, 9)
	l := transfer.NewLoad(bytes.NewReader(data))
	require.NoError(t, l.Open("world"))
	require.Error(t, dst.Xfer(l))

	assert.Empty(t, dst.Units)
	for _, st := range []pool.Stats{dst.units.Stats(), dst.speeds.Stats()} {
		assert.Equal(t, 0, st.Used, st.Name)
		assert.Equal(t, st.Total, st.Free, st.Name)
	}
}
