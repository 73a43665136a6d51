package checksum

// Checksum is a rolling accumulator. The zero value is ready to use.
type Checksum struct {
	Value uint32
}

// Compute folds every byte of buf into Value.
// A nil or empty buf leaves Value unchanged.
func (c *Checksum) Compute(buf []byte) {
	v := c.Value
	for _, b := range buf {
		v = Fold(v, uint32(b))
	}
	c.Value = v
}

// Clear resets Value to zero.
func (c *Checksum) Clear() {
	c.Value = 0
}

// Fold applies one rolling update of x onto acc.
func Fold(acc, x uint32) uint32 {
	hi := acc >> 31
	return acc<<1 + x + hi
}

// Sum returns the checksum of buf starting from a cleared accumulator.
func Sum(buf []byte) uint32 {
	var c Checksum
	c.Compute(buf)
	return c.Value
}
