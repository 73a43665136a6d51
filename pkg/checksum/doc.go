// Package checksum provides the rolling 32-bit accumulator used to fingerprint
// simulation state.
//
// The algorithm is not CRC-32. For every byte b, in order:
//
//	hi := value >> 31
//	value = value<<1 + b + hi
//
// with 32-bit wraparound. Peers compare these values to detect divergence, so
// the update must be reproduced bit for bit.
//
// # Usage
//
//	var c checksum.Checksum
//	c.Compute(buf)
//	fmt.Printf("%08x\n", c.Value)
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package checksum
