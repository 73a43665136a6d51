// Package transfer lets an entity describe its binary layout once and reuse
// that description to save, load and checksum its state.
//
// An entity implements [Transferable] and calls [Transfer.User] once per
// field, in a fixed order. The session's [Mode] decides what happens to each
// span of bytes:
//
//   - [Save] writes the bytes to a stream or file.
//   - [Load] fills the bytes from a stream or file.
//   - [CRC] folds the bytes into a rolling checksum.
//
// Entity code stays identical for all three:
//
//	func (u *Unit) Xfer(t transfer.Transfer) error {
//	    if err := transfer.Uint32(t, &u.ID); err != nil {
//	        return err
//	    }
//	    return transfer.String(t, &u.Name)
//	}
//
// The field order is part of the save format and of the checksum format, so
// it must not change for a given entity version. Use [Version] to evolve a
// layout.
//
// # Sessions
//
// A session is opened once, used for any number of User calls and closed
// once. It cannot be reopened. Sessions are not safe for concurrent use.
//
// # Checksums
//
// CRC sessions fold 4-byte words in network byte order, so every host
// produces the same value for the same byte sequence. A trailing 1 to 3
// bytes are folded as a little-endian partial word without byte-order
// normalization; existing reference values depend on this.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package transfer
