// Package xfer bundles the transfer layer and save repository behind a
// single import for applications that do not need the individual packages.
//
// Example usage:
//
//	repo := xfer.NewFileRepository("saves")
//	if err := repo.Save(ctx, "slot1.sav", world); err != nil {
//	    log.Fatal(err)
//	}
//	crc, err := xfer.StateChecksum(world)
package xfer

import (
	"io"

	"github.com/bft-labs/xfer/pkg/savegame"
	"github.com/bft-labs/xfer/pkg/transfer"
)

// Transfer is the bidirectional serialization interface.
type Transfer = transfer.Transfer

// Transferable is implemented by entities that describe their own layout.
type Transferable = transfer.Transferable

// Mode identifies the direction of a transfer.
type Mode = transfer.Mode

// FileRepository stores entities as atomic save files in a directory.
type FileRepository = savegame.FileRepository

// Info describes a save file on disk.
type Info = savegame.Info

// Transfer modes.
const (
	ModeSave = transfer.ModeSave
	ModeLoad = transfer.ModeLoad
	ModeCRC  = transfer.ModeCRC
)

// NewCRC returns a checksum transfer.
func NewCRC() *transfer.CRC {
	return transfer.NewCRC()
}

// NewSave returns a transfer that writes to w.
func NewSave(w io.Writer) *transfer.Save {
	return transfer.NewSave(w)
}

// NewLoad returns a transfer that reads from r.
func NewLoad(r io.Reader) *transfer.Load {
	return transfer.NewLoad(r)
}

// NewFileRepository returns a repository rooted at dir.
func NewFileRepository(dir string, opts ...savegame.Option) *FileRepository {
	return savegame.NewFileRepository(dir, opts...)
}

// StateChecksum returns the transfer checksum of entities without touching
// disk.
func StateChecksum(entities ...Transferable) (uint32, error) {
	return savegame.Checksum(entities...)
}
