// Package savegame persists simulation entities to save files and computes
// their state checksums.
//
// A save file is a small header followed by each entity's self-description,
// in the order the entities were passed:
//
//	magic   [4]byte  "XFR\x00"
//	format  uint8    FormatVersion
//	...     entity fields, little-endian
//
// # Usage
//
//	repo := savegame.NewFileRepository("/path/to/saves")
//
//	if err := repo.Save(ctx, "slot1.sav", world, camera); err != nil {
//	    return err
//	}
//	if err := repo.Load(ctx, "slot1.sav", world, camera); err != nil {
//	    return err
//	}
//
//	// Compare with a peer to detect divergence.
//	crc, err := savegame.Checksum(world)
//
// Saves are written to a temp file and renamed into place, so an
// interrupted save never replaces a good one.
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package savegame
