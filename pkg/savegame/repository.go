package savegame

import (
	"context"

	"github.com/bft-labs/xfer/pkg/transfer"
)

// Repository stores entity state under a name.
type Repository interface {
	// Save writes entities, in order, under name. The previous save with the
	// same name is replaced only if the whole write succeeds.
	Save(ctx context.Context, name string, entities ...transfer.Transferable) error

	// Load fills entities, in the same order they were saved.
	Load(ctx context.Context, name string, entities ...transfer.Transferable) error
}
