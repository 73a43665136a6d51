package pool

import "errors"

var (
	// ErrDuplicateName is returned when a registry already holds a pool with the same name.
	ErrDuplicateName = errors.New("pool: duplicate pool name")

	// ErrUnnamed is returned when registering a pool whose name is empty.
	ErrUnnamed = errors.New("pool: pool has no name")
)
