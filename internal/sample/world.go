// Package sample is a small simulation state used by xferctl selftest to
// exercise pooling, override chains and the transfer round trip together.
package sample

import (
	"fmt"
	"math/rand"

	"github.com/bft-labs/xfer/pkg/override"
	"github.com/bft-labs/xfer/pkg/pool"
	"github.com/bft-labs/xfer/pkg/transfer"
)

const worldVersion uint8 = 1

// Unit is a pooled game object.
type Unit struct {
	ID     uint32
	Name   string
	X, Y   float32
	Health int32
	Speed  *override.Value[float32]
}

// Reset clears the unit. The caller must have disposed Speed already.
func (u *Unit) Reset() {
	*u = Unit{}
}

// World owns the live units and the pools they come from.
type World struct {
	Frame uint32
	Units []*Unit

	nextID uint32
	units  *pool.Named[Unit, *Unit]
	speeds *override.Pool[float32]
}

// NewWorld creates an empty world backed by fresh pools.
func NewWorld(initial, overflow int, opts ...pool.Option) *World {
	return &World{
		units:  pool.NewNamed[Unit]("units", initial, overflow, opts...),
		speeds: override.NewPool[float32]("unit-speeds", initial, overflow, opts...),
	}
}

// Register adds the world pools to r.
func (w *World) Register(r *pool.Registry) error {
	if err := r.Register(w.units); err != nil {
		return err
	}
	return r.Register(w.speeds)
}

// Spawn adds a unit with a base speed.
func (w *World) Spawn(name string, x, y, speed float32) *Unit {
	w.nextID++
	u := w.units.Allocate()
	u.ID = w.nextID
	u.Name = name
	u.X, u.Y = x, y
	u.Health = 100
	u.Speed = w.speeds.New(speed)
	w.Units = append(w.Units, u)
	return u
}

// Upgrade layers a speed override on u.
func (w *World) Upgrade(u *Unit, speed float32) {
	u.Speed.Append(speed)
}

// ClearUpgrades removes every speed override from every unit.
func (w *World) ClearUpgrades() {
	for _, u := range w.Units {
		if u.Speed != nil {
			u.Speed = u.Speed.DeleteOverrides()
		}
	}
}

// Step advances the simulation by one frame.
func (w *World) Step() {
	w.Frame++
	for _, u := range w.Units {
		if u.Speed == nil {
			continue
		}
		v := u.Speed.Resolve()
		u.X += v
		u.Y += v / 2
	}
}

// Clear returns every unit and speed chain to the pools.
func (w *World) Clear() {
	for i, u := range w.Units {
		w.release(u)
		w.Units[i] = nil
	}
	w.Units = w.Units[:0]
	w.Frame = 0
	w.nextID = 0
}

func (w *World) release(u *Unit) {
	if u.Speed != nil {
		u.Speed.Dispose()
	}
	w.units.Free(u)
}

// Populate spawns n units at positions derived from seed and upgrades every
// third one.
func (w *World) Populate(n int, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		u := w.Spawn(fmt.Sprintf("unit-%03d", i), rng.Float32()*100, rng.Float32()*100, 1+rng.Float32())
		if i%3 == 0 {
			w.Upgrade(u, u.Speed.Value()*1.5)
		}
	}
}

// Xfer describes the world layout. On Load the current units are released
// and replaced; if loading fails the world is left empty.
func (w *World) Xfer(t transfer.Transfer) error {
	err := w.xfer(t)
	if err != nil && t.Mode() == transfer.ModeLoad {
		w.Clear()
	}
	return err
}

func (w *World) xfer(t transfer.Transfer) error {
	var version uint8
	if err := transfer.VersionByte(t, &version, worldVersion); err != nil {
		return err
	}
	if err := transfer.Uint32(t, &w.Frame); err != nil {
		return err
	}
	if err := transfer.Uint32(t, &w.nextID); err != nil {
		return err
	}

	n := len(w.Units)
	if err := transfer.Len(t, &n); err != nil {
		return err
	}
	if t.Mode() == transfer.ModeLoad {
		return w.loadUnits(t, n)
	}
	for _, u := range w.Units {
		if err := w.xferUnit(t, u); err != nil {
			return fmt.Errorf("unit %d: %w", u.ID, err)
		}
	}
	return nil
}

// loadUnits replaces the units with n units read from t. A unit is only
// taken from the pool once its fields have decoded.
func (w *World) loadUnits(t transfer.Transfer, n int) error {
	frame, nextID := w.Frame, w.nextID
	w.Clear()
	for i := 0; i < n; i++ {
		var tmp Unit
		if err := w.xferUnit(t, &tmp); err != nil {
			return fmt.Errorf("unit %d: %w", i, err)
		}
		u := w.units.Allocate()
		*u = tmp
		w.Units = append(w.Units, u)
	}
	w.Frame, w.nextID = frame, nextID
	return nil
}

func (w *World) xferUnit(t transfer.Transfer, u *Unit) error {
	if err := transfer.Uint32(t, &u.ID); err != nil {
		return err
	}
	if err := transfer.String(t, &u.Name); err != nil {
		return err
	}
	if err := transfer.Float32(t, &u.X); err != nil {
		return err
	}
	if err := transfer.Float32(t, &u.Y); err != nil {
		return err
	}
	if err := transfer.Int32(t, &u.Health); err != nil {
		return err
	}
	return w.xferSpeed(t, u)
}

// xferSpeed transfers the speed chain as a node count followed by
// (value, isOverride) pairs.
func (w *World) xferSpeed(t transfer.Transfer, u *Unit) error {
	n := u.Speed.Len()
	if err := transfer.Len(t, &n); err != nil {
		return err
	}

	if t.Mode() != transfer.ModeLoad {
		for cur := u.Speed; cur != nil; cur = cur.Next() {
			v, isOverride := cur.Value(), cur.IsOverride()
			if err := transfer.Float32(t, &v); err != nil {
				return err
			}
			if err := transfer.Bool(t, &isOverride); err != nil {
				return err
			}
		}
		return nil
	}

	var head *override.Value[float32]
	for i := 0; i < n; i++ {
		var v float32
		var isOverride bool
		err := transfer.Float32(t, &v)
		if err == nil {
			err = transfer.Bool(t, &isOverride)
		}
		if err != nil {
			if head != nil {
				head.Dispose()
			}
			return err
		}
		node := w.speeds.New(v)
		if isOverride {
			node.MarkAsOverride()
		}
		if head == nil {
			head = node
		} else {
			head.FinalOverride().SetNext(node)
		}
	}
	u.Speed = head
	return nil
}
