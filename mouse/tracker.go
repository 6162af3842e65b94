// Package mouse provides a concurrency-safe snapshot of the cursor
// position. Feeders (the host's input poll, remote-control commands)
// swap in new snapshots; the zoom tick reads a plain value and never
// holds a lock across a frame.
package mouse

import "sync/atomic"

// Position is a point-in-time cursor position in screen coordinates.
type Position struct {
	X float64
	Y float64
}

// Tracker stores the latest cursor position plus an optional override.
// While an override is set (remote control driving the zoom) it takes
// priority over the live position.
type Tracker struct {
	live     atomic.Pointer[Position]
	override atomic.Pointer[Position]
}

func NewTracker() *Tracker {
	t := &Tracker{}
	t.live.Store(&Position{})
	return t
}

// Set records a live cursor position.
func (t *Tracker) Set(x, y float64) {
	t.live.Store(&Position{X: x, Y: y})
}

// SetOverride pins the reported position regardless of live updates.
func (t *Tracker) SetOverride(x, y float64) {
	t.override.Store(&Position{X: x, Y: y})
}

// ClearOverride returns control to the live position.
func (t *Tracker) ClearOverride() {
	t.override.Store(nil)
}

// Overridden reports whether an override is active.
func (t *Tracker) Overridden() bool {
	return t.override.Load() != nil
}

// Get returns the position the zoom engine should use this tick: the
// override when one is set, otherwise the latest live position.
func (t *Tracker) Get() Position {
	if p := t.override.Load(); p != nil {
		return *p
	}
	return *t.live.Load()
}
