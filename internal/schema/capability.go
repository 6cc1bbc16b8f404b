package schema

import (
	"context"

	"go.uber.org/atomic"
)

// Capabilities records which workflow columns booking_requests actually
// has. It is detected once after bootstrap and shared by reference, so
// every repository call branches on the same answer instead of hitting
// the catalog per query. Refresh is only called after a schema-mutating
// operation (the operator migration endpoint).
type Capabilities struct {
	status atomic.Bool
	notes  atomic.Bool
}

// NewCapabilities builds a flag set with a known state, bypassing
// detection. Callers that talk to a real database want DetectCapabilities.
func NewCapabilities(hasStatus, hasNotes bool) *Capabilities {
	c := &Capabilities{}
	c.status.Store(hasStatus)
	c.notes.Store(hasNotes)
	return c
}

func DetectCapabilities(ctx context.Context, ins *Introspector) *Capabilities {
	c := &Capabilities{}
	c.Refresh(ctx, ins)
	return c
}

func (c *Capabilities) Refresh(ctx context.Context, ins *Introspector) {
	c.status.Store(ins.ColumnExists(ctx, TableBookings, ColumnStatus))
	c.notes.Store(ins.ColumnExists(ctx, TableBookings, ColumnNotes))
}

// HasStatus reports workflow mode; false means every booking is treated
// as implicitly Pending and no transitions are possible.
func (c *Capabilities) HasStatus() bool { return c.status.Load() }

func (c *Capabilities) HasNotes() bool { return c.notes.Load() }
