package contracts

import (
	"context"
	"time"
)

// SnapshotStore keeps a last-known-good copy of list reads so the UI can be
// seeded instantly while a live read is in flight (or failing). Save is a
// wholesale overwrite; there is no merge.
type SnapshotStore interface {
	Save(ctx context.Context, collection string, items interface{}) error
	// Get unmarshals the snapshot into out and reports whether one existed.
	Get(ctx context.Context, collection string, out interface{}) (bool, error)
	LastSync(ctx context.Context) (time.Time, bool, error)
	ClearAll(ctx context.Context) error
}
