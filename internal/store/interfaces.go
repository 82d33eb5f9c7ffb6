package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-silk-reader/models"
)

// SnapshotRepository persists recorded save snapshots.
type SnapshotRepository interface {
	// Save inserts a new snapshot. A duplicate id yields ErrSnapshotExists.
	Save(ctx context.Context, snapshot models.Snapshot) error

	// Last returns the newest snapshot of source without its plaintext, or
	// ErrSnapshotNotFound if source has none.
	Last(ctx context.Context, source string) (models.Snapshot, error)

	// List returns up to limit snapshots newest first. An empty source
	// matches every source. Player and Plaintext are left empty.
	List(ctx context.Context, source string, limit uint64) ([]models.Snapshot, error)

	// Get returns the snapshot with the given id, plaintext included, or
	// ErrSnapshotNotFound.
	Get(ctx context.Context, id string) (models.Snapshot, error)
}
