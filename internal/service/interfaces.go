package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-silk-reader/models"
)

// SaveService runs the decode pipeline over raw save containers.
type SaveService interface {
	// Decode decrypts raw and parses the plaintext into a document and its
	// typed projection. Errors match one of the models decode sentinels.
	Decode(ctx context.Context, raw []byte) (models.SaveFile, error)

	// Export decodes raw and re-serializes the whole document in format.
	Export(ctx context.Context, raw []byte, format models.ExportFormat) ([]byte, error)

	// Encode validates a JSON document and wraps it into a save container.
	Encode(ctx context.Context, document []byte) ([]byte, error)

	// Report decodes raw and builds the progress report.
	Report(ctx context.Context, raw []byte) (models.Report, error)
}

// SnapshotService keeps the history of a watched save file.
type SnapshotService interface {
	// Record decodes raw and stores it as a new snapshot of source. When the
	// last snapshot of source has the same fingerprint, the existing snapshot
	// is returned together with ErrSnapshotUnchanged.
	Record(ctx context.Context, source string, raw []byte) (models.Snapshot, error)

	// List returns up to limit snapshots, newest first. An empty source
	// lists all sources.
	List(ctx context.Context, source string, limit uint64) ([]models.Snapshot, error)

	// Get returns one snapshot with its decoded document.
	Get(ctx context.Context, id string) (models.SnapshotDetail, error)
}

// WatchJob defines the contract for a background worker that periodically
// records a save file into the snapshot history.
type WatchJob interface {
	// Start launches the polling goroutine. The file is recorded once right
	// away and then every interval, defaulting to 5 seconds if interval is
	// zero or negative. Any previously running job is stopped first.
	Start(ctx context.Context, path string, interval time.Duration)

	// Stop signals the polling goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
