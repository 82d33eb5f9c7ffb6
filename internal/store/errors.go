package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSnapshotNotFound is returned when no snapshot matches the requested
	// id or source.
	ErrSnapshotNotFound = errors.New("snapshot was not found")

	// ErrSnapshotExists is returned when a snapshot with the same id is
	// already stored.
	ErrSnapshotExists = errors.New("snapshot already exists")

	// ErrUnsupportedDSN is returned by NewDB for an empty DSN.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan snapshot row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan snapshot rows")

	// ErrDecodingPayload is returned when a stored snapshot payload cannot
	// be decompressed or unmarshaled.
	ErrDecodingPayload = errors.New("failed to decode snapshot payload")
)
