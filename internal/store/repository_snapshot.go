// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-silk-reader/internal/logger"
	"github.com/MKhiriev/go-silk-reader/models"
)

const snapshotsTable = "snapshots"

var snapshotColumns = []string{"id", "source", "fingerprint", "play_time", "completion", "payload", "created_at"}

// summaryColumns is what listings read; the payload stays on disk.
var summaryColumns = []string{"id", "source", "fingerprint", "play_time", "completion", "created_at"}

// snapshotRepository is the SQL implementation of [SnapshotRepository] for
// both PostgreSQL and SQLite. Queries are built with squirrel using the
// placeholder format of the connected dialect.
type snapshotRepository struct {
	*DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewSnapshotRepository constructs a [SnapshotRepository] backed by db.
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	logger.Debug().Msg("creating snapshot repository")
	return &snapshotRepository{
		DB:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(db.dialect.Placeholder()),
		logger:  logger,
	}
}

// Save implements [SnapshotRepository].
func (r *snapshotRepository) Save(ctx context.Context, snapshot models.Snapshot) error {
	log := logger.FromContext(ctx)

	payload, err := encodePayload(snapshot)
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.Save").Str("snapshot_id", snapshot.ID).Msg("failed to encode payload")
		return err
	}

	query, args, err := r.builder.
		Insert(snapshotsTable).
		Columns(snapshotColumns...).
		Values(snapshot.ID, snapshot.Source, snapshot.Fingerprint, snapshot.PlayTime, snapshot.Completion, payload, snapshot.CreatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.Save").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		class := r.classify(err)
		log.Err(err).
			Str("func", "*snapshotRepository.Save").
			Str("snapshot_id", snapshot.ID).
			Bool("retryable", class == Retryable).
			Msg("failed to insert snapshot")
		if class == Conflict {
			return ErrSnapshotExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Last implements [SnapshotRepository].
func (r *snapshotRepository) Last(ctx context.Context, source string) (models.Snapshot, error) {
	snapshots, err := r.List(ctx, source, 1)
	if err != nil {
		return models.Snapshot{}, err
	}
	if len(snapshots) == 0 {
		return models.Snapshot{}, ErrSnapshotNotFound
	}
	return snapshots[0], nil
}

// List implements [SnapshotRepository]. Rows come back without Player and
// Plaintext; use Get for those.
func (r *snapshotRepository) List(ctx context.Context, source string, limit uint64) ([]models.Snapshot, error) {
	log := logger.FromContext(ctx)

	qb := r.builder.
		Select(summaryColumns...).
		From(snapshotsTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit)
	if source != "" {
		qb = qb.Where(sq.Eq{"source": source})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.List").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.List").Str("source", source).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var snapshots []models.Snapshot
	for rows.Next() {
		var snapshot models.Snapshot
		if scanErr := rows.Scan(
			&snapshot.ID,
			&snapshot.Source,
			&snapshot.Fingerprint,
			&snapshot.PlayTime,
			&snapshot.Completion,
			&snapshot.CreatedAt,
		); scanErr != nil {
			log.Err(scanErr).Str("func", "*snapshotRepository.List").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		snapshots = append(snapshots, snapshot)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*snapshotRepository.List").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return snapshots, nil
}

// Get implements [SnapshotRepository].
func (r *snapshotRepository) Get(ctx context.Context, id string) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(snapshotColumns...).
		From(snapshotsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*snapshotRepository.Get").Msg("failed to create query")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	snapshot, err := scanSnapshot(r.DB.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Snapshot{}, ErrSnapshotNotFound
	case err != nil:
		log.Err(err).Str("func", "*snapshotRepository.Get").Str("snapshot_id", id).Msg("failed to scan row")
		return models.Snapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return snapshot, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (models.Snapshot, error) {
	var (
		snapshot models.Snapshot
		payload  []byte
	)
	if err := row.Scan(
		&snapshot.ID,
		&snapshot.Source,
		&snapshot.Fingerprint,
		&snapshot.PlayTime,
		&snapshot.Completion,
		&payload,
		&snapshot.CreatedAt,
	); err != nil {
		return models.Snapshot{}, err
	}

	if err := decodePayload(payload, &snapshot); err != nil {
		return models.Snapshot{}, err
	}
	return snapshot, nil
}
