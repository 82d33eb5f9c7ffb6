package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-silk-reader/internal/logger"
	"github.com/MKhiriev/go-silk-reader/internal/parser"
	"github.com/MKhiriev/go-silk-reader/internal/store"
	"github.com/MKhiriev/go-silk-reader/internal/utils"
	"github.com/MKhiriev/go-silk-reader/models"
)

// Limits of List. Zero selects DefaultListLimit; anything above
// MaxListLimit is rejected with ErrLimitTooLarge.
const (
	DefaultListLimit uint64 = 20
	MaxListLimit     uint64 = 1000
)

// snapshotService records decoded saves through a SnapshotRepository.
type snapshotService struct {
	saves      SaveService
	repository store.SnapshotRepository

	newID func() string
	now   func() time.Time

	logger *logger.Logger
}

// NewSnapshotService constructs a SnapshotService. Snapshot ids are UUIDv7,
// so they sort by creation time.
func NewSnapshotService(saves SaveService, repository store.SnapshotRepository, logger *logger.Logger) SnapshotService {
	return &snapshotService{
		saves:      saves,
		repository: repository,
		newID:      utils.NewUUIDGenerator().Generate,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

// Record implements SnapshotService.
//
// Returns:
//   - ErrEmptySource if source is empty.
//   - A decode error if raw is not a valid save container.
//   - The last snapshot and ErrSnapshotUnchanged if raw has the same
//     fingerprint as the last snapshot of source.
//   - A wrapped storage error if reading or saving fails.
func (s *snapshotService) Record(ctx context.Context, source string, raw []byte) (models.Snapshot, error) {
	log := logger.FromContext(ctx)

	if source == "" {
		return models.Snapshot{}, ErrEmptySource
	}

	fingerprint := utils.Fingerprint(raw)

	last, err := s.repository.Last(ctx, source)
	switch {
	case err == nil && last.Fingerprint == fingerprint:
		log.Debug().Str("func", "*snapshotService.Record").Str("source", source).Msg("save unchanged, snapshot skipped")
		return last, ErrSnapshotUnchanged
	case err != nil && !errors.Is(err, store.ErrSnapshotNotFound):
		log.Err(err).Str("func", "*snapshotService.Record").Str("source", source).Msg("error getting last snapshot")
		return models.Snapshot{}, fmt.Errorf("error getting last snapshot: %w", err)
	}

	save, err := s.saves.Decode(ctx, raw)
	if err != nil {
		return models.Snapshot{}, err
	}

	plaintext, err := save.Document.MarshalJSON()
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("error encoding document: %w", err)
	}

	snapshot := models.Snapshot{
		ID:          s.newID(),
		Source:      source,
		Fingerprint: fingerprint,
		PlayTime:    parser.FormatPlayTime(save.Player.PlayTimeSeconds),
		Completion:  save.Player.CompletionPercentage,
		Player:      save.Player,
		Plaintext:   plaintext,
		CreatedAt:   s.now(),
	}

	if err = s.repository.Save(ctx, snapshot); err != nil {
		log.Err(err).Str("func", "*snapshotService.Record").Str("snapshot_id", snapshot.ID).Msg("error saving snapshot")
		return models.Snapshot{}, fmt.Errorf("error saving snapshot: %w", err)
	}

	log.Info().Str("func", "*snapshotService.Record").
		Str("snapshot_id", snapshot.ID).
		Str("source", source).
		Str("play_time", snapshot.PlayTime).
		Msg("snapshot recorded")

	return snapshot, nil
}

// List implements SnapshotService.
func (s *snapshotService) List(ctx context.Context, source string, limit uint64) ([]models.Snapshot, error) {
	switch {
	case limit == 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		return nil, fmt.Errorf("%w: %d > %d", ErrLimitTooLarge, limit, MaxListLimit)
	}

	snapshots, err := s.repository.List(ctx, source, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*snapshotService.List").Str("source", source).Msg("error listing snapshots")
		return nil, fmt.Errorf("error listing snapshots: %w", err)
	}

	return snapshots, nil
}

// Get implements SnapshotService. The stored plaintext is parsed again to
// rebuild the document.
func (s *snapshotService) Get(ctx context.Context, id string) (models.SnapshotDetail, error) {
	log := logger.FromContext(ctx)

	snapshot, err := s.repository.Get(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*snapshotService.Get").Str("snapshot_id", id).Msg("error getting snapshot")
		return models.SnapshotDetail{}, fmt.Errorf("error getting snapshot: %w", err)
	}

	doc, err := parser.ParseDocument(snapshot.Plaintext)
	if err != nil {
		log.Err(err).Str("func", "*snapshotService.Get").Str("snapshot_id", id).Msg("stored snapshot is corrupted")
		return models.SnapshotDetail{}, fmt.Errorf("stored snapshot is corrupted: %w", err)
	}

	return models.SnapshotDetail{Snapshot: snapshot, Document: doc}, nil
}
