package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-silk-reader/internal/logger"
	"github.com/MKhiriev/go-silk-reader/internal/mock"
	"github.com/MKhiriev/go-silk-reader/internal/store"
	"github.com/MKhiriev/go-silk-reader/internal/utils"
	"github.com/MKhiriev/go-silk-reader/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestSnapshotSvc(t *testing.T, ctrl *gomock.Controller) (*snapshotService, *mock.MockSaveService, *mock.MockSnapshotRepository) {
	t.Helper()
	saves := mock.NewMockSaveService(ctrl)
	repo := mock.NewMockSnapshotRepository(ctrl)

	svc := NewSnapshotService(saves, repo, logger.Nop()).(*snapshotService)
	svc.newID = func() string { return "snap-1" }
	svc.now = func() time.Time { return testNow }

	return svc, saves, repo
}

func testSaveFile(t *testing.T) models.SaveFile {
	t.Helper()
	save, err := newTestSaveSvc().Decode(context.Background(), sealTestSave(t, testSave))
	require.NoError(t, err)
	return save
}

// ── Record ───────────────────────────────────────────────────────────────────

func TestSnapshotService_Record_FirstSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, saves, repo := newTestSnapshotSvc(t, ctrl)
	ctx := context.Background()
	raw := []byte("container")
	save := testSaveFile(t)

	gomock.InOrder(
		repo.EXPECT().Last(ctx, "user1.dat").Return(models.Snapshot{}, store.ErrSnapshotNotFound),
		saves.EXPECT().Decode(ctx, raw).Return(save, nil),
		repo.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, s models.Snapshot) error {
			assert.Equal(t, "snap-1", s.ID)
			assert.Equal(t, "user1.dat", s.Source)
			assert.Equal(t, utils.Fingerprint(raw), s.Fingerprint)
			assert.Equal(t, "01h 02m 05s", s.PlayTime)
			assert.Equal(t, 12.5, s.Completion)
			assert.Equal(t, save.Player, s.Player)
			assert.JSONEq(t, testSave, string(s.Plaintext))
			assert.Equal(t, testNow, s.CreatedAt)
			return nil
		}),
	)

	snap, err := svc.Record(ctx, "user1.dat", raw)
	require.NoError(t, err)
	assert.Equal(t, "snap-1", snap.ID)
}

func TestSnapshotService_Record_Unchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, repo := newTestSnapshotSvc(t, ctrl)
	ctx := context.Background()
	raw := []byte("container")
	last := models.Snapshot{ID: "old", Fingerprint: utils.Fingerprint(raw)}

	// Decode и Save не вызываются
	repo.EXPECT().Last(ctx, "user1.dat").Return(last, nil)

	snap, err := svc.Record(ctx, "user1.dat", raw)
	assert.ErrorIs(t, err, ErrSnapshotUnchanged)
	assert.Equal(t, "old", snap.ID)
}

func TestSnapshotService_Record_Changed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, saves, repo := newTestSnapshotSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Last(ctx, "user1.dat").Return(models.Snapshot{Fingerprint: "different"}, nil)
	saves.EXPECT().Decode(ctx, gomock.Any()).Return(testSaveFile(t), nil)
	repo.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	_, err := svc.Record(ctx, "user1.dat", []byte("new container"))
	require.NoError(t, err)
}

func TestSnapshotService_Record_EmptySource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSnapshotSvc(t, ctrl)

	_, err := svc.Record(context.Background(), "", []byte("x"))
	assert.ErrorIs(t, err, ErrEmptySource)
}

func TestSnapshotService_Record_DecodeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, saves, repo := newTestSnapshotSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Last(ctx, "user1.dat").Return(models.Snapshot{}, store.ErrSnapshotNotFound)
	saves.EXPECT().Decode(ctx, gomock.Any()).Return(models.SaveFile{}, models.ErrDecryptionFailed)

	_, err := svc.Record(ctx, "user1.dat", []byte("x"))
	assert.ErrorIs(t, err, models.ErrDecryptionFailed)
}

func TestSnapshotService_Record_LastError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, repo := newTestSnapshotSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Last(ctx, "user1.dat").Return(models.Snapshot{}, store.ErrExecutingQuery)

	_, err := svc.Record(ctx, "user1.dat", []byte("x"))
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.Contains(t, err.Error(), "error getting last snapshot")
}

func TestSnapshotService_Record_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, saves, repo := newTestSnapshotSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Last(ctx, "user1.dat").Return(models.Snapshot{}, store.ErrSnapshotNotFound)
	saves.EXPECT().Decode(ctx, gomock.Any()).Return(testSaveFile(t), nil)
	repo.EXPECT().Save(ctx, gomock.Any()).Return(store.ErrSnapshotExists)

	_, err := svc.Record(ctx, "user1.dat", []byte("x"))
	assert.ErrorIs(t, err, store.ErrSnapshotExists)
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestSnapshotService_List_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, repo := newTestSnapshotSvc(t, ctrl)
	ctx := context.Background()
	want := []models.Snapshot{{ID: "b"}, {ID: "a"}}

	repo.EXPECT().List(ctx, "", DefaultListLimit).Return(want, nil)

	got, err := svc.List(ctx, "", 0)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSnapshotService_List_LimitTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSnapshotSvc(t, ctrl)

	for _, limit := range []uint64{MaxListLimit + 1, 1 << 50} {
		got, err := svc.List(context.Background(), "", limit)
		assert.ErrorIs(t, err, ErrLimitTooLarge)
		assert.Nil(t, got)
	}
}

func TestSnapshotService_List_MaxLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, repo := newTestSnapshotSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().List(ctx, "", MaxListLimit).Return(nil, nil)

	_, err := svc.List(ctx, "", MaxListLimit)
	require.NoError(t, err)
}

func TestSnapshotService_List_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, repo := newTestSnapshotSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().List(ctx, "user1.dat", uint64(5)).Return(nil, errors.New("db down"))

	_, err := svc.List(ctx, "user1.dat", 5)
	assert.Error(t, err)
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestSnapshotService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, repo := newTestSnapshotSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, "snap-1").Return(models.Snapshot{ID: "snap-1", Plaintext: []byte(testSave)}, nil)

	detail, err := svc.Get(ctx, "snap-1")
	require.NoError(t, err)
	assert.Equal(t, "snap-1", detail.ID)

	v, ok := detail.Document.Lookup("playerData", "version")
	require.True(t, ok)
	assert.Equal(t, "1.0.28324", v)
}

func TestSnapshotService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, repo := newTestSnapshotSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, "nope").Return(models.Snapshot{}, store.ErrSnapshotNotFound)

	_, err := svc.Get(ctx, "nope")
	assert.ErrorIs(t, err, store.ErrSnapshotNotFound)
}

func TestSnapshotService_Get_CorruptedPlaintext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, repo := newTestSnapshotSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, "snap-1").Return(models.Snapshot{ID: "snap-1", Plaintext: []byte("{")}, nil)

	_, err := svc.Get(ctx, "snap-1")
	assert.ErrorIs(t, err, models.ErrMalformedDocument)
}
