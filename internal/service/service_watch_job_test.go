// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-silk-reader/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spySnapshotService считает вызовы Record и запоминает последний source.
type spySnapshotService struct {
	calls atomic.Int64
	err   error

	mu      sync.Mutex
	sources []string
}

func (s *spySnapshotService) Record(_ context.Context, source string, _ []byte) (models.Snapshot, error) {
	s.calls.Add(1)
	s.mu.Lock()
	s.sources = append(s.sources, source)
	s.mu.Unlock()
	return models.Snapshot{}, s.err
}

func (s *spySnapshotService) List(context.Context, string, uint64) ([]models.Snapshot, error) {
	return nil, nil
}

func (s *spySnapshotService) Get(context.Context, string) (models.SnapshotDetail, error) {
	return models.SnapshotDetail{}, nil
}

func newTestWatchJob(spy SnapshotService) *watchJob {
	job := NewWatchJob(spy).(*watchJob)
	job.readFile = func(string) ([]byte, error) { return []byte("save"), nil }
	return job
}

// ── NewWatchJob ──────────────────────────────────────────────────────────────

func TestNewWatchJob_ReturnsInterface(t *testing.T) {
	job := NewWatchJob(&spySnapshotService{})
	require.NotNil(t, job)

	var _ WatchJob = job
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestWatchJob_Start_RecordsImmediatelyAndOnTicks(t *testing.T) {
	spy := &spySnapshotService{}
	job := newTestWatchJob(spy)

	// Интервал 10ms: один вызов сразу и ещё несколько по тикам
	job.Start(context.Background(), "user1.dat", 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Record called %d times", got)

	spy.mu.Lock()
	defer spy.mu.Unlock()
	for _, s := range spy.sources {
		assert.Equal(t, "user1.dat", s)
	}
}

func TestWatchJob_Start_DefaultInterval(t *testing.T) {
	spy := &spySnapshotService{}
	job := newTestWatchJob(spy)

	// interval <= 0 → 5s, за 20ms только первый вызов
	job.Start(context.Background(), "user1.dat", 0)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(1), spy.calls.Load())
}

func TestWatchJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySnapshotService{}
	job := newTestWatchJob(spy)

	job.Start(context.Background(), "user1.dat", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no calls after Stop")
}

func TestWatchJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewWatchJob(&spySnapshotService{})

	assert.NotPanics(t, func() { job.Stop() })
	assert.NotPanics(t, func() { job.Stop() })
}

func TestWatchJob_ContextCancel_StopsJob(t *testing.T) {
	spy := &spySnapshotService{}
	job := newTestWatchJob(spy)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, "user1.dat", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancel")
	}
}

func TestWatchJob_RecordError_DoesNotStopJob(t *testing.T) {
	spy := &spySnapshotService{err: models.ErrDecryptionFailed}
	job := newTestWatchJob(spy)

	job.Start(context.Background(), "user1.dat", 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

func TestWatchJob_ReadError_SkipsRecord(t *testing.T) {
	spy := &spySnapshotService{}
	job := NewWatchJob(spy).(*watchJob)
	job.readFile = func(string) ([]byte, error) { return nil, errors.New("file is busy") }

	job.Start(context.Background(), "user1.dat", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestWatchJob_ReadsRealFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user1.dat")
	require.NoError(t, os.WriteFile(path, []byte("save"), 0o600))

	spy := &spySnapshotService{}
	job := NewWatchJob(spy)

	job.Start(context.Background(), path, time.Hour)
	require.Eventually(t, func() bool { return spy.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	job.Stop()
}
