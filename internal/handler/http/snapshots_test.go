package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-silk-reader/internal/config"
	"github.com/MKhiriev/go-silk-reader/internal/service"
	"github.com/MKhiriev/go-silk-reader/internal/store"
	"github.com/MKhiriev/go-silk-reader/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testSnapshot = models.Snapshot{
	ID:          "0195a1b2-0000-7000-8000-000000000001",
	Source:      "user1.dat",
	Fingerprint: "abc",
	PlayTime:    "01h 02m 05s",
	Completion:  12.5,
	CreatedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
}

// ─────────────────────────────────────────────
// list
// ─────────────────────────────────────────────

func TestListSnapshots(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		source string
		limit  uint64
	}{
		{"no params", "", "", 0},
		{"source and limit", "?source=user1.dat&limit=5", "user1.dat", 5},
		{"limit only", "?limit=1", "", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t, nil)
			deps.snapshots.EXPECT().
				List(gomock.Any(), tt.source, tt.limit).
				Return([]models.Snapshot{testSnapshot}, nil)

			rec := doRequest(t, router, http.MethodGet, "/api/snapshots"+tt.query, nil, nil)

			require.Equal(t, http.StatusOK, rec.Code)
			var got []models.Snapshot
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			require.Len(t, got, 1)
			assert.Equal(t, testSnapshot.ID, got[0].ID)
			assert.True(t, testSnapshot.CreatedAt.Equal(got[0].CreatedAt))
		})
	}
}

func TestListSnapshots_EmptyIsArray(t *testing.T) {
	router, deps := newTestRouter(t, nil)
	deps.snapshots.EXPECT().List(gomock.Any(), "", uint64(0)).Return(nil, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/snapshots", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListSnapshots_InvalidLimit(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	for _, limit := range []string{"-1", "ten", "1.5"} {
		rec := doRequest(t, router, http.MethodGet, "/api/snapshots?limit="+limit, nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)
	}
}

func TestListSnapshots_LimitAboveMax(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	for _, limit := range []string{"1001", "1125899906842624", "18446744073709551615"} {
		rec := doRequest(t, router, http.MethodGet, "/api/snapshots?limit="+limit, nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", limit)
		assert.Contains(t, rec.Body.String(), "BadRequest")
	}
}

func TestListSnapshots_LimitAtMax(t *testing.T) {
	router, deps := newTestRouter(t, nil)
	deps.snapshots.EXPECT().List(gomock.Any(), "", service.MaxListLimit).Return(nil, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/snapshots?limit=1000", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListSnapshots_StoreError(t *testing.T) {
	router, deps := newTestRouter(t, nil)
	deps.snapshots.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, store.ErrExecutingQuery)

	rec := doRequest(t, router, http.MethodGet, "/api/snapshots", nil, nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// get
// ─────────────────────────────────────────────

func TestGetSnapshot_Success(t *testing.T) {
	router, deps := newTestRouter(t, nil)

	detail := models.SnapshotDetail{
		Snapshot: testSnapshot,
		Document: models.NewDocument(map[string]any{"playerData": map[string]any{"geo": json.Number("120")}}),
	}
	deps.snapshots.EXPECT().Get(gomock.Any(), testSnapshot.ID).Return(detail, nil)

	rec := doRequest(t, router, http.MethodGet, "/api/snapshots/"+testSnapshot.ID, nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		ID       string         `json:"id"`
		Source   string         `json:"source"`
		Document map[string]any `json:"document"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, testSnapshot.ID, got.ID)
	assert.Equal(t, "user1.dat", got.Source)
	assert.Equal(t, map[string]any{"geo": float64(120)}, got.Document["playerData"])
}

func TestGetSnapshot_NotFound(t *testing.T) {
	router, deps := newTestRouter(t, nil)
	deps.snapshots.EXPECT().Get(gomock.Any(), "missing").Return(models.SnapshotDetail{}, store.ErrSnapshotNotFound)

	rec := doRequest(t, router, http.MethodGet, "/api/snapshots/missing", nil, nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NotFound", decodeErrorBody(t, rec.Body.Bytes()).Code)
}

func TestSnapshots_Disabled(t *testing.T) {
	router, _ := newTestRouter(t, func(_ *config.StructuredConfig, services *service.Services) {
		services.SnapshotService = nil
	})

	for _, target := range []string{"/api/snapshots", "/api/snapshots/abc"} {
		rec := doRequest(t, router, http.MethodGet, target, nil, nil)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, target)
	}
}
