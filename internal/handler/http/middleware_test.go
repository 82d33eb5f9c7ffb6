package http

import (
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-silk-reader/internal/config"
	"github.com/MKhiriev/go-silk-reader/internal/logger"
	"github.com/MKhiriev/go-silk-reader/internal/service"
	"github.com/MKhiriev/go-silk-reader/internal/utils"
	"github.com/MKhiriev/go-silk-reader/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

// ── trace id ──

func TestWithTraceID_EchoesHeader(t *testing.T) {
	router, deps := newTestRouter(t, nil)
	deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v")

	rec := doRequest(t, router, http.MethodGet, "/api/version", nil, map[string]string{traceIDHeader: "trace-42"})

	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesAndStoresInContext(t *testing.T) {
	h := NewHandler(&service.Services{}, testConfig(), logger.Nop())

	var fromCtx string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx, _ = utils.GetTraceIDFromContext(r.Context())
	})

	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	generated := rec.Header().Get(traceIDHeader)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, fromCtx)
}

// ── gzip ──

func TestGZip_RequestIsInflated(t *testing.T) {
	router, deps := newTestRouter(t, nil)
	deps.saves.EXPECT().Decode(gomock.Any(), testContainer).Return(models.SaveFile{}, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/save/decode", gzipBytes(t, testContainer),
		map[string]string{"Content-Encoding": "gzip"})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/save/decode", []byte("not gzip"),
		map[string]string{"Content-Encoding": "gzip"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGZip_ResponseIsCompressed(t *testing.T) {
	router, deps := newTestRouter(t, nil)
	deps.saves.EXPECT().Report(gomock.Any(), gomock.Any()).Return(models.Report{}, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/save/report", testContainer,
		map[string]string{"Accept-Encoding": "gzip"})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(plain), `"tool_stats"`)
}

func TestGZip_LimitAppliesToInflatedBody(t *testing.T) {
	router, _ := newTestRouter(t, func(cfg *config.StructuredConfig, _ *service.Services) {
		cfg.Server.MaxBodySize = 64
	})

	// сжатое тело меньше лимита, распакованное больше
	body := gzipBytes(t, bytes.Repeat([]byte("a"), 4096))
	require.Less(t, len(body), 64)

	rec := doRequest(t, router, http.MethodPost, "/api/save/decode", body,
		map[string]string{"Content-Encoding": "gzip"})

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

// ── hash check ──

func TestWithHashCheck(t *testing.T) {
	const hashKey = "secret"

	tests := []struct {
		name       string
		hash       string
		wantStatus int
		wantCall   bool
	}{
		{name: "valid hash", hash: utils.HashString(testContainer, hashKey), wantStatus: http.StatusOK, wantCall: true},
		{name: "missing hash", hash: "", wantStatus: http.StatusBadRequest},
		{name: "wrong key", hash: utils.HashString(testContainer, "other"), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t, func(cfg *config.StructuredConfig, _ *service.Services) {
				cfg.App.HashKey = hashKey
			})
			if tt.wantCall {
				deps.saves.EXPECT().Decode(gomock.Any(), testContainer).Return(models.SaveFile{}, nil)
			}

			headers := map[string]string{}
			if tt.hash != "" {
				headers[hashHeader] = tt.hash
			}
			rec := doRequest(t, router, http.MethodPost, "/api/save/decode", testContainer, headers)

			require.Equal(t, tt.wantStatus, rec.Code)
			if !tt.wantCall {
				assert.Equal(t, "BadRequest", decodeErrorBody(t, rec.Body.Bytes()).Code)
				assert.Contains(t, decodeErrorBody(t, rec.Body.Bytes()).Message, "integrity")
			}
		})
	}
}

func TestWithHashCheck_DisabledWithoutKey(t *testing.T) {
	router, deps := newTestRouter(t, nil)
	deps.saves.EXPECT().Decode(gomock.Any(), testContainer).Return(models.SaveFile{}, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/save/decode", testContainer, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// ── error mapping ──

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"file too small", models.ErrFileTooSmall, http.StatusUnprocessableEntity},
		{"wrapped encoding", fmt.Errorf("%w: bad", models.ErrInvalidEncoding), http.StatusUnprocessableEntity},
		{"unknown format", models.ErrUnknownExportFormat, http.StatusBadRequest},
		{"empty source", service.ErrEmptySource, http.StatusBadRequest},
		{"limit too large", service.ErrLimitTooLarge, http.StatusBadRequest},
		{"max bytes", &http.MaxBytesError{Limit: 1}, http.StatusRequestEntityTooLarge},
		{"wrapped max bytes", fmt.Errorf("read: %w", &http.MaxBytesError{Limit: 1}), http.StatusRequestEntityTooLarge},
		{"snapshots disabled", ErrSnapshotsDisabled, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestErrorResponse(t *testing.T) {
	resp := errorResponse(models.ErrDecryptionFailed, http.StatusUnprocessableEntity)
	assert.Equal(t, models.ErrorResponse{Code: "DecryptionFailed", Message: "decryption failed"}, resp)

	resp = errorResponse(ErrInvalidLimit, http.StatusBadRequest)
	assert.Equal(t, "BadRequest", resp.Code)
	assert.Equal(t, "invalid limit", resp.Message)

	resp = errorResponse(errors.New("secret detail"), http.StatusInternalServerError)
	assert.Equal(t, models.ErrorResponse{Code: "InternalServerError", Message: "Internal Server Error"}, resp)
}
