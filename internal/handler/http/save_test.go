package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-silk-reader/internal/config"
	"github.com/MKhiriev/go-silk-reader/internal/service"
	"github.com/MKhiriev/go-silk-reader/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testContainer = []byte("container-bytes")

func decodeErrorBody(t *testing.T, body []byte) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

// ─────────────────────────────────────────────
// decode
// ─────────────────────────────────────────────

func TestDecode_Success(t *testing.T) {
	router, deps := newTestRouter(t, nil)

	player := models.PlayerRecord{
		Version:         "1.0.28324",
		PlayTimeSeconds: 3725.4,
		Geo:             120,
		Tools: []models.ToolEntry{
			{Name: "Straight Pin", State: models.ToolState{HasBeenSeen: true, IsUnlocked: true}},
		},
	}
	deps.saves.EXPECT().
		Decode(gomock.Any(), testContainer).
		Return(models.SaveFile{Player: player}, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/save/decode", testContainer, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp models.DecodeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "01h 02m 05s", resp.PlayTime)
	assert.Equal(t, int64(120), resp.Player.Geo)
	assert.Equal(t, models.ToolStats{Total: 1, Seen: 1, Unlocked: 1}, resp.ToolStats)
}

func TestDecode_ErrorKinds(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{models.ErrFileTooSmall, "FileTooSmall"},
		{fmt.Errorf("%w: %w", models.ErrInvalidEncoding, errors.New("illegal base64 data at input byte 4")), "InvalidEncoding"},
		{models.ErrDecryptionFailed, "DecryptionFailed"},
		{fmt.Errorf("%w: unexpected end of JSON input", models.ErrMalformedDocument), "MalformedDocument"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			router, deps := newTestRouter(t, nil)
			deps.saves.EXPECT().Decode(gomock.Any(), gomock.Any()).Return(models.SaveFile{}, tt.err)

			rec := doRequest(t, router, http.MethodPost, "/api/save/decode", testContainer, nil)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			resp := decodeErrorBody(t, rec.Body.Bytes())
			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, tt.err.Error(), resp.Message)
		})
	}
}

func TestDecode_EmptyBody(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/save/decode", nil, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BadRequest", decodeErrorBody(t, rec.Body.Bytes()).Code)
}

func TestDecode_BodyTooLarge(t *testing.T) {
	router, _ := newTestRouter(t, func(cfg *config.StructuredConfig, _ *service.Services) {
		cfg.Server.MaxBodySize = 4
	})

	rec := doRequest(t, router, http.MethodPost, "/api/save/decode", testContainer, nil)

	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "RequestEntityTooLarge", decodeErrorBody(t, rec.Body.Bytes()).Code)
}

func TestDecode_InternalErrorHidesMessage(t *testing.T) {
	router, deps := newTestRouter(t, nil)
	deps.saves.EXPECT().Decode(gomock.Any(), gomock.Any()).Return(models.SaveFile{}, errors.New("disk on fire"))

	rec := doRequest(t, router, http.MethodPost, "/api/save/decode", testContainer, nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeErrorBody(t, rec.Body.Bytes())
	assert.Equal(t, "InternalServerError", resp.Code)
	assert.NotContains(t, resp.Message, "disk on fire")
}

// ─────────────────────────────────────────────
// export
// ─────────────────────────────────────────────

func TestExport_Formats(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		format      models.ExportFormat
		contentType string
	}{
		{"default is json", "", models.ExportJSON, "application/json"},
		{"json", "?format=json", models.ExportJSON, "application/json"},
		{"yaml", "?format=yaml", models.ExportYAML, "application/yaml"},
		{"yml alias", "?format=YML", models.ExportYAML, "application/yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t, nil)
			deps.saves.EXPECT().
				Export(gomock.Any(), testContainer, tt.format).
				Return([]byte("exported"), nil)

			rec := doRequest(t, router, http.MethodPost, "/api/save/export"+tt.query, testContainer, nil)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			assert.Equal(t, "exported", rec.Body.String())
		})
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/save/export?format=xml", testContainer, nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeErrorBody(t, rec.Body.Bytes()).Message, "xml")
}

func TestExport_DecodeError(t *testing.T) {
	router, deps := newTestRouter(t, nil)
	deps.saves.EXPECT().Export(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrDecryptionFailed)

	rec := doRequest(t, router, http.MethodPost, "/api/save/export", testContainer, nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "DecryptionFailed", decodeErrorBody(t, rec.Body.Bytes()).Code)
}

// ─────────────────────────────────────────────
// report
// ─────────────────────────────────────────────

func TestReport_Success(t *testing.T) {
	router, deps := newTestRouter(t, nil)

	report := models.Report{
		General: []models.Field{{Key: "version", Label: "Version", Value: "1.0.28324"}},
		Bosses: models.FlagCategory{
			Name:  "Bosses",
			Flags: []models.Flag{{Key: "defeatedMossMother", Label: "Moss Mother", Done: true}},
			Total: 1,
			Done:  1,
		},
	}
	deps.saves.EXPECT().Report(gomock.Any(), testContainer).Return(report, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/save/report", testContainer, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, report, got)
}

// ─────────────────────────────────────────────
// encode
// ─────────────────────────────────────────────

func TestEncode_Success(t *testing.T) {
	router, deps := newTestRouter(t, nil)
	document := []byte(`{"playerData":{"geo":1}}`)
	deps.saves.EXPECT().Encode(gomock.Any(), document).Return(testContainer, nil)

	rec := doRequest(t, router, http.MethodPost, "/api/save/encode", document, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), `filename="user1.dat"`)
	assert.Equal(t, testContainer, rec.Body.Bytes())
}

func TestEncode_MalformedDocument(t *testing.T) {
	router, deps := newTestRouter(t, nil)
	deps.saves.EXPECT().Encode(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: invalid character 'x'", models.ErrMalformedDocument))

	rec := doRequest(t, router, http.MethodPost, "/api/save/encode", []byte("xx"), nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "MalformedDocument", decodeErrorBody(t, rec.Body.Bytes()).Code)
}
