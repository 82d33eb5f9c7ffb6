package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-silk-reader/internal/logger"
	"github.com/MKhiriev/go-silk-reader/internal/service"
	"github.com/MKhiriev/go-silk-reader/internal/store"
	"github.com/MKhiriev/go-silk-reader/internal/utils"
	"github.com/MKhiriev/go-silk-reader/models"
)

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []struct {
	err    error
	status int
}{
	{models.ErrFileTooSmall, http.StatusUnprocessableEntity},
	{models.ErrInvalidEncoding, http.StatusUnprocessableEntity},
	{models.ErrDecryptionFailed, http.StatusUnprocessableEntity},
	{models.ErrMalformedDocument, http.StatusUnprocessableEntity},

	{models.ErrUnknownExportFormat, http.StatusBadRequest},
	{ErrEmptyBody, http.StatusBadRequest},
	{ErrInvalidLimit, http.StatusBadRequest},
	{ErrIntegrityCheckFailed, http.StatusBadRequest},
	{service.ErrEmptySource, http.StatusBadRequest},
	{service.ErrLimitTooLarge, http.StatusBadRequest},

	{ErrSnapshotsDisabled, http.StatusServiceUnavailable},

	{store.ErrSnapshotNotFound, http.StatusNotFound},
	{store.ErrSnapshotExists, http.StatusConflict},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
	{store.ErrDecodingPayload, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge
	}

	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse builds the JSON body for err. Decode errors carry their kind
// as the code; everything else is named after the status. Messages of 5xx
// responses are not exposed.
func errorResponse(err error, status int) models.ErrorResponse {
	code := models.ErrorKind(err)
	if code == "" {
		code = strings.ReplaceAll(http.StatusText(status), " ", "")
	}

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}

	return models.ErrorResponse{Code: code, Message: message}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, errorResponse(err, status), status); writeErr != nil {
		log.Err(writeErr).Str("func", fn).Msg("error writing error response")
	}
}
