package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-silk-reader/internal/service"
	"github.com/MKhiriev/go-silk-reader/internal/utils"
	"github.com/MKhiriev/go-silk-reader/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) requireSnapshots(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.services.SnapshotService == nil {
			h.writeError(w, r, "*Handler.requireSnapshots", ErrSnapshotsDisabled)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) listSnapshots(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var limit uint64
	if rawLimit := query.Get("limit"); rawLimit != "" {
		parsed, err := strconv.ParseUint(rawLimit, 10, 64)
		if err != nil || parsed > service.MaxListLimit {
			h.writeError(w, r, "*Handler.listSnapshots", fmt.Errorf("%w: %q", ErrInvalidLimit, rawLimit))
			return
		}
		limit = parsed
	}

	snapshots, err := h.services.SnapshotService.List(r.Context(), query.Get("source"), limit)
	if err != nil {
		h.writeError(w, r, "*Handler.listSnapshots", err)
		return
	}
	if snapshots == nil {
		snapshots = []models.Snapshot{}
	}

	utils.WriteJSON(w, snapshots, http.StatusOK)
}

func (h *Handler) getSnapshot(w http.ResponseWriter, r *http.Request) {
	detail, err := h.services.SnapshotService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "*Handler.getSnapshot", err)
		return
	}

	utils.WriteJSON(w, detail, http.StatusOK)
}
