package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-silk-reader/internal/logger"
	"github.com/MKhiriev/go-silk-reader/internal/parser"
	"github.com/MKhiriev/go-silk-reader/internal/utils"
	"github.com/MKhiriev/go-silk-reader/models"
)

// encodedFileName is suggested to clients downloading an encoded container.
const encodedFileName = "user1.dat"

func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, ErrEmptyBody
	}
	return body, nil
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) {
	raw, err := readBody(r)
	if err != nil {
		h.writeError(w, r, "*Handler.decode", err)
		return
	}

	save, err := h.services.SaveService.Decode(r.Context(), raw)
	if err != nil {
		h.writeError(w, r, "*Handler.decode", err)
		return
	}

	utils.WriteJSON(w, models.DecodeResponse{
		Player:    save.Player,
		ToolStats: save.Player.ToolStats(),
		PlayTime:  parser.FormatPlayTime(save.Player.PlayTimeSeconds),
	}, http.StatusOK)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	format, err := models.ParseExportFormat(r.URL.Query().Get("format"))
	if err != nil {
		h.writeError(w, r, "*Handler.export", err)
		return
	}

	raw, err := readBody(r)
	if err != nil {
		h.writeError(w, r, "*Handler.export", err)
		return
	}

	out, err := h.services.SaveService.Export(r.Context(), raw, format)
	if err != nil {
		h.writeError(w, r, "*Handler.export", err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(out); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.export").Msg("error writing response")
	}
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	raw, err := readBody(r)
	if err != nil {
		h.writeError(w, r, "*Handler.report", err)
		return
	}

	rep, err := h.services.SaveService.Report(r.Context(), raw)
	if err != nil {
		h.writeError(w, r, "*Handler.report", err)
		return
	}

	utils.WriteJSON(w, rep, http.StatusOK)
}

func (h *Handler) encode(w http.ResponseWriter, r *http.Request) {
	document, err := readBody(r)
	if err != nil {
		h.writeError(w, r, "*Handler.encode", err)
		return
	}

	container, err := h.services.SaveService.Encode(r.Context(), document)
	if err != nil {
		h.writeError(w, r, "*Handler.encode", err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="`+encodedFileName+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(container); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.encode").Msg("error writing response")
	}
}
