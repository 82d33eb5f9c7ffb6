package adapter

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-silk-reader/internal/config"
	"github.com/MKhiriev/go-silk-reader/internal/logger"
	"github.com/MKhiriev/go-silk-reader/internal/utils"
	"github.com/MKhiriev/go-silk-reader/models"
	"github.com/go-resty/resty/v2"
)

const (
	hashHeader    = "HashSHA256"
	traceIDHeader = "X-Trace-ID"
)

type httpRemoteDecoder struct {
	client *utils.HTTPClient

	hashKey string

	logger *logger.Logger
}

// NewHTTPRemoteDecoder returns a RemoteDecoder talking to
// adapterCfg.HTTPAddress. Uploads are gzip-compressed and, when
// appCfg.HashKey is set, signed with the HashSHA256 header.
func NewHTTPRemoteDecoder(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (RemoteDecoder, error) {
	address := strings.TrimRight(strings.TrimSpace(adapterCfg.HTTPAddress), "/")
	if address == "" {
		return nil, ErrEmptyAddress
	}

	return &httpRemoteDecoder{
		client:  utils.NewHTTPClient(address, adapterCfg.RequestTimeout),
		hashKey: appCfg.HashKey,
		logger:  logger,
	}, nil
}

// upload prepares a POST carrying raw as a compressed, optionally signed
// body.
func (h *httpRemoteDecoder) upload(ctx context.Context, raw []byte) (*resty.Request, error) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, fmt.Errorf("error compressing body: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("error compressing body: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/octet-stream").
		SetHeader("Content-Encoding", "gzip").
		SetBody(buf.Bytes())
	if h.hashKey != "" {
		req.SetHeader(hashHeader, utils.HashString(raw, h.hashKey))
	}
	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}
	return req, nil
}

func (h *httpRemoteDecoder) Decode(ctx context.Context, raw []byte) (models.DecodeResponse, error) {
	log := logger.FromContext(ctx)

	req, err := h.upload(ctx, raw)
	if err != nil {
		return models.DecodeResponse{}, err
	}

	var decoded models.DecodeResponse
	resp, err := req.SetResult(&decoded).Post("/api/save/decode")
	if err != nil {
		log.Err(err).Str("func", "*httpRemoteDecoder.Decode").Msg("decode request failed")
		return models.DecodeResponse{}, fmt.Errorf("decode request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DecodeResponse{}, err
	}

	return decoded, nil
}

func (h *httpRemoteDecoder) Report(ctx context.Context, raw []byte) (models.Report, error) {
	log := logger.FromContext(ctx)

	req, err := h.upload(ctx, raw)
	if err != nil {
		return models.Report{}, err
	}

	var report models.Report
	resp, err := req.SetResult(&report).Post("/api/save/report")
	if err != nil {
		log.Err(err).Str("func", "*httpRemoteDecoder.Report").Msg("report request failed")
		return models.Report{}, fmt.Errorf("report request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Report{}, err
	}

	return report, nil
}

func (h *httpRemoteDecoder) Export(ctx context.Context, raw []byte, format models.ExportFormat) ([]byte, error) {
	log := logger.FromContext(ctx)

	req, err := h.upload(ctx, raw)
	if err != nil {
		return nil, err
	}

	resp, err := req.
		SetQueryParam("format", string(format)).
		Post("/api/save/export")
	if err != nil {
		log.Err(err).Str("func", "*httpRemoteDecoder.Export").Msg("export request failed")
		return nil, fmt.Errorf("export request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpRemoteDecoder) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
