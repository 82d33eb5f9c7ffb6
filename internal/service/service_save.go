// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-silk-reader/internal/crypto"
	"github.com/MKhiriev/go-silk-reader/internal/logger"
	"github.com/MKhiriev/go-silk-reader/internal/parser"
	"github.com/MKhiriev/go-silk-reader/internal/report"
	"github.com/MKhiriev/go-silk-reader/models"
	"gopkg.in/yaml.v3"
)

// saveService is the concrete implementation of SaveService. It holds no
// mutable state and is safe for concurrent use.
type saveService struct {
	cipher crypto.Cipher

	logger *logger.Logger
}

// NewSaveService constructs a SaveService over the given container cipher.
func NewSaveService(cipher crypto.Cipher, logger *logger.Logger) SaveService {
	return &saveService{
		cipher: cipher,
		logger: logger,
	}
}

// Decode implements SaveService.
//
// The returned error keeps the decode sentinel of the failing step, so
// models.ErrorKind on it yields the error class.
func (s *saveService) Decode(ctx context.Context, raw []byte) (models.SaveFile, error) {
	log := logger.FromContext(ctx)

	plaintext, err := s.cipher.Decrypt(raw)
	if err != nil {
		log.Err(err).Str("func", "*saveService.Decode").Int("size", len(raw)).Msg("error decrypting save container")
		return models.SaveFile{}, fmt.Errorf("error decrypting save container: %w", err)
	}

	save, err := parser.Parse(plaintext)
	if err != nil {
		log.Err(err).Str("func", "*saveService.Decode").Int("plaintext_size", len(plaintext)).Msg("error parsing save document")
		return models.SaveFile{}, fmt.Errorf("error parsing save document: %w", err)
	}

	log.Debug().Str("func", "*saveService.Decode").
		Str("version", save.Player.Version).
		Int("tools", len(save.Player.Tools)).
		Msg("save decoded")

	return save, nil
}

// Export implements SaveService. JSON output is indented with two spaces;
// YAML output keeps integers as integers.
func (s *saveService) Export(ctx context.Context, raw []byte, format models.ExportFormat) ([]byte, error) {
	log := logger.FromContext(ctx)

	save, err := s.Decode(ctx, raw)
	if err != nil {
		return nil, err
	}

	var out []byte
	switch format {
	case models.ExportJSON, "":
		out, err = save.Document.MarshalIndent()
	case models.ExportYAML:
		out, err = marshalYAML(save.Document)
	default:
		err = fmt.Errorf("%w: %q", models.ErrUnknownExportFormat, format)
	}
	if err != nil {
		log.Err(err).Str("func", "*saveService.Export").Str("format", string(format)).Msg("error exporting document")
		return nil, fmt.Errorf("error exporting document: %w", err)
	}

	return out, nil
}

// Encode implements SaveService. document must be a single JSON value; it is
// compacted before encryption.
func (s *saveService) Encode(ctx context.Context, document []byte) ([]byte, error) {
	log := logger.FromContext(ctx)

	if _, err := parser.ParseDocument(document); err != nil {
		log.Err(err).Str("func", "*saveService.Encode").Int("size", len(document)).Msg("invalid document provided")
		return nil, fmt.Errorf("invalid document provided: %w", err)
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, document); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrMalformedDocument, err)
	}

	return s.cipher.Encrypt(compact.Bytes()), nil
}

// Report implements SaveService.
func (s *saveService) Report(ctx context.Context, raw []byte) (models.Report, error) {
	save, err := s.Decode(ctx, raw)
	if err != nil {
		return models.Report{}, err
	}

	return report.Build(save), nil
}

func marshalYAML(doc models.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yamlValue(doc.Root())); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// yamlValue replaces json.Number leaves with int64 or float64 so that yaml
// does not quote them as strings.
func yamlValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = yamlValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = yamlValue(val)
		}
		return out
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}
