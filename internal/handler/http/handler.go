package http

import (
	"time"

	"github.com/MKhiriev/go-silk-reader/internal/config"
	"github.com/MKhiriev/go-silk-reader/internal/logger"
	"github.com/MKhiriev/go-silk-reader/internal/service"
	"github.com/MKhiriev/go-silk-reader/internal/utils"
)

type Handler struct {
	services *service.Services

	hashKey        string
	maxBodySize    int64
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	if cfg.App.HashKey != "" {
		utils.InitHasherPool(cfg.App.HashKey)
	}

	logger.Info().
		Bool("hash_check", cfg.App.HashKey != "").
		Int64("max_body_size", cfg.Server.MaxBodySize).
		Msg("http handler created")
	return &Handler{
		services:       services,
		hashKey:        cfg.App.HashKey,
		maxBodySize:    cfg.Server.MaxBodySize,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
