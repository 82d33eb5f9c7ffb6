package service

import (
	"fmt"

	"github.com/MKhiriev/go-silk-reader/internal/config"
	"github.com/MKhiriev/go-silk-reader/internal/crypto"
	"github.com/MKhiriev/go-silk-reader/internal/logger"
	"github.com/MKhiriev/go-silk-reader/internal/store"
)

type Services struct {
	SaveService     SaveService
	SnapshotService SnapshotService
	AppInfoService  AppInfoService
}

// NewServices wires the services used by the HTTP server. storages may be
// nil, in which case SnapshotService is left unset.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	saves := NewSaveService(crypto.NewSaveCipher(), logger)
	services := &Services{
		SaveService:    saves,
		AppInfoService: appInfo,
	}
	if storages != nil {
		services.SnapshotService = NewSnapshotService(saves, storages.SnapshotRepository, logger)
	}

	return services, nil
}
