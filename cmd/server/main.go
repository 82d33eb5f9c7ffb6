package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-silk-reader/internal/config"
	"github.com/MKhiriev/go-silk-reader/internal/handler"
	"github.com/MKhiriev/go-silk-reader/internal/logger"
	"github.com/MKhiriev/go-silk-reader/internal/server"
	"github.com/MKhiriev/go-silk-reader/internal/service"
	"github.com/MKhiriev/go-silk-reader/internal/store"
	"github.com/MKhiriev/go-silk-reader/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	log := logger.NewLogger("silkread-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		if !buildInfo.HasVersion() {
			log.Warn().Msg("neither APP_VERSION nor a build version is set, /api/version reports " + models.NotAvailable)
		}
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg.Server).Msg("received configs")

	ctx := context.Background()

	// snapshot endpoints answer 503 when the database is unavailable
	var storages *store.Storages
	if dbCfg, err := cfg.StorageConfig(); err != nil {
		log.Warn().Err(err).Msg("snapshot storage disabled")
	} else if storages, err = store.NewStorages(ctx, dbCfg, log); err != nil {
		log.Warn().Err(err).Msg("snapshot storage disabled")
		storages = nil
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}
}
