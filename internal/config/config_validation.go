// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks the settings every command depends on. Group specific
// requirements are checked by the accessors in this file when a command
// actually needs the group.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Server.MaxBodySize < 0 || cfg.Server.RequestTimeout < 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}
	if cfg.Adapter.RequestTimeout < 0 {
		errs = append(errs, ErrInvalidAdapterConfigs)
	}
	if cfg.Workers.WatchInterval < 0 {
		errs = append(errs, ErrInvalidWorkerConfigs)
	}

	return errors.Join(errs...)
}

// ServerConfig returns the HTTP server settings, failing if the address or
// body limit is unset.
func (cfg *StructuredConfig) ServerConfig() (Server, error) {
	if cfg.Server.HTTPAddress == "" || cfg.Server.MaxBodySize <= 0 {
		return Server{}, fmt.Errorf("%w: address %q, max body size %d",
			ErrInvalidServerConfigs, cfg.Server.HTTPAddress, cfg.Server.MaxBodySize)
	}
	return cfg.Server, nil
}

// StorageConfig returns the database settings, failing on an empty DSN.
func (cfg *StructuredConfig) StorageConfig() (DB, error) {
	if cfg.Storage.DB.DSN == "" {
		return DB{}, ErrInvalidStorageConfigs
	}
	return cfg.Storage.DB, nil
}

// AdapterConfig returns the remote server settings used by the remote
// command.
func (cfg *StructuredConfig) AdapterConfig() (Adapter, error) {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return Adapter{}, ErrInvalidAdapterConfigs
	}
	return cfg.Adapter, nil
}

// WorkersConfig returns the background job settings.
func (cfg *StructuredConfig) WorkersConfig() (Workers, error) {
	if cfg.Workers.WatchInterval <= 0 {
		return Workers{}, ErrInvalidWorkerConfigs
	}
	return cfg.Workers, nil
}
