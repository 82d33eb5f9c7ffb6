// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// silkread CLI and the decode server. It is populated by merging defaults, a
// .env file, environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the request hash key
	// and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the snapshot database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds address, timeout and body limit of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote decode server the CLI talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file loaded before the environment is read.
	// Missing files are ignored.
	DotEnvPath string `env:"DOTENV"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header). Empty disables the check.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name; empty keeps "debug".
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups storage backend settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the snapshot database.
type DB struct {
	// DSN selects the driver: postgres:// and postgresql:// URLs open
	// PostgreSQL through pgx, anything else is a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the "host:port" the server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxBodySize is the largest accepted request body in bytes.
	// Env: SERVER_MAX_BODY_SIZE
	MaxBodySize int64 `env:"MAX_BODY_SIZE"`
}

// Adapter holds the outbound client settings used by `silkread remote`.
type Adapter struct {
	// HTTPAddress is the base URL or "host:port" of the decode server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// WatchInterval is how often the watch job polls the save file.
	// Env: WORKERS_WATCH_INTERVAL
	WatchInterval time.Duration `env:"WATCH_INTERVAL"`
}

// Defaults used when no source sets a value.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxBodySize    = 16 << 20
	DefaultDSN            = "silkread.db"
	DefaultWatchInterval  = 5 * time.Second
	DefaultDotEnvPath     = ".env"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
			MaxBodySize:    DefaultMaxBodySize,
		},
		Adapter: Adapter{RequestTimeout: DefaultRequestTimeout},
		Workers: Workers{WatchInterval: DefaultWatchInterval},
	}
}

// GetStructuredConfig loads the configuration for a binary that takes no
// sub-command, reading flags from os.Args.
func GetStructuredConfig() (*StructuredConfig, error) {
	return Load(flag.CommandLine, os.Args[1:])
}

// Load loads, merges and validates the configuration. Sources are applied in
// the following order, later sources overriding non-zero fields of earlier
// ones:
//  1. built-in defaults
//  2. .env file (never overrides variables already set in the process)
//  3. environment variables
//  4. command-line flags registered on fs and parsed from args
//  5. JSON file (path resolved from sources 3 and 4)
//
// fs may already carry command specific flags; after Load returns,
// fs.Args() holds the positional arguments.
func Load(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(fs, args).
		withJSON().
		build()
}
