// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the merged configuration shared by the server and the
// client binaries. Each binary reads the part it needs: the server through
// [GetStructuredConfig], the client through the [ClientConfig] view.
//
// Struct tags:
//   - envPrefix — prefix applied to nested env lookups (caarlos0/env).
//   - env       — environment variable name of a scalar field.
type StructuredConfig struct {
	// App holds token signing settings and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the server database and the client's local database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeouts of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Realtime tunes the change broadcaster.
	Realtime Realtime `envPrefix:"REALTIME_"`

	// Adapter holds how the client reaches the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds client background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file, merged
	// on top of env and flags.
	// Env: CONFIG, flags: -c / -config
	JSONFilePath string `env:"CONFIG"`
}

// App holds token and versioning settings.
type App struct {
	// TokenSignKey signs and verifies bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an issued token.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// IssueTokenFor makes the server print a token for the given user id and
	// exit instead of serving.
	// Env: APP_ISSUE_TOKEN_FOR
	IssueTokenFor string `env:"ISSUE_TOKEN_FOR"`

	// Version is reported by the version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups all persistence settings.
type Storage struct {
	// DB is the server's PostgreSQL database.
	DB DB `envPrefix:"DB_"`

	// Local is the client's SQLite database.
	Local Local `envPrefix:"LOCAL_"`
}

// DB holds the PostgreSQL connection string.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Local holds the path of the client's SQLite file.
type Local struct {
	// Env: STORAGE_LOCAL_DSN
	DSN string `env:"DSN"`
}

// Server holds the HTTP listener settings.
type Server struct {
	// HTTPAddress is the listen address in host:port form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single REST request. Websocket connections
	// are not affected.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Realtime tunes change fan-out.
type Realtime struct {
	// BufferSize is the per-subscription event buffer. Events for a full
	// buffer are dropped; clients converge on their next refresh.
	// Env: REALTIME_BUFFER_SIZE
	BufferSize int `env:"BUFFER_SIZE"`
}

// Adapter holds the client's view of the server.
type Adapter struct {
	// HTTPAddress is the server base URL; the scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single REST call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token sent with every request. Its subject is the
	// acting user.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Workers holds client background worker settings.
type Workers struct {
	// RefreshInterval is how often open live lists are refreshed even when
	// no change notification arrived.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads the configuration from, in increasing priority,
// a .env file, environment variables, command-line flags and a JSON file,
// then validates the server part of it.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func load() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(dotEnvPath()).
		withEnv().
		withFlags().
		withJSON().
		build()
}
