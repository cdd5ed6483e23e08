// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	defaultClientRequestTimeout = 15 * time.Second
	defaultRefreshInterval      = time.Minute
)

// ClientAdapter holds how the client reaches the server.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	Token          string
}

// ClientStorage holds the client's local SQLite settings.
type ClientStorage struct {
	DSN string
}

// ClientWorkers holds background worker settings.
type ClientWorkers struct {
	RefreshInterval time.Duration
}

// ClientConfig is the part of [StructuredConfig] the client runtime uses.
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig loads the merged configuration and returns the validated
// client view of it. Unset timeouts fall back to defaults.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			Token:          cfg.Adapter.Token,
		},
		Storage: ClientStorage{DSN: cfg.Storage.Local.DSN},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	if clientCfg.Adapter.RequestTimeout <= 0 {
		clientCfg.Adapter.RequestTimeout = defaultClientRequestTimeout
	}
	if clientCfg.Workers.RefreshInterval <= 0 {
		clientCfg.Workers.RefreshInterval = defaultRefreshInterval
	}

	return clientCfg
}
