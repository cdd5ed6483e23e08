// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── server ───────────────────────────────────────────────────────────────────

func TestStructuredConfig_ValidateFillsDefaults(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{TokenSignKey: "k", TokenIssuer: "pickup"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/pickup"}},
	}

	require.NoError(t, cfg.validate())
	assert.Equal(t, defaultServerAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, defaultBufferSize, cfg.Realtime.BufferSize)
}

func TestStructuredConfig_ValidateErrors(t *testing.T) {
	cfg := &StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://"}}}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)

	cfg = &StructuredConfig{App: App{TokenSignKey: "k", TokenIssuer: "i"}}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = &StructuredConfig{App: App{TokenSignKey: "k", TokenIssuer: "i", IssueTokenFor: "u1"}}
	assert.NoError(t, cfg.validate())
}

// ── client ───────────────────────────────────────────────────────────────────

func TestNewClientConfig_Defaults(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		Adapter: Adapter{HTTPAddress: "localhost:8080", Token: "t"},
		Storage: Storage{Local: Local{DSN: "pickup.db"}},
	})

	require.NoError(t, cfg.validate())
	assert.Equal(t, defaultClientRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := ClientConfig{
		Adapter: ClientAdapter{HTTPAddress: "localhost:8080", Token: "t", RequestTimeout: time.Second},
		Storage: ClientStorage{DSN: "pickup.db"},
		Workers: ClientWorkers{RefreshInterval: time.Second},
	}

	tests := []struct {
		name   string
		mutate func(c *ClientConfig)
		want   error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{name: "in-memory dsn", mutate: func(c *ClientConfig) { c.Storage.DSN = ":memory:" }, want: ErrInvalidStorageConfigs},
		{name: "no token", mutate: func(c *ClientConfig) { c.Adapter.Token = "" }, want: ErrInvalidAdapterConfigs},
		{name: "no address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, want: ErrInvalidAdapterConfigs},
		{name: "no interval", mutate: func(c *ClientConfig) { c.Workers.RefreshInterval = 0 }, want: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── NetAddress ───────────────────────────────────────────────────────────────

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "localhost:8080"},
		{in: "127.0.0.1:9000", want: "127.0.0.1:9000"},
		{in: ":8080", want: ":8080"},
		{in: "example.com:80", wantErr: true},
		{in: "localhost", wantErr: true},
		{in: "localhost:0", wantErr: true},
		{in: "localhost:http", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}
