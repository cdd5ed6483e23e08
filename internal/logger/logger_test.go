// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// ── constructors ─────────────────────────────────────────────────────────────

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "server")

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

// ── child loggers ────────────────────────────────────────────────────────────

func TestWithField_DoesNotTouchParent(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "client")
	child := parent.WithField("parent_key", "game-42")

	child.Info().Msg("child")
	assert.Equal(t, "game-42", decodeEntry(t, &buf)["parent_key"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decodeEntry(t, &buf), "parent_key")
}

func TestGetChildLogger_InheritsRole(t *testing.T) {
	var buf bytes.Buffer
	child := newLogger(&buf, "server").GetChildLogger()

	child.Info().Msg("x")
	assert.Equal(t, "server", decodeEntry(t, &buf)["role"])
}

// ── context helpers ──────────────────────────────────────────────────────────

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "ctx")
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from ctx")
	assert.Equal(t, "ctx", decodeEntry(t, &buf)["role"])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "req")
	r := httptest.NewRequest("GET", "/health", nil)
	r = r.WithContext(l.WithContext(r.Context()))

	FromRequest(r).Info().Msg("from request")
	assert.Equal(t, "req", decodeEntry(t, &buf)["role"])
}
