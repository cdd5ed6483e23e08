// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the go-pickup server.
//
// It serves the PostgREST-style collection endpoints under /rest/v1, the
// realtime websocket under /realtime/v1/websocket and a few public
// informational routes. Tracing, access logging, bearer authentication and
// response compression are handled here before requests reach the service
// layer.
package http
