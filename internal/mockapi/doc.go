// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mockapi is a development stand-in for the recommendation backend.
//
// # Endpoints
//
//   - POST /api/chat - canned replies
//   - GET  /health   - liveness and request count
//
// Messages mentioning 한남동 receive a map reply with two nearby parks;
// anything else is echoed back as a "preparing" text reply. A conversation
// id is issued when the request carries none.
//
// # Middleware
//
//   - Panic recovery
//   - Request logging (log/slog)
//   - CORS for the web client's dev servers
//   - Per-IP rate limiting (golang.org/x/time/rate)
//   - Request body size limit
//
// # Usage
//
//	srv := mockapi.NewServer(mockapi.Config{Addr: "127.0.0.1:8080", Latency: 500 * time.Millisecond})
//	err := srv.ListenAndServe(ctx)
package mockapi
