// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package mockapi is a development stand-in for the recommendation backend.
package mockapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/wkdwlgus/kids-chatbot-service/internal/chatapi"
	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
)

// ============================================================================
// CONSTANTS
// ============================================================================

const (
	// DefaultAddr is where the client looks for the backend by default.
	DefaultAddr = "127.0.0.1:8080"

	// DefaultLatency mimics a slow recommendation engine.
	DefaultLatency = 500 * time.Millisecond

	// DefaultRatePerMinute is the per-IP request budget.
	DefaultRatePerMinute = 120

	// MaxRequestBodySize limits request bodies (64KB).
	MaxRequestBodySize = 64 * 1024

	// MaxMessageLength is the longest accepted message, in runes.
	MaxMessageLength = 2000

	// Version is the mock server version.
	Version = "0.1.0"
)

// hannamKeyword triggers the map reply.
const hannamKeyword = "한남동"

// hannamParks is the map payload returned for Hannam-dong.
var hannamParks = model.MapData{
	Center: model.LatLng{Latitude: 37.533, Longitude: 127.002},
	Markers: []model.Marker{
		{Name: "한남어린이공원", Latitude: 37.5341, Longitude: 127.0013, Description: "그늘 많음"},
		{Name: "보광어린이공원", Latitude: 37.5298, Longitude: 127.0025, Description: "놀이터 완비"},
	},
}

// ============================================================================
// SERVER
// ============================================================================

// Config configures the mock server.
type Config struct {
	Addr          string
	Latency       time.Duration // Zero replies immediately
	RatePerMinute int
	CORS          *CORSConfig
	Logger        *slog.Logger
}

// Server serves POST /api/chat with canned replies.
type Server struct {
	cfg     Config
	logger  *slog.Logger
	router  *http.ServeMux
	server  *http.Server
	started time.Time
	served  atomic.Int64
}

// NewServer creates a server. Zero-valued fields of cfg take defaults,
// except Latency.
func NewServer(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.RatePerMinute <= 0 {
		cfg.RatePerMinute = DefaultRatePerMinute
	}
	if cfg.CORS == nil {
		cfg.CORS = DefaultCORSConfig()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	s := &Server{
		cfg:     cfg,
		logger:  cfg.Logger,
		router:  http.NewServeMux(),
		started: time.Now(),
	}
	s.setupRoutes()
	return s
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.cfg.Addr
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	s.router.HandleFunc("POST "+chatapi.DefaultPath, s.handleChat)
	s.router.HandleFunc("GET /health", s.handleHealth)
}

// Handler returns the routes wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	return Chain(
		RecoveryMiddleware(s.logger),
		LoggingMiddleware(s.logger),
		CORSMiddleware(s.cfg.CORS),
		RateLimitMiddleware(NewRateLimiter(s.cfg.RatePerMinute), s.logger),
		BodyLimitMiddleware(MaxRequestBodySize),
	)(s.router)
}

// ============================================================================
// CHAT HANDLER
// ============================================================================

// Reply is the JSON body returned by POST /api/chat.
type Reply struct {
	Type           string         `json:"type"`
	Content        string         `json:"content"`
	Link           string         `json:"link,omitempty"`
	Data           *model.MapData `json:"data,omitempty"`
	ConversationID string         `json:"conversation_id"`
}

// handleChat handles POST /api/chat.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatapi.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	text := strings.TrimSpace(req.Message)
	if text == "" {
		s.writeError(w, http.StatusBadRequest, "message is required")
		return
	}
	if len([]rune(text)) > MaxMessageLength {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("message exceeds %d characters", MaxMessageLength))
		return
	}

	if s.cfg.Latency > 0 {
		select {
		case <-time.After(s.cfg.Latency):
		case <-r.Context().Done():
			return
		}
	}

	id := strings.TrimSpace(req.ConversationID)
	if id == "" {
		id = uuid.NewString()
	}

	s.served.Add(1)
	s.writeJSON(w, http.StatusOK, Respond(text, id))
}

// Respond builds the canned reply for text.
func Respond(text, conversationID string) Reply {
	if strings.Contains(text, hannamKeyword) {
		return Reply{
			Type:           "map",
			Content:        "한남동 근처 아이와 가기 좋은 공원이에요 🌳",
			Link:           "https://map.kakao.com/link/search/" + url.PathEscape(hannamKeyword+" 어린이공원"),
			Data:           hannamParks.Clone(),
			ConversationID: conversationID,
		}
	}
	return Reply{
		Type:           "text",
		Content:        fmt.Sprintf("“%s” 에 대한 정보를 준비 중이에요 💬", text),
		ConversationID: conversationID,
	}
}

// ============================================================================
// HEALTH HANDLER
// ============================================================================

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	Served        int64  `json:"served"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:        "ok",
		Version:       Version,
		Served:        s.served.Load(),
		UptimeSeconds: int64(time.Since(s.started).Seconds()),
	})
}

// ============================================================================
// SERVER LIFECYCLE
// ============================================================================

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.server = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("mock backend listening", "addr", ln.Addr().String(), "version", Version)
		errCh <- s.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("mock backend shutting down")
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		return nil
	}
}

// ============================================================================
// HELPERS
// ============================================================================

// writeJSON writes a JSON response.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("failed to write response", "error", err)
	}
}

// writeError writes a JSON error response.
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": message,
			"code":    status,
		},
	})
}
