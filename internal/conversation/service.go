// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package conversation runs the request/response lifecycle of one exchange.
package conversation

import (
	"context"
	"log/slog"
	"time"

	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
	"github.com/wkdwlgus/kids-chatbot-service/internal/session"
	"github.com/wkdwlgus/kids-chatbot-service/internal/storage"
)

// Sender delivers a message to the chat backend. *chatapi.Client
// implements it.
type Sender interface {
	Send(ctx context.Context, text, conversationID string) (model.Reply, error)
}

// Result is the outcome of Fetch. Exactly one of Reply and Err is set.
type Result struct {
	Text     string
	Reply    model.Reply
	Err      error
	Duration time.Duration
}

// Service ties the backend client to the message and identifier stores.
type Service struct {
	Client Sender
	Store  *storage.MessageStore
	IDs    *session.IDStore
	Logger *slog.Logger
}

// NewService creates a service. A nil logger uses slog.Default().
func NewService(client Sender, store *storage.MessageStore, ids *session.IDStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{Client: client, Store: store, IDs: ids, Logger: logger}
}

// Submit appends the user's message to the thread. A persistence failure is
// logged; the message is still returned so the caller can proceed.
func (s *Service) Submit(text string) model.Message {
	msg := model.NewUserMessage(text)
	if err := s.Store.Append(msg); err != nil {
		s.Logger.Error("failed to store user message", "error", err)
	}
	return msg
}

// Fetch performs the network exchange only. It touches no store except to
// read the current conversation identifier, so it may run off the UI
// goroutine.
func (s *Service) Fetch(ctx context.Context, text string) Result {
	start := time.Now()
	reply, err := s.Client.Send(ctx, text, s.IDs.Current())
	return Result{Text: text, Reply: reply, Err: err, Duration: time.Since(start)}
}

// Apply records the outcome of Fetch: the identifier is updated when the
// reply carries one, and exactly one assistant message (the reply or the
// apology) is appended. Errors are logged, never returned.
func (s *Service) Apply(res Result) model.Message {
	if res.Err != nil || res.Reply == nil {
		s.Logger.Warn("chat exchange failed", "error", res.Err, "duration", res.Duration)
		msg := model.ApologyMessage()
		s.append(msg)
		return msg
	}

	if id := res.Reply.ConversationID(); id != "" {
		changed, err := s.IDs.Update(id)
		if err != nil {
			s.Logger.Error("failed to store conversation id", "error", err)
		} else if changed {
			s.Logger.Info("conversation id updated")
		}
	}

	msg := res.Reply.Message()
	s.append(msg)
	s.Logger.Debug("chat exchange complete", "kind", msg.Kind.String(), "duration", res.Duration)
	return msg
}

// Exchange submits text and waits for the reply. Used by the line-mode and
// one-shot commands.
func (s *Service) Exchange(ctx context.Context, text string) model.Message {
	s.Submit(text)
	return s.Apply(s.Fetch(ctx, text))
}

func (s *Service) append(msg model.Message) {
	if err := s.Store.Append(msg); err != nil {
		s.Logger.Error("failed to store reply", "error", err)
	}
}
