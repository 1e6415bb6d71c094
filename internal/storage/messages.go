// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides local persistence for the chat client.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
)

// =============================================================================
// MESSAGE STORE
// =============================================================================

// MessageStore is the ordered message list of the current conversation,
// mirrored to the KV entry KeyMessages. Every mutation persists the full
// updated list before it is committed in memory.
type MessageStore struct {
	kv     KV
	logger *slog.Logger

	mu       sync.RWMutex
	messages []model.Message
	lastRaw  []byte // Bytes last read from or written to the KV
}

// MessageStoreOption configures a MessageStore.
type MessageStoreOption func(*MessageStore)

// WithLogger sets the logger used for soft failures.
func WithLogger(logger *slog.Logger) MessageStoreOption {
	return func(s *MessageStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewMessageStore creates an empty store over kv. Call Load to read the
// persisted list.
func NewMessageStore(kv KV, opts ...MessageStoreOption) *MessageStore {
	s := &MessageStore{
		kv:     kv,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// =============================================================================
// LOAD OPERATIONS
// =============================================================================

// Load reads the persisted list. An absent or unparsable entry yields an
// empty list; read failures are logged, never returned.
func (s *MessageStore) Load() []model.Message {
	msgs, raw := s.read()

	s.mu.Lock()
	s.messages = msgs
	s.lastRaw = raw
	s.mu.Unlock()

	return cloneMessages(msgs)
}

// Reload re-reads the persisted list after another instance changed it and
// reports whether the in-memory list was replaced.
func (s *MessageStore) Reload() bool {
	msgs, raw := s.read()

	s.mu.Lock()
	defer s.mu.Unlock()

	if bytes.Equal(raw, s.lastRaw) {
		return false
	}
	s.messages = msgs
	s.lastRaw = raw
	return true
}

// read fetches and decodes the persisted list.
func (s *MessageStore) read() ([]model.Message, []byte) {
	raw, err := s.kv.Get(KeyMessages)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logger.Warn("failed to read message history", "error", err)
		}
		return nil, nil
	}

	var msgs []model.Message
	if err := json.Unmarshal(raw, &msgs); err != nil {
		s.logger.Warn("discarding unreadable message history", "error", err, "bytes", len(raw))
		return nil, raw
	}
	return msgs, raw
}

// =============================================================================
// MUTATIONS
// =============================================================================

// Append adds msg to the end of the list. On a persistence failure the
// in-memory list is left unchanged and the error is returned.
func (s *MessageStore) Append(msg model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]model.Message, len(s.messages), len(s.messages)+1)
	copy(next, s.messages)
	next = append(next, msg.Clone())

	raw, err := s.persist(next)
	if err != nil {
		return err
	}
	s.messages = next
	s.lastRaw = raw
	return nil
}

// Clear empties the list, removes the persisted entry and stores the
// welcome message in its place. The in-memory result is always exactly the
// welcome message. A failed delete is tolerated when the welcome list can
// still overwrite the entry; a failed write is returned to the caller.
func (s *MessageStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	welcome := []model.Message{model.WelcomeMessage()}
	delErr := s.kv.Delete(KeyMessages)
	if delErr != nil {
		delErr = fmt.Errorf("failed to delete message history: %w", delErr)
		s.logger.Warn("overwriting message history in place", "error", delErr)
	}

	raw, err := s.persist(welcome)
	s.messages = welcome
	if err != nil {
		s.lastRaw = nil
		return errors.Join(err, delErr)
	}
	s.lastRaw = raw
	return nil
}

// Purge deletes the persisted entry without touching the in-memory list or
// the conversation identifier. It runs when the client exits.
func (s *MessageStore) Purge() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Delete(KeyMessages); err != nil {
		return fmt.Errorf("failed to purge message history: %w", err)
	}
	s.lastRaw = nil
	return nil
}

// persist writes msgs to the KV. Caller holds mu.
func (s *MessageStore) persist(msgs []model.Message) ([]byte, error) {
	raw, err := json.Marshal(msgs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode messages: %w", err)
	}
	if err := s.kv.Set(KeyMessages, raw); err != nil {
		return nil, fmt.Errorf("failed to persist messages: %w", err)
	}
	return raw, nil
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Messages returns a copy of the list.
func (s *MessageStore) Messages() []model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMessages(s.messages)
}

// Len returns the number of messages.
func (s *MessageStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}

// LastMap returns the most recent message carrying map markers.
func (s *MessageStore) LastMap() (model.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].HasMap() {
			return s.messages[i].Clone(), true
		}
	}
	return model.Message{}, false
}

func cloneMessages(msgs []model.Message) []model.Message {
	out := make([]model.Message, len(msgs))
	for i, m := range msgs {
		out[i] = m.Clone()
	}
	return out
}
