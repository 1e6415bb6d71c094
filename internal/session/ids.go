// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session manages the conversation identifier.
package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/wkdwlgus/kids-chatbot-service/internal/storage"
)

// =============================================================================
// CONVERSATION ID STORE
// =============================================================================

// IDStore persists the conversation identifier under
// storage.KeyConversationID. The identifier survives thread resets and
// client exits; only the server may replace it.
type IDStore struct {
	mu  sync.Mutex
	kv  storage.KV
	gen func() string
}

// NewIDStore creates an identifier store over kv.
func NewIDStore(kv storage.KV) *IDStore {
	return &IDStore{kv: kv, gen: uuid.NewString}
}

// Ensure returns the persisted identifier, generating and persisting a new
// random one only when none exists.
func (s *IDStore) Ensure() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.read()
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}

	id = s.gen()
	if err := s.kv.Set(storage.KeyConversationID, []byte(id)); err != nil {
		return "", fmt.Errorf("failed to persist conversation id: %w", err)
	}
	return id, nil
}

// Current returns the persisted identifier or "" when there is none or it
// cannot be read.
func (s *IDStore) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, _ := s.read()
	return id
}

// Update replaces the persisted identifier with id. Empty ids and the
// current value are ignored. Reports whether the stored value changed.
func (s *IDStore) Update(id string) (bool, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, _ := s.read()
	if current == id {
		return false, nil
	}
	if err := s.kv.Set(storage.KeyConversationID, []byte(id)); err != nil {
		return false, fmt.Errorf("failed to persist conversation id: %w", err)
	}
	return true, nil
}

// read returns the stored identifier; absence is "" with no error.
func (s *IDStore) read() (string, error) {
	raw, err := s.kv.Get(storage.KeyConversationID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read conversation id: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}
