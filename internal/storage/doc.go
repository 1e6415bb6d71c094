// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides local persistence for the chat client.
//
// State lives in a small key/value store under the data directory
// (~/.kidsguide by default). Two keys are used:
//
//   - chatMessages: the JSON-encoded message list
//   - conversation_id: the server-issued conversation identifier
//
// # Key Types
//
//   - KV: backend interface, implemented by FileKV, SQLiteKV and MemoryKV
//   - MessageStore: the ordered thread with write-through persistence
//   - Watcher: reports history writes made by other running instances
//
// # Usage
//
//	kv, err := storage.Open(storage.BackendFile, dataDir)
//	store := storage.NewMessageStore(kv)
//	msgs := store.Load()
//	err = store.Append(model.NewUserMessage("한남동 공원 추천해줘"))
//
// Use errors.Is(err, storage.ErrNotFound) to detect absent keys.
package storage
