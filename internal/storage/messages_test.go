// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
)

// failingKV fails writes on demand.
type failingKV struct {
	*MemoryKV
	failSet    bool
	failDelete bool
}

func (f *failingKV) Set(key string, value []byte) error {
	if f.failSet {
		return errors.New("disk full")
	}
	return f.MemoryKV.Set(key, value)
}

func (f *failingKV) Delete(key string) error {
	if f.failDelete {
		return errors.New("read-only")
	}
	return f.MemoryKV.Delete(key)
}

// =============================================================================
// LOAD TESTS
// =============================================================================

func TestMessageStore_LoadEmpty(t *testing.T) {
	store := NewMessageStore(NewMemoryKV())
	require.Empty(t, store.Load())
	require.Equal(t, 0, store.Len())
}

func TestMessageStore_LoadCorruptIsEmpty(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(KeyMessages, []byte("{not json")))

	store := NewMessageStore(kv)
	require.Empty(t, store.Load())
}

func TestMessageStore_LoadLegacyRecords(t *testing.T) {
	kv := NewMemoryKV()
	raw := `[{"role":"user","content":"한남동 공원"},` +
		`{"role":"ai","type":"map","content":"","link":"https://map.example",` +
		`"data":{"center":{"lat":37.533,"lng":127.002},"markers":[{"name":"한남어린이공원","lat":37.5341,"lng":127.0013}]}}]`
	require.NoError(t, kv.Set(KeyMessages, []byte(raw)))

	msgs := NewMessageStore(kv).Load()
	require.Len(t, msgs, 2)
	require.Equal(t, model.RoleAssistant, msgs[1].Role)
	require.True(t, msgs[1].HasMap())
	require.Equal(t, "https://map.example", msgs[1].Link)
}

// =============================================================================
// APPEND TESTS
// =============================================================================

func TestMessageStore_AppendPersists(t *testing.T) {
	kv := NewMemoryKV()
	store := NewMessageStore(kv)
	store.Load()

	require.NoError(t, store.Append(model.NewUserMessage("안녕")))
	require.NoError(t, store.Append(model.NewAssistantText("반가워요")))

	reopened := NewMessageStore(kv).Load()
	require.Len(t, reopened, 2)
	require.Equal(t, "안녕", reopened[0].Content)
	require.Equal(t, "반가워요", reopened[1].Content)
}

func TestMessageStore_AppendFailureLeavesMemory(t *testing.T) {
	kv := &failingKV{MemoryKV: NewMemoryKV()}
	store := NewMessageStore(kv)
	require.NoError(t, store.Append(model.NewUserMessage("one")))

	kv.failSet = true
	require.Error(t, store.Append(model.NewUserMessage("two")))
	require.Equal(t, 1, store.Len())
}

func TestMessageStore_MessagesIsCopy(t *testing.T) {
	store := NewMessageStore(NewMemoryKV())
	require.NoError(t, store.Append(model.NewMapMessage("", "", &model.MapData{
		Markers: []model.Marker{{Name: "보광어린이공원"}},
	})))

	msgs := store.Messages()
	msgs[0].Map.Markers[0].Name = "changed"
	msgs[0].Content = "changed"

	again := store.Messages()
	require.Equal(t, "보광어린이공원", again[0].Map.Markers[0].Name)
	require.Equal(t, "", again[0].Content)
}

// =============================================================================
// CLEAR / PURGE TESTS
// =============================================================================

func TestMessageStore_ClearLeavesWelcome(t *testing.T) {
	kv := NewMemoryKV()
	store := NewMessageStore(kv)
	for i := 0; i < 3; i++ {
		require.NoError(t, store.Append(model.NewUserMessage("msg")))
	}

	require.NoError(t, store.Clear())
	msgs := store.Messages()
	require.Len(t, msgs, 1)
	require.Equal(t, model.WelcomeText, msgs[0].Content)

	persisted := NewMessageStore(kv).Load()
	require.Len(t, persisted, 1)
	require.Equal(t, model.WelcomeText, persisted[0].Content)
}

func TestMessageStore_ClearKeepsConversationID(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(KeyConversationID, []byte("abc")))

	store := NewMessageStore(kv)
	require.NoError(t, store.Clear())
	require.NoError(t, store.Purge())

	id, err := kv.Get(KeyConversationID)
	require.NoError(t, err)
	require.Equal(t, "abc", string(id))
}

func TestMessageStore_ClearPersistFailure(t *testing.T) {
	kv := &failingKV{MemoryKV: NewMemoryKV()}
	store := NewMessageStore(kv)
	require.NoError(t, store.Append(model.NewUserMessage("msg")))

	kv.failSet = true
	require.Error(t, store.Clear())
	require.Equal(t, 1, store.Len())
	require.Equal(t, model.WelcomeText, store.Messages()[0].Content)
}

func TestMessageStore_ClearDeleteFailureOverwrites(t *testing.T) {
	kv := &failingKV{MemoryKV: NewMemoryKV()}
	store := NewMessageStore(kv)
	require.NoError(t, store.Append(model.NewUserMessage("a")))
	require.NoError(t, store.Append(model.NewAssistantText("b")))

	kv.failDelete = true
	require.NoError(t, store.Clear())
	require.Equal(t, 1, store.Len())

	persisted := NewMessageStore(kv).Load()
	require.Len(t, persisted, 1)
	require.Equal(t, model.WelcomeText, persisted[0].Content)
}

func TestMessageStore_ClearDeleteAndPersistFailure(t *testing.T) {
	kv := &failingKV{MemoryKV: NewMemoryKV()}
	store := NewMessageStore(kv)
	require.NoError(t, store.Append(model.NewUserMessage("a")))

	kv.failDelete = true
	kv.failSet = true
	err := store.Clear()
	require.Error(t, err)
	require.Contains(t, err.Error(), "disk full")
	require.Contains(t, err.Error(), "read-only")
	require.Equal(t, model.WelcomeText, store.Messages()[0].Content)
}

func TestMessageStore_PurgeKeepsMemory(t *testing.T) {
	kv := NewMemoryKV()
	store := NewMessageStore(kv)
	require.NoError(t, store.Append(model.NewUserMessage("msg")))

	require.NoError(t, store.Purge())
	require.Equal(t, 1, store.Len())

	_, err := kv.Get(KeyMessages)
	require.ErrorIs(t, err, ErrNotFound)
}

// =============================================================================
// RELOAD TESTS
// =============================================================================

func TestMessageStore_Reload(t *testing.T) {
	kv := NewMemoryKV()
	mine := NewMessageStore(kv)
	mine.Load()
	other := NewMessageStore(kv)
	other.Load()

	require.NoError(t, mine.Append(model.NewUserMessage("mine")))
	require.False(t, mine.Reload(), "own write should not count as a change")

	require.True(t, other.Reload())
	require.Equal(t, 1, other.Len())
	require.Equal(t, "mine", other.Messages()[0].Content)

	require.False(t, other.Reload())
}

func TestMessageStore_LastMap(t *testing.T) {
	store := NewMessageStore(NewMemoryKV())
	_, ok := store.LastMap()
	require.False(t, ok)

	require.NoError(t, store.Append(model.NewMapMessage("first", "", &model.MapData{
		Markers: []model.Marker{{Name: "a"}},
	})))
	require.NoError(t, store.Append(model.NewMapMessage("second", "", &model.MapData{
		Markers: []model.Marker{{Name: "b"}},
	})))
	require.NoError(t, store.Append(model.NewAssistantText("text")))

	msg, ok := store.LastMap()
	require.True(t, ok)
	require.Equal(t, "second", msg.Content)
}
