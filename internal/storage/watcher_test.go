// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
)

func TestWatcher_ReportsOtherInstanceWrites(t *testing.T) {
	dir := t.TempDir()
	mineKV, err := NewFileKV(dir)
	require.NoError(t, err)
	otherKV, err := NewFileKV(dir)
	require.NoError(t, err)

	w, err := NewWatcher(mineKV, 20*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Close()

	mine := NewMessageStore(mineKV)
	mine.Load()

	other := NewMessageStore(otherKV)
	require.NoError(t, other.Append(model.NewUserMessage("다른 창에서")))

	select {
	case <-w.Changes():
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}

	require.True(t, mine.Reload())
	require.Equal(t, "다른 창에서", mine.Messages()[0].Content)
}

func TestWatcher_IgnoresRemovalAndOtherKeys(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	require.NoError(t, err)
	require.NoError(t, kv.Set(KeyMessages, []byte("[]")))

	w, err := NewWatcher(kv, 20*time.Millisecond, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, kv.Delete(KeyMessages))
	require.NoError(t, kv.Set(KeyConversationID, []byte("abc")))

	select {
	case <-w.Changes():
		t.Fatal("unexpected change")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_CloseClosesChannel(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	w, err := NewWatcher(kv, 0, nil)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	_, ok := <-w.Changes()
	require.False(t, ok)
}
