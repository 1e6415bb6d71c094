// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/require"

	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
)

func newTestTyping(t *testing.T) Typing {
	t.Helper()
	return NewTyping(plainTheme(t), model.TypingPhrases, time.Millisecond)
}

func TestTyping_AdvancesAndHalts(t *testing.T) {
	ty := newTestTyping(t)
	require.False(t, ty.Active())
	require.Empty(t, ty.View())

	require.NotNil(t, ty.Start())
	require.True(t, ty.Active())
	require.Equal(t, model.TypingPhrases[0], ty.Phrase())

	gen := ty.Generation()

	ty, next := ty.Update(TypingTickMsg{Generation: gen})
	require.Equal(t, 1, ty.Phase())
	require.NotNil(t, next, "a tick is scheduled until the last phrase")

	ty, next = ty.Update(TypingTickMsg{Generation: gen})
	require.Equal(t, 2, ty.Phase())
	require.Equal(t, model.TypingPhrases[2], ty.Phrase())
	require.Nil(t, next, "no tick after the last phrase")

	ty, _ = ty.Update(TypingTickMsg{Generation: gen})
	require.Equal(t, 2, ty.Phase())
}

func TestTyping_StaleTicksIgnored(t *testing.T) {
	ty := newTestTyping(t)
	ty.Start()
	old := ty.Generation()

	ty.Stop()
	ty.Start()
	require.NotEqual(t, old, ty.Generation())

	ty, cmd := ty.Update(TypingTickMsg{Generation: old})
	require.Equal(t, 0, ty.Phase())
	require.Nil(t, cmd)
}

func TestTyping_StoppedSchedulesNothing(t *testing.T) {
	ty := newTestTyping(t)
	ty.Start()
	gen := ty.Generation()
	ty.Stop()

	ty, cmd := ty.Update(TypingTickMsg{Generation: gen})
	require.Nil(t, cmd)
	require.False(t, ty.Active())
	require.Empty(t, ty.Phrase())

	_, cmd = ty.Update(spinner.TickMsg{})
	require.Nil(t, cmd)
}

func TestTyping_ViewShowsPhrase(t *testing.T) {
	ty := newTestTyping(t)
	ty.Start()
	require.Contains(t, ty.View(), model.TypingPhrases[0])
}
