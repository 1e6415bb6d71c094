// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings of the page.
type KeyMap struct {
	Send         key.Binding
	NextPrompt   key.Binding
	PrevPrompt   key.Binding
	NextMarker   key.Binding
	PrevMarker   key.Binding
	ClosePopover key.Binding
	Clear        key.Binding
	Export       key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "보내기"),
		),
		NextPrompt: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "추천 질문"),
		),
		PrevPrompt: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "이전 추천"),
		),
		NextMarker: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("C-n/C-p", "장소 선택"),
		),
		PrevMarker: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("C-p", "이전 장소"),
		),
		ClosePopover: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "닫기"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", model.ClearLabel),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "내보내기"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "위로"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "아래로"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "종료"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.NextPrompt, k.NextMarker, k.Clear, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.NextPrompt, k.PrevPrompt},
		{k.NextMarker, k.PrevMarker, k.ClosePopover},
		{k.PageUp, k.PageDown, k.Clear, k.Export, k.Quit},
	}
}

// landingKeys is the subset shown before the first message.
type landingKeys struct{ KeyMap }

// ShortHelp implements help.KeyMap.
func (k landingKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.NextPrompt, k.Quit}
}
