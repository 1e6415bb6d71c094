// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wkdwlgus/kids-chatbot-service/internal/conversation"
)

// fetchCmd runs the network exchange off the UI goroutine.
func fetchCmd(ctx context.Context, svc *conversation.Service, text string) tea.Cmd {
	return func() tea.Msg {
		return replyMsg{result: svc.Fetch(ctx, text)}
	}
}

// waitForChange blocks until the change source fires once.
func waitForChange(src ChangeSource) tea.Cmd {
	if src == nil {
		return nil
	}
	ch := src.Changes()
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return watcherClosedMsg{}
		}
		return storeChangedMsg{}
	}
}
