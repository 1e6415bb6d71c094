// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import "github.com/wkdwlgus/kids-chatbot-service/internal/conversation"

// replyMsg carries the outcome of one exchange back to Update.
type replyMsg struct {
	result conversation.Result
}

// storeChangedMsg reports that another instance rewrote the history.
type storeChangedMsg struct{}

// watcherClosedMsg reports that the change feed ended.
type watcherClosedMsg struct{}
