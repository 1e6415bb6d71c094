// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
	"github.com/wkdwlgus/kids-chatbot-service/internal/util"
)

// =============================================================================
// HISTORY FORMATTING
// =============================================================================

// FormatHistory formats a thread as plain text for the history command.
func FormatHistory(msgs []model.Message) string {
	if len(msgs) == 0 {
		return "저장된 대화가 없어요."
	}

	var sb strings.Builder
	for i, msg := range msgs {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(util.PadRight(msg.Role.DisplayName(), 8))
		if !msg.CreatedAt.IsZero() {
			sb.WriteString(msg.CreatedAt.Format("2006-01-02 15:04"))
		}
		sb.WriteString("\n")

		if msg.Content != "" {
			sb.WriteString(util.StripControl(msg.Content))
			sb.WriteString("\n")
		}
		if msg.Map != nil {
			for n, mk := range msg.Map.Markers {
				line := fmt.Sprintf("  %d. %s", n+1, mk.Name)
				if mk.Description != "" {
					line += " - " + mk.Description
				}
				sb.WriteString(util.StripControl(line))
				sb.WriteString("\n")
			}
		}
		if msg.Link != "" {
			sb.WriteString("  지도: " + util.StripControl(msg.Link) + "\n")
		}
	}
	return sb.String()
}

// ExportMarkdown renders a thread as a Markdown document.
func ExportMarkdown(msgs []model.Message, conversationID string) string {
	var sb strings.Builder
	sb.WriteString("# 키즈 액티비티 가이드 대화\n\n")
	if conversationID != "" {
		sb.WriteString("Conversation: `" + conversationID + "`\n\n")
	}
	sb.WriteString("---\n\n")

	for _, msg := range msgs {
		stamp := ""
		if !msg.CreatedAt.IsZero() {
			stamp = " (" + msg.CreatedAt.Format(time.Kitchen) + ")"
		}
		sb.WriteString("**" + msg.Role.DisplayName() + "**" + stamp + ":\n\n")
		if msg.Content != "" {
			sb.WriteString(msg.Content + "\n\n")
		}
		if msg.Map != nil {
			for _, mk := range msg.Map.Markers {
				sb.WriteString("- " + mk.Name)
				if mk.Description != "" {
					sb.WriteString(": " + mk.Description)
				}
				sb.WriteString("\n")
			}
			sb.WriteString("\n")
		}
		if msg.Link != "" {
			sb.WriteString("[지도 크게 보기](" + msg.Link + ")\n\n")
		}
		sb.WriteString("---\n\n")
	}
	return sb.String()
}
