// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
	"github.com/wkdwlgus/kids-chatbot-service/internal/ui/components"
	"github.com/wkdwlgus/kids-chatbot-service/internal/ui/styles"
	"github.com/wkdwlgus/kids-chatbot-service/internal/util"
)

// replyPrinter writes messages for the line-mode commands. Terminals get
// the same bubbles as the full-screen client; anything else gets plain
// text.
type replyPrinter struct {
	out    io.Writer
	width  int
	bubble *components.Bubble // nil for plain output
}

func newReplyPrinter(out io.Writer, theme string, logger *slog.Logger) *replyPrinter {
	p := &replyPrinter{out: out, width: GetTerminalWidth(out)}
	mode := themeMode(out, theme)
	if mode == styles.ModeNoTTY {
		return p
	}
	t := styles.NewThemeFor(out, mode)
	t.SetSize(p.width, 0)
	md := components.NewMarkdown(t.GlamourStyle(), logger)
	p.bubble = components.NewBubble(t, md, components.NewTerminalMap(t))
	return p
}

// Print writes msg followed by a blank line.
func (p *replyPrinter) Print(msg model.Message) {
	if p.bubble != nil {
		fmt.Fprintln(p.out, p.bubble.Render(msg, p.width, components.NoSelection))
		fmt.Fprintln(p.out)
		return
	}
	fmt.Fprintln(p.out, plainMessage(msg))
}

// plainMessage renders msg without styling: the text, then one line per
// marker, then the map link.
func plainMessage(msg model.Message) string {
	var lines []string
	if text := strings.TrimSpace(util.StripControl(msg.Content)); text != "" {
		lines = append(lines, text)
	}
	if msg.Map != nil {
		for n, mk := range msg.Map.Markers {
			line := fmt.Sprintf("%d. %s", n+1, mk.Name)
			if mk.Description != "" {
				line += " - " + mk.Description
			}
			lines = append(lines, util.StripControl(line))
		}
	}
	if msg.Link != "" {
		lines = append(lines, model.MapLinkLabel+": "+util.StripControl(msg.Link))
	}
	return strings.Join(lines, "\n")
}
