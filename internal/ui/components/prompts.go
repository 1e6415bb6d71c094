// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wkdwlgus/kids-chatbot-service/internal/ui/styles"
	"github.com/wkdwlgus/kids-chatbot-service/internal/util"
)

// =============================================================================
// EXAMPLE PROMPTS
// =============================================================================

// Prompts is a cyclable list of suggested questions.
type Prompts struct {
	items  []string
	cursor int
	theme  *styles.Theme
}

// NewPrompts creates a prompt list with nothing highlighted.
func NewPrompts(theme *styles.Theme, items []string) *Prompts {
	return &Prompts{items: append([]string(nil), items...), cursor: NoSelection, theme: theme}
}

// Items returns the prompts.
func (p *Prompts) Items() []string {
	return append([]string(nil), p.items...)
}

// Next highlights the following prompt, wrapping around, and returns it.
func (p *Prompts) Next() string {
	if len(p.items) == 0 {
		return ""
	}
	p.cursor = (p.cursor + 1) % len(p.items)
	return p.items[p.cursor]
}

// Prev highlights the preceding prompt, wrapping around, and returns it.
func (p *Prompts) Prev() string {
	if len(p.items) == 0 {
		return ""
	}
	if p.cursor <= 0 {
		p.cursor = len(p.items) - 1
	} else {
		p.cursor--
	}
	return p.items[p.cursor]
}

// Selected returns the highlighted prompt.
func (p *Prompts) Selected() (string, bool) {
	if p.cursor < 0 || p.cursor >= len(p.items) {
		return "", false
	}
	return p.items[p.cursor], true
}

// Reset removes the highlight.
func (p *Prompts) Reset() {
	p.cursor = NoSelection
}

// View renders the prompts side by side when they fit, stacked otherwise.
func (p *Prompts) View(width int) string {
	if len(p.items) == 0 {
		return ""
	}
	chips := make([]string, len(p.items))
	total := 0
	for i, item := range p.items {
		text := util.TruncateWidth(item, max(width-4, 6))
		if i == p.cursor {
			chips[i] = p.theme.PromptSelected.Render(text)
		} else {
			chips[i] = p.theme.PromptItem.Render(text)
		}
		total += lipgloss.Width(chips[i]) + 1
	}
	if total <= width {
		return lipgloss.JoinHorizontal(lipgloss.Top, spaced(chips)...)
	}
	return strings.Join(chips, "\n")
}

func spaced(chips []string) []string {
	out := make([]string, 0, len(chips)*2)
	for i, c := range chips {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, c)
	}
	return out
}
