// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
	"github.com/wkdwlgus/kids-chatbot-service/internal/ui/styles"
)

// =============================================================================
// HERO (LANDING) VIEW
// =============================================================================

// Hero is the landing screen shown before the first message is sent.
type Hero struct {
	width  int
	height int
	theme  *styles.Theme
}

// NewHero creates a landing view.
func NewHero(theme *styles.Theme) Hero {
	return Hero{width: 80, height: 24, theme: theme}
}

// SetSize sets the area the hero is centered in.
func (h *Hero) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// ContentWidth is the width of the input and prompt column.
func (h Hero) ContentWidth() int {
	return clamp(h.width-8, 20, 72)
}

// View renders the headline, subtitle, input and prompts centered in the
// area. input and prompts are rendered by their owners.
func (h Hero) View(input, prompts string) string {
	w := h.ContentWidth()

	blocks := []string{
		h.theme.HeroTitle.Width(w).Render(model.AppTitle),
		"",
		h.theme.HeroTitle.Width(w).Render(model.HeroHeadline),
	}
	if h.height >= 14 {
		blocks = append(blocks, h.theme.HeroSubtitle.Width(w).Render(model.HeroSubtitle))
	}
	blocks = append(blocks, "", input)
	if prompts != "" {
		blocks = append(blocks, "", lipgloss.PlaceHorizontal(w, lipgloss.Center, prompts))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, blocks...)
	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, content)
}
