// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
)

// View renders the page for the current phase.
func (p Page) View() string {
	if p.phase == PhaseLanding {
		return p.viewLanding()
	}
	return p.viewActive()
}

func (p Page) viewLanding() string {
	hero := p.hero.View(p.input.View(), p.prompts.View(p.hero.ContentWidth()))
	return lipgloss.JoinVertical(lipgloss.Left, hero, p.status.View(landingKeys{p.keys}))
}

func (p Page) viewActive() string {
	header := p.theme.Header.Width(p.width).Render(
		p.theme.HeaderTitle.Render(model.AppTitle) + "  " +
			p.theme.Muted.Render("C-l "+model.ClearLabel),
	)

	typing := p.typing.View()
	if typing == "" {
		typing = " "
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		p.thread.View(),
		typing,
		p.input.View(),
		p.status.View(p.keys),
	)
}
