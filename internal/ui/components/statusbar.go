// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/wkdwlgus/kids-chatbot-service/internal/ui/styles"
	"github.com/wkdwlgus/kids-chatbot-service/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT
// =============================================================================

// StatusBar is the bottom line: conversation state on the left, key help
// on the right.
type StatusBar struct {
	Width          int
	ConversationID string
	MessageCount   int
	InFlight       int
	Notice         string // Transient warning, e.g. a failed save
	Info           string // Transient confirmation, shown when there is no Notice

	help  help.Model
	theme *styles.Theme
}

// NewStatusBar creates a status bar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	h := help.New()
	h.ShortSeparator = " · "
	h.Styles.ShortKey = theme.ShortcutKey
	h.Styles.ShortDesc = theme.ShortcutDesc
	h.Styles.ShortSeparator = theme.Muted
	return &StatusBar{Width: 80, help: h, theme: theme}
}

// View renders the bar with the short help of keys.
func (s *StatusBar) View(keys help.KeyMap) string {
	left := s.renderState()
	s.help.Width = max(s.Width-lipgloss.Width(left)-3, 0)
	right := s.help.View(keys)

	gap := max(s.Width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	line := left + lipgloss.NewStyle().Width(gap).Render("") + right
	return s.theme.StatusBar.Width(s.Width).MaxHeight(1).Render(line)
}

func (s *StatusBar) renderState() string {
	if s.Notice != "" {
		return s.theme.RenderError(util.TruncateWidth(s.Notice, max(s.Width/2, 10)))
	}
	if s.Info != "" {
		return s.theme.ShortcutKey.Render(styles.StatusIndicators.Info + " " + util.TruncateWidth(s.Info, max(s.Width/2, 10)))
	}
	state := "대화 " + strconv.Itoa(s.MessageCount)
	if s.InFlight > 0 {
		state += " · " + styles.StatusIndicators.Pending + " " + strconv.Itoa(s.InFlight)
	}
	if s.ConversationID != "" {
		state += " · " + shortID(s.ConversationID)
	}
	return state
}

// shortID returns the first 8 characters of an identifier.
func shortID(id string) string {
	r := []rune(util.StripControl(id))
	if len(r) <= 8 {
		return string(r)
	}
	return string(r[:8])
}
