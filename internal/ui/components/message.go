// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
	"github.com/wkdwlgus/kids-chatbot-service/internal/ui/styles"
	"github.com/wkdwlgus/kids-chatbot-service/internal/util"
)

// mapHeight is the number of grid rows of an inline map.
const mapHeight = 9

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// Bubble renders single messages. User turns are right-aligned, assistant
// turns left-aligned.
type Bubble struct {
	theme    *styles.Theme
	markdown *Markdown
	maps     MapRenderer
}

// NewBubble creates a bubble renderer.
func NewBubble(theme *styles.Theme, md *Markdown, maps MapRenderer) *Bubble {
	return &Bubble{theme: theme, markdown: md, maps: maps}
}

// Render draws msg into a row of the given width. selected is the marker
// whose popover is open, or NoSelection.
func (b *Bubble) Render(msg model.Message, width, selected int) string {
	maxWidth := b.theme.BubbleWidth()
	if maxWidth <= 0 || maxWidth > width {
		maxWidth = width
	}
	inner := max(maxWidth-4, 10) // border and padding

	label := b.theme.RoleLabel.Render(msg.Role.DisplayName())

	if msg.Role == model.RoleUser {
		content := util.StripControl(msg.Content)
		textWidth := min(util.MaxLineWidth(content), inner)
		box := b.theme.UserBubble.Width(textWidth + 2).Render(content)
		return lipgloss.JoinVertical(lipgloss.Right,
			lipgloss.PlaceHorizontal(width, lipgloss.Right, label),
			lipgloss.PlaceHorizontal(width, lipgloss.Right, box),
		)
	}

	var body string
	if msg.Kind == model.KindMap {
		body = b.renderMapBody(msg, inner, selected)
	} else {
		body = b.markdown.Render(msg.Content, inner)
	}
	if body == "" {
		body = " "
	}
	box := b.theme.AssistantBubble.Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, label, box)
}

// renderMapBody stacks the text, the map canvas, the external link and the
// open popover, each only when present.
func (b *Bubble) renderMapBody(msg model.Message, inner, selected int) string {
	var parts []string
	if text := b.markdown.Render(msg.Content, inner); text != "" {
		parts = append(parts, text)
	}

	if msg.HasMap() {
		if canvas := b.maps.RenderMap(Canvas{Width: inner, Height: mapHeight, Selected: selected},
			msg.Map.Center, msg.Map.Markers); canvas != "" {
			parts = append(parts, canvas)
		}
		if selected >= 0 && selected < len(msg.Map.Markers) {
			parts = append(parts, b.renderPopover(msg.Map.Markers[selected], inner))
		}
	}

	if link := util.StripControl(msg.Link); link != "" {
		parts = append(parts, b.renderLink(link))
	}
	return strings.Join(parts, "\n\n")
}

// renderLink emits an OSC 8 hyperlink, or the bare URL when the theme has
// no escape support.
func (b *Bubble) renderLink(link string) string {
	if b.theme.ColorProfile == termenv.Ascii {
		return model.MapLinkLabel + ": " + link
	}
	return b.theme.RenderLink(termenv.Hyperlink(link, model.MapLinkLabel)) + " ↗"
}

func (b *Bubble) renderPopover(mk model.Marker, inner int) string {
	title := b.theme.PopoverTitle.Render(util.StripControl(mk.Name))
	lines := []string{title}
	if desc := util.StripControl(mk.Description); desc != "" {
		lines = append(lines, desc)
	}
	lines = append(lines, b.theme.Muted.Render(formatCoord(mk.Latitude)+", "+formatCoord(mk.Longitude)))
	return b.theme.Popover.Width(max(inner-2, 8)).Render(strings.Join(lines, "\n"))
}
