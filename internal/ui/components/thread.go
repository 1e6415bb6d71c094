// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
	"github.com/wkdwlgus/kids-chatbot-service/internal/ui/styles"
)

// =============================================================================
// THREAD COMPONENT - Scrollable message list
// =============================================================================

// Thread is the scrollable list of messages. Rendered bubbles are cached
// for the current width; a resize drops the cache.
type Thread struct {
	viewport viewport.Model
	bubble   *Bubble
	prompts  *Prompts
	theme    *styles.Theme

	messages   []model.Message
	cache      []string
	cacheWidth int

	width      int
	height     int
	pending    bool
	autoScroll bool

	// Popover state for the latest map message.
	mapIndex int
	selected int
}

// NewThread creates an empty thread.
func NewThread(theme *styles.Theme, bubble *Bubble, prompts *Prompts) *Thread {
	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle()
	return &Thread{
		viewport:   vp,
		bubble:     bubble,
		prompts:    prompts,
		theme:      theme,
		width:      80,
		height:     21,
		autoScroll: true,
		mapIndex:   NoSelection,
		selected:   NoSelection,
	}
}

// SetSize updates the dimensions. One row is kept for the scroll hint.
func (t *Thread) SetSize(width, height int) {
	t.width = width
	t.height = height
	t.viewport.Width = width
	t.viewport.Height = max(height-1, 1)
	t.refresh()
}

// SetMessages replaces the displayed messages. Cached renders are kept for
// the unchanged prefix.
func (t *Thread) SetMessages(msgs []model.Message) {
	keep := 0
	for keep < len(msgs) && keep < len(t.messages) && keep < len(t.cache) &&
		sameMessage(msgs[keep], t.messages[keep]) {
		keep++
	}
	t.cache = t.cache[:keep]
	t.messages = msgs

	last := lastMapIndex(msgs)
	if last != t.mapIndex {
		if t.selected != NoSelection {
			t.invalidate(t.mapIndex)
		}
		t.mapIndex = last
		t.selected = NoSelection
	}
	t.refresh()
}

// Messages returns the displayed messages.
func (t *Thread) Messages() []model.Message {
	return t.messages
}

// SetPending records whether a reply is outstanding. The prompt list of
// an empty thread is hidden while pending.
func (t *Thread) SetPending(pending bool) {
	if t.pending == pending {
		return
	}
	t.pending = pending
	t.refresh()
}

// =============================================================================
// MARKER SELECTION
// =============================================================================

// HasMap reports whether a message with markers is displayed.
func (t *Thread) HasMap() bool {
	return t.mapIndex != NoSelection
}

// Selected returns the marker whose popover is open.
func (t *Thread) Selected() int {
	return t.selected
}

// SelectNext opens the popover of the next marker of the latest map.
func (t *Thread) SelectNext() {
	t.moveSelection(1)
}

// SelectPrev opens the popover of the previous marker of the latest map.
func (t *Thread) SelectPrev() {
	t.moveSelection(-1)
}

// ClearSelection closes the popover. It returns false when none was open.
func (t *Thread) ClearSelection() bool {
	if t.selected == NoSelection {
		return false
	}
	t.selected = NoSelection
	t.invalidate(t.mapIndex)
	t.refresh()
	return true
}

func (t *Thread) moveSelection(delta int) {
	if t.mapIndex == NoSelection {
		return
	}
	n := len(t.messages[t.mapIndex].Map.Markers)
	switch {
	case t.selected == NoSelection && delta > 0:
		t.selected = 0
	case t.selected == NoSelection:
		t.selected = n - 1
	default:
		t.selected = (t.selected + delta + n) % n
	}
	t.invalidate(t.mapIndex)
	t.refresh()
}

func (t *Thread) invalidate(i int) {
	if i >= 0 && i < len(t.cache) {
		t.cache = t.cache[:i]
	}
}

// =============================================================================
// SCROLLING
// =============================================================================

// PageUp scrolls up by one page.
func (t *Thread) PageUp() {
	t.autoScroll = false
	t.viewport.ViewUp()
}

// PageDown scrolls down by one page.
func (t *Thread) PageDown() {
	t.viewport.ViewDown()
	if t.viewport.AtBottom() {
		t.autoScroll = true
	}
}

// ScrollToBottom jumps to the newest message.
func (t *Thread) ScrollToBottom() {
	t.viewport.GotoBottom()
	t.autoScroll = true
}

// AtBottom returns true if the newest line is visible.
func (t *Thread) AtBottom() bool {
	return t.viewport.AtBottom()
}

// Update handles mouse wheel scrolling.
func (t *Thread) Update(msg tea.Msg) (*Thread, tea.Cmd) {
	if mm, ok := msg.(tea.MouseMsg); ok {
		switch mm.Type {
		case tea.MouseWheelUp:
			t.autoScroll = false
			t.viewport.LineUp(3)
		case tea.MouseWheelDown:
			t.viewport.LineDown(3)
			if t.viewport.AtBottom() {
				t.autoScroll = true
			}
		}
	}
	return t, nil
}

// =============================================================================
// RENDERING
// =============================================================================

// Content returns the full rendered thread, independent of scrolling.
func (t *Thread) Content() string {
	if len(t.messages) == 0 {
		if t.pending {
			return ""
		}
		return t.prompts.View(t.width)
	}

	if t.cacheWidth != t.width {
		t.cache = t.cache[:0]
		t.cacheWidth = t.width
	}
	for i := len(t.cache); i < len(t.messages); i++ {
		sel := NoSelection
		if i == t.mapIndex {
			sel = t.selected
		}
		t.cache = append(t.cache, t.bubble.Render(t.messages[i], t.width, sel))
	}
	return strings.Join(t.cache, "\n\n")
}

func (t *Thread) refresh() {
	t.viewport.SetContent(t.Content())
	if t.autoScroll {
		t.viewport.GotoBottom()
	}
}

// View renders the visible part of the thread and a hint line when newer
// messages are below.
func (t *Thread) View() string {
	hint := ""
	if !t.viewport.AtBottom() {
		hint = t.theme.Muted.Render("↓ pgdown")
	}
	return t.viewport.View() + "\n" + lipgloss.PlaceHorizontal(t.width, lipgloss.Center, hint)
}

// =============================================================================
// HELPERS
// =============================================================================

func sameMessage(a, b model.Message) bool {
	return a.Role == b.Role && a.Kind == b.Kind && a.Content == b.Content &&
		a.Link == b.Link && a.CreatedAt.Equal(b.CreatedAt) && a.HasMap() == b.HasMap()
}

func lastMapIndex(msgs []model.Message) int {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].HasMap() {
			return i
		}
	}
	return NoSelection
}
