// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wkdwlgus/kids-chatbot-service/internal/ui/styles"
)

// =============================================================================
// TYPING INDICATOR
// =============================================================================

// TypingTickMsg advances the typing phrase of one generation.
type TypingTickMsg struct {
	Generation int
}

// Typing shows status phrases while a reply is pending. Phrases advance on
// a fixed interval and stop at the last one. Every Start begins a new
// generation so ticks scheduled by an earlier run are ignored.
type Typing struct {
	phrases    []string
	interval   time.Duration
	phase      int
	generation int
	active     bool
	dots       spinner.Model
	theme      *styles.Theme
}

// NewTyping creates an inactive indicator.
func NewTyping(theme *styles.Theme, phrases []string, interval time.Duration) Typing {
	if interval <= 0 {
		interval = time.Second
	}
	return Typing{
		phrases:  append([]string(nil), phrases...),
		interval: interval,
		theme:    theme,
	}
}

// Start shows the first phrase and schedules the next one.
func (t *Typing) Start() tea.Cmd {
	t.generation++
	t.phase = 0
	t.active = true
	t.dots = spinner.New(
		spinner.WithSpinner(styles.DotsSpinner.Spinner()),
		spinner.WithStyle(t.theme.TypingDots),
	)
	return tea.Batch(t.schedule(), t.dots.Tick)
}

// Stop hides the indicator. Pending ticks become stale.
func (t *Typing) Stop() {
	t.active = false
	t.generation++
}

// Active returns whether the indicator is shown.
func (t Typing) Active() bool {
	return t.active
}

// Phase returns the index of the current phrase.
func (t Typing) Phase() int {
	return t.phase
}

// Generation returns the current run counter.
func (t Typing) Generation() int {
	return t.generation
}

// Phrase returns the current phrase, or "" when inactive.
func (t Typing) Phrase() string {
	if !t.active || len(t.phrases) == 0 {
		return ""
	}
	return t.phrases[t.phase]
}

func (t Typing) schedule() tea.Cmd {
	if t.phase >= len(t.phrases)-1 {
		return nil
	}
	gen := t.generation
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return TypingTickMsg{Generation: gen}
	})
}

// Update handles phrase ticks and spinner frames.
func (t Typing) Update(msg tea.Msg) (Typing, tea.Cmd) {
	switch msg := msg.(type) {
	case TypingTickMsg:
		if !t.active || msg.Generation != t.generation {
			return t, nil
		}
		if t.phase < len(t.phrases)-1 {
			t.phase++
		}
		return t, t.schedule()

	case spinner.TickMsg:
		if !t.active {
			return t, nil
		}
		var cmd tea.Cmd
		t.dots, cmd = t.dots.Update(msg)
		return t, cmd
	}
	return t, nil
}

// View renders the phrase followed by the animated dots.
func (t Typing) View() string {
	if !t.active {
		return ""
	}
	return t.theme.TypingText.Render(t.Phrase()) + " " + t.dots.View()
}
