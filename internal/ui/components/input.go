// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/unicode/norm"

	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
	"github.com/wkdwlgus/kids-chatbot-service/internal/ui/styles"
)

// MaxInputChars caps the draft length.
const MaxInputChars = 2000

// =============================================================================
// INPUT COMPONENT
// =============================================================================

// Variant selects the styling of the input. It has no effect on behavior.
type Variant int

const (
	VariantHero Variant = iota // Large bordered box on the landing view
	VariantChat                // Compact bar under the thread
)

// Input is the single-line draft editor shared by both phases.
type Input struct {
	input   textinput.Model
	variant Variant
	width   int
	theme   *styles.Theme
}

// NewInput creates a focused-ready input in the given variant.
func NewInput(theme *styles.Theme, variant Variant) *Input {
	ti := textinput.New()
	ti.Placeholder = model.InputPlaceholder
	ti.CharLimit = MaxInputChars
	ti.Prompt = "> "
	ti.PromptStyle = theme.InputPrompt
	ti.TextStyle = theme.InputText
	ti.PlaceholderStyle = theme.InputPlaceholder
	ti.Cursor.Style = theme.InputPrompt

	in := &Input{
		input:   ti,
		variant: variant,
		theme:   theme,
	}
	in.SetWidth(80)
	return in
}

// Variant returns the current styling variant.
func (i *Input) Variant() Variant {
	return i.variant
}

// SetVariant switches the styling variant; the draft is kept.
func (i *Input) SetVariant(v Variant) {
	i.variant = v
	i.SetWidth(i.width)
}

// Focus focuses the input.
func (i *Input) Focus() tea.Cmd {
	return i.input.Focus()
}

// Blur removes focus from the input.
func (i *Input) Blur() {
	i.input.Blur()
}

// Focused returns whether the input is focused.
func (i *Input) Focused() bool {
	return i.input.Focused()
}

// SetWidth sets the outer width of the input box.
func (i *Input) SetWidth(width int) {
	i.width = width
	// Border, padding and prompt
	inner := width - 4 - len(i.input.Prompt)
	if i.variant == VariantChat {
		inner = width - 2 - len(i.input.Prompt)
	}
	if inner < 10 {
		inner = 10
	}
	i.input.Width = inner
}

// Value returns the raw draft.
func (i *Input) Value() string {
	return i.input.Value()
}

// SetValue replaces the draft without submitting it and moves the cursor
// to the end.
func (i *Input) SetValue(value string) {
	i.input.SetValue(value)
	i.input.CursorEnd()
}

// Reset clears the draft.
func (i *Input) Reset() {
	i.input.Reset()
}

// Submit hands the normalized draft to onSend and clears it. A draft that
// is empty after trimming is left untouched and onSend is not called.
func (i *Input) Submit(onSend func(string)) bool {
	text := Normalize(i.input.Value())
	if text == "" {
		return false
	}
	i.input.Reset()
	if onSend != nil {
		onSend(text)
	}
	return true
}

// Normalize trims surrounding whitespace and converts the text to NFC so
// decomposed Hangul from some input methods is sent precomposed.
func Normalize(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}

// Update handles input updates.
func (i *Input) Update(msg tea.Msg) (*Input, tea.Cmd) {
	var cmd tea.Cmd
	i.input, cmd = i.input.Update(msg)
	return i, cmd
}

// View renders the input in its variant's frame.
func (i *Input) View() string {
	if i.variant == VariantHero {
		return i.theme.InputHero.Width(i.width - 2).Render(i.input.View())
	}
	return i.theme.InputChat.Width(i.width).Render(i.input.View())
}
