// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme names accepted by NewTheme.
const (
	ModeAuto  = "auto"
	ModeDark  = "dark"
	ModeLight = "light"
	ModeNoTTY = "notty"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	Mode         string
	IsDark       bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	renderer *lipgloss.Renderer

	// ==========================================================================
	// HEADER AND HERO STYLES
	// ==========================================================================

	Header       lipgloss.Style
	HeaderTitle  lipgloss.Style
	HeroTitle    lipgloss.Style
	HeroSubtitle lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	RoleLabel       lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputHero        lipgloss.Style
	InputChat        lipgloss.Style
	InputPrompt      lipgloss.Style
	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style

	// ==========================================================================
	// PROMPT SUGGESTION STYLES
	// ==========================================================================

	PromptItem     lipgloss.Style
	PromptSelected lipgloss.Style

	// ==========================================================================
	// TYPING INDICATOR STYLES
	// ==========================================================================

	TypingText lipgloss.Style
	TypingDots lipgloss.Style

	// ==========================================================================
	// MAP STYLES
	// ==========================================================================

	MapFrame          lipgloss.Style
	MapEmpty          lipgloss.Style
	MapCenter         lipgloss.Style
	MapMarker         lipgloss.Style
	MapMarkerSelected lipgloss.Style
	MapLegend         lipgloss.Style
	Popover           lipgloss.Style
	PopoverTitle      lipgloss.Style
	LinkStyle         lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	ErrorStyle   lipgloss.Style
	Muted        lipgloss.Style
}

// NewTheme creates a theme for stdout with all styles configured.
func NewTheme(mode string) *Theme {
	return NewThemeFor(os.Stdout, mode)
}

// NewThemeFor creates a theme whose renderer inspects w. Unknown modes
// behave like auto.
func NewThemeFor(w io.Writer, mode string) *Theme {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ModeDark:
		r.SetHasDarkBackground(true)
	case ModeLight:
		r.SetHasDarkBackground(false)
	case ModeNoTTY:
		r.SetColorProfile(termenv.Ascii)
	default:
		mode = ModeAuto
	}

	t := &Theme{
		Mode:         mode,
		IsDark:       r.HasDarkBackground(),
		ColorProfile: r.ColorProfile(),
		renderer:     r,
	}
	t.initStyles()
	return t
}

// Renderer returns the lipgloss renderer the styles are bound to.
func (t *Theme) Renderer() *lipgloss.Renderer {
	return t.renderer
}

// GlamourStyle returns the glamour standard style matching the theme.
func (t *Theme) GlamourStyle() string {
	switch {
	case t.Mode == ModeNoTTY || t.ColorProfile == termenv.Ascii:
		return "notty"
	case t.IsDark:
		return "dark"
	default:
		return "light"
	}
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	s := t.renderer.NewStyle

	// Header
	t.Header = s().
		Foreground(Leaf).
		Background(SurfaceDim).
		Padding(0, 1)

	t.HeaderTitle = s().
		Bold(true).
		Foreground(Leaf)

	t.HeroTitle = s().
		Bold(true).
		Foreground(Leaf).
		Align(lipgloss.Center)

	t.HeroSubtitle = s().
		Foreground(TextSecondary).
		Align(lipgloss.Center)

	// Message bubbles
	t.UserBubble = s().
		Foreground(UserBubbleFg).
		Background(UserBubbleBg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 1)

	t.AssistantBubble = s().
		Foreground(AssistantBubbleFg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(AssistantBubbleBorder).
		Padding(0, 1)

	t.RoleLabel = s().
		Foreground(TextMuted).
		Bold(true)

	// Input area
	t.InputHero = s().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Leaf).
		Padding(0, 1)

	t.InputChat = s().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = s().
		Foreground(Leaf).
		Bold(true)

	t.InputText = s().
		Foreground(TextPrimary)

	t.InputPlaceholder = s().
		Foreground(TextMuted).
		Italic(true)

	// Prompt suggestions
	t.PromptItem = s().
		Foreground(TextSecondary).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.PromptSelected = s().
		Foreground(Sky).
		Bold(true).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Sky).
		Padding(0, 1)

	// Typing indicator
	t.TypingText = s().
		Foreground(TextSecondary).
		Italic(true)

	t.TypingDots = s().
		Foreground(Leaf)

	// Map
	t.MapFrame = s().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Overlay)

	t.MapEmpty = s().
		Foreground(Overlay)

	t.MapCenter = s().
		Foreground(TextMuted)

	t.MapMarker = s().
		Foreground(Sun).
		Bold(true)

	t.MapMarkerSelected = s().
		Foreground(Surface).
		Background(Sun).
		Bold(true)

	t.MapLegend = s().
		Foreground(TextSecondary)

	t.Popover = s().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Sun).
		Padding(0, 1)

	t.PopoverTitle = s().
		Foreground(Sun).
		Bold(true)

	// Links keep the underline so they stand out without color.
	t.LinkStyle = s().
		Foreground(Sky).
		Underline(true)

	// Status bar
	t.StatusBar = s().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = s().
		Foreground(Leaf).
		Bold(true)

	t.ShortcutDesc = s().
		Foreground(TextMuted)

	t.ErrorStyle = s().
		Foreground(Berry).
		Bold(true)

	t.Muted = s().
		Foreground(TextMuted)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// BubbleWidth is the maximum outer width of a message bubble.
func (t *Theme) BubbleWidth() int {
	switch t.GetLayoutMode() {
	case LayoutNarrow:
		return max(t.Width-2, 10)
	case LayoutMedium:
		return t.Width * 4 / 5
	default:
		return min(t.Width*3/4, 100)
	}
}

// RenderError renders an error line with its text indicator.
func (t *Theme) RenderError(message string) string {
	return t.ErrorStyle.Render(StatusIndicators.Error + " " + message)
}

// RenderLink renders text as a link with underline.
func (t *Theme) RenderLink(text string) string {
	return t.LinkStyle.Render(text)
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // >= 100 columns
)
