// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// PRIMARY ACCENT COLORS
// =============================================================================

// Leaf - Brand color, titles, hero input border
var Leaf = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}

// LeafDeep - Darker green for backgrounds
var LeafDeep = lipgloss.AdaptiveColor{Light: "#166534", Dark: "#14532D"}

// Sky - Links, selected prompts
var Sky = lipgloss.AdaptiveColor{Light: "#0369A1", Dark: "#38BDF8"}

// Sun - Markers and highlights on the map canvas
var Sun = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}

// Berry - Errors
var Berry = lipgloss.AdaptiveColor{Light: "#BE123C", Dark: "#FB7185"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1A1F1C"}

// SurfaceDim - Header and status bar background
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F3F7F4", Dark: "#141816"}

// Overlay - Borders, separators, the map frame
var Overlay = lipgloss.AdaptiveColor{Light: "#D6E2DA", Dark: "#34403A"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E5EFE8"}

// TextSecondary - Labels
var TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#A8B8AE"}

// TextMuted - Hints, placeholders, timestamps
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7A71"}

// =============================================================================
// MESSAGE BUBBLE COLORS
// =============================================================================

// User message bubble - green tones
var UserBubbleBg = lipgloss.AdaptiveColor{Light: "#DCFCE7", Dark: "#166534"}
var UserBubbleFg = lipgloss.AdaptiveColor{Light: "#14532D", Dark: "#F0FDF4"}
var UserBubbleBorder = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}

// Assistant message bubble - neutral tones
var AssistantBubbleBg = lipgloss.AdaptiveColor{Light: "#F8FAF9", Dark: "#26302B"}
var AssistantBubbleFg = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E5EFE8"}
var AssistantBubbleBorder = lipgloss.AdaptiveColor{Light: "#CBD5CF", Dark: "#4B5A52"}

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// StatusIndicatorSet contains text indicators that do not rely on color.
type StatusIndicatorSet struct {
	Error   string
	Info    string
	Pending string
}

// StatusIndicators are ASCII-only for maximum compatibility.
var StatusIndicators = StatusIndicatorSet{
	Error:   "[X]",
	Info:    "[i]",
	Pending: "[ ]",
}
