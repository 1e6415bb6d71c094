// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the kidsguide client.

All colors use Lip Gloss AdaptiveColor so the same palette works on light and
dark terminals. A Theme binds the palette to a lipgloss renderer whose color
profile and background can be forced from configuration.

# Themes

	auto  - detect the terminal background
	dark  - force the dark palette
	light - force the light palette
	notty - no colors at all, plain markup only

The theme name also selects the glamour style used for message markdown,
see Theme.GlamourStyle.

# Layout

Theme.SetSize records the window size; Theme.BubbleWidth derives the width
of message bubbles from it.
*/
package styles
