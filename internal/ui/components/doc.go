// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the visual building blocks of the chat screen.

# Input

Input wraps a bubbles textinput. VariantHero and VariantChat only change
its frame. Submit trims and NFC-normalizes the draft and ignores drafts that
are blank.

# Messages

Bubble renders one message: user turns right-aligned in a filled box,
assistant turns left-aligned with glamour markdown. Map replies add a grid
canvas drawn by a MapRenderer, an OSC 8 link to the full map, and the
popover of the selected marker.

Thread stacks bubbles in a scrollable viewport and caches the rendered
bubbles for the current width. An empty thread shows the example prompts.

# Indicators

Typing cycles through status phrases on a fixed interval and stops on the
last one. Each Start begins a new generation; ticks of older generations are
dropped.

	typing := NewTyping(theme, model.TypingPhrases, model.DefaultTypingInterval)
	cmd := typing.Start()
	...
	typing, cmd = typing.Update(msg)
*/
package components
