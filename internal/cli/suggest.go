// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// suggest.go - "Did you mean" hints for mistyped commands and config keys.
package cli

import (
	"strings"

	"github.com/wkdwlgus/kids-chatbot-service/internal/config"
)

// validCommands is every command word ParseArgs accepts, aliases
// included.
var validCommands = []string{
	"tui",
	"chat",
	"ask",
	"history",
	"reset",
	"id",
	"serve-mock",
	"config",
	"version",
	"help",
	// Aliases
	"a",     // ask
	"log",   // history
	"clear", // reset
	"mock",  // serve-mock
}

// SuggestCommand returns the command closest to input, or "" when none
// is close enough or input is already a command.
func SuggestCommand(input string) string {
	return closest(input, validCommands)
}

// SuggestConfigKey returns the config key closest to key, or "".
func SuggestConfigKey(key string) string {
	return closest(key, config.Keys())
}

// closest picks the candidate with the smallest edit distance to input.
// The allowed distance grows with the rune length of input: one edit up
// to three runes, two up to eight, three beyond. Ties keep the earlier
// candidate.
func closest(input string, candidates []string) string {
	in := []rune(strings.ToLower(strings.TrimSpace(input)))
	if len(in) < 2 {
		return ""
	}

	limit := 1
	switch {
	case len(in) > 8:
		limit = 3
	case len(in) >= 4:
		limit = 2
	}

	best, bestDist := "", limit+1
	for _, c := range candidates {
		d := editDistance(in, []rune(c))
		if d == 0 {
			return ""
		}
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b, counted in
// runes so a Hangul syllable is one edit.
func editDistance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			sub := prev[j-1]
			if a[i-1] != b[j-1] {
				sub++
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
