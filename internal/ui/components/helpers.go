// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"
)

// =============================================================================
// SHARED HELPER FUNCTIONS
// =============================================================================

const markerLabels = "123456789abcdefghijklmnopqrstuvwxyz"

// markerLabel returns the single-cell label of the i-th marker.
func markerLabel(i int) string {
	if i < 0 || i >= len(markerLabels) {
		return "#"
	}
	return markerLabels[i : i+1]
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// formatCoord formats a coordinate with five decimals.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 5, 64)
}

// trimBlankLines removes leading and trailing empty lines, which glamour
// adds around every document.
func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
