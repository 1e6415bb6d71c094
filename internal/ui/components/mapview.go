// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"math"
	"strings"

	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
	"github.com/wkdwlgus/kids-chatbot-service/internal/ui/styles"
	"github.com/wkdwlgus/kids-chatbot-service/internal/util"
)

// =============================================================================
// MAP RENDERER
// =============================================================================

// NoSelection marks that no marker is selected.
const NoSelection = -1

// minSpan is the smallest half-extent of the canvas in degrees (~200m).
const minSpan = 0.002

// Canvas is the area a map is drawn into.
type Canvas struct {
	Width    int // Columns of the plotting grid
	Height   int // Rows of the plotting grid
	Selected int // Index of the highlighted marker or NoSelection
}

// MapRenderer draws a marker set around a center point.
type MapRenderer interface {
	RenderMap(canvas Canvas, center model.LatLng, markers []model.Marker) string
}

// TerminalMap plots numbered markers on a character grid and lists them in
// a legend below it.
type TerminalMap struct {
	theme *styles.Theme
}

// NewTerminalMap creates a grid map renderer.
func NewTerminalMap(theme *styles.Theme) *TerminalMap {
	return &TerminalMap{theme: theme}
}

// RenderMap implements MapRenderer.
func (tm *TerminalMap) RenderMap(canvas Canvas, center model.LatLng, markers []model.Marker) string {
	if len(markers) == 0 {
		return ""
	}
	cols := max(canvas.Width-2, 8) // frame
	rows := max(canvas.Height, 3)

	grid := plot(cols, rows, center, markers)

	var b strings.Builder
	for r, row := range grid {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, cell := range row {
			b.WriteString(tm.renderCell(cell, canvas.Selected))
		}
	}

	framed := tm.theme.MapFrame.Render(b.String())
	return framed + "\n" + tm.legend(markers, canvas.Width, canvas.Selected)
}

func (tm *TerminalMap) renderCell(c cell, selected int) string {
	switch {
	case c.markers > 1:
		if c.contains(selected) {
			return tm.theme.MapMarkerSelected.Render(styles.MapGlyphs.Overlap)
		}
		return tm.theme.MapMarker.Render(styles.MapGlyphs.Overlap)
	case c.markers == 1:
		if c.first == selected {
			return tm.theme.MapMarkerSelected.Render(markerLabel(c.first))
		}
		return tm.theme.MapMarker.Render(markerLabel(c.first))
	case c.center:
		return tm.theme.MapCenter.Render(styles.MapGlyphs.Center)
	default:
		return tm.theme.MapEmpty.Render(styles.MapGlyphs.Empty)
	}
}

func (tm *TerminalMap) legend(markers []model.Marker, width, selected int) string {
	lines := make([]string, len(markers))
	for i, mk := range markers {
		line := util.TruncateWidth(markerLabel(i)+" "+util.StripControl(mk.Name), max(width, 10))
		if i == selected {
			lines[i] = tm.theme.MapMarkerSelected.Render(line)
		} else {
			lines[i] = tm.theme.MapLegend.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// =============================================================================
// GRID PROJECTION
// =============================================================================

type cell struct {
	center  bool
	markers int
	first   int
	all     []int
}

func (c cell) contains(i int) bool {
	for _, v := range c.all {
		if v == i {
			return true
		}
	}
	return false
}

// plot projects markers onto a cols x rows grid centered on center. North
// is up. The extent grows to fit the farthest marker plus a margin.
func plot(cols, rows int, center model.LatLng, markers []model.Marker) [][]cell {
	spanLat, spanLng := minSpan, minSpan
	for _, mk := range markers {
		spanLat = math.Max(spanLat, math.Abs(mk.Latitude-center.Latitude)*1.2)
		spanLng = math.Max(spanLng, math.Abs(mk.Longitude-center.Longitude)*1.2)
	}

	grid := make([][]cell, rows)
	for r := range grid {
		grid[r] = make([]cell, cols)
	}

	project := func(lat, lng float64) (int, int) {
		col := (lng - (center.Longitude - spanLng)) / (2 * spanLng) * float64(cols-1)
		row := ((center.Latitude + spanLat) - lat) / (2 * spanLat) * float64(rows-1)
		return clamp(int(math.Round(row)), 0, rows-1), clamp(int(math.Round(col)), 0, cols-1)
	}

	r, c := project(center.Latitude, center.Longitude)
	grid[r][c].center = true

	for i, mk := range markers {
		r, c := project(mk.Latitude, mk.Longitude)
		cl := &grid[r][c]
		if cl.markers == 0 {
			cl.first = i
		}
		cl.markers++
		cl.all = append(cl.all, i)
	}
	return grid
}
