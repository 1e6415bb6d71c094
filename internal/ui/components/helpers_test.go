// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
	"github.com/wkdwlgus/kids-chatbot-service/internal/ui/styles"
)

// plainTheme renders without any escape sequences.
func plainTheme(t *testing.T) *styles.Theme {
	t.Helper()
	th := styles.NewThemeFor(&bytes.Buffer{}, styles.ModeNoTTY)
	th.SetSize(80, 24)
	return th
}

// recordingMap captures RenderMap calls.
type recordingMap struct {
	calls []mapCall
}

type mapCall struct {
	canvas  Canvas
	center  model.LatLng
	markers []model.Marker
}

func (r *recordingMap) RenderMap(canvas Canvas, center model.LatLng, markers []model.Marker) string {
	r.calls = append(r.calls, mapCall{canvas: canvas, center: center, markers: markers})
	return "[map]"
}

func hannamMap() *model.MapData {
	return &model.MapData{
		Center: model.LatLng{Latitude: 37.533, Longitude: 127.002},
		Markers: []model.Marker{
			{Name: "한남어린이공원", Latitude: 37.5341, Longitude: 127.0013, Description: "그늘 많음"},
			{Name: "보광어린이공원", Latitude: 37.5298, Longitude: 127.0025, Description: "놀이터 완비"},
		},
	}
}

// =============================================================================
// HELPER TESTS
// =============================================================================

func TestMarkerLabel(t *testing.T) {
	require.Equal(t, "1", markerLabel(0))
	require.Equal(t, "9", markerLabel(8))
	require.Equal(t, "a", markerLabel(9))
	require.Equal(t, "#", markerLabel(-1))
	require.Equal(t, "#", markerLabel(100))
}

func TestClamp(t *testing.T) {
	require.Equal(t, 0, clamp(-3, 0, 5))
	require.Equal(t, 5, clamp(9, 0, 5))
	require.Equal(t, 3, clamp(3, 0, 5))
}

func TestTrimBlankLines(t *testing.T) {
	require.Equal(t, "  a\n\n  b", trimBlankLines("\n  \n  a\n\n  b\n   \n"))
	require.Equal(t, "", trimBlankLines("\n\n"))
}

func TestFormatCoord(t *testing.T) {
	require.Equal(t, "37.53410", formatCoord(37.5341))
}
