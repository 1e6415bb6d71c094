// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chatapi

import (
	"fmt"
	"math"
	"strings"

	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
)

// =============================================================================
// WIRE TYPES
// =============================================================================

// replyTypeMap is the discriminator value of map replies.
const replyTypeMap = "map"

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversation_id"`
}

// ChatResponse is the body returned by POST /api/chat.
type ChatResponse struct {
	Type           string       `json:"type"`
	Content        *string      `json:"content,omitempty"`
	Link           string       `json:"link,omitempty"`
	Data           *wireMapData `json:"data,omitempty"`
	ConversationID string       `json:"conversation_id,omitempty"`
}

type wireMapData struct {
	Center  *wireLatLng  `json:"center"`
	Markers []wireMarker `json:"markers"`
}

type wireLatLng struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type wireMarker struct {
	Name string   `json:"name"`
	Lat  *float64 `json:"lat"`
	Lng  *float64 `json:"lng"`
	Desc string   `json:"desc,omitempty"`
}

// =============================================================================
// DECODING
// =============================================================================

// Reply converts the wire response into the reply union. Any type other
// than "map" is treated as text and must carry content. A missing type is
// malformed.
func (r *ChatResponse) Reply() (model.Reply, error) {
	if r == nil || strings.TrimSpace(r.Type) == "" {
		return nil, fmt.Errorf("%w: missing reply type", ErrMalformedReply)
	}
	if r.Type != replyTypeMap {
		if r.Content == nil {
			return nil, fmt.Errorf("%w: %s reply without content", ErrMalformedReply, r.Type)
		}
		return model.TextReply{Content: *r.Content, IssuedID: r.ConversationID}, nil
	}

	data, err := r.Data.toModel()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	var content string
	if r.Content != nil {
		content = *r.Content
	}
	return model.MapReply{
		Content:  content,
		Link:     strings.TrimSpace(r.Link),
		Data:     data,
		IssuedID: r.ConversationID,
	}, nil
}

// toModel validates the payload. A nil payload is allowed; a link-only map
// reply is still a map reply.
func (d *wireMapData) toModel() (*model.MapData, error) {
	if d == nil {
		return nil, nil
	}

	out := &model.MapData{Markers: make([]model.Marker, 0, len(d.Markers))}
	for i, wm := range d.Markers {
		if strings.TrimSpace(wm.Name) == "" {
			return nil, fmt.Errorf("marker %d has no name", i)
		}
		pos, err := coordinate(wm.Lat, wm.Lng)
		if err != nil {
			return nil, fmt.Errorf("marker %d (%s): %w", i, wm.Name, err)
		}
		out.Markers = append(out.Markers, model.Marker{
			Name:        wm.Name,
			Latitude:    pos.Latitude,
			Longitude:   pos.Longitude,
			Description: wm.Desc,
		})
	}

	switch {
	case d.Center != nil:
		c, err := coordinate(d.Center.Lat, d.Center.Lng)
		if err != nil {
			return nil, fmt.Errorf("center: %w", err)
		}
		out.Center = c
	case len(out.Markers) > 0:
		out.Center = centroid(out.Markers)
	}
	return out, nil
}

func coordinate(lat, lng *float64) (model.LatLng, error) {
	if lat == nil || lng == nil {
		return model.LatLng{}, fmt.Errorf("missing coordinate")
	}
	if math.IsNaN(*lat) || math.IsNaN(*lng) || math.Abs(*lat) > 90 || math.Abs(*lng) > 180 {
		return model.LatLng{}, fmt.Errorf("coordinate out of range (%g, %g)", *lat, *lng)
	}
	return model.LatLng{Latitude: *lat, Longitude: *lng}, nil
}

// centroid stands in for a missing center.
func centroid(markers []model.Marker) model.LatLng {
	var c model.LatLng
	for _, m := range markers {
		c.Latitude += m.Latitude
		c.Longitude += m.Longitude
	}
	n := float64(len(markers))
	c.Latitude /= n
	c.Longitude /= n
	return c
}
