// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// roleLegacyAssistant is how the web client stored assistant turns.
const roleLegacyAssistant = "ai"

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns the label shown above a bubble.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "나"
	case RoleAssistant:
		return "가이드"
	default:
		return string(r)
	}
}

// UnmarshalText accepts "user", "assistant" and the legacy "ai".
func (r *Role) UnmarshalText(text []byte) error {
	switch string(text) {
	case string(RoleUser):
		*r = RoleUser
	case string(RoleAssistant), roleLegacyAssistant:
		*r = RoleAssistant
	default:
		return fmt.Errorf("unknown role %q", string(text))
	}
	return nil
}

// =============================================================================
// KIND TYPE
// =============================================================================

// Kind selects the rendering path of a message.
type Kind int

const (
	KindPlain Kind = iota // Formatted text only
	KindMap               // Text plus map payload and/or external link
)

// wire names; "text" keeps stored threads readable by the web client.
const (
	kindPlainName = "text"
	kindMapName   = "map"
)

// String returns the persisted name of the kind.
func (k Kind) String() string {
	if k == KindMap {
		return kindMapName
	}
	return kindPlainName
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Anything other than
// "map" decodes as plain, mirroring how replies are discriminated.
func (k *Kind) UnmarshalText(text []byte) error {
	if string(text) == kindMapName {
		*k = KindMap
	} else {
		*k = KindPlain
	}
	return nil
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message is one turn of the conversation. Messages are values; once a
// message is appended to a store it is never modified.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Kind      Kind      `json:"type"`
	Map       *MapData  `json:"data,omitempty"`
	Link      string    `json:"link,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// NewUserMessage creates a user turn.
func NewUserMessage(content string) Message {
	return Message{
		Role:      RoleUser,
		Content:   content,
		Kind:      KindPlain,
		CreatedAt: time.Now(),
	}
}

// NewAssistantText creates a plain assistant turn.
func NewAssistantText(content string) Message {
	return Message{
		Role:      RoleAssistant,
		Content:   content,
		Kind:      KindPlain,
		CreatedAt: time.Now(),
	}
}

// NewMapMessage creates a map-bearing assistant turn. The payload is copied
// so the message owns its markers.
func NewMapMessage(content, link string, data *MapData) Message {
	return Message{
		Role:      RoleAssistant,
		Content:   content,
		Kind:      KindMap,
		Map:       data.Clone(),
		Link:      link,
		CreatedAt: time.Now(),
	}
}

// WelcomeMessage is the single turn left behind by a conversation reset.
func WelcomeMessage() Message {
	return NewAssistantText(WelcomeText)
}

// ApologyMessage is appended in place of a reply when an exchange fails.
func ApologyMessage() Message {
	return NewAssistantText(ApologyText)
}

// HasMap reports whether the message carries markers to draw.
func (m Message) HasMap() bool {
	return m.Kind == KindMap && m.Map != nil && len(m.Map.Markers) > 0
}

// Clone returns a deep copy of the message.
func (m Message) Clone() Message {
	m.Map = m.Map.Clone()
	return m
}

// UnmarshalJSON decodes a stored message, tolerating the web client's
// records that have no "type" field.
func (m *Message) UnmarshalJSON(data []byte) error {
	type plain Message
	var aux plain
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Role == "" {
		return fmt.Errorf("message without role")
	}
	*m = Message(aux)
	return nil
}

// =============================================================================
// MAP PAYLOAD
// =============================================================================

// LatLng is a WGS84 coordinate.
type LatLng struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Marker is a named place on a map payload.
type Marker struct {
	Name        string  `json:"name"`
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lng"`
	Description string  `json:"desc,omitempty"`
}

// Position returns the marker's coordinate.
func (mk Marker) Position() LatLng {
	return LatLng{Latitude: mk.Latitude, Longitude: mk.Longitude}
}

// MapData is the geographic payload of a map reply.
type MapData struct {
	Center  LatLng   `json:"center"`
	Markers []Marker `json:"markers"`
}

// Clone returns a deep copy; nil stays nil.
func (d *MapData) Clone() *MapData {
	if d == nil {
		return nil
	}
	out := &MapData{Center: d.Center}
	if d.Markers != nil {
		out.Markers = make([]Marker, len(d.Markers))
		copy(out.Markers, d.Markers)
	}
	return out
}
