// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// REPLY UNION
// =============================================================================

// Reply is the decoded answer of the chat backend. It is a closed union:
// the only implementations are TextReply and MapReply.
type Reply interface {
	// ConversationID is the identifier issued by the server, or "".
	ConversationID() string

	// Message converts the reply into the assistant turn to append.
	Message() Message

	isReply()
}

// TextReply is a plain formatted-text answer.
type TextReply struct {
	Content  string
	IssuedID string
}

// ConversationID implements Reply.
func (r TextReply) ConversationID() string { return r.IssuedID }

// Message implements Reply.
func (r TextReply) Message() Message { return NewAssistantText(r.Content) }

func (TextReply) isReply() {}

// MapReply is an answer carrying geographic data. Content, Link and Data are
// independently optional.
type MapReply struct {
	Content  string
	Link     string
	Data     *MapData
	IssuedID string
}

// ConversationID implements Reply.
func (r MapReply) ConversationID() string { return r.IssuedID }

// Message implements Reply.
func (r MapReply) Message() Message { return NewMapMessage(r.Content, r.Link, r.Data) }

func (MapReply) isReply() {}
