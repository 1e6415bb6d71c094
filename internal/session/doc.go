// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session manages the conversation identifier.
//
// The identifier is an opaque string shared with the chat backend so it can
// keep context across requests. It is generated once (a random UUID) when
// the client first starts, replaced whenever the backend issues a different
// one, and never cleared by a thread reset or by the exit purge.
//
// # Usage
//
//	ids := session.NewIDStore(kv)
//	id, err := ids.Ensure()
//	changed, err := ids.Update(reply.ConversationID())
package session
