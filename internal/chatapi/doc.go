// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chatapi is the HTTP client of the activity recommendation backend.
//
// A single endpoint is used:
//
//	POST {base}/api/chat
//	{"message": "...", "conversation_id": "..."}
//
// The response is either a text reply
//
//	{"type": "text", "content": "...", "conversation_id": "..."}
//
// or a map reply whose link and data are each optional
//
//	{"type": "map", "link": "https://...", "data": {"center": {...}, "markers": [...]}}
//
// # Errors
//
//   - ErrStatus: non-2xx response (the concrete type is *StatusError)
//   - ErrMalformedReply: body is not a valid reply
//   - anything else: transport failure or context cancellation
//
// # Usage
//
//	client := chatapi.NewClient("http://localhost:8080", chatapi.WithTimeout(30*time.Second))
//	reply, err := client.Send(ctx, "한남동 근처 공원", conversationID)
package chatapi
