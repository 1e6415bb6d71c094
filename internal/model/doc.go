// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// This package defines the domain types shared by storage, the chat client
// and the UI.
//
// # Key Types
//
//   - Message: one turn with role, kind, content and optional map payload
//   - MapData, Marker, LatLng: geographic payload of map replies
//   - Reply: closed union of TextReply and MapReply decoded from the backend
//   - Role, Kind: author and rendering path of a message
//
// # Usage
//
//	msg := model.NewUserMessage("성수동 근처 자전거 탈 수 있는 곳")
//	reply := model.MapReply{Content: "공원이에요", Data: data}
//	thread = append(thread, msg, reply.Message())
package model
