// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small file and string helpers shared by the client.
//
// # Key Functions
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
//   - RemoveIfExists: delete that treats a missing file as success
//
// Terminal Text:
//   - StringWidth, TruncateWidth, PadRight, MaxLineWidth: column-aware
//     helpers for wide (Hangul, emoji) characters
//   - StripControl: drops control characters from untrusted text
//
// # Usage
//
//	err := util.AtomicWriteFile(path, data, 0600)
//	label := util.TruncateWidth(name, 20)
package util
