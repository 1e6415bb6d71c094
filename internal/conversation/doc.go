// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package conversation runs the request/response lifecycle of one exchange.
//
// An exchange is split in two so the full-screen client can keep every
// store mutation on its update loop:
//
//   - Fetch calls the backend and returns a Result (safe in a goroutine)
//   - Apply records the Result: identifier update plus one appended reply
//
// A failed exchange never surfaces an error to the user; Apply appends the
// fixed apology message instead.
package conversation
