// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the command handlers of
// kidsguide.
//
// # Key Types
//
//   - Command: Enumeration of the available commands
//   - Args: Parsed command-line arguments with global and command-specific flags
//   - ArgParser: Flag and positional argument splitting shared by all commands
//
// # Usage
//
//	cmd, args := cli.Parse()
//	if err := cli.Run(cmd, args); err != nil {
//	    cli.DisplayError(err)
//	    os.Exit(cli.GetExitCode(err))
//	}
//
// # Commands Overview
//
//   - tui: Full-screen client (default)
//   - chat: Line-mode client with input history
//   - ask: One-shot question
//   - history, reset, id: Inspect or reset the persisted conversation
//   - serve-mock: Development backend
//   - config: Configuration management
//
// Every client command loads the configuration, opens the diagnostic log
// and the persisted state the same way (see openApp), so a thread started
// in one mode can be continued in another.
package cli
