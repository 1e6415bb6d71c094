// kidsguide - terminal client for the 키즈 액티비티 가이드 chatbot.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"os"

	"github.com/wkdwlgus/kids-chatbot-service/internal/cli"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()
	if err := cli.Run(cmd, args); err != nil {
		cli.DisplayError(err)
		os.Exit(cli.GetExitCode(err))
	}
}
