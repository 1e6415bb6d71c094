// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command parsing and usage text for kidsguide.
package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Output streams. Tests swap them for buffers.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
	stdin  io.Reader = os.Stdin
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdChat
	CmdAsk
	CmdHistory
	CmdReset
	CmdID
	CmdServeMock
	CmdConfig
	CmdVersion
	CmdHelp
	CmdUnknown
)

// String returns the command name as typed on the command line.
func (c Command) String() string {
	switch c {
	case CmdTUI:
		return "tui"
	case CmdChat:
		return "chat"
	case CmdAsk:
		return "ask"
	case CmdHistory:
		return "history"
	case CmdReset:
		return "reset"
	case CmdID:
		return "id"
	case CmdServeMock:
		return "serve-mock"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ConfigPath  string // --config
	APIURL      string // --api
	Backend     string // --backend
	KeepHistory bool   // --keep-history
	NoAltScreen bool   // --no-alt-screen

	// Command-specific
	Name       string // Command word as typed
	Query      string // ask
	Subcommand string // config get|set|init|path
	ConfigKey  string
	ConfigVal  string
	Addr       string // serve-mock --addr
	Rate       string // serve-mock --rate
	Markdown   bool   // history --markdown

	// Raw args after the command word
	Raw []string
}

// boolFlags never take a value.
var boolFlags = []string{"keep-history", "no-alt-screen", "markdown", "help", "h", "version"}

const usageText = `kidsguide - 키즈 액티비티 가이드 terminal client
Version: %s

USAGE:
  kidsguide [command] [flags]

COMMANDS:
  tui                 Full-screen chat (default)
  chat                Line-mode chat for plain terminals (/clear, /quit)
  ask <text>          Ask one question and print the reply ("-" reads stdin)
  history             Print the saved conversation (--markdown for Markdown)
  reset               Clear the conversation to the welcome message
  id                  Print the conversation identifier
  serve-mock          Run the development backend (--addr HOST:PORT, --rate N)
  config              Show configuration (get KEY | set KEY VALUE | init | path)
  version             Show version information
  help                Show this help

FLAGS:
  --config PATH       Use an alternate config file
  --api URL           Chat backend origin (overrides api.base_url)
  --backend NAME      Storage backend: file or sqlite
  --keep-history      Keep the conversation when the client exits
  --no-alt-screen     Draw the full-screen client inline

EXAMPLES:
  kidsguide
  kidsguide ask "한남동 근처 아이랑 갈 만한 공원"
  kidsguide --api http://localhost:8080 chat
  kidsguide serve-mock --addr 127.0.0.1:8080

FILES:
  ~/.kidsguide/config.toml    Configuration
  ~/.kidsguide/kidsguide.log  Diagnostic log
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Fprintf(stdout, usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Fprintf(stdout, "kidsguide version %s\n", Version)
	fmt.Fprintf(stdout, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(stdout, "  Build date: %s\n", BuildDate)
	fmt.Fprintf(stdout, "  Go version: %s\n", runtime.Version())
}

// Parse parses os.Args.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses argv (without the program name) into a command and its
// arguments. Flags may appear before or after the command word.
func ParseArgs(argv []string) (Command, Args) {
	p := NewArgParser(argv, boolFlags...)

	args := Args{
		ConfigPath:  p.Flag("config"),
		APIURL:      p.Flag("api"),
		Backend:     strings.ToLower(p.Flag("backend")),
		KeepHistory: p.BoolFlag("keep-history"),
		NoAltScreen: p.BoolFlag("no-alt-screen"),
		Markdown:    p.BoolFlag("markdown"),
		Addr:        p.Flag("addr"),
		Rate:        p.Flag("rate"),
		Raw:         p.PositionalFrom(1),
	}

	if p.BoolFlag("help") || p.BoolFlag("h") {
		return CmdHelp, args
	}
	if p.BoolFlag("version") {
		return CmdVersion, args
	}
	if p.PositionalCount() == 0 {
		return CmdTUI, args
	}

	args.Name = p.Subcommand()
	switch strings.ToLower(args.Name) {
	case "tui":
		return CmdTUI, args
	case "chat":
		return CmdChat, args
	case "ask", "a":
		args.Query = JoinPositionalArgs(p, 1)
		return CmdAsk, args
	case "history", "log":
		return CmdHistory, args
	case "reset", "clear":
		return CmdReset, args
	case "id":
		return CmdID, args
	case "serve-mock", "mock":
		return CmdServeMock, args
	case "config":
		args.Subcommand = strings.ToLower(p.Positional(1))
		args.ConfigKey = p.Positional(2)
		args.ConfigVal = JoinPositionalArgs(p, 3)
		return CmdConfig, args
	case "version":
		return CmdVersion, args
	case "help":
		return CmdHelp, args
	default:
		return CmdUnknown, args
	}
}

// Run dispatches cmd to its handler.
func Run(cmd Command, args Args) error {
	switch cmd {
	case CmdTUI:
		return HandleTUI(args)
	case CmdChat:
		return HandleChat(args)
	case CmdAsk:
		return HandleAsk(args)
	case CmdHistory:
		return HandleHistory(args)
	case CmdReset:
		return HandleReset(args)
	case CmdID:
		return HandleID(args)
	case CmdServeMock:
		return HandleServeMock(args)
	case CmdConfig:
		return HandleConfig(args)
	case CmdVersion:
		PrintVersion()
		return nil
	case CmdHelp:
		PrintUsage()
		return nil
	default:
		msg := fmt.Sprintf("unknown command %q", args.Name)
		if s := SuggestCommand(args.Name); s != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", s)
		}
		return &UsageError{Message: msg, Example: "kidsguide help"}
	}
}
