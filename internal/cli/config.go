// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config.go - Config command implementation.
//
// Command: config [subcommand]
//
// Subcommands:
//   show (default)      Display the effective configuration
//   get <key>           Print one value
//   set <key> <value>   Set a value in the config file
//   reset               Rewrite the config file with defaults
//   path                Show the config file path
//   keys                List every key
//
// Examples:
//   kidsguide config set api.base_url http://localhost:8080
//   kidsguide config set storage.keep_history true
//   kidsguide config set ui.theme light
//   kidsguide config get api.timeout
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/wkdwlgus/kids-chatbot-service/internal/config"
)

// HandleConfig handles the "config" command.
func HandleConfig(args Args) error {
	switch args.Subcommand {
	case "", "show":
		return handleConfigShow(args)
	case "get":
		return handleConfigGet(args)
	case "set":
		return handleConfigSet(args)
	case "reset", "init":
		return handleConfigReset(args)
	case "path":
		return handleConfigPath(args)
	case "keys":
		for _, key := range config.Keys() {
			fmt.Fprintln(stdout, key)
		}
		return nil
	default:
		return &UsageError{
			Message: fmt.Sprintf("unknown config subcommand: %s", args.Subcommand),
			Example: "kidsguide config [show|get|set|reset|path|keys]",
		}
	}
}

// configPath is the file config subcommands read and write.
func configPath(args Args) (string, error) {
	if args.ConfigPath != "" {
		return args.ConfigPath, nil
	}
	path, err := config.ConfigPathTOML()
	if err != nil {
		return "", &ConfigError{Err: err}
	}
	return path, nil
}

// handleConfigShow prints every key of the effective configuration, that
// is the file plus environment and command-line overrides.
func handleConfigShow(args Args) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	path, err := configPath(args)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, TitleStyle.Render("kidsguide configuration"))
	section := ""
	for _, key := range config.Keys() {
		if s, _, _ := strings.Cut(key, "."); s != section {
			section = s
			fmt.Fprintln(stdout)
			fmt.Fprintln(stdout, "["+section+"]")
		}
		value, err := cfg.Get(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "  %s%v\n", LabelStyle.Render(key), value)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "Config file: %s\n", DimStyle.Render(path))
	return nil
}

func handleConfigGet(args Args) error {
	if args.ConfigKey == "" {
		return ErrMissingArgument("key", "kidsguide config get ui.theme")
	}
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	value, err := cfg.Get(args.ConfigKey)
	if err != nil {
		return configKeyError(args.ConfigKey, err)
	}
	fmt.Fprintln(stdout, value)
	return nil
}

// handleConfigSet edits the config file itself. Environment and
// command-line overrides are not written back.
func handleConfigSet(args Args) error {
	if args.ConfigKey == "" || args.ConfigVal == "" {
		return ErrMissingArgument("key and value", "kidsguide config set ui.theme dark")
	}
	path, err := configPath(args)
	if err != nil {
		return err
	}

	cfg, err := readConfigFile(path)
	if err != nil {
		return err
	}
	if err := cfg.Set(args.ConfigKey, args.ConfigVal); err != nil {
		return configKeyError(args.ConfigKey, err)
	}
	if err := cfg.Validate(); err != nil {
		return &ConfigError{Err: err}
	}
	if err := config.SaveTOML(cfg, path); err != nil {
		return &CommandError{Command: "config", Action: "set", Err: err}
	}

	fmt.Fprintf(stdout, "%s %s = %s\n", SuccessStyle.Render("[OK]"), args.ConfigKey, args.ConfigVal)
	return nil
}

func handleConfigReset(args Args) error {
	path, err := configPath(args)
	if err != nil {
		return err
	}
	if err := config.SaveTOML(config.Default(), path); err != nil {
		return &CommandError{Command: "config", Action: "reset", Err: err}
	}
	fmt.Fprintf(stdout, "%s Configuration reset to defaults\n", SuccessStyle.Render("[OK]"))
	fmt.Fprintf(stdout, "Config file: %s\n", DimStyle.Render(path))
	return nil
}

func handleConfigPath(args Args) error {
	path, err := configPath(args)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, path)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(stderr, DimStyle.Render("(file does not exist; defaults are in effect)"))
	}
	return nil
}

// configKeyError turns a Get or Set failure into a usage error, with the
// nearest key when key looks like a typo.
func configKeyError(key string, err error) error {
	msg := err.Error()
	if s := SuggestConfigKey(key); s != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", s)
	}
	return &UsageError{Message: msg, Example: "kidsguide config keys"}
}

// readConfigFile returns the defaults overlaid with path, which may not
// exist yet.
func readConfigFile(path string) (*config.Config, error) {
	cfg := config.Default()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err := config.LoadTOML(cfg, path); err != nil {
		return nil, &ConfigError{Err: err}
	}
	return cfg, nil
}
