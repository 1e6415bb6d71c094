// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for kidsguide.
//
// # Key Types
//
//   - Config: the complete configuration, one struct per TOML section
//   - Duration: time.Duration written as "4s" in TOML
//   - ValidateErrors: every invalid setting found by Validate
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Command-line flags (applied by the cli package)
//   - Environment variables (KIDSGUIDE_*)
//   - ~/.kidsguide/config.toml
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client := chatapi.NewClient(cfg.API.BaseURL, chatapi.WithTimeout(cfg.API.Timeout.Duration))
package config
