// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for kidsguide.
//
// Configuration file location:
//   - ~/.kidsguide/config.toml
//   - Built-in defaults
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete kidsguide configuration.
type Config struct {
	// Chat backend
	API APIConfig `toml:"api"`

	// Local persistence
	Storage StorageConfig `toml:"storage"`

	// Full-screen client
	UI UIConfig `toml:"ui"`

	// Diagnostic log
	Log LogConfig `toml:"log"`

	// Development backend (serve-mock)
	Mock MockConfig `toml:"mock"`
}

// APIConfig describes the chat backend.
type APIConfig struct {
	// BaseURL is the backend origin, e.g. "http://localhost:8080".
	BaseURL string `toml:"base_url"`

	// ChatPath is the chat endpoint path.
	ChatPath string `toml:"chat_path"`

	// Timeout bounds each request. Zero means no client-side timeout.
	Timeout Duration `toml:"timeout"`
}

// StorageConfig contains local persistence settings.
type StorageConfig struct {
	// Dir holds history, the conversation id, the log and this config.
	Dir string `toml:"dir"`

	// Backend is "file" or "sqlite".
	Backend string `toml:"backend"`

	// KeepHistory skips the history purge on exit.
	KeepHistory bool `toml:"keep_history"`

	// SyncInstances reloads the thread when another running client writes
	// it (file backend only).
	SyncInstances bool `toml:"sync_instances"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// Theme selects the markdown style: auto, dark, light or notty.
	Theme string `toml:"theme"`

	// TypingInterval is how long each typing phrase is shown.
	TypingInterval Duration `toml:"typing_interval"`

	// AltScreen runs the client in the alternate screen buffer.
	AltScreen bool `toml:"alt_screen"`
}

// LogConfig contains diagnostic logging settings.
type LogConfig struct {
	// File is the log path. Empty means <storage.dir>/kidsguide.log.
	File string `toml:"file"`

	// Level is debug, info, warn or error.
	Level string `toml:"level"`
}

// MockConfig configures the development backend.
type MockConfig struct {
	Addr          string   `toml:"addr"`
	Latency       Duration `toml:"latency"`
	RatePerMinute int      `toml:"rate_per_minute"`
}

// =============================================================================
// DURATION
// =============================================================================

// Duration is a time.Duration written as a string ("4s") in TOML.
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:  "http://localhost:8080",
			ChatPath: "/api/chat",
		},
		Storage: StorageConfig{
			Backend:       "file",
			SyncInstances: true,
		},
		UI: UIConfig{
			Theme:          "auto",
			TypingInterval: Duration{4 * time.Second},
			AltScreen:      true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Mock: MockConfig{
			Addr:          "127.0.0.1:8080",
			Latency:       Duration{500 * time.Millisecond},
			RatePerMinute: 120,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the kidsguide directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".kidsguide"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DataDir returns the effective storage directory.
func (c *Config) DataDir() string {
	return c.Storage.Dir
}

// LogPath returns the effective log file path.
func (c *Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(c.Storage.Dir, "kidsguide.log")
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load reads ~/.kidsguide/config.toml when it exists, applies environment
// overrides, fills defaults and validates.
func Load() (*Config, error) {
	path, err := ConfigPathTOML()
	if err != nil {
		return finish(Default())
	}
	if _, statErr := os.Stat(path); statErr != nil {
		return finish(Default())
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific TOML file.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	return finish(cfg)
}

// LoadTOML decodes path over cfg. Keys absent from the file keep the
// values already in cfg.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// finish applies env overrides, defaults and validation.
func finish(cfg *Config) (*Config, error) {
	cfg.ApplyEnvOverrides()
	if err := fillDefaults(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults fills in missing values and resolves the data directory.
func fillDefaults(cfg *Config) error {
	defaults := Default()

	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = defaults.API.BaseURL
	}
	cfg.API.BaseURL = strings.TrimSuffix(cfg.API.BaseURL, "/")
	if cfg.API.ChatPath == "" {
		cfg.API.ChatPath = defaults.API.ChatPath
	}

	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = defaults.Storage.Backend
	}
	if cfg.Storage.Dir == "" {
		dir, err := ConfigDir()
		if err != nil {
			return err
		}
		cfg.Storage.Dir = dir
	}
	cfg.Storage.Dir = expandHome(cfg.Storage.Dir)

	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.UI.TypingInterval.Duration == 0 {
		cfg.UI.TypingInterval = defaults.UI.TypingInterval
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}
	cfg.Log.File = expandHome(cfg.Log.File)

	if cfg.Mock.Addr == "" {
		cfg.Mock.Addr = defaults.Mock.Addr
	}
	if cfg.Mock.RatePerMinute == 0 {
		cfg.Mock.RatePerMinute = defaults.Mock.RatePerMinute
	}
	return nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML writes the configuration to path with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# kidsguide configuration file")
	fmt.Fprintln(file, "# Durations use Go syntax: \"500ms\", \"4s\", \"1m\"")
	fmt.Fprintln(file, "")

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var (
	validBackends = map[string]bool{"file": true, "sqlite": true}
	validThemes   = map[string]bool{"auto": true, "dark": true, "light": true, "notty": true}
	validLevels   = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
)

// Validate returns ValidateErrors describing every invalid setting.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if u, err := url.Parse(c.API.BaseURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errs = append(errs, ValidationError{
			Field:   "api.base_url",
			Message: fmt.Sprintf("invalid URL '%s', must be http(s)://host[:port]", c.API.BaseURL),
		})
	}
	if !strings.HasPrefix(c.API.ChatPath, "/") {
		errs = append(errs, ValidationError{
			Field:   "api.chat_path",
			Message: "must start with '/'",
		})
	}
	if c.API.Timeout.Duration < 0 {
		errs = append(errs, ValidationError{Field: "api.timeout", Message: "must not be negative"})
	}

	if !validBackends[c.Storage.Backend] {
		errs = append(errs, ValidationError{
			Field:   "storage.backend",
			Message: fmt.Sprintf("invalid backend '%s', must be one of: file, sqlite", c.Storage.Backend),
		})
	}

	if !validThemes[c.UI.Theme] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: auto, dark, light, notty", c.UI.Theme),
		})
	}
	if c.UI.TypingInterval.Duration < 100*time.Millisecond {
		errs = append(errs, ValidationError{Field: "ui.typing_interval", Message: "must be at least 100ms"})
	}

	if !validLevels[c.Log.Level] {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: debug, info, warn, error", c.Log.Level),
		})
	}

	if c.Mock.Latency.Duration < 0 {
		errs = append(errs, ValidationError{Field: "mock.latency", Message: "must not be negative"})
	}
	if c.Mock.RatePerMinute < 0 {
		errs = append(errs, ValidationError{Field: "mock.rate_per_minute", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - KIDSGUIDE_API_URL: overrides api.base_url
//   - KIDSGUIDE_DATA_DIR: overrides storage.dir
//   - KIDSGUIDE_BACKEND: overrides storage.backend
//   - KIDSGUIDE_KEEP_HISTORY: "1" or "true" keeps history on exit
//   - KIDSGUIDE_THEME: overrides ui.theme
//   - KIDSGUIDE_LOG_LEVEL: overrides log.level
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("KIDSGUIDE_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("KIDSGUIDE_DATA_DIR"); v != "" {
		c.Storage.Dir = v
	}
	if v := os.Getenv("KIDSGUIDE_BACKEND"); v != "" {
		c.Storage.Backend = strings.ToLower(v)
	}
	if v := os.Getenv("KIDSGUIDE_KEEP_HISTORY"); v != "" {
		c.Storage.KeepHistory = v == "1" || strings.ToLower(v) == "true"
	}
	if v := os.Getenv("KIDSGUIDE_THEME"); v != "" {
		c.UI.Theme = strings.ToLower(v)
	}
	if v := os.Getenv("KIDSGUIDE_LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "ui.theme").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	if d, ok := field.Interface().(Duration); ok {
		return d.String(), nil
	}
	return field.Interface(), nil
}

// Set sets a configuration value from its string form using dot notation.
func (c *Config) Set(key, value string) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

// lookup resolves a section.key path to its struct field.
func (c *Config) lookup(key string) (reflect.Value, error) {
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return reflect.Value{}, fmt.Errorf("key must be section.name: %s", key)
	}

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("unknown field: %s", strings.Join(parts[:i+1], "."))
		}
		if i == len(parts)-1 {
			return field, nil
		}
		if field.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a section", part)
		}
		v = field
	}
	return reflect.Value{}, errors.New("empty key")
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go
// field equivalent ("base_url" -> "Baseurl", matched case-insensitively).
func normalizeFieldName(name string) string {
	return strings.NewReplacer("_", "", "-", "").Replace(name)
}

// setFieldValue parses value into field.
func setFieldValue(field reflect.Value, value string) error {
	if field.Type() == reflect.TypeOf(Duration{}) {
		var d Duration
		if err := d.UnmarshalText([]byte(value)); err != nil {
			return err
		}
		field.Set(reflect.ValueOf(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer value: %v", err)
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value: %v", err)
		}
		field.SetBool(b)
	default:
		return fmt.Errorf("cannot assign %q to %s", value, field.Type())
	}
	return nil
}

// Keys returns every configuration key in dot notation.
func Keys() []string {
	var keys []string
	t := reflect.TypeOf(Config{})
	for i := 0; i < t.NumField(); i++ {
		section := t.Field(i)
		for j := 0; j < section.Type.NumField(); j++ {
			keys = append(keys, section.Tag.Get("toml")+"."+section.Type.Field(j).Tag.Get("toml"))
		}
	}
	return keys
}

// String renders the configuration as TOML.
func (c *Config) String() string {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return sb.String()
}
