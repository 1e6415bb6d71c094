// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error types and exit codes for kidsguide commands.
//
// Handlers always return errors; main displays them once and exits with
// the code GetExitCode picks.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"

	"github.com/wkdwlgus/kids-chatbot-service/internal/chatapi"
	"github.com/wkdwlgus/kids-chatbot-service/internal/config"
	"github.com/wkdwlgus/kids-chatbot-service/internal/storage"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
	// ExitConfigError indicates a configuration file or settings error
	ExitConfigError = 3
	// ExitNetworkError indicates the chat backend could not be reached
	ExitNetworkError = 5
	// ExitStorageError indicates local state could not be read or written
	ExitStorageError = 7
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// UsageError reports a malformed command line.
type UsageError struct {
	Message string
	Example string // Optional
}

func (e *UsageError) Error() string {
	if e.Example != "" {
		return fmt.Sprintf("%s\nExample: %s", e.Message, e.Example)
	}
	return e.Message
}

// CommandError represents a CLI command error with context.
type CommandError struct {
	Command string // Command that failed (e.g., "config")
	Action  string // Action being performed (e.g., "set")
	Err     error
}

func (e *CommandError) Error() string {
	if e.Action == "" {
		return fmt.Sprintf("%s failed: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Command, e.Action, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ConfigError wraps a failure to load or apply configuration.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ErrMissingArgument creates a usage error for a missing argument.
func ErrMissingArgument(argName, example string) error {
	return &UsageError{
		Message: fmt.Sprintf("missing argument: %s", argName),
		Example: example,
	}
}

// =============================================================================
// DISPLAY AND EXIT CODES
// =============================================================================

// DisplayError writes err to stderr in the CLI's error format.
func DisplayError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "%s %s\n", ErrorStyle.Render("[ERROR]"), err.Error())
}

// GetExitCode determines the exit code for err.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsageError
	}

	var cfgErr *ConfigError
	var validateErrs config.ValidateErrors
	if errors.As(err, &cfgErr) || errors.As(err, &validateErrs) {
		return ExitConfigError
	}

	var netErr net.Error
	if errors.Is(err, chatapi.ErrStatus) ||
		errors.Is(err, chatapi.ErrMalformedReply) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.As(err, &netErr) {
		return ExitNetworkError
	}

	var storeErr *storage.StoreError
	var pathErr *fs.PathError
	if errors.As(err, &storeErr) || errors.As(err, &pathErr) {
		return ExitStorageError
	}

	return ExitGeneralError
}
