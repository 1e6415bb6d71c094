// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wkdwlgus/kids-chatbot-service/internal/ui/chat"
	"github.com/wkdwlgus/kids-chatbot-service/internal/ui/styles"
)

// HandleTUI runs the full-screen client. The history is purged when the
// program exits, however it exits, unless storage.keep_history is set.
func HandleTUI(args Args) error {
	if !IsTTY() || !IsStdoutTTY() {
		return &UsageError{
			Message: "the full-screen client needs a terminal",
			Example: "kidsguide chat   or   kidsguide ask \"...\"",
		}
	}

	a, err := openApp(args)
	if err != nil {
		return err
	}
	defer a.Close()

	page := chat.New(chat.Options{
		Service:        a.service(a.store),
		Theme:          styles.NewTheme(a.cfg.UI.Theme),
		Watcher:        a.watcher(),
		TypingInterval: a.cfg.UI.TypingInterval.Duration,
		KeepHistory:    a.cfg.Storage.KeepHistory,
		ExportDir:      filepath.Join(a.cfg.DataDir(), "exports"),
		Logger:         a.logger,
	})
	defer page.Close()

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if a.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	a.logger.Info("client started", "api", a.cfg.API.BaseURL, "phase", page.Phase().String())
	if _, err := tea.NewProgram(page, opts...).Run(); err != nil {
		return &CommandError{Command: "tui", Err: err}
	}
	a.logger.Info("client stopped")
	return nil
}
