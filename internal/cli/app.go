// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// app.go - Shared bootstrap for commands that touch local state.

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/wkdwlgus/kids-chatbot-service/internal/chatapi"
	"github.com/wkdwlgus/kids-chatbot-service/internal/config"
	"github.com/wkdwlgus/kids-chatbot-service/internal/conversation"
	"github.com/wkdwlgus/kids-chatbot-service/internal/logging"
	"github.com/wkdwlgus/kids-chatbot-service/internal/session"
	"github.com/wkdwlgus/kids-chatbot-service/internal/storage"
	"github.com/wkdwlgus/kids-chatbot-service/internal/ui/chat"
)

// loadConfig reads the config file and applies command-line overrides,
// which take precedence over both the file and the environment.
func loadConfig(args Args) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, &ConfigError{Err: err}
	}

	if args.APIURL != "" {
		cfg.API.BaseURL = strings.TrimSuffix(args.APIURL, "/")
	}
	if args.Backend != "" {
		cfg.Storage.Backend = args.Backend
	}
	if args.KeepHistory {
		cfg.Storage.KeepHistory = true
	}
	if args.NoAltScreen {
		cfg.UI.AltScreen = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Err: err}
	}
	return cfg, nil
}

// app holds the state shared by the client commands.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	kv     storage.KV
	store  *storage.MessageStore
	ids    *session.IDStore

	logCloser io.Closer
}

// openApp loads configuration, opens the log and the persisted state and
// makes sure a conversation identifier exists.
func openApp(args Args) (*app, error) {
	cfg, err := loadConfig(args)
	if err != nil {
		return nil, err
	}

	logger, logCloser, err := logging.OpenFile(cfg.LogPath(), cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(stderr, "%s %v\n", WarningStyle.Render("[WARN]"), err)
		logger, logCloser = logging.Discard(), io.NopCloser(nil)
	}

	kv, err := storage.Open(cfg.Storage.Backend, cfg.DataDir())
	if err != nil {
		logCloser.Close()
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.Storage.Backend, err)
	}

	a := &app{
		cfg:       cfg,
		logger:    logger,
		kv:        kv,
		store:     storage.NewMessageStore(kv, storage.WithLogger(logger)),
		ids:       session.NewIDStore(kv),
		logCloser: logCloser,
	}
	if _, err := a.ids.Ensure(); err != nil {
		logger.Warn("failed to ensure conversation id", "error", err)
	}
	logger.Debug("state opened", "backend", cfg.Storage.Backend, "dir", cfg.DataDir())
	return a, nil
}

// service builds a conversation service over store, talking to the
// configured backend.
func (a *app) service(store *storage.MessageStore) *conversation.Service {
	client := chatapi.NewClient(a.cfg.API.BaseURL,
		chatapi.WithPath(a.cfg.API.ChatPath),
		chatapi.WithTimeout(a.cfg.API.Timeout.Duration),
		chatapi.WithLogger(a.logger),
	)
	return conversation.NewService(client, store, a.ids, a.logger)
}

// watcher returns a history watcher when the backend supports one and
// instance sync is enabled. Failures disable sync.
func (a *app) watcher() chat.ChangeSource {
	if !a.cfg.Storage.SyncInstances {
		return nil
	}
	fileKV, ok := a.kv.(*storage.FileKV)
	if !ok {
		return nil
	}
	w, err := storage.NewWatcher(fileKV, storage.DefaultDebounce, a.logger)
	if err != nil {
		a.logger.Warn("instance sync disabled", "error", err)
		return nil
	}
	return w
}

// Close releases the store and the log file.
func (a *app) Close() error {
	return errors.Join(a.kv.Close(), a.logCloser.Close())
}
