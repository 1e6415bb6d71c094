// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 150 * time.Millisecond

// =============================================================================
// HISTORY WATCHER
// =============================================================================

// Watcher reports changes to a FileKV's message history made by another
// running instance. Removals are ignored: an instance purging its history on
// exit must not wipe the thread shown by the others.
type Watcher struct {
	watcher  *fsnotify.Watcher
	target   string
	debounce time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	pending time.Time // Zero when no change is waiting

	changes chan struct{}
	ctx     context.Context
	cancel  context.CancelFunc
	done    sync.WaitGroup
}

// NewWatcher watches the directory of kv for writes to KeyMessages.
func NewWatcher(kv *FileKV, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// The key file is replaced by rename, so watch the directory.
	if err := fw.Add(kv.Dir()); err != nil {
		fw.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		watcher:  fw,
		target:   filepath.Clean(kv.Path(KeyMessages)),
		debounce: debounce,
		logger:   logger,
		changes:  make(chan struct{}, 1),
		ctx:      ctx,
		cancel:   cancel,
	}

	w.done.Add(2)
	go w.processEvents()
	go w.processPending()

	return w, nil
}

// Changes delivers one value per settled burst of writes. Closed by Close.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops watching and closes the Changes channel.
func (w *Watcher) Close() error {
	w.cancel()
	err := w.watcher.Close()
	w.done.Wait()
	close(w.changes)
	return err
}

// processEvents records relevant file system events.
func (w *Watcher) processEvents() {
	defer w.done.Done()
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("history watcher panic", "panic", r)
		}
	}()

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.mu.Lock()
			w.pending = time.Now()
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("history watcher error", "error", err)
		}
	}
}

// relevant reports whether event is a write of the history file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// processPending emits a change once writes have been quiet for the
// debounce interval.
func (w *Watcher) processPending() {
	defer w.done.Done()

	tick := w.debounce / 3
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case now := <-ticker.C:
			w.mu.Lock()
			fire := !w.pending.IsZero() && now.Sub(w.pending) >= w.debounce
			if fire {
				w.pending = time.Time{}
			}
			w.mu.Unlock()

			if fire {
				select {
				case w.changes <- struct{}{}:
				default: // A change is already queued
				}
			}
		}
	}
}
