// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wkdwlgus/kids-chatbot-service/internal/conversation"
	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
	"github.com/wkdwlgus/kids-chatbot-service/internal/ui/components"
	"github.com/wkdwlgus/kids-chatbot-service/internal/ui/styles"
)

// =============================================================================
// PHASE
// =============================================================================

// Phase is the screen layout. It only ever moves from Landing to Active.
type Phase int

const (
	PhaseLanding Phase = iota // Hero view, nothing sent yet
	PhaseActive               // Thread view
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseActive {
		return "active"
	}
	return "landing"
}

// ChangeSource reports rewrites of the persisted history by other
// instances. *storage.Watcher implements it.
type ChangeSource interface {
	Changes() <-chan struct{}
	Close() error
}

// Options configures a Page.
type Options struct {
	Service        *conversation.Service
	Theme          *styles.Theme
	Watcher        ChangeSource           // Optional
	Maps           components.MapRenderer // Defaults to a TerminalMap
	TypingInterval time.Duration
	KeepHistory    bool   // Skip purging the history on Close
	ExportDir      string // Target of Markdown exports, defaults to "exports"
	Logger         *slog.Logger
}

// =============================================================================
// PAGE MODEL
// =============================================================================

// Page is the Bubble Tea model of the whole screen.
type Page struct {
	svc     *conversation.Service
	theme   *styles.Theme
	keys    KeyMap
	logger  *slog.Logger
	watcher ChangeSource
	life    *lifecycle
	export  string
	now     func() time.Time

	phase    Phase
	inFlight int

	input   *components.Input
	prompts *components.Prompts
	thread  *components.Thread
	typing  components.Typing
	hero    components.Hero
	status  *components.StatusBar

	width  int
	height int
}

// lifecycle is shared by all copies of a Page.
type lifecycle struct {
	ctx         context.Context
	cancel      context.CancelFunc
	keepHistory bool
	once        sync.Once
	err         error
}

// New loads the stored history and builds the page. The page starts in
// the thread view when history exists.
func New(opts Options) Page {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme(styles.ModeAuto)
	}
	maps := opts.Maps
	if maps == nil {
		maps = components.NewTerminalMap(theme)
	}
	exportDir := opts.ExportDir
	if exportDir == "" {
		exportDir = "exports"
	}
	interval := opts.TypingInterval
	if interval <= 0 {
		interval = model.DefaultTypingInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	prompts := components.NewPrompts(theme, model.ExamplePrompts)
	bubble := components.NewBubble(theme, components.NewMarkdown(theme.GlamourStyle(), logger), maps)

	p := Page{
		svc:     opts.Service,
		theme:   theme,
		keys:    DefaultKeyMap(),
		logger:  logger,
		watcher: opts.Watcher,
		life:    &lifecycle{ctx: ctx, cancel: cancel, keepHistory: opts.KeepHistory},
		export:  exportDir,
		now:     time.Now,
		input:   components.NewInput(theme, components.VariantHero),
		prompts: prompts,
		thread:  components.NewThread(theme, bubble, prompts),
		typing:  components.NewTyping(theme, model.TypingPhrases, interval),
		hero:    components.NewHero(theme),
		status:  components.NewStatusBar(theme),
	}

	if len(p.svc.Store.Load()) > 0 {
		p.activate()
	}
	p.input.Focus()
	p.layout(80, 24)
	p.refresh()
	return p
}

// Phase returns the current layout phase.
func (p Page) Phase() Phase {
	return p.phase
}

// InFlight returns the number of outstanding requests.
func (p Page) InFlight() int {
	return p.inFlight
}

// Close ends the session: outstanding requests are cancelled, the watcher
// is stopped and the message history is purged unless it is kept by
// configuration. The conversation identifier is never touched. Safe to call
// more than once.
func (p Page) Close() error {
	p.life.once.Do(func() {
		p.life.cancel()
		var errs []error
		if p.watcher != nil {
			errs = append(errs, p.watcher.Close())
		}
		if !p.life.keepHistory {
			errs = append(errs, p.svc.Store.Purge())
		}
		p.life.err = errors.Join(errs...)
		if p.life.err != nil {
			p.logger.Warn("session cleanup incomplete", "error", p.life.err)
		}
	})
	return p.life.err
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the cursor blink and the change feed.
func (p Page) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForChange(p.watcher))
}

// activate switches to the thread view.
func (p *Page) activate() {
	if p.phase == PhaseActive {
		return
	}
	p.phase = PhaseActive
	p.input.SetVariant(components.VariantChat)
	if p.width > 0 {
		p.layout(p.width, p.height)
	}
}

// refresh pushes the store contents into the thread and status bar.
func (p *Page) refresh() {
	p.thread.SetMessages(p.svc.Store.Messages())
	p.thread.SetPending(p.inFlight > 0)
	p.status.MessageCount = p.svc.Store.Len()
	p.status.InFlight = p.inFlight
	p.status.ConversationID = p.svc.IDs.Current()
}

// layout distributes the window between the parts of the current phase.
func (p *Page) layout(width, height int) {
	p.width, p.height = width, height
	p.theme.SetSize(width, height)
	p.status.Width = width

	if p.phase == PhaseLanding {
		p.hero.SetSize(width, height-1)
		p.input.SetWidth(p.hero.ContentWidth())
		return
	}
	p.input.SetWidth(width)
	// header, typing line, input (2), status
	p.thread.SetSize(width, max(height-5, 3))
}
