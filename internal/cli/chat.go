// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Line-mode chat for terminals without full-screen support.
//
// Usage:
//
//	kidsguide chat
//
// Commands inside the session:
//
//	/clear   Reset the conversation to the welcome message
//	/help    Show the commands
//	/quit    End the session (also /exit, Ctrl+C, Ctrl+D)
//
// The thread is shared with the full-screen client and purged on exit the
// same way.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/wkdwlgus/kids-chatbot-service/internal/conversation"
	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
	"github.com/wkdwlgus/kids-chatbot-service/internal/ui/components"
)

const chatPrompt = "나> "

const chatHelp = `/clear  대화 초기화
/help   도움말
/quit   종료`

// =============================================================================
// INPUT HISTORY
// =============================================================================

// lineReader reads one line of user input.
type lineReader interface {
	ReadInput(prompt string) (string, error)
	Close()
}

// ChatCLI provides input history and line editing for interactive chat.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a line editor whose input history lives in
// historyFile.
func NewChatCLI(historyFile string) *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	c := &ChatCLI{line: line, historyFile: historyFile}
	c.LoadHistory()
	return c
}

// LoadHistory loads input history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists input history with owner-only permissions.
func (c *ChatCLI) SaveHistory() {
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and restores the terminal.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// COMMAND
// =============================================================================

// HandleChat runs the line-mode client.
func HandleChat(args Args) error {
	a, err := openApp(args)
	if err != nil {
		return err
	}
	defer a.Close()

	a.store.Load()
	session := &chatSession{
		svc:     a.service(a.store),
		printer: newReplyPrinter(stdout, a.cfg.UI.Theme, a.logger),
	}

	reader := NewChatCLI(filepath.Join(a.cfg.DataDir(), "chat_history"))
	defer reader.Close()

	err = session.run(reader)
	if !a.cfg.Storage.KeepHistory {
		if purgeErr := a.store.Purge(); purgeErr != nil {
			a.logger.Warn("failed to purge history", "error", purgeErr)
			err = errors.Join(err, purgeErr)
		}
	}
	return err
}

// chatSession is the REPL state.
type chatSession struct {
	svc     *conversation.Service
	printer *replyPrinter
}

// run shows the thread and answers lines until the reader ends.
func (s *chatSession) run(reader lineReader) error {
	fmt.Fprintln(stdout, TitleStyle.Render(model.AppTitle))
	fmt.Fprintln(stdout, DimStyle.Render(model.HeroSubtitle))
	fmt.Fprintln(stdout)

	msgs := s.svc.Store.Messages()
	for _, msg := range msgs {
		s.printer.Print(msg)
	}
	if len(msgs) == 0 {
		s.printPrompts()
	}

	for {
		input, err := reader.ReadInput(chatPrompt)
		if err != nil {
			// Ctrl+C, Ctrl+D and closed stdin all end the session
			fmt.Fprintln(stdout)
			return nil
		}

		text := components.Normalize(input)
		if text == "" {
			continue
		}

		if strings.HasPrefix(text, "/") {
			if !s.command(text) {
				return nil
			}
			continue
		}

		s.exchange(text)
	}
}

// command handles a slash command and reports whether the session
// continues.
func (s *chatSession) command(text string) bool {
	switch strings.ToLower(strings.Fields(text)[0]) {
	case "/quit", "/exit", "/q":
		return false
	case "/clear", "/reset":
		if err := s.svc.Store.Clear(); err != nil {
			fmt.Fprintf(stderr, "%s %v\n", WarningStyle.Render("[WARN]"), err)
		}
		for _, msg := range s.svc.Store.Messages() {
			s.printer.Print(msg)
		}
	case "/help", "/?":
		fmt.Fprintln(stdout, chatHelp)
	default:
		fmt.Fprintf(stdout, "%s\n%s\n", WarningStyle.Render("알 수 없는 명령이에요: "+text), chatHelp)
	}
	return true
}

// exchange sends text and prints the reply. Ctrl+C while waiting cancels
// the request, which then ends in the apology message.
func (s *chatSession) exchange(text string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Fprintln(stdout, DimStyle.Render(model.TypingPhrases[0]))
	s.printer.Print(s.svc.Exchange(ctx, text))
}

func (s *chatSession) printPrompts() {
	fmt.Fprintln(stdout, DimStyle.Render("예시 질문:"))
	for _, p := range model.ExamplePrompts {
		fmt.Fprintln(stdout, DimStyle.Render("  - "+p))
	}
	fmt.Fprintln(stdout)
}
