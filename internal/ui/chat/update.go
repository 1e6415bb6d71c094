// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wkdwlgus/kids-chatbot-service/internal/ui/components"
)

const noticeSaveFailed = "대화 기록을 저장하지 못했어요"

// Update handles messages and updates the model.
func (p Page) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.layout(msg.Width, msg.Height)
		return p, nil

	case tea.KeyMsg:
		return p.handleKey(msg)

	case tea.MouseMsg:
		if p.phase == PhaseActive {
			p.thread.Update(msg)
		}
		return p, nil

	case replyMsg:
		return p.handleReply(msg)

	case exportDoneMsg:
		return p.handleExportDone(msg)

	case storeChangedMsg:
		if p.svc.Store.Reload() {
			p.logger.Debug("history changed by another instance", "messages", p.svc.Store.Len())
			if p.svc.Store.Len() > 0 {
				p.activate()
			}
			p.refresh()
		}
		return p, waitForChange(p.watcher)

	case watcherClosedMsg:
		return p, nil

	case components.TypingTickMsg, spinner.TickMsg:
		var cmd tea.Cmd
		p.typing, cmd = p.typing.Update(msg)
		return p, cmd
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (p Page) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Quit):
		p.life.cancel()
		return p, tea.Quit

	case key.Matches(msg, p.keys.Send):
		var cmd tea.Cmd
		p.input.Submit(func(text string) {
			cmd = p.send(text)
		})
		return p, cmd

	case key.Matches(msg, p.keys.NextPrompt):
		p.input.SetValue(p.prompts.Next())
		p.refresh()
		return p, nil

	case key.Matches(msg, p.keys.PrevPrompt):
		p.input.SetValue(p.prompts.Prev())
		p.refresh()
		return p, nil
	}

	if p.phase == PhaseActive {
		switch {
		case key.Matches(msg, p.keys.NextMarker):
			p.thread.SelectNext()
			return p, nil

		case key.Matches(msg, p.keys.PrevMarker):
			p.thread.SelectPrev()
			return p, nil

		case key.Matches(msg, p.keys.ClosePopover):
			p.thread.ClearSelection()
			return p, nil

		case key.Matches(msg, p.keys.Clear):
			p.clear()
			return p, nil

		case key.Matches(msg, p.keys.Export):
			return p, exportCmd(p.export, p.svc.Store.Messages(), p.svc.IDs.Current(), p.now())

		case key.Matches(msg, p.keys.PageUp):
			p.thread.PageUp()
			return p, nil

		case key.Matches(msg, p.keys.PageDown):
			p.thread.PageDown()
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// =============================================================================
// EXCHANGE
// =============================================================================

// send appends the user message and starts the exchange. The typing
// indicator starts with the first outstanding request.
func (p *Page) send(text string) tea.Cmd {
	before := p.svc.Store.Len()
	p.svc.Submit(text)
	p.noteSave(p.svc.Store.Len() > before)

	p.status.Info = ""
	p.activate()
	p.prompts.Reset()
	p.inFlight++
	p.refresh()
	p.thread.ScrollToBottom()

	cmds := []tea.Cmd{fetchCmd(p.life.ctx, p.svc, text)}
	if p.inFlight == 1 {
		cmds = append(cmds, p.typing.Start())
	}
	return tea.Batch(cmds...)
}

// handleReply records a finished exchange. Replies are appended in the
// order they arrive.
func (p Page) handleReply(msg replyMsg) (tea.Model, tea.Cmd) {
	if p.inFlight > 0 {
		p.inFlight--
	}
	before := p.svc.Store.Len()
	p.svc.Apply(msg.result)
	p.noteSave(p.svc.Store.Len() > before)

	if p.inFlight == 0 {
		p.typing.Stop()
	}
	p.refresh()
	return p, nil
}

// clear resets the thread to the welcome message.
func (p *Page) clear() {
	if err := p.svc.Store.Clear(); err != nil {
		p.logger.Error("failed to clear history", "error", err)
		p.status.Notice = noticeSaveFailed
	} else {
		p.status.Notice = ""
	}
	p.refresh()
	p.thread.ScrollToBottom()
}

func (p *Page) noteSave(ok bool) {
	if ok {
		p.status.Notice = ""
	} else {
		p.status.Notice = noticeSaveFailed
	}
}
