// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
	"github.com/wkdwlgus/kids-chatbot-service/internal/storage"
	"github.com/wkdwlgus/kids-chatbot-service/internal/util"
)

// =============================================================================
// EXPORT HANDLERS
// =============================================================================

const noticeExportFailed = "대화를 내보내지 못했어요"

// exportDoneMsg reports where the thread was written.
type exportDoneMsg struct {
	path string
	err  error
}

// exportCmd writes a snapshot of the thread as Markdown off the UI goroutine.
func exportCmd(dir string, msgs []model.Message, conversationID string, now time.Time) tea.Cmd {
	return func() tea.Msg {
		path, err := writeExport(dir, msgs, conversationID, now)
		return exportDoneMsg{path: path, err: err}
	}
}

// writeExport writes the thread to dir/kidsguide-YYYYMMDD-HHMMSS.md.
func writeExport(dir string, msgs []model.Message, conversationID string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(dir, "kidsguide-"+now.Format("20060102-150405")+".md")
	doc := storage.ExportMarkdown(msgs, conversationID)
	if err := util.AtomicWriteFile(path, []byte(doc), 0600); err != nil {
		return "", err
	}
	return path, nil
}

// handleExportDone reports the export outcome in the status bar.
func (p Page) handleExportDone(msg exportDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		p.logger.Error("export failed", "error", msg.err)
		p.status.Info = ""
		p.status.Notice = noticeExportFailed
		return p, nil
	}
	p.logger.Info("conversation exported", "path", msg.path)
	p.status.Info = "내보냄: " + filepath.Base(msg.path)
	return p, nil
}
