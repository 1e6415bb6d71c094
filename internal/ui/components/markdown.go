// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"log/slog"

	"github.com/charmbracelet/glamour"

	"github.com/wkdwlgus/kids-chatbot-service/internal/util"
)

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// Markdown renders message text with glamour. Renderers are built lazily
// per wrap width and reused.
type Markdown struct {
	style     string
	logger    *slog.Logger
	renderers map[int]*glamour.TermRenderer
}

// NewMarkdown creates a renderer for a glamour standard style
// (auto, dark, light or notty). Render failures are logged to logger,
// which defaults to slog.Default.
func NewMarkdown(style string, logger *slog.Logger) *Markdown {
	if style == "" {
		style = "auto"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Markdown{
		style:     style,
		logger:    logger,
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

// Style returns the glamour style name.
func (m *Markdown) Style() string {
	return m.style
}

// Render converts text to terminal markup wrapped at width. Control
// characters are removed first so replies cannot emit escape sequences.
// On renderer failure the sanitized text is returned as is.
func (m *Markdown) Render(text string, width int) string {
	clean := util.StripControl(text)
	if clean == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	r, err := m.renderer(width)
	if err != nil {
		m.logger.Warn("markdown renderer unavailable", "style", m.style, "error", err)
		return clean
	}
	out, err := r.Render(clean)
	if err != nil {
		m.logger.Warn("markdown render failed", "error", err)
		return clean
	}
	return trimBlankLines(out)
}

func (m *Markdown) renderer(width int) (*glamour.TermRenderer, error) {
	if r, ok := m.renderers[width]; ok {
		return r, nil
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width), glamour.WithEmoji()}
	if m.style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(m.style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	m.renderers[width] = r
	return r, nil
}
