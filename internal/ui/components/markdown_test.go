// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wkdwlgus/kids-chatbot-service/internal/logging"
)

func TestMarkdown_FailureLogsToInjectedLogger(t *testing.T) {
	var buf bytes.Buffer
	md := NewMarkdown("no-such-style", logging.New(&buf, slog.LevelDebug))

	out := md.Render("서울숲\a 추천", 40)
	require.Equal(t, "서울숲 추천", out)
	require.Contains(t, buf.String(), "markdown renderer unavailable")
	require.Contains(t, buf.String(), "no-such-style")
}

func TestMarkdown_DefaultsToAutoStyle(t *testing.T) {
	md := NewMarkdown("", nil)
	require.Equal(t, "auto", md.Style())
	require.Empty(t, md.Render("\x07\x1b", 40))
}
