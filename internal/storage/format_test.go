// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"strings"
	"testing"

	"github.com/wkdwlgus/kids-chatbot-service/internal/model"
)

func TestFormatHistory_Empty(t *testing.T) {
	if got := FormatHistory(nil); got == "" {
		t.Error("FormatHistory(nil) should explain the thread is empty")
	}
}

func TestFormatHistory_MapAndLink(t *testing.T) {
	msgs := []model.Message{
		model.NewUserMessage("한남동 공원"),
		model.NewMapMessage("", "https://map.example/hannam", &model.MapData{
			Markers: []model.Marker{
				{Name: "한남어린이공원", Description: "그늘 많음"},
				{Name: "보광어린이공원"},
			},
		}),
	}

	out := FormatHistory(msgs)
	for _, want := range []string{"한남동 공원", "1. 한남어린이공원 - 그늘 많음", "2. 보광어린이공원", "https://map.example/hannam"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatHistory missing %q:\n%s", want, out)
		}
	}
}

func TestFormatHistory_StripsEscapes(t *testing.T) {
	out := FormatHistory([]model.Message{model.NewAssistantText("\x1b[2Jboom")})
	if strings.Contains(out, "\x1b") {
		t.Errorf("escape sequence leaked: %q", out)
	}
}

func TestExportMarkdown(t *testing.T) {
	msgs := []model.Message{
		model.NewUserMessage("질문"),
		model.NewMapMessage("답변", "https://map.example", nil),
	}
	out := ExportMarkdown(msgs, "conv-1")

	if !strings.HasPrefix(out, "# ") {
		t.Error("Markdown should start with a heading")
	}
	if !strings.Contains(out, "`conv-1`") {
		t.Error("Markdown should include the conversation id")
	}
	if !strings.Contains(out, "[지도 크게 보기](https://map.example)") {
		t.Error("Markdown should link the map")
	}
}
