// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - One-shot question command.
//
// Usage:
//
//	kidsguide ask "비 오는 날 아이랑 갈 만한 곳"
//	echo "한남동 근처 공원" | kidsguide ask -
//
// The exchange uses the persisted conversation identifier, so the backend
// sees it as part of the same conversation, but the thread itself is held
// in memory and never written.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"unicode/utf8"

	"github.com/wkdwlgus/kids-chatbot-service/internal/storage"
	"github.com/wkdwlgus/kids-chatbot-service/internal/ui/components"
)

const askExample = `kidsguide ask "주말에 갈 만한 실내 놀이터"`

// HandleAsk sends one message and prints the reply. A failed exchange
// still prints the apology, then returns the error.
func HandleAsk(args Args) error {
	query, err := askQuery(args.Query)
	if err != nil {
		return err
	}

	a, err := openApp(args)
	if err != nil {
		return err
	}
	defer a.Close()

	store := storage.NewMessageStore(storage.NewMemoryKV(), storage.WithLogger(a.logger))
	svc := a.service(store)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	svc.Submit(query)
	res := svc.Fetch(ctx, query)
	msg := svc.Apply(res)

	newReplyPrinter(stdout, a.cfg.UI.Theme, a.logger).Print(msg)
	if res.Err != nil {
		return &CommandError{Command: "ask", Err: res.Err}
	}
	return nil
}

// askQuery resolves the question text. "-", or no text with piped stdin,
// reads the question from stdin.
func askQuery(arg string) (string, error) {
	if arg == "-" || (arg == "" && !IsTTY()) {
		data, err := io.ReadAll(io.LimitReader(stdin, int64(components.MaxInputChars)*utf8.UTFMax))
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		arg = string(data)
	}

	query := components.Normalize(arg)
	if query == "" {
		return "", ErrMissingArgument("text", askExample)
	}
	if n := utf8.RuneCountInString(query); n > components.MaxInputChars {
		return "", &UsageError{
			Message: fmt.Sprintf("question is %d characters, the limit is %d", n, components.MaxInputChars),
		}
	}
	return query, nil
}
