// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"

	"github.com/wkdwlgus/kids-chatbot-service/internal/storage"
)

// HandleHistory prints the persisted thread, as text or with --markdown
// as a Markdown document.
func HandleHistory(args Args) error {
	a, err := openApp(args)
	if err != nil {
		return err
	}
	defer a.Close()

	msgs := a.store.Load()
	if args.Markdown {
		fmt.Fprint(stdout, storage.ExportMarkdown(msgs, a.ids.Current()))
		return nil
	}
	fmt.Fprintln(stdout, strings.TrimRight(storage.FormatHistory(msgs), "\n"))
	return nil
}

// HandleReset clears the persisted thread to the welcome message. The
// conversation identifier is kept.
func HandleReset(args Args) error {
	a, err := openApp(args)
	if err != nil {
		return err
	}
	defer a.Close()

	a.store.Load()
	if err := a.store.Clear(); err != nil {
		return &CommandError{Command: "reset", Err: err}
	}
	fmt.Fprintln(stdout, SuccessStyle.Render("대화를 초기화했어요."))
	return nil
}

// HandleID prints the conversation identifier.
func HandleID(args Args) error {
	a, err := openApp(args)
	if err != nil {
		return err
	}
	defer a.Close()

	id := a.ids.Current()
	if id == "" {
		return &CommandError{Command: "id", Err: fmt.Errorf("no conversation id stored in %s", a.cfg.DataDir())}
	}
	fmt.Fprintln(stdout, id)
	return nil
}
