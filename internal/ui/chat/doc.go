// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package chat provides the Bubble Tea model of the kidsguide screen.

# Phases

A Page starts in PhaseLanding (hero headline, large input, example prompts)
unless stored history exists. The first submitted message moves it to
PhaseActive (header, thread, typing line, input, status bar). The move is
one way.

# Exchange

Enter appends the user message right away and starts a request in a
tea.Cmd. Several requests may be outstanding; each reply, or the apology
when one fails, is appended in the order it arrives. The typing indicator
runs while at least one request is outstanding.

# Key Bindings

	enter       send the draft
	tab         fill the draft with the next example prompt
	shift+tab   previous example prompt
	ctrl+n/p    open the next/previous place of the latest map
	esc         close the place popover
	ctrl+l      reset the conversation to the welcome message
	ctrl+s      export the thread as Markdown
	pgup/pgdown scroll the thread
	ctrl+c      quit

# Lifecycle

The caller defers Page.Close around the program run. Close cancels
outstanding requests, stops the history watcher and purges the stored
messages unless history is kept by configuration.

	page := chat.New(chat.Options{Service: svc, Theme: theme})
	defer page.Close()
	_, err := tea.NewProgram(page, tea.WithAltScreen()).Run()
*/
package chat
