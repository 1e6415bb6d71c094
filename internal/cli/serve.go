// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/wkdwlgus/kids-chatbot-service/internal/logging"
	"github.com/wkdwlgus/kids-chatbot-service/internal/mockapi"
)

// HandleServeMock runs the development backend until interrupted. It logs
// to stderr rather than the client log file.
func HandleServeMock(args Args) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return &ConfigError{Err: err}
	}

	addr := cfg.Mock.Addr
	if args.Addr != "" {
		addr = args.Addr
	}
	rate := cfg.Mock.RatePerMinute
	if args.Rate != "" {
		if rate, err = ParseIntWithValidation(args.Rate, "--rate"); err != nil {
			return &UsageError{Message: err.Error(), Example: "kidsguide serve-mock --rate 60"}
		}
	}

	srv := mockapi.NewServer(mockapi.Config{
		Addr:          addr,
		Latency:       cfg.Mock.Latency.Duration,
		RatePerMinute: rate,
		Logger:        logging.New(stderr, level),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(stdout, "%s http://%s %s\n",
		TitleStyle.Render("mock backend"), srv.Addr(), DimStyle.Render("(Ctrl+C to stop)"))
	if err := srv.ListenAndServe(ctx); err != nil {
		return &CommandError{Command: "serve-mock", Err: err}
	}
	return nil
}
