package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"astar-visualizer/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := cli.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger, err := cli.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if _, err := cli.RunHeadless(ctx, cfg, logger, os.Stdout); err != nil {
			logger.Error("headless run failed", zap.Error(err))
			return 1
		}
		return 0
	}

	v, err := newVisualizer(cfg, logger)
	if err != nil {
		logger.Error("cannot start visualizer", zap.Error(err))
		return 1
	}
	defer v.dispose()
	v.run()
	return 0
}
