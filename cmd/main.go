// Package main provides the CLI entrypoint of the sellers.json status check.
// It loads configuration, initializes logging and runs the report.
package main

import (
	"context"
	"os"
	"os/signal"
	"sellerscheck/pkg/logger"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	err := checkCommand().ExecuteContext(ctx)
	logger.Sync()
	stop()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}
