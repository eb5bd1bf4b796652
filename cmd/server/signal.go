package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
)

// WaitForShutdown blocks until the process receives SIGINT or SIGTERM.
func WaitForShutdown() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	slog.Info("Shutdown signal received, stopping")
}
