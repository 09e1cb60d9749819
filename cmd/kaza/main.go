// Package main is the entry point for kaza, a missed-prayer tracker.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jwulff/kaza-go/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		os.Exit(1)
	}
}
