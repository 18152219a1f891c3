package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCommand().ExecuteContext(ctx)
	if err == nil {
		return
	}
	if errors.Is(err, context.Canceled) {
		// An interrupted batch pass publishes nothing; exit quietly.
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "cinelog:", err)
	os.Exit(1)
}
