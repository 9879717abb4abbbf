// ABOUTME: CLI entry point for plottheme
// ABOUTME: Builds the cobra command tree and exits non-zero on error

package main

import (
	"context"
	"os"
	"os/signal"

	// Sets the background answer before any prompt asks the terminal.
	_ "github.com/mauromedda/plottheme/internal/termfix"

	"github.com/mauromedda/plottheme/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
