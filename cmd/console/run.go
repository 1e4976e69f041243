package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"
)

// run blocks until the process is signalled or the app asks to shut down.
func run(ctx context.Context, app *fx.App) {
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "procurement console: invalid configuration: %v\n", err)
		os.Exit(2)
	}
	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "procurement console: failed to start: %v\n", err)
		os.Exit(1)
	}

	select {
	case <-ctx.Done():
	case <-app.Done():
	}

	if err := app.Stop(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "procurement console: failed to stop: %v\n", err)
		os.Exit(1)
	}
}
