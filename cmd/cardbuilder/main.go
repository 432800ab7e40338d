// Command cardbuilder manages saved card games, personal statistics and the
// card editor selection from the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/osse101/CardBuilder_Go/internal/bootstrap"
	"github.com/osse101/CardBuilder_Go/internal/config"
	"github.com/osse101/CardBuilder_Go/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", LogMsgConfigFailed, err)
		return exitError
	}

	logOutput, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}

	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())

	repos, err := bootstrap.Open(ctx, cfg)
	if err != nil {
		slog.Error(bootstrap.ErrMsgFailedOpenBackend, "error", err)
		fmt.Fprintln(os.Stderr, err)
		bootstrap.Shutdown(nil, logOutput)
		return exitError
	}
	defer bootstrap.Shutdown(repos, logOutput)

	app := &App{Config: cfg, Repos: repos, Out: os.Stdout}
	return execute(ctx, DefaultRegistry(), app, args)
}

// execute dispatches args and maps the outcome to an exit code
func execute(ctx context.Context, registry *Registry, app *App, args []string) int {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgCommandStarted, "args", args)

	err := registry.Dispatch(ctx, app, args)
	if err == nil {
		return exitOK
	}

	log.Error(LogMsgCommandFailed, "error", err)
	fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
	if errors.Is(err, errUsage) {
		return exitUsage
	}
	return exitError
}
