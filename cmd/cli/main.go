package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/notemark/internal/buildinfo"
	"github.com/dmitrijs2005/notemark/internal/client/cli"
	"github.com/dmitrijs2005/notemark/internal/client/config"
	"github.com/dmitrijs2005/notemark/internal/logging"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	log, err := logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("error initializing logger: %w", err)
	}

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		return err
	}

	app.Run(ctx)
	// Restore default signal handling so a second interrupt ends the process.
	stop()

	// The final save must run even after a signal cancelled ctx.
	closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.Close(closeCtx); err != nil {
		log.Error(closeCtx, "shutdown failed", "error", err)
		return err
	}
	return nil
}
