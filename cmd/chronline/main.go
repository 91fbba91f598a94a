package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/avelorn/chronline/internal/cli"
	"github.com/avelorn/chronline/internal/config"
	"github.com/avelorn/chronline/internal/notify"
	"github.com/avelorn/chronline/internal/service"
	"github.com/avelorn/chronline/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Global flags are peeked ahead of cobra so configuration is settled
	// before any command runs.
	gf := cli.ParseGlobalFlags(os.Args[1:])

	cfg, err := config.Load(gf.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.ApplyFlags(gf.DBPath, gf.LogLevel); err != nil {
		return err
	}

	logger := newLogger(cfg)

	st, err := store.Open(cfg.DatabasePath())
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer st.Close()

	var notifier notify.Notifier = notify.Nop{}
	if cfg.Notifications {
		notifier = notify.NewDesktop()
	}

	app := &cli.App{
		Reports: service.NewReportService(st, cfg.Rules(), notifier, service.NewLogUseCaseObserver(logger)),
		Config:  cfg,
		Logger:  logger,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}

// newLogger builds the slog handler the config asks for. Logs go to stderr
// so command output stays pipeable.
func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
