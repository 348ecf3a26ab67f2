package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/calyxcontainers/supplytrack/internal/cli"
	"github.com/calyxcontainers/supplytrack/internal/config"
	"github.com/calyxcontainers/supplytrack/internal/service"
	"github.com/calyxcontainers/supplytrack/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "supplytrack",
	})

	st, err := store.Open(cfg.DataDir, logger)
	if err != nil {
		return fmt.Errorf("opening data dir: %w", err)
	}

	svcs := service.New(st)

	app := &cli.App{
		Projects: svcs.Projects,
		Metrics:  svcs.Metrics,
		Data:     svcs.Data,
		Store:    st,
		Config:   cfg,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
