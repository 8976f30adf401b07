package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/pxdal/buckshot/internal/config"
)

// Globals are flags shared by every subcommand.
type Globals struct {
	Config   string `short:"c" default:"buckshot.hcl" type:"path" help:"HCL config file (missing file means defaults)"`
	LogLevel string `help:"Log level: debug, info, warn, error (overrides simulation.log_level)"`
	Debug    bool   `short:"d" help:"Shorthand for --log-level=debug"`
}

func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", g.Config, err)
	}
	return cfg, nil
}

// logger builds the stderr logger. fallback is used when no flag is set.
func (g *Globals) logger(fallback string) *log.Logger {
	name := fallback
	if g.LogLevel != "" {
		name = g.LogLevel
	}
	if g.Debug {
		name = "debug"
	}

	level, err := log.ParseLevel(name)
	if err != nil {
		level = log.WarnLevel
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	if err != nil {
		logger.Warn("Unknown log level, using warn", "level", name)
	}
	return logger
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(logger *log.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logger.Info("Received signal, shutting down", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
