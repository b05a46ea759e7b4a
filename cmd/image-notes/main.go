package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ironsheep/image-notes/internal/config"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr; stdout carries the report.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))
	slog.Debug("image-notes starting", "version", Version, "build_time", BuildTime, "commit", GitCommit)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
