package main

// Interactive resume storage:
//   go run ./cmd/resumes -strategy sorted -capacity 100

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"resume-storage/internal/bootstrap"
	"resume-storage/internal/console"
	"resume-storage/internal/shared/config"
	"resume-storage/internal/shared/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (optional)")
	capacity := flag.Int("capacity", 0, "Maximum number of resumes (overrides config)")
	strategy := flag.String("strategy", "", "Indexing strategy: linear or sorted (overrides config)")
	flag.Parse()

	// Keep stdout for the console; structured logs go to stderr.
	telemetry.SetOutput(os.Stderr)

	cfg := config.Load()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	if *capacity != 0 {
		cfg.Capacity = *capacity
	}
	if *strategy != "" {
		cfg.Strategy = *strategy
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap build: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := console.New(app.Storage, app.Metrics, os.Stdin, os.Stdout)
	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("console: %v", err)
		os.Exit(1)
	}
}
