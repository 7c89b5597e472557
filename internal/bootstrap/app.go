package bootstrap

import (
	"fmt"
	"log"

	"resume-storage/internal/shared/config"
	"resume-storage/internal/shared/metrics"
	"resume-storage/internal/shared/telemetry"
	"resume-storage/internal/storage"
)

// App holds the shared dependencies of a resume storage process.
type App struct {
	Config  config.Config
	Engine  *storage.ArrayStorage
	Storage storage.Storage
	Metrics *metrics.Metrics
}

// Build validates cfg and wires the engine, its indexer and instrumentation.
func Build(cfg config.Config) (*App, error) {
	cfg.Strategy = config.NormalizeStrategy(cfg.Strategy)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	telemetry.SetLevel(cfg.LogLevel)

	engine, err := buildEngine(cfg)
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	m.SetCapacity(engine.Capacity())

	app := &App{
		Config:  cfg,
		Engine:  engine,
		Storage: storage.Instrument(engine, m),
		Metrics: m,
	}

	log.Printf("bootstrap: storage ready strategy=%s capacity=%d", engine.Strategy(), engine.Capacity())
	telemetry.Info("storage.ready", map[string]any{
		"env":      cfg.Env,
		"strategy": engine.Strategy(),
		"capacity": engine.Capacity(),
	})
	return app, nil
}

func buildEngine(cfg config.Config) (*storage.ArrayStorage, error) {
	index, err := storage.IndexerFor(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	engine, err := storage.New(cfg.Capacity, index)
	if err != nil {
		return nil, fmt.Errorf("build storage: %w", err)
	}
	return engine, nil
}
