package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"resume-storage/internal/storage"
)

const (
	defaultCapacity   = 10000
	defaultStrategy   = storage.StrategyLinear
	defaultConfigFile = "resumes.yaml"
)

// Config holds application configuration.
type Config struct {
	Env        string
	Capacity   int
	Strategy   string
	LogLevel   string
	ConfigFile string
}

// Load reads configuration with the following precedence, lowest first:
// defaults, YAML file (RESUMES_CONFIG or ./resumes.yaml), environment.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")

	cfg := Defaults()

	path := strings.TrimSpace(os.Getenv("RESUMES_CONFIG"))
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}
	if fc, err := loadFile(path); err == nil {
		cfg = fc.apply(cfg)
		cfg.ConfigFile = path
	} else if explicit || !errors.Is(err, os.ErrNotExist) {
		log.Printf("config: ignoring %s: %v", path, err)
	}

	return applyEnv(cfg)
}

// LoadFile reads configuration from a YAML file on top of the defaults and
// then applies environment overrides.
func LoadFile(path string) (Config, error) {
	fc, err := loadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := fc.apply(Defaults())
	cfg.ConfigFile = path
	return applyEnv(cfg), nil
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Env:      "dev",
		Capacity: defaultCapacity,
		Strategy: defaultStrategy,
		LogLevel: "info",
	}
}

// Validate reports values the storage cannot be built with.
func (c Config) Validate() error {
	if c.Capacity < 1 {
		return fmt.Errorf("capacity must be positive, got %d", c.Capacity)
	}
	if _, ok := storage.CanonicalStrategy(c.Strategy); !ok {
		return fmt.Errorf("strategy must be %s or %s, got %q", storage.StrategyLinear, storage.StrategySorted, c.Strategy)
	}
	return nil
}

func applyEnv(cfg Config) Config {
	if v := os.Getenv("ENV"); v != "" {
		cfg.Env = v
	}
	if raw := strings.TrimSpace(os.Getenv("STORAGE_CAPACITY")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			log.Printf("config: STORAGE_CAPACITY %q invalid, keeping %d", raw, cfg.Capacity)
		} else {
			cfg.Capacity = n
		}
	}
	cfg.Strategy = getEnv("STORAGE_STRATEGY", cfg.Strategy)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	cfg.Env = normalizeEnv(cfg.Env)
	cfg.Strategy = NormalizeStrategy(cfg.Strategy)
	return cfg
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "test":
		return "test"
	default:
		return "dev"
	}
}

// NormalizeStrategy maps strategy aliases to storage.StrategyLinear or
// storage.StrategySorted. Unknown values are returned lowercased so Validate
// can report them.
func NormalizeStrategy(raw string) string {
	if canonical, ok := storage.CanonicalStrategy(raw); ok {
		return canonical
	}
	return strings.ToLower(strings.TrimSpace(raw))
}
