package config

import (
	"os"
	"path/filepath"
	"testing"

	"resume-storage/internal/storage"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"ENV", "STORAGE_CAPACITY", "STORAGE_STRATEGY", "LOG_LEVEL", "RESUMES_CONFIG"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearConfigEnv(t)
	chdir(t, t.TempDir())

	cfg := Load()
	if cfg.Capacity != 10000 {
		t.Fatalf("expected capacity 10000, got %d", cfg.Capacity)
	}
	if cfg.Strategy != "linear" {
		t.Fatalf("expected linear strategy, got %s", cfg.Strategy)
	}
	if cfg.Env != "dev" {
		t.Fatalf("expected env dev, got %s", cfg.Env)
	}
	if cfg.ConfigFile != "" {
		t.Fatalf("expected no config file, got %s", cfg.ConfigFile)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate defaults: %v", err)
	}
}

func TestLoadReadsYAMLThenEnv(t *testing.T) {
	clearConfigEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", `
env: prod
storage:
  capacity: 25
  strategy: sorted-array
log:
  level: warn
`)
	t.Setenv("RESUMES_CONFIG", path)

	cfg := Load()
	if cfg.Env != "production" || cfg.Capacity != 25 || cfg.Strategy != "sorted" || cfg.LogLevel != "warn" {
		t.Fatalf("unexpected config from file: %+v", cfg)
	}
	if cfg.ConfigFile != path {
		t.Fatalf("expected config file %s, got %s", path, cfg.ConfigFile)
	}

	t.Setenv("STORAGE_CAPACITY", "7")
	t.Setenv("STORAGE_STRATEGY", "linear")
	cfg = Load()
	if cfg.Capacity != 7 || cfg.Strategy != "linear" {
		t.Fatalf("expected env to override file, got %+v", cfg)
	}
}

func TestLoadIgnoresInvalidCapacity(t *testing.T) {
	clearConfigEnv(t)
	chdir(t, t.TempDir())

	for _, raw := range []string{"abc", "0", "-3"} {
		t.Setenv("STORAGE_CAPACITY", raw)
		if cfg := Load(); cfg.Capacity != 10000 {
			t.Fatalf("STORAGE_CAPACITY=%q: expected default capacity, got %d", raw, cfg.Capacity)
		}
	}
}

func TestLoadFileErrors(t *testing.T) {
	clearConfigEnv(t)
	dir := t.TempDir()

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); !os.IsNotExist(err) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	bad := writeFile(t, dir, "bad.yaml", "storage: [unclosed")
	if _, err := LoadFile(bad); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "ok", cfg: Config{Capacity: 1, Strategy: "sorted"}},
		{name: "zero capacity", cfg: Config{Capacity: 0, Strategy: "linear"}, wantErr: true},
		{name: "unknown strategy", cfg: Config{Capacity: 3, Strategy: "hash"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadEnvFilesKeepsExistingValues(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", `
# comment
export STORAGE_STRATEGY="sorted"
STORAGE_CAPACITY=12
not a pair
`)
	t.Setenv("STORAGE_CAPACITY", "5")
	t.Setenv("STORAGE_STRATEGY", "")
	os.Unsetenv("STORAGE_STRATEGY")

	loadEnvFiles(path)

	if got := os.Getenv("STORAGE_STRATEGY"); got != "sorted" {
		t.Fatalf("expected STORAGE_STRATEGY=sorted, got %q", got)
	}
	if got := os.Getenv("STORAGE_CAPACITY"); got != "5" {
		t.Fatalf("expected existing STORAGE_CAPACITY=5 to win, got %q", got)
	}
}

func TestNormalizeStrategyMatchesIndexer(t *testing.T) {
	for _, raw := range []string{"", "linear", "Array", "sorted", " SORTED-ARRAY ", "binary"} {
		t.Run(raw, func(t *testing.T) {
			name := NormalizeStrategy(raw)
			if err := (Config{Capacity: 1, Strategy: raw}).Validate(); err != nil {
				t.Fatalf("Validate(%q): %v", raw, err)
			}
			idx, err := storage.IndexerFor(raw)
			if err != nil {
				t.Fatalf("IndexerFor(%q): %v", raw, err)
			}
			if idx.Name() != name {
				t.Fatalf("expected indexer %s, got %s", name, idx.Name())
			}
		})
	}

	if got := NormalizeStrategy(" Hash "); got != "hash" {
		t.Fatalf("expected hash, got %q", got)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
