package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML layout:
//
//	env: dev
//	storage:
//	  capacity: 10000
//	  strategy: sorted
//	log:
//	  level: info
type fileConfig struct {
	Env     string `yaml:"env"`
	Storage struct {
		Capacity int    `yaml:"capacity"`
		Strategy string `yaml:"strategy"`
	} `yaml:"storage"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// apply overlays the non-zero file values onto cfg.
func (fc fileConfig) apply(cfg Config) Config {
	if fc.Env != "" {
		cfg.Env = fc.Env
	}
	if fc.Storage.Capacity != 0 {
		cfg.Capacity = fc.Storage.Capacity
	}
	if fc.Storage.Strategy != "" {
		cfg.Strategy = fc.Storage.Strategy
	}
	if fc.Log.Level != "" {
		cfg.LogLevel = fc.Log.Level
	}
	return cfg
}
