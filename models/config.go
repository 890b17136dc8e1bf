// Package models defines data structures shared across the pipeline.
package models

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for the pipeline.
// Values come from config.yaml when present, may be overridden by
// URLSIFT_* environment variables, and CLI flags win over both.
type Config struct {
	Workers   int    `yaml:"workers"`
	OutputDir string `yaml:"output_dir"`
	DBPath    string `yaml:"db_path"`
	StoreRows bool   `yaml:"store_rows"`
}

// DefaultConfig returns the configuration used when no file or
// environment overrides are present.
func DefaultConfig() *Config {
	return &Config{
		Workers:   4,
		OutputDir: ".",
	}
}

// LoadConfig reads configuration from the given YAML file. A missing
// file is not an error; defaults and environment overrides still apply.
func LoadConfig(path string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Workers = getEnvInt("URLSIFT_WORKERS", c.Workers)
	c.OutputDir = getEnv("URLSIFT_OUTPUT_DIR", c.OutputDir)
	c.DBPath = getEnv("URLSIFT_DB_PATH", c.DBPath)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
