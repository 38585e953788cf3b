package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration loaded from config.yaml.
type Config struct {
	HTTPAddr       string `yaml:"http_addr"`
	DBPath         string `yaml:"db_path"`
	StaticDir      string `yaml:"static_dir"`
	LogLevel       string `yaml:"log_level"`
	HealthSchedule string `yaml:"health_schedule"`
}

// envOverrides maps environment variables to the config field they replace.
var envOverrides = []struct {
	key   string
	field func(*Config) *string
}{
	{"PLOTIFY_HTTP_ADDR", func(c *Config) *string { return &c.HTTPAddr }},
	{"PLOTIFY_DB_PATH", func(c *Config) *string { return &c.DBPath }},
	{"PLOTIFY_STATIC_DIR", func(c *Config) *string { return &c.StaticDir }},
	{"PLOTIFY_LOG_LEVEL", func(c *Config) *string { return &c.LogLevel }},
	{"PLOTIFY_HEALTH_SCHEDULE", func(c *Config) *string { return &c.HealthSchedule }},
}

// applyDefaults fills zero/empty fields with sensible defaults.
func (c *Config) applyDefaults() {
	if c.HTTPAddr == "" {
		c.HTTPAddr = ":8080"
	}
	if c.DBPath == "" {
		c.DBPath = "plotify.db"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.HealthSchedule == "" {
		c.HealthSchedule = "@every 5m"
	}
}

// applyEnv overlays PLOTIFY_* environment variables. A .env file in the
// working directory is read first when present; variables already set in the
// process environment win over it.
func (c *Config) applyEnv() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}
	for _, o := range envOverrides {
		if v, ok := os.LookupEnv(o.key); ok && v != "" {
			*o.field(c) = v
		}
	}
	return nil
}

// Load reads and parses the YAML config file at path.
// If the file does not exist, Load returns a default Config so the server
// can start without a config file.
func Load(path string) (*Config, error) {
	var cfg Config

	f, err := os.Open(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("open config %q: %w", path, err)
	default:
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}
