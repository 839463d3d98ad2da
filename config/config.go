// handles configuration: defaults, optional quill.yaml, environment
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all tunable application parameters. Values come from
// defaults, then quill.yaml, then environment variables.
type Config struct {
	BaseURL      string        `yaml:"baseURL"`
	DataDir      string        `yaml:"dataDir"`
	Port         int           `yaml:"port"`
	PostsPerPage int           `yaml:"postsPerPage"`
	CacheTTL     time.Duration `yaml:"cacheTTL"`
}

// Default returns the baseline configuration.
func Default() *Config {
	return &Config{
		BaseURL:      "http://localhost:8000",
		DataDir:      "data",
		Port:         8000,
		PostsPerPage: 9,
		CacheTTL:     5 * time.Minute,
	}
}

// Load builds the configuration from defaults, the YAML file at path
// (missing or malformed files fall back to defaults) and environment
// overrides (BASE_URL, DATA_DIR, PORT).
func Load(path string) *Config {
	cfg := Default()

	if data, err := os.ReadFile(path); err == nil {
		_ = yaml.Unmarshal(data, cfg)
	}

	if v := os.Getenv("BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}

	cfg.validate()
	return cfg
}

// validate clamps values to sane bounds.
func (c *Config) validate() {
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.Port < 1 || c.Port > 65535 {
		c.Port = 8000
	}
	if c.PostsPerPage < 1 {
		c.PostsPerPage = 1
	}
	if c.PostsPerPage > 100 {
		c.PostsPerPage = 100
	}
	if c.CacheTTL < time.Second {
		c.CacheTTL = time.Second
	}
	if c.CacheTTL > time.Hour {
		c.CacheTTL = time.Hour
	}
}
