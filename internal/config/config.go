package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultEndpoint      = "https://jsonplaceholder.typicode.com/posts"
	DefaultStorageKey    = "search_query"
	DefaultSkeletonDwell = "2s"
	DefaultLogLevel      = "info"
)

// Config represents the global ~/.posts/config.toml.
type Config struct {
	DefaultProfile string `toml:"default_profile"`
	Endpoint       string `toml:"endpoint"`
	StorageKey     string `toml:"storage_key"`
	SkeletonDwell  string `toml:"skeleton_dwell"`
	LogLevel       string `toml:"log_level"`
}

// Defaults returns a config with every field set to its built-in value.
func Defaults() *Config {
	return &Config{
		Endpoint:      DefaultEndpoint,
		StorageKey:    DefaultStorageKey,
		SkeletonDwell: DefaultSkeletonDwell,
		LogLevel:      DefaultLogLevel,
	}
}

// Load reads config from the given path. Returns nil config and error if file missing.
func Load(path string) (*Config, error) {
	var cfg Config
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault reads config from path and fills unset fields with defaults.
// A missing file is not an error.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	cfg.fillDefaults()
	if _, err := cfg.Dwell(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) fillDefaults() {
	d := Defaults()
	if c.Endpoint == "" {
		c.Endpoint = d.Endpoint
	}
	if c.StorageKey == "" {
		c.StorageKey = d.StorageKey
	}
	if c.SkeletonDwell == "" {
		c.SkeletonDwell = d.SkeletonDwell
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
}

// Dwell parses the skeleton dwell duration. Zero disables the skeleton.
func (c *Config) Dwell() (time.Duration, error) {
	d, err := time.ParseDuration(c.SkeletonDwell)
	if err != nil {
		return 0, fmt.Errorf("invalid skeleton_dwell %q: %w", c.SkeletonDwell, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid skeleton_dwell %q: must not be negative", c.SkeletonDwell)
	}
	return d, nil
}

// Save writes config to the given path, creating parent dirs as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	encErr := toml.NewEncoder(f).Encode(cfg)
	if closeErr := f.Close(); closeErr != nil && encErr == nil {
		return closeErr
	}
	return encErr
}
