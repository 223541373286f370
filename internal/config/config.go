// Package config loads treeline's TOML configuration.
//
// Configuration is optional: every field has a default, and both the CLI and
// the HTTP server run without a config file. When a file is given, its values
// are merged over the defaults and CLI flags override both.
//
// # File Format
//
// treeline.toml contains up to four sections:
//
//	[render]
//	max_cell_width = 80
//
//	[server]
//	addr = ":8080"
//
//	[cache]
//	backend = "file"   # memory | file | redis | none
//	dir = ""           # file backend; empty means the XDG cache dir
//	redis_addr = "localhost:6379"
//	ttl = "24h"
//
//	[log]
//	level = "info"     # debug | info | warn | error
package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/treeline/pkg/cache"
	"github.com/matzehuels/treeline/pkg/errors"
	"github.com/matzehuels/treeline/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "treeline"

// Cache backends selectable via [cache] backend.
const (
	CacheBackendMemory = "memory"
	CacheBackendFile   = "file"
	CacheBackendRedis  = "redis"
	CacheBackendNone   = "none"
)

// Config is the root of treeline.toml.
type Config struct {
	Render RenderConfig `toml:"render"`
	Server ServerConfig `toml:"server"`
	Cache  CacheConfig  `toml:"cache"`
	Log    LogConfig    `toml:"log"`
}

// RenderConfig sets rendering defaults applied when a request or command
// leaves the corresponding option unset.
type RenderConfig struct {
	MaxCellWidth int `toml:"max_cell_width"`
}

// ServerConfig configures the HTTP render service.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// CacheConfig selects and configures the render cache backend.
type CacheConfig struct {
	Backend   string   `toml:"backend"`
	Dir       string   `toml:"dir"`
	RedisAddr string   `toml:"redis_addr"`
	TTL       Duration `toml:"ttl"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Duration wraps time.Duration so TOML files can use "24h" syntax.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Render: RenderConfig{
			MaxCellWidth: pipeline.DefaultMaxCellWidth,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Cache: CacheConfig{
			Backend:   CacheBackendFile,
			RedisAddr: "localhost:6379",
			TTL:       Duration{cache.TTLRender},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the TOML file at path and merges it over Default().
// Keys the file sets win; keys it omits keep their defaults. Unknown keys
// are rejected so typos surface instead of being silently ignored.
func Load(path string) (*Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "config %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values without touching the filesystem or network.
func (c *Config) Validate() error {
	if err := errors.ValidateMaxCellWidth(c.Render.MaxCellWidth); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.max_cell_width")
	}

	switch c.Cache.Backend {
	case "", CacheBackendMemory, CacheBackendFile, CacheBackendRedis, CacheBackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"cache.backend %q (must be one of: memory, file, redis, none)", c.Cache.Backend)
	}

	if c.Cache.Backend == CacheBackendRedis && c.Cache.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
	}

	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl cannot be negative")
	}

	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}

	return nil
}

// ParseLevel maps the configured level name onto a log level.
func (l LogConfig) ParseLevel() (log.Level, error) {
	switch l.Level {
	case "debug":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	}
	return log.InfoLevel, errors.New(errors.ErrCodeInvalidConfig,
		"log.level %q (must be one of: debug, info, warn, error)", l.Level)
}

// Open constructs the cache backend the section describes. An empty backend
// disables caching.
func (c CacheConfig) Open(ctx context.Context) (cache.Cache, error) {
	switch c.Backend {
	case "", CacheBackendNone:
		return cache.NewNullCache(), nil
	case CacheBackendMemory:
		return cache.NewMemoryCache(), nil
	case CacheBackendFile:
		dir := c.Dir
		if dir == "" {
			var err error
			dir, err = DefaultCacheDir()
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeCache, err, "resolve cache dir")
			}
		}
		return cache.NewFileCache(dir)
	case CacheBackendRedis:
		return cache.NewRedisCache(ctx, c.RedisAddr)
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig,
		"cache.backend %q (must be one of: memory, file, redis, none)", c.Backend)
}

// DefaultCacheDir returns the cache directory using the XDG standard
// (~/.cache/treeline/).
func DefaultCacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
