// Package config loads Snapblocks configuration from TOML files.
//
// All settings are optional; Default returns a fully usable configuration
// and Load overlays a TOML file on top of it. Example:
//
//	[metrics]
//	min_width = 48
//	notch_depth = 12
//
//	[server]
//	addr = ":8080"
//
//	[cache]
//	backend = "file"
//	dir = "~/.cache/snapblocks"
//
//	[store]
//	backend = "memory"
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/snapblocks/snapblocks/pkg/block/layout"
	"github.com/snapblocks/snapblocks/pkg/errors"
)

// Duration is a time.Duration that unmarshals from TOML strings like "30s".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the value as a standard time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is the full application configuration.
type Config struct {
	Metrics layout.Metrics `toml:"metrics"`
	Server  Server         `toml:"server"`
	Cache   CacheConfig    `toml:"cache"`
	Store   StoreConfig    `toml:"store"`
}

// Server holds HTTP server settings.
type Server struct {
	Addr            string   `toml:"addr"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// CacheConfig selects and configures the artifact cache backend.
type CacheConfig struct {
	// Backend is one of "file", "redis" or "none".
	Backend string `toml:"backend"`
	// Dir is the cache directory for the file backend.
	Dir string `toml:"dir"`
	// TTL is how long cached artifacts stay valid; 0 means forever.
	TTL Duration `toml:"ttl"`

	// Redis settings, used when Backend is "redis".
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// StoreConfig selects and configures the block definition store.
type StoreConfig struct {
	// Backend is one of "memory" or "mongo".
	Backend string `toml:"backend"`

	// Mongo settings, used when Backend is "mongo".
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Metrics: layout.DefaultMetrics(),
		Server: Server{
			Addr:            ":8080",
			ReadTimeout:     Duration(10 * time.Second),
			WriteTimeout:    Duration(30 * time.Second),
			ShutdownTimeout: Duration(10 * time.Second),
		},
		Cache: CacheConfig{
			Backend: "file",
			Dir:     defaultCacheDir(),
			TTL:     Duration(24 * time.Hour),
		},
		Store: StoreConfig{
			Backend:         "memory",
			MongoDatabase:   "snapblocks",
			MongoCollection: "blocks",
		},
	}
}

// Load reads a TOML file and overlays it on the defaults.
// An empty path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInternal, err, "failed to read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "failed to parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the application cannot run with.
func (c *Config) Validate() error {
	m := c.Metrics
	if m.MinWidth <= 0 || m.MinHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidMetrics, "metrics floors must be positive")
	}
	if m.NotchDepth <= 0 || m.NotchWidth <= 0 || m.CornerOffset < 0 {
		return errors.New(errors.ErrCodeInvalidMetrics, "notch dimensions must be positive")
	}
	// The nested attachment notch has to fit inside the statement carve,
	// and the output tab inside the block's minimum height.
	if m.StatementIndent < m.CornerOffset+m.NotchWidth {
		return errors.New(errors.ErrCodeInvalidMetrics,
			"statement_indent %d too small for corner_offset + notch_width %d",
			m.StatementIndent, m.CornerOffset+m.NotchWidth)
	}
	if m.MinHeight < m.CornerOffset+m.NotchWidth {
		return errors.New(errors.ErrCodeInvalidMetrics,
			"min_height %d too small for corner_offset + notch_width %d",
			m.MinHeight, m.CornerOffset+m.NotchWidth)
	}

	switch c.Cache.Backend {
	case "file", "redis", "none":
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q", c.Cache.Backend)
	}
	switch c.Store.Backend {
	case "memory", "mongo":
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown store backend %q", c.Store.Backend)
	}
	return nil
}

func defaultCacheDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return dir + "/snapblocks"
	}
	return ".snapblocks-cache"
}
