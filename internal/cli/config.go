package cli

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/cyclekit/pkg/cache"
	"github.com/matzehuels/cyclekit/pkg/errors"
)

// defaultServerAddr is the listen address of "serve" when none is configured.
const defaultServerAddr = "127.0.0.1:8080"

// Config is the contents of the configuration file.
//
//	log_level = "debug"
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//	ttl = "24h"
//
//	[server]
//	addr = ":8080"
//
//	[render]
//	labels = ["a", "b", "c"]
type Config struct {
	LogLevel string       `toml:"log_level"`
	Cache    CacheConfig  `toml:"cache"`
	Server   ServerConfig `toml:"server"`
	Render   RenderConfig `toml:"render"`
}

// CacheConfig selects the cache backend.
type CacheConfig struct {
	Backend       string `toml:"backend"`
	Dir           string `toml:"dir"`
	TTL           string `toml:"ttl"`
	RedisAddr     string `toml:"redis_addr"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// RenderConfig configures cycle diagrams.
type RenderConfig struct {
	Labels []string `toml:"labels"`
}

// loadConfig reads the configuration file at path. When path is empty the
// default location is used, and a missing default file yields the zero
// Config. An explicitly named file must exist.
func loadConfig(path string) (Config, error) {
	var cfg Config
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = configPath(); err != nil {
			return cfg, nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open config")
	}
	defer f.Close()

	md, err := toml.NewDecoder(f).Decode(&cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.validate()
}

func (cfg Config) validate() error {
	if cfg.LogLevel != "" {
		if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "log_level")
		}
	}
	switch cfg.Cache.Backend {
	case "", cache.BackendFile, cache.BackendRedis, cache.BackendMongo, cache.BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache.backend %q", cfg.Cache.Backend)
	}
	if _, err := cfg.cacheTTL(); err != nil {
		return err
	}
	return nil
}

// cacheTTL parses cache.ttl. Zero means the backend default.
func (cfg Config) cacheTTL() (time.Duration, error) {
	if cfg.Cache.TTL == "" {
		return 0, nil
	}
	ttl, err := time.ParseDuration(cfg.Cache.TTL)
	if err != nil || ttl < 0 {
		return 0, errors.New(errors.ErrCodeInvalidConfig, "cache.ttl: invalid duration %q", cfg.Cache.TTL)
	}
	return ttl, nil
}

// cacheOptions returns the cache backend options, filling in the default
// directory for the file backend.
func (cfg Config) cacheOptions() (cache.Options, error) {
	opts := cache.Options{
		Backend:       cfg.Cache.Backend,
		Dir:           cfg.Cache.Dir,
		RedisAddr:     cfg.Cache.RedisAddr,
		MongoURI:      cfg.Cache.MongoURI,
		MongoDatabase: cfg.Cache.MongoDatabase,
	}
	if opts.Dir == "" && (opts.Backend == "" || opts.Backend == cache.BackendFile) {
		dir, err := cacheDir()
		if err != nil {
			return opts, err
		}
		opts.Dir = dir
	}
	return opts, nil
}

// serverAddr returns the configured listen address.
func (cfg Config) serverAddr() string {
	if cfg.Server.Addr != "" {
		return cfg.Server.Addr
	}
	return defaultServerAddr
}

// configPath returns the default config file location using XDG
// (~/.config/cyclekit/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
