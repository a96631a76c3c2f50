package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/cyclekit/pkg/cache"
	"github.com/matzehuels/cyclekit/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"

[cache]
backend = "redis"
redis_addr = "localhost:6379"
ttl = "90m"

[server]
addr = ":9000"

[render]
labels = ["a", "b", "c"]
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.Cache.Backend != cache.BackendRedis || cfg.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if ttl, _ := cfg.cacheTTL(); ttl != 90*time.Minute {
		t.Errorf("cacheTTL() = %v, want 90m", ttl)
	}
	if got := cfg.serverAddr(); got != ":9000" {
		t.Errorf("serverAddr() = %q, want %q", got, ":9000")
	}
	if len(cfg.Render.Labels) != 3 {
		t.Errorf("Render.Labels = %v", cfg.Render.Labels)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("missing default config should not fail: %v", err)
	}
	if cfg.serverAddr() != defaultServerAddr {
		t.Errorf("serverAddr() = %q, want default", cfg.serverAddr())
	}

	_, err = loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("missing explicit config: err = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadConfigDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, appName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`log_level = "warn"`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", `log_level = `},
		{"unknown key", "[cache]\nbackned = \"file\""},
		{"unknown backend", "[cache]\nbackend = \"memcached\""},
		{"bad ttl", "[cache]\nttl = \"soon\""},
		{"negative ttl", "[cache]\nttl = \"-1h\""},
		{"bad log level", `log_level = "loud"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.content))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("err = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestCacheOptions(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	opts, err := Config{}.cacheOptions()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/tmp/xdg-cache", appName); opts.Dir != want {
		t.Errorf("Dir = %q, want %q", opts.Dir, want)
	}

	opts, err = Config{Cache: CacheConfig{Backend: cache.BackendMongo, MongoURI: "mongodb://db"}}.cacheOptions()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Dir != "" || opts.MongoURI != "mongodb://db" {
		t.Errorf("mongo options = %+v", opts)
	}
}
