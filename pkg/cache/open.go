package cache

import (
	"context"

	"github.com/matzehuels/cyclekit/pkg/errors"
)

// Backend names accepted by [Open].
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
	BackendNone  = "none"
)

// Options selects and configures a cache backend.
type Options struct {
	Backend       string // one of the Backend* constants; empty means file
	Dir           string // FileCache directory
	RedisAddr     string // host:port or redis:// URL
	MongoURI      string
	MongoDatabase string
}

// Open creates the cache described by opts. Remote backends are pinged
// before Open returns, so an unreachable server fails here rather than on
// first use.
func Open(ctx context.Context, opts Options) (Cache, error) {
	switch opts.Backend {
	case "", BackendFile:
		if opts.Dir == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "file cache needs a directory")
		}
		c, err := NewFileCache(opts.Dir)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendRedis:
		if opts.RedisAddr == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "redis cache needs cache.redis_addr")
		}
		c, err := NewRedisCache(ctx, opts.RedisAddr)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendMongo:
		if opts.MongoURI == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "mongo cache needs cache.mongo_uri")
		}
		db := opts.MongoDatabase
		if db == "" {
			db = "cyclekit"
		}
		c, err := NewMongoCache(ctx, opts.MongoURI, db)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendNone:
		return NewNullCache(), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", opts.Backend)
}
