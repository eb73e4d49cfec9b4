package cache

import (
	"context"
	"fmt"
	"time"
)

// Backend names accepted by [Open].
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendMemory = "memory"
	BackendNone   = "none"
)

// Config selects and configures a cache backend.
type Config struct {
	Backend         string        `koanf:"backend"`
	Dir             string        `koanf:"dir"`
	TTL             time.Duration `koanf:"ttl"`
	RedisAddr       string        `koanf:"redis_addr"`
	RedisPassword   string        `koanf:"redis_password"`
	RedisDB         int           `koanf:"redis_db"`
	MongoURI        string        `koanf:"mongo_uri"`
	MongoDatabase   string        `koanf:"mongo_database"`
	MongoCollection string        `koanf:"mongo_collection"`
}

// Open creates the backend named by cfg.Backend, wrapped with
// [Instrument]. An empty backend means "file"; a file backend with an
// empty Dir uses [DefaultDir] for app.
func Open(ctx context.Context, app string, cfg Config) (Cache, error) {
	var (
		c   Cache
		err error
	)
	backend := cfg.Backend
	if backend == "" {
		backend = BackendFile
	}

	switch backend {
	case BackendFile:
		dir := cfg.Dir
		if dir == "" {
			if dir, err = DefaultDir(app); err != nil {
				return nil, fmt.Errorf("resolve cache dir: %w", err)
			}
		}
		c, err = NewFileCache(dir)
	case BackendRedis:
		c, err = NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case BackendMongo:
		coll := cfg.MongoCollection
		if coll == "" {
			coll = "cache"
		}
		c, err = NewMongoCache(ctx, cfg.MongoURI, cfg.MongoDatabase, coll)
	case BackendMemory:
		c = NewMemoryCache()
	case BackendNone:
		c = NewNullCache()
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s cache: %w", backend, err)
	}
	return Instrument(c, backend), nil
}
