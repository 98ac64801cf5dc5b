package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/randpix/pkg/cache"
	"github.com/matzehuels/randpix/pkg/pipeline"
)

// Cache backends accepted in the [cache] section.
const (
	backendFile  = "file"
	backendRedis = "redis"
	backendMongo = "mongo"
	backendNone  = "none"
)

// fileConfig is the optional TOML config file. Flags override its values.
//
//	[generate]
//	size = 9
//	symmetry = "quad"
//	palette = "warm"
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//
//	[server]
//	addr = ":8080"
type fileConfig struct {
	Generate generateConfig `toml:"generate"`
	Cache    cacheConfig    `toml:"cache"`
	Server   serverConfig   `toml:"server"`
}

type generateConfig struct {
	pipeline.Options

	// ColorScheme is accepted as an alias of palette.
	ColorScheme string `toml:"color_scheme"`
}

type cacheConfig struct {
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"`

	RedisURL  string `toml:"redis_url"`
	RedisAddr string `toml:"redis_addr"`

	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`

	// TTL overrides the artifact lifetime, e.g. "72h".
	TTL duration `toml:"ttl"`

	// Prefix namespaces keys when servers share one Redis or Mongo backend.
	Prefix string `toml:"prefix"`
}

type serverConfig struct {
	Addr    string   `toml:"addr"`
	Timeout duration `toml:"timeout"`
}

// duration decodes TOML strings such as "90s" or "24h".
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// loadConfig reads the config file at path. An empty path means the default
// location, which may be absent; an explicit path must exist.
func loadConfig(path string) (*fileConfig, error) {
	cfg := &fileConfig{}
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &fileConfig{}, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, fmt.Errorf("load config %s: unknown key %q", path, keys[0].String())
	}
	if cfg.Generate.Palette == "" {
		cfg.Generate.Palette = cfg.Generate.ColorScheme
	}
	return cfg, nil
}

// newCache opens the backend selected by cfg. noCache wins over the file.
func newCache(ctx context.Context, cfg cacheConfig, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch cfg.Backend {
	case "", backendFile:
		dir := cfg.Dir
		if dir == "" {
			d, err := cacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
			dir = d
		}
		return cache.NewFileCache(dir)
	case backendRedis:
		return cache.NewRedisCache(ctx, cache.RedisOptions{URL: cfg.RedisURL, Addr: cfg.RedisAddr})
	case backendMongo:
		return cache.NewMongoCache(ctx, cache.MongoOptions{
			URI:        cfg.MongoURI,
			Database:   cfg.MongoDatabase,
			Collection: cfg.MongoCollection,
		})
	case backendNone:
		return cache.NewNullCache(), nil
	}
	return nil, fmt.Errorf("unknown cache backend %q (want file, redis, mongo or none)", cfg.Backend)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/randpix/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configDir returns the config directory (~/.config/randpix/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
