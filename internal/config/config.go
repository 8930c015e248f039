// Package config loads service configuration from an optional YAML file
// with POKEDEX_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Sternrassler/pokeapi-catalog/pkg/logging"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. POKEDEX_CACHE_BACKEND.
const EnvPrefix = "POKEDEX"

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config holds all configuration for the application
type Config struct {
	PokeAPI PokeAPIConfig `mapstructure:"pokeapi"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
}

// PokeAPIConfig holds upstream API configuration
type PokeAPIConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// CacheConfig selects and sizes the response cache
type CacheConfig struct {
	Backend string        `mapstructure:"backend"`
	Size    int           `mapstructure:"size"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// RedisConfig holds Redis connection details
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CatalogConfig tunes the catalog fetcher
type CatalogConfig struct {
	PageSize       int `mapstructure:"page_size"`
	MaxConcurrency int `mapstructure:"max_concurrency"`
	NameIndexLimit int `mapstructure:"name_index_limit"`

	// ItemTimeout bounds the detail and species calls of one candidate.
	ItemTimeout time.Duration `mapstructure:"item_timeout"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// Load reads configuration from path, or from ./config.yaml when path is
// empty. A missing default file is not an error; a missing explicit path is.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerations and ranges.
func (c *Config) Validate() error {
	switch c.Cache.Backend {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		return fmt.Errorf("invalid cache.backend %q (want none, memory or redis)", c.Cache.Backend)
	}
	if c.Cache.Backend == CacheMemory && c.Cache.Size <= 0 {
		return fmt.Errorf("cache.size must be positive for the memory backend")
	}
	if c.Cache.Backend == CacheRedis && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required for the redis backend")
	}
	if c.PokeAPI.UserAgent == "" {
		return fmt.Errorf("pokeapi.user_agent is required")
	}
	if c.Catalog.PageSize <= 0 {
		return fmt.Errorf("catalog.page_size must be positive")
	}
	if c.Catalog.MaxConcurrency < 0 {
		return fmt.Errorf("catalog.max_concurrency must not be negative")
	}
	if c.Catalog.ItemTimeout < 0 {
		return fmt.Errorf("catalog.item_timeout must not be negative")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("pokeapi.base_url", "https://pokeapi.co/api/v2")
	v.SetDefault("pokeapi.user_agent", "pokeapi-catalog/1.0 (+https://github.com/Sternrassler/pokeapi-catalog)")
	v.SetDefault("pokeapi.timeout", "15s")

	v.SetDefault("cache.backend", CacheMemory)
	v.SetDefault("cache.size", 4096)
	v.SetDefault("cache.ttl", "24h")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("catalog.page_size", 20)
	v.SetDefault("catalog.max_concurrency", 0)
	v.SetDefault("catalog.name_index_limit", 2000)
	v.SetDefault("catalog.item_timeout", "0s")

	v.SetDefault("server.addr", ":8080")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
}
