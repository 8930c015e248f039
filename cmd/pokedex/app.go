package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Sternrassler/pokeapi-catalog/internal/config"
	"github.com/Sternrassler/pokeapi-catalog/pkg/cache"
	"github.com/Sternrassler/pokeapi-catalog/pkg/catalog"
	"github.com/Sternrassler/pokeapi-catalog/pkg/client"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// newFetcher wires cache, client and fetcher from configuration. The
// returned cleanup releases the cache backend.
func newFetcher(ctx context.Context, cfg *config.Config) (*catalog.Fetcher, func(), error) {
	respCache, cleanup, err := newCache(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	apiClient, err := client.New(client.Config{
		BaseURL:   cfg.PokeAPI.BaseURL,
		UserAgent: cfg.PokeAPI.UserAgent,
		Timeout:   cfg.PokeAPI.Timeout,
		Cache:     respCache,
		CacheTTL:  cfg.Cache.TTL,
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("create pokeapi client: %w", err)
	}

	fetcher := catalog.NewFetcher(apiClient, catalog.Config{
		PageSize:       cfg.Catalog.PageSize,
		MaxConcurrency: cfg.Catalog.MaxConcurrency,
		NameIndexLimit: cfg.Catalog.NameIndexLimit,
		ItemTimeout:    cfg.Catalog.ItemTimeout,
	})
	return fetcher, cleanup, nil
}

func newCache(ctx context.Context, cfg *config.Config) (cache.Cache, func(), error) {
	switch cfg.Cache.Backend {
	case config.CacheMemory:
		mem, err := cache.NewMemoryCache(cfg.Cache.Size, cfg.Cache.TTL)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Int("size", cfg.Cache.Size).Dur("ttl", cfg.Cache.TTL).Msg("Using in-memory response cache")
		return mem, func() {}, nil

	case config.CacheRedis:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			redisClient.Close()
			return nil, nil, fmt.Errorf("connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("Connected to Redis response cache")
		return cache.NewRedisCache(redisClient), func() { redisClient.Close() }, nil

	default:
		return cache.NopCache{}, func() {}, nil
	}
}
