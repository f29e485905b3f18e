package commands

import (
	"context"
	"os"

	"github.com/rs/zerolog"

	"github.com/spherical/saleseer/internal/cache"
	"github.com/spherical/saleseer/internal/catalog"
	"github.com/spherical/saleseer/internal/config"
	"github.com/spherical/saleseer/internal/domain"
	"github.com/spherical/saleseer/internal/interpret"
	"github.com/spherical/saleseer/internal/llm"
	"github.com/spherical/saleseer/internal/observability"
	"github.com/spherical/saleseer/internal/search"
)

// app holds the dependencies shared by the commands.
type app struct {
	cfg     *config.Config
	logger  *observability.Logger
	catalog *catalog.Catalog
	search  *search.Service
	store   cache.Client
}

func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return config.Load(path)
}

// newLogger builds the process logger. Terminal commands pass quiet so that
// routine info lines do not interleave with rendered results.
func newLogger(cfg *config.Config, quiet bool) *observability.Logger {
	level := cfg.Observability.LogLevel
	switch {
	case verbose:
		level = "debug"
	case quiet && observability.ParseLevel(level) < zerolog.WarnLevel:
		level = "warn"
	}
	return observability.NewLogger(observability.LogConfig{
		Level:       level,
		Format:      cfg.Observability.LogFormat,
		ServiceName: cfg.Observability.ServiceName,
	})
}

// newApp loads configuration and the catalog. Any error here is fatal:
// no query is processed without an API key and a readable catalog.
func newApp(ctx context.Context, quiet bool) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.RequireAPIKey(); err != nil {
		return nil, err
	}

	logger := newLogger(cfg, quiet)

	cat, err := catalog.Load(ctx, cfg.Catalog.Source, cfg.Catalog.Table, logger)
	if err != nil {
		return nil, err
	}

	store, err := newCacheStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	client := llm.NewClient(llm.Config{
		APIKey:  cfg.LLM.APIKey,
		Model:   cfg.LLM.Model,
		BaseURL: cfg.LLM.BaseURL,
		Timeout: cfg.LLM.Timeout,
		Referer: cfg.LLM.Referer,
		Title:   cfg.LLM.Title,
	})

	var interpreter domain.Interpreter = interpret.New(client, logger, interpret.Config{
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	})
	if cfg.Cache.Driver != config.CacheDriverNone {
		interpreter = interpret.NewCaching(interpreter, store, cfg.Cache.TTL, logger)
	}

	logger.Info().
		Str("model", client.Model()).
		Str("cache", cfg.Cache.Driver).
		Int("products", cat.Len()).
		Msg("Saleseer ready")

	return &app{
		cfg:     cfg,
		logger:  logger,
		catalog: cat,
		search:  search.NewService(interpreter, cat, logger),
		store:   store,
	}, nil
}

func newCacheStore(ctx context.Context, cfg *config.Config, logger *observability.Logger) (cache.Client, error) {
	switch cfg.Cache.Driver {
	case config.CacheDriverRedis:
		client, err := cache.NewRedisClient(ctx, cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			PoolSize: cfg.Cache.Redis.PoolSize,
			Prefix:   cfg.Cache.Redis.Prefix,
		})
		if err != nil {
			return nil, domain.ConfigError("connect criteria cache", err)
		}
		logger.Debug().Str("addr", cfg.Cache.Redis.Addr).Msg("Redis criteria cache connected")
		return client, nil
	case config.CacheDriverMemory:
		return cache.NewMemoryClient(cfg.Cache.MaxEntries), nil
	default:
		return cache.NopClient{}, nil
	}
}

func (a *app) Close() {
	if a.store != nil {
		_ = a.store.Close()
	}
}
