// Package config provides configuration loading for saleseer.
// Supports YAML files, a .env file, and environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/spherical/saleseer/internal/domain"
)

// APIKeyEnv is the environment variable holding the OpenRouter API key.
const APIKeyEnv = "OPENROUTER_API_KEY"

// Cache drivers.
const (
	CacheDriverNone   = "none"
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

// Config holds all configuration for saleseer.
type Config struct {
	LLM           LLMConfig           `yaml:"llm"`
	Catalog       CatalogConfig       `yaml:"catalog"`
	Cache         CacheConfig         `yaml:"cache"`
	Server        ServerConfig        `yaml:"server"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// LLMConfig holds the completion transport settings.
type LLMConfig struct {
	APIKey      string        `yaml:"api_key"`
	BaseURL     string        `yaml:"base_url"`
	Model       string        `yaml:"model"`
	MaxTokens   int           `yaml:"max_tokens"`
	Temperature float64       `yaml:"temperature"`
	Timeout     time.Duration `yaml:"timeout"`
	Referer     string        `yaml:"referer"`
	Title       string        `yaml:"title"`
}

// CatalogConfig holds the catalog source settings.
type CatalogConfig struct {
	// Source is a CSV path, a SQLite file (sqlite:path, .db, .sqlite) or a postgres:// DSN.
	Source string `yaml:"source"`
	Table  string `yaml:"table"`
}

// CacheConfig holds criteria cache settings.
type CacheConfig struct {
	Driver     string        `yaml:"driver"` // none, memory or redis
	TTL        time.Duration `yaml:"ttl"`
	MaxEntries int           `yaml:"max_entries"`
	Redis      RedisConfig   `yaml:"redis"`
}

// RedisConfig holds Redis-specific settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	PoolSize int    `yaml:"pool_size"`
	Prefix   string `yaml:"prefix"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host             string        `yaml:"host"`
	Port             int           `yaml:"port"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	IdleTimeout      time.Duration `yaml:"idle_timeout"`
	GracefulShutdown time.Duration `yaml:"graceful_shutdown"`
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	ServiceName string `yaml:"service_name"`
}

// Load reads configuration from a YAML file and applies environment overrides.
// A .env file in the working directory is loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, domain.ConfigError("read config file", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, domain.ConfigError("parse config file", err)
		}

		if cfg.Catalog.Source != "" && !isDSN(cfg.Catalog.Source) {
			cfg.Catalog.Source = ResolveRelativePath(path, cfg.Catalog.Source)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, domain.ConfigError("validate config", err)
	}

	return cfg, nil
}

// DefaultConfig returns a configuration with development defaults.
func DefaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			BaseURL:     "https://openrouter.ai/api/v1",
			Model:       "openai/gpt-3.5-turbo",
			MaxTokens:   200,
			Temperature: 0.1,
			Timeout:     15 * time.Second,
			Referer:     "https://github.com/spherical/saleseer",
			Title:       "Saleseer Product Finder",
		},
		Catalog: CatalogConfig{
			Source: "products.csv",
			Table:  "products",
		},
		Cache: CacheConfig{
			Driver:     CacheDriverMemory,
			TTL:        10 * time.Minute,
			MaxEntries: 1000,
			Redis: RedisConfig{
				Addr:     "localhost:6379",
				PoolSize: 10,
				Prefix:   "saleseer:",
			},
		},
		Server: ServerConfig{
			Host:             "0.0.0.0",
			Port:             8090,
			ReadTimeout:      30 * time.Second,
			WriteTimeout:     30 * time.Second,
			IdleTimeout:      120 * time.Second,
			GracefulShutdown: 10 * time.Second,
		},
		Observability: ObservabilityConfig{
			LogLevel:    "info",
			LogFormat:   "console",
			ServiceName: "saleseer",
		},
	}
}

// Validate checks the configuration for errors. The API key is checked separately
// by RequireAPIKey because offline commands such as import do not need it.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Catalog.Source) == "" {
		return fmt.Errorf("catalog source is required")
	}

	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("llm max_tokens must be positive")
	}

	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm temperature must be between 0 and 2")
	}

	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm timeout must be positive")
	}

	switch c.Cache.Driver {
	case CacheDriverNone, CacheDriverMemory, CacheDriverRedis:
	default:
		return fmt.Errorf("invalid cache driver: %s", c.Cache.Driver)
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	return nil
}

// RequireAPIKey fails with a configuration error when no API key is set.
func (c *Config) RequireAPIKey() error {
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		return domain.ConfigError(APIKeyEnv+" not set; add it to your .env file or environment", nil)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides to config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(APIKeyEnv); v != "" {
		cfg.LLM.APIKey = v
	}

	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}

	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}

	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.LLM.Timeout = d
		}
	}

	if v := os.Getenv("CATALOG_PATH"); v != "" {
		cfg.Catalog.Source = v
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Catalog.Source = v
	}

	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Cache.Driver = CacheDriverRedis
		cfg.Cache.Redis.Addr = strings.TrimPrefix(v, "redis://")
	}

	if v := os.Getenv("SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}

	if v := os.Getenv("SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Observability.LogLevel = v
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Observability.LogFormat = v
	}
}

func isDSN(source string) bool {
	return strings.HasPrefix(source, "postgres://") ||
		strings.HasPrefix(source, "postgresql://") ||
		strings.HasPrefix(source, "sqlite:")
}

// ResolveRelativePath resolves a path relative to the config file location.
func ResolveRelativePath(configPath, targetPath string) string {
	if filepath.IsAbs(targetPath) {
		return targetPath
	}
	return filepath.Join(filepath.Dir(configPath), targetPath)
}
