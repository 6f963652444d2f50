package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port               string   `mapstructure:"port"`
	RateLimitRPM       int      `mapstructure:"rate_limit_rpm"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

// Upstream describes the pricing API. RelayURL, when set, is prefixed to every escaped upstream URL.
type Upstream struct {
	CatalogURL string `mapstructure:"catalog_url"`
	LeaguesURL string `mapstructure:"leagues_url"`
	RelayURL   string `mapstructure:"relay_url"`
	PerPage    int    `mapstructure:"per_page"`
	MaxPages   int    `mapstructure:"max_pages"`
}

type Leagues struct {
	CurrentSeason string `mapstructure:"current_season"`
	FallbackKey   string `mapstructure:"fallback_key"`
}

type Defaults struct {
	ReferenceName string `mapstructure:"reference_name"`
	TargetName    string `mapstructure:"target_name"`
}

type Cache struct {
	Backend    string `mapstructure:"backend"`
	MaxItems   int64  `mapstructure:"max_items"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
	RedisAddr  string `mapstructure:"redis_addr"`
}

type Scheduler struct {
	RefreshIntervalSec int `mapstructure:"refresh_interval_sec"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

// Enabled reports whether a database is configured. Stored exports are off without one.
func (config *DbServer) Enabled() bool {
	return config.Host != ""
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Upstream   Upstream   `mapstructure:"upstream"`
	Leagues    Leagues    `mapstructure:"leagues"`
	Defaults   Defaults   `mapstructure:"defaults"`
	Cache      Cache      `mapstructure:"cache"`
	Scheduler  Scheduler  `mapstructure:"scheduler"`
	DbServer   DbServer   `mapstructure:"db_server"`
	Logging    Logging    `mapstructure:"logging"`
}

// Init reads .env and config.yaml from the working directory when present, then applies env overrides.
func Init() (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	setDefaults(v)
	bindEnv(v)

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.Cache.Backend = strings.ToLower(strings.TrimSpace(cfg.Cache.Backend))
	if cfg.Cache.Backend != "memory" && cfg.Cache.Backend != "redis" {
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
	if cfg.Cache.Backend == "redis" && cfg.Cache.RedisAddr == "" {
		return nil, errors.New("cache.redis_addr is required for the redis backend")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_server.rate_limit_rpm", 600)
	v.SetDefault("http_server.cors_allowed_origins", []string{"*"})

	v.SetDefault("http_client.timeout_seconds", 10)

	v.SetDefault("upstream.catalog_url", "https://poe2scout.com/api/items/currency/currency")
	v.SetDefault("upstream.leagues_url", "https://poe2scout.com/api/leagues")
	v.SetDefault("upstream.relay_url", "")
	v.SetDefault("upstream.per_page", 100)
	v.SetDefault("upstream.max_pages", 1)

	v.SetDefault("leagues.current_season", "Rise of the Abyssal")
	v.SetDefault("leagues.fallback_key", "Standard")

	v.SetDefault("defaults.reference_name", "chaos")
	v.SetDefault("defaults.target_name", "exalted")

	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.max_items", 16)
	v.SetDefault("cache.ttl_seconds", 300)
	v.SetDefault("cache.redis_addr", "")

	v.SetDefault("scheduler.refresh_interval_sec", 300)

	v.SetDefault("db_server.host", "")
	v.SetDefault("db_server.port", "5432")
	v.SetDefault("db_server.user", "")
	v.SetDefault("db_server.pass", "")
	v.SetDefault("db_server.name", "")
	v.SetDefault("db_server.max_conns", 10)

	v.SetDefault("logging.level", "info")
}

func bindEnv(v *viper.Viper) {
	// http server env vars
	_ = v.BindEnv("http_server.port", "HTTP_PORT")
	_ = v.BindEnv("http_server.rate_limit_rpm", "HTTP_RATE_LIMIT_RPM")

	// upstream env vars
	_ = v.BindEnv("upstream.catalog_url", "UPSTREAM_CATALOG_URL")
	_ = v.BindEnv("upstream.leagues_url", "UPSTREAM_LEAGUES_URL")
	_ = v.BindEnv("upstream.relay_url", "UPSTREAM_RELAY_URL")

	// cache env vars
	_ = v.BindEnv("cache.backend", "CACHE_BACKEND")
	_ = v.BindEnv("cache.redis_addr", "REDIS_ADDR")

	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// http client env vars
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	_ = v.BindEnv("logging.level", "LOG_LEVEL")
}
