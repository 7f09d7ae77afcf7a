package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Cache backend selection.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Upstream UpstreamConfig
	Session  SessionConfig
	Cache    CacheConfig
	Redis    RedisConfig
	Audit    AuditConfig
	CORS     CORSConfig
	Log      LogConfig
	Warm     WarmConfig
}

// UpstreamConfig points the gateway at the university REST API.
// A zero Timeout means no client-side timeout: failures are only observed
// through connection errors or the upstream's own response.
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SessionConfig locates the persisted console session tokens.
type SessionConfig struct {
	TokenFile string
}

// CacheConfig tunes list and report snapshot lifetimes.
type CacheConfig struct {
	Enabled      bool
	Backend      string
	DefaultTTL   time.Duration
	CoursesTTL   time.Duration
	SchedulesTTL time.Duration
	ReportTTL    time.Duration
	DebtorsTTL   time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// AuditConfig controls the local mutation audit trail.
type AuditConfig struct {
	Enabled  bool
	Database DatabaseConfig
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// WarmConfig toggles cache warm-up at startup.
type WarmConfig struct {
	OnStart bool
	Workers int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Upstream = UpstreamConfig{
		BaseURL: v.GetString("UPSTREAM_BASE_URL"),
		Timeout: parseDuration(v.GetString("UPSTREAM_TIMEOUT"), 0),
	}

	cfg.Session = SessionConfig{
		TokenFile: v.GetString("SESSION_TOKEN_FILE"),
	}

	cfg.Cache = CacheConfig{
		Enabled:      v.GetBool("CACHE_ENABLED"),
		Backend:      v.GetString("CACHE_BACKEND"),
		DefaultTTL:   parseDuration(v.GetString("CACHE_DEFAULT_TTL"), 5*time.Minute),
		CoursesTTL:   parseDuration(v.GetString("CACHE_COURSES_TTL"), 15*time.Minute),
		SchedulesTTL: parseDuration(v.GetString("CACHE_SCHEDULES_TTL"), 30*time.Minute),
		ReportTTL:    parseDuration(v.GetString("CACHE_REPORT_TTL"), 10*time.Minute),
		DebtorsTTL:   parseDuration(v.GetString("CACHE_DEBTORS_TTL"), 10*time.Minute),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Audit = AuditConfig{
		Enabled: v.GetBool("ENABLE_AUDIT"),
		Database: DatabaseConfig{
			Host:         v.GetString("DB_HOST"),
			Port:         v.GetInt("DB_PORT"),
			User:         v.GetString("DB_USER"),
			Password:     v.GetString("DB_PASSWORD"),
			Name:         v.GetString("DB_NAME"),
			SSLMode:      v.GetString("DB_SSL_MODE"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
		},
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Warm = WarmConfig{
		OnStart: v.GetBool("WARM_CACHE_ON_START"),
		Workers: v.GetInt("WARM_CACHE_WORKERS"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("UPSTREAM_BASE_URL", "http://127.0.0.1:8000/api/")
	v.SetDefault("UPSTREAM_TIMEOUT", "0")

	v.SetDefault("SESSION_TOKEN_FILE", "./.session/tokens.json")

	v.SetDefault("CACHE_ENABLED", true)
	v.SetDefault("CACHE_BACKEND", CacheBackendMemory)
	v.SetDefault("CACHE_DEFAULT_TTL", "5m")
	v.SetDefault("CACHE_COURSES_TTL", "15m")
	v.SetDefault("CACHE_SCHEDULES_TTL", "30m")
	v.SetDefault("CACHE_REPORT_TTL", "10m")
	v.SetDefault("CACHE_DEBTORS_TTL", "10m")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ENABLE_AUDIT", false)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "uni_admin_gateway")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("WARM_CACHE_ON_START", false)
	v.SetDefault("WARM_CACHE_WORKERS", 1)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
