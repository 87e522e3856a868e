package app

import (
	"strings"
	"time"

	"github.com/campusbridge/campus-bridge/internal/clients/redis"
	"github.com/campusbridge/campus-bridge/internal/data/db"
	"github.com/campusbridge/campus-bridge/internal/observability"
	"github.com/campusbridge/campus-bridge/internal/platform/envutil"
	"github.com/campusbridge/campus-bridge/internal/platform/logger"
)

const defaultJWTSecret = "defaultsecret"

type Config struct {
	Env             string
	Port            string
	JWTSecretKey    string
	SessionTTL      time.Duration
	SecureCookies   bool
	CORSOrigins     []string
	ShutdownTimeout time.Duration

	DB    db.Config
	Redis redis.Config
	Otel  observability.OtelConfig
}

func LoadConfig(log *logger.Logger) Config {
	env := strings.ToLower(envutil.String("APP_ENV", "development"))
	cfg := Config{
		Env:             env,
		Port:            envutil.String("PORT", "8080"),
		JWTSecretKey:    envutil.String("JWT_SECRET_KEY", defaultJWTSecret),
		SessionTTL:      envutil.Seconds("SESSION_TTL", 24*time.Hour),
		SecureCookies:   envutil.Bool("SESSION_COOKIE_SECURE", env == "production"),
		CORSOrigins:     envutil.List("CORS_ALLOWED_ORIGINS", nil),
		ShutdownTimeout: envutil.Seconds("SHUTDOWN_TIMEOUT", 15*time.Second),
		DB: db.Config{
			Driver:     envutil.String("DB_DRIVER", db.DriverPostgres),
			Host:       envutil.String("POSTGRES_HOST", "localhost"),
			Port:       envutil.String("POSTGRES_PORT", "5432"),
			User:       envutil.String("POSTGRES_USER", "postgres"),
			Password:   envutil.String("POSTGRES_PASSWORD", ""),
			Name:       envutil.String("POSTGRES_NAME", "campusbridge"),
			SSLMode:    envutil.String("POSTGRES_SSLMODE", "disable"),
			SQLitePath: envutil.String("SQLITE_PATH", "campusbridge.db"),
		},
		Redis: redis.Config{
			Addr:     envutil.String("REDIS_ADDR", ""),
			Password: envutil.String("REDIS_PASSWORD", ""),
			DB:       envutil.Int("REDIS_DB", 0),
		},
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", "campus-bridge"),
			Environment: env,
			Version:     envutil.String("APP_VERSION", ""),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:     observability.ParseHeaders(envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "")),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false),
			SampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", 0.1),
		},
	}
	if cfg.JWTSecretKey == defaultJWTSecret && log != nil {
		log.Warn("JWT_SECRET_KEY not set, using insecure default")
	}
	return cfg
}

func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
