package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Redis   RedisConfig
	Backend BackendConfig
}

type AppConfig struct {
	AppName        string
	Environment    string
	HTTPPort       string
	UploadMaxBytes int
}

type CatalogConfig struct {
	Path string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

// BackendConfig is read by the MCP bridge, which talks to the HTTP server.
type BackendConfig struct {
	URL     string
	RPS     float64
	Timeout time.Duration
}

const (
	EnvProduction = "production"

	defaultAppName        = "career-coach"
	defaultEnvironment    = "development"
	defaultHTTPPort       = "8000"
	defaultUploadMaxBytes = 5 << 20
	defaultRedisPort      = "6379"
	defaultRedisTTL       = 600 * time.Second
	defaultBackendURL     = "http://localhost:8000"
	defaultBackendTimeout = 30 * time.Second
)

var errInvalidEnv = errors.New("invalid environment variables")

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{}

	var invalid []string
	opt := func(key, def string) string {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			return def
		}
		return v
	}
	optInt := func(key string, def int) int {
		raw := opt(key, "")
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optFloat := func(key string, def float64) float64 {
		raw := opt(key, "")
		if raw == "" {
			return def
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return def
		}
		return v
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		raw := opt(key, "")
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			invalid = append(invalid, key)
			return def
		}
		return d
	}

	cfg.App = AppConfig{
		AppName:        opt("APP_NAME", defaultAppName),
		Environment:    opt("APP_ENV", defaultEnvironment),
		HTTPPort:       opt("HTTP_PORT", defaultHTTPPort),
		UploadMaxBytes: optInt("UPLOAD_MAX_BYTES", defaultUploadMaxBytes),
	}

	cfg.Catalog = CatalogConfig{
		Path: opt("JOB_CATALOG_PATH", ""),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", ""),
		Port:     opt("REDIS_PORT", defaultRedisPort),
		Password: getenv("REDIS_PASSWORD"),
		TTL:      time.Duration(optInt("REDIS_TTL", int(defaultRedisTTL/time.Second))) * time.Second,
	}

	cfg.Backend = BackendConfig{
		URL:     strings.TrimRight(opt("BACKEND_URL", defaultBackendURL), "/"),
		RPS:     optFloat("BACKEND_RPS", 0),
		Timeout: optDuration("BACKEND_TIMEOUT", defaultBackendTimeout),
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}

func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Environment, EnvProduction)
}
