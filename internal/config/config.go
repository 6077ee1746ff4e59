package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"jobboard-service/internal/infrastructure"
)

type Config struct {
	HTTPAddr  string
	APIPrefix string

	DBDriver    string
	DatabaseURI string

	JWTSecret         string
	JWTKeyringAccount string
	TokenTTL          time.Duration

	UploadFolder   string
	MaxUploadBytes int64

	Redis           infrastructure.RedisOptions
	ProfileCacheTTL time.Duration

	NatsURL string

	LoginRatePerMinute int
	LoginRateBurst     int

	CORSOrigins []string

	LogLevel  string
	LogFormat string

	CatalogFile string
	Catalog     Catalog
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		HTTPAddr:  infrastructure.GetEnvAsString("HTTP_ADDR", ":5000"),
		APIPrefix: infrastructure.GetEnvAsString("API_PREFIX", "/api"),

		DBDriver:    infrastructure.GetEnvAsString("DB_DRIVER", "sqlite"),
		DatabaseURI: infrastructure.GetEnvAsString("DATABASE_URI", "jobboard.db"),

		JWTSecret:         infrastructure.GetEnvAsString("JWT_SECRET", ""),
		JWTKeyringAccount: infrastructure.GetEnvAsString("JWT_KEYRING_ACCOUNT", ""),
		TokenTTL:          infrastructure.GetEnvAsDuration("TOKEN_TTL", 24*time.Hour),

		UploadFolder:   infrastructure.GetEnvAsString("UPLOAD_FOLDER", "uploads/resumes"),
		MaxUploadBytes: infrastructure.GetEnvAsInt64("MAX_UPLOAD_BYTES", 5*1024*1024),

		Redis: infrastructure.RedisOptions{
			URL:      infrastructure.GetEnvAsString("REDIS_URL", ""),
			Host:     infrastructure.GetEnvAsString("REDIS_HOST", ""),
			Port:     infrastructure.GetEnvAsString("REDIS_PORT", "6379"),
			Password: infrastructure.GetEnvAsString("REDIS_PASSWORD", ""),
			DB:       infrastructure.GetEnvAsInt("REDIS_DB", 0),
		},
		ProfileCacheTTL: infrastructure.GetEnvAsDuration("PROFILE_CACHE_TTL", 5*time.Minute),

		NatsURL: infrastructure.GetEnvAsString("NATS_URL", ""),

		LoginRatePerMinute: infrastructure.GetEnvAsInt("LOGIN_RATE_PER_MINUTE", 10),
		LoginRateBurst:     infrastructure.GetEnvAsInt("LOGIN_RATE_BURST", 5),

		CORSOrigins: infrastructure.GetEnvAsList("CORS_ORIGINS", []string{"*"}),

		LogLevel:  infrastructure.GetEnvAsString("LOG_LEVEL", "info"),
		LogFormat: infrastructure.GetEnvAsString("LOG_FORMAT", "text"),

		CatalogFile: infrastructure.GetEnvAsString("CATALOG_FILE", ""),
		Catalog:     DefaultCatalog(),
	}

	cfg.APIPrefix = normalizePrefix(cfg.APIPrefix)

	if cfg.CatalogFile != "" {
		cat, err := LoadCatalog(cfg.CatalogFile)
		if err != nil {
			return nil, err
		}
		cfg.Catalog = cat
	}

	return cfg, nil
}

func normalizePrefix(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || p == "/" {
		return ""
	}
	return "/" + strings.Trim(p, "/")
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var errs []error

	switch strings.ToLower(c.DBDriver) {
	case "sqlite", "sqlite3", "postgres", "postgresql", "mysql":
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be sqlite, postgres or mysql, got %q", c.DBDriver))
	}
	if c.DatabaseURI == "" {
		errs = append(errs, errors.New("DATABASE_URI is required"))
	}
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("HTTP_ADDR is required"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}
	if c.UploadFolder == "" {
		errs = append(errs, errors.New("UPLOAD_FOLDER is required"))
	}
	if c.MaxUploadBytes <= 0 {
		errs = append(errs, errors.New("MAX_UPLOAD_BYTES must be positive"))
	}
	if c.LoginRatePerMinute <= 0 || c.LoginRateBurst <= 0 {
		errs = append(errs, errors.New("LOGIN_RATE_PER_MINUTE and LOGIN_RATE_BURST must be positive"))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat))
	}
	if len(c.Catalog.Categories) == 0 {
		errs = append(errs, errors.New("catalog needs at least one category"))
	}
	if len(c.Catalog.ResumeExtensions) == 0 {
		errs = append(errs, errors.New("catalog needs at least one resume extension"))
	}

	return errors.Join(errs...)
}
