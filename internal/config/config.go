package config

import (
	"strings"
	"time"

	"github.com/psucert/certserve/internal/env"
)

type Config struct {
	Port        string
	ENV         string
	DB          DatabaseConfig
	RateLimiter RateLimiterConfig
	Auth        AuthConfig
	Certificate CertificateConfig
}

type RateLimiterConfig struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type AuthConfig struct {
	JWT_SECRET string
}

type DatabaseConfig struct {
	DB_HOST      string
	DB_PORT      string
	DB_DATABASE  string
	DB_USERNAME  string
	DB_PASSWORD  string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  string
}

// CertificateConfig holds everything the artifact pipeline needs: where the
// public verification page lives and where generated files go.
type CertificateConfig struct {
	// Base URL of the public verification front-end. The QR payload is
	// FRONTEND_URL + "/verify/" + certificate number.
	FRONTEND_URL string
	CertDir      string
	QrDir        string
	SignatureDir string
	FontPath     string
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	rateLimiteTimeFrame, err := time.ParseDuration(env.GetString("RATE_LIMIT_TIME_FRAME", "1m"))
	if err != nil {
		rateLimiteTimeFrame = 60 * time.Second
	}

	return Config{
		Port: env.GetString("PORT", "8080"),
		ENV:  env.GetString("ENV", "development"),
		DB: DatabaseConfig{
			DB_HOST:      env.GetString("DB_HOST", "127.0.0.1"),
			DB_PORT:      env.GetString("DB_PORT", "5432"),
			DB_USERNAME:  env.GetString("DB_USERNAME", "root"),
			DB_PASSWORD:  env.GetString("DB_PASSWORD", ""),
			DB_DATABASE:  env.GetString("DB_DATABASE", "certserve"),
			MaxOpenConns: env.GetInt("DB_MAX_OPEN_CONNS", 30),
			MaxIdleConns: env.GetInt("DB_MAX_IDLE_CONNS", 30),
			MaxIdleTime:  env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
		// By default if not specified, we allow 5000 requests per minute on all routes
		RateLimiter: RateLimiterConfig{
			RequestsPerTimeFrame: env.GetInt("RATE_LIMIT_REQUESTS_PER_TIME_FRAME", 5000),
			TimeFrame:            rateLimiteTimeFrame,
			Enabled:              env.GetBool("RATE_LIMIT_ENABLED", true),
		},
		Auth: AuthConfig{
			JWT_SECRET: env.GetString("AUTH_JWT_SECRET", ""),
		},
		Certificate: CertificateConfig{
			FRONTEND_URL: env.GetString("FRONTEND_URL", "https://psu-certificate-verification.netlify.app"),
			CertDir:      env.GetString("CERT_OUTPUT_DIR", "static/certificates"),
			QrDir:        env.GetString("QR_OUTPUT_DIR", "static/qrcodes"),
			SignatureDir: env.GetString("SIGNATURE_DIR", "static/signatures"),
			FontPath:     env.GetString("CERT_FONT_PATH", ""),
		},
	}
}
