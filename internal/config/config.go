package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Generative image API
	GenAIAPIKey  string
	GenAIAPIURL  string
	GenAIModel   string
	GenAITimeout time.Duration

	// Auth session bootstrap
	AuthTimeout time.Duration

	// Payment widget (hosted checkout)
	TossClientKey string
	TossSecretKey string
	TossAPIURL    string

	// Social share
	KakaoClientKey string

	// Bank transfer account shown on the payment sheet
	BankName    string
	BankAccount string
	BankHolder  string

	// Outgoing mail (approval / rejection notices)
	SMTPHost   string
	SMTPPort   string
	SMTPUser   string
	SMTPPass   string
	MailSender string

	// Admin
	AdminEmails string
	AdminToken  string

	// Server
	Port        string
	CORSOrigins string

	// Style catalog override file (built-in catalog used when absent)
	CatalogPath string
}

func Load() *Config {
	// Optional .env for local development; env vars win.
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "pawtrait_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m")),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h")),

		GenAIAPIKey:  getEnv("GENAI_API_KEY", ""),
		GenAIAPIURL:  getEnv("GENAI_API_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GenAIModel:   getEnv("GENAI_MODEL", "gemini-3-pro-image-preview"),
		GenAITimeout: parseDuration(getEnv("GENAI_TIMEOUT", "60s")),

		AuthTimeout: parseDuration(getEnv("AUTH_TIMEOUT", "5s")),

		TossClientKey: getEnv("TOSS_CLIENT_KEY", ""),
		TossSecretKey: getEnv("TOSS_SECRET_KEY", ""),
		TossAPIURL:    getEnv("TOSS_API_URL", "https://api.tosspayments.com"),

		KakaoClientKey: getEnv("KAKAO_CLIENT_KEY", ""),

		BankName:    getEnv("BANK_NAME", "토스뱅크"),
		BankAccount: getEnv("BANK_ACCOUNT", ""),
		BankHolder:  getEnv("BANK_HOLDER", ""),

		SMTPHost:   getEnv("SMTP_HOST", ""),
		SMTPPort:   getEnv("SMTP_PORT", "587"),
		SMTPUser:   getEnv("SMTP_USER", ""),
		SMTPPass:   getEnv("SMTP_PASS", ""),
		MailSender: getEnv("MAIL_SENDER", "noreply@pawtrait.art"),

		AdminEmails: getEnv("ADMIN_EMAILS", ""),
		AdminToken:  getEnv("ADMIN_TOKEN", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		CatalogPath: getEnv("CATALOG_PATH", ""),
	}
}

// StoreConfigured reports whether the persistent store is configured at all.
// Without it the server boots in a degraded "not configured" mode instead of
// refusing to start.
func (c *Config) StoreConfigured() bool {
	return c.DBPassword != ""
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 15 * time.Minute
	}
	return d
}
