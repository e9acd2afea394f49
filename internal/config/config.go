package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server configuration
type ServerConfig struct {
	Port string
	Host string
	Env  string
}

// MongoDB configuration
type MongoConfig struct {
	URI      string
	Database string
}

// Auth configuration
type AuthConfig struct {
	JWTSecret    string
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
	CookieSecure bool
	CookieDomain string
}

// Upload configuration
type UploadConfig struct {
	Dir           string
	PublicBase    string
	MaxImageMB    int
	MaxDocumentMB int
	MaxGeneralMB  int
}

// Mail configuration for outbound email (reset/verification links)
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	SiteURL  string
}

// RateLimit configuration
type RateLimitConfig struct {
	WindowSec int
	Max       int
}

// Seed configuration for the initial super admin
type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
}

// Config holds all application configuration
type Config struct {
	Server             ServerConfig
	Mongo              MongoConfig
	Auth               AuthConfig
	Upload             UploadConfig
	Mail               MailConfig
	RateLimit          RateLimitConfig
	Seed               SeedConfig
	FrontendOrigin     string
	ShutdownTimeoutSec int
}

// Default configuration values
const (
	DefaultServerPort      = "8080"
	DefaultServerHost      = ""
	DefaultEnv             = "development"
	DefaultMongoURI        = "mongodb://localhost:27017/atlas"
	DefaultMongoDB         = "atlas"
	DefaultJWTSecret       = "change-me-in-production"
	DefaultAccessTTLHours  = 168 // 7 days
	DefaultRefreshTTLHours = 720 // 30 days
	DefaultUploadDir       = "./uploads"
	DefaultUploadBase      = "/uploads"
	DefaultMaxImageMB      = 5
	DefaultMaxDocumentMB   = 10
	DefaultMaxGeneralMB    = 10
	DefaultFrontendOrigin  = "http://localhost:3000"
	DefaultRateWindowSec   = 900
	DefaultRateMax         = 300
	DefaultShutdownSec     = 15
	DefaultMailPort        = 587

	// Pagination defaults
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// New returns a new Config with values from the environment, falling back to
// defaults.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", DefaultServerPort),
			Host: getEnv("SERVER_HOST", DefaultServerHost),
			Env:  getEnv("APP_ENV", DefaultEnv),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", DefaultMongoURI),
			Database: getEnv("MONGO_DB", DefaultMongoDB),
		},
		Auth: AuthConfig{
			JWTSecret:    getEnv("JWT_SECRET", DefaultJWTSecret),
			AccessTTL:    time.Duration(getEnvInt("JWT_ACCESS_TTL_HOURS", DefaultAccessTTLHours)) * time.Hour,
			RefreshTTL:   time.Duration(getEnvInt("JWT_REFRESH_TTL_HOURS", DefaultRefreshTTLHours)) * time.Hour,
			CookieSecure: getEnvBool("COOKIE_SECURE", false),
			CookieDomain: getEnv("COOKIE_DOMAIN", ""),
		},
		Upload: UploadConfig{
			Dir:           getEnv("UPLOAD_DIR", DefaultUploadDir),
			PublicBase:    getEnv("UPLOAD_PUBLIC_BASE", DefaultUploadBase),
			MaxImageMB:    getEnvInt("UPLOAD_MAX_IMAGE_MB", DefaultMaxImageMB),
			MaxDocumentMB: getEnvInt("UPLOAD_MAX_DOCUMENT_MB", DefaultMaxDocumentMB),
			MaxGeneralMB:  getEnvInt("UPLOAD_MAX_GENERAL_MB", DefaultMaxGeneralMB),
		},
		Mail: MailConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", DefaultMailPort),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("MAIL_FROM", "no-reply@localhost"),
			SiteURL:  getEnv("SITE_URL", DefaultFrontendOrigin),
		},
		RateLimit: RateLimitConfig{
			WindowSec: getEnvInt("RATE_LIMIT_WINDOW_SEC", DefaultRateWindowSec),
			Max:       getEnvInt("RATE_LIMIT_MAX", DefaultRateMax),
		},
		Seed: SeedConfig{
			AdminEmail:    getEnv("SEED_ADMIN_EMAIL", ""),
			AdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		},
		FrontendOrigin:     getEnv("FRONTEND_ORIGIN", DefaultFrontendOrigin),
		ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", DefaultShutdownSec),
	}
}

// Address returns the server address string
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// IsProduction reports whether the server runs in production mode. Internal
// error messages are hidden from clients only in production.
func (c *ServerConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		switch strings.ToLower(value) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return defaultValue
}
