package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel string
	// Database
	DBUrl            string
	DBMaxConns       int
	DBSimpleProtocol bool // PgBouncer transaction mode needs the simple protocol
	// Session tokens
	JWTSecret string
	JWTTTL    time.Duration
	// CORS
	FrontendURL string
	// Redis (optional, rate limit counters)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitLoginThreshold  int
	RateLimitUploadThreshold int
	// Uploads
	MaxResumeBytes int64
	// Screening. Loaded for a future real screener; the static one ignores it.
	GoogleAPIKey string
}

var ErrMissingJWTSecret = errors.New("config: JWT_SECRET is required")

func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DBUrl:            getEnv("DATABASE_URL", ""),
		DBMaxConns:       getEnvInt("DB_MAX_CONNS", 25),
		DBSimpleProtocol: getEnvBool("DB_SIMPLE_PROTOCOL", false),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTTTL:           time.Duration(getEnvInt("JWT_TTL_MINUTES", 24*60)) * time.Minute,
		// Trailing slash would never match an Origin header
		FrontendURL:              strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		RedisURL:                 getEnv("REDIS_URL", ""),
		RedisPassword:            getEnv("REDIS_PASSWORD", ""),
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		RateLimitLoginThreshold:  getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),
		RateLimitUploadThreshold: getEnvInt("RATE_LIMIT_UPLOAD_THRESHOLD", 10),
		MaxResumeBytes:           int64(getEnvInt("MAX_RESUME_SIZE_MB", 10)) << 20,
		GoogleAPIKey:             getEnv("GOOGLE_API_KEY", ""),
	}

	if cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// RateLimitWindow returns the rate limit window as a duration.
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
