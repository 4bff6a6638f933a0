// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// RouterRulesConfig provides settings for the keyword router.
type RouterRulesConfig interface {
	GetRouterRulesPath() string
}

// POIConfig provides settings for the TripAdvisor content API.
type POIConfig interface {
	GetTripAdvisorAPIKey() string
	IsPOIEnabled() bool
}

// WeatherConfig provides settings for the OpenWeatherMap API.
type WeatherConfig interface {
	GetOpenWeatherMapAPIKey() string
	IsWeatherEnabled() bool
}

// DirectionsConfig provides settings for the Google Directions API.
type DirectionsConfig interface {
	GetGoogleMapsAPIKey() string
	IsDirectionsEnabled() bool
}

// FlightsConfig provides settings for the Amadeus flight API.
type FlightsConfig interface {
	GetAmadeusClientID() string
	GetAmadeusClientSecret() string
	IsFlightsEnabled() bool
}

// LLMConfig provides settings for the chat-completions model used by the
// concierge router and agent mode.
type LLMConfig interface {
	GetOpenAIAPIKey() string
	GetOpenAIBaseURL() string
	GetConciergeModel() string
	IsLLMEnabled() bool
}

// QdrantConfig provides settings for Qdrant vector database.
type QdrantConfig interface {
	GetQdrantURL() string
	GetQdrantAPIKey() string
	GetQdrantCollection() string
	IsQdrantEnabled() bool
}

// EmbeddingConfig provides settings for the embedding API service.
type EmbeddingConfig interface {
	GetOpenAIAPIKey() string
	GetOpenAIBaseURL() string
	GetEmbeddingModel() string
}

// CacheConfig provides settings for the Redis response cache.
type CacheConfig interface {
	GetRedisURL() string
	GetCacheTTL() time.Duration
	IsCacheEnabled() bool
}

// SchedulerConfig provides settings for the asynq job queue.
type SchedulerConfig interface {
	GetRedisURL() string
	GetRedisTLSInsecure() bool
	GetAsynqQueueName() string
	GetAsynqConcurrency() int
}

// ArchiveConfig provides settings for MinIO page snapshot storage.
type ArchiveConfig interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinioBucketPageSnapshots() string
	IsArchiveEnabled() bool
}

// EmailConfig provides settings for email sending.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                      string
	HTTPAddr                 string
	DatabaseURL              string
	JWTAccessSecret          string
	CORSAllowAll             bool
	CORSOrigins              []string
	CORSAllowCreds           bool
	RouterRulesPath          string
	TripAdvisorAPIKey        string
	OpenWeatherMapAPIKey     string
	GoogleMapsAPIKey         string
	AmadeusClientID          string
	AmadeusClientSecret      string
	OpenAIAPIKey             string
	OpenAIBaseURL            string
	ConciergeModel           string
	EmbeddingModel           string
	QdrantURL                string
	QdrantAPIKey             string
	QdrantCollection         string
	RedisURL                 string
	RedisTLSInsecure         bool
	AsynqQueueName           string
	AsynqConcurrency         int
	CacheTTL                 time.Duration
	MinIOEndpoint            string
	MinIOAccessKey           string
	MinIOSecretKey           string
	MinIOUseSSL              bool
	MinioBucketPageSnapshots string
	EmailEnabled             bool
	SMTPHost                 string
	SMTPPort                 int
	SMTPUsername             string
	SMTPPassword             string
	EmailFromName            string
	EmailFromAddress         string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// JWTConfig implementation
func (c *Config) GetJWTAccessSecret() string { return c.JWTAccessSecret }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// RouterRulesConfig implementation
func (c *Config) GetRouterRulesPath() string { return c.RouterRulesPath }

// POIConfig implementation
func (c *Config) GetTripAdvisorAPIKey() string { return c.TripAdvisorAPIKey }
func (c *Config) IsPOIEnabled() bool           { return c.TripAdvisorAPIKey != "" }

// WeatherConfig implementation
func (c *Config) GetOpenWeatherMapAPIKey() string { return c.OpenWeatherMapAPIKey }
func (c *Config) IsWeatherEnabled() bool          { return c.OpenWeatherMapAPIKey != "" }

// DirectionsConfig implementation
func (c *Config) GetGoogleMapsAPIKey() string { return c.GoogleMapsAPIKey }
func (c *Config) IsDirectionsEnabled() bool   { return c.GoogleMapsAPIKey != "" }

// FlightsConfig implementation
func (c *Config) GetAmadeusClientID() string     { return c.AmadeusClientID }
func (c *Config) GetAmadeusClientSecret() string { return c.AmadeusClientSecret }
func (c *Config) IsFlightsEnabled() bool {
	return c.AmadeusClientID != "" && c.AmadeusClientSecret != ""
}

// LLMConfig implementation
func (c *Config) GetOpenAIAPIKey() string   { return c.OpenAIAPIKey }
func (c *Config) GetOpenAIBaseURL() string  { return c.OpenAIBaseURL }
func (c *Config) GetConciergeModel() string { return c.ConciergeModel }
func (c *Config) IsLLMEnabled() bool        { return c.OpenAIAPIKey != "" }

// EmbeddingConfig implementation
func (c *Config) GetEmbeddingModel() string { return c.EmbeddingModel }

// QdrantConfig implementation
func (c *Config) GetQdrantURL() string        { return c.QdrantURL }
func (c *Config) GetQdrantAPIKey() string     { return c.QdrantAPIKey }
func (c *Config) GetQdrantCollection() string { return c.QdrantCollection }
func (c *Config) IsQdrantEnabled() bool {
	return c.QdrantURL != "" && c.QdrantCollection != ""
}

// CacheConfig implementation
func (c *Config) GetCacheTTL() time.Duration { return c.CacheTTL }
func (c *Config) IsCacheEnabled() bool       { return c.RedisURL != "" }

// SchedulerConfig implementation
func (c *Config) GetRedisURL() string       { return c.RedisURL }
func (c *Config) GetRedisTLSInsecure() bool { return c.RedisTLSInsecure }
func (c *Config) GetAsynqQueueName() string { return c.AsynqQueueName }
func (c *Config) GetAsynqConcurrency() int  { return c.AsynqConcurrency }

// ArchiveConfig implementation
func (c *Config) GetMinIOEndpoint() string  { return c.MinIOEndpoint }
func (c *Config) GetMinIOAccessKey() string { return c.MinIOAccessKey }
func (c *Config) GetMinIOSecretKey() string { return c.MinIOSecretKey }
func (c *Config) GetMinIOUseSSL() bool      { return c.MinIOUseSSL }
func (c *Config) GetMinioBucketPageSnapshots() string {
	return c.MinioBucketPageSnapshots
}
func (c *Config) IsArchiveEnabled() bool { return c.MinIOEndpoint != "" }

// EmailConfig implementation
func (c *Config) GetEmailEnabled() bool       { return c.EmailEnabled }
func (c *Config) GetSMTPHost() string         { return c.SMTPHost }
func (c *Config) GetSMTPPort() int            { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string     { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string     { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	smtpHost := getEnv("SMTP_HOST", "")
	emailEnabled := strings.EqualFold(getEnv("EMAIL_ENABLED", "true"), "true")

	cfg := &Config{
		Env:                      getEnv("APP_ENV", "development"),
		HTTPAddr:                 getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:              getEnv("DATABASE_URL", ""),
		JWTAccessSecret:          getEnv("JWT_ACCESS_SECRET", ""),
		CORSAllowAll:             corsAllowAll,
		CORSOrigins:              corsOrigins,
		CORSAllowCreds:           strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		RouterRulesPath:          getEnv("ROUTER_RULES_PATH", ""),
		TripAdvisorAPIKey:        getEnv("TRIPADVISOR_API_KEY", ""),
		OpenWeatherMapAPIKey:     getEnv("OPENWEATHERMAP_API_KEY", ""),
		GoogleMapsAPIKey:         getEnv("GOOGLE_MAPS_API_KEY", ""),
		AmadeusClientID:          getEnv("AMADEUS_CLIENT_ID", ""),
		AmadeusClientSecret:      getEnv("AMADEUS_CLIENT_SECRET", ""),
		OpenAIAPIKey:             getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:            getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		ConciergeModel:           getEnv("CONCIERGE_MODEL", "gpt-4o-mini"),
		EmbeddingModel:           getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
		QdrantURL:                getEnv("QDRANT_URL", ""),
		QdrantAPIKey:             getEnv("QDRANT_API_KEY", ""),
		QdrantCollection:         getEnv("QDRANT_COLLECTION", "tripbuddy"),
		RedisURL:                 getEnv("REDIS_URL", ""),
		RedisTLSInsecure:         strings.EqualFold(getEnv("REDIS_TLS_INSECURE", "false"), "true"),
		AsynqQueueName:           getEnv("ASYNQ_QUEUE", "default"),
		AsynqConcurrency:         mustInt(getEnv("ASYNQ_CONCURRENCY", "10")),
		CacheTTL:                 mustDuration(getEnv("CACHE_TTL", "10m")),
		MinIOEndpoint:            getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:           getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:           getEnv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:              strings.EqualFold(getEnv("MINIO_USE_SSL", "false"), "true"),
		MinioBucketPageSnapshots: getEnv("MINIO_BUCKET_PAGE_SNAPSHOTS", "page-snapshots"),
		EmailEnabled:             emailEnabled && smtpHost != "",
		SMTPHost:                 smtpHost,
		SMTPPort:                 mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:             getEnv("SMTP_USERNAME", ""),
		SMTPPassword:             getEnv("SMTP_PASSWORD", ""),
		EmailFromName:            getEnv("EMAIL_FROM_NAME", "TripBuddy"),
		EmailFromAddress:         getEnv("EMAIL_FROM_ADDRESS", ""),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTAccessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.EmailEnabled && cfg.EmailFromAddress == "" {
		return nil, fmt.Errorf("EMAIL_FROM_ADDRESS is required when email is enabled")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
