package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	AppEnv             string
	LogLevel           slog.Level
	ApiServicePort     string
	AdminEmail         string
	AvatarBaseURL      string
	JWTSecret          string
	PostgreSQLHost     string
	PostgreSQLPort     int64
	PostgreSQLUser     string
	PostgreSQLPassword string
	PostgreSQLDatabase string
	RedisHost          string
	RedisPort          int64
	RedisPassword      string
	RedisDatabase      int64
	ListCacheTTL       int64 // List cache TTL in seconds
}

// DefaultAvatarBaseURL is the public avatar service doctor portraits are derived from.
const DefaultAvatarBaseURL = "https://avatar.iran.liara.run/public"

func LoadConfig() *Config {
	return &Config{
		AppEnv:             getEnv("APP_ENV", "development"),                   // Default development
		LogLevel:           getLogLevel(),                                      // Default INFO
		ApiServicePort:     getEnv("API_SERVICE_PORT", "8080"),                 // Default 8080
		AdminEmail:         getEnv("ADMIN_EMAIL", ""),                          // Empty disables the admin view
		AvatarBaseURL:      getEnv("AVATAR_BASE_URL", DefaultAvatarBaseURL),    // Avatar service root
		JWTSecret:          getEnv("JWT_SECRET", "medibook_secret"),            // Identity token secret
		PostgreSQLHost:     getEnv("POSTGRESQL_HOST", "db"),                    // Default db
		PostgreSQLPort:     getEnvAsInt64("POSTGRESQL_PORT", 5432),             // Default 5432
		PostgreSQLUser:     getEnv("POSTGRESQL_USER", "medibook_user"),         // Default user
		PostgreSQLPassword: getEnv("POSTGRESQL_PASSWORD", "medibook_password"), // Default password
		PostgreSQLDatabase: getEnv("POSTGRESQL_DATABASE", "medibook_db"),       // Default database name
		RedisHost:          getEnv("REDIS_HOST", "redis"),                      // Default redis
		RedisPort:          getEnvAsInt64("REDIS_PORT", 6379),                  // Default 6379
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),                       // Default empty
		RedisDatabase:      getEnvAsInt64("REDIS_DATABASE", 0),                 // Default 0
		ListCacheTTL:       getEnvAsInt64("LIST_CACHE_TTL", 300),               // Default 5 minutes
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt64(key string, fallback int64) int64 {
	if valueStr, exists := os.LookupEnv(key); exists {
		if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
			return value
		}
	}
	return fallback
}

func getLogLevel() slog.Level {
	levelStr := getEnv("LOG_LEVEL", "INFO")

	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
