package configs

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Session SessionConfig
	Redis   RedisConfig
	CORS    CORSConfig
}

type ServerConfig struct {
	Port string
	Host string
	Mode string
}

type CatalogConfig struct {
	// Path to a catalog JSON file; empty means the embedded default catalog.
	Path string
}

type SessionConfig struct {
	// Store selects the session backend: "memory" or "redis".
	Store      string
	TTLMinutes int
}

type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

type CORSConfig struct {
	AllowOrigins []string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Host: getEnv("SERVER_HOST", "localhost"),
			Mode: getEnv("GIN_MODE", "debug"),
		},
		Catalog: CatalogConfig{
			Path: getEnv("CATALOG_PATH", ""),
		},
		Session: SessionConfig{
			Store:      getEnv("SESSION_STORE", "memory"),
			TTLMinutes: getEnvInt("SESSION_TTL_MINUTES", 120),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		CORS: CORSConfig{
			AllowOrigins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
