package config

import (
	"os"
	"strconv"
	"time"
)

// Public catalog feed the storefront boots from.
const defaultCatalogURL = "https://leng404.github.io/fitness-gym-api/data.json"

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	CatalogURL   string
	FetchTimeout time.Duration
}

func Load() Config {
	return Config{
		AppEnv:       getEnv("APP_ENV", "dev"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		HTTPPort:     getEnvInt("HTTP_PORT", 8080),
		CatalogURL:   getEnv("CATALOG_URL", defaultCatalogURL),
		FetchTimeout: time.Duration(getEnvInt("FETCH_TIMEOUT_SECONDS", 10)) * time.Second,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
