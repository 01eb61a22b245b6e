package config

import (
	"os"
	"strconv"
)

type Config struct {
	BindAddr       string
	LogLevel       string
	PresetsDir     string
	MaxRecords     int
	DefaultRecords int
	Workers        int
}

func Load() *Config {
	return &Config{
		BindAddr:       getEnv("DATAFORGE_BIND_ADDR", ":8080"),
		LogLevel:       getEnv("DATAFORGE_LOG_LEVEL", "info"),
		PresetsDir:     getEnv("DATAFORGE_PRESETS_DIR", "./presets"),
		MaxRecords:     getEnvInt("DATAFORGE_MAX_RECORDS", 1000000),
		DefaultRecords: getEnvInt("DATAFORGE_DEFAULT_RECORDS", 1000),
		Workers:        getEnvInt("DATAFORGE_WORKERS", 0),
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
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
