// Package config loads service configuration from environment variables.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port         string
	Environment  string
	AssetsDir    string
	OutputDir    string
	DBPath       string
	ReadTimeout  int
	WriteTimeout int
}

// Load reads the configuration from the environment, falling back to
// development defaults.
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "3000"),
		Environment:  getEnv("ENV", "development"),
		AssetsDir:    getEnv("ASSETS_DIR", "assets"),
		OutputDir:    getEnv("OUTPUT_DIR", "data/models"),
		DBPath:       getEnv("DB_PATH", "data/db/jobs.db"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 30),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 30),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
