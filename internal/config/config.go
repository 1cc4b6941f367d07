package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN    string
	LogFile  string
	LogLevel string
	Currency string
}

// Load reads settings from the environment, after merging a .env file
// from the working directory when one exists.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		DBDSN:    getEnv("DB_DSN", "vinted.db"), // sqlite file next to the binary
		LogFile:  getEnv("LOG_FILE", "./vintedmanager.log"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Currency: getEnv("CURRENCY", "€"),
	}
	log.Printf("[config] DB_DSN=%s LOG_FILE=%s LOG_LEVEL=%s", cfg.DBDSN, cfg.LogFile, cfg.LogLevel)
	return cfg
}

// getEnv treats a set-but-empty variable as a real value, so LOG_FILE=""
// can route logs to stderr.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
