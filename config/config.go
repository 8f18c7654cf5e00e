package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Timezone string
	DBPath   string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:     get("PORT", "8080"),
		Timezone: get("TZ", "Asia/Bangkok"),
		DBPath:   get("DB_PATH", "irricore.db"),
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}

// Location resolves the configured timezone, falling back to the host zone.
// Calendar bucketing and window resolution run in this zone.
func (c AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("[cfg] bad TZ %q, using local: %v", c.Timezone, err)
		return time.Local
	}
	return loc
}
