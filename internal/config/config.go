package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	Mode               string
	DatabasePath       string
	AdminUsername      string
	AdminPassword      string
	SiteURL            string
	GoogleVerification string
	VisitorRetention   time.Duration
}

// Load reads .env (if present) and the environment. Missing values fall back
// to development defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment and defaults")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	port := getenv("PORT", "8080")
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	retentionDays, err := strconv.Atoi(getenv("VISITOR_RETENTION_DAYS", "365"))
	if err != nil || retentionDays <= 0 {
		log.Printf("Warning: invalid VISITOR_RETENTION_DAYS, using 365")
		retentionDays = 365
	}

	return &Config{
		Port:               port,
		Mode:               getenv("GIN_MODE", "debug"),
		DatabasePath:       getenv("DATABASE_PATH", "portfolio.db"),
		AdminUsername:      getenv("ADMIN_USERNAME", ""),
		AdminPassword:      getenv("ADMIN_PASSWORD", ""),
		SiteURL:            strings.TrimRight(os.Getenv("SITE_URL"), "/"),
		GoogleVerification: os.Getenv("GOOGLE_SITE_VERIFICATION"),
		VisitorRetention:   time.Duration(retentionDays) * 24 * time.Hour,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
