package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	AppPort string
	AppEnv  string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Storage roots for uploaded photos, generated cards and card
	// assets (logo, background pattern).
	DataDir  string
	PhotoDir string
	CardDir  string
	AssetDir string

	JWTSecret string
	JWTTTL    time.Duration
}

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getMinutes(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
	}
	return def
}

func Load() *Config {
	dataDir := get("DATA_DIR", "data")
	return &Config{
		AppPort: get("APP_PORT", "8080"),
		AppEnv:  get("APP_ENV", "dev"),

		DBHost:     get("DB_HOST", "localhost"),
		DBPort:     get("DB_PORT", "5432"),
		DBUser:     get("DB_USER", "postgres"),
		DBPassword: get("DB_PASSWORD", "postgres"),
		DBName:     get("DB_NAME", "hostel"),
		DBSSLMode:  get("DB_SSLMODE", "disable"),

		DataDir:  dataDir,
		PhotoDir: get("PHOTO_DIR", filepath.Join(dataDir, "images")),
		CardDir:  get("CARD_DIR", filepath.Join(dataDir, "id_cards")),
		AssetDir: get("ASSET_DIR", "assets"),

		JWTSecret: get("JWT_SECRET", "dev-secret"),
		JWTTTL:    getMinutes("JWT_TTL_MINUTES", 8*time.Hour),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}

// EnsureDirs creates the storage directories the app writes to.
func (c *Config) EnsureDirs() error {
	for _, d := range []string{c.DataDir, c.PhotoDir, c.CardDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}
