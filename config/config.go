package config

import (
	"os"

	"restaurant-listings-api/models"

	"github.com/apex/log"
	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// JWTSecret used to sign admin tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_listings_secret_2024"))

type Config struct {
	Port         string
	UpstreamURL  string
	DBPath       string
	AdminKeyHash []byte
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads configuration from the environment. Every key has a working
// local-dev fallback; the upstream default matches the reference data
// server's port.
func Load() *Config {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		UpstreamURL: getEnv("UPSTREAM_URL", "http://localhost:1337/restaurants"),
		DBPath:      getEnv("DB_PATH", "restaurant_listings.db"),
	}

	// Operators may supply a pre-computed bcrypt hash; otherwise hash the
	// plain key at startup so the comparison path is the same either way.
	if hash := os.Getenv("ADMIN_KEY_HASH"); hash != "" {
		cfg.AdminKeyHash = []byte(hash)
	} else {
		key := getEnv("ADMIN_API_KEY", "dev-admin-key")
		hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
		if err != nil {
			log.WithError(err).Fatal("failed to hash admin key")
		}
		cfg.AdminKeyHash = hash
	}

	return cfg
}

// OpenDB opens the local snapshot database and migrates the schema.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.Restaurant{}); err != nil {
		return nil, err
	}
	return db, nil
}
