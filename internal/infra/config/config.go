// internal/infra/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	CartStoreMemory    = "memory"
	CartStoreFirestore = "firestore"

	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

// Config holds every environment-derived setting for both services.
type Config struct {
	AppEnv   string
	LogLevel string
	Port     string

	CORSAllowedOrigins []string

	// GCP
	GCPCreds                 string
	FirestoreProjectID       string
	FirestoreCredentialsFile string
	FirebaseProjectID        string

	// Cart/favorites persistence: memory | firestore
	CartStore           string
	CartsCollection     string
	FavoritesCollection string

	// SQL query layer (book / users1). Empty driver disables it.
	DBDriver         string
	DatabaseURL      string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBPasswordSecret string
	DBName           string
	DBSSLMode        string
	SQLitePath       string

	// Event publishing
	KafkaBrokers  []string
	KafkaTopic    string
	KafkaClientID string

	// Inventory export upload target (GCS). Empty disables upload.
	ExportBucket string

	// Contact mail
	SendGridAPIKey     string
	SendGridSecretName string
	ContactFrom        string
	ContactTo          string

	ConsoleAuthRequired bool

	// Optional YAML seed override; empty uses the embedded seed.
	SeedFile string
}

// Load reads the environment once and returns a Config.
func Load() *Config {
	defaultProject := getenvDefault("GCP_PROJECT_ID", "")

	return &Config{
		AppEnv:   getenvDefault("APP_ENV", "prod"),
		LogLevel: getenvDefault("LOG_LEVEL", "info"),
		Port:     getenvDefault("PORT", "8080"),

		CORSAllowedOrigins: splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "*")),

		GCPCreds:                 os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		FirestoreProjectID:       getenvDefault("FIRESTORE_PROJECT_ID", defaultProject),
		FirestoreCredentialsFile: os.Getenv("FIRESTORE_CREDENTIALS_FILE"),
		FirebaseProjectID:        getenvDefault("FIREBASE_PROJECT_ID", defaultProject),

		CartStore:           strings.ToLower(getenvDefault("CART_STORE", CartStoreMemory)),
		CartsCollection:     getenvDefault("CARTS_COLLECTION", "carts"),
		FavoritesCollection: getenvDefault("FAVORITES_COLLECTION", "favorites"),

		DBDriver:         strings.ToLower(os.Getenv("DB_DRIVER")),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		DBHost:           getenvDefault("DB_HOST", "localhost"),
		DBPort:           getenvDefault("DB_PORT", "5432"),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBPasswordSecret: os.Getenv("DB_PASSWORD_SECRET"),
		DBName:           os.Getenv("DB_NAME"),
		DBSSLMode:        getenvDefault("DB_SSLMODE", "disable"),
		SQLitePath:       getenvDefault("SQLITE_PATH", "storefront.db"),

		KafkaBrokers:  splitList(getenvDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:    getenvDefault("KAFKA_TOPIC", "my-topic"),
		KafkaClientID: getenvDefault("KAFKA_CLIENT_ID", "my-app"),

		ExportBucket: os.Getenv("EXPORT_BUCKET"),

		SendGridAPIKey:     os.Getenv("SENDGRID_API_KEY"),
		SendGridSecretName: os.Getenv("SENDGRID_SECRET_NAME"),
		ContactFrom:        getenvDefault("CONTACT_FROM", "no-reply@example.com"),
		ContactTo:          getenvDefault("CONTACT_TO", "support@example.com"),

		ConsoleAuthRequired: getenvBool("CONSOLE_AUTH_REQUIRED", false),

		SeedFile: os.Getenv("SEED_FILE"),
	}
}

// Validate reports combinations that cannot boot.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config: nil")
	}
	switch c.CartStore {
	case CartStoreMemory:
	case CartStoreFirestore:
		if strings.TrimSpace(c.FirestoreProjectID) == "" {
			return errors.New("config: CART_STORE=firestore requires FIRESTORE_PROJECT_ID or GCP_PROJECT_ID")
		}
	default:
		return fmt.Errorf("config: unknown CART_STORE %q", c.CartStore)
	}

	switch c.DBDriver {
	case "", DBDriverSQLite:
	case DBDriverPostgres:
		if c.DatabaseURL == "" && (c.DBUser == "" || c.DBName == "") {
			return errors.New("config: DB_DRIVER=postgres requires DATABASE_URL or DB_USER and DB_NAME")
		}
	default:
		return fmt.Errorf("config: unknown DB_DRIVER %q", c.DBDriver)
	}

	if len(c.KafkaBrokers) == 0 || strings.TrimSpace(c.KafkaTopic) == "" {
		return errors.New("config: KAFKA_BROKERS and KAFKA_TOPIC must not be empty")
	}
	if c.ConsoleAuthRequired && strings.TrimSpace(c.FirebaseProjectID) == "" {
		return errors.New("config: CONSOLE_AUTH_REQUIRED requires FIREBASE_PROJECT_ID or GCP_PROJECT_ID")
	}
	return nil
}

// NeedsGCP reports whether any configured feature requires Google Cloud clients.
func (c *Config) NeedsGCP() bool {
	return c.CartStore == CartStoreFirestore ||
		c.ExportBucket != "" ||
		c.SendGridSecretName != "" ||
		c.DBPasswordSecret != "" ||
		c.ConsoleAuthRequired
}

// IsDev reports a local development environment.
func (c *Config) IsDev() bool {
	switch strings.ToLower(c.AppEnv) {
	case "dev", "development", "local":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
