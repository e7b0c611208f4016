package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "CART_STORE", "DB_DRIVER", "KAFKA_BROKERS", "KAFKA_TOPIC", "CORS_ALLOWED_ORIGINS", "CONSOLE_AUTH_REQUIRED"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, CartStoreMemory, cfg.CartStore)
	assert.Equal(t, "", cfg.DBDriver)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "my-topic", cfg.KafkaTopic)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.ConsoleAuthRequired)
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.NeedsGCP())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092 ,")
	t.Setenv("CART_STORE", "Firestore")
	t.Setenv("GCP_PROJECT_ID", "demo-project")
	t.Setenv("FIRESTORE_PROJECT_ID", "")
	t.Setenv("CONSOLE_AUTH_REQUIRED", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, CartStoreFirestore, cfg.CartStore)
	assert.Equal(t, "demo-project", cfg.FirestoreProjectID)
	assert.Equal(t, "demo-project", cfg.FirebaseProjectID)
	assert.True(t, cfg.ConsoleAuthRequired)
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.NeedsGCP())
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		mut  func(c *Config)
	}{
		{"unknown cart store", func(c *Config) { c.CartStore = "redis" }},
		{"firestore without project", func(c *Config) { c.CartStore = CartStoreFirestore; c.FirestoreProjectID = "" }},
		{"unknown db driver", func(c *Config) { c.DBDriver = "mysql" }},
		{"postgres without dsn", func(c *Config) { c.DBDriver = DBDriverPostgres; c.DatabaseURL = ""; c.DBUser = "" }},
		{"empty topic", func(c *Config) { c.KafkaTopic = " " }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{CartStore: CartStoreMemory, KafkaBrokers: []string{"b:1"}, KafkaTopic: "t"}
			tt.mut(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestIsDev(t *testing.T) {
	assert.True(t, (&Config{AppEnv: "Dev"}).IsDev())
	assert.True(t, (&Config{AppEnv: "local"}).IsDev())
	assert.False(t, (&Config{AppEnv: "prod"}).IsDev())
}
