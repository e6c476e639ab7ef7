package config

import (
	"strings"

	"github.com/spf13/viper"
)

// DefaultSQLitePath is the embedded store used when DATABASE_URL is unset.
const DefaultSQLitePath = "/tmp/test.db"

// Config is the runtime configuration, read from the environment.
type Config struct {
	DatabaseURL           string
	SQLitePath            string
	Port                  string
	RabbitMQURL           string
	SeedFile              string
	CORSOrigin            string
	LogLevel              string
	FavoritesUserFallback bool
	LegacyErrorEnvelope   bool
}

// Load reads the configuration from v, applying defaults first.
func Load(v *viper.Viper) Config {
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SQLITE_PATH", DefaultSQLitePath)
	v.SetDefault("PORT", "3000")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("SEED_FILE", "")
	v.SetDefault("CORS_ORIGIN", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("FAVORITES_USER_FALLBACK", true)
	v.SetDefault("LEGACY_ERROR_ENVELOPE", false)
	v.AutomaticEnv()

	return Config{
		DatabaseURL:           strings.TrimSpace(v.GetString("DATABASE_URL")),
		SQLitePath:            v.GetString("SQLITE_PATH"),
		Port:                  v.GetString("PORT"),
		RabbitMQURL:           strings.TrimSpace(v.GetString("RABBITMQ_URL")),
		SeedFile:              strings.TrimSpace(v.GetString("SEED_FILE")),
		CORSOrigin:            v.GetString("CORS_ORIGIN"),
		LogLevel:              v.GetString("LOG_LEVEL"),
		FavoritesUserFallback: v.GetBool("FAVORITES_USER_FALLBACK"),
		LegacyErrorEnvelope:   v.GetBool("LEGACY_ERROR_ENVELOPE"),
	}
}

// ListenAddr returns the address to bind the HTTP server to.
func (c Config) ListenAddr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
