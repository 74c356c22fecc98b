package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the activities service.
type Config struct {
	AppName       string
	AppEnv        string
	AppPort       string
	DatabaseURL   string
	SQLitePath    string
	StaticDir     string
	RetentionDays int
	RequireRole   bool
	RoleTokens    map[string]string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// DefaultRoleTokens is the static token -> role table the demo deployment
// ships with. It stands in for a real identity system.
func DefaultRoleTokens() map[string]string {
	return map[string]string{
		"student-token-1":   "student",
		"organizer-token-1": "organizer",
		"admin-token-1":     "admin",
	}
}

// Load reads configuration values from environment variables and an optional
// .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Mergington Activities API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("sqlite.path", "activities.db")
	v.SetDefault("static.dir", "./static")
	v.SetDefault("audit_log.retention_days", 90)
	v.SetDefault("auth.require_role", false)

	cfg := Config{
		AppName:       v.GetString("app.name"),
		AppEnv:        v.GetString("app.env"),
		AppPort:       v.GetString("app.port"),
		DatabaseURL:   v.GetString("database.url"),
		SQLitePath:    v.GetString("sqlite.path"),
		StaticDir:     v.GetString("static.dir"),
		RetentionDays: v.GetInt("audit_log.retention_days"),
		RequireRole:   v.GetBool("auth.require_role"),
		RoleTokens:    DefaultRoleTokens(),
	}

	if cfg.DatabaseURL == "" && cfg.SQLitePath == "" {
		return Config{}, fmt.Errorf("either DATABASE_URL or SQLITE_PATH must be set")
	}

	return cfg, nil
}
