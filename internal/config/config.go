package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName              string
	AppEnv               string
	AppPort              string
	DatabaseURL          string
	DatabaseName         string
	DatabaseTimeout      time.Duration
	DiagnosticsTimeout   time.Duration
	CORSAllowOrigins     string
	NATSURL              string
	ContactNotifySubject string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// DatabaseConfigured reports whether a connection string was supplied.
func (c Config) DatabaseConfigured() bool {
	return strings.TrimSpace(c.DatabaseURL) != ""
}

// DatabaseNameConfigured reports whether a logical database name was supplied.
func (c Config) DatabaseNameConfigured() bool {
	return strings.TrimSpace(c.DatabaseName) != ""
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SITE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Unprefixed names are what hosting platforms inject.
	_ = v.BindEnv("app.port", "PORT", "SITE_APP_PORT")
	_ = v.BindEnv("database.url", "DATABASE_URL", "SITE_DATABASE_URL")
	_ = v.BindEnv("database.name", "DATABASE_NAME", "SITE_DATABASE_NAME")
	_ = v.BindEnv("nats.url", "NATS_URL", "SITE_NATS_URL")

	v.SetDefault("app.name", "Contractor Site API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8000")
	v.SetDefault("database.connect_timeout", "10s")
	v.SetDefault("diagnostics.timeout", "5s")
	v.SetDefault("cors.allow_origins", "*")
	v.SetDefault("nats.subject", "site.contact.submitted")

	connectTimeout, err := parseDuration(v, "database.connect_timeout", 10*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("invalid database connect timeout: %w", err)
	}

	diagnosticsTimeout, err := parseDuration(v, "diagnostics.timeout", 5*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("invalid diagnostics timeout: %w", err)
	}

	cfg := Config{
		AppName:              v.GetString("app.name"),
		AppEnv:               v.GetString("app.env"),
		AppPort:              v.GetString("app.port"),
		DatabaseURL:          strings.TrimSpace(v.GetString("database.url")),
		DatabaseName:         strings.TrimSpace(v.GetString("database.name")),
		DatabaseTimeout:      connectTimeout,
		DiagnosticsTimeout:   diagnosticsTimeout,
		CORSAllowOrigins:     v.GetString("cors.allow_origins"),
		NATSURL:              strings.TrimSpace(v.GetString("nats.url")),
		ContactNotifySubject: v.GetString("nats.subject"),
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8000"
	}

	if strings.TrimSpace(cfg.CORSAllowOrigins) == "" {
		cfg.CORSAllowOrigins = "*"
	}

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return fallback, nil
	}

	return d, nil
}
