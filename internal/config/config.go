package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port          string   `mapstructure:"PORT"`
	Env           string   `mapstructure:"ENV"`
	DatabaseURL   string   `mapstructure:"DATABASE_URL"`
	DBMaxConns    int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns    int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins   []string `mapstructure:"CORS_ORIGINS"`
	AdminPassword string   `mapstructure:"ADMIN_PASSWORD"`
	BoardSecret   string   `mapstructure:"BOARD_SECRET"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("ADMIN_PASSWORD", "admin123")
	v.SetDefault("BOARD_SECRET", "ADMINSECRETHADMDB")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("ADMIN_PASSWORD")
	v.BindEnv("BOARD_SECRET")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.IsDev() {
		log.Println("WARNING: Server is running in DEVELOPMENT mode (ENV=development).")
		log.Println("WARNING: The message board admin password defaults to admin123.")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// Validate checks that the configuration is safe to run. Outside development
// the default message-board admin password and session secret are refused.
func (c *Config) Validate() error {
	if !c.IsDev() {
		if c.AdminPassword == "" || c.AdminPassword == "admin123" {
			return fmt.Errorf("ADMIN_PASSWORD must be set to a non-default value when ENV=%q", c.Env)
		}
		if c.BoardSecret == "" || c.BoardSecret == "ADMINSECRETHADMDB" {
			return fmt.Errorf("BOARD_SECRET must be set to a non-default value when ENV=%q", c.Env)
		}
	}
	return nil
}
