package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries everything the process needs at startup. It is built once
// in main and handed to the store and notifier constructors explicitly.
type Config struct {
	App  AppConfig
	DB   DBConfig
	SMTP SMTPConfig
}

type AppConfig struct {
	Port string
}

type DBConfig struct {
	Path string
}

// SMTPConfig describes the mail submission endpoint. Host and From may be
// empty: the notifier then runs in degraded mode and only logs.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	UseTLS   bool
}

// Load reads an optional .env file at path and then the environment.
// A missing .env is not an error.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{}

	cfg.App.Port = getenv("APP_PORT", "8000")
	cfg.DB.Path = getenv("STORE_DB_PATH", filepath.Join("data", "ziad_store.sqlite3"))

	cfg.SMTP.Host = os.Getenv("SMTP_HOST")
	cfg.SMTP.Username = os.Getenv("SMTP_USERNAME")
	cfg.SMTP.Password = os.Getenv("SMTP_PASSWORD")
	cfg.SMTP.From = os.Getenv("EMAIL_FROM")

	port, err := strconv.Atoi(getenv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	cfg.SMTP.Port = port

	useTLS, err := strconv.ParseBool(getenv("SMTP_USE_TLS", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_USE_TLS: %w", err)
	}
	cfg.SMTP.UseTLS = useTLS

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
