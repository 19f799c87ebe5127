package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	JWTSecret    string
	Port         string
	Env          string
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

// LoadConfig loads configuration from environment variables. A missing
// .env file is not an error; the environment may already be populated.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		DBHost:       getEnv("DB_HOST", DefaultDBHost),
		DBPort:       getEnv("DB_PORT", DefaultDBPort),
		DBUser:       getEnv("DB_USER", DefaultDBUser),
		DBPassword:   getEnv("DB_PASSWORD", DefaultDBPassword),
		DBName:       getEnv("DB_NAME", DefaultDBName),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		Port:         getEnv("PORT", DefaultPort),
		Env:          getEnv("ENV", "development"),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Configuration defaults.
const (
	DefaultPort       = "8080"
	DefaultDBHost     = "localhost"
	DefaultDBPort     = "5432"
	DefaultDBName     = "vmrsolution"
	DefaultDBUser     = "postgres"
	DefaultDBPassword = "postgres"
)
