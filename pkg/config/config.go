package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret string
	JWTTTL    time.Duration

	BcryptCost int

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Session tokens default to 72 hours; override with a Go duration string.
	jwtTTL := 72 * time.Hour
	if exp := os.Getenv("JWT_TTL"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			jwtTTL = parsed
		}
	}

	smtpPort := 587
	if port := os.Getenv("SMTP_PORT"); port != "" {
		if parsed, err := strconv.Atoi(port); err == nil {
			smtpPort = parsed
		}
	}

	bcryptCost := 10
	if cost := os.Getenv("BCRYPT_COST"); cost != "" {
		if parsed, err := strconv.Atoi(cost); err == nil {
			bcryptCost = parsed
		}
	}

	return &Config{
		Port:         getEnv("PORT", "5000"),
		DatabaseURL:  getEnv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=balanceflow port=5432 sslmode=disable"),
		JWTSecret:    getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTTTL:       jwtTTL,
		BcryptCost:   bcryptCost,
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     smtpPort,
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASS", ""),
		FromName:     getEnv("SMTP_FROM_NAME", "BalanceFlow App"),
		FromEmail:    getEnv("SMTP_FROM_EMAIL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
