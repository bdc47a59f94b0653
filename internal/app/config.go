package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	AppEnv   string
	LogLevel string

	Port               string
	CORSAllowedOrigins []string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	RedisAddr   string
	KafkaBroker string

	ResendAPIKey string
	MailFrom     string

	RBACModelPath string
	AutoMigrate   bool

	SeedCompanyName   string
	SeedOwnerName     string
	SeedOwnerEmail    string
	SeedOwnerPassword string

	OutboxPollInterval time.Duration
	ConsumerGroupID    string
	ConnectRetries     int
}

// LoadConfig reads the environment; call godotenv.Load first to pick up .env.
func LoadConfig() (Config, error) {
	cfg := Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		LogLevel:           os.Getenv("LOG_LEVEL"),
		Port:               getEnv("PORT", "3000"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBUser:             getEnv("DB_USER", "postgres"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             getEnv("DB_NAME", "go_ats"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBSSLMode:          getEnv("DB_SSLMODE", "disable"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:        os.Getenv("KAFKA_BROKER"),
		ResendAPIKey:       os.Getenv("RESEND_API_KEY"),
		MailFrom:           getEnv("MAIL_FROM", "Hiring Team <hiring@example.com>"),
		RBACModelPath:      os.Getenv("RBAC_MODEL_PATH"),
		AutoMigrate:        getEnv("DB_AUTO_MIGRATE", "true") == "true",
		SeedCompanyName:    getEnv("SEED_COMPANY_NAME", "Default Company"),
		SeedOwnerName:      getEnv("SEED_OWNER_NAME", "Owner"),
		SeedOwnerEmail:     os.Getenv("SEED_OWNER_EMAIL"),
		SeedOwnerPassword:  os.Getenv("SEED_OWNER_PASSWORD"),
		OutboxPollInterval: 3 * time.Second,
		ConsumerGroupID:    getEnv("KAFKA_GROUP_ID", "go-ats-notifications"),
		ConnectRetries:     5,
	}

	if v := os.Getenv("OUTBOX_POLL_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("OUTBOX_POLL_INTERVAL: %w", err)
		}
		cfg.OutboxPollInterval = d
	}
	if v := os.Getenv("CONNECT_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("CONNECT_RETRIES must be a positive integer")
		}
		cfg.ConnectRetries = n
	}
	if os.Getenv("JWT_SECRET") == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func (c Config) RequireKafka() error {
	if c.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
