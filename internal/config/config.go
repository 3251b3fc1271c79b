package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	ShopDomain     string
	AccessToken    string
	WebhookSecret  string
	APIVersion     string

	KafkaBrokers []string
	AuditTopic   string

	AdminUsername string
	AdminPassword string
}

// Load reads .env (or .example.env as a fallback) from the working
// directory or its parents, then builds the config from the environment.
func Load() *Config {
	loadEnv()

	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "9000"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("POSTGRES_USER", "ordertags"),
		DBPassword:    getEnv("POSTGRES_PASSWORD", ""),
		DBName:        getEnv("POSTGRES_DB", "ordertags"),
		ShopDomain:    getEnv("SHOPIFY_SHOP_DOMAIN", ""),
		AccessToken:   getEnv("SHOPIFY_ACCESS_TOKEN", ""),
		WebhookSecret: getEnv("SHOPIFY_WEBHOOK_SECRET", ""),
		APIVersion:    getEnv("SHOPIFY_API_VERSION", "2024-10"),
		AuditTopic:    getEnv("AUDIT_TOPIC", "audit_logs"),
		AdminUsername: getEnv("ADMIN_USERNAME", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}

	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	if cfg.WebhookSecret == "" {
		zap.S().Warn("SHOPIFY_WEBHOOK_SECRET is not set, webhook signatures will not be verified")
	}

	return cfg
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func loadEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}

	possiblePaths := []string{
		filepath.Join(wd, ".env"),
		filepath.Join(wd, "..", ".env"),
		filepath.Join(wd, "..", "..", ".env"),
	}

	for _, envPath := range possiblePaths {
		if err := godotenv.Load(envPath); err == nil {
			return
		}
	}

	for _, envPath := range possiblePaths {
		examplePath := filepath.Join(filepath.Dir(envPath), ".example.env")
		if err := godotenv.Load(examplePath); err == nil {
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
