package configs

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDsn   string
	Port    string
	AppEnv  string

	StripeSecretKey     string
	StripeWebhookSecret string

	FirebaseCredentials string
	AuthDevSecret       string

	AllowedOrigins  []string
	FrontendBaseURL string

	CartRetention time.Duration
	SeedDemo      bool
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	retentionDays := getEnvInt("CART_RETENTION_DAYS", 30)

	return &Config{
		DBDsn:  getEnv("DB_DSN", "host=localhost user=postgres dbname=campuseats port=5432 sslmode=disable"),
		Port:   getEnv("PORT", "8000"),
		AppEnv: getEnv("APP_ENV", "development"),

		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),

		FirebaseCredentials: os.Getenv("FIREBASE_CREDENTIALS"),
		AuthDevSecret:       getEnv("AUTH_DEV_SECRET", "changeme"),

		AllowedOrigins:  strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:3000"), ","),
		FrontendBaseURL: getEnv("FRONTEND_BASE_URL", "http://localhost:3000"),

		CartRetention: time.Duration(retentionDays) * 24 * time.Hour,
		SeedDemo:      os.Getenv("SEED_DEMO") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
