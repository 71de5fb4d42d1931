package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	JWTSecret      string
	AllowedOrigins []string
	PaymentDelay   time.Duration
	OwnerPIN       string
	CashierPIN     string
	KitchenPIN     string
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory when one exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded (%v), using environment variables", err)
	}

	return &Config{
		Port:           getEnv("PORT", "8081"),
		JWTSecret:      getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:8100")),
		PaymentDelay:   getDuration("PAYMENT_DELAY", 2*time.Second),
		OwnerPIN:       getEnv("OWNER_PIN", "9999"),
		CashierPIN:     getEnv("CASHIER_PIN", "1234"),
		KitchenPIN:     getEnv("KITCHEN_PIN", "5678"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		log.Printf("WARNING: invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
