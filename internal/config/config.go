// Package config reads runtime configuration from the environment. Missing
// provider credentials degrade the matching feature with a logged warning
// instead of refusing to start; the credit API itself has no external
// dependency beyond the database file.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr string
	DBPath     string

	// Identity provider (Google OAuth). Absent: login is disabled.
	GoogleClientID     string
	GoogleClientSecret string

	// Checkout provider (Paddle). Absent token/price: the payment page
	// refuses checkout with a descriptive message.
	PaddleClientToken   string
	PaddleEnvironment   string // "sandbox" or "production"
	PaddlePriceID       string
	PaddleWebhookSecret string // absent: the signed webhook endpoint is disabled
}

// Load reads configuration from the environment, after overlaying an
// optional .env file.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("⚠️  Could not load .env file: %v", err)
	}

	cfg := Config{
		ListenAddr:          getEnv("LISTEN_ADDR", "127.0.0.1:8080"),
		DBPath:              getEnv("DB_PATH", "copy2card.db"),
		GoogleClientID:      os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:  os.Getenv("GOOGLE_CLIENT_SECRET"),
		PaddleClientToken:   os.Getenv("PADDLE_CLIENT_TOKEN"),
		PaddleEnvironment:   getEnv("PADDLE_ENV", "sandbox"),
		PaddlePriceID:       os.Getenv("PADDLE_PRICE_ID"),
		PaddleWebhookSecret: os.Getenv("PADDLE_WEBHOOK_SECRET"),
	}

	if !cfg.GoogleEnabled() {
		log.Printf("⚠️  GOOGLE_CLIENT_ID / GOOGLE_CLIENT_SECRET not set; sign-in is disabled")
	}
	if !cfg.CheckoutEnabled() {
		log.Printf("⚠️  PADDLE_CLIENT_TOKEN / PADDLE_PRICE_ID not set; checkout is disabled")
	}
	if !cfg.WebhookEnabled() {
		log.Printf("⚠️  PADDLE_WEBHOOK_SECRET not set; payment webhook is disabled")
	}

	return cfg
}

// GoogleEnabled reports whether the OAuth login flow can run.
func (c Config) GoogleEnabled() bool {
	return c.GoogleClientID != "" && c.GoogleClientSecret != ""
}

// CheckoutEnabled reports whether the payment page can open a checkout.
func (c Config) CheckoutEnabled() bool {
	return c.PaddleClientToken != "" && c.PaddlePriceID != ""
}

// WebhookEnabled reports whether signed payment notifications are accepted.
func (c Config) WebhookEnabled() bool {
	return c.PaddleWebhookSecret != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
