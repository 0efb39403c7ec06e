package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("GOOGLE_CLIENT_ID", "")
	t.Setenv("GOOGLE_CLIENT_SECRET", "")
	t.Setenv("PADDLE_CLIENT_TOKEN", "")
	t.Setenv("PADDLE_PRICE_ID", "")
	t.Setenv("PADDLE_WEBHOOK_SECRET", "")
	t.Setenv("PADDLE_ENV", "")

	cfg := Load()
	if cfg.ListenAddr != "127.0.0.1:8080" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.DBPath != "copy2card.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.PaddleEnvironment != "sandbox" {
		t.Errorf("PaddleEnvironment = %q", cfg.PaddleEnvironment)
	}
	if cfg.GoogleEnabled() || cfg.CheckoutEnabled() || cfg.WebhookEnabled() {
		t.Error("no feature should be enabled without credentials")
	}
}

func TestFeatureToggles(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "secret")
	t.Setenv("PADDLE_CLIENT_TOKEN", "tok")
	t.Setenv("PADDLE_PRICE_ID", "pri_1")
	t.Setenv("PADDLE_WEBHOOK_SECRET", "whsec")
	t.Setenv("PADDLE_ENV", "production")

	cfg := Load()
	if !cfg.GoogleEnabled() {
		t.Error("GoogleEnabled should be true")
	}
	if !cfg.CheckoutEnabled() {
		t.Error("CheckoutEnabled should be true")
	}
	if !cfg.WebhookEnabled() {
		t.Error("WebhookEnabled should be true")
	}
	if cfg.PaddleEnvironment != "production" {
		t.Errorf("PaddleEnvironment = %q", cfg.PaddleEnvironment)
	}
}

func TestCheckoutRequiresBothTokenAndPrice(t *testing.T) {
	t.Setenv("PADDLE_CLIENT_TOKEN", "tok")
	t.Setenv("PADDLE_PRICE_ID", "")

	cfg := Load()
	if cfg.CheckoutEnabled() {
		t.Error("checkout must stay disabled without a price id")
	}
}
