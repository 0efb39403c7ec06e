package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/copy2card/copy2card/internal/auth/google"
	"github.com/copy2card/copy2card/internal/auth/session"
	"github.com/copy2card/copy2card/internal/checkout"
	"github.com/copy2card/copy2card/internal/config"
	"github.com/copy2card/copy2card/internal/db"
	"github.com/copy2card/copy2card/internal/ledger"
	"github.com/copy2card/copy2card/internal/logging"
	"github.com/copy2card/copy2card/internal/web/handlers"
)

func main() {
	cfg := config.Load()

	// Initialize database
	database, err := db.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Core services
	ledgerSvc := ledger.NewService(database)
	sessions := session.NewManager(database)

	plans, err := checkout.LoadPlans(os.Getenv("PLANS_PATH"))
	if err != nil {
		log.Fatalf("Failed to load plan catalog: %v", err)
	}
	webhook := checkout.NewWebhook(database, ledgerSvc, cfg.PaddleWebhookSecret, plans)

	// Create router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(logging.RequestID)

	// Pages
	r.Get("/", handlers.IndexPageHandler(sessions))
	r.Get("/dashboard", handlers.DashboardPageHandler(sessions))
	r.Get("/payment", handlers.PaymentPageHandler(cfg, sessions))

	// OAuth flow
	r.Get("/auth/google/login", google.HandleLogin(cfg))
	r.Get("/auth/google/callback", google.HandleCallback(cfg, database, sessions))
	r.Post("/auth/logout", handlers.LogoutHandler(sessions))

	// Credit ledger API (session required)
	r.Route("/api/credits", func(r chi.Router) {
		r.Use(session.RequireAuth(sessions))
		r.Get("/get", handlers.GetCreditsHandler(ledgerSvc))
		r.Post("/add", handlers.AddCreditsHandler(ledgerSvc))
		r.Post("/decrement", handlers.DecrementCreditsHandler(ledgerSvc))
	})

	// Payment provider webhook (signature required, no session)
	if cfg.WebhookEnabled() {
		r.Post("/api/checkout/webhook", webhook.Handler())
	}

	log.Printf("🚀 copy2card starting on http://%s", cfg.ListenAddr)
	log.Printf("📊 Dashboard: http://%s/dashboard", cfg.ListenAddr)

	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
