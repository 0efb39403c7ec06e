package handlers

import (
	"net/http"
	"strings"

	"github.com/copy2card/copy2card/internal/auth/session"
	"github.com/copy2card/copy2card/internal/config"
	"github.com/copy2card/copy2card/internal/version"
)

func init() {
	// Inject version into HTML templates at startup
	indexHTML = strings.ReplaceAll(indexHTML, "{{VERSION}}", version.Version)
	dashboardHTML = strings.ReplaceAll(dashboardHTML, "{{VERSION}}", version.Version)
	paymentHTML = strings.ReplaceAll(paymentHTML, "{{VERSION}}", version.Version)
}

// IndexPageHandler serves the landing page with the sign-in entry point.
// A signed-in visitor goes straight to the dashboard.
func IndexPageHandler(sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(session.CookieName); err == nil {
			if sess, _ := sessions.Lookup(r.Context(), cookie.Value); sess != nil {
				http.Redirect(w, r, "/dashboard", http.StatusTemporaryRedirect)
				return
			}
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(indexHTML))
	}
}

// DashboardPageHandler serves the card editor. Visitors without a session
// are sent back to the landing page.
func DashboardPageHandler(sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var token string
		if cookie, err := r.Cookie(session.CookieName); err == nil {
			token = cookie.Value
		}
		sess, err := sessions.Lookup(r.Context(), token)
		if err != nil || sess == nil {
			http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
			return
		}

		page := strings.ReplaceAll(dashboardHTML, "{{EMAIL}}", sess.Email)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	}
}

// PaymentPageHandler serves the upgrade page with the checkout provider
// settings injected. Missing settings are injected as empty strings and the
// page refuses checkout with a descriptive message before any network call.
func PaymentPageHandler(cfg config.Config, sessions *session.Manager) http.HandlerFunc {
	replacer := strings.NewReplacer(
		"{{PADDLE_TOKEN}}", cfg.PaddleClientToken,
		"{{PADDLE_ENV}}", cfg.PaddleEnvironment,
		"{{PADDLE_PRICE_ID}}", cfg.PaddlePriceID,
	)
	page := replacer.Replace(paymentHTML)

	return func(w http.ResponseWriter, r *http.Request) {
		var token string
		if cookie, err := r.Cookie(session.CookieName); err == nil {
			token = cookie.Value
		}
		sess, err := sessions.Lookup(r.Context(), token)
		if err != nil || sess == nil {
			http.Redirect(w, r, "/", http.StatusTemporaryRedirect)
			return
		}

		out := strings.NewReplacer(
			"{{EMAIL}}", sess.Email,
			"{{USER_ID}}", sess.UserID,
		).Replace(page)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(out))
	}
}
